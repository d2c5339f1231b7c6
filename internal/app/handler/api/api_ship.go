package api

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"shiptracker/internal/app/ds"
)

type ShipHandler struct {
	Ships interface {
		List(ctx context.Context) ([]ds.ShipResponse, error)
		GetByID(ctx context.Context, id uint) (ds.ShipResponse, error)
		Create(ctx context.Context, req ds.ShipRequest) (ds.ShipResponse, error)
		Update(ctx context.Context, id uint, req ds.ShipRequest) (ds.ShipResponse, error)
		AttachPhoto(ctx context.Context, id uint, photoURL string) error
	}
	Names interface {
		GenerateName(ctx context.Context) (string, error)
	}
	MinioClient *minio.Client
	MinioBucket string
}

func shipID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ship ID"})
		return 0, false
	}
	return uint(id), true
}

// @Summary Get all ships
// @Description Ships sorted by name with live report counts
// @Tags ships
// @Produce json
// @Success 200 {object} object "data: []ds.ShipResponse"
// @Failure 401 {object} object "error: message"
// @Router /api/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	ships, err := h.Ships.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  ships,
		"count": len(ships),
	})
}

// @Summary Get ship by ID
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} object "data: ds.ShipResponse"
// @Failure 401 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /api/ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}
	ship, err := h.Ships.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ship})
}

// @Summary Create a new ship
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body ds.ShipRequest true "Ship fields"
// @Success 201 {object} object "data: ds.ShipResponse"
// @Failure 400 {object} object "error: message, fields: map"
// @Failure 401 {object} object "error: message"
// @Router /api/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var req ds.ShipRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ship, err := h.Ships.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": ship})
}

// @Summary Update ship
// @Description Overwrites all four mutable fields; partial update is not supported
// @Tags ships
// @Accept json
// @Produce json
// @Param id path int true "Ship ID"
// @Param ship body ds.ShipRequest true "Ship fields"
// @Success 200 {object} object "data: ds.ShipResponse"
// @Failure 400 {object} object "error: message, fields: map"
// @Failure 401 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /api/ships/{id} [put]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}
	var req ds.ShipRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ship, err := h.Ships.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ship})
}

// @Summary Generate a random ship name
// @Tags ships
// @Produce json
// @Success 200 {object} object "data: {name: string}"
// @Failure 401 {object} object "error: message"
// @Failure 503 {object} object "error: message"
// @Router /api/ships/generate-name [get]
func (h *ShipHandler) GenerateNameAPI(c *gin.Context) {
	name, err := h.Names.GenerateName(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"name": name}})
}

// @Summary Upload a ship photo
// @Tags ships
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Ship ID"
// @Param image formData file true "Image file"
// @Success 200 {object} object "data: {ship_id, photo_url}"
// @Failure 400 {object} object "error: message"
// @Failure 401 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /api/ships/{id}/image [post]
func (h *ShipHandler) AddShipImageAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}
	if h.MinioClient == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image storage not available"})
		return
	}

	// Проверяем существование корабля до загрузки файла
	if _, err := h.Ships.GetByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image file provided"})
		return
	}
	defer file.Close()

	newFileName := uuid.New().String() + filepath.Ext(header.Filename)
	objectName := "img/" + newFileName

	_, err = h.MinioClient.PutObject(
		c.Request.Context(),
		h.MinioBucket,
		objectName,
		file,
		header.Size,
		minio.PutObjectOptions{ContentType: header.Header.Get("Content-Type")},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	if err := h.Ships.AttachPhoto(c.Request.Context(), id, newFileName); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"ship_id":   id,
			"photo_url": newFileName,
		},
	})
}
