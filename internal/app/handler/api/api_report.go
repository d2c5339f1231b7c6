package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shiptracker/internal/app/ds"
)

type LocationReportHandler struct {
	Reports interface {
		ListByShip(ctx context.Context, shipID uint) ([]ds.LocationReportResponse, error)
		Create(ctx context.Context, shipID uint, req ds.LocationReportRequest) (ds.LocationReportResponse, error)
	}
}

// @Summary Get location reports for a ship
// @Description Reports sorted by report date ascending; empty list when none
// @Tags reports
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} object "data: []ds.LocationReportResponse"
// @Failure 401 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /api/ships/{id}/reports [get]
func (h *LocationReportHandler) GetReportsAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}
	reports, err := h.Reports.ListByShip(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  reports,
		"count": len(reports),
	})
}

// @Summary Add a location report for a ship
// @Description Reports are append-only; no update or delete
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Ship ID"
// @Param report body ds.LocationReportRequest true "Report fields"
// @Success 201 {object} object "data: ds.LocationReportResponse"
// @Failure 400 {object} object "error: message, fields: map"
// @Failure 401 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /api/ships/{id}/reports [post]
func (h *LocationReportHandler) CreateReportAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}
	var req ds.LocationReportRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := h.Reports.Create(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": report})
}
