package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shiptracker/internal/app/ds"
)

// respondError переводит доменные ошибки в HTTP-статусы.
// Внутренности (SQL, транспорт) наружу не отдаются.
func respondError(c *gin.Context, err error) {
	if ve, ok := ds.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
		return
	}
	switch {
	case errors.Is(err, ds.ErrShipNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": ds.ErrShipNotFound.Error()})
	case errors.Is(err, ds.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": ds.ErrUnauthenticated.Error()})
	case errors.Is(err, ds.ErrNameServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ds.ErrNameServiceUnavailable.Error()})
	default:
		logrus.Error(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
