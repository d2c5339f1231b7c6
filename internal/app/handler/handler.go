package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"

	"shiptracker/internal/app/handler/api"
	"shiptracker/internal/app/handler/middleware"
	"shiptracker/internal/app/service"
)

type Handler struct {
	AuthService      *service.AuthService
	ShipAPIHandler   *api.ShipHandler
	ReportAPIHandler *api.LocationReportHandler
	AuthAPIHandler   *api.AuthHandler
}

func NewHandler(
	auth *service.AuthService,
	ships *service.ShipService,
	reports *service.LocationReportService,
	names *service.NameGeneratorService,
	minioClient *minio.Client,
	minioBucket string,
	sessionTTLSeconds int,
) *Handler {
	return &Handler{
		AuthService: auth,
		ShipAPIHandler: &api.ShipHandler{
			Ships:       ships,
			Names:       names,
			MinioClient: minioClient,
			MinioBucket: minioBucket,
		},
		ReportAPIHandler: &api.LocationReportHandler{Reports: reports},
		AuthAPIHandler: &api.AuthHandler{
			Auth:              auth,
			SessionTTLSeconds: sessionTTLSeconds,
		},
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	{
		// Логин — единственный открытый маршрут
		apiGroup.POST("/auth/login", h.AuthAPIHandler.LoginAPI)

		authGroup := apiGroup.Group("/", middleware.AuthMiddleware(h.AuthService))
		{
			// Домен пользователя
			authGroup.POST("/auth/logout", h.AuthAPIHandler.LogoutAPI)
			authGroup.GET("/auth/me", h.AuthAPIHandler.MeAPI)

			// Домен кораблей
			authGroup.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
			authGroup.GET("/ships/generate-name", h.ShipAPIHandler.GenerateNameAPI)
			authGroup.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)
			authGroup.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
			authGroup.PUT("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
			authGroup.POST("/ships/:id/image", h.ShipAPIHandler.AddShipImageAPI)

			// Домен отчётов о местоположении
			authGroup.GET("/ships/:id/reports", h.ReportAPIHandler.GetReportsAPI)
			authGroup.POST("/ships/:id/reports", h.ReportAPIHandler.CreateReportAPI)
		}
	}
}
