package main

// go run cmd/shiptracker/main.go

import (
	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shiptracker/internal/app/config"
	"shiptracker/internal/app/dsn"
	"shiptracker/internal/app/handler"
	"shiptracker/internal/app/pkg"
	"shiptracker/internal/app/repository"
	"shiptracker/internal/app/service"
)

// @title ShipTracker API
// @version 1.0.0
// @description REST API for managing ships and their location reports
func main() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		logrus.Infof("Incoming request: %s %s", c.Request.Method, c.Request.URL.Path)
	})

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	rep, err := repository.New(dsn.FromEnv(), conf.RedisEndpoint, conf.RedisPassword)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	var minioClient *minio.Client
	if conf.MinioEndpoint != "" {
		minioClient, err = minio.New(conf.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.MinioAccessKey, conf.MinioSecretKey, ""),
			Secure: conf.MinioUseSSL,
		})
		if err != nil {
			logrus.Fatalf("error initializing minio client: %v", err)
		}
	}

	authService := service.NewAuthService(rep, rep, conf.JwtKey, conf.SessionTTL)
	shipService := service.NewShipService(rep)
	reportService := service.NewLocationReportService(rep)
	nameService := service.NewNameGeneratorService(conf.RandommerURL, conf.RandommerKey, conf.RandommerTimeout)

	hand := handler.NewHandler(
		authService,
		shipService,
		reportService,
		nameService,
		minioClient,
		conf.MinioBucket,
		int(conf.SessionTTL.Seconds()),
	)
	hand.SetupRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router)
	application.RunApp()
}
