package pkg

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shiptracker/internal/app/config"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
}

func NewApp(cfg *config.Config, router *gin.Engine) *App {
	return &App{
		Config: cfg,
		Router: router,
	}
}

// RunApp запускает HTTP-сервер и ждёт SIGINT/SIGTERM для мягкой остановки
func (a *App) RunApp() {
	addr := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	srv := &http.Server{
		Addr:    addr,
		Handler: a.Router,
	}

	go func() {
		logrus.Infof("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
}
