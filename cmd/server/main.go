package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"house-price-service/internal/artifact"
	"house-price-service/internal/config"
	"house-price-service/internal/handler"
	"house-price-service/internal/metrics"
	"house-price-service/internal/middleware"
	"house-price-service/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Artifacts are loaded once and are immutable for the process lifetime.
	// A missing or corrupt file is fatal: the server never starts serving
	// traffic without both.
	scaler, err := artifact.LoadScaler(cfg.Artifacts.ScalerPath)
	if err != nil {
		log.Fatalf("load scaler artifact: %v", err)
	}
	model, err := artifact.LoadModel(cfg.Artifacts.ModelPath)
	if err != nil {
		log.Fatalf("load model artifact: %v", err)
	}
	log.WithFields(log.Fields{
		"scaler":   cfg.Artifacts.ScalerPath,
		"model":    cfg.Artifacts.ModelPath,
		"features": scaler.NumFeatures(),
	}).Info("artifacts loaded")

	m := metrics.New()
	predictUC := usecase.NewPredictUseCase(scaler, model)
	h := handler.New(predictUC, m)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	h.RegisterRoutes(router)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
