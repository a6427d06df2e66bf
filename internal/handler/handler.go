package handler

import (
	"house-price-service/internal/metrics"
	"house-price-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	predictUC *usecase.PredictUseCase
	metrics   *metrics.Metrics
}

func New(predictUC *usecase.PredictUseCase, m *metrics.Metrics) *Handler {
	return &Handler{predictUC: predictUC, metrics: m}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Frontend)
	r.POST("/predict", h.Predict)
	r.GET("/metrics", h.metrics.Handler())
}
