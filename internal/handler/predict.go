package handler

import (
	"net/http"
	"time"

	"house-price-service/internal/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.PredictionsTotal.WithLabelValues("invalid").Inc()
		bindError(c, err)
		return
	}

	start := time.Now()
	pred, err := h.predictUC.Predict(c.Request.Context(), req.FeatureVector())
	h.metrics.PredictionTime.Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithError(err).Error("prediction failed")
		h.metrics.PredictionsTotal.WithLabelValues("error").Inc()
		predictionError(c, err)
		return
	}

	h.metrics.PredictionsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, dto.ToPredictionResponse(pred))
}
