package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's instrumentation. A fresh registry is created
// per instance so tests can build isolated sets.
type Metrics struct {
	registry *prometheus.Registry

	PredictionsTotal *prometheus.CounterVec
	PredictionTime   prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PredictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "housepriced_predictions_total",
				Help: "Total number of prediction requests by outcome",
			},
			[]string{"status"},
		),
		PredictionTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "housepriced_prediction_duration_seconds",
				Help:    "Prediction handler duration",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.02, 0.1, 0.5},
			},
		),
	}

	m.registry.MustRegister(m.PredictionsTotal, m.PredictionTime)
	return m
}

// Handler serves the prometheus exposition endpoint.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
