package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"house-price-service/internal/artifact"
	"house-price-service/internal/domain"
	"house-price-service/internal/metrics"
	"house-price-service/internal/testutil"
	"house-price-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(scaler domain.Scaler, model domain.Model) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := New(usecase.NewPredictUseCase(scaler, model), metrics.New())
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func setupFixtureRouter() *gin.Engine {
	return setupRouter(testutil.FittedScaler(), testutil.FittedModel())
}

func validBody() []byte {
	body, _ := json.Marshal(map[string]float64{
		"MedInc":    8.3,
		"HouseAge":  41,
		"AveRooms":  6.98,
		"AveBedrms": 1.02,
		"AvePop":    322,
	})
	return body
}

func TestPredict(t *testing.T) {
	r := setupFixtureRouter()

	req, _ := http.NewRequest("POST", "/predict", bytes.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PredictedPrice float64            `json:"predicted_price"`
		InputFeatures  map[string]float64 `json:"input_features"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 390799.04602880555, resp.PredictedPrice, 1e-6)
	assert.Equal(t, map[string]float64{
		"MedInc": 8.3, "HouseAge": 41, "AveRooms": 6.98, "AveBedrms": 1.02, "AvePop": 322,
	}, resp.InputFeatures)
}

func TestPredict_Deterministic(t *testing.T) {
	r := setupFixtureRouter()

	var bodies []string
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("POST", "/predict", bytes.NewReader(validBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		bodies = append(bodies, w.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
}

func TestPredict_MissingField(t *testing.T) {
	scaler := new(testutil.MockScaler)
	model := new(testutil.MockModel)
	r := setupRouter(scaler, model)

	body, _ := json.Marshal(map[string]float64{
		"MedInc": 8.3, "HouseAge": 41, "AveRooms": 6.98, "AveBedrms": 1.02,
	})
	req, _ := http.NewRequest("POST", "/predict", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "AvePop")

	// Validation failures never reach the pipeline.
	scaler.AssertNotCalled(t, "Transform")
	model.AssertNotCalled(t, "Predict")
}

func TestPredict_NonNumericField(t *testing.T) {
	scaler := new(testutil.MockScaler)
	model := new(testutil.MockModel)
	r := setupRouter(scaler, model)

	body := []byte(`{"MedInc":"not-a-number","HouseAge":41,"AveRooms":6.98,"AveBedrms":1.02,"AvePop":322}`)
	req, _ := http.NewRequest("POST", "/predict", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	scaler.AssertNotCalled(t, "Transform")
	model.AssertNotCalled(t, "Predict")
}

func TestPredict_MalformedJSON(t *testing.T) {
	r := setupFixtureRouter()

	req, _ := http.NewRequest("POST", "/predict", strings.NewReader("{oops"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPredict_WidthMismatch(t *testing.T) {
	// A scaler fitted on eight columns cannot accept the five-field payload.
	wide := &artifact.StandardScaler{
		Mean:        make([]float64, 8),
		Scale:       []float64{1, 1, 1, 1, 1, 1, 1, 1},
		NFeaturesIn: 8,
	}
	r := setupRouter(wide, testutil.FittedModel())

	req, _ := http.NewRequest("POST", "/predict", bytes.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Prediction error")
	assert.Contains(t, w.Body.String(), "scaler expects 8 features, got 5")
}

func TestMetricsEndpoint(t *testing.T) {
	r := setupFixtureRouter()

	// One prediction so the counters have samples to expose.
	req, _ := http.NewRequest("POST", "/predict", bytes.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	req, _ = http.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "housepriced_predictions_total")
	assert.Contains(t, w.Body.String(), "housepriced_prediction_duration_seconds")
}
