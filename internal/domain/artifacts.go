package domain

// Scaler is a fitted feature-normalization transform. Loaded once at startup
// and read-only thereafter, so it is safe for concurrent use.
type Scaler interface {
	Transform(row []float64) ([]float64, error)
	NumFeatures() int
}

// Model is a fitted regression predictor mapping a normalized row to a
// scalar output. Same lifecycle as Scaler.
type Model interface {
	Predict(row []float64) (float64, error)
}
