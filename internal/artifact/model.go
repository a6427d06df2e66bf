package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"house-price-service/internal/domain"
)

// LinearRegression is a fitted ordinary least squares model.
type LinearRegression struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// LoadModel reads a fitted regression model from path.
func LoadModel(path string) (*LinearRegression, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var m LinearRegression
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if len(m.Coefficients) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyModel, path)
	}

	return &m, nil
}

// Save writes the model to path. Used to produce fixture artifacts.
func (m *LinearRegression) Save(path string) error {
	if len(m.Coefficients) == 0 {
		return domain.ErrEmptyModel
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

// Predict computes the dot product of the row with the fitted coefficients
// plus the intercept.
func (m *LinearRegression) Predict(row []float64) (float64, error) {
	if len(row) != len(m.Coefficients) {
		return 0, fmt.Errorf("%w: model expects %d features, got %d", domain.ErrFeatureWidth, len(m.Coefficients), len(row))
	}

	out := 0.0
	for i, c := range m.Coefficients {
		out += c * row[i]
	}
	out += m.Intercept
	return out, nil
}
