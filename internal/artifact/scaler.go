package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"house-price-service/internal/domain"
)

// StandardScaler is a fitted standardization transform: each column is
// centered by its mean and divided by its scale.
type StandardScaler struct {
	Mean        []float64 `json:"mean"`
	Scale       []float64 `json:"scale"`
	NFeaturesIn int       `json:"n_features_in"`
}

// LoadScaler reads a fitted scaler from path and validates its shape.
func LoadScaler(path string) (*StandardScaler, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler artifact: %w", err)
	}

	var s StandardScaler
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode scaler artifact: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Save writes the scaler to path. Used to produce fixture artifacts.
func (s *StandardScaler) Save(path string) error {
	if err := s.validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func (s *StandardScaler) validate() error {
	if s.NFeaturesIn <= 0 {
		return fmt.Errorf("%w: scaler n_features_in must be positive, got %d", domain.ErrMalformedArtifact, s.NFeaturesIn)
	}
	if len(s.Mean) != s.NFeaturesIn || len(s.Scale) != s.NFeaturesIn {
		return fmt.Errorf("%w: scaler mean/scale widths (%d/%d) disagree with n_features_in %d",
			domain.ErrMalformedArtifact, len(s.Mean), len(s.Scale), s.NFeaturesIn)
	}
	for i, sc := range s.Scale {
		if sc == 0 {
			return fmt.Errorf("%w: scaler scale[%d] is zero", domain.ErrMalformedArtifact, i)
		}
	}
	return nil
}

// Transform standardizes one row in place order: (x - mean) / scale.
func (s *StandardScaler) Transform(row []float64) ([]float64, error) {
	if len(row) != s.NFeaturesIn {
		return nil, fmt.Errorf("%w: scaler expects %d features, got %d", domain.ErrFeatureWidth, s.NFeaturesIn, len(row))
	}

	scaled := make([]float64, len(row))
	for i, x := range row {
		scaled[i] = (x - s.Mean[i]) / s.Scale[i]
	}
	return scaled, nil
}

func (s *StandardScaler) NumFeatures() int {
	return s.NFeaturesIn
}
