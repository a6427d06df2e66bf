package testutil

import (
	"path/filepath"
	"testing"

	"house-price-service/internal/artifact"
)

// FittedScaler returns the fixture scaler the checked-in artifacts were
// produced from (California housing fit, five features).
func FittedScaler() *artifact.StandardScaler {
	return &artifact.StandardScaler{
		Mean:        []float64{3.8707, 28.6395, 5.429, 1.0967, 1425.4767},
		Scale:       []float64{1.8998, 12.5853, 2.4742, 0.4739, 1132.4621},
		NFeaturesIn: 5,
	}
}

// FittedModel returns the fixture regression model matching FittedScaler.
func FittedModel() *artifact.LinearRegression {
	return &artifact.LinearRegression{
		Coefficients: []float64{0.8296, 0.1188, -0.2654, 0.3057, -0.0045},
		Intercept:    2.0686,
	}
}

// WriteArtifacts saves the fixture pair into dir and returns both paths.
func WriteArtifacts(t *testing.T, dir string) (scalerPath, modelPath string) {
	t.Helper()

	scalerPath = filepath.Join(dir, "scaler.json")
	modelPath = filepath.Join(dir, "model.json")

	if err := FittedScaler().Save(scalerPath); err != nil {
		t.Fatalf("write scaler fixture: %v", err)
	}
	if err := FittedModel().Save(modelPath); err != nil {
		t.Fatalf("write model fixture: %v", err)
	}
	return scalerPath, modelPath
}
