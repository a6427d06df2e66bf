package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockScaler is a mock of domain.Scaler.
type MockScaler struct {
	mock.Mock
}

func (m *MockScaler) Transform(row []float64) ([]float64, error) {
	args := m.Called(row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockScaler) NumFeatures() int {
	args := m.Called()
	return args.Int(0)
}

// MockModel is a mock of domain.Model.
type MockModel struct {
	mock.Mock
}

func (m *MockModel) Predict(row []float64) (float64, error) {
	args := m.Called(row)
	return args.Get(0).(float64), args.Error(1)
}
