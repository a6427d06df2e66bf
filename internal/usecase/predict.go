package usecase

import (
	"context"
	"fmt"

	"house-price-service/internal/domain"
)

// priceScale rescales the model's output (fitted on prices in units of
// $100k) into dollars.
const priceScale = 100_000

type PredictUseCase struct {
	scaler domain.Scaler
	model  domain.Model
}

func NewPredictUseCase(scaler domain.Scaler, model domain.Model) *PredictUseCase {
	return &PredictUseCase{scaler: scaler, model: model}
}

// Predict runs one feature vector through the scaler and model. It is a pure
// function of the input and the loaded artifacts.
func (uc *PredictUseCase) Predict(ctx context.Context, features domain.FeatureVector) (*domain.Prediction, error) {
	row := features.Values()

	if len(row) != uc.scaler.NumFeatures() {
		return nil, fmt.Errorf("%w: scaler expects %d features, got %d",
			domain.ErrFeatureWidth, uc.scaler.NumFeatures(), len(row))
	}

	scaled, err := uc.scaler.Transform(row)
	if err != nil {
		return nil, fmt.Errorf("scale features: %w", err)
	}

	raw, err := uc.model.Predict(scaled)
	if err != nil {
		return nil, fmt.Errorf("model predict: %w", err)
	}

	return &domain.Prediction{
		PredictedPrice: raw * priceScale,
		InputFeatures:  features.Map(),
	}, nil
}
