package dto

import (
	"house-price-service/internal/domain"
)

// PredictRequest carries the five fitted feature columns. Fields are
// pointers so that an absent field fails binding while a literal zero is
// still accepted.
type PredictRequest struct {
	MedInc    *float64 `json:"MedInc" binding:"required"`
	HouseAge  *float64 `json:"HouseAge" binding:"required"`
	AveRooms  *float64 `json:"AveRooms" binding:"required"`
	AveBedrms *float64 `json:"AveBedrms" binding:"required"`
	AvePop    *float64 `json:"AvePop" binding:"required"`
}

func (r *PredictRequest) FeatureVector() domain.FeatureVector {
	return domain.FeatureVector{
		MedInc:    *r.MedInc,
		HouseAge:  *r.HouseAge,
		AveRooms:  *r.AveRooms,
		AveBedrms: *r.AveBedrms,
		AvePop:    *r.AvePop,
	}
}

type PredictionResponse struct {
	PredictedPrice float64            `json:"predicted_price"`
	InputFeatures  map[string]float64 `json:"input_features"`
}

func ToPredictionResponse(p *domain.Prediction) PredictionResponse {
	return PredictionResponse{
		PredictedPrice: p.PredictedPrice,
		InputFeatures:  p.InputFeatures,
	}
}
