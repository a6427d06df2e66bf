package domain

// NumFeatures is the width of the feature vector the artifacts were fitted on.
const NumFeatures = 5

// Feature names in fit order. The scaler and model were fitted on columns in
// exactly this sequence; it is not reorderable.
const (
	FeatureMedInc    = "MedInc"
	FeatureHouseAge  = "HouseAge"
	FeatureAveRooms  = "AveRooms"
	FeatureAveBedrms = "AveBedrms"
	FeatureAvePop    = "AvePop"
)

// FeatureVector is one house observation. Immutable once constructed; it
// lives for the duration of a single request.
type FeatureVector struct {
	MedInc    float64
	HouseAge  float64
	AveRooms  float64
	AveBedrms float64
	AvePop    float64
}

// Values returns the vector as a row in fit order.
func (v FeatureVector) Values() []float64 {
	return []float64{v.MedInc, v.HouseAge, v.AveRooms, v.AveBedrms, v.AvePop}
}

// Map returns the vector keyed by feature name, used to echo inputs back.
func (v FeatureVector) Map() map[string]float64 {
	return map[string]float64{
		FeatureMedInc:    v.MedInc,
		FeatureHouseAge:  v.HouseAge,
		FeatureAveRooms:  v.AveRooms,
		FeatureAveBedrms: v.AveBedrms,
		FeatureAvePop:    v.AvePop,
	}
}

// Prediction is the result of one pipeline run.
type Prediction struct {
	PredictedPrice float64
	InputFeatures  map[string]float64
}
