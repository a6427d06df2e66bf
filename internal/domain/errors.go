package domain

import "errors"

var (
	ErrFeatureWidth      = errors.New("feature width mismatch")
	ErrMalformedArtifact = errors.New("malformed artifact")
	ErrEmptyModel        = errors.New("model has no coefficients")
)
