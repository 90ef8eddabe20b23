package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidAnalysis    = errors.New("invalid analysis payload")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInvalidAmount      = errors.New("amount must be positive")
)
