package models

import "errors"

var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrInvalidLabel  = errors.New("label must be 0 or 1")
	ErrEmptyDataset  = errors.New("empty dataset")
	ErrNotTrained    = errors.New("model has not been trained")
)
