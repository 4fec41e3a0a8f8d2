package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyCorpus   = errors.New("empty corpus")
	ErrEmptyMatrix   = errors.New("empty matrix")
	ErrZeroMarginal  = errors.New("zero marginal frequency")
	ErrInvalidConfig = errors.New("invalid configuration")
)
