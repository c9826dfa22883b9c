package ai

import "errors"

var (
	ErrMissingAPIKey   = errors.New("ai: api key is required")
	ErrMissingModel    = errors.New("ai: model is required")
	ErrMissingBaseURL  = errors.New("ai: base url is required for compatible provider")
	ErrInvalidProvider = errors.New("ai: unknown provider")
)
