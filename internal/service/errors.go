package service

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrInvalid       = errors.New("invalid")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrQuotaExceeded = errors.New("daily translation limit exceeded")
	ErrProvider      = errors.New("translation provider failed")
)
