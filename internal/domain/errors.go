package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the engine. Callers match with errors.Is; the HTTP
// layer maps these onto status codes. Anything not wrapping one of these
// sentinels is treated as an internal store failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")

	// ErrInsufficientQuantity wraps ErrConflict so callers that only
	// distinguish the four top-level kinds still classify it correctly.
	ErrInsufficientQuantity = fmt.Errorf("%w: insufficient quantity available", ErrConflict)
)
