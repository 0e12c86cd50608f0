package game

import "errors"

// Error kinds returned by Service operations. Operations wrap these with
// context via fmt.Errorf and %w; callers match with errors.Is and decide
// the user-facing presentation. An operation that returns an error has
// made no state change.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrInvalidPhase     = errors.New("invalid phase")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidTarget    = errors.New("invalid target")
)
