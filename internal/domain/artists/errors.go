package artists

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the referenced artist id does not exist.
	ErrNotFound = errors.New("artist not found")

	// ErrInvalidTransition: approve/reject called on a non-PENDING record.
	// Status transitions are one-shot from PENDING; re-approving is rejected
	// rather than silently accepted so double submissions surface.
	ErrInvalidTransition = errors.New("submission is not pending")

	// ErrInvalidState: featuring requires an APPROVED artist.
	ErrInvalidState = errors.New("only approved artists can be featured")
)

// ValidationError carries a caller-fixable message for a rejected payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
