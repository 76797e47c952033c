package life

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a history index does not name a stored generation.
var ErrOutOfRange = errors.New("generation out of range")

// ValidationError rejects a user request before any state changes.
type ValidationError struct {
	Op     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
