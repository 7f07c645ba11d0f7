// path: store/errors.go
package store

import (
	"errors"
	"fmt"
)

// Failure categories. Store methods wrap one of these so callers can branch
// with errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("already exists")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("store unavailable")
)

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrValidation, field)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
