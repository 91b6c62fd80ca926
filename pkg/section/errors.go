package section

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is wrapped by DuplicateError.
	ErrDuplicate = errors.New("section already registered")

	// ErrInvalid reports a section without a name or routine.
	ErrInvalid = errors.New("invalid section")
)

// DuplicateError represents a second registration of the same section name
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("section %q already registered", e.Name)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}
