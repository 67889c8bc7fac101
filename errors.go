package Go_Containers

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Any instance of the matching error type compares
// equal to them regardless of Op.
var (
	ErrEmptyStructure = &EmptyStructureError{}
	ErrNotFound       = &NotFoundError{}
	ErrInvalidIndex   = &InvalidIndexError{}
)

// EmptyStructureError is returned when an operation that needs at least one
// element is called on an empty container. It's a precondition violation:
// check Empty() first.
type EmptyStructureError struct {
	Op string
}

func (e *EmptyStructureError) Error() string {
	if e.Op == "" {
		return "empty structure"
	}
	return e.Op + ": called on an empty structure"
}

func (e *EmptyStructureError) Is(target error) bool {
	var t *EmptyStructureError
	return errors.As(target, &t)
}

// NotFoundError is returned when a lookup misses in a non-empty container.
type NotFoundError struct {
	Op string
}

func (e *NotFoundError) Error() string {
	if e.Op == "" {
		return "entry not found"
	}
	return e.Op + ": entry not found"
}

func (e *NotFoundError) Is(target error) bool {
	var t *NotFoundError
	return errors.As(target, &t)
}

// InvalidIndexError is returned for positions outside [1, Size].
type InvalidIndexError struct {
	Op          string
	Index, Size int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("%s: position %d out of range [1, %d]", e.Op, e.Index, e.Size)
}

func (e *InvalidIndexError) Is(target error) bool {
	var t *InvalidIndexError
	return errors.As(target, &t)
}
