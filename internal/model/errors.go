package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAttribute is wrapped by every failed attribute lookup.
	ErrNoAttribute = errors.New("no such attribute")
	// ErrReadOnly is returned when a sealed slot or attribute refuses a write.
	ErrReadOnly = errors.New("read-only attribute")
	// ErrNotCallable is returned when a non-callable value is invoked.
	ErrNotCallable = errors.New("value is not callable")
	// ErrArity is returned when call arguments do not match a signature.
	ErrArity = errors.New("wrong arguments")
	// ErrScanInProgress is returned by Heap.Retarget when another scan is running.
	ErrScanInProgress = errors.New("instance scan already in progress")
	// ErrAmbiguousComparison is returned when array values are compared with ==.
	ErrAmbiguousComparison = errors.New("truth value of an array with more than one element is ambiguous")
	// ErrRecursion is returned when a call would exceed MaxCallDepth.
	ErrRecursion = errors.New("maximum recursion depth exceeded")
)

// AttributeError reports a failed attribute lookup on an owner.
type AttributeError struct {
	Owner string
	Name  string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s has no attribute %q", e.Owner, e.Name)
}

// Unwrap lets errors.Is match ErrNoAttribute.
func (e *AttributeError) Unwrap() error {
	return ErrNoAttribute
}
