package objfactory

import (
	"errors"
	"fmt"
)

// Sentinel errors. The registry never returns them from Register or Create;
// they classify the diagnostics it reports and the metrics it records.
var (
	// ErrDuplicateRegistration indicates a name is already registered.
	ErrDuplicateRegistration = errors.New("object already registered")

	// ErrInvalidTarget indicates a type cannot be registered.
	ErrInvalidTarget = errors.New("invalid registration target")

	// ErrUnknownName indicates no type is registered under a name.
	ErrUnknownName = errors.New("unknown object")

	// ErrConstructionFailed indicates a constructor returned no object.
	ErrConstructionFailed = errors.New("construction returned no object")
)

// RegistrationError describes a rejected registration.
type RegistrationError struct {
	// Name is the resolved name, or the requested one if resolution failed.
	Name string
	// Type is the Go type being registered.
	Type string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RegistrationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("register %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("register %s as %q: %v", e.Type, e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// CreationError describes a create call that produced no object.
type CreationError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *CreationError) Error() string {
	if errors.Is(e.Err, ErrUnknownName) {
		return fmt.Sprintf("%v %s", e.Err, e.Name)
	}
	return fmt.Sprintf("create %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *CreationError) Unwrap() error {
	return e.Err
}

// PanicError captures a panic raised by a constructor or Initialize.
type PanicError struct {
	// Name is the object name being built.
	Name string
	// Phase is "construct" or "initialize".
	Phase string
	// Value is the value passed to panic().
	Value any
	// Stack is the stack trace at the point of panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("object %s panicked during %s: %v", e.Name, e.Phase, e.Value)
}

// Unwrap reports panics as construction failures.
func (e *PanicError) Unwrap() error {
	return ErrConstructionFailed
}

// reason maps an error to the metric label used for it.
func reason(err error) string {
	var panicErr *PanicError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &panicErr):
		return "panic"
	case errors.Is(err, ErrDuplicateRegistration):
		return "duplicate"
	case errors.Is(err, ErrInvalidTarget):
		return "invalid_target"
	case errors.Is(err, ErrUnknownName):
		return "unknown"
	case errors.Is(err, ErrConstructionFailed):
		return "construction_failed"
	default:
		return "error"
	}
}
