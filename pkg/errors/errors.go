// Package errors provides the structured error types of the layout and
// event core.
//
// Malformed geometric input and missing event descriptors are contract
// violations: they are returned to the caller immediately as *Error values
// wrapping one of the sentinel errors below, so callers can match them with
// the standard library's errors.Is.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidInput indicates a NaN or infinite size passed to Measure.
	KindInvalidInput
	// KindInvalidMeasurement indicates a measure or arrange override produced an unusable size.
	KindInvalidMeasurement
	// KindInvalidRect indicates a negative, NaN or infinite rectangle passed to Arrange.
	KindInvalidRect
	// KindMissingEvent indicates RaiseEvent was called without an event descriptor.
	KindMissingEvent
	// KindTree indicates an invalid structural change to the tree.
	KindTree
	// KindConfig indicates a configuration or scene document error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindInvalidMeasurement:
		return "invalid measurement"
	case KindInvalidRect:
		return "invalid rectangle"
	case KindMissingEvent:
		return "missing event"
	case KindTree:
		return "tree"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by *Error values.
var (
	ErrInvalidInput       = stderrors.New("measure requires a finite, non-NaN available size")
	ErrInvalidMeasurement = stderrors.New("measure produced a negative, infinite or NaN size")
	ErrInvalidRect        = stderrors.New("arrange requires a finite, non-negative rectangle")
	ErrInvalidArrangement = stderrors.New("arrange produced a negative, infinite or NaN size")
	ErrMissingEvent       = stderrors.New("routed event args carry no event descriptor")
	ErrAlreadyParented    = stderrors.New("element already has a parent")
	ErrInvalidChild       = stderrors.New("invalid child element")
	ErrInvalidDocument    = stderrors.New("invalid scene document")
)

// Error represents a structured error raised by the core.
type Error struct {
	// Op is the operation that failed (e.g., "layout.Measure").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Element describes the element involved, if any.
	Element string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error was reported. Set by Report when zero.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s [%s] element=%s: %v", e.Op, e.Kind, e.Element, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "interactivity.RaiseEvent").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors that have no caller to return to, such as
// failures inside a deferred layout pass driven by a host loop.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
