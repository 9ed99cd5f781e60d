// Package errors provides structured error handling for the carousel runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid option or configuration file.
	KindConfig
	// KindLayout indicates unusable geometry (zero-sized view, NaN rects).
	KindLayout
	// KindObserver indicates a failure in a resize observation source.
	KindObserver
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLayout:
		return "layout"
	case KindObserver:
		return "observer"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CarouselError represents a structured error raised by the carousel runtime.
type CarouselError struct {
	// Op is the operation that failed (e.g., "resize.Handler.Init").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Source names the observed resource, if applicable (a layout file path).
	Source string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CarouselError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s [%s] source=%s: %v", e.Op, e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CarouselError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.FrameLoop").
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

// ErrorHandler receives errors reported by the carousel runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *CarouselError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
