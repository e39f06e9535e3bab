// Package errors holds loom's structured error types and the process-wide
// handler that reports them.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind groups errors by the subsystem that raised them.
type ErrorKind int

const (
	// KindUnknown is the zero kind.
	KindUnknown ErrorKind = iota
	// KindMessage indicates a message that did not match the application's message type.
	KindMessage
	// KindArena indicates misuse of the view arena.
	KindArena
	// KindDispatch indicates a dispatch contract violation, such as reentry.
	KindDispatch
	// KindPlatform indicates a platform adapter error.
	KindPlatform
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates a configuration error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindArena:
		return "arena"
	case KindDispatch:
		return "dispatch"
	case KindPlatform:
		return "platform"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// LoomError is an error raised by an engine operation.
type LoomError struct {
	// Op names the failing operation, as "package.Function".
	Op   string
	Kind ErrorKind
	Err  error
	// StackTrace is optional; verbose handlers print it.
	StackTrace string
	// Timestamp is filled in by Report when zero.
	Timestamp time.Time
}

func (e *LoomError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LoomError) Unwrap() error {
	return e.Err
}

// PanicError wraps a value recovered from a panic.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// MessageError reports a message whose dynamic type is not the
// application's declared message type. The message is dropped.
type MessageError struct {
	// Want is the declared message type.
	Want string
	// Got is the dynamic type of the delivered message.
	Got string
	// Value is the dropped message.
	Value any
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("unknown message: want %s, got %s (%v)", e.Want, e.Got, e.Value)
}

// ErrorHandler receives everything passed to Report and ReportPanic.
type ErrorHandler interface {
	HandleError(err *LoomError)
	HandlePanic(err *PanicError)
}
