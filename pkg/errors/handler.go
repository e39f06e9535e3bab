package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerBox lets atomic.Pointer hold an interface value.
type handlerBox struct{ h ErrorHandler }

var current atomic.Pointer[handlerBox]

func init() {
	current.Store(&handlerBox{h: &LogHandler{}})
}

// SetHandler installs h as the process-wide error handler. Nil restores a
// LogHandler writing to slog.Default().
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&handlerBox{h: h})
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	return current.Load().h
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report hands err to the installed handler, stamping it first.
func Report(err *LoomError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleError(err)
}

// ReportPanic hands err to the installed handler, stamping it first.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandlePanic(err)
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// Recover reports a panic in progress. It must be deferred directly:
//
//	defer errors.Recover("host.Paint")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback reports a panic in progress, then passes its value to
// callback.
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	reportRecovered(op, r)
	if callback != nil {
		callback(r)
	}
}

// CaptureStack formats up to 32 frames of the caller's stack, one
// "function\n\tfile:line" entry per frame.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for frame, more := frames.Next(); ; frame, more = frames.Next() {
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
