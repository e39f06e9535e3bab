package errors

import (
	"context"
	"log/slog"
)

// LogHandler is an ErrorHandler that writes through log/slog.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a LoomError. Message mismatches are warnings, everything
// else is an error.
func (h *LogHandler) HandleError(err *LoomError) {
	if err == nil {
		return
	}
	level := slog.LevelError
	if err.Kind == KindMessage {
		level = slog.LevelWarn
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Log(context.Background(), level, "loom error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"value", err.Value}
	if err.Op != "" {
		attrs = append(attrs, "op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("loom panic", attrs...)
}
