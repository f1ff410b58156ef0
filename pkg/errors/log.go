package errors

import "go.uber.org/zap"

// LogHandler is an ErrorHandler that writes to a zap logger.
type LogHandler struct {
	// Logger receives the entries. Nil means the global zap logger.
	Logger *zap.Logger
	// Verbose adds stack traces to panic entries.
	Verbose bool
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return zap.L().Named("arbor")
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Element != "" {
		fields = append(fields, zap.String("element", err.Element))
	}
	h.logger().Error("arbor error", fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("arbor panic", fields...)
}
