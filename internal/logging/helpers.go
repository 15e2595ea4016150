package logging

import "log/slog"

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	Safe(func() {
		if logger != nil {
			logger.Info(msg, args...)
		}
	})
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	Safe(func() {
		if logger != nil {
			logger.Warn(msg, args...)
		}
	})
}

// Error logs an error when a logger is configured.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, FieldError, err)
	}
	Safe(func() {
		logger.Error(msg, args...)
	})
}

// Safe runs a logging call and swallows any panic it raises, so a broken handler or
// writer can never take down the caller.
func Safe(fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	fn()
}
