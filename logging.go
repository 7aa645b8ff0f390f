package main

import (
	"io"
	"log/slog"
	"os"
)

// newLogger builds a JSON slog logger for the given level name.
func newLogger(level string) *slog.Logger {
	return newLoggerTo(os.Stdout, level)
}

func newLoggerTo(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level

	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// transitionLogger logs every controller status change for one form instance.
func transitionLogger(logger *slog.Logger, formID string) Observer {
	logger = logger.With("form_id", formID)
	return func(t Transition) {
		attrs := []any{"from", t.From.String(), "to", t.To.String(), "seq", t.Seq}
		if t.Outcome != "" {
			attrs = append(attrs, "outcome", t.Outcome, "elapsed_ms", t.Elapsed.Milliseconds())
		}
		switch {
		case t.Err != nil && t.Outcome != OutcomeStale:
			logger.Warn("contact relay failed", append(attrs, "error", t.Err)...)
		case t.Outcome == OutcomeStale:
			logger.Info("contact outcome superseded", attrs...)
		default:
			logger.Debug("contact status changed", attrs...)
		}
	}
}
