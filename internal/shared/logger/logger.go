package logger

import (
	"io"
	"log/slog"
	"os"

	"planets-api/internal/shared/config"
)

// Init installs the process-wide slog logger described by cfg.
func Init(cfg *config.Config) *slog.Logger {
	logger := New(os.Stdout, cfg.Logging)
	slog.SetDefault(logger)

	logger.With("component", "logger").Debug("Logger initialized",
		"level", cfg.Logging.Level,
		"json_format", cfg.Logging.JSONFormat,
		"environment", cfg.Server.Environment,
	)

	return logger
}

func New(w io.Writer, logConfig config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(logConfig.Level)}

	var handler slog.Handler
	if logConfig.JSONFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
