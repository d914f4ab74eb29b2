package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rs/zerolog"

	"service-gestor/internal/config"
	"service-gestor/internal/logx"
)

var logOutput io.Writer = os.Stdout

// NewLogger builds the service logger. LOG_FORMAT=zerolog switches the backend.
func NewLogger(cfg *config.Config) logx.Logger {
	var logger logx.Logger
	if cfg != nil && cfg.LogFormat == "zerolog" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		logger = logx.NewZerologAdapter(zerolog.New(logOutput).Level(zerolog.InfoLevel).With().Timestamp().Logger())
	} else {
		logger = logx.NewSlogAdapter(slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}
	return logger.With(logx.String("service", "service-gestor"))
}
