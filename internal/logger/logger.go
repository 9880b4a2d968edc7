package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/graphblog/api/internal/config"
)

// New builds the process-wide logger and installs it as the slog
// default. Production emits JSON lines; everything else keeps the
// readable text handler.
func New(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if strings.EqualFold(cfg.AppEnv, "production") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
