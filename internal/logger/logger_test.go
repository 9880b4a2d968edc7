package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphblog/api/internal/config"
)

func TestNew_HandlerPerEnvironment(t *testing.T) {
	prod := New(&config.Config{AppEnv: "production"})
	_, ok := prod.Handler().(*slog.JSONHandler)
	assert.True(t, ok, "production should log JSON")

	dev := New(&config.Config{AppEnv: "development"})
	_, ok = dev.Handler().(*slog.TextHandler)
	assert.True(t, ok, "development should log text")

	assert.Same(t, dev, slog.Default())
}
