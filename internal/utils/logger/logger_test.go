package logger

import (
	"bytes"
	"context"
	"testing"

	"golang.org/x/exp/slog"

	"dayadmin/internal/config"
	"dayadmin/internal/utils/logger/slogpretty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "unknown environment falls back to info",
			env:           "staging",
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.expectedLevel <= slog.LevelInfo, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestWithLevel(t *testing.T) {
	ctx := context.Background()

	quiet := WithLevel(config.EnvLocal, false)
	assert.False(t, quiet.Enabled(ctx, slog.LevelInfo))
	assert.True(t, quiet.Enabled(ctx, slog.LevelWarn))

	verbose := WithLevel(config.EnvLocal, true)
	assert.True(t, verbose.Enabled(ctx, slog.LevelDebug))
}

func TestPrettyHandler_Attrs(t *testing.T) {
	var buf bytes.Buffer
	opts := slogpretty.PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With(slog.String("component", "test"))

	log.Info("saved", slog.Int("count", 3))

	out := buf.String()
	assert.Contains(t, out, "saved")
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"count": 3`)
}
