package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/dhartisetu/setu/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	logging.Info().Msg("info message")
	logging.Error().Msg("error message")

	assert.Contains(t, buf.String(), "info message")
	assert.Contains(t, buf.String(), "error message")
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRequestID(ctx, "req-123")

	logging.FromContext(ctx).Info().Msg("test message")

	assert.Equal(t, "req-123", logging.RequestID(ctx))
	tl.AssertContains(t, `"request_id":"req-123"`)
	tl.AssertContains(t, "test message")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Equal(t, "", logging.RequestID(context.Background()))
}

func TestNewLoggerFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   *logging.Config
		contains string
		empty    bool
	}{
		{
			name:     "debug level json",
			config:   &logging.Config{Level: "debug", Format: "json"},
			contains: `"level":"debug"`,
		},
		{
			name:   "warn level filters debug",
			config: &logging.Config{Level: "warning", Format: "json"},
			empty:  true,
		},
		{
			name:     "console format",
			config:   &logging.Config{Level: "debug", Format: "console", NoColor: true},
			contains: "DBG",
		},
	}

	oldLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(oldLevel) })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.config.Writer = buf

			logger := logging.NewLoggerFromConfig(tt.config)
			logger.Debug().Msg("probe")

			if tt.empty {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Logger.Info().Msg("[API] GET http://x/api/v1/location/states")
	tl.Logger.Error().Msg("API Error")

	assert.Len(t, tl.Lines(), 2)
	assert.Len(t, tl.LinesContaining("[API]"), 1)
	assert.True(t, strings.HasPrefix(tl.Lines()[0], "{"))
}
