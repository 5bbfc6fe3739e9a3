package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to JSON at info", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Zero(t, buf.Len())

		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("hello")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("context extractors", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("trace", key{}),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				return slog.String("static", "yes"), true
			}),
		)
		ctx := context.WithValue(context.Background(), key{}, "abc")
		log.InfoContext(ctx, "hello")
		entry := decode(t, buf)
		assert.Equal(t, "abc", entry["trace"])
		assert.Equal(t, "yes", entry["static"])
	})

	t.Run("missing context value is omitted", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("trace", key{}))
		log.InfoContext(context.Background(), "hello")
		assert.NotContains(t, decode(t, buf), "trace")
	})

	t.Run("extractors survive With", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				return slog.String("x", "1"), true
			}),
		).With("component", "auth")
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "1", entry["x"])
		assert.Equal(t, "auth", entry["component"])
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env      string
		wantEnv  string
		debugOut bool
		json     bool
	}{
		{"production", "production", false, true},
		{"prod", "production", false, true},
		{"staging", "staging", false, true},
		{"development", "development", true, false},
		{"", "development", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(tt.env, "credkit"))
			log.Debug("debug")
			assert.Equal(t, tt.debugOut, buf.Len() > 0)

			buf.Reset()
			log.Info("hello")
			if tt.json {
				entry := decode(t, buf)
				assert.Equal(t, tt.wantEnv, entry["env"])
				assert.Equal(t, "credkit", entry["service"])
			} else {
				assert.Contains(t, buf.String(), "env="+tt.wantEnv)
				assert.Contains(t, buf.String(), "service=credkit")
			}
		})
	}
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	t.Run("empty config yields no options", func(t *testing.T) {
		t.Parallel()
		opts, err := logger.Config{}.Options()
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("overrides preset", func(t *testing.T) {
		t.Parallel()
		opts, err := logger.Config{Level: "warn", Format: "JSON"}.Options()
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		all := append([]logger.Option{logger.WithOutput(buf), logger.WithEnvironment("development", "")}, opts...)
		log := logger.New(all...)
		log.Info("hidden")
		assert.Zero(t, buf.Len())
		log.Warn("shown")
		assert.Equal(t, "WARN", decode(t, buf)["level"])
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()
		_, err := logger.Config{Level: "loud"}.Options()
		require.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()
		_, err := logger.Config{Format: "xml"}.Options()
		require.Error(t, err)
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { logger.Discard().Error("nothing") })
}
