package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credkit/pkg/config"
)

type sampleConfig struct {
	Name    string        `env:"NAME,required"`
	Port    int           `env:"PORT" envDefault:"8080"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Tags    []string      `env:"TAGS" envSeparator:","`
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("parses from map with defaults", func(t *testing.T) {
		t.Parallel()
		var cfg sampleConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{
			"NAME": "credkit",
			"TAGS": "a,b",
		}))
		require.NoError(t, err)
		assert.Equal(t, "credkit", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	})

	t.Run("every call parses afresh", func(t *testing.T) {
		t.Parallel()
		var first, second sampleConfig
		require.NoError(t, config.Load(&first, config.WithEnvironment(map[string]string{"NAME": "one"})))
		require.NoError(t, config.Load(&second, config.WithEnvironment(map[string]string{"NAME": "two"})))
		assert.Equal(t, "one", first.Name)
		assert.Equal(t, "two", second.Name)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		var cfg sampleConfig
		err := config.Load(&cfg,
			config.WithEnvironment(map[string]string{"APP_NAME": "prefixed", "NAME": "ignored"}),
			config.WithPrefix("APP_"),
		)
		require.NoError(t, err)
		assert.Equal(t, "prefixed", cfg.Name)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()
		var cfg sampleConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Parallel()
		var cfg sampleConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"NAME": "x", "PORT": "eighty"}))
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, config.Load[sampleConfig](nil), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		var cfg sampleConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		var cfg sampleConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"NAME": "ok"}))
	})
}

func TestLoadEnv(t *testing.T) {
	require.NoError(t, os.Unsetenv("TEST_FILE_VALUE"))
	require.NoError(t, os.Unsetenv("TEST_FILE_QUOTED"))
	t.Cleanup(func() {
		_ = os.Unsetenv("TEST_FILE_VALUE")
		_ = os.Unsetenv("TEST_FILE_QUOTED")
	})

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg struct {
		Value  string `env:"TEST_FILE_VALUE"`
		Quoted string `env:"TEST_FILE_QUOTED"`
	}
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, "quoted value", cfg.Quoted)

	err := config.LoadEnv("testdata/missing.env")
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
