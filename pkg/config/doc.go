// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - The default .env in the working directory is read once per process.
//     LoadEnv reads additional files explicitly.
//   - Load parses the environment into any struct using env tags and returns a
//     fresh value every time. Callers build their configuration once at startup
//     and pass it down; nothing is cached at package level.
//   - WithEnvironment swaps the source for a map, which keeps tests away from
//     process-wide state.
//
// Usage:
//
//	var cfg struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// matched with errors.Is.
package config
