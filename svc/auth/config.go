package auth

import "time"

// Config is the environment surface of Service.
type Config struct {
	HashConcurrency int           `env:"AUTH_HASH_CONCURRENCY" envDefault:"0"` // 0 means GOMAXPROCS
	HashTimeout     time.Duration `env:"AUTH_HASH_TIMEOUT" envDefault:"5s"`
}

// Options converts c into service options.
func (c Config) Options() []ServiceOption {
	var opts []ServiceOption
	if c.HashConcurrency > 0 {
		opts = append(opts, WithHashConcurrency(c.HashConcurrency))
	}
	if c.HashTimeout > 0 {
		opts = append(opts, WithHashTimeout(c.HashTimeout))
	}
	return opts
}
