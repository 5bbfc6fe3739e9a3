package password

// Config holds argon2id cost parameters. Defaults follow the OWASP
// recommendation for argon2id.
type Config struct {
	MemoryKB   uint32 `env:"PASSWORD_ARGON2_MEMORY_KB" envDefault:"65536"` // MemoryKB is the memory cost in KiB.
	Time       uint32 `env:"PASSWORD_ARGON2_TIME" envDefault:"1"`          // Time is the number of passes over memory.
	Threads    uint8  `env:"PASSWORD_ARGON2_THREADS" envDefault:"4"`       // Threads is the degree of parallelism.
	SaltLength uint32 `env:"PASSWORD_ARGON2_SALT_LEN" envDefault:"16"`     // SaltLength is the random salt size in bytes.
	KeyLength  uint32 `env:"PASSWORD_ARGON2_KEY_LEN" envDefault:"32"`      // KeyLength is the derived key size in bytes.
}

// DefaultConfig returns the same values as the env defaults.
func DefaultConfig() Config {
	return Config{
		MemoryKB:   64 * 1024,
		Time:       1,
		Threads:    4,
		SaltLength: 16,
		KeyLength:  32,
	}
}

const (
	minMemoryKB   uint32 = 8 * 1024
	minSaltLength uint32 = 16
	minKeyLength  uint32 = 16
)

func (c Config) validate() error {
	switch {
	case c.MemoryKB < minMemoryKB:
		return errorf("memory must be >= %d KiB", minMemoryKB)
	case c.Time < 1:
		return errorf("time must be >= 1")
	case c.Threads < 1:
		return errorf("threads must be >= 1")
	case c.SaltLength < minSaltLength:
		return errorf("salt length must be >= %d", minSaltLength)
	case c.KeyLength < minKeyLength:
		return errorf("key length must be >= %d", minKeyLength)
	}
	return nil
}
