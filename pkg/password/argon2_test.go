package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credkit/pkg/password"
)

// testConfig keeps memory at the allowed minimum so the suite stays fast.
func testConfig() password.Config {
	return password.Config{
		MemoryKB:   8 * 1024,
		Time:       1,
		Threads:    1,
		SaltLength: 16,
		KeyLength:  32,
	}
}

func newHasher(t *testing.T) *password.Hasher {
	t.Helper()
	h, err := password.New(testConfig())
	require.NoError(t, err)
	return h
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("accepts defaults", func(t *testing.T) {
		t.Parallel()
		h, err := password.New(password.DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, h)
	})

	tests := []struct {
		name   string
		mutate func(*password.Config)
	}{
		{"low memory", func(c *password.Config) { c.MemoryKB = 1024 }},
		{"zero time", func(c *password.Config) { c.Time = 0 }},
		{"zero threads", func(c *password.Config) { c.Threads = 0 }},
		{"short salt", func(c *password.Config) { c.SaltLength = 8 }},
		{"short key", func(c *password.Config) { c.KeyLength = 8 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			tt.mutate(&cfg)
			_, err := password.New(cfg)
			assert.ErrorIs(t, err, password.ErrInvalidConfig)
		})
	}
}

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		encoded, err := h.Hash("secret")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=1$"))

		ok, err := h.Verify("secret", encoded)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password is a mismatch, not an error", func(t *testing.T) {
		t.Parallel()
		encoded, err := h.Hash("secret")
		require.NoError(t, err)

		ok, err := h.Verify("Secret", encoded)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("same password yields distinct hashes", func(t *testing.T) {
		t.Parallel()
		first, err := h.Hash("secret")
		require.NoError(t, err)
		second, err := h.Hash("secret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		for _, encoded := range []string{first, second} {
			ok, err := h.Verify("secret", encoded)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})

	t.Run("empty password rejected", func(t *testing.T) {
		t.Parallel()
		_, err := h.Hash("")
		assert.ErrorIs(t, err, password.ErrEmptyPassword)
	})

	t.Run("verifies hashes made with other parameters", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.Time = 2
		cfg.KeyLength = 24
		other, err := password.New(cfg)
		require.NoError(t, err)

		encoded, err := other.Hash("secret")
		require.NoError(t, err)

		ok, err := h.Verify("secret", encoded)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestHasher_VerifyCorrupt(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	valid, err := h.Hash("secret")
	require.NoError(t, err)
	parts := strings.Split(valid, "$")

	corrupt := map[string]string{
		"empty":             "",
		"bcrypt":            "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		"missing segment":   strings.Join(parts[:5], "$"),
		"wrong version":     strings.Replace(valid, "v=19", "v=16", 1),
		"bad cost":          strings.Replace(valid, "m=8192", "m=abc", 1),
		"unknown parameter": strings.Replace(valid, "p=1", "x=1", 1),
		"low memory":        strings.Replace(valid, "m=8192", "m=16", 1),
		"bad salt":          strings.Join([]string{"", parts[1], parts[2], parts[3], "!!!", parts[5]}, "$"),
		"short key":         strings.Join([]string{"", parts[1], parts[2], parts[3], parts[4], "AAAA"}, "$"),
	}
	for name, encoded := range corrupt {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ok, err := h.Verify("secret", encoded)
			assert.False(t, ok)
			assert.ErrorIs(t, err, password.ErrCorruptHash)
		})
	}
}

func TestHasher_NeedsRehash(t *testing.T) {
	t.Parallel()

	weak := newHasher(t)
	encoded, err := weak.Hash("secret")
	require.NoError(t, err)

	assert.False(t, weak.NeedsRehash(encoded))

	strongCfg := testConfig()
	strongCfg.Time = 3
	strong, err := password.New(strongCfg)
	require.NoError(t, err)

	assert.True(t, strong.NeedsRehash(encoded))
	assert.True(t, strong.NeedsRehash("$2a$10$legacy"))
}
