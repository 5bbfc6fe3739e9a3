package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/credkit/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "user@example.com", "user@example.com"},
		{"trims and lowercases", "  User@Example.COM \n", "user@example.com"},
		{"full-width letters fold", "ｕｓｅｒ@example.com", "user@example.com"},
		{"dots are preserved", "first..last@example.com", "first..last@example.com"},
		{"plus tag is preserved", "user+tag@example.com", "user+tag@example.com"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.in))
		})
	}
}

func TestNormalizeEmailIsIdempotent(t *testing.T) {
	t.Parallel()
	for _, in := range []string{" A@B.C ", "ｕｓｅｒ@EXAMPLE.com", "x"} {
		once := sanitizer.NormalizeEmail(in)
		assert.Equal(t, once, sanitizer.NormalizeEmail(once))
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Jane Doe", sanitizer.NormalizeName("  Jane\n\t Doe\x00 "))
	assert.Equal(t, "", sanitizer.NormalizeName(" \n "))
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "j***@example.com", sanitizer.MaskEmail("jane@example.com"))
	assert.Equal(t, "*@example.com", sanitizer.MaskEmail("j@example.com"))
	assert.Equal(t, "not-an-email", sanitizer.MaskEmail("not-an-email"))
	assert.Equal(t, "@example.com", sanitizer.MaskEmail("@example.com"))
}

func TestCompose(t *testing.T) {
	t.Parallel()
	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
	assert.Equal(t, "abc", clean("  ABC "))
	assert.Equal(t, "héllo", sanitizer.MaxLength("héllo world", 5))
	assert.Equal(t, "", sanitizer.MaxLength("abc", 0))
	assert.Equal(t, "a\tb", sanitizer.RemoveControlChars("a\x07\tb"))
}
