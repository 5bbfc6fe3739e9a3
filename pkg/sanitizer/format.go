package sanitizer

import "strings"

var normalizeEmail = Compose(Trim, NFKC, ToLower)

// NormalizeEmail returns the canonical identity form of an address: trimmed,
// NFKC-normalized and lowercased. The local part is otherwise preserved, so
// dots and plus tags stay significant.
func NormalizeEmail(email string) string {
	return normalizeEmail(email)
}

// NormalizeName cleans a display name for storage.
func NormalizeName(name string) string {
	return Apply(name, NFKC, RemoveControlChars, SingleLine)
}

// MaskEmail hides the local part for logging, keeping its first character
// and the domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}
