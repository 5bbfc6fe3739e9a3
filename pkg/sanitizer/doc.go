// Package sanitizer normalizes user input before it is validated or stored.
//
// Helpers are small string transforms that compose with Apply and Compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NFKC, sanitizer.SingleLine)
//	name = clean(name)
//
// NormalizeEmail is the canonical form used for identity lookups: two inputs
// that normalize to the same string are the same account. MaskEmail hides the
// local part for log lines.
//
// The package is stateless and safe for concurrent use.
package sanitizer
