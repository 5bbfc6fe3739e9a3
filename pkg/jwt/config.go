package jwt

import "time"

// MinSigningKeyLength is the shortest HMAC-SHA256 key New accepts.
const MinSigningKeyLength = 32

// Config holds the token signing settings.
type Config struct {
	SigningKey string        `env:"JWT_SIGNING_KEY,required,unset"` // SigningKey is the HMAC secret. Removed from the environment once read.
	TTL        time.Duration `env:"JWT_TTL" envDefault:"6h"`        // TTL is how long an issued token stays valid.
	Issuer     string        `env:"JWT_ISSUER"`                     // Issuer is written to and required in the iss claim when set.
}
