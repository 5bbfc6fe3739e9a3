package jwt

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of a session token.
type Claims struct {
	gojwt.RegisteredClaims
}

// Issuer signs and verifies session tokens. It holds the signing key for the
// lifetime of the process and is safe for concurrent use.
type Issuer struct {
	key    []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
	parser *gojwt.Parser
}

// Option configures an Issuer.
type Option func(*Issuer)

// WithClock replaces time.Now for both issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		if now != nil {
			i.now = now
		}
	}
}

// New creates an Issuer from cfg.
func New(cfg Config, opts ...Option) (*Issuer, error) {
	if cfg.SigningKey == "" {
		return nil, ErrMissingSigningKey
	}
	if len(cfg.SigningKey) < MinSigningKeyLength {
		return nil, ErrWeakSigningKey
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("%w: ttl must be positive", ErrInvalidTokenConfig)
	}

	i := &Issuer{
		key:    []byte(cfg.SigningKey),
		ttl:    cfg.TTL,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}

	parserOpts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithIssuedAt(),
		gojwt.WithTimeFunc(i.now),
		gojwt.WithStrictDecoding(),
	}
	if i.issuer != "" {
		parserOpts = append(parserOpts, gojwt.WithIssuer(i.issuer))
	}
	i.parser = gojwt.NewParser(parserOpts...)

	return i, nil
}

// TTL returns the validity window of issued tokens.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a token for subjectID that expires after the configured TTL.
func (i *Issuer) Issue(subjectID string) (string, error) {
	if subjectID == "" {
		return "", ErrMissingSubject
	}

	now := i.now()
	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subjectID,
			Issuer:    i.issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return token, nil
}

// Verify checks the token signature, then its expiry, and returns its claims.
// The error is ErrInvalidSignature, ErrExpiredToken or ErrInvalidToken, with
// the library error joined for diagnostics.
func (i *Issuer) Verify(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	if err := i.verifySignature(token); err != nil {
		return nil, err
	}

	claims := &Claims{}
	_, err := i.parser.ParseWithClaims(token, claims, func(*gojwt.Token) (any, error) {
		return i.key, nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if claims.Subject == "" {
		return nil, errors.Join(ErrInvalidToken, ErrMissingSubject)
	}

	return claims, nil
}

// verifySignature checks the HMAC over the raw header and payload segments
// before any of them is decoded. Tokens without three segments are left to
// the parser to report as malformed.
func (i *Issuer) verifySignature(token string) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil
	}

	sig, err := base64.RawURLEncoding.Strict().DecodeString(parts[2])
	if err != nil {
		return errors.Join(ErrInvalidSignature, err)
	}
	if err := gojwt.SigningMethodHS256.Verify(parts[0]+"."+parts[1], sig, i.key); err != nil {
		return errors.Join(ErrInvalidSignature, err)
	}
	return nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return errors.Join(ErrInvalidSignature, err)
	case errors.Is(err, gojwt.ErrTokenExpired):
		return errors.Join(ErrExpiredToken, err)
	default:
		return errors.Join(ErrInvalidToken, err)
	}
}
