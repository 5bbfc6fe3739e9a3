package jwt

import "errors"

var (
	ErrInvalidToken       = errors.New("jwt: invalid token")
	ErrExpiredToken       = errors.New("jwt: token is expired")
	ErrInvalidSignature   = errors.New("jwt: invalid signature")
	ErrMissingToken       = errors.New("jwt: missing token")
	ErrMissingSigningKey  = errors.New("jwt: missing signing key")
	ErrWeakSigningKey     = errors.New("jwt: signing key must be at least 32 bytes")
	ErrMissingSubject     = errors.New("jwt: missing subject")
	ErrInvalidTokenConfig = errors.New("jwt: invalid configuration")
)
