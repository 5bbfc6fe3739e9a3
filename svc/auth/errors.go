package auth

import "errors"

// Store contract errors.
var (
	ErrDuplicateIdentity = errors.New("auth: duplicate identity")
	ErrNotFound          = errors.New("auth: record not found")
)

// Service and gate errors.
var (
	ErrValidation         = errors.New("auth: invalid input")
	ErrIdentityExists     = errors.New("auth: identity already exists")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUnauthenticated    = errors.New("auth: unauthenticated")
	ErrStorageUnavailable = errors.New("auth: storage unavailable")
	ErrCorruptCredential  = errors.New("auth: stored credential is corrupt")
	ErrOverloaded         = errors.New("auth: too many concurrent password operations")
)
