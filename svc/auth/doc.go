// Package auth implements credential registration, login and session-token
// gating.
//
// Service is the credential pipeline: it normalizes and validates input,
// hashes passwords through a bounded worker budget, persists records through
// a Store and issues session tokens. Gate is the HTTP middleware that turns a
// bearer token back into an active *User on the request context.
//
// Records carry the password hash and never leave the package boundary as
// such: every public result is a *User.
//
// Errors are sentinels matched with errors.Is. Store implementations report
// ErrDuplicateIdentity and ErrNotFound; Service translates them into
// ErrIdentityExists, ErrInvalidCredentials and ErrStorageUnavailable. Login
// returns one ErrInvalidCredentials value for every credential rejection, so
// callers cannot tell an unknown email from a wrong password.
package auth
