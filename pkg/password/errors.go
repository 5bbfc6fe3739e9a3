package password

import "errors"

var (
	ErrEmptyPassword = errors.New("password: empty password")
	ErrCorruptHash   = errors.New("password: corrupt or unsupported hash")
	ErrInvalidConfig = errors.New("password: invalid argon2 configuration")
)
