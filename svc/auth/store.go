package auth

import "context"

// Store persists credential records.
//
// CreateUser must enforce email uniqueness atomically and return
// ErrDuplicateIdentity without writing anything when the email is taken.
// Lookups return ErrNotFound for unknown keys, including ids the backend
// cannot even parse. ListAll orders records by creation time.
type Store interface {
	CreateUser(ctx context.Context, rec *Record) (id string, err error)
	FindByEmail(ctx context.Context, email string) (*Record, error)
	FindByID(ctx context.Context, id string) (*Record, error)
	ListAll(ctx context.Context) ([]*Record, error)
}

// UserFinder is the read side used by Gate.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*Record, error)
}
