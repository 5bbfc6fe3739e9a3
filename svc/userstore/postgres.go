package userstore

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/credkit/pkg/pg"
	"github.com/dmitrymomot/credkit/svc/auth"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigratePostgres applies the embedded users schema.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool, cfg pg.Config, log *slog.Logger) error {
	return pg.Migrate(ctx, pool, migrationsFS, "migrations", cfg, log)
}

// pgQuerier is satisfied by *pgxpool.Pool and pgxmock pools.
type pgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	insertUserSQL = `INSERT INTO users (email, name, active, profile, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text`

	selectUserColumns = `SELECT id::text, email, name, active, profile, password_hash, created_at FROM users`

	findUserByEmailSQL = selectUserColumns + ` WHERE email = $1`
	findUserByIDSQL    = selectUserColumns + ` WHERE id = $1`
	listUsersSQL       = selectUserColumns + ` ORDER BY created_at, id`
)

// Postgres is an auth.Store backed by the users table.
type Postgres struct {
	db pgQuerier
}

// NewPostgres returns a store using db, typically a *pgxpool.Pool.
func NewPostgres(db pgQuerier) *Postgres {
	return &Postgres{db: db}
}

// CreateUser inserts rec and returns the uuid generated by the database.
func (s *Postgres) CreateUser(ctx context.Context, rec *auth.Record) (string, error) {
	profile, err := marshalProfile(rec.Profile)
	if err != nil {
		return "", err
	}

	var id string
	err = s.db.QueryRow(ctx, insertUserSQL,
		rec.Email, rec.Name, rec.Active, profile, rec.PasswordHash, rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return "", auth.ErrDuplicateIdentity
		}
		return "", fmt.Errorf("userstore: insert user: %w", err)
	}
	return id, nil
}

// FindByEmail looks up a record by its normalized email.
func (s *Postgres) FindByEmail(ctx context.Context, email string) (*auth.Record, error) {
	return s.findOne(ctx, findUserByEmailSQL, email)
}

// FindByID looks up a record by uuid.
func (s *Postgres) FindByID(ctx context.Context, id string) (*auth.Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, auth.ErrNotFound
	}
	return s.findOne(ctx, findUserByIDSQL, id)
}

// ListAll returns every record ordered by creation time.
func (s *Postgres) ListAll(ctx context.Context) ([]*auth.Record, error) {
	rows, err := s.db.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("userstore: list users: %w", err)
	}
	defer rows.Close()

	var out []*auth.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("userstore: iterate users: %w", err)
	}
	return out, nil
}

func (s *Postgres) findOne(ctx context.Context, query string, arg any) (*auth.Record, error) {
	rec, err := scanRecord(s.db.QueryRow(ctx, query, arg))
	if err != nil {
		if pg.IsNotFoundError(err) || pg.IsInvalidTextRepresentation(err) {
			return nil, auth.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func scanRecord(row pgx.Row) (*auth.Record, error) {
	var (
		rec     auth.Record
		profile []byte
	)
	err := row.Scan(&rec.ID, &rec.Email, &rec.Name, &rec.Active, &profile, &rec.PasswordHash, &rec.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) || pg.IsInvalidTextRepresentation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("userstore: scan user: %w", err)
	}
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &rec.Profile); err != nil {
			return nil, fmt.Errorf("userstore: decode profile: %w", err)
		}
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}

func marshalProfile(profile map[string]any) ([]byte, error) {
	if len(profile) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("userstore: encode profile: %w", err)
	}
	return b, nil
}
