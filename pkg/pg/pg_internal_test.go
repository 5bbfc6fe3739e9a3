package pg

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateRunsGooseAgainstFS(t *testing.T) {
	pool, err := pgxpool.New(context.Background(), "postgres://u:p@127.0.0.1:1/db")
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	fsys := fstest.MapFS{"migrations/00001_init.sql": {Data: []byte("-- +goose Up\nSELECT 1;\n")}}

	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	var gotDir string
	gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, Migrate(context.Background(), pool, fsys, "migrations", Config{MigrationsTable: "m"}, nil))
	assert.Equal(t, "migrations", gotDir)

	gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
		return errors.New("syntax error")
	}
	err = Migrate(context.Background(), pool, fsys, "migrations", Config{}, nil)
	require.ErrorIs(t, err, ErrFailedToApplyMigrations)
}
