package pg_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credkit/pkg/pg"
)

func TestErrorClassifiers(t *testing.T) {
	t.Parallel()

	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}
	badText := &pgconn.PgError{Code: "22P02"}

	assert.True(t, pg.IsDuplicateKeyError(dup))
	assert.False(t, pg.IsDuplicateKeyError(fk))
	assert.False(t, pg.IsDuplicateKeyError(nil))
	assert.True(t, pg.IsForeignKeyViolationError(fk))
	assert.True(t, pg.IsInvalidTextRepresentation(badText))
	assert.True(t, pg.IsNotFoundError(fmt.Errorf("find: %w", pgx.ErrNoRows)))
	assert.False(t, pg.IsNotFoundError(errors.New("other")))
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("bad connection string", func(t *testing.T) {
		t.Parallel()
		_, err := pg.Connect(context.Background(), pg.Config{ConnectionString: "://nope"})
		require.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
	})

	t.Run("unreachable server stops on context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()
		_, err := pg.Connect(ctx, pg.Config{
			ConnectionString: "postgres://u:p@127.0.0.1:1/db?connect_timeout=1",
			RetryAttempts:    10,
			RetryInterval:    time.Hour,
		})
		require.ErrorIs(t, err, pg.ErrFailedToOpenDBConnection)
	})
}
