package userstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credkit/svc/auth"
)

func newRecord(email string, createdAt time.Time) *auth.Record {
	return &auth.Record{
		User: auth.User{
			Email:     email,
			Name:      "Test User",
			Active:    true,
			Profile:   map[string]any{"team": "blue", "tags": []any{"a", "b"}},
			CreatedAt: createdAt,
		},
		PasswordHash: "$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA",
	}
}

// runStoreContract exercises the behaviour every auth.Store driver shares.
// newStore must return an empty store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) auth.Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("create then find", func(t *testing.T) {
		store := newStore(t)

		id, err := store.CreateUser(ctx, newRecord("alice@example.com", base))
		require.NoError(t, err)
		require.NotEmpty(t, id)

		byEmail, err := store.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, byEmail.ID)
		assert.Equal(t, "Test User", byEmail.Name)
		assert.True(t, byEmail.Active)
		assert.Equal(t, "blue", byEmail.Profile["team"])
		assert.Equal(t, []any{"a", "b"}, byEmail.Profile["tags"])
		assert.NotEmpty(t, byEmail.PasswordHash)
		assert.True(t, base.Equal(byEmail.CreatedAt))

		byID, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, byEmail, byID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateUser(ctx, newRecord("dup@example.com", base))
		require.NoError(t, err)

		_, err = store.CreateUser(ctx, newRecord("dup@example.com", base.Add(time.Second)))
		assert.ErrorIs(t, err, auth.ErrDuplicateIdentity)

		all, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("unknown keys", func(t *testing.T) {
		store := newStore(t)

		_, err := store.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, auth.ErrNotFound)

		for _, id := range []string{"", "not-an-id", "00000000-0000-0000-0000-000000000000", "65a1b2c3d4e5f60718293a4b"} {
			_, err := store.FindByID(ctx, id)
			assert.ErrorIs(t, err, auth.ErrNotFound, "id %q", id)
		}
	})

	t.Run("list in creation order", func(t *testing.T) {
		store := newStore(t)

		var ids []string
		for i := range 3 {
			id, err := store.CreateUser(ctx, newRecord(fmt.Sprintf("u%d@example.com", i), base.Add(time.Duration(i)*time.Minute)))
			require.NoError(t, err)
			ids = append(ids, id)
		}

		all, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		for i, rec := range all {
			assert.Equal(t, ids[i], rec.ID)
		}
	})

	t.Run("concurrent creates with one email", func(t *testing.T) {
		store := newStore(t)

		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			dupes     int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.CreateUser(ctx, newRecord("race@example.com", base))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case assert.ErrorIs(t, err, auth.ErrDuplicateIdentity):
					dupes++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, workers-1, dupes)
	})
}
