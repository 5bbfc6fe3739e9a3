package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credkit/pkg/config"
	"github.com/dmitrymomot/credkit/pkg/mongo"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	var cfg mongo.Config
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{"MONGODB_URL": "mongodb://localhost:27017"}))
	require.NoError(t, err)
	assert.Equal(t, "credkit", cfg.Database)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.True(t, cfg.RetryWrites)
}

func TestConnectFailsFast(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := mongo.Connect(ctx, mongo.Config{
		ConnectionURL:  "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=100",
		ConnectTimeout: 100 * time.Millisecond,
		RetryAttempts:  5,
		RetryInterval:  time.Hour,
	})
	require.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}

func TestConnectRejectsBadURI(t *testing.T) {
	t.Parallel()

	_, err := mongo.Connect(context.Background(), mongo.Config{ConnectionURL: "not-a-uri", RetryAttempts: 1})
	require.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}
