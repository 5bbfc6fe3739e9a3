package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credkit/pkg/jwt"
	"github.com/dmitrymomot/credkit/pkg/logger"
	"github.com/dmitrymomot/credkit/pkg/password"
	"github.com/dmitrymomot/credkit/pkg/requestid"
	"github.com/dmitrymomot/credkit/svc/auth"
	"github.com/dmitrymomot/credkit/svc/userstore"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAuditHook(t *testing.T) {
	t.Parallel()

	var buf syncBuffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	ctx := requestid.WithContext(context.Background(), "trace-9")
	require.NoError(t, auditHook(log, "user_registered")(ctx, &auth.User{ID: "user-1"}))

	out := buf.String()
	assert.Contains(t, out, `"component":"audit"`)
	assert.Contains(t, out, `"event":"user_registered"`)
	assert.Contains(t, out, `"user_id":"user-1"`)
	assert.Contains(t, out, `"request_id":"trace-9"`)
}

func TestAuditOptionsWiredIntoService(t *testing.T) {
	t.Parallel()

	var buf syncBuffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))

	hasher, err := password.New(password.Config{MemoryKB: 8 * 1024, Time: 1, Threads: 1, SaltLength: 16, KeyLength: 32})
	require.NoError(t, err)
	issuer, err := jwt.New(jwt.Config{SigningKey: strings.Repeat("k", 32), TTL: time.Hour})
	require.NoError(t, err)

	svc := auth.NewService(userstore.NewMemory(), hasher, issuer, auditOptions(log)...)

	_, err = svc.Register(context.Background(), auth.CreateInput{Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), auth.LoginInput{Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		out := buf.String()
		return strings.Contains(out, `"event":"user_registered"`) && strings.Contains(out, `"event":"user_logged_in"`)
	}, time.Second, 10*time.Millisecond)
}
