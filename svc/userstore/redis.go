package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/credkit/svc/auth"
)

// createUserScript writes the record, the email index and the order list only
// if the email index key is absent. KEYS: record, email index, order list.
// ARGV: id, record json.
var createUserScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 1 then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2])
redis.call('SET', KEYS[2], ARGV[1])
redis.call('RPUSH', KEYS[3], ARGV[1])
return 1
`)

type redisRecord struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Name         string         `json:"name,omitempty"`
	Active       bool           `json:"active"`
	Profile      map[string]any `json:"profile,omitempty"`
	PasswordHash string         `json:"passwordHash"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (r redisRecord) record() *auth.Record {
	return &auth.Record{
		User: auth.User{
			ID:        r.ID,
			Email:     r.Email,
			Name:      r.Name,
			Active:    r.Active,
			Profile:   r.Profile,
			CreatedAt: r.CreatedAt.UTC(),
		},
		PasswordHash: r.PasswordHash,
	}
}

// Redis is an auth.Store that keeps each record as a JSON string.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis returns a store whose keys all start with prefix.
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (s *Redis) userKey(id string) string     { return s.prefix + "user:" + id }
func (s *Redis) emailKey(email string) string { return s.prefix + "user-email:" + email }
func (s *Redis) orderKey() string             { return s.prefix + "users" }

// CreateUser writes the record, its email index and its position in the
// creation list in one script call.
func (s *Redis) CreateUser(ctx context.Context, rec *auth.Record) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(redisRecord{
		ID:           id,
		Email:        rec.Email,
		Name:         rec.Name,
		Active:       rec.Active,
		Profile:      rec.Profile,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("userstore: encode user: %w", err)
	}

	keys := []string{s.userKey(id), s.emailKey(rec.Email), s.orderKey()}
	created, err := createUserScript.Run(ctx, s.client, keys, id, payload).Int()
	if err != nil {
		return "", fmt.Errorf("userstore: create user: %w", err)
	}
	if created == 0 {
		return "", auth.ErrDuplicateIdentity
	}
	return id, nil
}

// FindByEmail resolves the email index, then loads the record.
func (s *Redis) FindByEmail(ctx context.Context, email string) (*auth.Record, error) {
	id, err := s.client.Get(ctx, s.emailKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("userstore: lookup email: %w", err)
	}
	return s.FindByID(ctx, id)
}

// FindByID loads the record stored under id.
func (s *Redis) FindByID(ctx context.Context, id string) (*auth.Record, error) {
	if id == "" {
		return nil, auth.ErrNotFound
	}
	raw, err := s.client.Get(ctx, s.userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("userstore: get user: %w", err)
	}
	return decodeRedisRecord(raw)
}

// ListAll returns every record in creation order.
func (s *Redis) ListAll(ctx context.Context) ([]*auth.Record, error) {
	ids, err := s.client.LRange(ctx, s.orderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("userstore: list user ids: %w", err)
	}
	if len(ids) == 0 {
		return []*auth.Record{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.userKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("userstore: get users: %w", err)
	}

	out := make([]*auth.Record, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		rec, err := decodeRedisRecord([]byte(str))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeRedisRecord(raw []byte) (*auth.Record, error) {
	var r redisRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("userstore: decode user: %w", err)
	}
	return r.record(), nil
}
