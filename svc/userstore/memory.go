package userstore

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/credkit/svc/auth"
)

// Memory is an in-process auth.Store.
type Memory struct {
	mu      sync.RWMutex
	byID    map[string]*auth.Record
	byEmail map[string]string
	order   []string
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		byID:    make(map[string]*auth.Record),
		byEmail: make(map[string]string),
	}
}

// CreateUser stores a copy of rec under a new uuid and returns the id.
// A taken email returns auth.ErrDuplicateIdentity.
func (m *Memory) CreateUser(_ context.Context, rec *auth.Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byEmail[rec.Email]; taken {
		return "", auth.ErrDuplicateIdentity
	}

	stored := clone(rec)
	stored.ID = uuid.NewString()

	m.byID[stored.ID] = stored
	m.byEmail[stored.Email] = stored.ID
	m.order = append(m.order, stored.ID)

	return stored.ID, nil
}

// FindByEmail returns a copy of the record with the normalized email.
func (m *Memory) FindByEmail(_ context.Context, email string) (*auth.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return clone(m.byID[id]), nil
}

// FindByID returns a copy of the record with id.
func (m *Memory) FindByID(_ context.Context, id string) (*auth.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byID[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return clone(rec), nil
}

// ListAll returns copies of all records in insertion order.
func (m *Memory) ListAll(context.Context) ([]*auth.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*auth.Record, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, clone(m.byID[id]))
	}
	return out, nil
}

// Delete removes a record. Deleting an unknown id returns auth.ErrNotFound.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.byID[id]
	if !ok {
		return auth.ErrNotFound
	}
	delete(m.byID, id)
	delete(m.byEmail, rec.Email)
	m.order = slices.DeleteFunc(m.order, func(v string) bool { return v == id })
	return nil
}

// SetActive flips the active flag of a record.
func (m *Memory) SetActive(_ context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.byID[id]
	if !ok {
		return auth.ErrNotFound
	}
	rec.Active = active
	return nil
}

func clone(rec *auth.Record) *auth.Record {
	c := *rec
	c.User = *rec.ToUser()
	return &c
}
