package auth

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

const (
	MaxPasswordLength = 1024
	MaxNameLength     = 128
)

// User is the public view of an account.
type User struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name,omitempty"`
	Active    bool           `json:"active"`
	Profile   map[string]any `json:"profile,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Record is a User plus its password hash, as persisted by a Store.
type Record struct {
	User
	PasswordHash string `json:"-"`
}

// ToUser returns a copy of the record without the hash.
func (r *Record) ToUser() *User {
	u := r.User
	u.Profile = maps.Clone(r.Profile)
	return &u
}

// Session is the result of a successful registration, login or refresh.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// CreateInput is the payload for Create and Register.
//
// When decoded from JSON, every key other than email, password and name is
// kept in Profile. Keys that name server-owned fields are dropped.
type CreateInput struct {
	Email    string
	Password string
	Name     string
	Profile  map[string]any
}

var serverOwnedFields = map[string]struct{}{
	"id":           {},
	"active":       {},
	"createdAt":    {},
	"passwordHash": {},
}

func (in *CreateInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	known := map[string]*string{"email": &in.Email, "password": &in.Password, "name": &in.Name}
	for key, dst := range known {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		delete(raw, key)
	}

	for key, value := range raw {
		if _, owned := serverOwnedFields[key]; owned {
			continue
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if in.Profile == nil {
			in.Profile = make(map[string]any)
		}
		in.Profile[key] = v
	}

	return nil
}

// LoginInput is the payload for Login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
