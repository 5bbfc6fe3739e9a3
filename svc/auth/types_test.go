package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInputUnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("extra fields land in profile", func(t *testing.T) {
		t.Parallel()

		var in CreateInput
		err := json.Unmarshal([]byte(`{
			"email": "a@example.com",
			"password": "pw",
			"name": "Ann",
			"team": "blue",
			"age": 31,
			"id": "forged",
			"active": false,
			"passwordHash": "x"
		}`), &in)
		require.NoError(t, err)

		assert.Equal(t, "a@example.com", in.Email)
		assert.Equal(t, "pw", in.Password)
		assert.Equal(t, "Ann", in.Name)
		assert.Equal(t, map[string]any{"team": "blue", "age": float64(31)}, in.Profile)
	})

	t.Run("no extras leaves profile nil", func(t *testing.T) {
		t.Parallel()

		var in CreateInput
		require.NoError(t, json.Unmarshal([]byte(`{"email":"a@example.com","password":"pw"}`), &in))
		assert.Nil(t, in.Profile)
	})

	t.Run("wrong type for known field", func(t *testing.T) {
		t.Parallel()

		var in CreateInput
		err := json.Unmarshal([]byte(`{"email":42,"password":"pw"}`), &in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"email"`)
	})

	t.Run("not an object", func(t *testing.T) {
		t.Parallel()

		var in CreateInput
		assert.Error(t, json.Unmarshal([]byte(`["a"]`), &in))
	})
}

func TestRecordToUser(t *testing.T) {
	t.Parallel()

	rec := &Record{
		User:         User{ID: "1", Email: "a@example.com", Profile: map[string]any{"k": "v"}},
		PasswordHash: "$argon2id$secret",
	}
	user := rec.ToUser()
	user.Profile["k"] = "changed"

	assert.Equal(t, "v", rec.Profile["k"])

	body, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "argon2id")
}
