package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

func registerBody(username, email, role string) map[string]any {
	return map[string]any{
		"username": username,
		"password": "pw123456",
		"email":    email,
		"role":     role,
		"address":  map[string]any{"country": "Italy", "city": "Rome"},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	h := NewAuthHandler(testConfig(), store.New(), nil)

	c, rec := newJSONContext(t, http.MethodPost, registerBody("alice", "alice@mail.com", "client"))
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	user := body["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "client", user["role"])
	access := body["access"].(map[string]any)
	assert.NotEmpty(t, access["token"])

	// the password hash must never leak into responses
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	c, rec = newJSONContext(t, http.MethodPost, map[string]any{"username": "alice", "password": "pw123456"})
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newJSONContext(t, http.MethodPost, map[string]any{"username": "alice", "password": "wrong"})
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newJSONContext(t, http.MethodPost, map[string]any{"username": "ghost", "password": "pw123456"})
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	h := NewAuthHandler(testConfig(), store.New(), nil)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"bad username", registerBody("bad user!", "a@mail.com", "client")},
		{"bad email", registerBody("bob", "not-an-email", "client")},
		{"bad role", registerBody("bob", "bob@mail.com", "admin")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, tc.body)
			require.NoError(t, h.Register(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// incomplete address
	body := registerBody("bob", "bob@mail.com", "client")
	body["address"] = map[string]any{"country": "Italy"}
	c, rec := newJSONContext(t, http.MethodPost, body)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	h := NewAuthHandler(testConfig(), store.New(), nil)

	c, rec := newJSONContext(t, http.MethodPost, registerBody("alice", "alice@mail.com", "client"))
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// same username, different email
	c, rec = newJSONContext(t, http.MethodPost, registerBody("alice", "other@mail.com", "client"))
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// same email, different username
	c, rec = newJSONContext(t, http.MethodPost, registerBody("alice2", "alice@mail.com", "client"))
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMe(t *testing.T) {
	s := store.New()
	seedUser(t, s, "alice", "pw", "alice@mail.com", "client")
	h := NewAuthHandler(testConfig(), s, nil)

	c, rec := newJSONContext(t, http.MethodGet, nil)
	c.Set("username", "alice")
	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newJSONContext(t, http.MethodGet, nil)
	c.Set("username", "ghost")
	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
