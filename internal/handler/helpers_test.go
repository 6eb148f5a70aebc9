package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-reservation/internal/config"
	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
	"github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

func testConfig() config.Config {
	return config.Config{
		Env:              "test",
		Port:             "0",
		JWTSecret:        "test-secret",
		AccessTTLMin:     15,
		BcryptCost:       4, // keep hashing cheap in tests
		AvailabilityDays: 30,
	}
}

// newJSONContext builds an echo context carrying an optional JSON
// body, plus the recorder to inspect the response.
func newJSONContext(t *testing.T, method string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func seedUser(t *testing.T, s *store.Store, username, password, email string, role model.Role) {
	t.Helper()
	hash, err := utils.HashPassword(password, 4)
	require.NoError(t, err)
	_, err = s.AddUser(username, hash, email, role, model.Address{Country: "Italy", City: "Rome"})
	require.NoError(t, err)
}

// seedVenue stores a manager, a client, one restaurant open 9-17 and
// one table, the smallest setup a reservation flow needs.
func seedVenue(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	seedUser(t, s, "mgr", "pw", "mgr@mail.com", model.RoleManager)
	seedUser(t, s, "alice", "pw", "alice@mail.com", model.RoleClient)
	_, err := s.AddRestaurant("Pasta Place", "mgr", "Italian",
		model.WorkingHours{Start: model.TimeOfDay{Hour: 9}, End: model.TimeOfDay{Hour: 17}},
		"fresh pasta", model.Address{Country: "Italy", City: "Rome", Street: "Via Roma 1"})
	require.NoError(t, err)
	_, err = s.AddTable(1, "Pasta Place", "mgr", 4)
	require.NoError(t, err)
	return s
}

func mustParseSlot(t *testing.T, v string) time.Time {
	t.Helper()
	at, err := time.Parse(model.DateTimeLayout, v)
	require.NoError(t, err)
	return at
}
