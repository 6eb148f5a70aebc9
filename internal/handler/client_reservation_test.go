package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reserveBody(datetime string) map[string]any {
	return map[string]any{
		"restaurantName": "Pasta Place",
		"tableNumber":    1,
		"datetime":       datetime,
	}
}

func TestReserveCancelFlow(t *testing.T) {
	h := NewClientHandler(seedVenue(t), nil)

	c, rec := newJSONContext(t, http.MethodPost, reserveBody("2026-09-10 10:00"))
	c.Set("username", "alice")
	require.NoError(t, h.Reserve(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	res := body["reservation"].(map[string]any)
	assert.Equal(t, float64(1), res["reservationNumber"])
	assert.Equal(t, "2026-09-10 10:00", res["datetime"])

	// same slot again is a conflict
	c, rec = newJSONContext(t, http.MethodPost, reserveBody("2026-09-10 10:00"))
	c.Set("username", "alice")
	require.NoError(t, h.Reserve(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	c, rec = newJSONContext(t, http.MethodDelete, nil)
	c.SetParamNames("number")
	c.SetParamValues("1")
	c.Set("username", "alice")
	require.NoError(t, h.Cancel(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// cancelling twice is an explicit failure
	c, rec = newJSONContext(t, http.MethodDelete, nil)
	c.SetParamNames("number")
	c.SetParamValues("1")
	c.Set("username", "alice")
	require.NoError(t, h.Cancel(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReserveRejections(t *testing.T) {
	h := NewClientHandler(seedVenue(t), nil)

	reserve := func(username, datetime string) int {
		c, rec := newJSONContext(t, http.MethodPost, reserveBody(datetime))
		c.Set("username", username)
		require.NoError(t, h.Reserve(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusBadRequest, reserve("alice", "10:00 on the 10th"))
	// managers hold the wrong role for reserving
	assert.Equal(t, http.StatusForbidden, reserve("mgr", "2026-09-10 10:00"))
	// off the hour grid
	assert.Equal(t, http.StatusUnprocessableEntity, reserve("alice", "2026-09-10 10:30"))
	// outside working hours
	assert.Equal(t, http.StatusUnprocessableEntity, reserve("alice", "2026-09-10 17:00"))
}

func TestCancelRejections(t *testing.T) {
	h := NewClientHandler(seedVenue(t), nil)

	cancel := func(username, number string) int {
		c, rec := newJSONContext(t, http.MethodDelete, nil)
		c.SetParamNames("number")
		c.SetParamValues(number)
		c.Set("username", username)
		require.NoError(t, h.Cancel(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusBadRequest, cancel("alice", "zero"))
	assert.Equal(t, http.StatusBadRequest, cancel("alice", "0"))
	assert.Equal(t, http.StatusNotFound, cancel("alice", "1"))
	assert.Equal(t, http.StatusNotFound, cancel("ghost", "1"))
}

func TestListReservations(t *testing.T) {
	h := NewClientHandler(seedVenue(t), nil)

	c, rec := newJSONContext(t, http.MethodPost, reserveBody("2026-09-10 10:00"))
	c.Set("username", "alice")
	require.NoError(t, h.Reserve(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newJSONContext(t, http.MethodGet, nil)
	c.Set("username", "alice")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["reservations"], 1)

	c, rec = newJSONContext(t, http.MethodGet, nil)
	c.Set("username", "ghost")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
