package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, tod)
	assert.Equal(t, "09:30", tod.String())

	for _, bad := range []string{"", "9", "25:00", "09:60", "nine"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestWorkingHoursContains(t *testing.T) {
	wh := WorkingHours{Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 17}}

	assert.True(t, wh.Contains(TimeOfDay{Hour: 9}))
	assert.True(t, wh.Contains(TimeOfDay{Hour: 16}))
	// the end bound is exclusive
	assert.False(t, wh.Contains(TimeOfDay{Hour: 17}))
	assert.False(t, wh.Contains(TimeOfDay{Hour: 8, Minute: 59}))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleClient.Valid())
	assert.True(t, RoleManager.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}
