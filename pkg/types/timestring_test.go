package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "13:05"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "9:30", "24:00", "12:60", "12-30", "12:3", "ab:cd", "12:30:00"}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), s)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := MustTimeString("09:45")

	result, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), result)

	result, err = ts.AddMinutes(-45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), result)

	_, err = ts.AddMinutes(24 * 60)
	assert.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, MustTimeString("09:00").IsBefore(MustTimeString("10:00")))
	assert.False(t, MustTimeString("10:00").IsBefore(MustTimeString("10:00")))
	assert.True(t, MustTimeString("10:30").IsAfter(MustTimeString("10:00")))
}

func TestTimeString_MinutesUntil(t *testing.T) {
	m, err := MustTimeString("09:00").MinutesUntil(MustTimeString("17:00"))
	require.NoError(t, err)
	assert.Equal(t, 480, m)

	m, err = MustTimeString("17:00").MinutesUntil(MustTimeString("09:00"))
	require.NoError(t, err)
	assert.Equal(t, -480, m)
}
