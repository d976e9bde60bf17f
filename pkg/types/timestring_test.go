package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("9:30am")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringAddMinutes(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
		wantErr bool
	}{
		{"10:00", 60, "11:00", false},
		{"10:00", 90, "11:30", false},
		{"10:45", 30, "11:15", false},
		{"00:00", 0, "00:00", false},
		{"23:00", 59, "23:59", false},
		{"23:30", 60, "", true}, // переполнение суток
		{"00:30", -60, "", true},
	}

	for _, tt := range tests {
		got, err := TimeString(tt.start).AddMinutes(tt.minutes)
		if tt.wantErr {
			assert.Error(t, err, "%s + %d", tt.start, tt.minutes)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, TimeString(tt.want), got)
	}
}

func TestTimeStringCompare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:01").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2024, 6, 1, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestNewTimeString(t *testing.T) {
	got := NewTimeString(time.Date(2024, 6, 1, 7, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), got)
}
