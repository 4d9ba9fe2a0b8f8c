package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "short form", input: "08:00", want: "08:00:00"},
		{name: "full form", input: "08:00:00", want: "08:00:00"},
		{name: "evening", input: "18:30", want: "18:30:00"},
		{name: "midnight", input: "00:00", want: "00:00:00"},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Display(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)

	assert.Equal(t, "09:30:00", ts.String())
	assert.Equal(t, "09:30", ts.Display())
}

func TestTimeString_Comparisons(t *testing.T) {
	early := TimeString("08:00:00")
	late := TimeString("12:00:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("08:00:00")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30:00"), next)

	next, err = ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30:00"), next)

	// Переход через полночь запрещен
	_, err = TimeString("23:45:00").AddMinutes(30)
	require.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00:00"), ts)

	require.NoError(t, ts.Scan([]byte("11:15:00")))
	assert.Equal(t, TimeString("11:15:00"), ts)

	parsed, err := time.Parse("15:04:05", "12:30:00")
	require.NoError(t, err)
	require.NoError(t, ts.Scan(parsed))
	assert.Equal(t, TimeString("12:30:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
