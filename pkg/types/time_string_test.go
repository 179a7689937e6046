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
		{name: "обычное время", input: "09:30", want: "09:30"},
		{name: "формат postgres TIME", input: "06:00:00", want: "06:00"},
		{name: "конец суток", input: "24:00", want: "24:00"},
		{name: "пробелы", input: " 13:00 ", want: "13:00"},
		{name: "без ведущего нуля", input: "9:30", wantErr: true},
		{name: "час вне диапазона", input: "25:00", wantErr: true},
		{name: "минуты вне диапазона", input: "10:60", wantErr: true},
		{name: "24 с минутами", input: "24:30", wantErr: true},
		{name: "пустая строка", input: "", wantErr: true},
		{name: "знак в часах", input: "+1:00", wantErr: true},
		{name: "знак в минутах", input: "01:+5", wantErr: true},
		{name: "минус в часах", input: "-1:00", wantErr: true},
		{name: "знак в формате postgres", input: "+1:00:00", wantErr: true},
		{name: "буквы", input: "1a:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrOutOfDayRange)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:01").IsAfter("10:00"))
	assert.True(t, TimeString("10:00").Equal("10:00"))
	assert.Equal(t, 14, TimeString("14:45").Hour())
	assert.Equal(t, 45, TimeString("14:45").Minute())
	assert.Equal(t, 0, TimeString("garbage").Hour())
}

func TestTimeString_ScanValue(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("07:00:00"))
	assert.Equal(t, TimeString("07:00"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 1, 19, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("19:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))

	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
