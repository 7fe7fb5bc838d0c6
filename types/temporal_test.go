package types_test

import (
	"testing"
	"time"

	"github.com/chaisql/kjson/types"
	"github.com/stretchr/testify/require"
)

func TestTemporalTime(t *testing.T) {
	tests := []struct {
		name     string
		got      time.Time
		expected time.Time
	}{
		{"date", types.Date(1).Time(), time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"date/before epoch", types.Date(-365).Time(), time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"month", types.Month(25).Time(), time.Date(2002, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"month/before epoch", types.Month(-13).Time(), time.Date(1998, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"timestamp", types.Timestamp(1500).Time(), time.Date(2000, 1, 1, 0, 0, 0, 1500, time.UTC)},
		{"datetime", types.Datetime(1.5).Time(), time.Date(2000, 1, 2, 12, 0, 0, 0, time.UTC)},
		{"datetime/rounded", types.Datetime(0.9999999999).Time(), time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.True(t, test.expected.Equal(test.got), "expected %s, got %s", test.expected, test.got)
		})
	}
}

func TestTemporalDuration(t *testing.T) {
	require.Equal(t, 90*time.Second, types.Second(90).Duration())
	require.Equal(t, 2*time.Hour, types.Minute(120).Duration())
	require.Equal(t, 1500*time.Millisecond, types.Time(1500).Duration())
	require.Equal(t, time.Duration(-5), types.Timespan(-5).Duration())
}

func TestTemporalOf(t *testing.T) {
	tm := time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC)

	require.Equal(t, types.Date(8780), types.DateOf(tm))
	require.Equal(t, types.Month(288), types.MonthOf(tm))
	require.True(t, tm.Equal(types.TimestampOf(tm).Time()))
	require.True(t, tm.Truncate(time.Millisecond).Equal(types.DatetimeOf(tm).Time()))
	require.Equal(t, types.Timespan(time.Hour), types.TimespanOf(time.Hour))
	require.Equal(t, types.Time(1500), types.TimeOf(1500*time.Millisecond+time.Microsecond))

	before := time.Date(1999, 12, 31, 23, 0, 0, 0, time.UTC)
	require.Equal(t, types.Date(-1), types.DateOf(before))
	require.Equal(t, types.Month(-1), types.MonthOf(before))
}

func TestParseTemporal(t *testing.T) {
	d, err := types.ParseDate("2024-01-15")
	require.NoError(t, err)
	require.Equal(t, types.NewAtom(types.Date(8780)), d)

	m, err := types.ParseMonth("2024-01")
	require.NoError(t, err)
	require.Equal(t, types.NewAtom(types.Month(288)), m)

	m, err = types.ParseMonth("2024-01-15")
	require.NoError(t, err)
	require.Equal(t, types.NewAtom(types.Month(288)), m)

	ts, err := types.ParseTimestamp("2000-01-01 00:00:01")
	require.NoError(t, err)
	require.Equal(t, types.NewAtom(types.Timestamp(time.Second)), ts)

	dt, err := types.ParseDatetime("2000-01-01 12:00:00")
	require.NoError(t, err)
	require.Equal(t, types.NewAtom(types.Datetime(0.5)), dt)

	_, err = types.ParseDate("")
	require.Error(t, err)

	_, err = types.ParseDate("not a date")
	require.Error(t, err)
}

func TestTemporalText(t *testing.T) {
	tests := []struct {
		text     string
		display  string
		expected string
	}{
		{types.Timespan(93784000000005).Text(), types.NewAtom(types.Timespan(93784000000005)).String(), "1D02:03:04.000000005"},
		{types.Timespan(-93784000000005).Text(), types.NewAtom(types.Timespan(-93784000000005)).String(), "-1D02:03:04.000000005"},
		{types.Time(3723004).Text(), types.NewAtom(types.Time(3723004)).String(), "01:02:03.004"},
		{types.Time(-1).Text(), types.NewAtom(types.Time(-1)).String(), "-00:00:00.001"},
		{types.Second(3661).Text(), types.NewAtom(types.Second(3661)).String(), "01:01:01"},
		{types.Minute(-61).Text(), types.NewAtom(types.Minute(-61)).String(), "-01:01"},
		{types.Minute(200000000).Text(), types.NewAtom(types.Minute(200000000)).String(), "3333333:20"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			require.Equal(t, test.expected, test.text)
			require.Equal(t, test.expected, test.display)
		})
	}
}
