package types

import (
	"fmt"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dromara/carbon/v2"
)

var (
	// Epoch is the origin of every temporal kind: 2000-01-01T00:00:00Z.
	Epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	epochUnix = Epoch.Unix()
)

const (
	secondsPerDay = 86400
	millisPerDay  = secondsPerDay * 1000
)

// Time returns the UTC midnight of d.
func (d Date) Time() time.Time {
	return time.Unix(epochUnix+int64(d)*secondsPerDay, 0).UTC()
}

// Time returns the first day of m.
func (m Month) Time() time.Time {
	y, mo := floorDiv(int64(m), 12)
	return time.Date(2000+int(y), time.Month(mo+1), 1, 0, 0, 0, 0, time.UTC)
}

// Time returns the instant of t.
func (t Timestamp) Time() time.Time {
	return time.Unix(epochUnix, int64(t)).UTC()
}

// Time returns the instant of d, rounded to the millisecond.
func (d Datetime) Time() time.Time {
	ms := int64(math.Round(float64(d) * millisPerDay))
	return time.UnixMilli(epochUnix*1000 + ms).UTC()
}

// Duration returns the timespan as a time.Duration.
func (t Timespan) Duration() time.Duration {
	return time.Duration(t)
}

// Duration returns the time of day as a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t) * time.Millisecond
}

// Duration returns the minutes as a time.Duration.
func (m Minute) Duration() time.Duration {
	return time.Duration(m) * time.Minute
}

// Duration returns the seconds as a time.Duration.
func (s Second) Duration() time.Duration {
	return time.Duration(s) * time.Second
}

// Text returns t as [-]DDDhh:mm:ss.nnnnnnnnn.
func (t Timespan) Text() string {
	var sign string
	n := uint64(t)
	if t < 0 {
		sign = "-"
		n = -n
	}

	secs := n / 1e9
	return fmt.Sprintf("%s%dD%02d:%02d:%02d.%09d", sign, secs/secondsPerDay, secs%secondsPerDay/3600, secs%3600/60, secs%60, n%1e9)
}

// Text returns t as [-]hh:mm:ss.mmm.
func (t Time) Text() string {
	return clock(int64(t), 4)
}

// Text returns s as [-]hh:mm:ss.
func (s Second) Text() string {
	return clock(int64(s)*1000, 3)
}

// Text returns m as [-]hh:mm.
func (m Minute) Text() string {
	return clock(int64(m)*60000, 2)
}

// clock formats ms milliseconds with n components:
// hours, minutes, seconds and milliseconds.
func clock(ms int64, n int) string {
	var sign string
	u := uint64(ms)
	if ms < 0 {
		sign = "-"
		u = -u
	}

	switch n {
	case 2:
		return fmt.Sprintf("%s%02d:%02d", sign, u/3600000, u/60000%60)
	case 3:
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, u/3600000, u/60000%60, u/1000%60)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, u/3600000, u/60000%60, u/1000%60, u%1000)
}

// DateOf returns the date of t, in UTC.
func DateOf(t time.Time) Date {
	days, _ := floorDiv(t.Unix()-epochUnix, secondsPerDay)
	return Date(days)
}

// MonthOf returns the month of t, in UTC.
func MonthOf(t time.Time) Month {
	t = t.UTC()
	return Month((t.Year()-2000)*12 + int(t.Month()) - 1)
}

// TimestampOf returns t as a timestamp.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp((t.Unix()-epochUnix)*int64(time.Second) + int64(t.Nanosecond()))
}

// DatetimeOf returns t as a datetime, with millisecond precision.
func DatetimeOf(t time.Time) Datetime {
	return Datetime(float64(t.UnixMilli()-epochUnix*1000) / millisPerDay)
}

// TimespanOf returns d as a timespan.
func TimespanOf(d time.Duration) Timespan {
	return Timespan(d)
}

// TimeOf returns d as a time of day, truncated to the millisecond.
func TimeOf(d time.Duration) Time {
	return Time(d / time.Millisecond)
}

// ParseDate parses a date such as "2024-01-15".
func ParseDate(s string) (Atom[Date], error) {
	t, err := parseCivil(s)
	if err != nil {
		return Atom[Date]{}, err
	}

	return NewAtom(DateOf(t)), nil
}

// ParseMonth parses a month such as "2024-01", or the month of a date such as "2024-01-15".
func ParseMonth(s string) (Atom[Month], error) {
	if len(s) == 7 && s[4] == '-' {
		s += "-01"
	}

	t, err := parseCivil(s)
	if err != nil {
		return Atom[Month]{}, err
	}

	return NewAtom(MonthOf(t)), nil
}

// ParseTimestamp parses a date and time such as "2021-01-01 10:05:59.123456".
func ParseTimestamp(s string) (Atom[Timestamp], error) {
	t, err := parseCivil(s)
	if err != nil {
		return Atom[Timestamp]{}, err
	}

	return NewAtom(TimestampOf(t)), nil
}

// ParseDatetime parses a date and time such as "2021-01-01T10:05:59.123".
func ParseDatetime(s string) (Atom[Datetime], error) {
	t, err := parseCivil(s)
	if err != nil {
		return Atom[Datetime]{}, err
	}

	return NewAtom(DatetimeOf(t)), nil
}

func parseCivil(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty time")
	}

	c := carbon.Parse(s, "UTC")
	if c.Error != nil {
		return time.Time{}, errors.Wrapf(c.Error, "invalid time %q", s)
	}

	return c.StdTime(), nil
}

// floorDiv returns the quotient and remainder of a/b rounded towards negative infinity.
func floorDiv(a, b int64) (int64, int64) {
	q, r := a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
