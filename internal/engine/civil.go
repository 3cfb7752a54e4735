package engine

import (
	"strings"
	"time"

	"github.com/tartampluch/go-exact-age/internal/config"
)

// Unit selects the calendar field AddClamped advances.
type Unit int

const (
	Year Unit = iota
	Month
	Day
	Hour
	Minute
	Second
)

// Civil strips the zone and the sub-second part of t, keeping its wall clock.
// The result lives in UTC so that no DST transition ever shifts an addition;
// it is never converted, only carried.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

// AddClamped adds n units to t.
// Year and month additions clamp the day to the last day of the target month
// (Jan 31 + 1 month is Feb 28 or 29), unlike time.AddDate which overflows.
func AddClamped(t time.Time, n int, u Unit) time.Time {
	switch u {
	case Year:
		return addMonths(t, n*12)
	case Month:
		return addMonths(t, n)
	case Day:
		return t.AddDate(0, 0, n)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	default:
		return t.Add(time.Duration(n) * time.Second)
	}
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	ty := y + floorDiv(total, 12)
	tm := time.Month(floorMod(total, 12) + 1)

	if last := daysIn(ty, tm); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(ty, tm, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// daysIn returns the length of month m in year y.
func daysIn(y int, m time.Month) int {
	// Day 0 of the following month is the last day of m.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return ((a % b) + b) % b
}

// ParseBirth reads a birth date typed by the user.
// An empty or malformed value reports false: there is nothing to compute yet.
func ParseBirth(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	formats := []string{
		config.InputFormatLocalSeconds,
		config.InputFormatLocal,
		config.InputFormatSpaceSeconds,
		config.InputFormatSpace,
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.InputFormatRFC3339,
	}

	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return Civil(t), true
		}
	}
	return time.Time{}, false
}
