package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-exact-age/internal/config"
)

// AgeBreakdown is the elapsed time between two instants, largest unit first.
// Each field only holds what remains after the larger units are consumed.
type AgeBreakdown struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether every component is zero.
func (a AgeBreakdown) IsZero() bool {
	return a == AgeBreakdown{}
}

// Decompose breaks the time elapsed from birth to now into calendar units.
// Both instants are read as civil wall-clock values. The anchor advances unit
// by unit (birth + years, then + months, ...), so month lengths and leap days
// are honored instead of fixed-length conversions.
func Decompose(birth, now time.Time) (AgeBreakdown, error) {
	birth, now = Civil(birth), Civil(now)
	if birth.After(now) {
		return AgeBreakdown{}, fmt.Errorf("%w: %s > %s",
			ErrInvalidRange,
			birth.Format(config.InputFormatLocalSeconds),
			now.Format(config.InputFormatLocalSeconds))
	}

	var age AgeBreakdown
	anchor := birth

	age.Years = fullUnits(anchor, now, Year, now.Year()-anchor.Year())
	anchor = AddClamped(anchor, age.Years, Year)

	age.Months = fullUnits(anchor, now, Month,
		(now.Year()-anchor.Year())*12+int(now.Month())-int(anchor.Month()))
	anchor = AddClamped(anchor, age.Months, Month)

	// What remains is shorter than a month: exact arithmetic is safe from here.
	rest := now.Sub(anchor)
	age.Days = int(rest / (24 * time.Hour))
	rest -= time.Duration(age.Days) * 24 * time.Hour
	age.Hours = int(rest / time.Hour)
	rest -= time.Duration(age.Hours) * time.Hour
	age.Minutes = int(rest / time.Minute)
	rest -= time.Duration(age.Minutes) * time.Minute
	age.Seconds = int(rest / time.Second)

	return age, nil
}

// fullUnits returns the largest count n <= guess such that anchor + n units
// does not pass now. The calendar distance is an upper bound that is at most
// one unit too large.
func fullUnits(anchor, now time.Time, u Unit, guess int) int {
	if guess < 0 {
		return 0
	}
	for guess > 0 && AddClamped(anchor, guess, u).After(now) {
		guess--
	}
	return guess
}

// Reassemble adds the components of age back onto birth in the same
// order Decompose consumed them.
func Reassemble(birth time.Time, age AgeBreakdown) time.Time {
	t := Civil(birth)
	t = AddClamped(t, age.Years, Year)
	t = AddClamped(t, age.Months, Month)
	t = AddClamped(t, age.Days, Day)
	t = AddClamped(t, age.Hours, Hour)
	t = AddClamped(t, age.Minutes, Minute)
	return AddClamped(t, age.Seconds, Second)
}
