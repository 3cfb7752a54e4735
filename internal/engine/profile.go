package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-exact-age/internal/config"
)

// Profile is the complete, immutable outcome of one calculation.
type Profile struct {
	Birth     time.Time // Civil birth instant.
	Reference time.Time // Civil "now" the age was measured against.

	Age     AgeBreakdown
	Sign    ZodiacSign
	Animal  ChineseAnimal
	Weekday time.Weekday
	Names   []string

	// NextBirthday is the next anniversary on or after the reference day.
	NextBirthday time.Time
	// AgeNext is the age reached at NextBirthday.
	AgeNext int
}

// Calculator derives a Profile from a birth instant.
type Calculator struct {
	Clock Clock // Interface for time mocking.
}

// NewCalculator returns a Calculator on the real clock.
func NewCalculator() *Calculator {
	return &Calculator{Clock: RealClock{}}
}

// Calculate decomposes the age of birth against the current instant and
// classifies the birth date. It fails with ErrInvalidRange for a birth in the
// future and ErrConfiguration if a lookup table is broken.
func (c *Calculator) Calculate(birth time.Time) (Profile, error) {
	clock := c.Clock
	if clock == nil {
		clock = RealClock{}
	}
	return Build(birth, clock.Now())
}

// Build is Calculate against an explicit reference instant.
func Build(birth, now time.Time) (Profile, error) {
	birth, now = Civil(birth), Civil(now)

	age, err := Decompose(birth, now)
	if err != nil {
		return Profile{}, err
	}

	sign := WesternZodiac(birth.Month(), birth.Day())
	animal := ChineseZodiac(birth.Year())

	names, err := SuggestNames(sign, animal)
	if err != nil {
		return Profile{}, err
	}

	next, ageNext := calculateNextOccurrence(now, birth)

	p := Profile{
		Birth:        birth,
		Reference:    now,
		Age:          age,
		Sign:         sign,
		Animal:       animal,
		Weekday:      birth.Weekday(),
		Names:        names,
		NextBirthday: next,
		AgeNext:      ageNext,
	}

	slog.Debug(config.MsgCalcComputed,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDOB, birth.Format(config.InputFormatLocalSeconds),
		config.LogKeyAge, age.Years,
		config.LogKeySign, sign.String(),
		config.LogKeyAnimal, animal.String(),
	)
	return p, nil
}

// calculateNextOccurrence determines the next birthday relative to now.
// Go's time.Date normalizes Feb 29 to March 1st in common years.
func calculateNextOccurrence(now, birth time.Time) (time.Time, int) {
	currentYear := now.Year()
	loc := now.Location()

	candidate := time.Date(currentYear, birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if candidate.Before(todayStart) {
		candidate = time.Date(currentYear+1, birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
	}
	return candidate, candidate.Year() - birth.Year()
}
