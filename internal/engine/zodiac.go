package engine

import (
	"time"

	"github.com/tartampluch/go-exact-age/internal/config"
)

// ZodiacSign is one of the twelve Western zodiac signs.
type ZodiacSign int

const (
	Aries ZodiacSign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// MonthDay is a day of the year without a year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// before orders month-days within a calendar year.
func (md MonthDay) before(other MonthDay) bool {
	if md.Month != other.Month {
		return md.Month < other.Month
	}
	return md.Day < other.Day
}

var signNames = [...]string{
	Aries:       "Aries",
	Taurus:      "Taurus",
	Gemini:      "Gemini",
	Cancer:      "Cancer",
	Leo:         "Leo",
	Virgo:       "Virgo",
	Libra:       "Libra",
	Scorpio:     "Scorpio",
	Sagittarius: "Sagittarius",
	Capricorn:   "Capricorn",
	Aquarius:    "Aquarius",
	Pisces:      "Pisces",
}

// signStarts lists the first day of each sign in calendar order.
// A sign runs until the day before the next entry; Capricorn wraps into January.
var signStarts = [...]struct {
	sign  ZodiacSign
	start MonthDay
}{
	{Aquarius, MonthDay{time.January, 20}},
	{Pisces, MonthDay{time.February, 19}},
	{Aries, MonthDay{time.March, 21}},
	{Taurus, MonthDay{time.April, 20}},
	{Gemini, MonthDay{time.May, 21}},
	{Cancer, MonthDay{time.June, 21}},
	{Leo, MonthDay{time.July, 23}},
	{Virgo, MonthDay{time.August, 23}},
	{Libra, MonthDay{time.September, 23}},
	{Scorpio, MonthDay{time.October, 23}},
	{Sagittarius, MonthDay{time.November, 22}},
	{Capricorn, MonthDay{time.December, 22}},
}

// Signs returns the twelve signs in enumeration order.
func Signs() []ZodiacSign {
	out := make([]ZodiacSign, len(signNames))
	for i := range out {
		out[i] = ZodiacSign(i)
	}
	return out
}

// String returns the English name of the sign.
func (s ZodiacSign) String() string {
	if s < 0 || int(s) >= len(signNames) {
		return config.FallbackName
	}
	return signNames[s]
}

// Range returns the half-open interval [start, end) the sign covers.
// For Capricorn, end falls in the following year.
func (s ZodiacSign) Range() (start, end MonthDay) {
	for i, e := range signStarts {
		if e.sign == s {
			return e.start, signStarts[(i+1)%len(signStarts)].start
		}
	}
	return MonthDay{}, MonthDay{}
}

// WesternZodiac returns the sign of a calendar day. Lower bounds are
// inclusive: March 21 is Aries. The result for an impossible date is
// unspecified.
func WesternZodiac(month time.Month, day int) ZodiacSign {
	md := MonthDay{month, day}
	for i := len(signStarts) - 1; i >= 0; i-- {
		if !md.before(signStarts[i].start) {
			return signStarts[i].sign
		}
	}
	// January 1 to 19 belong to the sign that started in December.
	return Capricorn
}
