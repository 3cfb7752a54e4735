package engine

import "github.com/tartampluch/go-exact-age/internal/config"

// ChineseAnimal is one of the twelve animals of the Chinese zodiac.
type ChineseAnimal int

// Animals are declared in the order of their year cycle starting at Rat.
const (
	Rat ChineseAnimal = iota
	Ox
	Tiger
	Rabbit
	Dragon
	Snake
	Horse
	Goat
	Monkey
	Rooster
	Dog
	Pig
)

var animalNames = [...]string{
	Rat:     "Rat",
	Ox:      "Ox",
	Tiger:   "Tiger",
	Rabbit:  "Rabbit",
	Dragon:  "Dragon",
	Snake:   "Snake",
	Horse:   "Horse",
	Goat:    "Goat",
	Monkey:  "Monkey",
	Rooster: "Rooster",
	Dog:     "Dog",
	Pig:     "Pig",
}

// animalByYearMod is indexed by year mod 12. Year 0 mod 12 is a Monkey year.
var animalByYearMod = [12]ChineseAnimal{
	Monkey, Rooster, Dog, Pig, Rat, Ox, Tiger, Rabbit, Dragon, Snake, Horse, Goat,
}

// Animals returns the twelve animals in enumeration order.
func Animals() []ChineseAnimal {
	out := make([]ChineseAnimal, len(animalNames))
	for i := range out {
		out[i] = ChineseAnimal(i)
	}
	return out
}

// String returns the English name of the animal.
func (a ChineseAnimal) String() string {
	if a < 0 || int(a) >= len(animalNames) {
		return config.FallbackName
	}
	return animalNames[a]
}

// ChineseZodiac maps a Gregorian calendar year to its animal.
// The lunar new year boundary is deliberately ignored: a birth on
// January 10 takes the animal of its Gregorian year.
func ChineseZodiac(year int) ChineseAnimal {
	return animalByYearMod[floorMod(year, len(animalByYearMod))]
}
