package engine

import "fmt"

// nameSuggestions is keyed by sign and animal names. It is built once and
// never written to.
var nameSuggestions = map[string][2]string{
	"Aries":       {"Aiden", "Aria"},
	"Taurus":      {"Tara", "Tobias"},
	"Gemini":      {"Gemma", "Gavin"},
	"Cancer":      {"Cara", "Caleb"},
	"Leo":         {"Liam", "Leah"},
	"Virgo":       {"Vivian", "Vincent"},
	"Libra":       {"Lila", "Lukas"},
	"Scorpio":     {"Sophie", "Samuel"},
	"Sagittarius": {"Sage", "Santiago"},
	"Capricorn":   {"Carter", "Clara"},
	"Aquarius":    {"Aqua", "August"},
	"Pisces":      {"Piper", "Peter"},
	"Monkey":      {"Mona", "Mark"},
	"Rooster":     {"Rosa", "Ray"},
	"Dog":         {"Diana", "Daniel"},
	"Pig":         {"Pia", "Paul"},
	"Rat":         {"Rachel", "Ryan"},
	"Ox":          {"Olivia", "Oscar"},
	"Tiger":       {"Tina", "Theo"},
	"Rabbit":      {"Ruby", "Robert"},
	"Dragon":      {"Daisy", "David"},
	"Snake":       {"Sara", "Sam"},
	"Horse":       {"Holly", "Harry"},
	"Goat":        {"Grace", "George"},
}

// SuggestNames returns the two names of the sign followed by the two names of
// the animal. Duplicates are kept.
func SuggestNames(sign ZodiacSign, animal ChineseAnimal) ([]string, error) {
	return suggestFrom(nameSuggestions, sign, animal)
}

func suggestFrom(table map[string][2]string, sign ZodiacSign, animal ChineseAnimal) ([]string, error) {
	western, ok := table[sign.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConfiguration, sign.String())
	}
	chinese, ok := table[animal.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConfiguration, animal.String())
	}
	return []string{western[0], western[1], chinese[0], chinese[1]}, nil
}

// ValidateTables checks that every sign and animal has suggestions.
// It is run once at start-up so a broken table stops the process early.
func ValidateTables() error {
	return validateTable(nameSuggestions)
}

func validateTable(table map[string][2]string) error {
	for _, s := range Signs() {
		if _, ok := table[s.String()]; !ok {
			return fmt.Errorf("%w: %q", ErrConfiguration, s.String())
		}
	}
	for _, a := range Animals() {
		if _, ok := table[a.String()]; !ok {
			return fmt.Errorf("%w: %q", ErrConfiguration, a.String())
		}
	}
	return nil
}
