package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateTable_MissingKey simulates a table-construction bug.
func TestValidateTable_MissingKey(t *testing.T) {
	broken := make(map[string][2]string, len(nameSuggestions))
	for k, v := range nameSuggestions {
		broken[k] = v
	}
	delete(broken, "Goat")

	err := validateTable(broken)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "Goat")

	_, err = suggestFrom(broken, Leo, Goat)
	assert.ErrorIs(t, err, ErrConfiguration)

	names, err := suggestFrom(broken, Leo, Rat)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Liam", "Leah", "Rachel", "Ryan"}, names)
}

func TestNameTable_Size(t *testing.T) {
	assert.Len(t, nameSuggestions, 24, "12 signs and 12 animals")
}
