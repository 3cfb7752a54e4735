package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-exact-age/internal/ui"
)

func TestDateTimeEntry_TypedRune(t *testing.T) {
	entry := ui.NewDateTimeEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit_Zero", '0', true},
		{"Digit_Nine", '9', true},
		{"Symbol_Dash", '-', true},
		{"Symbol_Colon", ':', true},
		{"Symbol_Space", ' ', true},
		{"Letter_T", 'T', true},
		{"Letter_t", 't', false},
		{"Letter_Z", 'Z', false},
		{"Symbol_Plus", '+', false},
		{"Symbol_Slash", '/', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry.SetText("")
			test.Type(entry, string(tt.input))

			if tt.accepted {
				assert.Equal(t, string(tt.input), entry.Text)
			} else {
				assert.Empty(t, entry.Text)
			}
		})
	}
}

func TestDateTimeEntry_TypesFullValue(t *testing.T) {
	entry := ui.NewDateTimeEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	test.Type(entry, "1990-05-15T08:30 xyz!")
	assert.Equal(t, "1990-05-15T08:30 ", entry.Text, "Only date-time characters survive typing")
}

func TestDateTimeEntry_Keyboard(t *testing.T) {
	entry := ui.NewDateTimeEntry()
	assert.Equal(t, mobile.NumberKeyboard, entry.Keyboard())
}

// SetText bypasses the rune filter; parsing is responsible for rejecting it.
func TestDateTimeEntry_DirectSetText(t *testing.T) {
	entry := ui.NewDateTimeEntry()
	entry.SetText("abc")
	assert.Equal(t, "abc", entry.Text)
}
