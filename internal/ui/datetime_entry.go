package ui

import (
	"strings"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// allowedDateTimeRunes are the separators of the accepted input layouts.
const allowedDateTimeRunes = "-: T"

// DateTimeEntry is an Entry that only accepts the characters of a civil
// date-time such as 1990-05-15T08:30.
type DateTimeEntry struct {
	widget.Entry
}

// NewDateTimeEntry creates a new instance of DateTimeEntry.
func NewDateTimeEntry() *DateTimeEntry {
	entry := &DateTimeEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune drops anything that is not a digit or a date-time separator.
// Pasted text bypasses this filter; parsing rejects it later.
func (e *DateTimeEntry) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || strings.ContainsRune(allowedDateTimeRunes, r) {
		e.Entry.TypedRune(r)
	}
}

// Keyboard requests the numeric keypad on mobile devices.
func (e *DateTimeEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
