package engine_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-exact-age/internal/engine"
)

func encodeAnniversaries(t *testing.T, p engine.Profile, opts engine.CalendarOptions) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, engine.EncodeAnniversaries(&buf, p, opts))
	return buf.String()
}

func TestEncodeAnniversaries_GeneratesYearRange(t *testing.T) {
	// Current Date: 2025-01-01. Birth: 1990-12-31.
	p, err := engine.Build(civil(1990, 12, 31, 0, 0, 0), civil(2025, 1, 1, 0, 0, 0))
	require.NoError(t, err)

	ics := encodeAnniversaries(t, p, engine.CalendarOptions{})

	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20241231", "Should include previous year")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20251231", "Should include current year")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20261231", "Should include next year")
	assert.Contains(t, ics, "SUMMARY:Birthday (35)")
	assert.Equal(t, 3, strings.Count(ics, "BEGIN:VEVENT"))
	assert.NotContains(t, ics, "BEGIN:VALARM")
}

func TestEncodeAnniversaries_BabyBornThisYear(t *testing.T) {
	p, err := engine.Build(civil(2025, 1, 1, 3, 0, 0), civil(2025, 5, 1, 0, 0, 0))
	require.NoError(t, err)

	ics := encodeAnniversaries(t, p, engine.CalendarOptions{
		FormatSummary: func(age int) string {
			if age == 0 {
				return "Birth"
			}
			return fmt.Sprintf("Turns %d", age)
		},
	})

	assert.NotContains(t, ics, "DTSTART;VALUE=DATE:20240101", "Should NOT generate event before birth")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20250101")
	assert.Contains(t, ics, "SUMMARY:Birth")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260101")
	assert.Contains(t, ics, "SUMMARY:Turns 1")
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
}

func TestEncodeAnniversaries_WithReminders(t *testing.T) {
	p, err := engine.Build(civil(1990, 1, 1, 0, 0, 0), civil(2025, 6, 1, 0, 0, 0))
	require.NoError(t, err)

	ics := encodeAnniversaries(t, p, engine.CalendarOptions{ReminderTrigger: "-P1D"})

	assert.Contains(t, ics, "BEGIN:VALARM", "ICS should contain an alarm component")
	assert.Contains(t, ics, "TRIGGER:-P1D", "Alarm trigger should match configuration")
	assert.Contains(t, ics, "ACTION:DISPLAY", "Alarm action should be DISPLAY")
}

func TestEncodeAnniversaries_StableUIDs(t *testing.T) {
	birth := civil(1990, 1, 1, 0, 0, 0)
	p1, err := engine.Build(birth, civil(2025, 6, 1, 0, 0, 0))
	require.NoError(t, err)
	p2, err := engine.Build(birth, civil(2025, 7, 1, 0, 0, 0))
	require.NoError(t, err)

	uids := func(ics string) []string {
		var out []string
		for _, line := range strings.Split(ics, "\r\n") {
			if strings.HasPrefix(line, "UID:") {
				out = append(out, line)
			}
		}
		return out
	}

	first := uids(encodeAnniversaries(t, p1, engine.CalendarOptions{}))
	assert.Len(t, first, 3)
	assert.Equal(t, first, uids(encodeAnniversaries(t, p2, engine.CalendarOptions{})))
}
