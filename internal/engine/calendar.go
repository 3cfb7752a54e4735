package engine

import (
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-exact-age/internal/config"
)

// CalendarOptions tunes the anniversary export.
type CalendarOptions struct {
	// ReminderTrigger is an ISO 8601 duration (e.g. "-P1D"); empty disables alarms.
	ReminderTrigger string

	// FormatSummary allows the UI to inject localized strings into the export.
	FormatSummary func(age int) string
}

// EncodeAnniversaries writes an iCalendar document with one all-day event per
// anniversary in the year before, the year of and the year after
// p.Reference. No event is generated before the birth year.
func EncodeAnniversaries(w io.Writer, p Profile, opts CalendarOptions) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(p.Reference.UTC())

	for _, e := range createEvents(p, opts) {
		e.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, e.Component)
	}

	// The encoder rejects a calendar without components.
	if len(cal.Children) == 0 {
		_, err := fmt.Fprintf(w, "BEGIN:VCALENDAR\r\nVERSION:%s\r\nPRODID:%s\r\nEND:VCALENDAR\r\n",
			config.ICalVersion, config.ICalProdid)
		return err
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return nil
}

func createEvents(p Profile, opts CalendarOptions) []*ical.Event {
	currentYear := p.Reference.Year()
	uidBase := anniversaryUID(p.Birth)

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if y < p.Birth.Year() {
			continue
		}
		age := y - p.Birth.Year()

		summary := defaultSummary(age)
		if opts.FormatSummary != nil {
			summary = opts.FormatSummary(age)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(time.Date(y, p.Birth.Month(), p.Birth.Day(), 0, 0, 0, 0, time.UTC))
		event.Props.Set(dtStartProp)

		if opts.ReminderTrigger != "" {
			addAlarm(event, opts.ReminderTrigger, summary)
		}
		events = append(events, event)
	}
	return events
}

func defaultSummary(age int) string {
	if age == 0 {
		return config.FallbackSummaryBirth
	}
	return fmt.Sprintf(config.FallbackSummaryAge, age)
}

// anniversaryUID is stable for a given birth instant across exports.
func anniversaryUID(birth time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, birth.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
