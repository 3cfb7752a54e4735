package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-exact-age/internal/config"
)

// ImportBirth scans a vCard stream and returns the birth instant and name of
// the first contact whose BDAY carries a full date. Malformed cards and
// year-less birthdays are skipped.
func ImportBirth(r io.Reader) (time.Time, string, error) {
	decoder := vcard.NewDecoder(r)

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyValue, bday.Value,
				config.LogKeyError, err)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}
		return birth, name, nil
	}

	return time.Time{}, "", ErrNoBirthDate
}

// EncodeVCard writes a single vCard 4.0 holding the name, the birth instant
// and a note summarizing the classification of p.
func EncodeVCard(w io.Writer, name string, p Profile) error {
	if name == "" {
		name = config.FallbackName
	}

	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, name)
	card.SetValue(vcard.FieldBirthday, p.Birth.Format(config.DateFormatBasicT))
	card.SetValue(vcard.FieldNote, fmt.Sprintf(config.FormatProfileNote,
		p.Sign, p.Animal, p.Weekday))

	if err := vcard.NewEncoder(w).Encode(card); err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	return nil
}

// parseDate handles the vCard BDAY layouts. Truncated dates (--MM-DD) are
// recognized but rejected since no age can be derived from them.
func parseDate(value string) (time.Time, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.InputFormatRFC3339,
		config.DateFormatFullT,
		config.DateFormatBasicT,
		config.DateFormatBasicTZ,
		config.InputFormatLocalSeconds,
	}

	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return Civil(t), nil
		}
	}

	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if _, err := time.Parse(f, value); err == nil {
			return time.Time{}, errors.New(config.ErrDateNoYear)
		}
	}

	return time.Time{}, errors.New(config.ErrDateParse)
}
