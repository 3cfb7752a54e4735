package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/tartampluch/go-exact-age/internal/config"
	"github.com/tartampluch/go-exact-age/internal/engine"
)

// errNoProfile is returned by exports before any calculation succeeded.
var errNoProfile = errors.New(config.ErrNoBirthDate)

// Prefill imports a birth date from a local path or http(s) URL and starts a
// calculation with it. Safe to call from any goroutine.
func (app *ExactAgeApp) Prefill(location string) error {
	birth, name, err := engine.ImportFromSource(app.Ctx, app.Fetcher, location)
	if err != nil {
		return err
	}

	app.dispatch(func() {
		app.setBirth(birth, name)
	})
	return nil
}

// importFrom reads a birth date from r and starts a calculation with it.
// Must run on the UI goroutine.
func (app *ExactAgeApp) importFrom(r io.Reader) error {
	birth, name, err := engine.ImportBirth(r)
	if err != nil {
		return err
	}
	slog.Info(config.MsgImported,
		config.LogKeyComponent, config.CompInterop,
		config.LogKeyName, name)

	app.setBirth(birth, name)
	return nil
}

// setBirth fills the entry with birth and schedules its calculation.
func (app *ExactAgeApp) setBirth(birth time.Time, name string) {
	app.contactName = name
	value := birth.Format(config.InputFormatLocalSeconds)
	if app.entry != nil {
		app.entry.SetText(value)
	}
	app.RequestCalculation(value)
}

// writeVCard encodes the profile on screen as a vCard.
func (app *ExactAgeApp) writeVCard(w io.Writer) error {
	p, ok := app.CurrentProfile()
	if !ok {
		return errNoProfile
	}
	return engine.EncodeVCard(w, app.contactName, p)
}

// writeCalendar encodes the anniversaries of the profile on screen.
func (app *ExactAgeApp) writeCalendar(w io.Writer) error {
	p, ok := app.CurrentProfile()
	if !ok {
		return errNoProfile
	}
	return engine.EncodeAnniversaries(w, p, engine.CalendarOptions{
		ReminderTrigger: config.DefaultReminderTrigger,
		FormatSummary:   app.buildSummaryFormatter(),
	})
}

// buildSummaryFormatter returns a closure that localizes the event summary.
func (app *ExactAgeApp) buildSummaryFormatter() func(age int) string {
	return func(age int) string {
		if age == 0 {
			msg := app.GetMsg(config.TKeyEvtSummaryBirth)
			if msg == config.TKeyEvtSummaryBirth {
				return config.FallbackSummaryBirth
			}
			return msg
		}
		msg := app.GetMsgData(config.TKeyEvtSummaryAge, map[string]interface{}{"Age": age})
		if msg == config.TKeyEvtSummaryAge {
			return fmt.Sprintf(config.FallbackSummaryAge, age)
		}
		return msg
	}
}

func (app *ExactAgeApp) showImportDialog() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			app.showError(config.TitleImportError, config.TKeyErrImport, err)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()

		if err := app.importFrom(r); err != nil {
			slog.Error(config.ErrImportFailed,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyFile, r.URI().Path(),
				config.LogKeyError, err)
			app.showError(config.TitleImportError, config.TKeyErrImport, err)
		}
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

func (app *ExactAgeApp) showExportVCardDialog() {
	app.showSaveDialog(config.ExportVCardName, []string{config.ExtVCF, config.ExtVCard}, app.writeVCard)
}

func (app *ExactAgeApp) showExportCalendarDialog() {
	app.showSaveDialog(config.ExportICSName, []string{config.ExtICS}, app.writeCalendar)
}

func (app *ExactAgeApp) showSaveDialog(fileName string, exts []string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			app.showError(config.TitleExportError, config.TKeyErrExport, err)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()

		if err := write(wc); err != nil {
			slog.Error(config.ErrExportFailed,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyFile, wc.URI().Path(),
				config.LogKeyError, err)
			app.showError(config.TitleExportError, config.TKeyErrExport, err)
			return
		}
		slog.Info(config.MsgExported,
			config.LogKeyComponent, config.CompInterop,
			config.LogKeyFile, wc.URI().Path())
	}, app.Window)
	d.SetFileName(fileName)
	d.SetFilter(storage.NewExtensionFileFilter(exts))
	d.Show()
}

func (app *ExactAgeApp) showError(title, key string, err error) {
	if app.Window == nil {
		return
	}
	dialog.ShowInformation(title, fmt.Sprintf("%s\n%v", app.GetMsg(key), err), app.Window)
}
