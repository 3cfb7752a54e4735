package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-exact-age/internal/config"
	"github.com/tartampluch/go-exact-age/internal/engine"
	"github.com/tartampluch/go-exact-age/internal/scheduler"
)

// viewState is the immutable result of the latest applied calculation.
// A nil profile means there is nothing to show.
type viewState struct {
	ticket  scheduler.Ticket
	profile *engine.Profile
	err     error
}

// ExactAgeApp encapsulates the UI state, preferences, and background logic.
type ExactAgeApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Calculator *engine.Calculator
	Scheduler  *scheduler.Delayed
	Fetcher    engine.VCardFetcher

	// dispatch runs UI updates from background goroutines.
	dispatch func(func())

	state atomic.Pointer[viewState]

	// Owned by the UI goroutine.
	contactName string

	themeBtn     *widget.Button
	entry        *DateTimeEntry
	calcBtn      *widget.Button
	progress     *widget.ProgressBarInfinite
	exportVCard  *widget.Button
	exportICS    *widget.Button
	resultLabels resultLabels
}

type resultLabels struct {
	age, zodiac, chinese, weekday, names, next *widget.Label
}

func (r resultLabels) all() []*widget.Label {
	return []*widget.Label{r.age, r.zodiac, r.chinese, r.weekday, r.names, r.next}
}

// NewExactAgeApp constructs the application and wires dependencies.
func NewExactAgeApp(a fyne.App, ctx context.Context, fetcher engine.VCardFetcher, delay time.Duration) *ExactAgeApp {
	a.SetIcon(theme.HistoryIcon())

	app := &ExactAgeApp{
		App:         a,
		Preferences: a.Preferences(),
		Ctx:         ctx,
		Calculator:  engine.NewCalculator(),
		Scheduler:   scheduler.NewDelayed(delay),
		Fetcher:     fetcher,
		dispatch:    fyne.Do,
	}
	app.state.Store(&viewState{})
	return app
}

// Run loads the catalog and theme, shows the main window and blocks until
// the application quits.
func (app *ExactAgeApp) Run() {
	app.SetupI18n()
	app.LoadTheme()
	app.BuildWindow()

	defer app.Scheduler.Close()

	app.Window.ShowAndRun()
}

// BuildWindow creates the main window. Split from Run for headless tests.
func (app *ExactAgeApp) BuildWindow() fyne.Window {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	app.themeBtn = widget.NewButtonWithIcon(app.themeButtonLabel(), theme.ColorPaletteIcon(), app.ToggleTheme)

	app.entry = NewDateTimeEntry()
	app.entry.SetPlaceHolder(config.PlaceholderBirth)
	app.entry.OnSubmitted = app.RequestCalculation

	app.calcBtn = widget.NewButton(app.GetMsg(config.TKeyBtnCalculate), func() {
		app.RequestCalculation(app.entry.Text)
	})
	app.calcBtn.Importance = widget.HighImportance

	app.progress = widget.NewProgressBarInfinite()
	app.progress.Stop()
	app.progress.Hide()

	newResult := func() *widget.Label {
		l := widget.NewLabel("")
		l.Wrapping = fyne.TextWrapWord
		return l
	}
	app.resultLabels = resultLabels{
		age: newResult(), zodiac: newResult(), chinese: newResult(),
		weekday: newResult(), names: newResult(), next: newResult(),
	}

	importBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.FolderOpenIcon(), app.showImportDialog)
	app.exportVCard = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportVCard), theme.DocumentSaveIcon(), app.showExportVCardDialog)
	app.exportICS = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportICS), theme.StorageIcon(), app.showExportCalendarDialog)
	app.exportVCard.Disable()
	app.exportICS.Disable()

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyWinTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, nil, app.themeBtn, title)

	form := widget.NewForm(widget.NewFormItem(app.GetMsg(config.TKeyLblBirth), app.entry))

	results := container.NewVBox()
	for _, l := range app.resultLabels.all() {
		results.Add(l)
	}

	content := container.NewPadded(container.NewVBox(
		header,
		widget.NewSeparator(),
		form,
		app.calcBtn,
		app.progress,
		results,
		widget.NewSeparator(),
		container.NewGridWithColumns(config.LayoutColumnsTriple, importBtn, app.exportVCard, app.exportICS),
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetOnClosed(app.Scheduler.Cancel)
	return w
}

// RequestCalculation parses value and schedules a calculation. Unparseable
// input is ignored. A newer request supersedes a pending one.
func (app *ExactAgeApp) RequestCalculation(value string) {
	birth, ok := engine.ParseBirth(value)
	if !ok {
		slog.Debug(config.MsgCalcIgnored,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, value)
		return
	}

	app.setPending(true)

	ticket := app.Scheduler.Schedule(func(t scheduler.Ticket) {
		p, err := app.Calculator.Calculate(birth)
		app.dispatch(func() {
			app.apply(t, p, err)
		})
	})

	slog.Info(config.MsgCalcRequested,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDOB, birth.Format(config.InputFormatLocalSeconds),
		config.LogKeyTicket, uint64(ticket))
}

// apply publishes a finished calculation unless a newer request took over.
func (app *ExactAgeApp) apply(t scheduler.Ticket, p engine.Profile, err error) {
	if !app.Scheduler.Current(t) {
		slog.Debug(config.MsgCalcStale,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyTicket, uint64(t))
		return
	}

	next := &viewState{ticket: t, err: err}
	switch {
	case err == nil:
		next.profile = &p
	case errors.Is(err, engine.ErrInvalidRange):
		slog.Warn(config.ErrCalculateFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	default:
		slog.Error(config.ErrCalculateFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	}

	app.render(next)
	app.setPending(false)
	app.state.Store(next)

	slog.Debug(config.MsgCalcDone,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyTicket, uint64(t))
}

// setPending switches the controls between the idle and calculating looks.
func (app *ExactAgeApp) setPending(pending bool) {
	if app.calcBtn == nil {
		return
	}
	if pending {
		app.calcBtn.SetText(app.GetMsg(config.TKeyBtnCalculating))
		app.calcBtn.Disable()
		app.progress.Show()
		app.progress.Start()
		return
	}
	app.calcBtn.SetText(app.GetMsg(config.TKeyBtnCalculate))
	app.calcBtn.Enable()
	app.progress.Stop()
	app.progress.Hide()
}

// render writes s into the result labels.
func (app *ExactAgeApp) render(s *viewState) {
	if app.resultLabels.age == nil {
		return
	}
	for _, l := range app.resultLabels.all() {
		l.SetText("")
	}

	if s.profile == nil {
		app.exportVCard.Disable()
		app.exportICS.Disable()
		if errors.Is(s.err, engine.ErrInvalidRange) {
			app.resultLabels.age.SetText(app.GetMsg(config.TKeyResNone))
		}
		return
	}

	lines := app.resultLines(*s.profile)
	for i, l := range app.resultLabels.all() {
		l.SetText(lines[i])
	}
	app.exportVCard.Enable()
	app.exportICS.Enable()
}

// resultLines formats a profile in label order.
func (app *ExactAgeApp) resultLines(p engine.Profile) []string {
	a := p.Age
	return []string{
		app.GetMsgData(config.TKeyResAge, map[string]interface{}{
			"Years": a.Years, "Months": a.Months, "Days": a.Days,
			"Hours": a.Hours, "Minutes": a.Minutes, "Seconds": a.Seconds,
		}),
		app.GetMsgData(config.TKeyResZodiac, map[string]interface{}{"Sign": p.Sign.String()}),
		app.GetMsgData(config.TKeyResChinese, map[string]interface{}{"Animal": p.Animal.String()}),
		app.GetMsgData(config.TKeyResWeekday, map[string]interface{}{"Weekday": p.Weekday.String()}),
		app.GetMsgData(config.TKeyResNames, map[string]interface{}{"Names": strings.Join(p.Names, config.NameSeparator)}),
		app.GetMsgData(config.TKeyResNextBday, map[string]interface{}{
			"Date": p.NextBirthday.Format(app.dateLayout()),
			"Age":  p.AgeNext,
		}),
	}
}

// dateLayout returns the localized Go layout for short dates.
func (app *ExactAgeApp) dateLayout() string {
	layout := app.GetMsg(config.TKeyFormatDate)
	if layout == config.TKeyFormatDate {
		return config.DateFormatDisplay
	}
	return layout
}

// CurrentProfile returns the profile on screen, if any.
func (app *ExactAgeApp) CurrentProfile() (engine.Profile, bool) {
	s := app.state.Load()
	if s == nil || s.profile == nil {
		return engine.Profile{}, false
	}
	return *s.profile, true
}
