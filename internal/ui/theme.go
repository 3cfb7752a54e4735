package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/tartampluch/go-exact-age/internal/config"
)

// variantTheme pins the default theme to one variant regardless of the
// desktop setting.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// themeFor maps a stored preference to a Fyne theme. Unknown values fall
// back to light.
func themeFor(pref string) fyne.Theme {
	variant := theme.VariantLight
	if pref == config.ThemeDark {
		variant = theme.VariantDark
	}
	return &variantTheme{Theme: theme.DefaultTheme(), variant: variant}
}

// normalizeTheme collapses anything that is not "dark" to the default.
func normalizeTheme(pref string) string {
	if pref == config.ThemeDark {
		return config.ThemeDark
	}
	return config.DefaultTheme
}

// ThemeName returns the persisted theme preference.
func (app *ExactAgeApp) ThemeName() string {
	return normalizeTheme(app.Preferences.StringWithFallback(config.PrefTheme, config.DefaultTheme))
}

// LoadTheme applies the persisted theme. Called once at start-up.
func (app *ExactAgeApp) LoadTheme() {
	name := app.ThemeName()
	app.App.Settings().SetTheme(themeFor(name))
	slog.Debug(config.MsgThemeLoaded,
		config.LogKeyComponent, config.CompTheme,
		config.LogKeyTheme, name)
}

// ToggleTheme flips between light and dark, persists the choice and
// relabels the toggle button.
func (app *ExactAgeApp) ToggleTheme() {
	next := config.ThemeDark
	if app.ThemeName() == config.ThemeDark {
		next = config.ThemeLight
	}

	app.Preferences.SetString(config.PrefTheme, next)
	app.App.Settings().SetTheme(themeFor(next))

	if app.themeBtn != nil {
		app.themeBtn.SetText(app.themeButtonLabel())
	}

	slog.Info(config.MsgThemeToggled,
		config.LogKeyComponent, config.CompTheme,
		config.LogKeyTheme, next)
}

// themeButtonLabel names the theme the button switches to.
func (app *ExactAgeApp) themeButtonLabel() string {
	if app.ThemeName() == config.ThemeDark {
		return app.GetMsg(config.TKeyBtnToLight)
	}
	return app.GetMsg(config.TKeyBtnToDark)
}
