package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used for remote vCard imports.
var UserAgent = "Go-Exact-Age/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Exact Age Calculator"
	AppID       = "com.github.tartampluch.go-exact-age"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the cache directory holding the logs.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// Log Rotation
// -----------------------------------------------------------------------------

const (
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagVCard        = "vcard"
	FlagFollow       = "follow"
	FlagDelay        = "delay"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescVCard    = "Prefill the birth date from a vCard file path or http(s) URL"
	FlagDescFollow   = "Re-import the birth date when the local vCard file changes"
	FlagDescDelay    = "Delay before a calculation is shown"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 520
	MainWindowHeight = 480

	// Preference Keys
	PrefTheme   = "theme"
	PrefLastRun = "last_run_version"

	// Theme preference values as stored in the preference store.
	ThemeLight   = "light"
	ThemeDark    = "dark"
	DefaultTheme = ThemeLight

	// DefaultLanguage is the only shipped message catalog.
	DefaultLanguage = "en"

	// Entry placeholder matching the accepted input layout.
	PlaceholderBirth = "2006-01-02T15:04"

	// NameSeparator joins the suggested names in the result line.
	NameSeparator = ", "
)

// CalculationDelay is the cosmetic pause before a result is applied.
const CalculationDelay = 1 * time.Second

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle        = "win_title"
	TKeyLblBirth        = "lbl_birth"
	TKeyBtnCalculate    = "btn_calculate"
	TKeyBtnCalculating  = "btn_calculating"
	TKeyBtnToDark       = "btn_theme_to_dark"
	TKeyBtnToLight      = "btn_theme_to_light"
	TKeyBtnImport       = "btn_import_vcard"
	TKeyBtnExportVCard  = "btn_export_vcard"
	TKeyBtnExportICS    = "btn_export_calendar"
	TKeyResAge          = "result_age"           // Requires Years..Seconds
	TKeyResZodiac       = "result_zodiac"        // Requires Sign
	TKeyResChinese      = "result_chinese"       // Requires Animal
	TKeyResWeekday      = "result_weekday"       // Requires Weekday
	TKeyResNames        = "result_names"         // Requires Names
	TKeyResNextBday     = "result_next_birthday" // Requires Date, Age
	TKeyResNone         = "result_none"
	TKeyEvtSummaryAge   = "event_summary_age"    // Requires Age
	TKeyEvtSummaryBirth = "event_summary_birth"
	TKeyErrImport       = "err_import"
	TKeyErrExport       = "err_export"
	TKeyFormatDate      = "format_date_short"
)

// -----------------------------------------------------------------------------
// Input Formats
// -----------------------------------------------------------------------------

const (
	// Accepted layouts for a birth date typed or imported by the user.
	InputFormatLocalSeconds = "2006-01-02T15:04:05"
	InputFormatLocal        = "2006-01-02T15:04"
	InputFormatSpaceSeconds = "2006-01-02 15:04:05"
	InputFormatSpace        = "2006-01-02 15:04"
	InputFormatRFC3339      = time.RFC3339

	// vCard BDAY layouts. Year-less layouts are recognized only to be skipped.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatBasicT    = "20060102T150405"
	DateFormatBasicTZ   = "20060102T150405Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	DateFormatDisplay = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Exact Age//Engine//EN"
	ICalCalName   = "Birthday"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "goexactage"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY    = "BDAY"
	VCardFN      = "FN"
	VCardN       = "N"
	VCardVersion = "4.0"

	DefaultICalRefresh = 24 * time.Hour

	// DefaultReminderTrigger notifies one day before each anniversary.
	DefaultReminderTrigger = "-P1D"
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// UID Generation
	UIDSalt         = "go-exact-age-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s"
	FormatUID       = "%s-%d@%s"

	// FormatProfileNote summarizes the classification in an exported vCard.
	FormatProfileNote = "Zodiac: %s; Chinese zodiac: %s; Born on a %s"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtICS   = ".ics"

	ExportVCardName = "birthday.vcf"
	ExportICSName   = "birthday.ics"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	MaxHTTPResponseSize = 16 * 1024 * 1024 // 16MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	HeaderUserAgent     = "User-Agent"

	// WatchDebounce absorbs editors writing a file in several steps.
	WatchDebounce = 300 * time.Millisecond
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidRange    = "invalid range: birth instant is after the reference instant"
	ErrConfiguration   = "configuration error: lookup table is missing a key"
	ErrNoBirthDate     = "no contact with a full birth date found"
	ErrSourceEmpty     = "configuration error: vCard source is empty"
	ErrFetcherMissing  = "internal error: network fetcher is not initialized"
	ErrInvalidURL      = "invalid URL structure"
	ErrProtocol        = "unsupported protocol scheme (http/https only)"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrVCardEncode     = "failed to encode vCard data"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrDateParse       = "unable to parse date"
	ErrDateNoYear      = "birth date has no year"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrWatchStart      = "failed to start file watcher"
	ErrWatchEvent      = "file watcher error"
	ErrImportFailed    = "birth date import failed"
	ErrExportFailed    = "export failed"
	ErrCalculateFailed = "calculation produced no result"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackName         = "Unknown"
	FallbackSummaryAge   = "Birthday (%d)"
	FallbackSummaryBirth = "Birth"

	TitleImportError = "Import Error"
	TitleExportError = "Export Error"

	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping unusable birth date"
	MsgImported       = "Birth date imported"
	MsgExported       = "Export written"
	MsgCalcRequested  = "Calculation requested"
	MsgCalcIgnored    = "Calculation ignored: no valid birth date"
	MsgCalcDone       = "Calculation applied"
	MsgCalcStale      = "Discarding superseded calculation"
	MsgCalcComputed   = "Profile computed"
	MsgThemeToggled   = "Theme toggled"
	MsgThemeLoaded    = "Theme loaded"
	MsgWatchStart     = "Following vCard file"
	MsgWatchStop      = "File watcher stopping"
	MsgWatchChanged   = "vCard file changed"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgTablesVerified = "Lookup tables verified"
	MsgFetchStart     = "Initiating vCard download"
	MsgFetchStatus    = "Server returned error status"
	MsgFetchOK        = "vCard downloading"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeySource    = "source"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyTheme     = "theme"
	LogKeyTicket    = "ticket"
	LogKeyAge       = "age"
	LogKeySign      = "sign"
	LogKeyAnimal    = "animal"
	LogKeyLength    = "content_length"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI        = "ui"
	CompTheme     = "ui_theme"
	CompEngine    = "engine"
	CompInterop   = "interop"
	CompFetcher   = "fetcher"
	CompScheduler = "scheduler"
	CompWatcher   = "watcher"
	CompMain      = "main"
	CompI18n      = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsTriple = 3
)
