package configs

import (
	"github.com/pkg/errors"
)

// Settings are the compiler options that may come from configuration files.
// Command-line flags take precedence over every field.
type Settings struct {
	Filename string
	LogLevel string
	Rules    []string
	Print    bool
}

// DefaultSettings returns the settings used when no file sets a value.
func DefaultSettings() Settings {
	return Settings{
		LogLevel: "warn",
		Print:    true,
	}
}

// LoadSettings reads every known key from loader on top of DefaultSettings.
// For scalar keys the first file defining them wins. Rule lists from all
// files are concatenated in priority order.
func LoadSettings(loader Loader) (settings Settings, err error) {
	defer func() {
		if err != nil {
			settings = Settings{}
			err = errors.Wrap(err, "load settings")
		}
	}()

	settings = DefaultSettings()
	if settings.Filename, err = First(loader, "filename", settings.Filename); err != nil {
		return
	}
	if settings.LogLevel, err = First(loader, "log_level", settings.LogLevel); err != nil {
		return
	}
	if settings.Print, err = First(loader, "print", settings.Print); err != nil {
		return
	}
	for rules, e := range All[[]string](loader, "rules") {
		if e != nil {
			err = e
			return
		}
		settings.Rules = append(settings.Rules, rules...)
	}
	return
}
