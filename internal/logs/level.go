package logs

import (
	"log/slog"

	"github.com/pkg/errors"
)

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
}

// SetLevel sets the minimum level of every logger, by name
// ("debug", "info", "warn" or "error").
func SetLevel(name string) error {
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return errors.Wrapf(err, "log level %q", name)
	}
	return nil
}

// Level returns the current minimum level.
func Level() slog.Level {
	return level.Level()
}
