package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns the application logger. Logs go to a file under the app data
// dir so they never mix with the pterm output on the terminal; an empty path
// or an unparsable level disables logging entirely.
func New(path, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.Disabled
	}

	var w io.Writer = io.Discard
	if path != "" && lvl != zerolog.Disabled {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
				w = f
			}
		}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
