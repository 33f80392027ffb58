package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnknownMode is returned for a mode argument that is not recognized.
var ErrUnknownMode = errors.New("unrecognized autoreload mode")

// Settings are the user-facing switches of a reloader.
type Settings struct {
	// Enabled turns the automatic pre-execution check on.
	Enabled bool
	// CheckAll checks every loaded unit instead of the allow-list only.
	CheckAll bool
	// AutoloadNew injects identifiers that first appear in a reloaded
	// unit into the interactive namespace.
	AutoloadNew bool
}

// Mode is the parsed form of a mode argument.
type Mode struct {
	Settings Settings
	// Now requests a single forced check instead of a settings change.
	Now bool
}

// ParseMode accepts "", "now", "0", "off", "1", "explicit", "2", "all",
// "3" and "complete", ignoring case.
func ParseMode(arg string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "now":
		return Mode{Now: true}, nil
	case "0", "off":
		return Mode{Settings: Settings{}}, nil
	case "1", "explicit":
		return Mode{Settings: Settings{Enabled: true}}, nil
	case "2", "all":
		return Mode{Settings: Settings{Enabled: true, CheckAll: true}}, nil
	case "3", "complete":
		return Mode{Settings: Settings{Enabled: true, CheckAll: true, AutoloadNew: true}}, nil
	}

	return Mode{}, fmt.Errorf("%w %q", ErrUnknownMode, arg)
}

// String renders the settings as the mode name that produces them.
func (s Settings) String() string {
	switch {
	case !s.Enabled:
		return "off"
	case s.AutoloadNew:
		return "complete"
	case s.CheckAll:
		return "all"
	default:
		return "explicit"
	}
}

// Reporter builds the report sink for the print and log flags. With
// neither flag the sink is silent.
func Reporter(print func(string), logger *slog.Logger, toPrint, toLog bool) func(string) {
	switch {
	case toPrint && toLog:
		return func(msg string) {
			print(msg)
			logger.Info(msg)
		}
	case toPrint:
		return print
	case toLog:
		return func(msg string) { logger.Info(msg) }
	}

	return nil
}
