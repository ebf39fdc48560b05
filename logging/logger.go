// Package logging builds the zerolog loggers used by the scheduler and the
// command line tool.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrBadFormat is returned for an unknown output format.
var ErrBadFormat = errors.New("logging: unknown format")

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects level, format and destination.
type Config struct {
	App    string    // value of the "app" field
	Level  string    // zerolog level name; empty means info
	Format string    // FormatConsole or FormatJSON; empty means console
	Out    io.Writer // defaults to os.Stderr
}

// New returns a logger stamped with a timestamp and the app name.
func New(cfg Config) (zerolog.Logger, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	lvl := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(cfg.Level)); err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: level %q: %w", cfg.Level, err)
		}
	}

	switch cfg.Format {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrBadFormat, cfg.Format)
	}

	app := cfg.App
	if app == "" {
		app = "ghsmst"
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Str("app", app).Logger(), nil
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger { return zerolog.Nop() }
