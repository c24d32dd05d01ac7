// Package logger holds the process-wide zerolog logger used by the command
// line tool and the stream server.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var (
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()

	ErrFormat = errors.New("logger: unknown format")
)

const (
	colorRed    = 31
	colorGreen  = 32
	colorYellow = 33
	colorBold   = 1
)

// Log returns the process logger.
func Log() *zerolog.Logger {
	return &log
}

// SetConsoleWriter switches to human readable output on w.
func SetConsoleWriter(w io.Writer, noColor bool) {
	log = zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = noColor
		cw.FormatLevel = formatLevel(noColor)
		cw.TimeFormat = "15:04:05.000"
	})).Level(log.GetLevel()).With().Timestamp().Logger()
}

// SetJsonWriter switches to one JSON object per line on w.
func SetJsonWriter(w io.Writer) {
	log = zerolog.New(w).Level(log.GetLevel()).With().Timestamp().Logger()
}

// Configure sets the output format ("console" or "json") and level.
func Configure(w io.Writer, format, level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	log = log.Level(lvl)

	switch strings.ToLower(format) {
	case "", "console":
		SetConsoleWriter(w, false)
	case "json":
		SetJsonWriter(w)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	return nil
}

// colorize returns the string s wrapped in ANSI code c, unless disabled is true.
func colorize(s interface{}, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

func formatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		ll, _ := i.(string)
		switch ll {
		case "debug":
			return colorize("DBG", colorYellow, noColor)
		case "info":
			return colorize("INF", colorGreen, noColor)
		case "warn":
			return colorize("WRN", colorRed, noColor)
		case "error", "fatal", "panic":
			return colorize(colorize(strings.ToUpper(ll[:3]), colorRed, noColor), colorBold, noColor)
		case "":
			return "???"
		default:
			return strings.ToUpper(ll[:min(3, len(ll))])
		}
	}
}
