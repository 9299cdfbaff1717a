package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.NoLevel,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Level returns the zerolog level for a case-insensitive name, falling back
// to info.
func Level(name string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// Options selects where log output goes.
type Options struct {
	Level string
	File  string
	// Interactive is set while the viewer owns the terminal; console output
	// is suppressed then.
	Interactive bool
}

func isTerminalAttached(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// New builds a logger for opts. The returned close function releases the
// log file, if any, and is never nil.
func New(opts Options) (zerolog.Logger, func(), error) {
	out, closeFn, err := output(opts)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	l := zerolog.New(out).Level(Level(opts.Level)).With().Timestamp().Logger()
	return l, closeFn, nil
}

// Setup configures the global logger the same way as New.
func Setup(opts Options) (func(), error) {
	l, closeFn, err := New(opts)
	if err != nil {
		return closeFn, err
	}
	zerolog.SetGlobalLevel(Level(opts.Level))
	log.Logger = l
	return closeFn, nil
}

func output(opts Options) (io.Writer, func(), error) {
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening log file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	if opts.Interactive {
		return io.Discard, func() {}, nil
	}
	if isTerminalAttached(os.Stderr) {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
