package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base zerolog.Logger
	set  bool
)

// Init configures the global JSON logger. Level is one of
// debug|info|warn|error (anything else means info).
func Init(level string, pretty bool) {
	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	SetOutput(w, level)
}

// SetOutput replaces the global logger writer. Tests use it to capture lines.
func SetOutput(w io.Writer, level string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	l := zerolog.New(w).
		With().
		Timestamp().
		Str("service", "barber-marketplace").
		Logger().
		Level(parseLevel(level))

	mu.Lock()
	base = l
	set = true
	mu.Unlock()
}

// L returns the global logger, initialising it with defaults on first use.
func L() *zerolog.Logger {
	mu.RLock()
	ok := set
	mu.RUnlock()

	if !ok {
		Init("info", false)
	}

	mu.RLock()
	defer mu.RUnlock()
	l := base
	return &l
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
