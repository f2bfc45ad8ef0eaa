package minimap

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// debugMode enables contract assertions (degenerate projection scale) and a
// stderr logger for overlays built without one. Only meaningful for a single
// process-wide setting; widgets are single-threaded.
var debugMode bool

// SetDebugMode enables or disables debug mode. When enabled, projecting
// through a zero or negative world or overlay size panics instead of
// producing Inf/NaN coordinates, and overlays constructed afterwards without
// an explicit Config.Logger log gesture transitions to stderr.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return debugMode
}

// debugCheckScale panics when a projection is asked to divide by a
// non-positive size. Callers skip this entirely outside debug mode.
func debugCheckScale(op string, s Size) {
	if !s.Positive() {
		panic(fmt.Sprintf("minimap debug: %s with degenerate size %vx%v", op, s.Width, s.Height))
	}
}

// newLogger resolves the configured logger. A nil logger is silent unless
// debug mode is on.
func newLogger(l *zerolog.Logger) zerolog.Logger {
	if l != nil {
		return *l
	}
	if debugMode {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Str("component", "minimap").Logger()
	}
	return zerolog.Nop()
}
