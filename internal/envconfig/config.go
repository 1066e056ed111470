// Package envconfig reads the environment variables that tune the array
// engine and its command line tool.
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Var returns an environment variable stripped of leading and trailing
// quotes or spaces.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// BoolWithDefault returns a reader for a boolean variable. A set but
// unparsable value counts as true.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a reader for a boolean variable that defaults to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

var (
	// Debug enables descriptor invariant checks at runtime.
	Debug = Bool("STRIDED_DEBUG")
)

// LogLevel returns the level configured through STRIDED_LOG_LEVEL
// (debug, info, warn, error or a signed slog level). When unset, a truthy
// STRIDED_DEBUG selects debug and everything else info.
func LogLevel() slog.Level {
	if s := Var("STRIDED_LOG_LEVEL"); s != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(s)); err == nil {
			return level
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return slog.Level(i)
		}
		slog.Warn("invalid environment variable, using default", "key", "STRIDED_LOG_LEVEL", "value", s)
	}
	if Debug() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// EnvVar describes one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"STRIDED_DEBUG":     {"STRIDED_DEBUG", Debug(), "Check array layout invariants on every derived array (e.g. STRIDED_DEBUG=1)"},
		"STRIDED_LOG_LEVEL": {"STRIDED_LOG_LEVEL", LogLevel(), "Log level of the command line tool (debug, info, warn, error)"},
	}
}
