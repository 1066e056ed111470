// Package debug gates the layout invariant checks of the array engine.
// They are compiled in with the "debug" build tag and can be switched on
// at runtime with STRIDED_DEBUG=1.
package debug

import (
	"sync/atomic"

	"github.com/born-ml/strided/internal/envconfig"
	"github.com/pkg/errors"
)

var enabled atomic.Bool

func init() {
	enabled.Store(buildTag || envconfig.Debug())
}

// Enabled reports whether invariant checks run.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled switches the checks on or off and returns the previous state.
func SetEnabled(on bool) bool {
	return enabled.Swap(on)
}

// Assert panics with the formatted message if checks are enabled and cond
// is false.
func Assert(cond bool, format string, args ...any) {
	if !cond && enabled.Load() {
		panic(errors.Errorf("assertion failed: "+format, args...))
	}
}
