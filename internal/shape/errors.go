package shape

import "github.com/pkg/errors"

// Recoverable shape errors. Callers branch on them with errors.Is; the
// wrapped message carries the offending shapes.
var (
	// ErrIncompatibleShape reports shapes that cannot be broadcast,
	// reshaped or concatenated together.
	ErrIncompatibleShape = errors.New("incompatible shapes")

	// ErrIncompatibleAxis reports an axis outside the array's rank.
	ErrIncompatibleAxis = errors.New("incompatible axis")

	// ErrIncompatibleDimension reports operands of different rank.
	ErrIncompatibleDimension = errors.New("incompatible dimension")
)
