package shape

import (
	"fmt"

	"github.com/pkg/errors"
)

// Dimensionality is the rank marker attached to every array. A fixed
// marker pins the rank and every shape or strides container built through
// it is checked against that rank; a dynamic marker accepts any rank.
type Dimensionality struct {
	rank    int
	dynamic bool
}

// Fixed returns a marker for arrays of exactly n axes.
func Fixed(n int) Dimensionality {
	if n < 0 {
		panic(errors.Errorf("shape: negative rank %d", n))
	}
	return Dimensionality{rank: n}
}

// Dynamic returns a marker whose rank is only known at runtime.
func Dynamic() Dimensionality {
	return Dimensionality{dynamic: true}
}

// IsDynamic reports whether the rank is decided at runtime.
func (d Dimensionality) IsDynamic() bool {
	return d.dynamic
}

// Rank returns the fixed rank; ok is false for a dynamic marker.
func (d Dimensionality) Rank() (n int, ok bool) {
	if d.dynamic {
		return 0, false
	}
	return d.rank, true
}

// Check panics if n is not a valid container length for the marker.
func (d Dimensionality) Check(n int) {
	if !d.dynamic && n != d.rank {
		panic(errors.Errorf("shape: rank mismatch: %s dimensionality cannot hold %d axes", d, n))
	}
}

// ShapeZeroed returns an all-zero shape of the given rank.
func (d Dimensionality) ShapeZeroed(rank int) Shape {
	d.Check(rank)
	return make(Shape, rank)
}

// StridesZeroed returns all-zero strides of the given rank.
func (d Dimensionality) StridesZeroed(rank int) Strides {
	d.Check(rank)
	return make(Strides, rank)
}

// FirstIndex returns the all-zero multi-index for shape. ok is false when
// any axis has length zero, in which case there is nothing to visit.
func (d Dimensionality) FirstIndex(s Shape) (index Shape, ok bool) {
	for _, n := range s {
		if n == 0 {
			return nil, false
		}
	}
	return d.ShapeZeroed(len(s)), true
}

// Insert returns the marker for an array with one more axis.
func (d Dimensionality) Insert() Dimensionality {
	if d.dynamic {
		return d
	}
	return Dimensionality{rank: d.rank + 1}
}

// Remove returns the marker for an array with one axis less.
func (d Dimensionality) Remove() Dimensionality {
	if d.dynamic {
		return d
	}
	if d.rank == 0 {
		panic(errors.New("shape: cannot remove an axis from a 0-dimensional array"))
	}
	return Dimensionality{rank: d.rank - 1}
}

// WithRank returns a marker of the same kind for n axes.
func (d Dimensionality) WithRank(n int) Dimensionality {
	if d.dynamic {
		return d
	}
	return Fixed(n)
}

// Max returns the marker of a broadcast result of d and other.
func (d Dimensionality) Max(other Dimensionality) Dimensionality {
	if d.dynamic || other.dynamic {
		return Dynamic()
	}
	return Fixed(max(d.rank, other.rank))
}

// String returns a human-readable marker.
func (d Dimensionality) String() string {
	if d.dynamic {
		return "IxDyn"
	}
	return fmt.Sprintf("Ix%d", d.rank)
}
