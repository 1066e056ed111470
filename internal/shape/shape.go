package shape

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Shape holds the length of every axis.
type Shape []int

// NDims returns the number of axes.
func (s Shape) NDims() int {
	return len(s)
}

// ArrayLen returns the number of elements: the product of all axis
// lengths, 1 for a 0-dimensional shape and 0 if any axis is empty.
func (s Shape) ArrayLen() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// IsEmpty reports whether the shape describes no elements.
func (s Shape) IsEmpty() bool {
	return s.ArrayLen() == 0
}

// Validate checks that no axis length is negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrIncompatibleShape, "negative length %d at axis %d", dim, i)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as [d0, d1, ...].
func (s Shape) String() string {
	return formatInts(s)
}

// Strides holds the signed element step of every axis. A zero stride
// repeats one element along the axis, a negative stride walks it backwards.
type Strides []int

// Offset returns Σ index[i]·strides[i].
func (s Strides) Offset(index Shape) int {
	off := 0
	for i, st := range s {
		off += index[i] * st
	}
	return off
}

// Equal checks if two stride sequences are equal.
func (s Strides) Equal(other Strides) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the strides.
func (s Strides) Clone() Strides {
	clone := make(Strides, len(s))
	copy(clone, s)
	return clone
}

func (s Strides) String() string {
	return formatInts(s)
}

// NewShape is a reshape target. At most one entry may be negative; it is
// inferred from the array length and the other entries.
type NewShape []int

// Infer resolves the placeholder axis of ns for an array of n elements.
func (ns NewShape) Infer(n int) (Shape, error) {
	unknown := -1
	rest := 1
	for i, dim := range ns {
		if dim < 0 {
			if unknown >= 0 {
				return nil, errors.Wrap(ErrIncompatibleShape, "can only specify one unknown dimension")
			}
			unknown = i
			continue
		}
		rest *= dim
	}

	out := make(Shape, len(ns))
	copy(out, ns)
	if unknown >= 0 {
		if rest == 0 || n%rest != 0 {
			return nil, errors.Wrapf(ErrIncompatibleShape, "cannot transform array of length %d into shape %v", n, []int(ns))
		}
		out[unknown] = n / rest
		return out, nil
	}
	if rest != n {
		return nil, errors.Wrapf(ErrIncompatibleShape, "cannot transform array of length %d into shape %v", n, []int(ns))
	}
	return out, nil
}

func formatInts(v []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", x)
	}
	b.WriteByte(']')
	return b.String()
}
