package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Selector picks what one axis contributes to a slice: an Index removes
// the axis, a Slice keeps a strided range of it and NewAxis inserts a new
// length-1 axis without consuming one.
type Selector interface {
	fmt.Stringer
	selector()
}

// Index selects a single position. Negative values count from the end.
type Index int

func (Index) selector() {}

func (i Index) String() string { return fmt.Sprintf("%d", int(i)) }

type newAxis struct{}

func (newAxis) selector() {}

func (newAxis) String() string { return "newaxis" }

// NewAxis inserts a length-1 axis with stride 0.
func NewAxis() Selector { return newAxis{} }

// BoundKind tells how a range bound is interpreted.
type BoundKind int

// Bound kinds.
const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one end of a range. Negative values count from the end of the
// axis.
type Bound struct {
	Kind  BoundKind
	Value int
}

// Slice selects a strided range of an axis.
type Slice struct {
	Start Bound
	End   Bound
	Step  int
}

func (Slice) selector() {}

// Range selects [start, end).
func Range(start, end int) Slice {
	return Slice{Start: Bound{Included, start}, End: Bound{Excluded, end}, Step: 1}
}

// RangeInclusive selects [start, end].
func RangeInclusive(start, end int) Slice {
	return Slice{Start: Bound{Included, start}, End: Bound{Included, end}, Step: 1}
}

// RangeFrom selects [start, ...).
func RangeFrom(start int) Slice {
	return Slice{Start: Bound{Included, start}, Step: 1}
}

// RangeTo selects [..., end).
func RangeTo(end int) Slice {
	return Slice{End: Bound{Excluded, end}, Step: 1}
}

// RangeToInclusive selects [..., end].
func RangeToInclusive(end int) Slice {
	return Slice{End: Bound{Included, end}, Step: 1}
}

// All selects the whole axis.
func All() Slice {
	return Slice{Step: 1}
}

// StepBy returns s walking every step-th element; a negative step walks
// backwards from the start bound. It panics on a zero step.
func (s Slice) StepBy(step int) Slice {
	if step == 0 {
		panic(errors.New("tensor: slice step cannot be zero"))
	}
	s.Step = step
	return s
}

func (s Slice) String() string {
	out := ""
	if s.Start.Kind != Unbounded {
		out = fmt.Sprintf("%d", s.Start.Value)
	}
	switch s.End.Kind {
	case Excluded:
		out += fmt.Sprintf("..%d", s.End.Value)
	case Included:
		out += fmt.Sprintf("..=%d", s.End.Value)
	default:
		out += ".."
	}
	if s.Step != 1 {
		out += fmt.Sprintf(";%d", s.Step)
	}
	return out
}

// start resolves the first visited position on an axis of length dim. The
// result is clamped, not checked.
func (s Slice) start(dim int) int {
	switch s.Start.Kind {
	case Included:
		first := 0
		if s.Step < 0 {
			first = -1
		}
		x := s.Start.Value
		if x < 0 {
			return max(first, x+dim)
		}
		return min(x, dim+first)
	case Unbounded:
		if s.Step > 0 {
			return 0
		}
		return dim - 1
	default:
		panic(errors.New("tensor: slice start cannot be exclusive"))
	}
}

// end resolves the exclusive stop position on an axis of length dim.
func (s Slice) end(dim int) int {
	switch s.End.Kind {
	case Excluded:
		x := s.End.Value
		if x < 0 {
			return max(-1, x+dim)
		}
		return min(x, dim)
	case Included:
		c := 1
		if s.Step < 0 {
			c = -1
		}
		x := s.End.Value
		if x < 0 {
			return max(-1, x+c+dim)
		}
		return min(x+c, dim)
	default:
		if s.Step > 0 {
			return dim
		}
		return -1
	}
}

// length returns the number of positions s visits on an axis of length dim.
func (s Slice) length(dim int) int {
	adj := -1
	if s.Step < 0 {
		adj = 1
	}
	return max(0, (s.end(dim)-s.start(dim)+s.Step+adj)/s.Step)
}

// SliceInfo is a list of selectors applied axis by axis.
type SliceInfo []Selector

// DimDiff returns the rank change the selectors cause: -1 per Index and
// +1 per NewAxis.
func (si SliceInfo) DimDiff() int {
	d := 0
	for _, sel := range si {
		switch sel.(type) {
		case Index:
			d--
		case newAxis:
			d++
		}
	}
	return d
}

// InDims returns the number of input axes the selectors consume.
func (si SliceInfo) InDims() int {
	n := 0
	for _, sel := range si {
		if _, ok := sel.(newAxis); !ok {
			n++
		}
	}
	return n
}
