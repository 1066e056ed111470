package tensor

import (
	"iter"

	"github.com/born-ml/strided/internal/shape"
	"github.com/pkg/errors"
)

// Lane walks one line of an array along a single axis.
type Lane[T any] struct {
	data      []T
	pos       int
	stride    int
	remaining int
	zst       bool
}

// Next returns the next element of the lane.
func (l *Lane[T]) Next() (v T, ok bool) {
	if l.remaining == 0 {
		return v, false
	}
	l.remaining--
	if l.zst {
		return v, true
	}
	v = l.data[l.pos]
	l.pos += l.stride
	return v, true
}

// Len returns the number of elements left in the lane.
func (l *Lane[T]) Len() int { return l.remaining }

// All returns the rest of the lane as a sequence.
func (l *Lane[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := l.Next(); ok; v, ok = l.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// LaneMut walks one line of an array along a single axis for writing.
type LaneMut[T any] struct {
	data      []T
	pos       int
	stride    int
	remaining int
	zst       bool
}

// Next returns a pointer to the next element of the lane.
func (l *LaneMut[T]) Next() (*T, bool) {
	if l.remaining == 0 {
		return nil, false
	}
	l.remaining--
	if l.zst {
		return new(T), true
	}
	p := &l.data[l.pos]
	l.pos += l.stride
	return p, true
}

// Len returns the number of elements left in the lane.
func (l *LaneMut[T]) Len() int { return l.remaining }

// lanes enumerates the lines of an array along one axis. The walker runs
// over the shape with that axis pinned to length 1, so every other axis is
// visited once per line.
type lanes struct {
	walker
	laneLen    int
	laneStride int
}

func newLanes(dim shape.Dimensionality, sh Shape, st Strides, offset, axis int, zst bool) lanes {
	ax, err := shape.NormalizeAxis(axis, len(sh))
	if err != nil {
		panic(errors.WithMessage(err, "tensor: lanes"))
	}
	pinned := sh.Clone()
	pinned[ax] = 1
	return lanes{
		walker:     newWalker(dim, pinned, st, offset, zst),
		laneLen:    sh[ax],
		laneStride: st[ax],
	}
}

// Lanes is the sequence iterator of an array along one axis: one Lane for
// every combination of the other axes, in row-major order.
type Lanes[T any] struct {
	lanes
	data []T
}

// Lanes returns the lines of a along axis. It panics if axis is out of
// range.
func (a *Array[T]) Lanes(axis int) *Lanes[T] {
	return &Lanes[T]{
		lanes: newLanes(a.dim, a.shape, a.strides, a.offset, axis, zeroSized[T]()),
		data:  a.storage.Slice(),
	}
}

// Next returns the next lane.
func (ls *Lanes[T]) Next() (*Lane[T], bool) {
	base, ok := ls.next()
	if !ok {
		return nil, false
	}
	return &Lane[T]{data: ls.data, pos: base, stride: ls.laneStride, remaining: ls.laneLen, zst: ls.zst}, true
}

// Len returns the number of lanes left.
func (ls *Lanes[T]) Len() int { return ls.remaining }

// All returns the remaining lanes as a sequence.
func (ls *Lanes[T]) All() iter.Seq[*Lane[T]] {
	return func(yield func(*Lane[T]) bool) {
		for l, ok := ls.Next(); ok; l, ok = ls.Next() {
			if !yield(l) {
				return
			}
		}
	}
}

// LanesMut is the writing counterpart of Lanes.
type LanesMut[T any] struct {
	lanes
	data []T
}

// LanesMut returns the writable lines of a along axis.
func (a *Array[T]) LanesMut(axis int) *LanesMut[T] {
	return &LanesMut[T]{
		lanes: newLanes(a.dim, a.shape, a.strides, a.offset, axis, zeroSized[T]()),
		data:  a.mutable().MutSlice(),
	}
}

// Next returns the next writable lane.
func (ls *LanesMut[T]) Next() (*LaneMut[T], bool) {
	base, ok := ls.next()
	if !ok {
		return nil, false
	}
	return &LaneMut[T]{data: ls.data, pos: base, stride: ls.laneStride, remaining: ls.laneLen, zst: ls.zst}, true
}

// Len returns the number of lanes left.
func (ls *LanesMut[T]) Len() int { return ls.remaining }
