package tensor

import (
	"github.com/born-ml/strided/internal/shape"
	"github.com/pkg/errors"
)

// Concatenate joins arrays along an existing axis. All arrays must have
// the same rank and the same length on every other axis. The result is a
// new array laid out in the first array's order.
//
// Example:
//
//	a := tensor.Zeros[float32](Shape{2, 3})
//	b := tensor.Zeros[float32](Shape{2, 5})
//	c, _ := tensor.Concatenate(1, a, b) // Shape: [2, 8]
func Concatenate[T any](axis int, arrays ...*Array[T]) (*Array[T], error) {
	if len(arrays) == 0 {
		return nil, errors.Wrap(shape.ErrIncompatibleShape, "need at least one array to concatenate")
	}
	first := arrays[0]
	ax, err := shape.NormalizeAxis(axis, first.NDims())
	if err != nil {
		return nil, err
	}

	sh := first.shape.Clone()
	sh[ax] = 0
	for i, a := range arrays {
		if a.NDims() != first.NDims() {
			return nil, errors.Wrapf(shape.ErrIncompatibleDimension,
				"array %d has %d dimensions, expected %d", i, a.NDims(), first.NDims())
		}
		for d := range a.shape {
			if d != ax && a.shape[d] != first.shape[d] {
				return nil, errors.Wrapf(shape.ErrIncompatibleShape,
					"array %d dimension %d is %d, expected %d", i, d, a.shape[d], first.shape[d])
			}
		}
		sh[ax] += a.shape[ax]
	}

	out := allocate[T](first.dim, sh, first.order)
	sel := make([]Selector, len(sh))
	for d := range sel {
		sel[d] = All()
	}
	start := 0
	for _, a := range arrays {
		n := a.shape[ax]
		sel[ax] = Range(start, start+n)
		region := out.SliceMut(sel...)
		copyLanes(region, a, ax)
		region.Release()
		start += n
	}
	return out, nil
}

// Stack joins arrays of identical shape along a new axis inserted at
// position axis (0 ≤ axis ≤ rank).
//
// Example:
//
//	a := tensor.Zeros[float32](Shape{2, 3})
//	c, _ := tensor.Stack(0, a, a) // Shape: [2, 2, 3]
func Stack[T any](axis int, arrays ...*Array[T]) (*Array[T], error) {
	if len(arrays) == 0 {
		return nil, errors.Wrap(shape.ErrIncompatibleShape, "need at least one array to stack")
	}
	first := arrays[0]
	ax, err := shape.NormalizeAxis(axis, first.NDims()+1)
	if err != nil {
		return nil, err
	}
	expanded := make([]*Array[T], len(arrays))
	for i, a := range arrays {
		if !a.shape.Equal(first.shape) {
			return nil, errors.Wrapf(shape.ErrIncompatibleShape,
				"array %d has shape %v, expected %v", i, a.shape, first.shape)
		}
		expanded[i] = a.InsertAxis(ax)
	}
	return Concatenate(ax, expanded...)
}

// copyLanes copies src into dst, which has the same shape, line by line
// along axis.
func copyLanes[T any](dst, src *Array[T], axis int) {
	dl, sl := dst.LanesMut(axis), src.Lanes(axis)
	for d, ok := dl.Next(); ok; d, ok = dl.Next() {
		s, _ := sl.Next()
		for p, ok := d.Next(); ok; p, ok = d.Next() {
			*p, _ = s.Next()
		}
	}
}

// Chunk splits a into n views of equal length along axis. The axis length
// must be divisible by n.
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{2, 3, 6})
//	parts, _ := x.Chunk(3, -1) // 3 views of shape [2, 3, 2]
func (a *Array[T]) Chunk(n, axis int) ([]*Array[T], error) {
	ax, err := shape.NormalizeAxis(axis, a.NDims())
	if err != nil {
		return nil, err
	}
	if n <= 0 || a.shape[ax]%n != 0 {
		return nil, errors.Wrapf(shape.ErrIncompatibleShape,
			"cannot split axis %d of length %d into %d chunks", ax, a.shape[ax], n)
	}
	size := a.shape[ax] / n
	sel := make([]Selector, ax+1)
	for d := range ax {
		sel[d] = All()
	}
	parts := make([]*Array[T], n)
	for i := range parts {
		sel[ax] = Range(i*size, (i+1)*size)
		parts[i] = a.Slice(sel...)
	}
	return parts, nil
}
