package tensor

import (
	"github.com/born-ml/strided/internal/debug"
	"github.com/pkg/errors"
)

// Slice returns a read-only view selected axis by axis. Axes left without
// a selector are kept whole.
//
// Example:
//
//	a := tensor.Arange[int](0, 8)
//	a.Slice(tensor.All().StepBy(-1)) // 7 6 5 4 3 2 1 0, offset 7, stride -1
//	a.Slice(tensor.NewAxis())        // shape [1, 8], strides [0, 1]
func (a *Array[T]) Slice(sel ...Selector) *Array[T] {
	off, sh, st := a.slicedParts(sel)
	return derive(a, a.storage.View(), sh, st, off)
}

// SliceMut returns an exclusive mutable view selected like Slice. Release
// it before mutating a again.
func (a *Array[T]) SliceMut(sel ...Selector) *Array[T] {
	m := a.mutable()
	off, sh, st := a.slicedParts(sel)
	return derive(a, m.ViewMut(), sh, st, off)
}

// SliceInPlace narrows a itself. Index selectors are applied as length-1
// ranges so the rank does not change; NewAxis is not allowed.
func (a *Array[T]) SliceInPlace(sel ...Selector) {
	if len(sel) > len(a.shape) {
		panic(errors.Errorf("too many indices for array: array is %d-dimensional, but %d were indexed", len(a.shape), len(sel)))
	}
	collapsed := make([]Selector, len(sel))
	for i, s := range sel {
		switch s := s.(type) {
		case Index:
			j := wrapIndex(int(s), i, a.shape[i])
			collapsed[i] = Range(j, j+1)
		case newAxis:
			panic(errors.New("tensor: SliceInPlace cannot insert axes"))
		default:
			collapsed[i] = s
		}
	}
	off, sh, st := a.slicedParts(collapsed)
	a.shape, a.strides, a.offset = sh, st, off
	if debug.Enabled() {
		a.checkLayout()
	}
}

// slicedParts computes the layout a selector list produces.
func (a *Array[T]) slicedParts(sel []Selector) (offset int, sh Shape, st Strides) {
	info := SliceInfo(sel)
	ndims := len(a.shape)
	if n := info.InDims(); n > ndims {
		panic(errors.Errorf("too many indices for array: array is %d-dimensional, but %d were indexed", ndims, n))
	}
	outDim := a.dim.WithRank(ndims + info.DimDiff())
	outN := ndims + info.DimDiff()
	sh = outDim.ShapeZeroed(outN)
	st = outDim.StridesZeroed(outN)

	in, out := 0, 0
	offset = a.offset
	for _, s := range sel {
		switch s := s.(type) {
		case Index:
			dim := a.shape[in]
			offset += a.strides[in] * wrapIndex(int(s), in, dim)
			in++
		case Slice:
			if s.Step == 0 {
				panic(errors.New("tensor: slice step cannot be zero"))
			}
			dim := a.shape[in]
			stride := a.strides[in]
			sh[out] = s.length(dim)
			st[out] = stride * s.Step
			if start := s.start(dim); start > 0 {
				offset += stride * start
			}
			in++
			out++
		case newAxis:
			sh[out] = 1
			st[out] = 0
			out++
		default:
			panic(errors.Errorf("tensor: unknown selector %T", s))
		}
	}
	for ; in < ndims; in, out = in+1, out+1 {
		sh[out] = a.shape[in]
		st[out] = a.strides[in]
	}

	if n := a.storage.Len(); n > 0 && !sh.IsEmpty() && !zeroSized[T]() {
		debug.Assert(offset >= 0 && offset < n, "sliced offset %d outside storage of length %d", offset, n)
	}
	return offset, sh, st
}
