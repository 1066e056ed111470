package tensor

import (
	"iter"

	"github.com/born-ml/strided/internal/shape"
)

// walker enumerates multi-indices of a shape in row-major logical order
// and maps them to storage positions.
type walker struct {
	shape     Shape
	strides   Strides
	offset    int
	index     Shape // nil once exhausted
	remaining int
	zst       bool
}

func newWalker(dim shape.Dimensionality, sh Shape, st Strides, offset int, zst bool) walker {
	w := walker{shape: sh.Clone(), strides: st.Clone(), offset: offset, zst: zst}
	if idx, ok := dim.FirstIndex(sh); ok {
		w.index = idx
		w.remaining = sh.ArrayLen()
	}
	return w
}

// next returns the storage position of the current index and advances.
// Zero-sized elements skip the position arithmetic.
func (w *walker) next() (pos int, ok bool) {
	if w.index == nil {
		return 0, false
	}
	if !w.zst {
		pos = w.offset + w.strides.Offset(w.index)
	}
	for ax := len(w.index) - 1; ax >= 0; ax-- {
		w.index[ax]++
		if w.index[ax] < w.shape[ax] {
			break
		}
		w.index[ax] = 0
	}
	w.remaining--
	if w.remaining == 0 {
		w.index = nil
	}
	return pos, true
}

// Iter reads the elements of an array in row-major logical order. It
// cannot be restarted; ask the array for a new one.
type Iter[T any] struct {
	walker
	data []T
}

// Iter returns an iterator over the elements of a.
func (a *Array[T]) Iter() *Iter[T] {
	return &Iter[T]{
		walker: newWalker(a.dim, a.shape, a.strides, a.offset, zeroSized[T]()),
		data:   a.storage.Slice(),
	}
}

// Next returns the next element.
func (it *Iter[T]) Next() (v T, ok bool) {
	pos, ok := it.next()
	if !ok || it.zst {
		return v, ok
	}
	return it.data[pos], true
}

// NextIndexed returns the next element with a copy of its multi-index.
func (it *Iter[T]) NextIndexed() (idx []int, v T, ok bool) {
	if it.index == nil {
		return nil, v, false
	}
	idx = append([]int(nil), it.index...)
	v, ok = it.Next()
	return idx, v, ok
}

// Len returns the number of elements left.
func (it *Iter[T]) Len() int { return it.remaining }

// Done reports whether the iterator is exhausted.
func (it *Iter[T]) Done() bool { return it.index == nil }

// IterMut yields pointers to the elements of an array in row-major
// logical order.
type IterMut[T any] struct {
	walker
	data []T
}

// IterMut returns a writing iterator over a. It panics on read-only
// storage and promotes copy-on-write storage.
func (a *Array[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{
		walker: newWalker(a.dim, a.shape, a.strides, a.offset, zeroSized[T]()),
		data:   a.mutable().MutSlice(),
	}
}

// Next returns a pointer to the next element.
func (it *IterMut[T]) Next() (*T, bool) {
	pos, ok := it.next()
	if !ok {
		return nil, false
	}
	if it.zst {
		return new(T), true
	}
	return &it.data[pos], true
}

// Len returns the number of elements left.
func (it *IterMut[T]) Len() int { return it.remaining }

// Done reports whether the iterator is exhausted.
func (it *IterMut[T]) Done() bool { return it.index == nil }

// All returns a range-over-func sequence of the elements.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := a.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Indexed returns a sequence of (multi-index, element) pairs. The index
// slice is reused between iterations.
func (a *Array[T]) Indexed() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		it := a.Iter()
		idx := make([]int, len(a.shape))
		for it.index != nil {
			copy(idx, it.index)
			v, _ := it.Next()
			if !yield(idx, v) {
				return
			}
		}
	}
}

// AllMut returns a sequence of pointers to the elements.
func (a *Array[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := a.IterMut()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
