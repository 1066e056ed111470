package tensor

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/born-ml/strided/internal/debug"
	"github.com/born-ml/strided/internal/shape"
	"github.com/born-ml/strided/internal/storage"
	"github.com/pkg/errors"
)

// Layout types shared with the shape package.
type (
	Shape          = shape.Shape
	Strides        = shape.Strides
	NewShape       = shape.NewShape
	Order          = shape.Order
	Dimensionality = shape.Dimensionality
)

// Memory orders.
const (
	RowMajor    = shape.RowMajor
	ColumnMajor = shape.ColumnMajor
)

// Fixed is shorthand for shape.Fixed.
func Fixed(n int) Dimensionality { return shape.Fixed(n) }

// Array is a strided view of elements held by a storage. Element
// (i0, i1, ...) lives at offset + Σ ik·strides[k] in the storage slice.
//
// Derived arrays (slices, broadcasts, transposes) reuse the storage
// through its View, ViewMut or Cow capability; nothing is copied unless an
// operation says so.
//
// Example:
//
//	a, _ := tensor.Arange[float64](0, 24).IntoShape(tensor.NewShape{2, 3, 4})
//	b := a.Slice(tensor.All(), tensor.Index(1), tensor.All().StepBy(-1))
//	fmt.Println(b.Shape(), b.Strides()) // [2, 4] [12, -1]
type Array[T any] struct {
	dim     shape.Dimensionality
	order   Order
	shape   Shape
	strides Strides
	storage storage.Storage[T]
	offset  int
}

// New builds an array over an existing storage. order is the layout used
// when the array is copied or reshaped; it does not have to match st. New
// panics if shape and strides disagree in rank with each other or with dim.
func New[T any](dim Dimensionality, order Order, sh Shape, st Strides, s storage.Storage[T], offset int) *Array[T] {
	if len(sh) != len(st) {
		panic(errors.Errorf("tensor: shape %v and strides %v differ in rank", sh, st))
	}
	dim.Check(len(sh))
	a := &Array[T]{dim: dim, order: order, shape: sh, strides: st, storage: s, offset: offset}
	if debug.Enabled() {
		a.checkLayout()
	}
	return a
}

// checkLayout asserts that every element position lies inside the
// storage. Empty arrays and zero-sized element types reach no memory.
func (a *Array[T]) checkLayout() {
	if a.shape.IsEmpty() || zeroSized[T]() {
		return
	}
	lo, hi := a.offset, a.offset
	for i, n := range a.shape {
		ext := (n - 1) * a.strides[i]
		if ext < 0 {
			lo += ext
		} else {
			hi += ext
		}
	}
	debug.Assert(lo >= 0 && hi < a.storage.Len(),
		"array %v with strides %v at offset %d reaches [%d, %d] outside storage of length %d",
		a.shape, a.strides, a.offset, lo, hi, a.storage.Len())
}

func zeroSized[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 0
}

// derive returns an array over storage s with a new layout, the same
// order and the same dimensionality kind.
func derive[T any](a *Array[T], s storage.Storage[T], sh Shape, st Strides, offset int) *Array[T] {
	return New[T](a.dim.WithRank(len(sh)), a.order, sh, st, s, offset)
}

// Dim returns the rank marker.
func (a *Array[T]) Dim() Dimensionality { return a.dim }

// Order returns the order used for copies and reshapes.
func (a *Array[T]) Order() Order { return a.order }

// Shape returns the axis lengths. The result must not be modified.
func (a *Array[T]) Shape() Shape { return a.shape }

// Strides returns the element strides. The result must not be modified.
func (a *Array[T]) Strides() Strides { return a.strides }

// NDims returns the number of axes.
func (a *Array[T]) NDims() int { return len(a.shape) }

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.shape.ArrayLen() }

// IsEmpty reports whether the array has no elements.
func (a *Array[T]) IsEmpty() bool { return a.Len() == 0 }

// Offset returns the storage position of the first element.
func (a *Array[T]) Offset() int { return a.offset }

// Storage returns the storage handle.
func (a *Array[T]) Storage() storage.Storage[T] { return a.storage }

// IsStandardLayout reports whether the array is row-major contiguous.
func (a *Array[T]) IsStandardLayout() bool {
	return RowMajor.IsContiguous(a.shape, a.strides)
}

// IsContiguous reports whether the array is contiguous in either order.
func (a *Array[T]) IsContiguous() bool {
	return RowMajor.IsContiguous(a.shape, a.strides) || ColumnMajor.IsContiguous(a.shape, a.strides)
}

// View returns a read-only view of the same elements.
func (a *Array[T]) View() *Array[T] {
	return derive(a, a.storage.View(), a.shape.Clone(), a.strides.Clone(), a.offset)
}

// ViewMut returns an exclusive mutable view of the same elements. The
// caller releases it with Release before mutating a again.
func (a *Array[T]) ViewMut() *Array[T] {
	return derive(a, a.mutable().ViewMut(), a.shape.Clone(), a.strides.Clone(), a.offset)
}

// Transpose reverses the axes.
func (a *Array[T]) Transpose() *Array[T] {
	n := len(a.shape)
	sh := make(Shape, n)
	st := make(Strides, n)
	for i := range a.shape {
		sh[n-1-i] = a.shape[i]
		st[n-1-i] = a.strides[i]
	}
	return derive(a, a.storage.View(), sh, st, a.offset)
}

// Permute reorders the axes: axis i of the result is axis axes[i] of a.
// It panics unless axes uses every axis exactly once.
func (a *Array[T]) Permute(axes ...int) *Array[T] {
	shape.CheckPermutation(axes, len(a.shape))
	sh := make(Shape, len(axes))
	st := make(Strides, len(axes))
	for i, ax := range axes {
		sh[i] = a.shape[ax]
		st[i] = a.strides[ax]
	}
	return derive(a, a.storage.View(), sh, st, a.offset)
}

// InsertAxis returns a view with a length-1 axis at position axis.
func (a *Array[T]) InsertAxis(axis int) *Array[T] {
	if axis < 0 || axis > len(a.shape) {
		panic(errors.Errorf("tensor: insert axis %d out of range for array of dimension %d", axis, len(a.shape)))
	}
	sh := make(Shape, 0, len(a.shape)+1)
	st := make(Strides, 0, len(a.shape)+1)
	sh = append(append(append(sh, a.shape[:axis]...), 1), a.shape[axis:]...)
	st = append(append(append(st, a.strides[:axis]...), 0), a.strides[axis:]...)
	return New[T](a.dim.Insert(), a.order, sh, st, a.storage.View(), a.offset)
}

// Squeeze returns a view without the length-1 axes.
func (a *Array[T]) Squeeze() *Array[T] {
	sh, st := shape.Squeezed(a.shape, a.strides)
	return derive(a, a.storage.View(), sh, st, a.offset)
}

// ToOwned copies the elements into a new array laid out in a's order.
func (a *Array[T]) ToOwned() *Array[T] {
	return a.ToOwnedOrder(a.order)
}

// ToOwnedOrder copies the elements into a new contiguous array laid out in
// order. This always allocates.
func (a *Array[T]) ToOwnedOrder(order Order) *Array[T] {
	sh := a.shape.Clone()
	if !order.IsContiguous(a.shape, a.strides) {
		logger().Debug("copying non-contiguous array", "shape", a.shape, "strides", a.strides, "order", order)
	}
	return New[T](a.dim, order, sh, order.Strides(sh), storage.NewOwned(a.linear(order)), 0)
}

// ToSlice returns the elements in row-major logical order.
func (a *Array[T]) ToSlice() []T {
	data := make([]T, a.Len())
	a.copyTo(data)
	return data
}

// linear returns the elements in the linear order of order: row-major
// logical order, or first axis fastest for column-major.
func (a *Array[T]) linear(order Order) []T {
	data := make([]T, a.Len())
	if order == ColumnMajor {
		a.Transpose().copyTo(data)
	} else {
		a.copyTo(data)
	}
	return data
}

func (a *Array[T]) copyTo(dst []T) {
	it := a.Iter()
	for i := range dst {
		dst[i], _ = it.Next()
	}
}

// Fill sets every element to v. It panics on read-only storage.
func (a *Array[T]) Fill(v T) {
	it := a.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p = v
	}
}

// At returns the element at idx. Negative indices count from the end of
// their axis. It panics on a wrong index count or an out-of-range index.
func (a *Array[T]) At(idx ...int) T {
	pos := a.position(idx)
	if zeroSized[T]() {
		var zero T
		return zero
	}
	return a.storage.Slice()[pos]
}

// Set stores v at idx. It panics like At, or on read-only storage.
func (a *Array[T]) Set(v T, idx ...int) {
	pos := a.position(idx)
	data := a.mutable().MutSlice()
	if zeroSized[T]() {
		return
	}
	data[pos] = v
}

func (a *Array[T]) position(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(errors.Errorf("tensor: array is %d-dimensional, but %d indices were given", len(a.shape), len(idx)))
	}
	pos := a.offset
	for ax, i := range idx {
		pos += a.strides[ax] * wrapIndex(i, ax, a.shape[ax])
	}
	return pos
}

// wrapIndex resolves a possibly negative index against an axis of length
// dim, panicking when it is out of range.
func wrapIndex(i, axis, dim int) int {
	if i < -dim || i >= dim {
		panic(errors.Errorf("index %d is out of bounds for axis %d with size %d", i, axis, dim))
	}
	return (i + dim) % dim
}

// Clone returns another handle to the same elements. Shared storage gains a
// reference, views and copy-on-write storages re-borrow. Owned and mutably
// borrowed arrays cannot be aliased and panic; use View or ToOwned.
func (a *Array[T]) Clone() *Array[T] {
	var s storage.Storage[T]
	switch st := a.storage.(type) {
	case *storage.Shared[T]:
		s = st.Clone()
	case *storage.View[T]:
		s = st.View()
	case *storage.Cow[T]:
		s = st.Cow()
	default:
		panic(errors.Errorf("tensor: cannot clone an array backed by %s storage", a.storage.Kind()))
	}
	return derive(a, s, a.shape.Clone(), a.strides.Clone(), a.offset)
}

// Release gives back the storage handle when it is a shared reference or
// a mutable borrow. Other storages are left to the garbage collector.
func (a *Array[T]) Release() {
	if r, ok := a.storage.(storage.Releaser); ok {
		r.Release()
	}
}

// IntoShared moves the elements of an owned array into reference-counted
// storage. Other arrays are copied first. a must not be used afterwards.
func (a *Array[T]) IntoShared() *Array[T] {
	src := a
	o, ok := src.storage.(*storage.Owned[T])
	if !ok {
		src = a.ToOwned()
		o = src.storage.(*storage.Owned[T])
	}
	out := derive(src, o.IntoShared(), src.shape, src.strides, src.offset)
	*a = Array[T]{}
	return out
}

func (a *Array[T]) mutable() storage.Mutable[T] {
	m, ok := storage.AsMutable(a.storage)
	if !ok {
		panic(errors.Errorf("tensor: %s storage is read-only", a.storage.Kind()))
	}
	return m
}

// String formats the layout and the elements in logical order. It is a
// debugging aid, not a pretty printer.
func (a *Array[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Array%v strides=%v offset=%d [", a.shape, a.strides, a.offset)
	it := a.Iter()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
