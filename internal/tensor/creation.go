package tensor

import (
	"math"

	"github.com/born-ml/strided/internal/shape"
	"github.com/born-ml/strided/internal/storage"
	"github.com/pkg/errors"
)

// FromSlice creates a row-major array from a Go slice. The slice is
// copied.
func FromSlice[T any](data []T, sh Shape) (*Array[T], error) {
	return FromSliceOrder(data, sh, RowMajor)
}

// FromSliceOrder creates an array whose elements are read from data in
// the linear order of order. The slice is copied.
func FromSliceOrder[T any](data []T, sh Shape, order Order) (*Array[T], error) {
	if err := sh.Validate(); err != nil {
		return nil, err
	}
	if sh.ArrayLen() != len(data) {
		return nil, errors.Wrapf(shape.ErrIncompatibleShape, "shape %v requires %d elements, but got %d", sh, sh.ArrayLen(), len(data))
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return fromStorage[T](storage.NewOwned(buf), sh.Clone(), order), nil
}

// FromVec takes ownership of data as a one-dimensional array. Reshape it
// with IntoShape.
func FromVec[T any](data []T) *Array[T] {
	return fromStorage[T](storage.NewOwned(data), Shape{len(data)}, RowMajor)
}

// SharedFromSlice creates a row-major array over reference-counted
// storage. The slice is copied.
func SharedFromSlice[T any](data []T, sh Shape) (*Array[T], error) {
	a, err := FromSlice(data, sh)
	if err != nil {
		return nil, err
	}
	return a.IntoShared(), nil
}

// Scalar creates a 0-dimensional array holding v.
func Scalar[T any](v T) *Array[T] {
	return fromStorage[T](storage.NewOwned([]T{v}), Shape{}, RowMajor)
}

// Zeros creates a row-major array filled with zero values.
func Zeros[T any](sh Shape) *Array[T] {
	return ZerosOrder[T](sh, RowMajor)
}

// ZerosOrder creates an array filled with zero values laid out in order.
func ZerosOrder[T any](sh Shape, order Order) *Array[T] {
	mustValidate(sh)
	return fromStorage[T](storage.Zeros[T](sh.ArrayLen()), sh.Clone(), order)
}

// Ones creates a row-major array filled with ones.
func Ones[T Number](sh Shape) *Array[T] {
	mustValidate(sh)
	return fromStorage[T](storage.Ones[T](sh.ArrayLen()), sh.Clone(), RowMajor)
}

// Full creates a row-major array filled with v.
func Full[T any](sh Shape, v T) *Array[T] {
	mustValidate(sh)
	return fromStorage[T](storage.Full(sh.ArrayLen(), v), sh.Clone(), RowMajor)
}

// Arange creates a 1D array with values from start to end (exclusive) in
// steps of one.
//
// Example:
//
//	t := tensor.Arange[int32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T Number](start, end T) *Array[T] {
	n := 0
	if end > start {
		// Counted in float64: end-start may not fit in T.
		n = int(math.Ceil(float64(end) - float64(start)))
	}
	data := make([]T, n)
	for i := range data {
		data[i] = start + T(i)
	}
	return FromVec(data)
}

// Eye creates an n×n identity matrix.
func Eye[T Number](n int) *Array[T] {
	a := Zeros[T](Shape{n, n})
	for i := 0; i < n; i++ {
		a.Set(1, i, i)
	}
	return a
}

// allocate returns an array whose elements are unspecified; callers fill
// all of them before handing it out.
func allocate[T any](dim Dimensionality, sh Shape, order Order) *Array[T] {
	return New[T](dim, order, sh, order.Strides(sh), storage.Allocate[T](sh.ArrayLen()), 0)
}

func fromStorage[T any](s storage.Storage[T], sh Shape, order Order) *Array[T] {
	return New[T](shape.Fixed(len(sh)), order, sh, order.Strides(sh), s, 0)
}

func mustValidate(sh Shape) {
	if err := sh.Validate(); err != nil {
		panic(errors.WithMessage(err, "tensor: invalid shape"))
	}
}

// IntoDyn returns a with a dynamic rank marker. a must not be used
// afterwards.
func (a *Array[T]) IntoDyn() *Array[T] {
	out := *a
	out.dim = shape.Dynamic()
	*a = Array[T]{}
	return &out
}
