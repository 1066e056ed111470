// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"log/slog"

	"github.com/born-ml/strided/internal/shape"
	"github.com/born-ml/strided/internal/storage"
	"github.com/born-ml/strided/internal/tensor"
	"github.com/x448/float16"
	"gonum.org/v1/gonum/mat"
)

// Type aliases for public API

// Number is the constraint of element types with arithmetic.
type Number = tensor.Number

// Shape is the length of every axis.
// Example: Shape{2, 3, 4} describes a 3D array with 2×3×4 elements.
type Shape = tensor.Shape

// Strides is the element step of every axis. Strides may be zero or
// negative.
type Strides = tensor.Strides

// NewShape is a reshape target; one entry may be -1 to be inferred.
type NewShape = tensor.NewShape

// Order is a memory order.
type Order = tensor.Order

// Memory orders.
const (
	RowMajor    = tensor.RowMajor
	ColumnMajor = tensor.ColumnMajor
)

// Dimensionality marks an array as having a fixed or a dynamic rank.
type Dimensionality = tensor.Dimensionality

// Array is a strided view of elements held by a storage.
type Array[T any] = tensor.Array[T]

// DataType is runtime information about an element type.
type DataType = tensor.DataType

// Data type constants.
const (
	Float16 DataType = tensor.Float16
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Storage and its kinds.
type (
	Storage[T any] = storage.Storage[T]
	Mutable[T any] = storage.Mutable[T]
	Kind           = storage.Kind
)

// Storage kinds.
const (
	KindOwned   = storage.KindOwned
	KindView    = storage.KindView
	KindMutView = storage.KindMutView
	KindCow     = storage.KindCow
	KindShared  = storage.KindShared
)

// Selectors.
type (
	Selector  = tensor.Selector
	Index     = tensor.Index
	Slice     = tensor.Slice
	Bound     = tensor.Bound
	BoundKind = tensor.BoundKind
	SliceInfo = tensor.SliceInfo
)

// Bound kinds.
const (
	Unbounded = tensor.Unbounded
	Included  = tensor.Included
	Excluded  = tensor.Excluded
)

// Iterators.
type (
	Iter[T any]     = tensor.Iter[T]
	IterMut[T any]  = tensor.IterMut[T]
	Lane[T any]     = tensor.Lane[T]
	LaneMut[T any]  = tensor.LaneMut[T]
	Lanes[T any]    = tensor.Lanes[T]
	LanesMut[T any] = tensor.LanesMut[T]
)

// Errors returned for invalid shapes and axes. Wrapped errors match them
// with errors.Is.
var (
	ErrIncompatibleShape     = shape.ErrIncompatibleShape
	ErrIncompatibleAxis      = shape.ErrIncompatibleAxis
	ErrIncompatibleDimension = shape.ErrIncompatibleDimension
)

// Fixed returns the marker of an array with n axes.
func Fixed(n int) Dimensionality { return shape.Fixed(n) }

// Dynamic returns the marker of an array whose rank is only known at run
// time.
func Dynamic() Dimensionality { return shape.Dynamic() }

// ParseOrder parses "C"/"row" or "F"/"column".
func ParseOrder(s string) (Order, error) { return shape.ParseOrder(s) }

// ParseDataType parses a data type name such as "float32".
func ParseDataType(s string) (DataType, error) { return tensor.ParseDataType(s) }

// DataTypeOf returns the data type of T, or an unknown marker.
func DataTypeOf[T any]() DataType { return tensor.DataTypeOf[T]() }

// SetLogger installs the logger used for debug diagnostics. nil restores
// the silent default.
func SetLogger(l *slog.Logger) { tensor.SetLogger(l) }

// Storage constructors

// NewOwned takes ownership of data.
func NewOwned[T any](data []T) Mutable[T] { return storage.NewOwned(data) }

// NewShared takes ownership of data as a reference-counted buffer.
func NewShared[T any](data []T) Storage[T] { return storage.NewShared(data) }

// New builds an array over an existing storage. It panics if sh and st
// disagree in rank with each other or with dim.
//
// This is a low-level function. Most users should use FromSlice, Zeros or
// the view methods of Array instead.
func New[T any](dim Dimensionality, order Order, sh Shape, st Strides, s Storage[T], offset int) *Array[T] {
	return tensor.New[T](dim, order, sh, st, s, offset)
}

// Creation functions

// FromSlice creates a row-major array from a copy of data.
//
// Example:
//
//	a, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T any](data []T, sh Shape) (*Array[T], error) {
	return tensor.FromSlice(data, sh)
}

// FromSliceOrder creates an array whose elements are read from data in
// the linear order of order.
func FromSliceOrder[T any](data []T, sh Shape, order Order) (*Array[T], error) {
	return tensor.FromSliceOrder(data, sh, order)
}

// FromVec takes ownership of data as a 1D array.
func FromVec[T any](data []T) *Array[T] {
	return tensor.FromVec(data)
}

// SharedFromSlice creates a row-major array over reference-counted
// storage.
func SharedFromSlice[T any](data []T, sh Shape) (*Array[T], error) {
	return tensor.SharedFromSlice(data, sh)
}

// Scalar creates a 0-dimensional array.
func Scalar[T any](v T) *Array[T] {
	return tensor.Scalar(v)
}

// Zeros creates a row-major array of zero values.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T any](sh Shape) *Array[T] {
	return tensor.Zeros[T](sh)
}

// ZerosOrder creates an array of zero values laid out in order.
func ZerosOrder[T any](sh Shape, order Order) *Array[T] {
	return tensor.ZerosOrder[T](sh, order)
}

// Ones creates a row-major array of ones.
func Ones[T Number](sh Shape) *Array[T] {
	return tensor.Ones[T](sh)
}

// Full creates a row-major array filled with v.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{2, 3}, float32(3.14))
func Full[T any](sh Shape, v T) *Array[T] {
	return tensor.Full(sh, v)
}

// Arange creates a 1D array with values from start to end (exclusive).
//
// Example:
//
//	x := tensor.Arange[float32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T Number](start, end T) *Array[T] {
	return tensor.Arange(start, end)
}

// Eye creates an n×n identity matrix.
func Eye[T Number](n int) *Array[T] {
	return tensor.Eye[T](n)
}

// Selectors

// Range selects [start, end).
func Range(start, end int) Slice { return tensor.Range(start, end) }

// RangeInclusive selects [start, end].
func RangeInclusive(start, end int) Slice { return tensor.RangeInclusive(start, end) }

// RangeFrom selects [start, ...).
func RangeFrom(start int) Slice { return tensor.RangeFrom(start) }

// RangeTo selects [..., end).
func RangeTo(end int) Slice { return tensor.RangeTo(end) }

// RangeToInclusive selects [..., end].
func RangeToInclusive(end int) Slice { return tensor.RangeToInclusive(end) }

// All selects a whole axis.
func All() Slice { return tensor.All() }

// NewAxis inserts a length-1 axis.
func NewAxis() Selector { return tensor.NewAxis() }

// ParseSelectors parses a comma separated selector list such as
// "::2, 1, newaxis, -3:".
func ParseSelectors(s string) (SliceInfo, error) { return tensor.ParseSelectors(s) }

// Broadcasting

// BroadcastShape computes the broadcast shape of two shapes.
//
// Example:
//
//	sh, err := tensor.BroadcastShape(tensor.Shape{1, 5}, tensor.Shape{3, 4, 1})
//	// sh = [3, 4, 5]
func BroadcastShape(a, b Shape) (Shape, error) {
	return shape.BroadcastShape(a, b)
}

// BroadcastWith broadcasts a and b to their common shape.
func BroadcastWith[T any](a, b *Array[T]) (*Array[T], *Array[T], error) {
	return tensor.BroadcastWith(a, b)
}

// Element-wise operations

// Zip combines a and b element by element after broadcasting.
func Zip[T, U, V any](a *Array[T], b *Array[U], f func(T, U) V) (*Array[V], error) {
	return tensor.Zip(a, b, f)
}

// ZipAssign stores f(element of a, element of rhs) into a, broadcasting
// rhs to a's shape.
func ZipAssign[T, U any](a *Array[T], rhs *Array[U], f func(*T, U) T) {
	tensor.ZipAssign(a, rhs, f)
}

// Map applies f to every element.
func Map[T, U any](a *Array[T], f func(T) U) *Array[U] {
	return tensor.Map(a, f)
}

// Add returns a + b with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](tensor.Shape{3, 1})
//	b := tensor.Ones[float32](tensor.Shape{3, 4})
//	c, _ := tensor.Add(a, b) // Shape: [3, 4]
func Add[T Number](a, b *Array[T]) (*Array[T], error) { return tensor.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub[T Number](a, b *Array[T]) (*Array[T], error) { return tensor.Sub(a, b) }

// Mul returns a · b with broadcasting.
func Mul[T Number](a, b *Array[T]) (*Array[T], error) { return tensor.Mul(a, b) }

// Div returns a / b with broadcasting.
func Div[T Number](a, b *Array[T]) (*Array[T], error) { return tensor.Div(a, b) }

// AddAssign adds rhs to a in place.
func AddAssign[T Number](a, rhs *Array[T]) { tensor.AddAssign(a, rhs) }

// SubAssign subtracts rhs from a in place.
func SubAssign[T Number](a, rhs *Array[T]) { tensor.SubAssign(a, rhs) }

// MulAssign multiplies a by rhs in place.
func MulAssign[T Number](a, rhs *Array[T]) { tensor.MulAssign(a, rhs) }

// DivAssign divides a by rhs in place.
func DivAssign[T Number](a, rhs *Array[T]) { tensor.DivAssign(a, rhs) }

// AddScalar returns a + s.
func AddScalar[T Number](a *Array[T], s T) *Array[T] { return tensor.AddScalar(a, s) }

// MulScalar returns a · s.
func MulScalar[T Number](a *Array[T], s T) *Array[T] { return tensor.MulScalar(a, s) }

// Neg returns -a.
func Neg[T Number](a *Array[T]) *Array[T] { return tensor.Neg(a) }

// Sum returns the sum of all elements.
func Sum[T Number](a *Array[T]) T { return tensor.Sum(a) }

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b *Array[T]) bool { return tensor.Equal(a, b) }

// Conversions

// Cast converts every element to U.
func Cast[U, T Number](a *Array[T]) *Array[U] { return tensor.Cast[U](a) }

// ToFloat16 rounds every element to half precision.
func ToFloat16[T Number](a *Array[T]) *Array[float16.Float16] { return tensor.ToFloat16(a) }

// FromFloat16 widens half precision elements to T.
func FromFloat16[T Number](a *Array[float16.Float16]) *Array[T] { return tensor.FromFloat16[T](a) }

// ToDense copies a 2D array into a gonum matrix.
func ToDense[T Number](a *Array[T]) (*mat.Dense, error) { return tensor.ToDense(a) }

// FromDense copies a gonum matrix into a row-major 2D array.
func FromDense(m mat.Matrix) *Array[float64] { return tensor.FromDense(m) }

// Linear algebra and manipulation

// Dot returns the sum product of the last axis of lhs and the
// second-to-last axis of rhs (its only axis for 1D rhs).
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	c := tensor.Dot(a, a.Transpose()) // [[5 11] [11 25]]
func Dot[T Number](lhs, rhs *Array[T]) *Array[T] { return tensor.Dot(lhs, rhs) }

// Concatenate joins arrays along an existing axis.
//
// Example:
//
//	a := tensor.Ones[float32](tensor.Shape{2, 3})
//	b := tensor.Zeros[float32](tensor.Shape{2, 3})
//	c, _ := tensor.Concatenate(0, a, b) // Shape: [4, 3]
func Concatenate[T any](axis int, arrays ...*Array[T]) (*Array[T], error) {
	return tensor.Concatenate(axis, arrays...)
}

// Stack joins arrays of identical shape along a new axis.
func Stack[T any](axis int, arrays ...*Array[T]) (*Array[T], error) {
	return tensor.Stack(axis, arrays...)
}
