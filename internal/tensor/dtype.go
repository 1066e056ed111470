// Package tensor implements the strided array descriptor and the
// algorithms built on it: slicing, broadcasting, reshaping, iteration,
// dot products and concatenation.
package tensor

import (
	"github.com/born-ml/strided/internal/storage"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Number is the constraint of element types with arithmetic.
type Number = storage.Number

// DataType is runtime information about an element type.
type DataType int

// Known element types.
const (
	Unknown DataType = iota
	Float16
	Float32
	Float64
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float16:
		return 2
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseDataType parses the names returned by DataType.String.
func ParseDataType(s string) (DataType, error) {
	for dt := Float16; dt <= Bool; dt++ {
		if dt.String() == s {
			return dt, nil
		}
	}
	return Unknown, errors.Errorf("tensor: unknown data type %q", s)
}

// DataTypeOf returns the data type of T, or Unknown.
func DataTypeOf[T any]() DataType {
	var zero T
	switch any(zero).(type) {
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		return Unknown
	}
}

// DType returns the data type of a's elements.
func (a *Array[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Map returns a new array holding f applied to every element of a, laid
// out in a's order.
func Map[T, U any](a *Array[T], f func(T) U) *Array[U] {
	data := make([]U, a.Len())
	src := a.linear(a.order)
	for i, v := range src {
		data[i] = f(v)
	}
	sh := a.shape.Clone()
	return New[U](a.dim, a.order, sh, a.order.Strides(sh), storage.NewOwned(data), 0)
}

// Cast converts every element to U.
func Cast[U, T Number](a *Array[T]) *Array[U] {
	return Map(a, func(v T) U { return U(v) })
}

// ToFloat16 rounds every element to IEEE 754 half precision.
func ToFloat16[T Number](a *Array[T]) *Array[float16.Float16] {
	return Map(a, func(v T) float16.Float16 { return float16.Fromfloat32(float32(v)) })
}

// FromFloat16 widens half precision elements to T.
func FromFloat16[T Number](a *Array[float16.Float16]) *Array[T] {
	return Map(a, func(v float16.Float16) T { return T(v.Float32()) })
}
