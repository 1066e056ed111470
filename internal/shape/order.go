package shape

import "github.com/pkg/errors"

// Order selects which axis varies fastest in memory.
type Order int

// Supported memory orders.
const (
	// RowMajor keeps the last axis contiguous (C order).
	RowMajor Order = iota
	// ColumnMajor keeps the first axis contiguous (Fortran order).
	ColumnMajor
)

// String returns "C" or "F".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "C"
	case ColumnMajor:
		return "F"
	default:
		return "Unknown"
	}
}

// ParseOrder accepts c/row/row-major and f/col/column-major.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "c", "C", "row", "row-major":
		return RowMajor, nil
	case "f", "F", "col", "column", "column-major":
		return ColumnMajor, nil
	}
	return RowMajor, errors.Errorf("shape: unknown memory order %q", s)
}

// Strides returns the canonical strides of s under the order.
func (o Order) Strides(s Shape) Strides {
	return o.ScaledStrides(s, 1)
}

// ScaledStrides returns canonical strides whose innermost axis steps by
// base elements. Empty axes count as length 1 so strides stay non-zero.
func (o Order) ScaledStrides(s Shape, base int) Strides {
	strides := make(Strides, len(s))
	acc := base
	if o == ColumnMajor {
		for i := range s {
			strides[i] = acc
			acc *= max(s[i], 1)
		}
		return strides
	}
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= max(s[i], 1)
	}
	return strides
}

// Innermost returns the stride of the axis the order treats as fastest.
func (o Order) Innermost(strides Strides) int {
	if len(strides) == 0 {
		return 1
	}
	if o == ColumnMajor {
		return strides[0]
	}
	return strides[len(strides)-1]
}

// IsContiguous reports whether strides are exactly the canonical strides
// of s, ignoring axes of length 1 whose stride is never used.
func (o Order) IsContiguous(s Shape, strides Strides) bool {
	if s.ArrayLen() <= 1 {
		return true
	}
	expected := 1
	check := func(i int) bool {
		if s[i] == 1 {
			return true
		}
		if strides[i] != expected {
			return false
		}
		expected *= s[i]
		return true
	}
	if o == ColumnMajor {
		for i := range s {
			if !check(i) {
				return false
			}
		}
		return true
	}
	for i := len(s) - 1; i >= 0; i-- {
		if !check(i) {
			return false
		}
	}
	return true
}

// IsAlignedMonotonically reports whether s and strides, already stripped
// of length-1 axes, walk memory as one evenly spaced run in the order's
// direction. The innermost stride may be any value; each outer stride must
// equal the extent of the axes inside it.
func (o Order) IsAlignedMonotonically(s Shape, strides Strides) bool {
	n := len(s)
	if n == 0 {
		return true
	}
	if o == ColumnMajor {
		expected := s[0] * strides[0]
		for i := 1; i < n; i++ {
			if strides[i] != expected {
				return false
			}
			expected *= s[i]
		}
		return true
	}
	expected := s[n-1] * strides[n-1]
	for i := n - 2; i >= 0; i-- {
		if strides[i] != expected {
			return false
		}
		expected *= s[i]
	}
	return true
}

// Squeezed drops the length-1 axes of s together with their strides.
func Squeezed(s Shape, strides Strides) (Shape, Strides) {
	outShape := make(Shape, 0, len(s))
	outStrides := make(Strides, 0, len(s))
	for i, dim := range s {
		if dim == 1 {
			continue
		}
		outShape = append(outShape, dim)
		outStrides = append(outStrides, strides[i])
	}
	return outShape, outStrides
}
