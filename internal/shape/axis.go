package shape

import "github.com/pkg/errors"

// NormalizeAxis maps a possibly negative axis into 0..ndims.
func NormalizeAxis(axis, ndims int) (int, error) {
	if axis < -ndims || axis >= ndims {
		return 0, errors.Wrapf(ErrIncompatibleAxis, "axis %d is out of bounds for array of dimension %d", axis, ndims)
	}
	if axis < 0 {
		axis += ndims
	}
	return axis, nil
}

// CheckPermutation panics unless axes names every axis of an ndims-rank
// array exactly once.
func CheckPermutation(axes []int, ndims int) {
	if len(axes) != ndims {
		panic(errors.Errorf("shape: permutation %v does not match array of dimension %d", axes, ndims))
	}
	seen := make([]bool, ndims)
	for _, ax := range axes {
		if ax < 0 || ax >= ndims {
			panic(errors.Errorf("shape: axis %d is out of bounds for array of dimension %d", ax, ndims))
		}
		if seen[ax] {
			panic(errors.Errorf("shape: repeated axis %d in permutation %v", ax, axes))
		}
		seen[ax] = true
	}
}
