package tensor

import (
	"github.com/born-ml/strided/internal/shape"
	"github.com/born-ml/strided/internal/storage"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies a 2D array into a gonum dense matrix.
func ToDense[T Number](a *Array[T]) (*mat.Dense, error) {
	if a.NDims() != 2 {
		return nil, errors.Wrapf(shape.ErrIncompatibleDimension, "dense matrix needs 2 dimensions, got %v", a.shape)
	}
	r, c := a.shape[0], a.shape[1]
	if r == 0 || c == 0 {
		return nil, errors.Wrapf(shape.ErrIncompatibleShape, "dense matrix cannot be empty, got %v", a.shape)
	}
	data := make([]float64, 0, r*c)
	for v := range a.All() {
		data = append(data, float64(v))
	}
	return mat.NewDense(r, c, data), nil
}

// FromDense copies a gonum matrix into a row-major 2D array.
func FromDense(m mat.Matrix) *Array[float64] {
	r, c := m.Dims()
	data := make([]float64, r*c)
	for i := range r {
		for j := range c {
			data[i*c+j] = m.At(i, j)
		}
	}
	return fromStorage[float64](storage.NewOwned(data), Shape{r, c}, RowMajor)
}
