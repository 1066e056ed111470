package tensor

import (
	"fmt"
	"testing"

	"github.com/born-ml/strided/internal/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	b := mustFromSlice(t, []float64{2, 2, 2, 2}, Shape{2, 2})

	tests := []struct {
		name string
		op   func(a, b *Array[float64]) (*Array[float64], error)
		want []float64
	}{
		{"add", Add[float64], []float64{3, 4, 5, 6}},
		{"sub", Sub[float64], []float64{-1, 0, 1, 2}},
		{"mul", Mul[float64], []float64{2, 4, 6, 8}},
		{"div", Div[float64], []float64{0.5, 1, 1.5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, Shape{2, 2}, c.Shape())
			assert.Equal(t, tt.want, c.ToSlice())
		})
	}
}

func TestArithmeticBroadcast(t *testing.T) {
	col := mustFromSlice(t, []int{0, 10, 20}, Shape{3, 1})
	row := mustFromSlice(t, []int{1, 2, 3, 4}, Shape{4})

	c, err := Add(col, row)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4}, c.Shape())
	assert.Equal(t, []int{1, 2, 3, 4, 11, 12, 13, 14, 21, 22, 23, 24}, c.ToSlice())

	_, err = Add(Ones[int](Shape{3, 4}), Ones[int](Shape{3, 5}))
	assert.ErrorIs(t, err, shape.ErrIncompatibleShape)
}

func TestZip(t *testing.T) {
	a := mustFromSlice(t, []int{1, 2}, Shape{2})
	b := mustFromSlice(t, []string{"x", "y"}, Shape{2, 1})

	c, err := Zip(a, b, func(n int, s string) string { return fmt.Sprintf("%s%d", s, n) })
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, c.Shape())
	assert.Equal(t, []string{"x1", "x2", "y1", "y2"}, c.ToSlice())

	f, err := FromSliceOrder([]int{1, 2, 3, 4}, Shape{2, 2}, ColumnMajor)
	require.NoError(t, err)
	g, err := Zip(f, f, func(x, y int) int { return x * y })
	require.NoError(t, err)
	assert.Equal(t, ColumnMajor, g.Order())
	assert.Equal(t, []int{1, 9, 4, 16}, g.ToSlice())
}

func TestAssign(t *testing.T) {
	a := Zeros[int](Shape{2, 3})
	a.Assign(mustFromSlice(t, []int{1, 2, 3}, Shape{3}))
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, a.ToSlice())

	AddAssign(a, Scalar(10))
	assert.Equal(t, []int{11, 12, 13, 11, 12, 13}, a.ToSlice())

	SubAssign(a, mustFromSlice(t, []int{1, 11}, Shape{2, 1}))
	assert.Equal(t, []int{10, 11, 12, 0, 1, 2}, a.ToSlice())

	MulAssign(a, Full(Shape{2, 3}, 2))
	assert.Equal(t, []int{20, 22, 24, 0, 2, 4}, a.ToSlice())

	DivAssign(a, Scalar(2))
	assert.Equal(t, []int{10, 11, 12, 0, 1, 2}, a.ToSlice())

	t.Run("into a strided region", func(t *testing.T) {
		b := Zeros[int](Shape{3, 3})
		diag := b.SliceMut(All().StepBy(2), All().StepBy(2))
		diag.Assign(Scalar(7))
		diag.Release()
		assert.Equal(t, []int{7, 0, 7, 0, 0, 0, 7, 0, 7}, b.ToSlice())
	})

	t.Run("broadcast row", func(t *testing.T) {
		b := Zeros[int](Shape{2, 3})
		b.Assign(mustFromSlice(t, []int{1, 2, 3}, Shape{3}))
		assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, b.ToSlice())
	})

	t.Run("incompatible", func(t *testing.T) {
		assert.Panics(t, func() { a.Assign(Ones[int](Shape{2})) })
		assert.Panics(t, func() { a.Assign(Ones[int](Shape{3, 3})) })
		assert.Panics(t, func() { a.Assign(Ones[int](Shape{4, 2, 3})) })
	})

	t.Run("read-only", func(t *testing.T) {
		assert.Panics(t, func() { a.View().Assign(Scalar(1)) })
	})
}

func TestScalarOps(t *testing.T) {
	a := mustFromSlice(t, []int{1, -2, 3}, Shape{3})

	assert.Equal(t, []int{6, 3, 8}, AddScalar(a, 5).ToSlice())
	assert.Equal(t, []int{3, -6, 9}, MulScalar(a, 3).ToSlice())
	assert.Equal(t, []int{-1, 2, -3}, Neg(a).ToSlice())
	assert.Equal(t, 2, Sum(a))
	assert.Equal(t, 0, Sum(Zeros[int](Shape{0})))
	assert.Equal(t, 21, Sum(mustFromSlice(t, seq(1, 6), Shape{2, 3}).Transpose()))
}

func TestEqual(t *testing.T) {
	a := mustFromSlice(t, seq(1, 6), Shape{2, 3})
	b := a.ToOwnedOrder(ColumnMajor)

	assert.True(t, Equal(a, b), "layout does not matter")
	assert.False(t, Equal(a, a.Transpose()))
	assert.False(t, Equal(a, Zeros[int](Shape{2, 3})))
	assert.True(t, Equal(a.Transpose().Transpose(), a))
}
