package tensor

import (
	"testing"

	"github.com/born-ml/strided/internal/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatenate(t *testing.T) {
	a := mustFromSlice(t, seq(0, 6), Shape{1, 2, 3})

	t.Run("axis 0", func(t *testing.T) {
		c, err := Concatenate(0, a, a)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 2, 3}, c.Shape())
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 0, 1, 2, 3, 4, 5}, c.ToSlice())
	})

	t.Run("axis 2", func(t *testing.T) {
		c, err := Concatenate(2, a, a)
		require.NoError(t, err)
		assert.Equal(t, Shape{1, 2, 6}, c.Shape())
		assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 3, 4, 5, 3, 4, 5}, c.ToSlice())
	})

	t.Run("negative axis", func(t *testing.T) {
		c, err := Concatenate(-2, a, a.Slice(All(), RangeTo(1)))
		require.NoError(t, err)
		assert.Equal(t, Shape{1, 3, 3}, c.Shape())
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 0, 1, 2}, c.ToSlice())
	})

	t.Run("strided inputs", func(t *testing.T) {
		m := mustFromSlice(t, seq(1, 6), Shape{2, 3})
		c, err := Concatenate(1, m.Transpose().Transpose(), m.Slice(All(), All().StepBy(-1)))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 3, 2, 1, 4, 5, 6, 6, 5, 4}, c.ToSlice())
		assert.True(t, c.IsStandardLayout())
	})

	t.Run("empty member", func(t *testing.T) {
		c, err := Concatenate(1, a, Zeros[int](Shape{1, 0, 3}))
		require.NoError(t, err)
		assert.Equal(t, a.Shape(), c.Shape())
		assert.Equal(t, a.ToSlice(), c.ToSlice())
	})

	t.Run("column-major first", func(t *testing.T) {
		f, err := FromSliceOrder(seq(0, 6), Shape{2, 3}, ColumnMajor)
		require.NoError(t, err)
		c, err := Concatenate(0, f, f)
		require.NoError(t, err)
		assert.Equal(t, ColumnMajor, c.Order())
		assert.Equal(t, Strides{1, 4}, c.Strides())
		assert.Equal(t, []int{0, 2, 4, 1, 3, 5, 0, 2, 4, 1, 3, 5}, c.ToSlice())
	})
}

func TestConcatenateErrors(t *testing.T) {
	a := Zeros[int](Shape{2, 3})

	_, err := Concatenate[int](0)
	assert.ErrorIs(t, err, shape.ErrIncompatibleShape)

	_, err = Concatenate(2, a, a)
	assert.ErrorIs(t, err, shape.ErrIncompatibleAxis)

	_, err = Concatenate(0, a, Zeros[int](Shape{2, 3, 1}))
	assert.ErrorIs(t, err, shape.ErrIncompatibleDimension)

	_, err = Concatenate(0, a, Zeros[int](Shape{2, 4}))
	assert.ErrorIs(t, err, shape.ErrIncompatibleShape)
}

func TestStack(t *testing.T) {
	a := mustFromSlice(t, seq(0, 6), Shape{2, 3})
	b := mustFromSlice(t, seq(10, 6), Shape{2, 3})

	tests := []struct {
		axis  int
		shape Shape
		want  []int
	}{
		{0, Shape{2, 2, 3}, []int{0, 1, 2, 3, 4, 5, 10, 11, 12, 13, 14, 15}},
		{1, Shape{2, 2, 3}, []int{0, 1, 2, 10, 11, 12, 3, 4, 5, 13, 14, 15}},
		{2, Shape{2, 3, 2}, []int{0, 10, 1, 11, 2, 12, 3, 13, 4, 14, 5, 15}},
		{-1, Shape{2, 3, 2}, []int{0, 10, 1, 11, 2, 12, 3, 13, 4, 14, 5, 15}},
	}

	for _, tt := range tests {
		c, err := Stack(tt.axis, a, b)
		require.NoError(t, err, "axis %d", tt.axis)
		assert.Equal(t, tt.shape, c.Shape(), "axis %d", tt.axis)
		assert.Equal(t, tt.want, c.ToSlice(), "axis %d", tt.axis)
	}

	_, err := Stack(3, a, b)
	assert.ErrorIs(t, err, shape.ErrIncompatibleAxis)
	_, err = Stack(0, a, Zeros[int](Shape{3, 2}))
	assert.ErrorIs(t, err, shape.ErrIncompatibleShape)
	_, err = Stack[int](0)
	assert.ErrorIs(t, err, shape.ErrIncompatibleShape)
}

func TestChunk(t *testing.T) {
	a := mustFromSlice(t, seq(0, 12), Shape{2, 6})
	parts, err := a.Chunk(3, -1)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.Equal(t, []int{0, 1, 6, 7}, parts[0].ToSlice())
	assert.Equal(t, []int{2, 3, 8, 9}, parts[1].ToSlice())
	assert.Equal(t, []int{4, 5, 10, 11}, parts[2].ToSlice())
	for _, p := range parts {
		assert.Equal(t, Shape{2, 2}, p.Shape())
		assert.Same(t, a.Storage().Ptr(), p.Storage().Ptr(), "chunks are views")
	}

	rows, err := a.Chunk(2, 0)
	require.NoError(t, err)
	assert.Equal(t, seq(6, 6), rows[1].ToSlice())

	_, err = a.Chunk(4, 1)
	assert.ErrorIs(t, err, shape.ErrIncompatibleShape)
	_, err = a.Chunk(0, 1)
	assert.ErrorIs(t, err, shape.ErrIncompatibleShape)
	_, err = a.Chunk(2, 5)
	assert.ErrorIs(t, err, shape.ErrIncompatibleAxis)
}
