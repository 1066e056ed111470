package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeArrayLen(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{5}, 5},
		{"matrix", Shape{2, 3}, 6},
		{"empty axis", Shape{3, 0, 4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.ArrayLen())
			assert.Equal(t, tt.want == 0, tt.shape.IsEmpty())
		})
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 0, 3}.Validate())
	err := Shape{2, -1}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleShape))
}

func TestDimensionality(t *testing.T) {
	d := Fixed(3)
	n, ok := d.Rank()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, Shape{0, 0, 0}, d.ShapeZeroed(3))
	assert.Equal(t, Strides{0, 0, 0}, d.StridesZeroed(3))
	assert.Equal(t, "Ix3", d.String())

	assert.Panics(t, func() { d.ShapeZeroed(2) })
	assert.Panics(t, func() { d.StridesZeroed(4) })

	dyn := Dynamic()
	assert.True(t, dyn.IsDynamic())
	assert.Len(t, dyn.ShapeZeroed(5), 5)
	assert.Equal(t, dyn, dyn.Insert())
	assert.Equal(t, Fixed(4), d.Insert())
	assert.Equal(t, Fixed(2), d.Remove())
	assert.Equal(t, Fixed(3), Fixed(1).Max(Fixed(3)))
	assert.True(t, Fixed(1).Max(dyn).IsDynamic())
	assert.Panics(t, func() { Fixed(0).Remove() })
}

func TestFirstIndex(t *testing.T) {
	idx, ok := Dynamic().FirstIndex(Shape{2, 3})
	require.True(t, ok)
	assert.Equal(t, Shape{0, 0}, idx)

	_, ok = Dynamic().FirstIndex(Shape{2, 0, 3})
	assert.False(t, ok)

	idx, ok = Fixed(0).FirstIndex(Shape{})
	assert.True(t, ok)
	assert.Empty(t, idx)
}

func TestNewShapeInfer(t *testing.T) {
	got, err := NewShape{4, -1}.Infer(24)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 6}, got)

	got, err = NewShape{2, 3, 4}.Infer(24)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 4}, got)

	t.Run("two placeholders", func(t *testing.T) {
		_, err := NewShape{2, -1, -1}.Infer(24)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIncompatibleShape))
		assert.Contains(t, err.Error(), "can only specify one unknown dimension")
	})

	t.Run("zero rest", func(t *testing.T) {
		_, err := NewShape{2, 0, -1}.Infer(0)
		assert.True(t, errors.Is(err, ErrIncompatibleShape))
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := NewShape{2, 2, 2}.Infer(24)
		assert.True(t, errors.Is(err, ErrIncompatibleShape))
		_, err = NewShape{5, -1}.Infer(24)
		assert.True(t, errors.Is(err, ErrIncompatibleShape))
	})
}

func TestStridesOffset(t *testing.T) {
	assert.Equal(t, 0, Strides{}.Offset(Shape{}))
	assert.Equal(t, 1*12+2*4+3, Strides{12, 4, 1}.Offset(Shape{1, 2, 3}))
	assert.Equal(t, -3, Strides{0, -1}.Offset(Shape{7, 3}))
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "[2, 3, 4]", Shape{2, 3, 4}.String())
	assert.Equal(t, "[]", Shape{}.String())
	assert.Equal(t, "[0, -1]", Strides{0, -1}.String())
}

func TestNormalizeAxis(t *testing.T) {
	ax, err := NormalizeAxis(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, ax)

	ax, err = NormalizeAxis(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, ax)

	_, err = NormalizeAxis(3, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleAxis))
	assert.Contains(t, err.Error(), "axis 3 is out of bounds for array of dimension 3")

	_, err = NormalizeAxis(-4, 3)
	assert.True(t, errors.Is(err, ErrIncompatibleAxis))
}

func TestCheckPermutation(t *testing.T) {
	assert.NotPanics(t, func() { CheckPermutation([]int{2, 0, 1}, 3) })
	assert.Panics(t, func() { CheckPermutation([]int{0, 1, 3}, 3) }, "out of bounds")
	assert.Panics(t, func() { CheckPermutation([]int{0, 0, 1}, 3) }, "repeated")
	assert.Panics(t, func() { CheckPermutation([]int{0, 1}, 3) }, "short")
}

func TestSqueezed(t *testing.T) {
	s, st := Squeezed(Shape{1, 3, 1, 4}, Strides{12, 4, 4, 1})
	if diff := cmp.Diff(Shape{3, 4}, s); diff != "" {
		t.Errorf("shape mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Strides{4, 1}, st); diff != "" {
		t.Errorf("strides mismatch (-want +got):\n%s", diff)
	}
}
