package tensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](a *Array[T]) []T {
	var out []T
	for v := range a.All() {
		out = append(out, v)
	}
	return out
}

func TestIterOrder(t *testing.T) {
	a := mustFromSlice(t, seq(1, 6), Shape{2, 3})

	assert.Equal(t, seq(1, 6), collect(a))
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, collect(a.Transpose()))
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, collect(a.Slice(All().StepBy(-1), All().StepBy(-1))))
}

func TestIterEmpty(t *testing.T) {
	for _, sh := range []Shape{{0}, {3, 0, 2}, {0, 0}} {
		a := Zeros[int](sh)
		it := a.Iter()
		assert.Equal(t, 0, it.Len(), "%v", sh)
		assert.True(t, it.Done())
		_, ok := it.Next()
		assert.False(t, ok)
		assert.Empty(t, collect(a))
	}
}

func TestIterScalar(t *testing.T) {
	a := Scalar(7)
	it := a.Iter()
	assert.Equal(t, 1, it.Len())
	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIterLen(t *testing.T) {
	a := Zeros[int](Shape{2, 3})
	it := a.Iter()
	for want := 6; want > 0; want-- {
		assert.Equal(t, want, it.Len())
		it.Next()
	}
	assert.True(t, it.Done())
}

func TestIterIndexed(t *testing.T) {
	a := mustFromSlice(t, seq(1, 4), Shape{2, 2})

	var idx [][]int
	var vals []int
	for i, v := range a.Indexed() {
		idx = append(idx, append([]int(nil), i...))
		vals = append(vals, v)
	}
	if diff := cmp.Diff([][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, idx); diff != "" {
		t.Errorf("indices mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, seq(1, 4), vals)

	it := a.Transpose().Iter()
	i, v, ok := it.NextIndexed()
	require.True(t, ok)
	assert.Equal(t, []int{0, 0}, i)
	assert.Equal(t, 1, v)
	i, v, _ = it.NextIndexed()
	assert.Equal(t, []int{0, 1}, i)
	assert.Equal(t, 3, v)
}

func TestIterMut(t *testing.T) {
	a := mustFromSlice(t, seq(1, 6), Shape{2, 3})
	view := a.SliceMut(All(), All().StepBy(2))
	for p := range view.AllMut() {
		*p *= 10
	}
	view.Release()
	assert.Equal(t, []int{10, 2, 30, 40, 5, 60}, a.ToSlice())

	n := 0
	for p := range a.AllMut() {
		*p = 0
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 0, 30, 40, 5, 60}, a.ToSlice())

	assert.Panics(t, func() { a.View().IterMut() })
}

func TestLanes(t *testing.T) {
	a := mustFromSlice(t, seq(1, 6), Shape{2, 3})

	lanesOf := func(ls *Lanes[int]) [][]int {
		var out [][]int
		for l := range ls.All() {
			var lane []int
			for v := range l.All() {
				lane = append(lane, v)
			}
			out = append(out, lane)
		}
		return out
	}

	tests := []struct {
		name string
		arr  *Array[int]
		axis int
		want [][]int
	}{
		{"columns", a, 0, [][]int{{1, 4}, {2, 5}, {3, 6}}},
		{"rows", a, 1, [][]int{{1, 2, 3}, {4, 5, 6}}},
		{"negative axis", a, -1, [][]int{{1, 2, 3}, {4, 5, 6}}},
		{"transposed rows", a.Transpose(), 1, [][]int{{1, 4}, {2, 5}, {3, 6}}},
		{"1D", mustFromSlice(t, seq(1, 3), Shape{3}), 0, [][]int{{1, 2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := tt.arr.Lanes(tt.axis)
			assert.Equal(t, len(tt.want), ls.Len())
			if diff := cmp.Diff(tt.want, lanesOf(ls)); diff != "" {
				t.Errorf("lanes mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("out of range axis", func(t *testing.T) {
		assert.Panics(t, func() { a.Lanes(2) })
	})
}

func TestLanesEmptyAxis(t *testing.T) {
	a := Zeros[int](Shape{2, 0})

	ls := a.Lanes(1)
	assert.Equal(t, 2, ls.Len(), "one empty lane per row")
	for l, ok := ls.Next(); ok; l, ok = ls.Next() {
		assert.Equal(t, 0, l.Len())
	}

	assert.Equal(t, 0, a.Lanes(0).Len())
}

func TestLanesMut(t *testing.T) {
	a := Ones[int](Shape{2, 3})
	ls := a.LanesMut(1)
	for l, ok := ls.Next(); ok; l, ok = ls.Next() {
		acc := 0
		for p, ok := l.Next(); ok; p, ok = l.Next() {
			acc += *p
			*p = acc
		}
	}
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, a.ToSlice())

	assert.Panics(t, func() { a.View().LanesMut(0) })
}
