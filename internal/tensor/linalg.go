package tensor

import (
	"github.com/pkg/errors"
)

// Dot returns the sum product of the last axis of lhs and the
// second-to-last axis of rhs (its only axis when rhs is 1D). The result
// has the axes of lhs without its last, followed by the axes of rhs
// without the contracted one.
//
// Dot panics on 0-dimensional operands and on contracted axes of
// different length.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, tensor.Shape{3, 3})
//	c := tensor.Dot(a, a.Transpose()) // [[14 32 50] [32 77 122] [50 122 194]]
func Dot[T Number](lhs, rhs *Array[T]) *Array[T] {
	ln, rn := lhs.NDims(), rhs.NDims()
	if ln == 0 || rn == 0 {
		panic(errors.Errorf("tensor: dot product of %d-dimensional and %d-dimensional arrays", ln, rn))
	}
	la := ln - 1
	ra := 0
	if rn > 1 {
		ra = rn - 2
	}
	if lhs.shape[la] != rhs.shape[ra] {
		panic(errors.Errorf("shapes %v and %v not aligned: %d (dim %d) != %d (dim %d)",
			lhs.shape, rhs.shape, lhs.shape[la], la, rhs.shape[ra], ra))
	}

	sh := make(Shape, 0, ln+rn-2)
	sh = append(sh, lhs.shape[:la]...)
	sh = append(sh, rhs.shape[:ra]...)
	sh = append(sh, rhs.shape[ra+1:]...)

	out := allocate[T](lhs.dim.WithRank(len(sh)), sh, RowMajor)
	dst := out.IterMut()
	ll := lhs.Lanes(la)
	for l, ok := ll.Next(); ok; l, ok = ll.Next() {
		rl := rhs.Lanes(ra)
		for r, ok := rl.Next(); ok; r, ok = rl.Next() {
			lane := *l
			var acc T
			for x, ok := lane.Next(); ok; x, ok = lane.Next() {
				y, _ := r.Next()
				acc += x * y
			}
			p, _ := dst.Next()
			*p = acc
		}
	}
	return out
}
