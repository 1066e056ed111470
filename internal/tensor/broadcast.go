package tensor

import (
	"github.com/born-ml/strided/internal/shape"
	"github.com/pkg/errors"
)

// BroadcastTo returns a read-only view of a with the given shape. Axes of
// length 1 and missing leading axes are repeated through stride 0; no
// element is copied.
//
// Example:
//
//	a := tensor.Ones[float32](tensor.Shape{1, 2, 3})
//	b, _ := a.BroadcastTo(tensor.Shape{4, 2, 2, 3}) // strides [0, 0, 3, 1]
func (a *Array[T]) BroadcastTo(target Shape) (*Array[T], error) {
	st, err := shape.BroadcastStrides(a.shape, a.strides, target)
	if err != nil {
		return nil, err
	}
	return New[T](a.dim.Max(shape.Fixed(len(target))), a.order, target.Clone(), st, a.storage.View(), a.offset), nil
}

// BroadcastWith broadcasts a and b to their common shape.
func BroadcastWith[T any](a, b *Array[T]) (*Array[T], *Array[T], error) {
	sh, err := shape.BroadcastShape(a.shape, b.shape)
	if err != nil {
		return nil, nil, err
	}
	av, err := a.BroadcastTo(sh)
	if err != nil {
		return nil, nil, err
	}
	bv, err := b.BroadcastTo(sh)
	if err != nil {
		return nil, nil, err
	}
	return av, bv, nil
}

// mustBroadcast broadcasts rhs onto the shape of an assignment target and
// panics when the target cannot take it.
func mustBroadcast[T, U any](lhs *Array[T], rhs *Array[U]) *Array[U] {
	v, err := rhs.BroadcastTo(lhs.shape)
	if err != nil {
		panic(errors.WithMessagef(err, "tensor: cannot assign %v into %v", rhs.shape, lhs.shape))
	}
	return v
}
