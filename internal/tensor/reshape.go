package tensor

import (
	"github.com/born-ml/strided/internal/shape"
	"github.com/born-ml/strided/internal/storage"
)

// ToShape returns a with a new shape in a's order. The result borrows a's
// storage as copy-on-write when the existing strides can describe the new
// shape and owns a fresh copy otherwise. One entry of ns may be negative
// to infer its length.
//
// Example:
//
//	a := tensor.Arange[int](0, 24)
//	b, _ := a.ToShape(tensor.NewShape{2, -1, 4}) // [2, 3, 4], no copy
func (a *Array[T]) ToShape(ns NewShape) (*Array[T], error) {
	return a.ToShapeOrder(ns, a.order)
}

// ToShapeOrder is ToShape with elements read and placed in order.
func (a *Array[T]) ToShapeOrder(ns NewShape, order Order) (*Array[T], error) {
	if order == a.order && sameShape(a.shape, ns) {
		return a.reshaped(a.storage.Cow(), order, Shape(ns).Clone(), a.strides.Clone(), a.offset), nil
	}
	sh, err := ns.Infer(a.Len())
	if err != nil {
		return nil, err
	}
	if st, ok := reshapedStrides(a.shape, a.strides, sh, order); ok {
		return a.reshaped(a.storage.Cow(), order, sh, st, a.offset), nil
	}
	logger().Debug("reshape needs a copy", "from", a.shape, "strides", a.strides, "to", sh, "order", order)
	return a.reshaped(storage.NewCowOwned(a.linear(order)), order, sh, order.Strides(sh), 0), nil
}

// IntoShape is ToShape that moves a's storage handle into the result
// instead of borrowing it. a must not be used afterwards.
func (a *Array[T]) IntoShape(ns NewShape) (*Array[T], error) {
	return a.IntoShapeOrder(ns, a.order)
}

// IntoShapeOrder is IntoShape with elements read and placed in order.
func (a *Array[T]) IntoShapeOrder(ns NewShape, order Order) (*Array[T], error) {
	var out *Array[T]
	if order == a.order && sameShape(a.shape, ns) {
		out = a.reshaped(a.storage, order, a.shape, a.strides, a.offset)
	} else {
		sh, err := ns.Infer(a.Len())
		if err != nil {
			return nil, err
		}
		if st, ok := reshapedStrides(a.shape, a.strides, sh, order); ok {
			out = a.reshaped(a.storage, order, sh, st, a.offset)
		} else {
			logger().Debug("reshape needs a copy", "from", a.shape, "strides", a.strides, "to", sh, "order", order)
			out = a.reshaped(storage.NewOwned(a.linear(order)), order, sh, order.Strides(sh), 0)
		}
	}
	*a = Array[T]{}
	return out, nil
}

func (a *Array[T]) reshaped(s storage.Storage[T], order Order, sh Shape, st Strides, offset int) *Array[T] {
	return New[T](a.dim.WithRank(len(sh)), order, sh, st, s, offset)
}

// sameShape reports whether ns names exactly the axes of sh.
func sameShape(sh Shape, ns NewShape) bool {
	if len(sh) != len(ns) {
		return false
	}
	for i := range sh {
		if sh[i] != ns[i] {
			return false
		}
	}
	return true
}

// reshapedStrides returns strides that let the elements at (sh, st) be
// read as target in order without moving them. ok is false when the
// elements are not evenly spaced in that order.
func reshapedStrides(sh Shape, st Strides, target Shape, order Order) (Strides, bool) {
	if sh.ArrayLen() <= 1 {
		return order.Strides(target), true
	}
	sq, sqStrides := shape.Squeezed(sh, st)
	if !order.IsAlignedMonotonically(sq, sqStrides) {
		return nil, false
	}
	return order.ScaledStrides(target, order.Innermost(sqStrides)), true
}
