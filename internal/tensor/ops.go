package tensor

import "github.com/born-ml/strided/internal/shape"

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1})
//	b := tensor.Ones[float32](Shape{3, 5})
//	c, _ := tensor.Add(a, b) // Shape: [3, 5] (broadcasted)
func Add[T Number](a, b *Array[T]) (*Array[T], error) {
	return Zip(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func Sub[T Number](a, b *Array[T]) (*Array[T], error) {
	return Zip(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func Mul[T Number](a, b *Array[T]) (*Array[T], error) {
	return Zip(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division with broadcasting.
func Div[T Number](a, b *Array[T]) (*Array[T], error) {
	return Zip(a, b, func(x, y T) T { return x / y })
}

// Zip combines a and b element by element after broadcasting them to
// their common shape. The result is laid out in a's order.
func Zip[T, U, V any](a *Array[T], b *Array[U], f func(T, U) V) (*Array[V], error) {
	sh, err := shape.BroadcastShape(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	av, err := a.BroadcastTo(sh)
	if err != nil {
		return nil, err
	}
	bv, err := b.BroadcastTo(sh)
	if err != nil {
		return nil, err
	}
	out := allocate[V](a.dim.Max(b.dim), sh, a.order)
	ai, bi, oi := av.Iter(), bv.Iter(), out.IterMut()
	for p, ok := oi.Next(); ok; p, ok = oi.Next() {
		x, _ := ai.Next()
		y, _ := bi.Next()
		*p = f(x, y)
	}
	return out, nil
}

// Assign copies rhs into a, broadcasting rhs to a's shape. It panics when
// rhs cannot be broadcast to a or a is read-only.
func (a *Array[T]) Assign(rhs *Array[T]) {
	ZipAssign(a, rhs, func(_ *T, y T) T { return y })
}

// AddAssign adds rhs to a in place, broadcasting rhs to a's shape.
func AddAssign[T Number](a, rhs *Array[T]) {
	ZipAssign(a, rhs, func(p *T, y T) T { return *p + y })
}

// SubAssign subtracts rhs from a in place.
func SubAssign[T Number](a, rhs *Array[T]) {
	ZipAssign(a, rhs, func(p *T, y T) T { return *p - y })
}

// MulAssign multiplies a by rhs in place.
func MulAssign[T Number](a, rhs *Array[T]) {
	ZipAssign(a, rhs, func(p *T, y T) T { return *p * y })
}

// DivAssign divides a by rhs in place.
func DivAssign[T Number](a, rhs *Array[T]) {
	ZipAssign(a, rhs, func(p *T, y T) T { return *p / y })
}

// ZipAssign stores f(element of a, element of rhs) into every element of
// a, broadcasting rhs to a's shape.
func ZipAssign[T, U any](a *Array[T], rhs *Array[U], f func(*T, U) T) {
	ri, oi := mustBroadcast(a, rhs).Iter(), a.IterMut()
	for p, ok := oi.Next(); ok; p, ok = oi.Next() {
		y, _ := ri.Next()
		*p = f(p, y)
	}
}

// AddScalar returns a + s.
func AddScalar[T Number](a *Array[T], s T) *Array[T] {
	return Map(a, func(v T) T { return v + s })
}

// MulScalar returns a · s.
func MulScalar[T Number](a *Array[T], s T) *Array[T] {
	return Map(a, func(v T) T { return v * s })
}

// Neg returns -a.
func Neg[T Number](a *Array[T]) *Array[T] {
	return Map(a, func(v T) T { return -v })
}

// Sum returns the sum of all elements.
func Sum[T Number](a *Array[T]) T {
	var acc T
	for v := range a.All() {
		acc += v
	}
	return acc
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	ai, bi := a.Iter(), b.Iter()
	for x, ok := ai.Next(); ok; x, ok = ai.Next() {
		if y, _ := bi.Next(); x != y {
			return false
		}
	}
	return true
}
