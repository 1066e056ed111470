package storage

// Owned exclusively owns its buffer.
type Owned[T any] struct {
	borrowTracker
	data []T
}

// NewOwned takes ownership of data. The caller must not keep using it.
func NewOwned[T any](data []T) *Owned[T] {
	return &Owned[T]{data: data}
}

// Allocate returns n elements of unspecified value. Callers fill every
// element before exposing the storage.
func Allocate[T any](n int) *Owned[T] {
	return &Owned[T]{data: make([]T, n)}
}

// Zeros returns n zero elements.
func Zeros[T any](n int) *Owned[T] {
	return &Owned[T]{data: make([]T, n)}
}

// Ones returns n elements equal to one.
func Ones[T Number](n int) *Owned[T] {
	return Full(n, T(1))
}

// Full returns n copies of v.
func Full[T any](n int, v T) *Owned[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = v
	}
	return &Owned[T]{data: data}
}

// Kind returns KindOwned.
func (o *Owned[T]) Kind() Kind { return KindOwned }

// Len returns the number of elements.
func (o *Owned[T]) Len() int { return len(o.data) }

// Ptr returns the address of the first element.
func (o *Owned[T]) Ptr() *T { return ptr(o.data) }

// Slice returns the elements.
func (o *Owned[T]) Slice() []T { return o.data }

// View borrows the buffer read-only.
func (o *Owned[T]) View() *View[T] { return &View[T]{data: o.data} }

// Cow borrows the buffer as copy-on-write.
func (o *Owned[T]) Cow() *Cow[T] { return &Cow[T]{borrowed: o.data} }

// MutPtr returns the address of the first element for writing.
func (o *Owned[T]) MutPtr() *T { return ptr(o.MutSlice()) }

// MutSlice returns the elements for writing. It panics while a mutable
// view taken from o is live.
func (o *Owned[T]) MutSlice() []T {
	o.check(KindOwned)
	return o.data
}

// ViewMut borrows the buffer exclusively.
func (o *Owned[T]) ViewMut() *MutView[T] {
	return &MutView[T]{data: o.data, token: o.borrow(KindOwned)}
}

// IntoShared moves the buffer into a reference-counted storage. o is
// empty afterwards.
func (o *Owned[T]) IntoShared() *Shared[T] {
	o.check(KindOwned)
	s := NewShared(o.data)
	o.data = nil
	return s
}
