package storage

import "github.com/pkg/errors"

// View is a read-only borrow.
type View[T any] struct {
	data []T
}

// NewView borrows data read-only.
func NewView[T any](data []T) *View[T] {
	return &View[T]{data: data}
}

// Kind returns KindView.
func (v *View[T]) Kind() Kind { return KindView }

// Len returns the number of elements.
func (v *View[T]) Len() int { return len(v.data) }

// Ptr returns the address of the first element.
func (v *View[T]) Ptr() *T { return ptr(v.data) }

// Slice returns the borrowed elements.
func (v *View[T]) Slice() []T { return v.data }

// View re-borrows the same elements.
func (v *View[T]) View() *View[T] { return &View[T]{data: v.data} }

// Cow re-borrows the same elements as copy-on-write.
func (v *View[T]) Cow() *Cow[T] { return &Cow[T]{borrowed: v.data} }

// MutView is an exclusive mutable borrow. It stays exclusive until
// Release. While a re-borrow taken with ViewMut is live, the view can only
// be read; a re-borrow never outlives its source.
type MutView[T any] struct {
	data  []T
	token *borrowToken
}

// Kind returns KindMutView.
func (v *MutView[T]) Kind() Kind { return KindMutView }

// Len returns the number of elements.
func (v *MutView[T]) Len() int { return len(v.live()) }

// Ptr returns the address of the first element.
func (v *MutView[T]) Ptr() *T { return ptr(v.live()) }

// Slice returns the elements.
func (v *MutView[T]) Slice() []T { return v.live() }

// View re-borrows read-only.
func (v *MutView[T]) View() *View[T] { return &View[T]{data: v.live()} }

// Cow re-borrows as copy-on-write.
func (v *MutView[T]) Cow() *Cow[T] { return &Cow[T]{borrowed: v.live()} }

// MutPtr returns the address of the first element for writing.
func (v *MutView[T]) MutPtr() *T { return ptr(v.liveMut()) }

// MutSlice returns the elements for writing.
func (v *MutView[T]) MutSlice() []T { return v.liveMut() }

// ViewMut re-borrows mutably. v is write-locked until the new view is
// released, and the new view ends with v.
func (v *MutView[T]) ViewMut() *MutView[T] {
	data := v.liveMut()
	return &MutView[T]{data: data, token: v.token.reborrow()}
}

// Release ends the borrow so the source can be mutated again.
func (v *MutView[T]) Release() {
	if v.token != nil {
		v.token.released = true
	}
	v.data = nil
}

func (v *MutView[T]) live() []T {
	if v.token.dead() {
		panic(errors.New("storage: use of released mutable view"))
	}
	return v.data
}

func (v *MutView[T]) liveMut() []T {
	data := v.live()
	if v.token.reborrowed() {
		panic(errors.New("storage: mutable view is already mutably re-borrowed"))
	}
	return data
}
