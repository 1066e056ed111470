// Package storage implements the buffer capabilities an array can hold:
// exclusive ownership, read-only and mutable borrows, copy-on-write and
// reference-counted sharing.
package storage

import (
	"golang.org/x/exp/constraints"
)

// Number is the element constraint for storages that need additive and
// multiplicative identities.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind names a storage capability.
type Kind int

// Storage kinds.
const (
	KindOwned Kind = iota
	KindView
	KindMutView
	KindCow
	KindShared
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindOwned:
		return "owned"
	case KindView:
		return "view"
	case KindMutView:
		return "mutable view"
	case KindCow:
		return "copy-on-write"
	case KindShared:
		return "shared"
	default:
		return "unknown"
	}
}

// Storage is implemented by every capability. The slice returned by Slice
// must not be written through.
type Storage[T any] interface {
	Kind() Kind
	Len() int
	// Ptr returns the address of the first element, nil when empty.
	Ptr() *T
	Slice() []T
	// View borrows the elements read-only without copying.
	View() *View[T]
	// Cow borrows the elements as a copy-on-write storage without copying.
	Cow() *Cow[T]
}

// Mutable is implemented by capabilities that may be written through.
type Mutable[T any] interface {
	Storage[T]
	MutPtr() *T
	MutSlice() []T
	// ViewMut borrows the elements exclusively until the view is released.
	ViewMut() *MutView[T]
}

// Releaser is implemented by handles that must be given back: shared
// references and mutable borrows.
type Releaser interface {
	Release()
}

// AsMutable returns s as a Mutable storage if it has that capability.
func AsMutable[T any](s Storage[T]) (Mutable[T], bool) {
	m, ok := s.(Mutable[T])
	return m, ok
}

func ptr[T any](data []T) *T {
	if len(data) == 0 {
		return nil
	}
	return &data[0]
}
