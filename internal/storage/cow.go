package storage

import (
	"github.com/born-ml/strided/internal/logutil"
)

// Cow starts as a borrow and becomes an owned buffer the first time it is
// written through. The promotion copies the borrowed elements once.
type Cow[T any] struct {
	borrowTracker
	borrowed []T
	owned    []T
	promoted bool
}

// NewCowOwned returns a Cow that already owns data.
func NewCowOwned[T any](data []T) *Cow[T] {
	return &Cow[T]{owned: data, promoted: true}
}

// Kind returns KindCow.
func (c *Cow[T]) Kind() Kind { return KindCow }

// IsOwned reports whether the buffer has been promoted.
func (c *Cow[T]) IsOwned() bool { return c.promoted }

// Len returns the number of elements.
func (c *Cow[T]) Len() int { return len(c.Slice()) }

// Ptr returns the address of the first element.
func (c *Cow[T]) Ptr() *T { return ptr(c.Slice()) }

// Slice returns the borrowed or owned elements.
func (c *Cow[T]) Slice() []T {
	if c.promoted {
		return c.owned
	}
	return c.borrowed
}

// View borrows the current elements read-only.
func (c *Cow[T]) View() *View[T] { return &View[T]{data: c.Slice()} }

// Cow borrows the current elements as a new copy-on-write storage.
func (c *Cow[T]) Cow() *Cow[T] { return &Cow[T]{borrowed: c.Slice()} }

// MutPtr promotes and returns the address of the first element.
func (c *Cow[T]) MutPtr() *T { return ptr(c.MutSlice()) }

// MutSlice promotes and returns the owned elements.
func (c *Cow[T]) MutSlice() []T {
	c.check(KindCow)
	c.promote()
	return c.owned
}

// ViewMut promotes and borrows the owned buffer exclusively.
func (c *Cow[T]) ViewMut() *MutView[T] {
	token := c.borrow(KindCow)
	c.promote()
	return &MutView[T]{data: c.owned, token: token}
}

// IntoOwned promotes and hands the buffer over as an Owned storage.
func (c *Cow[T]) IntoOwned() *Owned[T] {
	c.check(KindCow)
	c.promote()
	o := NewOwned(c.owned)
	c.owned = nil
	return o
}

func (c *Cow[T]) promote() {
	if c.promoted {
		return
	}
	c.owned = make([]T, len(c.borrowed))
	copy(c.owned, c.borrowed)
	c.borrowed = nil
	c.promoted = true
	logutil.Logger().Debug("copy-on-write storage promoted", "len", len(c.owned))
}
