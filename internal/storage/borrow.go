package storage

import "github.com/pkg/errors"

// borrowToken marks one live exclusive borrow. A re-borrow from a MutView
// gets a child token: releasing the child hands exclusivity back to the
// parent, releasing the parent ends every descendant.
type borrowToken struct {
	released bool
	parent   *borrowToken
	child    *borrowToken
}

func (t *borrowToken) dead() bool {
	for p := t; p != nil; p = p.parent {
		if p.released {
			return true
		}
	}
	return false
}

func (t *borrowToken) reborrowed() bool {
	return t != nil && t.child != nil && !t.child.dead()
}

func (t *borrowToken) reborrow() *borrowToken {
	child := &borrowToken{parent: t}
	if t != nil {
		t.child = child
	}
	return child
}

// borrowTracker records the exclusive borrow currently taken from a
// mutable storage.
type borrowTracker struct {
	active *borrowToken
}

func (b *borrowTracker) check(kind Kind) {
	if b.active != nil && !b.active.released {
		panic(errors.Errorf("storage: %s buffer is already mutably borrowed", kind))
	}
}

func (b *borrowTracker) borrow(kind Kind) *borrowToken {
	b.check(kind)
	b.active = &borrowToken{}
	return b.active
}

// Borrowed reports whether an exclusive borrow is still live.
func (b *borrowTracker) Borrowed() bool {
	return b.active != nil && !b.active.released
}
