package storage

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// sharedBuffer is the reference-counted buffer behind Shared handles.
type sharedBuffer[T any] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // guards deallocation
}

func newSharedBuffer[T any](data []T) *sharedBuffer[T] {
	buf := &sharedBuffer[T]{data: data}
	buf.refCount.Store(1)
	return buf
}

func (b *sharedBuffer[T]) addRef() {
	b.refCount.Add(1)
}

func (b *sharedBuffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// Shared is one reference to a read-only buffer that may be aliased by
// many arrays. It has no mutable capability.
type Shared[T any] struct {
	buf      *sharedBuffer[T]
	released bool
}

// NewShared takes ownership of data with a reference count of one.
func NewShared[T any](data []T) *Shared[T] {
	return &Shared[T]{buf: newSharedBuffer(data)}
}

// SharedAllocate returns n elements of unspecified value.
func SharedAllocate[T any](n int) *Shared[T] {
	return NewShared(make([]T, n))
}

// SharedZeros returns n zero elements.
func SharedZeros[T any](n int) *Shared[T] {
	return NewShared(make([]T, n))
}

// SharedOnes returns n elements equal to one.
func SharedOnes[T Number](n int) *Shared[T] {
	return NewShared(Ones[T](n).data)
}

// Kind returns KindShared.
func (s *Shared[T]) Kind() Kind { return KindShared }

// Len returns the number of elements.
func (s *Shared[T]) Len() int { return len(s.live()) }

// Ptr returns the address of the first element.
func (s *Shared[T]) Ptr() *T { return ptr(s.live()) }

// Slice returns the elements.
func (s *Shared[T]) Slice() []T { return s.live() }

// View borrows the elements read-only.
func (s *Shared[T]) View() *View[T] { return &View[T]{data: s.live()} }

// Cow borrows the elements as copy-on-write; writing copies them out.
func (s *Shared[T]) Cow() *Cow[T] { return &Cow[T]{borrowed: s.live()} }

// Clone returns a new reference to the same buffer.
func (s *Shared[T]) Clone() *Shared[T] {
	s.live()
	s.buf.addRef()
	return &Shared[T]{buf: s.buf}
}

// Release drops this reference. The buffer is freed with the last one.
// Releasing a handle twice has no further effect.
func (s *Shared[T]) Release() {
	if s.released {
		return
	}
	s.released = true
	s.buf.release()
}

// RefCount returns the number of live references to the buffer.
func (s *Shared[T]) RefCount() int {
	return int(s.buf.refCount.Load())
}

// IsUnique reports whether s is the only reference.
func (s *Shared[T]) IsUnique() bool {
	return !s.released && s.buf.refCount.Load() == 1
}

func (s *Shared[T]) live() []T {
	if s.released {
		panic(errors.New("storage: use of released shared reference"))
	}
	return s.buf.data
}
