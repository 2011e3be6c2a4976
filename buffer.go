package vec

import "unsafe"

// Buffer is a single-ownership handle over one contiguous heap block of
// elements. It does no size or capacity bookkeeping of its own; the owning
// Vector remembers how many slots were requested at allocation time. The
// zero value holds no block.
//
// Ownership is exclusive: a block belongs to exactly one Buffer at a time.
// Transfer it with Release/AdoptRaw or Swap; never copy the struct, copies
// would alias the block. The block itself is reclaimed by the garbage
// collector once the last handle to it is gone, so dropping a Buffer frees
// its block exactly once and the no-block case is always safe.
type Buffer[T any] struct {
	raw *T
}

// NewBuffer allocates a block of exactly n elements and returns the owning
// handle. If n <= 0 no block is allocated and the returned buffer holds
// nothing; zero-sized blocks are never created.
func NewBuffer[T any](n int) Buffer[T] {
	if n <= 0 {
		return Buffer[T]{}
	}
	block := make([]T, n)
	return Buffer[T]{raw: &block[0]}
}

// AdoptRaw wraps a raw handle previously obtained from Release, taking
// ownership of its block. Adopting nil yields a buffer holding no block.
func AdoptRaw[T any](raw *T) Buffer[T] {
	return Buffer[T]{raw: raw}
}

// Held reports whether the buffer currently holds a block.
func (b *Buffer[T]) Held() bool {
	return b.raw != nil
}

// Raw returns the raw handle without giving up ownership, or nil when no
// block is held.
func (b *Buffer[T]) Raw() *T {
	return b.raw
}

// Release hands the raw handle back to the caller and clears the internal
// one, transferring ownership out of the buffer. Returns nil when no block
// is held.
func (b *Buffer[T]) Release() *T {
	raw := b.raw
	b.raw = nil
	return raw
}

// Swap exchanges the blocks held by two buffers in constant time.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.raw, other.raw = other.raw, b.raw
}

// Slice returns a writable view over the first n slots of the block.
// n must not exceed the element count the block was allocated with.
// Returns nil when no block is held or n <= 0.
func (b *Buffer[T]) Slice(n int) []T {
	if b.raw == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(b.raw, n)
}
