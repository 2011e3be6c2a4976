package vec

// New returns an empty vector with no allocated storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector with exactly n slots reserved.
// The reserved slots hold no user-visible values until the vector grows
// into them.
func WithCapacity[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	v.Reserve(n)
	return v
}

// WithSize returns a vector of n zero-valued elements with capacity n.
func WithSize[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	if n > 0 {
		v.grow(n)
		v.size = n
	}
	return v
}

// Filled returns a vector of n copies of item with capacity n.
func Filled[T any](n int, item T) *Vector[T] {
	v := WithSize[T](n)
	data := v.data()
	for i := range data[:v.size] {
		data[i] = item
	}
	return v
}

// Of returns a vector holding the given items in order, with both size and
// capacity equal to their count.
func Of[T any](items ...T) *Vector[T] {
	v := &Vector[T]{}
	if len(items) > 0 {
		v.grow(len(items))
		copy(v.data(), items)
		v.size = len(items)
	}
	return v
}

// Take move-constructs a vector from rhs, stealing its buffer in constant
// time. rhs is left empty with no capacity.
func Take[T any](rhs *Vector[T]) *Vector[T] {
	v := &Vector[T]{}
	v.MoveFrom(rhs)
	return v
}

// Clone returns a deep copy of v. Only the live elements are copied; the
// clone's capacity matches v's exactly, so the two never share storage.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{}
	if v.capacity > 0 {
		out.grow(v.capacity)
		copy(out.data(), v.data()[:v.size])
		out.size = v.size
	}
	return out
}

// Assign replaces v's contents with a deep copy of rhs by copy-and-swap:
// the full replacement is built first, then exchanged into place, so
// self-assignment is harmless and v is never observed half-updated. An
// empty rhs degenerates to Clear, keeping v's capacity for reuse.
func (v *Vector[T]) Assign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	if rhs.IsEmpty() {
		v.Clear()
		return
	}
	v.Swap(rhs.Clone())
}

// MoveFrom steals rhs's buffer and counters in constant time, leaving rhs
// empty with no capacity. v's previous block is dropped. Moving a vector
// into itself is a no-op.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.items = AdoptRaw(rhs.items.Release())
	v.size, v.capacity, v.allocs = rhs.size, rhs.capacity, rhs.allocs
	rhs.size, rhs.capacity, rhs.allocs = 0, 0, 0
}
