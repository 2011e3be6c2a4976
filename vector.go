package vec

import "github.com/pkg/errors"

// Vector is a growable contiguous sequence of elements of type T. It keeps
// logical size and allocated capacity separate: size only ever counts live
// elements, capacity counts slots, and 0 <= size <= capacity holds at all
// times. Not goroutine-safe; use SafeVector for concurrent access.
type Vector[T any] struct {
	items    Buffer[T]
	size     int
	capacity int
	allocs   int // buffer allocations performed, see Metrics
}

// data returns the storage view covering all capacity slots.
func (v *Vector[T]) data() []T {
	return v.items.Slice(v.capacity)
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated element slots.
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index i without checking i against the live
// range. The caller must guarantee 0 <= i < Size(); build with the
// vecdebug tag to turn violations into panics.
func (v *Vector[T]) Get(i int) T {
	assertIndex(i, v.size)
	return v.data()[i]
}

// Set writes item at index i without checking i against the live range.
// Same precondition as Get.
func (v *Vector[T]) Set(i int, item T) {
	assertIndex(i, v.size)
	v.data()[i] = item
}

// At returns the element at index i, or an error wrapping ErrOutOfRange
// when i is outside [0, Size()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "At(%d) with size %d", i, v.size)
	}
	return v.data()[i], nil
}

// AtPtr returns a pointer to the element at index i for in-place mutation,
// or an error wrapping ErrOutOfRange when i is outside [0, Size()). The
// pointer stays valid until the next operation that reallocates storage.
func (v *Vector[T]) AtPtr(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errors.Wrapf(ErrOutOfRange, "AtPtr(%d) with size %d", i, v.size)
	}
	return &v.data()[i], nil
}

// SetAt writes item at index i, or returns an error wrapping ErrOutOfRange
// when i is outside [0, Size()).
func (v *Vector[T]) SetAt(i int, item T) error {
	if i < 0 || i >= v.size {
		return errors.Wrapf(ErrOutOfRange, "SetAt(%d) with size %d", i, v.size)
	}
	v.data()[i] = item
	return nil
}

// PushBack appends item, doubling the capacity (minimum 1) when size has
// reached it. Amortized O(1).
func (v *Vector[T]) PushBack(item T) {
	if v.size == v.capacity {
		v.grow(v.nextCapacity())
	}
	v.data()[v.size] = item
	v.size++
}

// PopBack removes the last element. On an empty vector it is a no-op.
// Capacity is never released.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
}

// Insert places item at position i, shifting the elements at [i, Size())
// one slot right. i must lie in [0, Size()]; inserting at Size() is
// equivalent to PushBack. On an invalid position the vector is left
// unmodified and an error wrapping ErrOutOfRange is returned. After a
// successful call the inserted element lives at position i.
func (v *Vector[T]) Insert(i int, item T) error {
	if i < 0 || i > v.size {
		return errors.Wrapf(ErrOutOfRange, "Insert(%d) with size %d", i, v.size)
	}
	if v.size == v.capacity {
		// No headroom: copy into a fresh doubled block split around i.
		newCapacity := v.nextCapacity()
		next := NewBuffer[T](newCapacity)
		dst := next.Slice(newCapacity)
		src := v.data()
		copy(dst, src[:i])
		dst[i] = item
		copy(dst[i+1:], src[i:v.size])
		v.items.Swap(&next)
		v.capacity = newCapacity
		v.allocs++
	} else {
		data := v.data()
		copy(data[i+1:v.size+1], data[i:v.size])
		data[i] = item
	}
	v.size++
	return nil
}

// Erase removes the element at position i, shifting the elements after it
// one slot left. i must lie in [0, Size()); erasing at Size() is invalid.
// After a successful call position i holds the element that followed the
// erased one, or equals Size() when the last element was erased.
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.size {
		return errors.Wrapf(ErrOutOfRange, "Erase(%d) with size %d", i, v.size)
	}
	data := v.data()
	copy(data[i:], data[i+1:v.size])
	v.size--
	return nil
}

// Clear drops all live elements without releasing capacity, so the storage
// is reusable by subsequent appends.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize sets the logical size to n. Shrinking truncates logically and
// leaves capacity untouched; growing reserves capacity as needed and
// zero-fills every newly exposed slot. Negative n is treated as 0.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n < v.size:
		v.size = n
	case n > v.size:
		if n > v.capacity {
			v.Reserve(n)
		}
		// Slots in [size, n) may hold stale values from an earlier shrink.
		clear(v.data()[v.size:n])
		v.size = n
	}
}

// Reserve grows the capacity to exactly n slots, migrating the live
// elements into a fresh block. When n <= Capacity() it is a no-op;
// Reserve never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity {
		return
	}
	v.grow(n)
}

// Swap exchanges the full state of two vectors in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.allocs, other.allocs = other.allocs, v.allocs
}

// grow replaces the buffer with one of newCapacity slots, moving the live
// elements over. The old block is dropped with the local handle.
func (v *Vector[T]) grow(newCapacity int) {
	next := NewBuffer[T](newCapacity)
	copy(next.Slice(newCapacity), v.data()[:v.size])
	v.items.Swap(&next)
	v.capacity = newCapacity
	v.allocs++
}

// nextCapacity returns the doubled capacity, minimum 1.
func (v *Vector[T]) nextCapacity() int {
	if v.capacity == 0 {
		return 1
	}
	return v.capacity * 2
}
