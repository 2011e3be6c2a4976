package vec

import "iter"

// Slice returns a writable view over the live elements. The view stays
// valid until the next operation that reallocates storage (PushBack or
// Insert at capacity, Reserve, Resize past capacity, Assign, MoveFrom).
func (v *Vector[T]) Slice() []T {
	return v.data()[:v.size]
}

// All returns an index/value iterator over the live elements, front to
// back. Mutating the vector during iteration is the caller's problem, as
// with ranging over a slice.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := v.Slice()
		for i := range data {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Slice() {
			if !yield(item) {
				return
			}
		}
	}
}
