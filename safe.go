package vec

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent
// access. All operations are serialized under a single lock and come with
// its overhead. Operations that hand out interior pointers or storage
// views (AtPtr, Slice, iterators) are not forwarded because the referenced
// memory would escape the lock; use Snapshot to copy the contents out.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafeVector returns an empty thread-safe vector.
func NewSafeVector[T any]() *SafeVector[T] {
	return &SafeVector[T]{v: New[T]()}
}

// Size thread-safely returns the number of live elements.
func (s *SafeVector[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Size()
}

// Capacity thread-safely returns the number of allocated slots.
func (s *SafeVector[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Capacity()
}

// IsEmpty thread-safely reports whether the vector holds no elements.
func (s *SafeVector[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.IsEmpty()
}

// PushBack thread-safely appends item.
func (s *SafeVector[T]) PushBack(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.PushBack(item)
}

// PopBack thread-safely removes the last element; no-op when empty.
func (s *SafeVector[T]) PopBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.PopBack()
}

// Insert thread-safely places item at position i.
func (s *SafeVector[T]) Insert(i int, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Insert(i, item)
}

// Erase thread-safely removes the element at position i.
func (s *SafeVector[T]) Erase(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Erase(i)
}

// At thread-safely returns the element at index i with bounds checking.
func (s *SafeVector[T]) At(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.At(i)
}

// SetAt thread-safely writes item at index i with bounds checking.
func (s *SafeVector[T]) SetAt(i int, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.SetAt(i, item)
}

// Clear thread-safely drops all elements, keeping capacity.
func (s *SafeVector[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Resize thread-safely sets the logical size to n.
func (s *SafeVector[T]) Resize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Resize(n)
}

// Reserve thread-safely grows the capacity to exactly n slots.
func (s *SafeVector[T]) Reserve(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Reserve(n)
}

// Snapshot thread-safely returns a deep copy of the current contents. The
// copy is an ordinary Vector owned by the caller.
func (s *SafeVector[T]) Snapshot() *Vector[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Clone()
}

// Metrics thread-safely returns a snapshot of vector statistics.
func (s *SafeVector[T]) Metrics() VectorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Metrics()
}
