package vec

// Allocs returns the number of buffer allocations the vector has performed
// for its current storage. Doubling growth keeps this at O(log n) across n
// sequential appends. Moving a vector transfers the counter along with the
// buffer.
func (v *Vector[T]) Allocs() int {
	return v.allocs
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 when no storage is allocated.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:        v.size,
		Capacity:    v.capacity,
		Allocs:      v.allocs,
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size        int     // live element count
	Capacity    int     // allocated slots
	Allocs      int     // buffer allocations performed
	Utilization float64 // ratio of size to capacity (0.0-1.0)
}
