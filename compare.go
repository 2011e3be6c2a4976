package vec

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Comparisons are free functions rather than methods so both operand sides
// get the same treatment. A nil *Vector compares as empty throughout.

// live returns the live-element view of v, treating nil as empty.
func live[T any](v *Vector[T]) []T {
	if v == nil {
		return nil
	}
	return v.Slice()
}

// Equal reports whether a and b hold the same elements in the same order.
// Capacity takes no part in value equality.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(live(a), live(b))
}

// EqualFunc is Equal with a caller-supplied element equality, for element
// types that are not comparable.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(live(a), live(b), eq)
}

// Compare orders a and b lexicographically over their live elements and
// returns -1, 0 or +1. A vector that is a strict prefix of another orders
// first.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(live(a), live(b))
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Vector[T], cmp func(x, y T) int) int {
	return slices.CompareFunc(live(a), live(b), cmp)
}

// Less reports whether a orders strictly before b lexicographically. The
// rest of the ordering family follows from Compare: a <= b is
// Compare(a, b) <= 0, and so on.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
