// Package vec implements a generic, resizable, contiguous sequence
// container for Go.
//
// # Overview
//
// A Vector owns a single heap-allocated block of elements and tracks its
// logical size and allocated capacity separately. It provides amortized
// O(1) append, random-access indexing, insertion and removal at arbitrary
// positions, and explicit capacity control. This is useful for:
//
//   - Code that needs precise control over allocation and growth
//   - Reserving storage up front to avoid reallocation in hot paths
//   - Teaching or porting code built around explicit container internals
//
// # Basic Usage
//
//	v := vec.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3)
//
//	item, err := v.At(1) // checked access, returns ErrOutOfRange past size
//	x := v.Get(0)        // unchecked access, hot path
//
//	if err := v.Insert(1, 9); err != nil { // [1 9 2 3]
//	    // position was outside [0, Size()]
//	}
//
//	v.Reserve(64) // allocate exactly 64 slots, size unchanged
//	v.Resize(2)   // truncate logically, capacity kept
//
// # Growth Policy
//
// PushBack doubles the capacity when size reaches capacity (minimum 1), so
// N sequential appends perform O(log N) reallocations. Reserve allocates
// exactly the requested capacity and never shrinks. Growth always allocates
// a fresh block and migrates the live elements; blocks are never resized in
// place. Clear and PopBack never release capacity.
//
// # Ownership Model
//
// Every Vector exclusively owns one Buffer, a single-ownership handle over
// the underlying block. Copying is always deep (Clone, Assign); moving
// (Take, MoveFrom) steals the buffer in O(1) and leaves the source empty.
// Two live Vectors never alias the same block.
//
// # Error Handling
//
// Checked operations (At, AtPtr, SetAt, Insert, Erase) report invalid
// indices with an error wrapping ErrOutOfRange. The unchecked forms (Get,
// Set) are preconditions on the caller: build with the vecdebug tag to turn
// violations into panics during development. Allocation failure is fatal,
// as everywhere in Go.
//
// # Thread Safety
//
// Vector is not goroutine-safe. For concurrent access use SafeVector, a
// mutex wrapper around a whole container:
//
//	sv := vec.NewSafeVector[int]()
//	sv.PushBack(42)
//	item, err := sv.At(0)
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized
//   - Insert/Erase: O(n) element shifts
//   - Indexed access: O(1)
//   - Clone/Assign: O(n)
//   - Take/MoveFrom/Swap: O(1)
package vec
