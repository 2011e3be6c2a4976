//go:build vecdebug

package vec

import "fmt"

// assertIndex panics when i falls outside the live range. Compiled in only
// under the vecdebug build tag; release builds rely on the documented
// precondition of the unchecked accessors.
func assertIndex(i, size int) {
	if i < 0 || i >= size {
		panic(fmt.Sprintf("vec: unchecked access at %d with size %d", i, size))
	}
}
