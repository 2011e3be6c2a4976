//go:build !vecdebug

package vec

// assertIndex is compiled out of release builds; the vecdebug build tag
// enables the check.
func assertIndex(int, int) {}
