//go:build unitinterval_debug

package unitinterval

import "fmt"

// assertInRange re-checks results of trusted construction.
// Enabled with -tags unitinterval_debug.
func assertInRange[T Number](v T) {
	if !inRange(v) {
		panic(fmt.Sprintf("trusted(%v) failed: %v", v, ErrOutOfRange))
	}
}
