//go:build !unitinterval_debug

package unitinterval

func assertInRange[T Number](T) {}
