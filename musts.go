package unitinterval

import "fmt"

// MustNew is like [New] but panics if v is not within [0, 1].
// This function simplifies safe initialization of global variables holding
// unit interval values.
func MustNew[T Number](v T) UnitInterval[T] {
	u, err := New(v)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", v, err))
	}
	return u
}

// MustAdd is like [UnitInterval.Add] but panics if the sum exceeds 1.
func (u UnitInterval[T]) MustAdd(e UnitInterval[T]) UnitInterval[T] {
	f, err := u.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [UnitInterval.Sub] but panics if e is greater than u.
func (u UnitInterval[T]) MustSub(e UnitInterval[T]) UnitInterval[T] {
	f, err := u.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [UnitInterval.Quo] but panics if computing error.
func (u UnitInterval[T]) MustQuo(e UnitInterval[T]) UnitInterval[T] {
	f, err := u.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustPow is like [UnitInterval.Pow] but panics if exp is negative.
func (u UnitInterval[T]) MustPow(exp int) UnitInterval[T] {
	f, err := u.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", exp, err))
	}
	return f
}
