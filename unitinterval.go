package unitinterval

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of types a [UnitInterval] can wrap.
// Every member provides ordering, subtraction, multiplication and
// the constants 0 and 1.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the set of floating-point types.
// Precision conversion and sampling are only defined for them.
type Float interface {
	constraints.Float
}

// UnitInterval type is a representation of a number within the closed
// interval [0, 1].
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// The range is checked once, at construction.
// Operations that cannot leave the interval, such as [UnitInterval.Mul] and
// [UnitInterval.Complement], return a UnitInterval directly.
// Operations that can leave it, such as [UnitInterval.Add], return an error.
type UnitInterval[T Number] struct {
	v T // always within [0, 1]
}

var (
	ErrOutOfRange       = errors.New("out of range")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNegativeExponent = errors.New("negative exponent")
)

// trusted wraps v without checking the range.
// Callers must guarantee 0 <= v <= 1 from the algebra of the operation
// that produced v.
func trusted[T Number](v T) UnitInterval[T] {
	assertInRange(v)
	return UnitInterval[T]{v: v}
}

func inRange[T Number](v T) bool {
	return T(0) <= v && v <= T(1)
}

// New returns a unit interval value equal to v.
// New returns an error wrapping [ErrOutOfRange] if v is less than 0,
// greater than 1, or NaN.
func New[T Number](v T) (UnitInterval[T], error) {
	if !inRange(v) {
		return UnitInterval[T]{}, fmt.Errorf("%v is not within [0, 1]: %w", v, ErrOutOfRange)
	}
	return UnitInterval[T]{v: v}, nil
}

// Zero returns the unit interval value 0.
func Zero[T Number]() UnitInterval[T] {
	return UnitInterval[T]{}
}

// One returns the unit interval value 1.
func One[T Number]() UnitInterval[T] {
	return UnitInterval[T]{v: 1}
}

// Get returns the wrapped value.
func (u UnitInterval[T]) Get() T {
	return u.v
}

// Float64 returns the wrapped value converted to float64.
// The conversion is exact for every float32 and float64 value.
func (u UnitInterval[T]) Float64() float64 {
	return float64(u.v)
}

// IsZero returns true if u == 0.
func (u UnitInterval[T]) IsZero() bool {
	return u.v == 0
}

// IsOne returns true if u == 1.
func (u UnitInterval[T]) IsOne() bool {
	return u.v == 1
}

// Convert returns u converted to another floating-point type.
// Widening is exact.
// Narrowing rounds to nearest, which cannot leave the interval because
// 0 and 1 are exactly representable in every floating-point type and
// rounding is monotonic.
func Convert[U, T Float](u UnitInterval[T]) UnitInterval[U] {
	return trusted(U(u.v))
}

// AsFloat64 returns u converted to float64.
// Also see function [Convert].
func AsFloat64[T Float](u UnitInterval[T]) UnitInterval[float64] {
	return Convert[float64](u)
}

// AsFloat32 returns u converted to float32.
// Also see function [Convert].
func AsFloat32[T Float](u UnitInterval[T]) UnitInterval[float32] {
	return Convert[float32](u)
}

func cmpRaw[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Cmp compares u and e numerically and returns:
//
//	-1 if u < e
//	 0 if u == e
//	+1 if u > e
func (u UnitInterval[T]) Cmp(e UnitInterval[T]) int {
	return cmpRaw(u.v, e.v)
}

// Equal returns true if u and e are numerically equal.
func (u UnitInterval[T]) Equal(e UnitInterval[T]) bool {
	return u.v == e.v
}

// CmpValue compares u with the raw value v, exactly like comparing
// u.Get() with v.
// A NaN v is neither less nor greater than u, so the result is 0.
// Use [UnitInterval.EqualValue] to test for equality.
func (u UnitInterval[T]) CmpValue(v T) int {
	return cmpRaw(u.v, v)
}

// EqualValue returns true if u.Get() == v.
func (u UnitInterval[T]) EqualValue(v T) bool {
	return u.v == v
}

// ValueCmp compares the raw value v with u and returns the same result
// as comparing v with u.Get().
// ValueCmp(v, u) is always equal to -u.CmpValue(v).
func ValueCmp[T Number](v T, u UnitInterval[T]) int {
	return cmpRaw(v, u.v)
}

// ValueEqual returns true if v == u.Get().
func ValueEqual[T Number](v T, u UnitInterval[T]) bool {
	return v == u.v
}

// Max returns maximum of u and e.
func (u UnitInterval[T]) Max(e UnitInterval[T]) UnitInterval[T] {
	if u.v >= e.v {
		return u
	}
	return e
}

// Min returns minimum of u and e.
func (u UnitInterval[T]) Min(e UnitInterval[T]) UnitInterval[T] {
	if u.v <= e.v {
		return u
	}
	return e
}

// Mul returns (possibly rounded) product of u and e.
//
// If 0 <= u, e <= 1 then 0 <= u * e <= min(u, e).
// For floating-point types the exact product already lies in [0, 1] and
// both 0 and 1 are representable, so rounding to nearest cannot move
// it outside.
func (u UnitInterval[T]) Mul(e UnitInterval[T]) UnitInterval[T] {
	return trusted(u.v * e.v)
}

// Complement returns 1 - u.
//
// If 0 <= u <= 1 then 0 <= 1 - u <= 1.
// The subtraction is exact for u in [0.5, 1] and for the boundaries,
// so the complement of 0 is exactly 1 and the complement of 1 is exactly 0.
func (u UnitInterval[T]) Complement() UnitInterval[T] {
	return trusted(T(1) - u.v)
}

// Not is an alias of [UnitInterval.Complement].
func (u UnitInterval[T]) Not() UnitInterval[T] {
	return u.Complement()
}

// Pow returns u raised to the power of exp.
// Pow(0) is 1, including for u == 0.
// Pow returns an error wrapping [ErrNegativeExponent] if exp is negative,
// since the result would exceed 1.
func (u UnitInterval[T]) Pow(exp int) (UnitInterval[T], error) {
	if exp < 0 {
		return UnitInterval[T]{}, fmt.Errorf("%v.Pow(%v): %w", u, exp, ErrNegativeExponent)
	}
	// Exponentiation by squaring, every step is a Mul.
	r, b := One[T](), u
	for exp > 0 {
		if exp&1 == 1 {
			r = r.Mul(b)
		}
		b = b.Mul(b)
		exp >>= 1
	}
	return r, nil
}

// Add returns the sum of u and e.
// Add returns an error wrapping [ErrOutOfRange] if the sum exceeds 1.
func (u UnitInterval[T]) Add(e UnitInterval[T]) (UnitInterval[T], error) {
	f, err := New(u.v + e.v)
	if err != nil {
		return UnitInterval[T]{}, fmt.Errorf("computing [%v + %v]: %w", u, e, err)
	}
	return f, nil
}

// Sub returns the difference of u and e.
// Sub returns an error wrapping [ErrOutOfRange] if e is greater than u.
func (u UnitInterval[T]) Sub(e UnitInterval[T]) (UnitInterval[T], error) {
	if e.v > u.v {
		// Unsigned integers would wrap around, so check before subtracting.
		return UnitInterval[T]{}, fmt.Errorf("computing [%v - %v]: %w", u, e, ErrOutOfRange)
	}
	f, err := New(u.v - e.v)
	if err != nil {
		return UnitInterval[T]{}, fmt.Errorf("computing [%v - %v]: %w", u, e, err)
	}
	return f, nil
}

// Quo returns the quotient of u and e.
// For integer types the quotient is truncated.
// Quo returns an error if:
//   - e is 0 ([ErrDivisionByZero]);
//   - the quotient exceeds 1 ([ErrOutOfRange]).
func (u UnitInterval[T]) Quo(e UnitInterval[T]) (UnitInterval[T], error) {
	if e.v == 0 {
		return UnitInterval[T]{}, fmt.Errorf("computing [%v / %v]: %w", u, e, ErrDivisionByZero)
	}
	f, err := New(u.v / e.v)
	if err != nil {
		return UnitInterval[T]{}, fmt.Errorf("computing [%v / %v]: %w", u, e, err)
	}
	return f, nil
}

// String implements [fmt.Stringer] interface.
// The result is the same as formatting u.Get() with the %v verb.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u UnitInterval[T]) String() string {
	return fmt.Sprint(u.v)
}

// Format implements [fmt.Formatter] interface.
// All verbs, flags, width and precision are applied to u.Get(),
// with one addition:
//
//	%k: u multiplied by 100 and formatted with %f, followed by '%'
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (u UnitInterval[T]) Format(state fmt.State, verb rune) {
	switch verb {
	case 'k', 'K':
		fmt.Fprintf(state, fmt.FormatString(state, 'f'), u.Float64()*100)
		fmt.Fprint(state, "%")
	default:
		fmt.Fprintf(state, fmt.FormatString(state, verb), u.v)
	}
}
