/*
Package unitinterval implements immutable numbers restricted to the closed
interval [0, 1].
It is designed for probabilities, blend factors and other normalized
quantities, where a value outside of the interval is always a bug.

# Representation

[UnitInterval] is a generic struct with a single field holding a value of
any integer or floating-point type.
The zero value is the numeric value of 0.
Values are comparable, so they can be compared with == and used as map keys.

# Constraints

The wrapped value v always satisfies 0 <= v <= 1.
The range is checked only once, by [New] or [MustNew].
NaN, infinities and negative numbers are rejected.
Negative zero is accepted, since it is equal to 0.

# Conversions

The package provides functions for converting unit interval values:

  - from/to raw values:
    [New], [MustNew], [UnitInterval.Get], [UnitInterval.Float64].
  - between floating-point types:
    [Convert], [AsFloat64], [AsFloat32].

Widening from float32 to float64 is exact.
Narrowing from float64 to float32 may round, but never out of the interval.

# Operations

Operations are split into two groups.

The following operations cannot leave the interval and return
a [UnitInterval] directly, without checking the result:

  - [UnitInterval.Mul]: 0 <= a * b <= 1 for any a, b in [0, 1].
  - [UnitInterval.Complement] and [UnitInterval.Not]: 0 <= 1 - a <= 1.
  - [UnitInterval.Pow]: repeated multiplication.
  - [UnitInterval.Max], [UnitInterval.Min]: the result is an operand.

For floating-point types these hold under round-to-nearest as well, because
the exact results lie within [0, 1] and both 0 and 1 are representable.
Builds with the unitinterval_debug tag re-check every such result and panic
on violation.

The following operations can leave the interval, check the result,
and return an error if it is out of range:

  - [UnitInterval.Add], [UnitInterval.Sub], [UnitInterval.Quo].

# Comparison

Unit interval values can be compared with each other
([UnitInterval.Cmp], [UnitInterval.Equal]) and with raw values
in both directions ([UnitInterval.CmpValue], [UnitInterval.EqualValue],
[ValueCmp], [ValueEqual]).
All of them behave exactly like unwrapping and comparing the raw values.

# Sampling

[Rand] and [Sampler] draw values uniformly from [0, 1] using a
[math/rand/v2.Source] supplied by the caller.
Both endpoints are possible results.

# Errors

All functions are pure and panic-free, except for Must* helpers.
Errors are returned in the following cases:

  - Out of Range.
    [New] returns an error wrapping [ErrOutOfRange] if the value is not
    within [0, 1].
    [UnitInterval.Add], [UnitInterval.Sub] and [UnitInterval.Quo] return
    it if the result is not within [0, 1].

  - Division by Zero.
    [UnitInterval.Quo] returns [ErrDivisionByZero] when dividing by 0.

  - Negative Exponent.
    [UnitInterval.Pow] returns [ErrNegativeExponent] for negative exponents.
*/
package unitinterval
