package unitinterval

import (
	"math"
	"testing"
)

func unitIntervalCorpus() []float64 {
	return []float64{
		0,
		1,
		0.5,
		0.25,
		0.1,
		0.9,
		-0.1,
		1.1,
		math.Nextafter(1, 0),
		math.Nextafter(1, 2),
		math.SmallestNonzeroFloat64,
		math.NaN(),
		math.Inf(1),
	}
}

func FuzzNew(f *testing.F) {
	for _, v := range unitIntervalCorpus() {
		f.Add(v)
	}
	f.Fuzz(func(t *testing.T, v float64) {
		u, err := New(v)
		want := v >= 0 && v <= 1
		if got := err == nil; got != want {
			t.Fatalf("New(%v) ok = %v, want %v", v, got, want)
		}
		if err != nil {
			return
		}
		if u.Get() != v {
			t.Errorf("New(%v).Get() = %v, want %v", v, u.Get(), v)
		}
		c := u.Complement()
		if _, err := New(c.Get()); err != nil {
			t.Errorf("%v.Complement() = %v, out of range", u, c)
		}
		if v >= 0.5 {
			if got := c.Complement(); got != u {
				t.Errorf("%v.Complement().Complement() = %v, want %v", u, got, u)
			}
		}
		n := AsFloat32(u)
		if _, err := New(n.Get()); err != nil {
			t.Errorf("AsFloat32(%v) = %v, out of range", u, n)
		}
	})
}

func FuzzUnitInterval_Mul(f *testing.F) {
	corpus := unitIntervalCorpus()
	for i := range corpus {
		f.Add(corpus[i], corpus[len(corpus)-1-i])
	}
	f.Fuzz(func(t *testing.T, a, b float64) {
		u, err := New(a)
		if err != nil {
			t.Skip()
		}
		e, err := New(b)
		if err != nil {
			t.Skip()
		}
		got := u.Mul(e)
		if _, err := New(got.Get()); err != nil {
			t.Errorf("%v.Mul(%v) = %v, out of range", u, e, got)
		}
		if got.Get() > u.Get() || got.Get() > e.Get() {
			t.Errorf("%v.Mul(%v) = %v, greater than an operand", u, e, got)
		}
		if got32 := AsFloat32(u).Mul(AsFloat32(e)); !inRange(got32.Get()) {
			t.Errorf("%v.Mul(%v) as float32 = %v, out of range", u, e, got32)
		}
	})
}

func FuzzValueCmp(f *testing.F) {
	corpus := unitIntervalCorpus()
	for i := range corpus {
		f.Add(corpus[i], corpus[(i+3)%len(corpus)])
	}
	f.Fuzz(func(t *testing.T, a, v float64) {
		u, err := New(a)
		if err != nil {
			t.Skip()
		}
		if u.EqualValue(v) != ValueEqual(v, u) {
			t.Errorf("%v.EqualValue(%v) != ValueEqual(%v, %v)", u, v, v, u)
		}
		if u.EqualValue(v) != (a == v) {
			t.Errorf("%v.EqualValue(%v) = %v, want %v", u, v, u.EqualValue(v), a == v)
		}
		if got, want := ValueCmp(v, u), -u.CmpValue(v); got != want {
			t.Errorf("ValueCmp(%v, %v) = %v, want %v", v, u, got, want)
		}
		if got, want := u.CmpValue(v) < 0, a < v; got != want {
			t.Errorf("%v.CmpValue(%v) < 0 = %v, want %v", u, v, got, want)
		}
	})
}
