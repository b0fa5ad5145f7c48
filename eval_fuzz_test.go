package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("1")
	f.Add("-+--+-+-2++-+-+-+-1")
	f.Add("2^3^2")
	f.Add("sin(0)+ln(1)")
	f.Add("(1+2")
	f.Add("1**2")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calc.EvalString(s)
		if err != nil {
			var ie calc.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q gave non-input error %#v", s, err)
			}
			if r != 0 {
				t.Fatalf("%q gave partial result %g with %v", s, r, err)
			}
			return
		}
		q, _ := calc.EvalString(s)
		if math.Float64bits(q) != math.Float64bits(r) {
			t.Fatalf("%q gave %v then %v", s, r, q)
		}
	})
}
