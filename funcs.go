package calc

import "math"

// Func is a function from reals to reals. Out-of-domain arguments should give
// NaN rather than panic.
type Func func(x float64) float64

var globalfuncs = map[string]Func{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"atan": math.Atan,

	"ln":    math.Log,
	"log2":  math.Log2,
	"log10": math.Log10,

	"sinh": math.Sinh,
	"cosh": math.Cosh,
	"tanh": math.Tanh,
}

// sortnames sorts function names longest first, then lexically, so that
// the first name in the list that prefixes an input is the longest one.
func sortnames(names []string) {
	less := func(a, b string) bool {
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && less(names[j], names[j-1]); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
