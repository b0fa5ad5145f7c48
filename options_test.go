package calc_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc"
)

func TestWithFunc(t *testing.T) {
	e := calc.New(calc.WithFunc("sqrt", math.Sqrt), calc.WithFunc("sq", func(x float64) float64 { return x * x }))

	r, err := e.EvalString("sqrt(16) + sq(3)")
	require.NoError(t, err)
	assert.Equal(t, 13.0, r)

	// The longest name wins, so sqrt is not sq followed by rt.
	r, err = e.EvalString("sqrt 4")
	require.NoError(t, err)
	assert.Equal(t, 2.0, r)

	// Defaults are still there.
	r, err = e.EvalString("cos(0)")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	// The package evaluator is untouched.
	_, err = calc.EvalString("sqrt(4)")
	var se *calc.SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 's', se.Symbol)
}

func TestWithFuncOverride(t *testing.T) {
	e := calc.New(calc.WithFunc("ln", math.Log10))
	r, err := e.EvalString("ln(100)")
	require.NoError(t, err)
	assert.Equal(t, 2.0, r)
}

func TestWithFuncNil(t *testing.T) {
	e := calc.New(calc.WithFunc("sin", nil))
	assert.NotContains(t, e.Funcs(), "sin")

	// sinh is still a function.
	r, err := e.EvalString("sinh(0)")
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)

	_, err = e.EvalString("sin(0)")
	var se *calc.SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Pos())
}

func TestWithFuncs(t *testing.T) {
	fns := map[string]calc.Func{
		"double": func(x float64) float64 { return 2 * x },
		"half":   func(x float64) float64 { return x / 2 },
	}
	e := calc.New(calc.WithFuncs(fns))
	// Changing the map afterward does not change the option.
	fns["triple"] = func(x float64) float64 { return 3 * x }
	delete(fns, "half")

	r, err := e.EvalString("double(half(7))")
	require.NoError(t, err)
	assert.Equal(t, 7.0, r)
	assert.NotContains(t, e.Funcs(), "triple")
}

func TestDisableDefaultFuncs(t *testing.T) {
	e := calc.New(calc.DisableDefaultFuncs(), calc.WithFunc("abs", math.Abs))
	assert.Equal(t, []string{"abs"}, e.Funcs())

	r, err := e.EvalString("abs(-2) * 3")
	require.NoError(t, err)
	assert.Equal(t, 6.0, r)

	for _, src := range []string{"sin(0)", "ln(1)", "log10(1)"} {
		_, err := e.EvalString(src)
		var se *calc.SymbolError
		assert.ErrorAs(t, err, &se, src)
	}

	// Disabling the defaults after adding abs keeps abs.
	e = calc.New(calc.WithFunc("abs", math.Abs), calc.DisableDefaultFuncs())
	assert.Equal(t, []string{"abs"}, e.Funcs())
}

func TestMaxLen(t *testing.T) {
	e := calc.New(calc.MaxLen(8))

	r, err := e.EvalString("1 + 2*3")
	require.NoError(t, err)
	assert.Equal(t, 7.0, r)

	_, err = e.EvalString("1 + 2 * 3")
	var le *calc.LengthError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 8, le.Max)

	// Length is checked before balance.
	_, err = e.EvalString(strings.Repeat("(", 9))
	require.ErrorAs(t, err, &le)

	r, err = calc.New(calc.MaxLen(0)).EvalString(strings.Repeat("+", 100) + "1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
}

func TestBadFuncName(t *testing.T) {
	for _, name := range []string{"", "2x", "a b", "x+", "_x", "x(y"} {
		assert.Panics(t, func() { calc.WithFunc(name, math.Abs) }, "name %q", name)
		assert.Panics(t, func() { calc.WithFuncs(map[string]calc.Func{name: math.Abs}) }, "name %q", name)
	}
	for _, name := range []string{"x", "x2", "x_y", "π"} {
		assert.NotPanics(t, func() { calc.WithFunc(name, math.Abs) }, "name %q", name)
	}
}

func TestNilOption(t *testing.T) {
	e := calc.New(nil, calc.MaxLen(3), nil)
	_, err := e.EvalString("1+23")
	var le *calc.LengthError
	assert.ErrorAs(t, err, &le)
}
