package calc

import (
	"strconv"
	"unicode"
)

// Option is an option for creating an Evaluator.
type Option interface {
	option(*Evaluator)
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt map[string]Func
	maxopt   int
)

// WithFunc sets a function for evaluation. To disable a function, pass nil
// for fn. Panics if name is not a letter followed by letters, digits, or
// underscores.
func WithFunc(name string, fn Func) Option {
	checkname(name)
	return &funcopt{name, fn}
}

func (o *funcopt) option(e *Evaluator) {
	e.funcs[o.name] = o.fn
}

// WithFuncs sets a group of functions for evaluation. To disable any function,
// set it to nil. Names are checked as by WithFunc.
func WithFuncs(fns map[string]Func) Option {
	// Always make a copy.
	o := make(funcsopt, len(fns))
	for k, v := range fns {
		checkname(k)
		o[k] = v
	}
	return o
}

func (o funcsopt) option(e *Evaluator) {
	for k, v := range o {
		e.funcs[k] = v
	}
}

// DisableDefaultFuncs disables all default functions. Their names become
// unexpected symbols. Functions set by options after it are still enabled.
func DisableDefaultFuncs() Option {
	return disablefns
}

var disablefns = func() funcsopt {
	o := make(funcsopt, len(globalfuncs))
	for k := range globalfuncs {
		o[k] = nil
	}
	return o
}()

// MaxLen limits the length of inputs, in runes including whitespace. Longer
// inputs give a *LengthError without being evaluated. Zero or less means no
// limit, which is the default.
func MaxLen(n int) Option {
	return maxopt(n)
}

func (o maxopt) option(e *Evaluator) {
	e.max = int(o)
}

func checkname(name string) {
	for i, r := range name {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (r == '_' || unicode.IsDigit(r)):
		default:
			panic("calc: invalid function name " + strconv.Quote(name))
		}
	}
	if name == "" {
		panic("calc: empty function name")
	}
}
