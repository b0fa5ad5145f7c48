package calc

import "math"

type operator struct {
	// sym is the operator as written.
	sym string
	// arity is the number of operands. Parentheses have arity 0 and are
	// never applied.
	arity int
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// unary and binary compute the operator for arity 1 and 2, respectively.
	unary  func(x float64) float64
	binary func(x, y float64) float64
}

// reducedBefore returns whether p, pending on the stack, must be applied
// before next is pushed.
func (p *operator) reducedBefore(next *operator) bool {
	if p.prec != next.prec {
		return p.prec > next.prec
	}
	return !next.right
}

// operators maps operator keys to operators. The key for a sign is the
// symbol followed by u.
var operators = map[string]*operator{
	"(": {sym: "("},
	")": {sym: ")"},
	"+": {sym: "+", arity: 2, prec: 1, binary: func(x, y float64) float64 { return x + y }},
	"-": {sym: "-", arity: 2, prec: 1, binary: func(x, y float64) float64 { return x - y }},
	"*": {sym: "*", arity: 2, prec: 2, binary: func(x, y float64) float64 { return x * y }},
	"/": {sym: "/", arity: 2, prec: 2, binary: func(x, y float64) float64 { return x / y }},
	"^": {sym: "^", arity: 2, prec: 3, right: true, binary: math.Pow},

	"+u": {sym: "+", arity: 1, prec: 4, right: true, unary: func(x float64) float64 { return x }},
	"-u": {sym: "-", arity: 1, prec: 4, right: true, unary: func(x float64) float64 { return -x }},
}

// lookup gets the operator for a symbol. If unary is true, the result is the
// sign form of the symbol. If there is no such operator, the result is nil.
func lookup(sym string, unary bool) *operator {
	if unary {
		return operators[sym+"u"]
	}
	return operators[sym]
}

var (
	// paren marks an open parenthesis on the pending stack.
	paren = operators["("]
)
