package calc

import (
	"io"
	"strings"
)

// Evaluator evaluates expressions with a fixed set of functions. An Evaluator
// is never modified after New, so it is safe to use concurrently.
type Evaluator struct {
	funcs map[string]Func
	// names is the keys of funcs, longest first.
	names []string
	max   int
}

// New creates an evaluator. The given options are applied in order over the
// default functions.
func New(opts ...Option) *Evaluator {
	e := Evaluator{funcs: make(map[string]Func, len(globalfuncs))}
	for k, v := range globalfuncs {
		e.funcs[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.option(&e)
	}
	for k, v := range e.funcs {
		if v == nil {
			delete(e.funcs, k)
			continue
		}
		e.names = append(e.names, k)
	}
	sortnames(e.names)
	return &e
}

// Funcs returns the names of the functions the evaluator recognizes, longest
// first.
func (e *Evaluator) Funcs() []string {
	return append(([]string)(nil), e.names...)
}

// Eval reads an expression from src to EOF and returns its value. Division by
// zero and out-of-domain function arguments give infinities or NaN, not
// errors. Errors from invalid input implement InputError.
func (e *Evaluator) Eval(src io.RuneScanner) (float64, error) {
	in, err := read(src, e.max)
	if err != nil {
		return 0, err
	}
	if err := balance(in); err != nil {
		return 0, err
	}
	// A closing paren at the end matches the sentinel at the bottom of the
	// pending stack, so that reaching it flushes everything.
	end := in.n + 1
	s := newScan(lex(in.text+")", append(in.cols, end), e.names), e.funcs)
	for !s.lex.done() {
		tok, err := s.lex.next()
		if err != nil {
			return 0, err
		}
		if err := s.step(tok); err != nil {
			return 0, err
		}
	}
	// The trailing paren popped the sentinel, so the pending stack is empty.
	if len(s.vals) != 1 {
		return 0, &ResultError{Col: end, Len: len(s.vals)}
	}
	return s.vals[0], nil
}

// EvalString is a shortcut to evaluate a string expression.
func (e *Evaluator) EvalString(src string) (float64, error) {
	return e.Eval(strings.NewReader(src))
}

// std is the evaluator with the default functions.
var std = New()

// Eval evaluates an expression using the default functions.
func Eval(src io.RuneScanner) (float64, error) {
	return std.Eval(src)
}

// EvalString evaluates a string expression using the default functions.
func EvalString(src string) (float64, error) {
	return std.EvalString(src)
}

// signMode says how the scan reads the next + or -.
type signMode int8

const (
	// signUnary reads + and - as signs. This holds at the start of the input
	// and after an open paren or any operator, where an operand must begin.
	// Other operators are errors in this mode.
	signUnary signMode = iota
	// signBinary reads + and - as binary operators. This holds after a
	// number, function name, or close paren.
	signBinary
)

// pending is an entry on the pending stack: an operator, an open paren, or a
// function awaiting its argument.
type pending struct {
	op   *operator
	fn   Func
	name string
	col  int
	// base is the length of the operand stack when the entry was pushed.
	// Operands below it were written before the entry and can only be the
	// left operand of a binary operator.
	base int
}

func (p pending) isParen() bool {
	return p.op == paren
}

func (p pending) isFunc() bool {
	return p.fn != nil
}

// scan is the state of one evaluation.
type scan struct {
	lex   *lexer
	funcs map[string]Func
	// vals is the operand stack. The top is the end.
	vals []float64
	// ops is the pending stack. The top is the end. The bottom is a sentinel
	// open paren until the final close paren is scanned.
	ops  []pending
	mode signMode
}

func newScan(l *lexer, funcs map[string]Func) *scan {
	return &scan{
		lex:   l,
		funcs: funcs,
		vals:  make([]float64, 0, 8),
		ops:   append(make([]pending, 0, 8), pending{op: paren}),
		mode:  signUnary,
	}
}

// top returns the top of the pending stack, or the zero pending if it is
// empty.
func (s *scan) top() pending {
	if len(s.ops) == 0 {
		return pending{}
	}
	return s.ops[len(s.ops)-1]
}

func (s *scan) push(p pending) {
	p.base = len(s.vals)
	s.ops = append(s.ops, p)
}

// step consumes one token.
func (s *scan) step(tok token) error {
	switch tok.kind {
	case tokenNum:
		s.vals = append(s.vals, tok.num)
		s.mode = signBinary
	case tokenFunc:
		s.push(pending{fn: s.funcs[tok.text], name: tok.text, col: tok.col})
		s.mode = signBinary
	case tokenOpen:
		s.push(pending{op: paren, col: tok.col})
		s.mode = signUnary
	case tokenClose:
		if err := s.close(tok); err != nil {
			return err
		}
		s.mode = signBinary
	case tokenOp:
		op := lookup(tok.text, s.mode == signUnary)
		if op == nil {
			return &OperandError{Col: tok.col, Operator: tok.text}
		}
		for {
			top := s.top()
			// Functions and parens stop the reduction. A function is only
			// applied at a close paren.
			if top.op == nil || top.isParen() || !top.op.reducedBefore(op) {
				break
			}
			if err := s.apply(); err != nil {
				return err
			}
		}
		s.push(pending{op: op, col: tok.col})
		// Whatever operator was pushed, an operand must follow, and it may
		// start with a sign.
		s.mode = signUnary
	default:
		panic("calc: unknown token: " + tok.String())
	}
	return nil
}

// close reduces the pending stack down to the nearest open paren and drops
// it. If that leaves a function on top, the paren group was its argument, so
// it is applied too.
func (s *scan) close(tok token) error {
	for {
		if len(s.ops) == 0 {
			return &BracketError{Col: tok.col}
		}
		if s.top().isParen() {
			break
		}
		if err := s.apply(); err != nil {
			return err
		}
	}
	s.ops = s.ops[:len(s.ops)-1]
	if s.top().isFunc() {
		return s.apply()
	}
	return nil
}

// apply pops the top of the pending stack and applies it to the operand
// stack. The operand popped first is the right-hand one. An entry never takes
// its right-hand operand from values written before it, so postfix forms like
// "2 sin" or "(1)(2)+" are arity errors.
func (s *scan) apply() error {
	p := s.ops[len(s.ops)-1]
	s.ops = s.ops[:len(s.ops)-1]
	var need int
	var sym, kind string
	switch {
	case p.isFunc():
		need, sym, kind = 1, p.name, "function"
	case p.op.arity == 1:
		need, sym, kind = 1, p.op.sym, "unary operator"
	case p.op.arity == 2:
		need, sym, kind = 2, p.op.sym, "binary operator"
	default:
		panic("calc: apply on " + p.op.sym)
	}
	// Each entry needs one operand written after it. A binary operator also
	// needs one written before it.
	have := min(len(s.vals)-p.base, 1)
	if need == 2 {
		have += min(p.base, 1)
	}
	if have < need {
		return &ArityError{Col: p.col, Symbol: sym, Kind: kind, Need: need, Have: have}
	}
	k := len(s.vals) - 1
	switch {
	case p.isFunc():
		s.vals[k] = p.fn(s.vals[k])
	case need == 1:
		s.vals[k] = p.op.unary(s.vals[k])
	default:
		s.vals[k-1] = p.op.binary(s.vals[k-1], s.vals[k])
		s.vals = s.vals[:k]
	}
	return nil
}
