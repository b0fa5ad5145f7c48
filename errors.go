package calc

import "strconv"

// UnbalancedError is an error indicating parentheses that do not pair up. It
// is found before any tokens are scanned. It implements InputError.
type UnbalancedError struct {
	// Col is the position of the offending parenthesis. For an open
	// parenthesis, that is the outermost one left unclosed.
	Col int
	// Paren is the offending parenthesis, either "(" or ")".
	Paren string
}

func (err *UnbalancedError) Error() string {
	if err.Paren == ")" {
		return errpos(err.Col, "close paren with no open paren")
	}
	return errpos(err.Col, "open paren with no close paren")
}

func (err *UnbalancedError) Pos() int {
	return err.Col
}

// SymbolError indicates input that is not a number, function name, operator,
// or parenthesis. It implements InputError.
type SymbolError struct {
	// Col is the position of the symbol.
	Col int
	// Symbol is the first rune that could not be scanned.
	Symbol rune
}

func (err *SymbolError) Error() string {
	return errpos(err.Col, "unexpected symbol "+strconv.QuoteRune(err.Symbol))
}

func (err *SymbolError) Pos() int {
	return err.Col
}

// OperandError indicates an operator where an operand should begin, e.g. the
// second * in 1**2. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was found.
	Operator string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operand before "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ArityError indicates an operator or function applied when fewer operands
// were available than it takes, e.g. 1+. It implements InputError.
type ArityError struct {
	// Col is the position of the operator or function.
	Col int
	// Symbol is the operator or function name.
	Symbol string
	// Kind is "binary operator", "unary operator", or "function".
	Kind string
	// Need is the number of operands Symbol takes.
	Need int
	// Have is the number of operands that were available.
	Have int
}

func (err *ArityError) Error() string {
	s := "s"
	if err.Need == 1 {
		s = ""
	}
	return errpos(err.Col, err.Kind+" "+strconv.Quote(err.Symbol)+" needs "+strconv.Itoa(err.Need)+" operand"+s+", have "+strconv.Itoa(err.Have))
}

func (err *ArityError) Pos() int {
	return err.Col
}

// BracketError indicates a close parenthesis that found no open one on the
// pending stack. Balanced input never produces it. It implements InputError.
type BracketError struct {
	// Col is the position of the close parenthesis.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "unmatched close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ResultError indicates that evaluation did not reduce to exactly one value,
// e.g. for an empty expression or (1)(2). It implements InputError.
type ResultError struct {
	// Col is the position of the end of the input.
	Col int
	// Len is the number of values left.
	Len int
}

func (err *ResultError) Error() string {
	if err.Len == 0 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "expression left "+strconv.Itoa(err.Len)+" values")
}

func (err *ResultError) Pos() int {
	return err.Col
}

// LengthError indicates an input longer than an evaluator allows.
type LengthError struct {
	// Max is the length limit in runes.
	Max int
}

func (err *LengthError) Error() string {
	return "input longer than " + strconv.Itoa(err.Max) + " runes"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input, other than *LengthError, implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column in the
	// original input, whitespace included.
	Pos() int
}

var (
	_ InputError = (*UnbalancedError)(nil)
	_ InputError = (*SymbolError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*ArityError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ResultError)(nil)
)
