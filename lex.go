package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type token struct {
	kind tokenKind
	text string
	// num is the value of a tokenNum.
	num float64
	// col is the column of the token in the original input.
	col int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.col)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenFunc is the name of a registered function.
	tokenFunc
	// tokenOp is an operator. Whether it is a sign is decided by the
	// evaluator, not the lexer.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenFunc:
		return "Func"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the bytes which are lexed as operators or parentheses.
const Operators = "+-*/()^"

// input is an expression with its whitespace removed.
type input struct {
	text string
	// cols holds the column in the original input of each byte of text.
	cols []int
	// n is the number of runes in the original input.
	n int
}

// read reads src to EOF, dropping whitespace. If max is positive and src
// holds more than max runes, the result is a *LengthError.
func read(src io.RuneScanner, max int) (*input, error) {
	var b strings.Builder
	in := input{}
	for {
		r, sz, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if sz == 0 {
			continue
		}
		in.n++
		if max > 0 && in.n > max {
			return nil, &LengthError{Max: max}
		}
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
		for k := utf8.RuneLen(r); k > 0; k-- {
			in.cols = append(in.cols, in.n)
		}
	}
	in.text = b.String()
	return &in, nil
}

type lexer struct {
	src  string
	cols []int
	pos  int
	// funcs is the function names to recognize, longest first.
	funcs []string
}

func lex(src string, cols []int, funcs []string) *lexer {
	return &lexer{src: src, cols: cols, funcs: funcs}
}

// done returns whether the whole input has been consumed.
func (l *lexer) done() bool {
	return l.pos >= len(l.src)
}

// next scans the next token. Matchers are tried in order: number, function
// name, then operator. The first nonempty match wins.
func (l *lexer) next() (token, error) {
	rest := l.src[l.pos:]
	tok := token{col: l.cols[l.pos]}
	if n := numlen(rest); n > 0 {
		tok.text = rest[:n]
		tok.kind = tokenNum
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// numlen only accepts what ParseFloat does.
			panic("calc: invalid number " + strconv.Quote(tok.text) + ": " + err.Error())
		}
		// Out of range literals are ±Inf or 0 per ParseFloat.
		tok.num = v
		l.pos += n
		return tok, nil
	}
	for _, name := range l.funcs {
		if strings.HasPrefix(rest, name) {
			tok.text = name
			tok.kind = tokenFunc
			l.pos += len(name)
			return tok, nil
		}
	}
	switch k := strings.IndexByte(Operators, rest[0]); {
	case k < 0:
		r, sz := utf8.DecodeRuneInString(rest)
		l.pos += sz
		return tok, &SymbolError{Col: tok.col, Symbol: r}
	case rest[0] == '(':
		tok.kind = tokenOpen
	case rest[0] == ')':
		tok.kind = tokenClose
	default:
		tok.kind = tokenOp
	}
	tok.text = rest[:1]
	l.pos++
	return tok, nil
}

// numlen returns the length of the longest prefix of s that is a numeric
// literal: digits, optionally a point and more digits, and optionally an
// exponent. There must be at least one digit before the exponent. An e that
// is not followed by digits, with an optional sign between, is not part of
// the literal.
func numlen(s string) int {
	i, dig := 0, 0
	for i < len(s) && isdigit(s[i]) {
		i++
		dig++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isdigit(s[i]) {
			i++
			dig++
		}
	}
	if dig == 0 {
		return 0
	}
	if i < len(s) && s[i] == 'e' {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isdigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isdigit(c byte) bool {
	return '0' <= c && c <= '9'
}
