package calc

// balance checks that the parentheses in an input are balanced. A close
// parenthesis with no open one to its left, or an open one never closed, gives
// an *UnbalancedError.
func balance(in *input) error {
	depth := 0
	// outer is the index of the most recent ( opened at depth 0. When the
	// input ends unbalanced, that is the first one left open.
	outer := -1
	for i := 0; i < len(in.text); i++ {
		switch in.text[i] {
		case '(':
			if depth == 0 {
				outer = i
			}
			depth++
		case ')':
			depth--
			if depth < 0 {
				return &UnbalancedError{Col: in.cols[i], Paren: ")"}
			}
		}
	}
	if depth != 0 {
		return &UnbalancedError{Col: in.cols[outer], Paren: "("}
	}
	return nil
}
