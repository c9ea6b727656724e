// Package arith evaluates literal arithmetic: numbers, + - * /, unary sign
// and parentheses. It has no identifiers, calls or access to any state, so
// it is safe to run on text built from user input.
package arith

// Eval parses and evaluates src.
func Eval(src string) (float64, error) {
	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		return 0, err
	}
	expr, err := NewParser(tokens).Parse()
	if err != nil {
		return 0, err
	}
	return expr.Eval(), nil
}
