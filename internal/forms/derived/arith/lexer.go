package arith

var singleCharTokens = map[byte]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'(': TokenLParen,
	')': TokenRParen,
}

// Lexer tokenizes arithmetic expressions. Only numbers, the four operators,
// parentheses and whitespace are accepted; anything else is an error.
type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans the whole input. The returned slice always ends with
// TokenEOF when err is nil.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *Lexer) next() (Token, error) {
	l.skipWhitespace()
	start := l.pos
	if start >= len(l.input) {
		return Token{Type: TokenEOF, Pos: start}, nil
	}

	ch := l.input[start]
	if typ, ok := singleCharTokens[ch]; ok {
		l.pos++
		return Token{Type: typ, Literal: string(ch), Pos: start}, nil
	}

	if isDigit(ch) || ch == '.' {
		return l.readNumber()
	}

	return Token{}, newSyntaxErrorf(start, "unexpected character %q", ch)
}

// readNumber accepts 12, 12.5, .5, 12. and an optional exponent (1e+21).
func (l *Lexer) readNumber() (Token, error) {
	start := l.pos
	digits := l.readDigits()
	if l.peek() == '.' {
		l.pos++
		digits += l.readDigits()
	}
	if digits == 0 {
		return Token{}, newSyntaxErrorf(start, "malformed number")
	}

	if c := l.peek(); c == 'e' || c == 'E' {
		l.pos++
		if c := l.peek(); c == '+' || c == '-' {
			l.pos++
		}
		if l.readDigits() == 0 {
			return Token{}, newSyntaxErrorf(start, "malformed exponent")
		}
	}

	return Token{Type: TokenNumber, Literal: l.input[start:l.pos], Pos: start}, nil
}

func (l *Lexer) readDigits() int {
	n := 0
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
		n++
	}
	return n
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
