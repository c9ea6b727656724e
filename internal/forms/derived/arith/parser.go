package arith

import "strconv"

// _maxDepth bounds nesting so hostile input cannot exhaust the stack.
const _maxDepth = 64

// Parser builds an Expr from tokens using the usual precedence:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | "(" expr ")"
type Parser struct {
	tokens []Token
	pos    int
	depth  int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes all tokens and returns the expression tree.
func (p *Parser) Parse() (Expr, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, newSyntaxErrorf(tok.Pos, "unexpected %s", tok.Type)
	}
	return expr, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) enter(tok Token) error {
	p.depth++
	if p.depth > _maxDepth {
		return newSyntaxErrorf(tok.Pos, "expression nested too deeply")
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().Type
		if op != TokenPlus && op != TokenMinus {
			return left, nil
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().Type
		if op != TokenStar && op != TokenSlash {
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() (Expr, error) {
	tok := p.peek()
	if tok.Type != TokenPlus && tok.Type != TokenMinus {
		return p.parsePrimary()
	}

	if err := p.enter(tok); err != nil {
		return nil, err
	}
	defer p.leave()

	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{Op: tok.Type, Operand: operand}, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case TokenNumber:
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, newSyntaxErrorf(tok.Pos, "invalid number %q", tok.Literal)
		}
		return &NumberLit{Value: value}, nil
	case TokenLParen:
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		defer p.leave()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.Type != TokenRParen {
			return nil, newSyntaxErrorf(closing.Pos, "expected ')' but found %s", closing.Type)
		}
		return inner, nil
	default:
		return nil, newSyntaxErrorf(tok.Pos, "expected a number but found %s", tok.Type)
	}
}
