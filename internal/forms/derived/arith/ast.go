package arith

// Expr is a node of a parsed arithmetic expression.
type Expr interface {
	Eval() float64
}

type NumberLit struct {
	Value float64
}

func (n *NumberLit) Eval() float64 {
	return n.Value
}

type UnaryExpr struct {
	Op      TokenType
	Operand Expr
}

func (u *UnaryExpr) Eval() float64 {
	v := u.Operand.Eval()
	if u.Op == TokenMinus {
		return -v
	}
	return v
}

type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

// Eval follows IEEE-754: division by zero gives an infinity or NaN.
func (b *BinaryExpr) Eval() float64 {
	l, r := b.Left.Eval(), b.Right.Eval()
	switch b.Op {
	case TokenPlus:
		return l + r
	case TokenMinus:
		return l - r
	case TokenStar:
		return l * r
	default:
		return l / r
	}
}
