package arith

// TokenType identifies the kind of lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
)

var tokenNames = map[TokenType]string{
	TokenEOF:    "end of expression",
	TokenNumber: "number",
	TokenPlus:   "'+'",
	TokenMinus:  "'-'",
	TokenStar:   "'*'",
	TokenSlash:  "'/'",
	TokenLParen: "'('",
	TokenRParen: "')'",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical token with its byte offset in the source.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}
