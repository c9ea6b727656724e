package arith

import "fmt"

// SyntaxError reports where an expression stopped making sense.
type SyntaxError struct {
	Message string
	Pos     int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("col %d: %s", e.Pos+1, e.Message)
}

func newSyntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}
