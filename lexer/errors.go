package lexer

import (
	"errors"
	"fmt"
)

// Lexing failures, wrapped by *Error.
var (
	ErrInvalidLiteral     = errors.New("invalid literal syntax")
	ErrMissingDelimiter   = errors.New("missing delimiter")
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrUnterminatedString = errors.New("unterminated string")
)

// Error is a lexing failure at a given position
type Error struct {
	Line int
	Col  int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexing error at %d:%d: %v", e.Line, e.Col, e.Err)
}

// Unwrap returns the underlying failure
func (e *Error) Unwrap() error {
	return e.Err
}
