package parser

import (
	"errors"
	"fmt"
)

// Parsing failures, wrapped by *Error.
var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingInput   = errors.New("unexpected input after datum")
)

// Error is a parsing failure at the position of the offending token
type Error struct {
	Line int
	Col  int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parsing error at %d:%d: %v", e.Line, e.Col, e.Err)
}

// Unwrap returns the underlying failure
func (e *Error) Unwrap() error {
	return e.Err
}
