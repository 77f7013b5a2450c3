package crisp

import (
	"errors"
	"fmt"

	"github.com/xiam/crisp/ast"
)

// Evaluation failures, wrapped by *EvaluationError.
var (
	ErrUnboundSymbol     = errors.New("unbound symbol")
	ErrSetUnbound        = errors.New("cannot set! an unbound symbol")
	ErrArity             = errors.New("wrong number of arguments")
	ErrWrongType         = errors.New("wrong type argument")
	ErrNotApplicable     = errors.New("not applicable")
	ErrNotInCallPosition = errors.New("not in call position")
	ErrUnquoteOutside    = errors.New("unquote outside of quasiquote")
	ErrMalformed         = errors.New("malformed expression")
)

// EvaluationError is raised while evaluating Expr
type EvaluationError struct {
	Expr ast.Value
	Err  error
}

func (e *EvaluationError) Error() string {
	if e.Expr == nil {
		return fmt.Sprintf("evaluation error: %v", e.Err)
	}
	return fmt.Sprintf("evaluation error: %v in %s", e.Err, ast.Encode(e.Expr))
}

// Unwrap returns the underlying failure
func (e *EvaluationError) Unwrap() error {
	return e.Err
}

func evalError(expr ast.Value, err error) error {
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return err
	}
	return &EvaluationError{Expr: expr, Err: err}
}
