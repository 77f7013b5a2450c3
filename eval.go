package crisp

import (
	"fmt"

	"github.com/xiam/crisp/ast"
)

// Eval evaluates a value in the given environment. Evaluation is recursive
// and does not eliminate tail calls.
func Eval(value ast.Value, env *Environment) (ast.Value, error) {
	if value == nil {
		return nil, evalError(nil, fmt.Errorf("%w: nil value", ErrMalformed))
	}

	switch value.Type() {
	case ast.ValueTypeFixnum,
		ast.ValueTypeBoolean,
		ast.ValueTypeCharacter,
		ast.ValueTypeString,
		ast.ValueTypeEmptyList,
		ast.ValueTypeVoid:
		return value, nil

	case ast.ValueTypeSymbol:
		return evalSymbol(value.(*ast.Symbol), env)

	case ast.ValueTypePair:
		return evalPair(value.(*ast.Pair), env)

	case ast.ValueTypeProcedure, ast.ValueTypeSpecialForm:
		return nil, evalError(value, ErrNotInCallPosition)
	}

	return nil, evalError(value, fmt.Errorf("%w: unknown value type %v", ErrMalformed, value.Type()))
}

func evalSymbol(sym *ast.Symbol, env *Environment) (ast.Value, error) {
	value, ok := env.Lookup(sym)
	if !ok {
		return nil, evalError(sym, fmt.Errorf("%w %s", ErrUnboundSymbol, sym))
	}
	if _, ok := value.(*SpecialForm); ok {
		return nil, evalError(sym, fmt.Errorf("%w: special form %s", ErrNotInCallPosition, sym))
	}
	return value, nil
}

func evalPair(expr *ast.Pair, env *Environment) (ast.Value, error) {
	for {
		switch head := expr.Head().(type) {
		case *ast.Pair:
			fn, err := Eval(head, env)
			if err != nil {
				return nil, err
			}
			expr = ast.Cons(fn, expr.Tail())
			continue

		case *ast.Symbol:
			value, ok := env.Lookup(head)
			if !ok {
				return nil, evalError(expr, fmt.Errorf("%w %s", ErrUnboundSymbol, head))
			}
			switch fn := value.(type) {
			case *SpecialForm:
				logger.Printf("FORM: %v", fn.name)
				return fn.fn(expr.Tail(), env)
			case *Procedure:
				return apply(expr, fn, env)
			}
			return nil, evalError(expr, fmt.Errorf("%w: %s is bound to a %v", ErrNotApplicable, head, value.Type()))

		case *Procedure:
			return apply(expr, head, env)
		}

		return nil, evalError(expr, fmt.Errorf("%w: %v in head position", ErrNotApplicable, expr.Head().Type()))
	}
}

func apply(expr *ast.Pair, proc *Procedure, env *Environment) (ast.Value, error) {
	argExprs, tail := ast.Slice(expr.Tail())
	if tail != ast.EmptyList {
		return nil, evalError(expr, fmt.Errorf("%w: improper argument list", ErrMalformed))
	}

	args := make([]ast.Value, 0, len(argExprs))
	for i := range argExprs {
		arg, err := Eval(argExprs[i], env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	frame := NewEnvironment(proc.env).Name(proc.name)
	if err := bindParams(frame, proc.params, args); err != nil {
		return nil, evalError(expr, err)
	}

	logger.Printf("APPLY: %v %v", proc.name, args)

	if proc.IsPrimitive() {
		value, err := proc.native(frame)
		if err != nil {
			return nil, evalError(expr, err)
		}
		return value, nil
	}

	return evalSequence(proc.body, frame)
}

// bindParams binds args positionally. A pattern ending in a symbol instead of
// the empty list binds that symbol to the remaining arguments.
func bindParams(frame *Environment, params ast.Value, args []ast.Value) error {
	for {
		switch p := params.(type) {
		case *ast.Pair:
			name, ok := p.Head().(*ast.Symbol)
			if !ok {
				return fmt.Errorf("%w: parameter %s is not a symbol", ErrMalformed, ast.Encode(p.Head()))
			}
			if len(args) == 0 {
				return fmt.Errorf("%w: missing argument %s", ErrArity, name)
			}
			frame.Bind(name, args[0])
			args, params = args[1:], p.Tail()

		case *ast.Symbol:
			frame.Bind(p, ast.List(args...))
			return nil

		default:
			if params != ast.EmptyList {
				return fmt.Errorf("%w: bad parameter list", ErrMalformed)
			}
			if len(args) > 0 {
				return fmt.Errorf("%w: %d too many", ErrArity, len(args))
			}
			return nil
		}
	}
}

// evalSequence evaluates a list of expressions in order and returns the value
// of the last one, or ast.Void for an empty list.
func evalSequence(body ast.Value, env *Environment) (ast.Value, error) {
	var result = ast.Void
	exprs, _ := ast.Slice(body)
	for i := range exprs {
		value, err := Eval(exprs[i], env)
		if err != nil {
			return nil, err
		}
		result = value
	}
	return result, nil
}
