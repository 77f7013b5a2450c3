package crisp

import (
	"fmt"

	"github.com/xiam/crisp/ast"
)

var specialForms = map[*ast.Symbol]*SpecialForm{}

var symUnquote = ast.Intern("unquote")

// Defform registers a special form. Root environments created afterwards bind
// it under name.
func Defform(name string, fn SpecialFormFunc) {
	sym := ast.Intern(name)
	specialForms[sym] = &SpecialForm{name: sym, fn: fn}
}

func init() {
	Defform("quote", evalQuote)
	Defform("define", evalDefine)
	Defform("set!", evalSet)
	Defform("if", evalIf)
	Defform("let", evalLet)
	Defform("lambda", evalLambda)
	Defform("quasiquote", evalQuasiquote)
	Defform("unquote", evalUnquote)
}

// operands returns the elements of a proper operand list holding between min
// and max elements. A negative max means no upper bound.
func operands(form string, args ast.Value, min int, max int) ([]ast.Value, error) {
	values, tail := ast.Slice(args)
	if tail != ast.EmptyList {
		return nil, fmt.Errorf("%w: %s with improper operand list", ErrMalformed, form)
	}
	if len(values) < min || (max >= 0 && len(values) > max) {
		return nil, fmt.Errorf("%w: bad %s syntax", ErrMalformed, form)
	}
	return values, nil
}

func evalQuote(args ast.Value, env *Environment) (ast.Value, error) {
	ops, err := operands("quote", args, 1, 1)
	if err != nil {
		return nil, evalError(args, err)
	}
	return ops[0], nil
}

func evalDefine(args ast.Value, env *Environment) (ast.Value, error) {
	ops, err := operands("define", args, 2, 2)
	if err != nil {
		return nil, evalError(args, err)
	}

	name, ok := ops[0].(*ast.Symbol)
	if !ok {
		return nil, evalError(args, fmt.Errorf("%w: cannot bind %s", ErrMalformed, ast.Encode(ops[0])))
	}

	value, err := Eval(ops[1], env)
	if err != nil {
		return nil, err
	}

	env.Bind(name, value)
	return ast.Void, nil
}

// evalSet requires the name to be bound somewhere in the chain, then binds it
// in the current frame exactly like define does.
func evalSet(args ast.Value, env *Environment) (ast.Value, error) {
	ops, err := operands("set!", args, 2, 2)
	if err != nil {
		return nil, evalError(args, err)
	}

	name, ok := ops[0].(*ast.Symbol)
	if !ok {
		return nil, evalError(args, fmt.Errorf("%w: cannot set %s", ErrMalformed, ast.Encode(ops[0])))
	}
	if _, ok := env.Lookup(name); !ok {
		return nil, evalError(args, fmt.Errorf("%w %s", ErrSetUnbound, name))
	}

	return evalDefine(args, env)
}

func evalIf(args ast.Value, env *Environment) (ast.Value, error) {
	ops, err := operands("if", args, 2, 3)
	if err != nil {
		return nil, evalError(args, err)
	}

	cond, err := Eval(ops[0], env)
	if err != nil {
		return nil, err
	}

	if cond != ast.False {
		return Eval(ops[1], env)
	}
	if len(ops) == 3 {
		return Eval(ops[2], env)
	}
	return ast.Void, nil
}

// evalLet evaluates every binding in the outer environment, so bindings
// can't see each other, then runs the body in a single new frame.
func evalLet(args ast.Value, env *Environment) (ast.Value, error) {
	ops, err := operands("let", args, 1, -1)
	if err != nil {
		return nil, evalError(args, err)
	}

	bindings, tail := ast.Slice(ops[0])
	if tail != ast.EmptyList {
		return nil, evalError(args, fmt.Errorf("%w: bad let bindings", ErrMalformed))
	}

	names := make([]*ast.Symbol, 0, len(bindings))
	values := make([]ast.Value, 0, len(bindings))
	for _, binding := range bindings {
		pair, err := operands("let binding", binding, 2, 2)
		if err != nil {
			return nil, evalError(binding, err)
		}
		name, ok := pair[0].(*ast.Symbol)
		if !ok {
			return nil, evalError(binding, fmt.Errorf("%w: cannot bind %s", ErrMalformed, ast.Encode(pair[0])))
		}
		value, err := Eval(pair[1], env)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		values = append(values, value)
	}

	frame := NewEnvironment(env).Name("let")
	for i := range names {
		frame.Bind(names[i], values[i])
	}

	return evalSequence(ast.List(ops[1:]...), frame)
}

func evalLambda(args ast.Value, env *Environment) (ast.Value, error) {
	pair, ok := args.(*ast.Pair)
	if !ok {
		return nil, evalError(args, fmt.Errorf("%w: lambda without parameters", ErrMalformed))
	}
	if _, err := operands("lambda", args, 1, -1); err != nil {
		return nil, evalError(args, err)
	}

	params := pair.Head()
	if err := checkParams(params); err != nil {
		return nil, evalError(args, err)
	}

	return NewLambda(params, env, pair.Tail()), nil
}

func checkParams(params ast.Value) error {
	names, tail := ast.Slice(params)
	for _, name := range names {
		if _, ok := name.(*ast.Symbol); !ok {
			return fmt.Errorf("%w: parameter %s is not a symbol", ErrMalformed, ast.Encode(name))
		}
	}
	if _, ok := tail.(*ast.Symbol); ok || tail == ast.EmptyList {
		return nil
	}
	return fmt.Errorf("%w: bad parameter list %s", ErrMalformed, ast.Encode(params))
}

func evalQuasiquote(args ast.Value, env *Environment) (ast.Value, error) {
	ops, err := operands("quasiquote", args, 1, 1)
	if err != nil {
		return nil, evalError(args, err)
	}
	return quasiquote(ops[0], env)
}

// quasiquote copies the structure of v, replacing (unquote x) with the value
// of x. Nested quasiquotes are not tracked.
func quasiquote(v ast.Value, env *Environment) (ast.Value, error) {
	pair, ok := v.(*ast.Pair)
	if !ok {
		return v, nil
	}

	if pair.Head() == symUnquote {
		ops, err := operands("unquote", pair.Tail(), 1, 1)
		if err != nil {
			return nil, evalError(v, err)
		}
		return Eval(ops[0], env)
	}

	head, err := quasiquote(pair.Head(), env)
	if err != nil {
		return nil, err
	}
	tail, err := quasiquote(pair.Tail(), env)
	if err != nil {
		return nil, err
	}
	return ast.Cons(head, tail), nil
}

func evalUnquote(args ast.Value, env *Environment) (ast.Value, error) {
	return nil, evalError(ast.Cons(symUnquote, args), ErrUnquoteOutside)
}
