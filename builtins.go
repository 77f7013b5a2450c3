package crisp

import (
	"fmt"

	"github.com/xiam/crisp/ast"
)

type builtin struct {
	name   string
	params ast.Value
	fn     Primitive
}

var builtins = []builtin{}

// Defn registers a primitive procedure. Root environments created afterwards
// bind it under name.
func Defn(name string, params ast.Value, fn Primitive) {
	builtins = append(builtins, builtin{name: name, params: params, fn: fn})
}

// Formals builds a fixed parameter pattern
func Formals(names ...string) ast.Value {
	return Variadic("", names...)
}

// Variadic builds a parameter pattern whose rest symbol collects every
// argument after names. An empty rest makes a fixed pattern.
func Variadic(rest string, names ...string) ast.Value {
	var params ast.Value = ast.EmptyList
	if rest != "" {
		params = ast.Intern(rest)
	}
	for i := len(names) - 1; i >= 0; i-- {
		params = ast.Cons(ast.Intern(names[i]), params)
	}
	return params
}

func init() {
	Defn("cons", Formals("head", "tail"), primCons)
	Defn("car", Formals("pair"), primCar)
	Defn("cdr", Formals("pair"), primCdr)
	Defn("list", Variadic("items"), primList)
	Defn("add", Variadic("numbers"), primAdd)
	Defn("add2ormore", Variadic("rest", "a", "b"), primAdd2OrMore)
	Defn("addxy", Formals("x", "y"), primAddXY)
}

// Arg returns the value bound to a parameter inside a primitive
func Arg(env *Environment, name string) (ast.Value, error) {
	value, ok := env.Lookup(ast.Intern(name))
	if !ok {
		return nil, fmt.Errorf("%w: missing parameter %s", ErrArity, name)
	}
	return value, nil
}

func fixnums(values ...ast.Value) ([]ast.Fixnum, error) {
	out := make([]ast.Fixnum, 0, len(values))
	for _, v := range values {
		n, ok := v.(ast.Fixnum)
		if !ok {
			return nil, fmt.Errorf("%w: expecting fixnum, got %v %s", ErrWrongType, v.Type(), ast.Encode(v))
		}
		out = append(out, n)
	}
	return out, nil
}

func sum(values ...ast.Value) (ast.Value, error) {
	numbers, err := fixnums(values...)
	if err != nil {
		return nil, err
	}
	var total ast.Fixnum
	for _, n := range numbers {
		total += n
	}
	return total, nil
}

func primCons(env *Environment) (ast.Value, error) {
	head, err := Arg(env, "head")
	if err != nil {
		return nil, err
	}
	tail, err := Arg(env, "tail")
	if err != nil {
		return nil, err
	}
	return ast.Cons(head, tail), nil
}

func pairArg(env *Environment) (*ast.Pair, error) {
	v, err := Arg(env, "pair")
	if err != nil {
		return nil, err
	}
	pair, ok := v.(*ast.Pair)
	if !ok {
		return nil, fmt.Errorf("%w: expecting pair, got %v %s", ErrWrongType, v.Type(), ast.Encode(v))
	}
	return pair, nil
}

func primCar(env *Environment) (ast.Value, error) {
	pair, err := pairArg(env)
	if err != nil {
		return nil, err
	}
	return pair.Head(), nil
}

func primCdr(env *Environment) (ast.Value, error) {
	pair, err := pairArg(env)
	if err != nil {
		return nil, err
	}
	return pair.Tail(), nil
}

func primList(env *Environment) (ast.Value, error) {
	return Arg(env, "items")
}

func primAdd(env *Environment) (ast.Value, error) {
	numbers, err := Arg(env, "numbers")
	if err != nil {
		return nil, err
	}
	values, _ := ast.Slice(numbers)
	return sum(values...)
}

func primAdd2OrMore(env *Environment) (ast.Value, error) {
	a, err := Arg(env, "a")
	if err != nil {
		return nil, err
	}
	b, err := Arg(env, "b")
	if err != nil {
		return nil, err
	}
	rest, err := Arg(env, "rest")
	if err != nil {
		return nil, err
	}
	values, _ := ast.Slice(rest)
	return sum(append([]ast.Value{a, b}, values...)...)
}

func primAddXY(env *Environment) (ast.Value, error) {
	x, err := Arg(env, "x")
	if err != nil {
		return nil, err
	}
	y, err := Arg(env, "y")
	if err != nil {
		return nil, err
	}
	return sum(x, y)
}
