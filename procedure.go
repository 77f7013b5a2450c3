package crisp

import (
	"github.com/xiam/crisp/ast"
)

// Primitive is the native body of a primitive procedure. It receives the
// frame holding the procedure's bound parameters.
type Primitive func(env *Environment) (ast.Value, error)

// SpecialFormFunc receives the unevaluated operands of a special form and the
// environment it appears in.
type SpecialFormFunc func(args ast.Value, env *Environment) (ast.Value, error)

// Procedure is either a closure built by lambda or a primitive.
type Procedure struct {
	name   string
	params ast.Value
	env    *Environment

	body   ast.Value
	native Primitive
}

// NewPrimitive creates a primitive procedure
func NewPrimitive(name string, params ast.Value, env *Environment, fn Primitive) *Procedure {
	return &Procedure{
		name:   name,
		params: params,
		env:    env,
		body:   ast.EmptyList,
		native: fn,
	}
}

// NewLambda creates a compound procedure closing over env
func NewLambda(params ast.Value, env *Environment, body ast.Value) *Procedure {
	return &Procedure{
		name:   "lambda",
		params: params,
		env:    env,
		body:   body,
	}
}

// Type implements ast.Value
func (*Procedure) Type() ast.ValueType {
	return ast.ValueTypeProcedure
}

func (*Procedure) String() string {
	return "#<procedure>"
}

// IsPrimitive returns true if the procedure has a native body
func (p *Procedure) IsPrimitive() bool {
	return p.native != nil
}

// Params returns the parameter pattern
func (p *Procedure) Params() ast.Value {
	return p.params
}

// Env returns the captured environment
func (p *Procedure) Env() *Environment {
	return p.env
}

// SpecialForm controls the evaluation of its own operands.
type SpecialForm struct {
	name *ast.Symbol
	fn   SpecialFormFunc
}

// Type implements ast.Value
func (*SpecialForm) Type() ast.ValueType {
	return ast.ValueTypeSpecialForm
}

func (*SpecialForm) String() string {
	return "#<special-form>"
}

// Name returns the symbol the form is registered under
func (sf *SpecialForm) Name() *ast.Symbol {
	return sf.name
}

var (
	_ = ast.Value(&Procedure{})
	_ = ast.Value(&SpecialForm{})
)
