package crisp

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/xiam/crisp/ast"
)

var envID = uint64(0)

// Environment is a frame of bindings chained to its parent. Frames are not
// safe for concurrent use.
type Environment struct {
	id   uint64
	name string

	parent *Environment

	bindings map[*ast.Symbol]ast.Value
}

// NewEnvironment creates an empty frame. A nil parent makes a root frame.
func NewEnvironment(parent *Environment) *Environment {
	env := &Environment{
		id:       atomic.AddUint64(&envID, 1),
		parent:   parent,
		bindings: make(map[*ast.Symbol]ast.Value),
	}
	logger.Printf("*ENV: %v -> %v", parent, env)
	return env
}

// NewRootEnvironment creates a root frame holding every registered special
// form and primitive procedure.
func NewRootEnvironment() *Environment {
	env := NewEnvironment(nil).Name("root")
	for sym, form := range specialForms {
		env.Bind(sym, form)
	}
	for _, b := range builtins {
		env.Bind(ast.Intern(b.name), NewPrimitive(b.name, b.params, env, b.fn))
	}
	return env
}

// Name labels the frame for tracing
func (env *Environment) Name(name string) *Environment {
	env.name = name
	return env
}

// Parent returns the enclosing frame, nil for a root frame
func (env *Environment) Parent() *Environment {
	return env.parent
}

// Lookup resolves sym starting at this frame and walking up to the root.
func (env *Environment) Lookup(sym *ast.Symbol) (ast.Value, bool) {
	for e := env; e != nil; e = e.parent {
		if value, ok := e.bindings[sym]; ok {
			return value, true
		}
	}
	return nil, false
}

// Bind inserts or overwrites a binding in this frame only.
func (env *Environment) Bind(sym *ast.Symbol, value ast.Value) {
	logger.Printf("env: %v -- %v -> %v", env, sym, value)
	env.bindings[sym] = value
}

// Names returns the sorted names visible from this frame
func (env *Environment) Names() []string {
	seen := map[*ast.Symbol]struct{}{}
	names := []string{}
	for e := env; e != nil; e = e.parent {
		for sym := range e.bindings {
			if _, ok := seen[sym]; ok {
				continue
			}
			seen[sym] = struct{}{}
			names = append(names, sym.Name())
		}
	}
	sort.Strings(names)
	return names
}

func (env *Environment) String() string {
	if env == nil {
		return "<nil>"
	}
	return fmt.Sprintf("[%v]: %q (%p)", env.id, env.name, env)
}
