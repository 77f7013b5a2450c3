package crisp

import (
	"bytes"
	"errors"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/crisp/ast"
	"github.com/xiam/crisp/lexer"
	"github.com/xiam/crisp/parser"
)

func evalLine(t *testing.T, in *Interpreter, line string) ast.Value {
	t.Helper()

	v, err := in.EvalLine(line)
	assert.NoError(t, err, line)
	return v
}

func TestEvalPrint(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`42`, `42`},
		{`-7`, `-7`},
		{`#t`, `True`},
		{`#f`, `False`},
		{`#\a`, `#\a`},
		{`"hi"`, `hi`},
		{`()`, `()`},
		{``, ``},

		{`(quote (1 2 3))`, `(1 2 3)`},
		{`'foo`, `foo`},
		{`'(add 1 2)`, `(add 1 2)`},

		{`(if 0 1 2)`, `1`},
		{`(if #f 1 2)`, `2`},
		{`(if #t 1 2)`, `1`},
		{`(if "" 1 2)`, `1`},
		{`(if '() 1 2)`, `1`},
		{`(if #\a 1 2)`, `1`},
		{`(if #f 1)`, ``},

		{`(let ((x 1)) (let ((x 2) (y x)) y))`, `1`},
		{`(let ((x 1) (y 2)) x y)`, `2`},
		{`(let () 5)`, `5`},
		{`(let ((x 1)))`, ``},

		{`((lambda (x y) (add x y)) 3 4)`, `7`},
		{`((lambda () 1))`, `1`},
		{`((lambda (x)) 1)`, ``},
		{`((lambda args args) 1 2 3)`, `(1 2 3)`},
		{`((lambda args args))`, `()`},
		{`((lambda (f) (f 1 2)) add)`, `3`},
		{`((if #t add addxy) 1 2)`, `3`},
		{`(((lambda (x) (lambda (y) (add x y))) 1) 2)`, `3`},

		{`(add)`, `0`},
		{`(add 1 2 3 4 5)`, `15`},
		{`(add -1 1)`, `0`},
		{`(add2ormore 1 2)`, `3`},
		{`(add2ormore 1 2 3)`, `6`},
		{`(addxy 2 3)`, `5`},
		{`(add (add 1 2) (addxy 3 4))`, `10`},

		{`(quasiquote (1 (unquote (add 1 1)) 3))`, `(1 2 3)`},
		{"`(1 ,(add 1 1) 3)", `(1 2 3)`},
		{"`(a (b ,(addxy 1 2)) c)", `(a (b 3) c)`},
		{"`x", `x`},
		{"`()", `()`},
		{"`(1 ,'(2 3))", `(1 (2 3))`},

		{`(cons 1 2)`, `(1 . 2)`},
		{`(cons 1 '())`, `(1)`},
		{`(cons 1 (cons 2 '()))`, `(1 2)`},
		{`(car '(1 2))`, `1`},
		{`(cdr '(1 2))`, `(2)`},
		{`(list 1 "a" #\b)`, `(1 a #\b)`},
		{`(list)`, `()`},

		{`add`, `#<procedure>`},
		{`(lambda (x) x)`, `#<procedure>`},
	}

	in := New()
	for i := range testCases {
		v := evalLine(t, in, testCases[i].In)
		assert.Equal(t, testCases[i].Out, ast.Encode(v), testCases[i].In)
	}
}

func TestQuoteIsUnevaluated(t *testing.T) {
	in := New()

	v := evalLine(t, in, `(quote (1 2 3))`)
	literal, err := parser.ReadLine(`(1 2 3)`)
	assert.NoError(t, err)
	assert.True(t, ast.Equal(literal, v))

	v = evalLine(t, in, `'undefined-symbol`)
	assert.True(t, v == ast.Intern("undefined-symbol"))
}

func TestOnlyFalseIsFalsy(t *testing.T) {
	in := New()

	for _, cond := range []string{`0`, `""`, `'()`, `#\a`, `#t`, `'sym`, `add`} {
		v := evalLine(t, in, `(if `+cond+` 'yes 'no)`)
		assert.True(t, v == ast.Intern("yes"), cond)
	}

	v := evalLine(t, in, `(if #f 'yes 'no)`)
	assert.True(t, v == ast.Intern("no"))
}

func TestClosureCapture(t *testing.T) {
	in := New()

	assert.True(t, evalLine(t, in, `(define make-adder (lambda (n) (lambda (x) (add x n))))`) == ast.Void)
	evalLine(t, in, `(define add5 (make-adder 5))`)
	assert.Equal(t, ast.Fixnum(8), evalLine(t, in, `(add5 3)`))

	evalLine(t, in, `(define f (let ((y 10)) (lambda (x) (add x y))))`)
	assert.Equal(t, ast.Fixnum(11), evalLine(t, in, `(f 1)`))

	evalLine(t, in, `(define y 100)`)
	assert.Equal(t, ast.Fixnum(11), evalLine(t, in, `(f 1)`))
}

func TestLexicalScope(t *testing.T) {
	in := New()

	evalLine(t, in, `(define g (lambda () z))`)

	_, err := in.EvalLine(`((lambda (z) (g)) 1)`)
	assert.True(t, errors.Is(err, ErrUnboundSymbol), "%v", err)
}

func TestDefineAndSet(t *testing.T) {
	in := New()

	assert.True(t, evalLine(t, in, `(define x 1)`) == ast.Void)
	assert.Equal(t, ast.Fixnum(1), evalLine(t, in, `x`))

	assert.True(t, evalLine(t, in, `(set! x 2)`) == ast.Void)
	assert.Equal(t, ast.Fixnum(2), evalLine(t, in, `x`))

	_, err := in.EvalLine(`(set! nope 1)`)
	assert.True(t, errors.Is(err, ErrSetUnbound))

	_, err = in.EvalLine(`nope`)
	assert.True(t, errors.Is(err, ErrUnboundSymbol))
}

func TestSetBindsInCurrentFrame(t *testing.T) {
	in := New()

	evalLine(t, in, `(define counter 1)`)
	evalLine(t, in, `(define bump (lambda () (set! counter 5) counter))`)

	assert.Equal(t, ast.Fixnum(5), evalLine(t, in, `(bump)`))
	assert.Equal(t, ast.Fixnum(1), evalLine(t, in, `counter`))
}

func TestDefineIsLocal(t *testing.T) {
	in := New()

	assert.Equal(t, ast.Fixnum(2), evalLine(t, in, `(let ((a 1)) (define b 2) b)`))

	_, err := in.EvalLine(`b`)
	assert.True(t, errors.Is(err, ErrUnboundSymbol))
}

func TestEvaluationErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`undefined-thing`, ErrUnboundSymbol},
		{`(undefined-fn 1)`, ErrUnboundSymbol},
		{`(if undefined-x 1 2)`, ErrUnboundSymbol},

		{`(add2ormore 1)`, ErrArity},
		{`(add2ormore)`, ErrArity},
		{`((lambda (x y) x) 1)`, ErrArity},
		{`((lambda (x) x) 1 2)`, ErrArity},
		{`(cons 1)`, ErrArity},

		{`(add 1 #t)`, ErrWrongType},
		{`(add "1")`, ErrWrongType},
		{`(add2ormore 1 2 'three)`, ErrWrongType},
		{`(car 1)`, ErrWrongType},
		{`(cdr '())`, ErrWrongType},

		{`(1 2 3)`, ErrNotApplicable},
		{`("f" 1)`, ErrNotApplicable},
		{`(let ((x 1)) (x))`, ErrNotApplicable},
		{`((quote x) 1)`, ErrUnboundSymbol},

		{`(unquote 1)`, ErrUnquoteOutside},
		{`,x`, ErrUnquoteOutside},

		{`quote`, ErrNotInCallPosition},
		{`(list if)`, ErrNotInCallPosition},

		{`(quote)`, ErrMalformed},
		{`(quote 1 2)`, ErrMalformed},
		{`(define 1 2)`, ErrMalformed},
		{`(define x)`, ErrMalformed},
		{`(set! 1 2)`, ErrMalformed},
		{`(if)`, ErrMalformed},
		{`(if 1 2 3 4)`, ErrMalformed},
		{`(let)`, ErrMalformed},
		{`(let ((1 2)) 1)`, ErrMalformed},
		{`(let (x) 1)`, ErrMalformed},
		{`(let x 1)`, ErrMalformed},
		{`(lambda)`, ErrMalformed},
		{`(lambda (1) 1)`, ErrMalformed},
		{`(lambda 1 1)`, ErrMalformed},
		{`(quasiquote)`, ErrMalformed},
		{"`(1 (unquote))", ErrMalformed},
	}

	in := New()
	for i := range testCases {
		v, err := in.EvalLine(testCases[i].In)
		assert.Nil(t, v, testCases[i].In)

		var evalErr *EvaluationError
		assert.True(t, errors.As(err, &evalErr), "%q: %v", testCases[i].In, err)
		assert.True(t, errors.Is(err, testCases[i].Err), "%q: %v", testCases[i].In, err)
	}
}

func TestEvaluationErrorExpr(t *testing.T) {
	in := New()

	_, err := in.EvalLine(`(add 1 (car 5))`)

	var evalErr *EvaluationError
	if assert.True(t, errors.As(err, &evalErr)) {
		assert.Equal(t, `(car 5)`, ast.Encode(evalErr.Expr))
		assert.Contains(t, err.Error(), `in (car 5)`)
	}
}

func TestEvalBareProcedure(t *testing.T) {
	env := NewRootEnvironment()

	_, err := Eval(NewLambda(ast.EmptyList, env, ast.EmptyList), env)
	assert.True(t, errors.Is(err, ErrNotInCallPosition))

	form, _ := env.Lookup(ast.Intern("quote"))
	_, err = Eval(form, env)
	assert.True(t, errors.Is(err, ErrNotInCallPosition))

	_, err = Eval(nil, env)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestEvalProcedureInHeadPosition(t *testing.T) {
	env := NewRootEnvironment()
	add, _ := env.Lookup(ast.Intern("add"))

	v, err := Eval(ast.List(add, ast.Fixnum(1), ast.Fixnum(2)), env)
	assert.NoError(t, err)
	assert.Equal(t, ast.Fixnum(3), v)

	_, err = Eval(ast.Cons(add, ast.Fixnum(1)), env)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestReadErrorsLeaveNoValue(t *testing.T) {
	in := New()

	testCases := []struct {
		In    string
		Lexer bool
	}{
		{`"unterminated`, true},
		{`(add 1 2`, false},
		{`foo#bar`, true},
	}

	for i := range testCases {
		v, err := in.EvalLine(testCases[i].In)
		assert.Nil(t, v)

		var lexErr *lexer.Error
		var parseErr *parser.Error
		assert.Equal(t, testCases[i].Lexer, errors.As(err, &lexErr), testCases[i].In)
		assert.Equal(t, !testCases[i].Lexer, errors.As(err, &parseErr), testCases[i].In)
	}
}

func TestDefnAndDefform(t *testing.T) {
	Defn("double", Formals("n"), func(env *Environment) (ast.Value, error) {
		n, err := Arg(env, "n")
		if err != nil {
			return nil, err
		}
		return sum(n, n)
	})
	Defform("seq", func(args ast.Value, env *Environment) (ast.Value, error) {
		return evalSequence(args, env)
	})

	in := New()
	assert.Equal(t, ast.Fixnum(42), evalLine(t, in, `(double 21)`))
	assert.Equal(t, ast.Fixnum(3), evalLine(t, in, `(seq 1 2 3)`))

	_, err := in.EvalLine(`(double #t)`)
	assert.True(t, errors.Is(err, ErrWrongType))
}

func TestTracing(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(ioutil.Discard)

	in := New()
	evalLine(t, in, `(if #t (add 1 2) 0)`)

	assert.Contains(t, buf.String(), "FORM: if")
	assert.Contains(t, buf.String(), "APPLY: add")
}
