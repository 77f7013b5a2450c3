package crisp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/xiam/crisp/ast"
	"github.com/xiam/crisp/parser"
)

// Interpreter owns a root environment and evaluates input against it.
type Interpreter struct {
	env *Environment
}

// New creates an interpreter with a fresh root environment
func New() *Interpreter {
	return &Interpreter{env: NewRootEnvironment()}
}

// Env returns the root environment of the interpreter
func (in *Interpreter) Env() *Environment {
	return in.env
}

// Eval evaluates a single value in the root environment
func (in *Interpreter) Eval(value ast.Value) (ast.Value, error) {
	return Eval(value, in.env)
}

// EvalLine reads one value out of line and evaluates it. A blank line
// evaluates to ast.Void.
func (in *Interpreter) EvalLine(line string) (ast.Value, error) {
	value, err := parser.ReadLine(line)
	if err != nil {
		return nil, err
	}
	return in.Eval(value)
}

// EvalString evaluates every value in src in order and returns their
// results. Nothing is returned if any read or evaluation fails.
func (in *Interpreter) EvalString(src string) ([]ast.Value, error) {
	values, err := parser.Parse([]byte(src))
	if err != nil {
		return nil, err
	}

	results := make([]ast.Value, 0, len(values))
	for i := range values {
		result, err := in.Eval(values[i])
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Run reads r one line at a time, evaluates each line and prints its result.
// Failures are reported and the loop resumes with the next line.
func (in *Interpreter) Run(r io.Reader, cfg Config) error {
	cfg = cfg.withDefaults()

	s := bufio.NewScanner(r)
	for s.Scan() {
		in.rep(cfg, s.Text())
	}
	return s.Err()
}

// rep reads, evaluates and prints a single line.
func (in *Interpreter) rep(cfg Config, line string) {
	value, err := parser.ReadLine(line)
	if err != nil {
		fmt.Fprintln(cfg.Err, err)
		return
	}

	if cfg.Dump && value != ast.Void {
		ast.Dump(cfg.Out, value)
	}

	result, err := in.Eval(value)
	if err != nil {
		fmt.Fprintln(cfg.Err, err)
		return
	}

	if result != ast.Void {
		fmt.Fprintln(cfg.Out, ast.Encode(result))
	}
}

// Config controls the read-eval-print loops.
type Config struct {
	// Prompt is displayed before every interactive line
	Prompt string
	// HistoryFile is read when the interactive loop starts and written back
	// when it ends, empty disables history persistence
	HistoryFile string
	// Dump prints the parsed tree of every line before evaluating it
	Dump bool

	Out io.Writer
	Err io.Writer
}

// DefaultPrompt is used when Config.Prompt is empty
const DefaultPrompt = "crisp> "

func (cfg Config) withDefaults() Config {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = cfg.Out
	}
	return cfg
}
