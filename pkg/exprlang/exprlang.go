// Package exprlang is the public facade over the interpreter: a host
// embeds an Engine, feeds it source text, and gets back one Value per
// top-level statement (spec §6.2).
package exprlang

import (
	"github.com/jleeming/exprlang/internal/ast"
	"github.com/jleeming/exprlang/internal/evaluator"
	"github.com/jleeming/exprlang/internal/parser"
	"github.com/jleeming/exprlang/internal/runtime"
	"github.com/jleeming/exprlang/internal/types"
)

// Value is the evaluated result of one statement. Its concrete type is
// one of *types.Integer, *types.Rational, *types.Boolean, or one of the
// Undefined/Null/Type singletons.
type Value = types.Value

// Engine holds a persistent Context across calls to Evaluate, so a host
// can feed it a program incrementally — a REPL, or a long-lived script
// session — and have later calls see earlier declarations (spec §5's
// "shared resources" note).
type Engine struct {
	eval *evaluator.Evaluator
}

// New returns an Engine with a fresh, host-seeded Context: the builtin
// type handles `int`, `rational`, `bool` are already declared in its
// root frame.
func New() *Engine {
	return &Engine{eval: evaluator.New()}
}

// Context exposes the engine's environment stack directly, for hosts
// that want to seed additional bindings before evaluating anything.
func (e *Engine) Context() *runtime.Context {
	return e.eval.Context
}

// Evaluate tokenizes, parses, and evaluates source against the engine's
// existing Context, returning one Value per top-level statement. A
// declaration with no expression value contributes types.Undefined; a
// for/while/if statement contributes types.Null.
func (e *Engine) Evaluate(source string) ([]Value, error) {
	block, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return e.eval.EvalProgram(block)
}

// Parse exposes the parser directly, for hosts that want the AST (e.g.
// to feed internal/trace) without evaluating it.
func Parse(source string) (*ast.Block, error) {
	return parser.Parse(source)
}

// Evaluate is a convenience one-shot entry point: it builds a fresh
// Engine, evaluates source once, and discards the Context. Most hosts
// that run more than one snippet should keep their own Engine instead.
func Evaluate(source string) ([]Value, error) {
	return New().Evaluate(source)
}
