// Package evaluator walks the AST produced by internal/parser, threading
// an internal/runtime.Context through every node and dispatching
// operators through internal/types' named-handler protocol (spec §4.5).
package evaluator

import (
	"github.com/jleeming/exprlang/internal/ast"
	"github.com/jleeming/exprlang/internal/errors"
	"github.com/jleeming/exprlang/internal/lexer"
	"github.com/jleeming/exprlang/internal/runtime"
	"github.com/jleeming/exprlang/internal/types"
)

// Evaluator walks an AST against a single Context. It is not safe for
// concurrent use.
type Evaluator struct {
	Context *runtime.Context
}

// New returns an Evaluator with a fresh root-seeded Context.
func New() *Evaluator {
	return &Evaluator{Context: NewSeededContext()}
}

// NewSeededContext returns a Context whose root frame carries the
// built-in type handles (spec §6.2's "host seeding").
func NewSeededContext() *runtime.Context {
	ctx := runtime.NewContext()
	ctx.Declare("int", types.TypeType, types.IntType, true)
	ctx.Declare("rational", types.TypeType, types.RationalType, true)
	ctx.Declare("bool", types.TypeType, types.BoolType, true)
	return ctx
}

// EvalProgram evaluates every top-level statement of block in order and
// returns one Value per statement (spec §6.2).
func (e *Evaluator) EvalProgram(block *ast.Block) ([]types.Value, error) {
	results := make([]types.Value, 0, len(block.Statements))
	for _, stmt := range block.Statements {
		v, err := e.evalStatement(stmt)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// evalStatement evaluates one top-level-or-nested statement, returning
// the value it contributes to the enclosing Block's result list.
func (e *Evaluator) evalStatement(node ast.Node) (types.Value, error) {
	switch n := node.(type) {
	case *ast.Block:
		return e.evalBlock(n)
	case *ast.VarDecl:
		return e.evalVarDecl(n)
	case *ast.VarAssign:
		return e.evalVarAssign(n)
	case *ast.NonLocal:
		e.Context.Nonlocal(n.Name)
		return types.Undefined, nil
	case *ast.For:
		return e.evalFor(n)
	case *ast.While:
		return e.evalWhile(n)
	case *ast.If:
		return e.evalIf(n)
	case *ast.ExprStatement:
		return e.evalExpr(n.Expr)
	case *ast.AssignOp:
		return e.evalAssignOp(n)
	case *ast.IncDecOp:
		return e.evalIncDecOp(n)
	}
	return nil, errors.NewSyntaxError(node.Pos(), "unsupported statement %T", node)
}

// evalBlock evaluates a nested block in its own scope; its own result
// (the list of its children's values) is discarded by design — only the
// value of the last evaluated child is meaningful as a statement result,
// matching a block used in statement position producing the value of its
// last entry, or undefined if empty.
func (e *Evaluator) evalBlock(block *ast.Block) (types.Value, error) {
	var last types.Value = types.Undefined
	err := e.Context.Scoped(func() error {
		for _, stmt := range block.Statements {
			v, err := e.evalStatement(stmt)
			if err != nil {
				return err
			}
			last = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return last, nil
}

func (e *Evaluator) evalVarDecl(decl *ast.VarDecl) (types.Value, error) {
	var initVal types.Value = types.Undefined
	if decl.Init != nil {
		v, err := e.evalExpr(decl.Init)
		if err != nil {
			return nil, err
		}
		initVal = v
	}

	var declaredType *types.Type
	if decl.Type != nil {
		typeVal, err := e.Context.Get(decl.Position, *decl.Type)
		if err != nil {
			return nil, err
		}
		t, ok := typeVal.(*types.Type)
		if !ok {
			return nil, errors.NewTypeError(decl.Position, "%q is not a type", *decl.Type)
		}
		declaredType = t
	} else {
		if initVal == types.Undefined {
			return nil, errors.NewTypeError(decl.Position, "cannot infer type of undefined")
		}
		declaredType = initVal.Type()
	}

	e.Context.Declare(decl.Name, declaredType, initVal, decl.Const)
	return initVal, nil
}

func (e *Evaluator) evalVarAssign(assign *ast.VarAssign) (types.Value, error) {
	value, err := e.evalExpr(assign.Value)
	if err != nil {
		return nil, err
	}
	if err := e.Context.Set(assign.Position, assign.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (e *Evaluator) evalAssignOp(op *ast.AssignOp) (types.Value, error) {
	current, err := e.Context.Get(op.Position, op.Target)
	if err != nil {
		return nil, err
	}
	rhs, err := e.evalExpr(op.Value)
	if err != nil {
		return nil, err
	}
	result, err := e.dispatchAssign(op.Position, op.Name, current, rhs)
	if err != nil {
		return nil, wrapPos(err, op.Position)
	}
	if err := e.Context.Set(op.Position, op.Target, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Evaluator) evalIncDecOp(op *ast.IncDecOp) (types.Value, error) {
	current, err := e.Context.Get(op.Position, op.Target)
	if err != nil {
		return nil, err
	}
	handlers, ok := current.(types.Handlers)
	if !ok {
		return nil, errors.NewTypeError(op.Position, "%s has no %s handler", current.Type(), op.Name)
	}
	fn := handlers.IncDecHandler(op.Name)
	if fn == nil {
		return nil, errors.NewTypeError(op.Position, "%s does not support %s", current.Type(), op.Symbol)
	}
	result, err := fn()
	if err != nil {
		return nil, wrapPos(err, op.Position)
	}
	if err := e.Context.Set(op.Position, op.Target, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Evaluator) evalFor(f *ast.For) (types.Value, error) {
	return types.Null, e.Context.Scoped(func() error {
		if _, err := e.evalStatement(f.Init); err != nil {
			return err
		}
		for {
			cond, err := e.evalExpr(f.Check)
			if err != nil {
				return err
			}
			truth, err := truthy(f.Position, cond)
			if err != nil {
				return err
			}
			if !truth {
				return nil
			}
			if err := e.Context.Scoped(func() error {
				_, err := e.evalStatement(f.Body)
				return err
			}); err != nil {
				return err
			}
			if _, err := e.evalExpr(f.Change); err != nil {
				return err
			}
		}
	})
}

func (e *Evaluator) evalWhile(w *ast.While) (types.Value, error) {
	return types.Null, e.Context.Scoped(func() error {
		for {
			cond, err := e.evalExpr(w.Check)
			if err != nil {
				return err
			}
			truth, err := truthy(w.Position, cond)
			if err != nil {
				return err
			}
			if !truth {
				return nil
			}
			if err := e.Context.Scoped(func() error {
				_, err := e.evalStatement(w.Body)
				return err
			}); err != nil {
				return err
			}
		}
	})
}

func (e *Evaluator) evalIf(n *ast.If) (types.Value, error) {
	cond, err := e.evalExpr(n.Check)
	if err != nil {
		return nil, err
	}
	truth, err := truthy(n.Position, cond)
	if err != nil {
		return nil, err
	}
	branch := n.Body
	if !truth {
		branch = n.Else
	}
	err = e.Context.Scoped(func() error {
		_, err := e.evalStatement(branch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return types.Null, nil
}

// truthy reads the primitive value field of a Boolean result; any other
// type is a TypeError (spec §4.5: comparisons are the only producers of
// booleans in the current grammar).
func truthy(pos lexer.Position, v types.Value) (bool, error) {
	b, ok := v.(*types.Boolean)
	if !ok {
		return false, errors.NewTypeError(pos, "expected a bool condition, got %s", v.Type())
	}
	return b.Value, nil
}

// wrapPos attaches pos to err if err is an *errors.InterpreterError that
// does not already carry a position (e.g. a ZeroDivisionError raised deep
// inside internal/types, which has no access to source positions).
func wrapPos(err error, pos lexer.Position) error {
	if ie, ok := err.(*errors.InterpreterError); ok {
		return ie.WithPos(pos)
	}
	return err
}
