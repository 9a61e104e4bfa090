package evaluator

import (
	"github.com/jleeming/exprlang/internal/ast"
	"github.com/jleeming/exprlang/internal/errors"
	"github.com/jleeming/exprlang/internal/lexer"
	"github.com/jleeming/exprlang/internal/types"
)

// evalExpr evaluates an expression node to a Value.
func (e *Evaluator) evalExpr(node ast.Node) (types.Value, error) {
	switch n := node.(type) {
	case *ast.VarRef:
		return e.resolveVarRef(n)
	case *ast.BinaryOp:
		return e.evalBinaryOp(n)
	case *ast.ComparisonOp:
		return e.evalComparisonOp(n)
	case *ast.UnaryOp:
		return e.evalUnaryOp(n)
	case *ast.IncDecOp:
		return e.evalIncDecOp(n)
	case *ast.AssignOp:
		return e.evalAssignOp(n)
	case *ast.Dot:
		return e.evalDot(n)
	}
	return nil, errors.NewSyntaxError(node.Pos(), "unsupported expression %T", node)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// resolveVarRef implements the VarRef name resolution order from spec
// §4.4: top frame first (honoring the nonlocal marker), then digit-only
// literal, then the true/false/null/undefined singletons, then outer
// frames.
func (e *Evaluator) resolveVarRef(ref *ast.VarRef) (types.Value, error) {
	name := ref.Name

	value, nonlocal, ok := e.Context.TopFrameLookup(name)
	if ok {
		if !nonlocal {
			return value, nil
		}
		// Marked nonlocal: skip straight to outer frames, bypassing the
		// digit-literal and singleton fallbacks entirely.
		return e.Context.LookupBelowTop(ref.Position, name)
	}

	if isAllDigits(name) {
		return types.NewInteger(name), nil
	}
	switch name {
	case "true":
		return types.True, nil
	case "false":
		return types.False, nil
	case "null":
		return types.Null, nil
	case "undefined":
		return types.Undefined, nil
	}

	return e.Context.LookupBelowTop(ref.Position, name)
}

func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp) (types.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	result, err := e.dispatchBinary(n.Position, n.Name, left, right)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.NewTypeError(n.Position, "unsupported operand types for %s: %s and %s", n.Symbol, left.Type(), right.Type())
	}
	return result, nil
}

func (e *Evaluator) evalComparisonOp(n *ast.ComparisonOp) (types.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	if handlers, ok := left.(types.Handlers); ok {
		if fn := handlers.ComparisonHandler(n.Name); fn != nil {
			result, err := fn(right)
			if err != nil {
				return nil, wrapPos(err, n.Position)
			}
			if result != types.NotImplemented {
				return result, nil
			}
		}
	}
	if handlers, ok := right.(types.Handlers); ok {
		if fn := handlers.ComparisonHandler(n.BackName); fn != nil {
			result, err := fn(left)
			if err != nil {
				return nil, wrapPos(err, n.Position)
			}
			if result != types.NotImplemented {
				return result, nil
			}
		}
	}
	return nil, errors.NewTypeError(n.Position, "unsupported operand types for %s: %s and %s", n.Symbol, left.Type(), right.Type())
}

func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp) (types.Value, error) {
	child, err := e.evalExpr(n.Child)
	if err != nil {
		return nil, err
	}
	handlers, ok := child.(types.Handlers)
	if !ok {
		return nil, errors.NewTypeError(n.Position, "%s has no unary %s", child.Type(), n.Symbol)
	}
	fn := handlers.UnaryHandler(n.Name)
	if fn == nil {
		return nil, errors.NewTypeError(n.Position, "%s does not support unary %s", child.Type(), n.Symbol)
	}
	result, err := fn()
	if err != nil {
		return nil, wrapPos(err, n.Position)
	}
	return result, nil
}

func (e *Evaluator) evalDot(n *ast.Dot) (types.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	handlers, ok := left.(types.Handlers)
	if !ok {
		return nil, errors.NewTypeError(n.Position, "%s has no dot handler", left.Type())
	}
	fn := handlers.DotHandler()
	if fn == nil {
		return nil, errors.NewTypeError(n.Position, "%s does not support .", left.Type())
	}

	var right any
	if n.RightIsRef {
		ref := n.Right.(*ast.VarRef)
		right = ref.Name
	} else {
		v, err := e.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		right = v
	}

	result, err := fn(right)
	if err != nil {
		return nil, wrapPos(err, n.Position)
	}
	if result == types.NotImplemented {
		return nil, errors.NewTypeError(n.Position, "%s has no member %v", left.Type(), right)
	}
	return result, nil
}

// dispatchBinary implements the binary-handler-with-reverse-fallback
// protocol for plain binary operators (spec §4.3): try the left
// operand's forward handler, then the right operand's reverse handler.
func (e *Evaluator) dispatchBinary(pos lexer.Position, name string, left, right types.Value) (types.Value, error) {
	if handlers, ok := left.(types.Handlers); ok {
		if fn := handlers.BinaryHandler(name); fn != nil {
			result, err := fn(right)
			if err != nil {
				return nil, wrapPos(err, pos)
			}
			if result != types.NotImplemented {
				return result, nil
			}
		}
	}
	if handlers, ok := right.(types.Handlers); ok {
		if fn := handlers.ReverseBinaryHandler(name); fn != nil {
			result, err := fn(left)
			if err != nil {
				return nil, wrapPos(err, pos)
			}
			if result != types.NotImplemented {
				return result, nil
			}
		}
	}
	return nil, nil
}

// dispatchAssign implements compound assignment dispatch: the handler is
// looked up only on the current (left-hand) value, per spec §4.3's
// `assignment_operator_<name>` — there is no reverse fallback for
// compound assignment.
func (e *Evaluator) dispatchAssign(pos lexer.Position, name string, current, rhs types.Value) (types.Value, error) {
	handlers, ok := current.(types.Handlers)
	if !ok {
		return nil, errors.NewTypeError(pos, "%s has no %s assignment handler", current.Type(), name)
	}
	fn := handlers.AssignHandler(name)
	if fn == nil {
		return nil, errors.NewTypeError(pos, "%s does not support %s=", current.Type(), name)
	}
	result, err := fn(rhs)
	if err != nil {
		return nil, wrapPos(err, pos)
	}
	if result == types.NotImplemented {
		return nil, errors.NewTypeError(pos, "unsupported operand types for %s=: %s and %s", name, current.Type(), rhs.Type())
	}
	return result, nil
}
