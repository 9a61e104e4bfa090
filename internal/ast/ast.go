// Package ast defines the abstract syntax tree produced by the parser.
// Every node kind mirrors a production in the operator-precedence grammar;
// none of them carry evaluation logic themselves — that lives in
// internal/evaluator, which type-switches over these nodes.
package ast

import (
	"fmt"
	"strings"

	"github.com/jleeming/exprlang/internal/lexer"
)

// Node is the common interface implemented by every AST node.
type Node interface {
	Pos() lexer.Position
	String() string
}

// Block is an ordered list of statements; it is also the root node
// returned by the parser for a whole program.
type Block struct {
	Position   lexer.Position
	Statements []Node
}

func (b *Block) Pos() lexer.Position { return b.Position }
func (b *Block) String() string {
	var parts []string
	for _, s := range b.Statements {
		parts = append(parts, s.String())
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// VarDecl declares a new variable in the top frame, optionally with an
// explicit type name, optional initializer, and const flag. A nil Type
// means "auto" — the type must be inferred from Init.
type VarDecl struct {
	Position lexer.Position
	Name     string
	Type     *string // nil for `auto`
	Init     Node    // nil if no initializer
	Const    bool
}

func (v *VarDecl) Pos() lexer.Position { return v.Position }
func (v *VarDecl) String() string {
	typ := "auto"
	if v.Type != nil {
		typ = *v.Type
	}
	if v.Const {
		typ = "const " + typ
	}
	if v.Init != nil {
		return fmt.Sprintf("%s %s = %s;", typ, v.Name, v.Init)
	}
	return fmt.Sprintf("%s %s;", typ, v.Name)
}

// VarAssign is a plain `name = expr;` assignment.
type VarAssign struct {
	Position lexer.Position
	Name     string
	Value    Node
}

func (v *VarAssign) Pos() lexer.Position { return v.Position }
func (v *VarAssign) String() string      { return fmt.Sprintf("%s = %s;", v.Name, v.Value) }

// VarRef refers to a bare identifier, resolved per the lookup rules in
// the evaluator's resolveVarRef (Context.TopFrameLookup first, then a
// digit-only literal or a singleton, then Context.LookupBelowTop).
type VarRef struct {
	Position lexer.Position
	Name     string
}

func (v *VarRef) Pos() lexer.Position { return v.Position }
func (v *VarRef) String() string      { return v.Name }

// NonLocal marks Name as nonlocal for the remainder of the current block,
// forcing lookups of Name to skip the top frame.
type NonLocal struct {
	Position lexer.Position
	Name     string
}

func (n *NonLocal) Pos() lexer.Position { return n.Position }
func (n *NonLocal) String() string      { return fmt.Sprintf("nonlocal %s;", n.Name) }

// BinaryOp is a left/right binary operator node (+, -, *, /). Name is the
// handler name used for dispatch (see internal/types).
type BinaryOp struct {
	Position lexer.Position
	Name     string
	Symbol   string
	Left     Node
	Right    Node
}

func (b *BinaryOp) Pos() lexer.Position { return b.Position }
func (b *BinaryOp) String() string      { return fmt.Sprintf("(%s %s %s)", b.Left, b.Symbol, b.Right) }

// ComparisonOp is a binary comparison; BackName is the handler name tried
// on the right operand when the left operand has no handler (e.g. `less`
// mirrors to `greater`).
type ComparisonOp struct {
	Position lexer.Position
	Name     string
	BackName string
	Symbol   string
	Left     Node
	Right    Node
}

func (c *ComparisonOp) Pos() lexer.Position { return c.Position }
func (c *ComparisonOp) String() string      { return fmt.Sprintf("(%s %s %s)", c.Left, c.Symbol, c.Right) }

// UnaryOp is a prefix unary operator (unary +, unary -).
type UnaryOp struct {
	Position lexer.Position
	Name     string
	Symbol   string
	Child    Node
}

func (u *UnaryOp) Pos() lexer.Position { return u.Position }
func (u *UnaryOp) String() string      { return fmt.Sprintf("(%s%s)", u.Symbol, u.Child) }

// IncDecOp is the postfix `++`/`--` operator applied to a named variable.
type IncDecOp struct {
	Position lexer.Position
	Name     string // handler suffix: "increment" or "decrement"
	Symbol   string
	Target   string
}

func (i *IncDecOp) Pos() lexer.Position { return i.Position }
func (i *IncDecOp) String() string      { return fmt.Sprintf("%s%s", i.Target, i.Symbol) }

// AssignOp is a compound assignment (`+=`, `-=`, `*=`, `/=`) applied to a
// named variable.
type AssignOp struct {
	Position lexer.Position
	Name     string // handler suffix: "plus", "minus", "star", "slash"
	Symbol   string
	Target   string
	Value    Node
}

func (a *AssignOp) Pos() lexer.Position { return a.Position }
func (a *AssignOp) String() string {
	return fmt.Sprintf("%s %s= %s;", a.Target, a.Symbol, a.Value)
}

// Dot is the dual-purpose `.` operator: decimal-literal construction when
// the left operand evaluates to an Integer, prospectively member access
// otherwise. RightIsRef records whether Right was a bare VarRef (its name
// is passed as a string) or an evaluated sub-expression (passed as a
// Value) — see spec §4.3.
type Dot struct {
	Position   lexer.Position
	Left       Node
	Right      Node
	RightIsRef bool
}

func (d *Dot) Pos() lexer.Position { return d.Position }
func (d *Dot) String() string      { return fmt.Sprintf("%s.%s", d.Left, d.Right) }

// For is a C-style for loop: `for (init; check; change) body`.
type For struct {
	Position lexer.Position
	Init     Node
	Check    Node
	Change   Node
	Body     Node
}

func (f *For) Pos() lexer.Position { return f.Position }
func (f *For) String() string {
	return fmt.Sprintf("for (%s %s; %s) %s", f.Init, f.Check, f.Change, f.Body)
}

// While is `while (check) body`.
type While struct {
	Position lexer.Position
	Check    Node
	Body     Node
}

func (w *While) Pos() lexer.Position { return w.Position }
func (w *While) String() string      { return fmt.Sprintf("while (%s) %s", w.Check, w.Body) }

// If is `if (check) body` with an optional else body (an empty Block when
// absent).
type If struct {
	Position lexer.Position
	Check    Node
	Body     Node
	Else     Node
}

func (i *If) Pos() lexer.Position { return i.Position }
func (i *If) String() string      { return fmt.Sprintf("if (%s) %s else %s", i.Check, i.Body, i.Else) }

// ExprStatement wraps an expression used as a statement; its evaluated
// value is the statement's result.
type ExprStatement struct {
	Position lexer.Position
	Expr     Node
}

func (e *ExprStatement) Pos() lexer.Position { return e.Position }
func (e *ExprStatement) String() string      { return fmt.Sprintf("%s;", e.Expr) }
