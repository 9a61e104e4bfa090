package ast

import (
	"testing"

	"github.com/jleeming/exprlang/internal/lexer"
)

func TestVarDecl_String_Auto(t *testing.T) {
	decl := &VarDecl{Name: "x", Init: &VarRef{Name: "1"}}
	want := "auto x = 1;"
	if got := decl.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVarDecl_String_ConstExplicit(t *testing.T) {
	typ := "int"
	decl := &VarDecl{Name: "x", Type: &typ, Const: true, Init: &VarRef{Name: "1"}}
	want := "const int x = 1;"
	if got := decl.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBlock_String(t *testing.T) {
	b := &Block{Statements: []Node{
		&ExprStatement{Expr: &VarRef{Name: "1"}},
		&ExprStatement{Expr: &VarRef{Name: "2"}},
	}}
	want := "{ 1; 2; }"
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNodes_Pos(t *testing.T) {
	pos := lexer.Position{Line: 3, Column: 7}
	ref := &VarRef{Position: pos, Name: "x"}
	if ref.Pos() != pos {
		t.Errorf("got %v, want %v", ref.Pos(), pos)
	}
}
