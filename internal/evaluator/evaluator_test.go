package evaluator

import (
	"testing"

	"github.com/jleeming/exprlang/internal/parser"
	"github.com/jleeming/exprlang/internal/types"
)

func evalLast(t *testing.T, src string) types.Value {
	t.Helper()
	block, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	results, err := New().EvalProgram(block)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	return results[len(results)-1]
}

func TestScenario1_IntegerAddition(t *testing.T) {
	v := evalLast(t, "1 + 2;")
	if v.String() != "3" || v.Type() != types.IntType {
		t.Fatalf("got %s (%s), want Integer 3", v, v.Type())
	}
}

func TestScenario2_DecimalAddition(t *testing.T) {
	v := evalLast(t, "0.1 + 0.2;")
	r, ok := v.(*types.Rational)
	if !ok {
		t.Fatalf("expected *types.Rational, got %T", v)
	}
	if r.Num.Int64() != 3 || r.Den.Int64() != 10 {
		t.Fatalf("got %s, want 3/10", r)
	}
}

func TestScenario3_ForLoopDoubling(t *testing.T) {
	v := evalLast(t, "int a = 1; for (int x = 0; x < 10; x++) { a *= 2; } a;")
	if v.String() != "1024" {
		t.Fatalf("got %s, want 1024", v)
	}
}

func TestScenario4_WhileLoopDoubling(t *testing.T) {
	v := evalLast(t, "int a = 1; while (a < 1000) a *= 2; a;")
	if v.String() != "1024" {
		t.Fatalf("got %s, want 1024", v)
	}
}

func TestScenario5_DotDecimalFromVariables(t *testing.T) {
	v := evalLast(t, "int three = 3; rational pi = three.14; pi;")
	r, ok := v.(*types.Rational)
	if !ok {
		t.Fatalf("expected *types.Rational, got %T", v)
	}
	if r.Num.Int64() != 157 || r.Den.Int64() != 50 {
		t.Fatalf("got %s, want 157/50", r)
	}
}

func TestScenario6_DigitNameShadowedByLiteral(t *testing.T) {
	v := evalLast(t, "int 3 = 0; int x; { x = 3; } x;")
	if v.String() != "3" {
		t.Fatalf("got %s, want 3 (the literal, not the outer var)", v)
	}
}

func TestScenario7_NonlocalReachesOuterVar(t *testing.T) {
	v := evalLast(t, "int 3 = 0; int x; { nonlocal 3; x = 3; } x;")
	if v.String() != "0" {
		t.Fatalf("got %s, want 0 (the outer var via nonlocal)", v)
	}
}

func TestScenario8_AutoInfersRationalFromDivision(t *testing.T) {
	v := evalLast(t, "auto pi = 22 / 7; pi;")
	r, ok := v.(*types.Rational)
	if !ok {
		t.Fatalf("expected *types.Rational, got %T", v)
	}
	if r.Num.Int64() != 22 || r.Den.Int64() != 7 {
		t.Fatalf("got %s, want 22/7", r)
	}
}

func TestZeroDivision_IntegerSlash(t *testing.T) {
	block, err := parser.Parse("2 / 0;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := New().EvalProgram(block); err == nil {
		t.Fatal("expected a ZeroDivisionError")
	}
}

func TestZeroDivision_RationalOverZero(t *testing.T) {
	block, err := parser.Parse("2.0 / 0.0;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := New().EvalProgram(block); err == nil {
		t.Fatal("expected a ZeroDivisionError")
	}
}

func TestVarDecl_AutoUndefinedInitializerFails(t *testing.T) {
	block, err := parser.Parse("auto x = undefined;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := New().EvalProgram(block); err == nil {
		t.Fatal("expected a TypeError for an uninferrable auto declaration")
	}
}

func TestConstReassignmentFails(t *testing.T) {
	block, err := parser.Parse("const int x = 1; x = 2;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := New().EvalProgram(block); err == nil {
		t.Fatal("expected a NameError reassigning a const")
	}
}

func TestIfElse_TakesElseBranch(t *testing.T) {
	v := evalLast(t, "int x = 0; if (x is 1) { x = 10; } else { x = 20; } x;")
	if v.String() != "20" {
		t.Fatalf("got %s, want 20", v)
	}
}

func TestComparisonReversibility(t *testing.T) {
	less := evalLast(t, "1 < 2;")
	greater := evalLast(t, "2 > 1;")
	if less.String() != greater.String() {
		t.Fatalf("expected a<b == b>a, got %s vs %s", less, greater)
	}
}

func TestUnsupportedOperandsFailWithTypeError(t *testing.T) {
	block, err := parser.Parse("true + 1;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := New().EvalProgram(block); err == nil {
		t.Fatal("expected a TypeError adding a bool to an int")
	}
}
