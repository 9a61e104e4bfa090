package types

import "testing"

func TestInteger_DotHandler_DecimalLiteral(t *testing.T) {
	three := NewInteger("3")
	result, err := three.DotHandler()("14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := result.(*Rational)
	if !ok {
		t.Fatalf("expected *Rational, got %T", result)
	}
	if r.Num.Int64() != 157 || r.Den.Int64() != 50 {
		t.Fatalf("got %s, want 157/50", r)
	}
}

func TestInteger_DotHandler_LeadingZeroFraction(t *testing.T) {
	// 3.07 -> (3*100 + 7) / 100 = 307/100
	three := NewInteger("3")
	result, err := three.DotHandler()("07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := result.(*Rational)
	if !ok {
		t.Fatalf("expected *Rational, got %T", result)
	}
	if r.Num.Int64() != 307 || r.Den.Int64() != 100 {
		t.Fatalf("got %s, want 307/100", r)
	}
}

func TestInteger_Slash_ProducesRational(t *testing.T) {
	six := NewIntegerFromInt64(6)
	four := NewIntegerFromInt64(4)
	result, err := six.BinaryHandler("slash")(four)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := result.(*Rational)
	if !ok {
		t.Fatalf("expected *Rational, got %T", result)
	}
	if r.Num.Int64() != 3 || r.Den.Int64() != 2 {
		t.Fatalf("got %s, want 3/2", r)
	}
}

func TestInteger_Slash_ZeroDivision(t *testing.T) {
	one := NewIntegerFromInt64(1)
	zero := NewIntegerFromInt64(0)
	_, err := one.BinaryHandler("slash")(zero)
	if err == nil {
		t.Fatal("expected a ZeroDivisionError")
	}
}

func TestInteger_AssignSlash_ZeroDivision(t *testing.T) {
	one := NewIntegerFromInt64(1)
	zero := NewIntegerFromInt64(0)
	_, err := one.AssignHandler("slash")(zero)
	if err == nil {
		t.Fatal("expected a ZeroDivisionError")
	}
}

func TestInteger_AssignSlash_StaysInteger(t *testing.T) {
	seven := NewIntegerFromInt64(7)
	two := NewIntegerFromInt64(2)
	result, err := seven.AssignHandler("slash")(two)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := result.(*Integer)
	if !ok {
		t.Fatalf("expected */=/ to stay *Integer, got %T", result)
	}
	if r.Value.Int64() != 3 {
		t.Fatalf("got %s, want 3", r)
	}
}

func TestInteger_ComparisonAgainstRational(t *testing.T) {
	one := NewIntegerFromInt64(1)
	half, _ := NewRational(big64(1), big64(2))
	result, err := one.ComparisonHandler("greater")(half)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != True {
		t.Fatalf("expected 1 > 1/2, got %s", result)
	}
}
