package types

import (
	"math/big"
	"testing"
)

func big64(v int64) *big.Int { return big.NewInt(v) }

func TestNewRational_AlwaysReduced(t *testing.T) {
	r, err := NewRational(big64(4), big64(8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Num.Int64() != 1 || r.Den.Int64() != 2 {
		t.Fatalf("got %s, want 1/2", r)
	}
}

func TestNewRational_NormalizesNegativeDenominator(t *testing.T) {
	r, err := NewRational(big64(1), big64(-2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Num.Int64() != -1 || r.Den.Int64() != 2 {
		t.Fatalf("got %s, want -1/2", r)
	}
}

func TestNewRational_ZeroDenominator(t *testing.T) {
	_, err := NewRational(big64(1), big64(0))
	if err == nil {
		t.Fatal("expected a ZeroDivisionError")
	}
}

func TestRational_Plus_Integer_Reversible(t *testing.T) {
	half, _ := NewRational(big64(1), big64(2))
	three := NewIntegerFromInt64(3)

	// half + three: Rational's own forward handler.
	a, err := half.BinaryHandler("plus")(three)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// three + half: Integer's forward handler bows out, so dispatch falls
	// back to Rational's reverse handler on the other operand (spec law 7).
	if result, err := three.BinaryHandler("plus")(half); err != nil || result != NotImplemented {
		t.Fatalf("expected Integer.plus to defer on a Rational operand, got %v, %v", result, err)
	}
	b, err := half.ReverseBinaryHandler("plus")(three)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ar, aok := a.(*Rational)
	br, bok := b.(*Rational)
	if !aok || !bok {
		t.Fatalf("expected *Rational results, got %T and %T", a, b)
	}
	if ar.Cmp(br) != 0 {
		t.Fatalf("non-symmetric result: %s vs %s", ar, br)
	}
	if ar.Num.Int64() != 7 || ar.Den.Int64() != 2 {
		t.Fatalf("got %s, want 7/2", ar)
	}
}

func TestRational_Cmp_OrdersByValue(t *testing.T) {
	oneHalf, _ := NewRational(big64(1), big64(2))
	oneThird, _ := NewRational(big64(1), big64(3))
	if oneHalf.Cmp(oneThird) <= 0 {
		t.Fatal("expected 1/2 > 1/3")
	}
}

func TestRational_Identity_RequiresSameReducedForm(t *testing.T) {
	oneHalf, _ := NewRational(big64(1), big64(2))
	twoQuarters, _ := NewRational(big64(2), big64(4))
	result, err := oneHalf.ComparisonHandler("identity")(twoQuarters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != True {
		t.Fatalf("expected identity true once reduced, got %s", result)
	}
}
