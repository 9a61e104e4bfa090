package types

import "testing"

func TestBooleanOf_ReturnsSingletons(t *testing.T) {
	if BooleanOf(true) != True {
		t.Fatal("BooleanOf(true) must return the True singleton")
	}
	if BooleanOf(false) != False {
		t.Fatal("BooleanOf(false) must return the False singleton")
	}
}

func TestBoolean_Identity_IsPointerEquality(t *testing.T) {
	result, err := True.ComparisonHandler("identity")(True)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != True {
		t.Fatalf("expected True is True, got %s", result)
	}

	result, err = True.ComparisonHandler("identity")(False)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != False {
		t.Fatalf("expected True is not False, got %s", result)
	}
}

func TestBoolean_EqualityAgainstNonBoolean(t *testing.T) {
	result, err := True.ComparisonHandler("equality")(NewIntegerFromInt64(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != NotImplemented {
		t.Fatalf("expected NotImplemented comparing bool to int, got %s", result)
	}
}
