package types

import "testing"

func TestUndefined_IdentityAgainstItself(t *testing.T) {
	result, err := Undefined.(Handlers).ComparisonHandler("identity")(Undefined)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != True {
		t.Fatalf("expected undefined is undefined, got %s", result)
	}
}

func TestNull_IdentityAgainstUndefined(t *testing.T) {
	result, err := Null.(Handlers).ComparisonHandler("identity")(Undefined)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != False {
		t.Fatalf("expected null is not undefined, got %s", result)
	}
}

func TestUndefined_Type(t *testing.T) {
	if Undefined.Type() != UndefinedType {
		t.Fatalf("expected UndefinedType, got %s", Undefined.Type())
	}
}

func TestNull_Type(t *testing.T) {
	if Null.Type() != NullType {
		t.Fatalf("expected NullType, got %s", Null.Type())
	}
}
