package errors

import (
	"strings"
	"testing"

	"github.com/jleeming/exprlang/internal/lexer"
)

func TestInterpreterError_ErrorIncludesPosition(t *testing.T) {
	pos := lexer.Position{Line: 2, Column: 5}
	err := NewTypeError(pos, "cannot infer type of %q", "undefined")

	if err.Category != CategoryType {
		t.Errorf("got category %s, want %s", err.Category, CategoryType)
	}
	if !strings.Contains(err.Error(), "2:5") {
		t.Errorf("error message %q does not mention position", err.Error())
	}
	if !strings.Contains(err.Error(), "undefined") {
		t.Errorf("error message %q does not mention formatted argument", err.Error())
	}
}

func TestNewZeroDivisionError_Category(t *testing.T) {
	err := NewZeroDivisionError(lexer.Position{}, "denominator is 0")
	if err.Category != CategoryZeroDivision {
		t.Errorf("got %s, want %s", err.Category, CategoryZeroDivision)
	}
}

func TestNewNameError_Category(t *testing.T) {
	err := NewNameError(lexer.Position{}, "%q is not declared", "x")
	if err.Category != CategoryName {
		t.Errorf("got %s, want %s", err.Category, CategoryName)
	}
}
