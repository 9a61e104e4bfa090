// Package types implements exprlang's value system: the tagged Integer,
// Rational, Boolean, Undefined, Null, Type, and Function variants, and the
// named-handler operator dispatch protocol that drives every arithmetic,
// comparison, and assignment operator (spec §4.3).
//
// Dispatch never type-switches on the operand's variant. Instead each
// Value exposes lookup methods (BinaryHandler, ComparisonHandler, ...)
// keyed by operator name, mirroring the "named method per operator" shape
// of the source interpreter while staying idiomatic Go: a handler that
// does not apply to the given operand pair returns the NotImplemented
// sentinel rather than panicking, and the dispatcher falls back to the
// mirror handler on the other operand before giving up.
package types

import "fmt"

// Value is implemented by every runtime value variant.
type Value interface {
	// Type returns the type tag carried by every value, enabling type
	// equality checks (`typ == value.Type()`).
	Type() *Type
	String() string
}

// BinaryFunc implements a binary, reverse-binary, comparison, or compound
// assignment handler: given the other operand, it returns a result, the
// NotImplemented sentinel (try the mirror handler), or a hard error (e.g.
// ZeroDivisionError) that aborts dispatch immediately.
type BinaryFunc func(other Value) (Value, error)

// UnaryFunc implements a unary or increment/decrement handler.
type UnaryFunc func() (Value, error)

// DotFunc implements the `.` operator's operator_get handler. right is
// either a string (the right operand was a bare identifier) or a Value
// (the right operand was an evaluated sub-expression).
type DotFunc func(right any) (Value, error)

// notImplemented is the concrete type of the NotImplemented sentinel.
type notImplemented struct{}

func (notImplemented) Type() *Type    { return nil }
func (notImplemented) String() string { return "NotImplemented" }

// NotImplemented is returned by a handler that does not apply to the
// given operand; the dispatcher interprets it as "try the next handler".
var NotImplemented Value = notImplemented{}

// Unhandled is embedded by value variants that do not implement a given
// handler family, so every Value only needs to override the handlers it
// actually supports.
type Unhandled struct{}

func (Unhandled) BinaryHandler(string) BinaryFunc        { return nil }
func (Unhandled) ReverseBinaryHandler(string) BinaryFunc { return nil }
func (Unhandled) ComparisonHandler(string) BinaryFunc    { return nil }
func (Unhandled) UnaryHandler(string) UnaryFunc          { return nil }
func (Unhandled) IncDecHandler(string) UnaryFunc         { return nil }
func (Unhandled) AssignHandler(string) BinaryFunc        { return nil }
func (Unhandled) DotHandler() DotFunc                    { return nil }

// Handlers is the full dispatch surface a Value may implement. Concrete
// types embed Unhandled and override only what they need; the dispatcher
// in internal/evaluator type-asserts against this interface.
type Handlers interface {
	BinaryHandler(name string) BinaryFunc
	ReverseBinaryHandler(name string) BinaryFunc
	ComparisonHandler(name string) BinaryFunc
	UnaryHandler(name string) UnaryFunc
	IncDecHandler(name string) UnaryFunc
	AssignHandler(name string) BinaryFunc
	DotHandler() DotFunc
}

// Type is the value variant representing a type handle (spec: "opaque
// handle identifying a value variant"). Types are interned singletons
// compared by identity.
type Type struct {
	Unhandled
	Name string
}

func (t *Type) Type() *Type    { return TypeType }
func (t *Type) String() string { return t.Name }

// The built-in type singletons. TypeType is "the type of a type".
var (
	TypeType      = &Type{Name: "type"}
	IntType       = &Type{Name: "int"}
	RationalType  = &Type{Name: "rational"}
	BoolType      = &Type{Name: "bool"}
	UndefinedType = &Type{Name: "undefined"}
	NullType      = &Type{Name: "null"}
	FunctionType  = &Type{Name: "function"}
)

// IsType reports whether v is a *Type value, the same check the
// evaluator makes (with its own type assertion) on a variable
// declaration's resolved type (spec §4.5).
func IsType(v Value) bool {
	_, ok := v.(*Type)
	return ok
}

// Function is an internal-only value variant carrying a native operator
// handler; the surface grammar has no function literals (spec Non-goals),
// so Function values never originate from source — they exist purely so
// Type() dispatch and the value-variant table stay complete for hosts
// that seed the environment with native callables.
type Function struct {
	Unhandled
	Name string
	Call func(args ...Value) (Value, error)
}

func (f *Function) Type() *Type    { return FunctionType }
func (f *Function) String() string { return fmt.Sprintf("<function %s>", f.Name) }
