package types

// undefinedValue is the value a declared-but-uninitialized slot holds, and
// the value an expression statement contributes to the evaluation result
// list when it has no other value to report (spec §4.4, §4.5).
type undefinedValue struct{ Unhandled }

func (undefinedValue) Type() *Type    { return UndefinedType }
func (undefinedValue) String() string { return "undefined" }

func (undefinedValue) ComparisonHandler(name string) BinaryFunc {
	switch name {
	case "identity":
		return func(other Value) (Value, error) {
			_, ok := other.(undefinedValue)
			return BooleanOf(ok), nil
		}
	case "equality":
		return func(other Value) (Value, error) {
			_, ok := other.(undefinedValue)
			return BooleanOf(ok), nil
		}
	case "nonequality":
		return func(other Value) (Value, error) {
			_, ok := other.(undefinedValue)
			return BooleanOf(!ok), nil
		}
	}
	return nil
}

// Undefined is the sole value of type undefined.
var Undefined Value = undefinedValue{}

// nullValue is the value reserved for for/while/if statements — control
// structures evaluate to null rather than undefined (spec §4.5, SPEC_FULL
// Open Question decision #2).
type nullValue struct{ Unhandled }

func (nullValue) Type() *Type    { return NullType }
func (nullValue) String() string { return "null" }

func (nullValue) ComparisonHandler(name string) BinaryFunc {
	switch name {
	case "identity":
		return func(other Value) (Value, error) {
			_, ok := other.(nullValue)
			return BooleanOf(ok), nil
		}
	case "equality":
		return func(other Value) (Value, error) {
			_, ok := other.(nullValue)
			return BooleanOf(ok), nil
		}
	case "nonequality":
		return func(other Value) (Value, error) {
			_, ok := other.(nullValue)
			return BooleanOf(!ok), nil
		}
	}
	return nil
}

// Null is the sole value of type null.
var Null Value = nullValue{}
