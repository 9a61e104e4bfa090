package types

import (
	"math/big"
	"strings"

	"github.com/jleeming/exprlang/internal/errors"
)

func zeroDivisionErr(numerator, denominator *big.Int) error {
	return errors.NewZeroDivisionErrorf("attempted to divide %s by %s", numerator, denominator)
}

// Integer is a signed, arbitrary-range integer value. LeadingZeros records
// how many leading '0' characters the original lexeme carried (e.g. "007"
// has LeadingZeros 2); the dot operator needs this count to reconstruct
// fractional digits that a plain decimal-width calculation would drop
// (spec §3, §4.3).
type Integer struct {
	Unhandled
	Value        *big.Int
	LeadingZeros uint32
}

// NewInteger parses lexeme (an ASCII digit string, as produced by the
// lexer for a digit-only identifier) into an Integer, recording its
// leading zero count.
func NewInteger(lexeme string) *Integer {
	var leadingZeros uint32
	for _, c := range lexeme {
		if c != '0' {
			break
		}
		leadingZeros++
	}
	v, ok := new(big.Int).SetString(lexeme, 10)
	if !ok {
		v = new(big.Int)
	}
	return &Integer{Value: v, LeadingZeros: leadingZeros}
}

// NewIntegerFromInt64 builds an Integer directly from a Go int, with no
// leading zeros — used internally for arithmetic results.
func NewIntegerFromInt64(v int64) *Integer {
	return &Integer{Value: big.NewInt(v)}
}

func (i *Integer) Type() *Type    { return IntType }
func (i *Integer) String() string { return i.Value.String() }

// digitLength returns the number of decimal digits needed to print the
// given non-negative big.Int value, without the sign.
func digitLength(v *big.Int) int {
	return len(new(big.Int).Abs(v).Text(10))
}

func (i *Integer) BinaryHandler(name string) BinaryFunc {
	switch name {
	case "plus":
		return func(other Value) (Value, error) {
			o, ok := other.(*Integer)
			if !ok {
				return NotImplemented, nil
			}
			return &Integer{Value: new(big.Int).Add(i.Value, o.Value)}, nil
		}
	case "minus":
		return func(other Value) (Value, error) {
			o, ok := other.(*Integer)
			if !ok {
				return NotImplemented, nil
			}
			return &Integer{Value: new(big.Int).Sub(i.Value, o.Value)}, nil
		}
	case "star":
		return func(other Value) (Value, error) {
			o, ok := other.(*Integer)
			if !ok {
				return NotImplemented, nil
			}
			return &Integer{Value: new(big.Int).Mul(i.Value, o.Value)}, nil
		}
	case "slash":
		return func(other Value) (Value, error) {
			o, ok := other.(*Integer)
			if !ok {
				return NotImplemented, nil
			}
			return NewRational(i.Value, o.Value)
		}
	}
	return nil
}

func (i *Integer) ComparisonHandler(name string) BinaryFunc {
	cmp := func(op func(c int) bool) BinaryFunc {
		return func(other Value) (Value, error) {
			switch o := other.(type) {
			case *Integer:
				return BooleanOf(op(i.Value.Cmp(o.Value))), nil
			case *Rational:
				return BooleanOf(op(asRational(i).Cmp(o))), nil
			}
			return NotImplemented, nil
		}
	}
	switch name {
	case "less":
		return cmp(func(c int) bool { return c < 0 })
	case "less_equal":
		return cmp(func(c int) bool { return c <= 0 })
	case "greater":
		return cmp(func(c int) bool { return c > 0 })
	case "greater_equal":
		return cmp(func(c int) bool { return c >= 0 })
	case "equality":
		return cmp(func(c int) bool { return c == 0 })
	case "nonequality":
		return cmp(func(c int) bool { return c != 0 })
	case "identity":
		return func(other Value) (Value, error) {
			o, ok := other.(*Integer)
			if !ok {
				return NotImplemented, nil
			}
			return BooleanOf(i.Value.Cmp(o.Value) == 0), nil
		}
	}
	return nil
}

func (i *Integer) UnaryHandler(name string) UnaryFunc {
	switch name {
	case "plus":
		return func() (Value, error) { return &Integer{Value: new(big.Int).Set(i.Value)}, nil }
	case "minus":
		return func() (Value, error) { return &Integer{Value: new(big.Int).Neg(i.Value)}, nil }
	}
	return nil
}

func (i *Integer) IncDecHandler(name string) UnaryFunc {
	switch name {
	case "increment":
		return func() (Value, error) { return &Integer{Value: new(big.Int).Add(i.Value, big.NewInt(1))}, nil }
	case "decrement":
		return func() (Value, error) { return &Integer{Value: new(big.Int).Sub(i.Value, big.NewInt(1))}, nil }
	}
	return nil
}

func (i *Integer) AssignHandler(name string) BinaryFunc {
	switch name {
	case "plus":
		return func(other Value) (Value, error) {
			o, ok := other.(*Integer)
			if !ok {
				return NotImplemented, nil
			}
			return &Integer{Value: new(big.Int).Add(i.Value, o.Value)}, nil
		}
	case "minus":
		return func(other Value) (Value, error) {
			o, ok := other.(*Integer)
			if !ok {
				return NotImplemented, nil
			}
			return &Integer{Value: new(big.Int).Sub(i.Value, o.Value)}, nil
		}
	case "star":
		return func(other Value) (Value, error) {
			o, ok := other.(*Integer)
			if !ok {
				return NotImplemented, nil
			}
			return &Integer{Value: new(big.Int).Mul(i.Value, o.Value)}, nil
		}
	case "slash":
		// Spec edge case: `/=` on an Integer slot uses integer division
		// (truncating toward zero), not the Rational-producing `/`
		// operator — the slot keeps its declared Integer type across the
		// compound assignment.
		return func(other Value) (Value, error) {
			o, ok := other.(*Integer)
			if !ok {
				return NotImplemented, nil
			}
			if o.Value.Sign() == 0 {
				return nil, zeroDivisionErr(i.Value, o.Value)
			}
			q := new(big.Int)
			q.Quo(i.Value, o.Value)
			return &Integer{Value: q}, nil
		}
	}
	return nil
}

// DotHandler realises the decimal-literal meaning of `.` on an Integer
// left operand (spec §4.3). It does no member access: a right-hand name
// that is not a digit string is read as 0 (so `3.foo` yields 3/1), and a
// right operand that is neither a string nor an Integer gives
// NotImplemented.
func (i *Integer) DotHandler() DotFunc {
	return func(right any) (Value, error) {
		var digits int
		var value *big.Int

		switch r := right.(type) {
		case string:
			var leadingZeros int
			for _, c := range r {
				if c != '0' {
					break
				}
				leadingZeros++
			}
			digits = len(r) + leadingZeros
			if strings.HasPrefix(r, "0") {
				digits--
			}
			v, ok := new(big.Int).SetString(r, 10)
			if !ok {
				v = new(big.Int)
			}
			value = v
		case *Integer:
			digits = digitLength(r.Value) + int(r.LeadingZeros)
			value = r.Value
		default:
			return NotImplemented, nil
		}

		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
		numerator := new(big.Int).Mul(i.Value, scale)
		numerator.Add(numerator, value)
		return NewRational(numerator, scale)
	}
}
