package types

import "math/big"

// Rational is an exact, always-reduced fraction: gcd(|Num|, Den) == 1 and
// Den > 0 (the sign lives on Num).
type Rational struct {
	Unhandled
	Num *big.Int
	Den *big.Int
}

// NewRational builds a reduced Rational from numerator/denominator,
// failing with ZeroDivisionError if denominator is zero.
func NewRational(numerator, denominator *big.Int) (*Rational, error) {
	if denominator.Sign() == 0 {
		return nil, zeroDivisionErr(numerator, denominator)
	}
	d := gcd(numerator, denominator)
	if d.Sign() == 0 {
		d = big.NewInt(1)
	}
	num := new(big.Int).Quo(numerator, d)
	den := new(big.Int).Quo(denominator, d)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return &Rational{Num: num, Den: den}, nil
}

// asRational widens an Integer to the equivalent Rational(value, 1),
// without needing to go through NewRational's zero-denominator check.
func asRational(i *Integer) *Rational {
	return &Rational{Num: new(big.Int).Set(i.Value), Den: big.NewInt(1)}
}

// operand widens other to a Rational if it is an Integer, or returns it
// unchanged if already a Rational; ok is false for any other type.
func operand(other Value) (*Rational, bool) {
	switch o := other.(type) {
	case *Rational:
		return o, true
	case *Integer:
		return asRational(o), true
	}
	return nil, false
}

func (r *Rational) Type() *Type    { return RationalType }
func (r *Rational) String() string { return r.Num.String() + "/" + r.Den.String() }

// Cmp compares r against other, both already in lowest terms with a
// positive denominator, via cross-multiplication.
func (r *Rational) Cmp(other *Rational) int {
	left := new(big.Int).Mul(r.Num, other.Den)
	right := new(big.Int).Mul(other.Num, r.Den)
	return left.Cmp(right)
}

func (r *Rational) BinaryHandler(name string) BinaryFunc {
	switch name {
	case "plus":
		return func(other Value) (Value, error) {
			o, ok := operand(other)
			if !ok {
				return NotImplemented, nil
			}
			num := new(big.Int).Add(new(big.Int).Mul(r.Num, o.Den), new(big.Int).Mul(o.Num, r.Den))
			den := new(big.Int).Mul(r.Den, o.Den)
			return NewRational(num, den)
		}
	case "minus":
		return func(other Value) (Value, error) {
			o, ok := operand(other)
			if !ok {
				return NotImplemented, nil
			}
			num := new(big.Int).Sub(new(big.Int).Mul(r.Num, o.Den), new(big.Int).Mul(o.Num, r.Den))
			den := new(big.Int).Mul(r.Den, o.Den)
			return NewRational(num, den)
		}
	case "star":
		return func(other Value) (Value, error) {
			o, ok := operand(other)
			if !ok {
				return NotImplemented, nil
			}
			return NewRational(new(big.Int).Mul(r.Num, o.Num), new(big.Int).Mul(r.Den, o.Den))
		}
	case "slash":
		return func(other Value) (Value, error) {
			o, ok := operand(other)
			if !ok {
				return NotImplemented, nil
			}
			return NewRational(new(big.Int).Mul(r.Num, o.Den), new(big.Int).Mul(r.Den, o.Num))
		}
	}
	return nil
}

func (r *Rational) ReverseBinaryHandler(name string) BinaryFunc {
	// Integer's own handlers only accept Integer operands, so Integer+Rational
	// and friends reach here via the reverse path; reuse the forward handler
	// with operands swapped the way the arithmetic requires.
	switch name {
	case "plus":
		return func(other Value) (Value, error) { return r.BinaryHandler("plus")(other) }
	case "minus":
		return func(other Value) (Value, error) {
			o, ok := operand(other)
			if !ok {
				return NotImplemented, nil
			}
			num := new(big.Int).Sub(new(big.Int).Mul(o.Num, r.Den), new(big.Int).Mul(r.Num, o.Den))
			den := new(big.Int).Mul(o.Den, r.Den)
			return NewRational(num, den)
		}
	case "star":
		return func(other Value) (Value, error) { return r.BinaryHandler("star")(other) }
	case "slash":
		return func(other Value) (Value, error) {
			o, ok := operand(other)
			if !ok {
				return NotImplemented, nil
			}
			return NewRational(new(big.Int).Mul(o.Num, r.Den), new(big.Int).Mul(o.Den, r.Num))
		}
	}
	return nil
}

func (r *Rational) ComparisonHandler(name string) BinaryFunc {
	cmp := func(op func(c int) bool) BinaryFunc {
		return func(other Value) (Value, error) {
			o, ok := operand(other)
			if !ok {
				return NotImplemented, nil
			}
			return BooleanOf(op(r.Cmp(o))), nil
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
			o, ok := other.(*Rational)
			if !ok {
				return NotImplemented, nil
			}
			return BooleanOf(r.Num.Cmp(o.Num) == 0 && r.Den.Cmp(o.Den) == 0), nil
		}
	}
	return nil
}

func (r *Rational) UnaryHandler(name string) UnaryFunc {
	switch name {
	case "plus":
		return func() (Value, error) { return &Rational{Num: new(big.Int).Set(r.Num), Den: new(big.Int).Set(r.Den)}, nil }
	case "minus":
		return func() (Value, error) { return &Rational{Num: new(big.Int).Neg(r.Num), Den: new(big.Int).Set(r.Den)}, nil }
	}
	return nil
}

func (r *Rational) IncDecHandler(name string) UnaryFunc {
	switch name {
	case "increment":
		return func() (Value, error) {
			return NewRational(new(big.Int).Add(r.Num, r.Den), r.Den)
		}
	case "decrement":
		return func() (Value, error) {
			return NewRational(new(big.Int).Sub(r.Num, r.Den), r.Den)
		}
	}
	return nil
}

func (r *Rational) AssignHandler(name string) BinaryFunc {
	// Compound assignment on a Rational slot reuses the same arithmetic as
	// the binary operator of the same name.
	return r.BinaryHandler(name)
}
