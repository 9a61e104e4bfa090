package types

import "math/big"

// gcd returns the non-negative greatest common divisor of a and b. a and
// b may be positive, zero, or negative; big.Int.GCD always yields a
// non-negative result. A fresh result is always allocated; neither a nor
// b is mutated.
func gcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}
