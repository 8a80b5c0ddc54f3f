package group

import (
	"crypto/rand"
	"math/big"
)

var one = big.NewInt(1)

// ModInverse returns a^-1 mod n, or nil if a is not invertible.
// Extended Euclidean algorithm, iterative on purpose: challenge
// scalars are attacker-influenced and must not drive recursion depth.
func ModInverse(a, n *big.Int) *big.Int {
	t, newT := big.NewInt(0), big.NewInt(1)
	r, newR := new(big.Int).Set(n), new(big.Int).Mod(a, n)

	for newR.Sign() != 0 {
		q := new(big.Int).Div(r, newR)
		t, newT = newT, new(big.Int).Sub(t, new(big.Int).Mul(q, newT))
		r, newR = newR, new(big.Int).Sub(r, new(big.Int).Mul(q, newR))
	}
	if r.Cmp(one) != 0 {
		return nil
	}
	return t.Mod(t, n)
}

// RandomScalar samples a uniform scalar in [0, n).
func RandomScalar(n *big.Int) *big.Int {
	s, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	return s
}
