package bulletproofs

import (
	"math/big"

	"github.com/veilcash/bulletproofs-go/group"
)

func mulMod(a, b, mod *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), mod)
}

// bitVector decomposes v into its n low bits, least significant first.
func bitVector(v *big.Int, n int64) []*big.Int {
	out := make([]*big.Int, n)
	for i := int64(0); i < n; i++ {
		out[i] = big.NewInt(int64(v.Bit(int(i))))
	}
	return out
}

// powers returns [1, x, x^2, ..., x^(n-1)] mod mod.
func powers(x *big.Int, n int64, mod *big.Int) []*big.Int {
	out := make([]*big.Int, n)
	out[0] = big.NewInt(1)
	for i := int64(1); i < n; i++ {
		out[i] = mulMod(out[i-1], x, mod)
	}
	return out
}

func randomVector(n int64, mod *big.Int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = group.RandomScalar(mod)
	}
	return out
}

func vectorCopy(s *big.Int, n int64) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int).Set(s)
	}
	return out
}

func vectorAdd(a, b []*big.Int, mod *big.Int) ([]*big.Int, error) {
	if len(a) != len(b) {
		return nil, group.ErrLengthMismatch
	}
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = new(big.Int).Mod(new(big.Int).Add(a[i], b[i]), mod)
	}
	return out, nil
}

func vectorSub(a, b []*big.Int, mod *big.Int) ([]*big.Int, error) {
	if len(a) != len(b) {
		return nil, group.ErrLengthMismatch
	}
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = new(big.Int).Mod(new(big.Int).Sub(a[i], b[i]), mod)
	}
	return out, nil
}

// vectorHadamard is the elementwise product mod mod.
func vectorHadamard(a, b []*big.Int, mod *big.Int) ([]*big.Int, error) {
	if len(a) != len(b) {
		return nil, group.ErrLengthMismatch
	}
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = mulMod(a[i], b[i], mod)
	}
	return out, nil
}

func vectorScalarMul(a []*big.Int, s, mod *big.Int) []*big.Int {
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = mulMod(a[i], s, mod)
	}
	return out
}

func vectorAddScalar(a []*big.Int, s, mod *big.Int) []*big.Int {
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = new(big.Int).Mod(new(big.Int).Add(a[i], s), mod)
	}
	return out
}

func vectorSubScalar(a []*big.Int, s, mod *big.Int) []*big.Int {
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = new(big.Int).Mod(new(big.Int).Sub(a[i], s), mod)
	}
	return out
}

// innerProduct returns <a, b> mod mod.
func innerProduct(a, b []*big.Int, mod *big.Int) (*big.Int, error) {
	if len(a) != len(b) {
		return nil, group.ErrLengthMismatch
	}
	sum := new(big.Int)
	for i := range a {
		sum.Add(sum, new(big.Int).Mul(a[i], b[i]))
	}
	return sum.Mod(sum, mod), nil
}
