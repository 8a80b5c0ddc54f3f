package bulletproofs

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilcash/bulletproofs-go/group"
)

func intVec(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestBitVector(t *testing.T) {
	bits := bitVector(big.NewInt(0b1011), 8)
	assert.Equal(t, intVec(1, 1, 0, 1, 0, 0, 0, 0), bits)

	// <bits, 2^n> reassembles the value.
	mod := Params().GP.N()
	v, err := innerProduct(bits, powers(big.NewInt(2), 8, mod), mod)
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(big.NewInt(0b1011)))
}

func TestPowers(t *testing.T) {
	mod := big.NewInt(1000)
	assert.Equal(t, intVec(1, 3, 9, 27, 81), powers(big.NewInt(3), 5, mod))
	assert.Equal(t, intVec(1, 7, 49, 343, 401), powers(big.NewInt(7), 5, mod))
}

func TestVectorArithmetic(t *testing.T) {
	mod := big.NewInt(11)
	a := intVec(3, 7, 10)
	b := intVec(9, 5, 4)

	sum, err := vectorAdd(a, b, mod)
	require.NoError(t, err)
	assert.Equal(t, intVec(1, 1, 3), sum)

	diff, err := vectorSub(a, b, mod)
	require.NoError(t, err)
	assert.Equal(t, intVec(5, 2, 6), diff)

	had, err := vectorHadamard(a, b, mod)
	require.NoError(t, err)
	assert.Equal(t, intVec(5, 2, 7), had)

	assert.Equal(t, intVec(6, 3, 9), vectorScalarMul(a, big.NewInt(2), mod))
	assert.Equal(t, intVec(5, 9, 1), vectorAddScalar(a, big.NewInt(2), mod))
	assert.Equal(t, intVec(1, 5, 8), vectorSubScalar(a, big.NewInt(2), mod))

	ip, err := innerProduct(a, b, mod)
	require.NoError(t, err)
	// 27 + 35 + 40 = 102 ≡ 3 (mod 11)
	assert.Zero(t, ip.Cmp(big.NewInt(3)))
}

func TestVectorLengthMismatch(t *testing.T) {
	mod := big.NewInt(11)
	a := intVec(1, 2, 3)
	b := intVec(4, 5)

	_, err := vectorAdd(a, b, mod)
	assert.ErrorIs(t, err, group.ErrLengthMismatch)
	_, err = vectorSub(a, b, mod)
	assert.ErrorIs(t, err, group.ErrLengthMismatch)
	_, err = vectorHadamard(a, b, mod)
	assert.ErrorIs(t, err, group.ErrLengthMismatch)
	_, err = innerProduct(a, b, mod)
	assert.ErrorIs(t, err, group.ErrLengthMismatch)
}

func TestVecPoly(t *testing.T) {
	mod := Params().GP.N()

	l := vecPoly1{a: intVec(1, 2), b: intVec(3, 4)}
	r := vecPoly1{a: intVec(5, 6), b: intVec(7, 8)}
	tp := l.innerProduct(r, mod)

	// t(x) must equal <l(x), r(x)> at arbitrary points.
	for _, x := range intVec(0, 1, 2, 97) {
		lx := l.eval(x, mod)
		rx := r.eval(x, mod)
		want, err := innerProduct(lx, rx, mod)
		require.NoError(t, err)
		assert.Zero(t, tp.eval(x, mod).Cmp(want), "x=%s", x)
	}
}
