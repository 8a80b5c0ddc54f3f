package bulletproofs

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilcash/bulletproofs-go/group"
)

func proveValue(t *testing.T, params SetupParams, value *big.Int) (Proof, group.Element) {
	blinding := group.RandomScalar(params.GP.N())
	V := params.Commit(value, blinding)
	proof, err := Prove(value, V, blinding, params)
	require.NoError(t, err)
	return proof, V
}

func TestProveVerifyBoundaries(t *testing.T) {
	params := Params()

	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 63), big.NewInt(1)), // 2^63 - 1
		new(big.Int).Lsh(big.NewInt(1), 63),                                  // 2^63
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1)), // 2^64 - 1
	}
	for _, v := range values {
		proof, V := proveValue(t, params, v)
		assert.True(t, proof.Verify(V), "value %s", v)
	}
}

func TestProveVerifyRandom(t *testing.T) {
	params := Params()
	max := new(big.Int).Lsh(big.NewInt(1), 64)

	for i := 0; i < 4; i++ {
		v, err := rand.Int(rand.Reader, max)
		require.NoError(t, err)
		proof, V := proveValue(t, params, v)
		assert.True(t, proof.Verify(V), "value %s", v)
	}
}

func TestProveRejectsOutOfRange(t *testing.T) {
	params := Params()
	blinding := big.NewInt(7)
	V := params.Commit(big.NewInt(1), blinding)

	_, err := Prove(big.NewInt(-1), V, blinding, params)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = Prove(new(big.Int).Lsh(big.NewInt(1), 64), V, blinding, params)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = Prove(nil, V, blinding, params)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

// A valid proof must only verify against the commitment it was built
// for.
func TestVerifyWrongCommitment(t *testing.T) {
	params := Params()

	proof, V := proveValue(t, params, big.NewInt(1234))
	other := params.Commit(big.NewInt(1234), big.NewInt(99))

	assert.True(t, proof.Verify(V))
	assert.False(t, proof.Verify(other))
	assert.False(t, proof.Verify(params.GP.Random()))
}

func TestVerifyTamperedProof(t *testing.T) {
	params := Params()
	mod := params.GP.N()

	proof, V := proveValue(t, params, big.NewInt(42))
	require.True(t, proof.Verify(V))

	tampered := proof
	tampered.TX = new(big.Int).Mod(new(big.Int).Add(proof.TX, big.NewInt(1)), mod)
	assert.False(t, tampered.Verify(V))

	tampered = proof
	tampered.EBlinding = new(big.Int).Mod(new(big.Int).Add(proof.EBlinding, big.NewInt(1)), mod)
	assert.False(t, tampered.Verify(V))

	tampered = proof
	tampered.A = params.GP.Random()
	assert.False(t, tampered.Verify(V))
}

func TestVerifyHostileInput(t *testing.T) {
	params := Params()
	V := params.Commit(big.NewInt(5), big.NewInt(6))

	assert.False(t, Proof{}.Verify(V))
	assert.False(t, Proof{Params: params}.Verify(V))

	proof, _ := proveValue(t, params, big.NewInt(5))
	assert.False(t, proof.Verify(nil))

	// Truncated round vector must fail, not panic.
	proof.IPP.Ls = proof.IPP.Ls[:3]
	proof.IPP.Rs = proof.IPP.Rs[:3]
	assert.False(t, proof.Verify(V))
}

// value=0, blinding=42: V = 42·H, and the proof must still hide and
// verify like any other amount.
func TestZeroValueKnownBlinding(t *testing.T) {
	params := Params()

	blinding := big.NewInt(42)
	V := params.Commit(big.NewInt(0), blinding)
	assert.True(t, V.IsEqual(params.GP.Element().Scale(params.H, blinding)))

	proof, err := Prove(big.NewInt(0), V, blinding, params)
	require.NoError(t, err)
	assert.True(t, proof.Verify(V))
}

func TestProveVerifySecp256k1(t *testing.T) {
	params, err := Setup(group.Secp256k1(), 64)
	require.NoError(t, err)

	proof, V := proveValue(t, params, big.NewInt(987654321))
	assert.True(t, proof.Verify(V))
	assert.False(t, proof.Verify(params.Commit(big.NewInt(1), big.NewInt(1))))
}

func TestProveVerifyP256(t *testing.T) {
	params, err := Setup(group.P256(), 32)
	require.NoError(t, err)

	proof, V := proveValue(t, params, big.NewInt(70000))
	assert.True(t, proof.Verify(V))
}

func TestSetupRejectsBadBitsize(t *testing.T) {
	_, err := Setup(group.Ristretto255(), 24)
	assert.Error(t, err)
	_, err = Setup(group.Ristretto255(), 128)
	assert.Error(t, err)
}

func TestParamsSingleton(t *testing.T) {
	p1 := Params()
	p2 := Params()
	assert.Equal(t, int64(64), p1.N)
	assert.Len(t, p1.Gg, 64)
	// Same underlying generator set, not a recomputation.
	assert.True(t, p1.Gg[0] == p2.Gg[0])
	assert.True(t, p1.H == p2.H)
}
