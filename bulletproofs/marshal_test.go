package bulletproofs

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProofBytesRoundtrip(t *testing.T) {
	params := Params()

	proof, V := proveValue(t, params, big.NewInt(20260825))
	buf := proof.Bytes()
	assert.Len(t, buf, 672)

	decoded, err := ProofFromBytes(buf, params)
	require.NoError(t, err)

	assert.True(t, decoded.A.IsEqual(proof.A))
	assert.True(t, decoded.S.IsEqual(proof.S))
	assert.True(t, decoded.T1.IsEqual(proof.T1))
	assert.True(t, decoded.T2.IsEqual(proof.T2))
	assert.Zero(t, decoded.TX.Cmp(proof.TX))
	assert.Zero(t, decoded.TXBlinding.Cmp(proof.TXBlinding))
	assert.Zero(t, decoded.EBlinding.Cmp(proof.EBlinding))
	require.Len(t, decoded.IPP.Ls, len(proof.IPP.Ls))
	for i := range proof.IPP.Ls {
		assert.True(t, decoded.IPP.Ls[i].IsEqual(proof.IPP.Ls[i]))
		assert.True(t, decoded.IPP.Rs[i].IsEqual(proof.IPP.Rs[i]))
	}
	assert.Zero(t, decoded.IPP.A.Cmp(proof.IPP.A))
	assert.Zero(t, decoded.IPP.B.Cmp(proof.IPP.B))

	assert.Equal(t, buf, decoded.Bytes())
	assert.True(t, decoded.Verify(V))
}

func TestProofFromBytesBadLength(t *testing.T) {
	params := Params()
	proof, _ := proveValue(t, params, big.NewInt(3))
	buf := proof.Bytes()

	cases := [][]byte{
		nil,
		{},
		buf[:31],
		buf[:287],
		buf[:len(buf)-1],  // drops into a misaligned round section
		append(buf, 0x00), // one stray byte
		buf[:288+63],      // head ok, rounds misaligned
	}
	for i, c := range cases {
		_, err := ProofFromBytes(c, params)
		assert.ErrorIs(t, err, ErrInvalidProofLength, "case %d", i)
	}
}

func TestProofFromBytesBadEncoding(t *testing.T) {
	params := Params()
	proof, _ := proveValue(t, params, big.NewInt(3))
	buf := proof.Bytes()

	// Non-canonical scalar: taux with all bits set exceeds the order.
	bad := make([]byte, len(buf))
	copy(bad, buf)
	for i := 4 * 32; i < 5*32; i++ {
		bad[i] = 0xff
	}
	_, err := ProofFromBytes(bad, params)
	assert.ErrorIs(t, err, ErrInvalidProofEncoding)
}

// Flipping any single bit must make the proof unusable: either the
// decode rejects it or verification fails. Sampled positions keep the
// test fast while still covering points, scalars and round data.
func TestProofBitFlipRejected(t *testing.T) {
	params := Params()

	proof, V := proveValue(t, params, big.NewInt(555))
	buf := proof.Bytes()
	require.True(t, proof.Verify(V))

	for i := 0; i < len(buf); i += 13 {
		mutated := make([]byte, len(buf))
		copy(mutated, buf)
		mutated[i] ^= 0x01

		decoded, err := ProofFromBytes(mutated, params)
		if err != nil {
			continue
		}
		assert.False(t, decoded.Verify(V), "flip at byte %d accepted", i)
	}
}
