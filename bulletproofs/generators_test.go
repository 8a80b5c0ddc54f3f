package bulletproofs

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilcash/bulletproofs-go/group"
)

func TestDeriveGeneratorsDeterministic(t *testing.T) {
	gp := group.Ristretto255()

	g1, h1 := deriveGenerators(gp, 16)
	g2, h2 := deriveGenerators(gp, 16)
	require.Len(t, g1, 16)
	require.Len(t, h1, 16)
	for i := range g1 {
		assert.True(t, g1[i].IsEqual(g2[i]))
		assert.True(t, h1[i].IsEqual(h2[i]))
	}

	// A shorter derivation is a prefix of a longer one.
	g3, _ := deriveGenerators(gp, 8)
	for i := range g3 {
		assert.True(t, g3[i].IsEqual(g1[i]))
	}
}

func TestGeneratorsDistinct(t *testing.T) {
	params := Params()

	seen := make(map[string]bool)
	record := func(e group.Element) {
		buf, err := e.MarshalBinary()
		require.NoError(t, err)
		assert.False(t, seen[string(buf)], "duplicate generator")
		seen[string(buf)] = true
	}

	record(params.G)
	record(params.H)
	for i := range params.Gg {
		record(params.Gg[i])
		record(params.Hh[i])
	}
}

func TestUpdateGenerators(t *testing.T) {
	params := Params()
	mod := params.GP.N()
	y := big.NewInt(123456789)

	hp := updateGenerators(params, y)
	require.Len(t, hp, int(params.N))

	assert.True(t, hp[0].IsEqual(params.Hh[0]))

	// h'_i scaled back by y^i must recover h_i.
	yExp := new(big.Int).Set(y)
	for i := 1; i < len(hp); i++ {
		back := params.GP.Element().Scale(hp[i], yExp)
		assert.True(t, back.IsEqual(params.Hh[i]), "index %d", i)
		yExp = mulMod(yExp, y, mod)
	}

	// The original vector is untouched.
	hp[1].Add(hp[1], params.G)
	_, h2 := deriveGenerators(params.GP, params.N)
	assert.True(t, params.Hh[1].IsEqual(h2[1]))
}
