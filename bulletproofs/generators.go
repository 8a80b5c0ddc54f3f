package bulletproofs

import (
	"encoding/binary"
	"math/big"

	"github.com/veilcash/bulletproofs-go/group"
)

// generatorLabel builds the domain-separated label for the i-th
// generator of a vector: one prefix byte plus the little-endian index.
func generatorLabel(prefix byte, i int64) []byte {
	label := make([]byte, 5)
	label[0] = prefix
	binary.LittleEndian.PutUint32(label[1:], uint32(i))
	return label
}

// deriveGenerators derives the two generator vectors used for the bit
// commitments. Each point depends only on its own (prefix, index)
// label, so prover and verifier recompute identical vectors and single
// entries can be rederived in isolation.
func deriveGenerators(gp group.Group, n int64) ([]group.Element, []group.Element) {
	Gg := make([]group.Element, n)
	Hh := make([]group.Element, n)
	for i := int64(0); i < n; i++ {
		Gg[i] = gp.HashToPoint(generatorLabel('G', i))
		Hh[i] = gp.HashToPoint(generatorLabel('H', i))
	}
	return Gg, Hh
}

// updateGenerators computes h'_i = y^(-i)·h_i. After this switch the
// prover's A commitment binds (aL, aR ∘ y^n) under (g, h').
func updateGenerators(params SetupParams, y *big.Int) []group.Element {
	mod := params.GP.N()
	hp := make([]group.Element, params.N)

	yInv := group.ModInverse(y, mod)
	yExp := new(big.Int).Set(yInv)
	hp[0] = params.GP.Element().Set(params.Hh[0])

	for i := int64(1); i < params.N; i++ {
		hp[i] = params.GP.Element().Scale(params.Hh[i], yExp)
		yExp = mulMod(yExp, yInv, mod)
	}
	return hp
}
