package bulletproofs

import (
	"math/big"

	"github.com/veilcash/bulletproofs-go/group"
)

// Verify checks the proof against the commitment V and reports whether
// it is valid. It replays the prover's transcript from public values
// only, checks the polynomial identity
// tx·G + taux·H == z²·V + δ(y,z)·G + x·T1 + x²·T2, then folds the
// generators through the inner-product rounds and checks the
// compressed relation.
//
// Verify is total: proofs are attacker-controlled, so any internal
// fault is converted into a false result rather than a panic.
func (proof Proof) Verify(V group.Element) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	params := proof.Params
	if params.GP == nil || V == nil || !proof.wellFormed() {
		return false
	}
	mod := params.GP.N()

	t := newTranscript(bulletproofDomainTag, mod)
	t.rangeproofDomainSep(uint64(params.N))
	t.appendPoint("V", V)
	t.appendPoint("A", proof.A)
	t.appendPoint("S", proof.S)
	y := t.challengeScalar("y")
	z := t.challengeScalar("z")
	t.appendPoint("T_1", proof.T1)
	t.appendPoint("T_2", proof.T2)
	x := t.challengeScalar("x")
	t.appendScalar("t_x", proof.TX)
	t.appendScalar("t_x_blinding", proof.TXBlinding)
	t.appendScalar("e_blinding", proof.EBlinding)
	w := t.challengeScalar("w")

	zz := mulMod(z, z, mod)
	xx := mulMod(x, x, mod)

	// tx·G + taux·H == z²·V + δ(y,z)·G + x·T1 + x²·T2
	lhs := params.Commit(proof.TX, proof.TXBlinding)
	rhs := params.GP.Element().Scale(V, zz)
	rhs.Add(rhs, params.GP.Element().BaseScale(params.delta(y, z)))
	rhs.Add(rhs, params.GP.Element().Scale(proof.T1, x))
	rhs.Add(rhs, params.GP.Element().Scale(proof.T2, xx))
	if !lhs.IsEqual(rhs) {
		return false
	}

	// Rebuild the inner-product commitment
	// P = A + x·S - z·Σg + Σ(z·y^i + z²·2^i)·h'_i - mu·H + tx·u
	// from public values and check the folded argument against it.
	u := params.GP.Element().BaseScale(w)
	hp := updateGenerators(params, y)

	yPow := powers(y, params.N, mod)
	twoPow := powers(big.NewInt(2), params.N, mod)
	hExp, _ := vectorAdd(vectorScalarMul(yPow, z, mod), vectorScalarMul(twoPow, zz, mod), mod)

	negZ := new(big.Int).Sub(mod, z)
	gz, err := params.GP.MultiExp(vectorCopy(negZ, params.N), params.Gg)
	if err != nil {
		return false
	}
	he, err := params.GP.MultiExp(hExp, hp)
	if err != nil {
		return false
	}

	P := params.GP.Element().Add(proof.A, params.GP.Element().Scale(proof.S, x))
	P.Add(P, gz)
	P.Add(P, he)
	negMu := new(big.Int).Sub(mod, proof.EBlinding)
	P.Add(P, params.GP.Element().Scale(params.H, negMu))
	P.Add(P, params.GP.Element().Scale(u, proof.TX))

	return proof.IPP.verify(t, params, u, params.Gg, hp, P)
}

// wellFormed rejects structurally incomplete proofs before any
// arithmetic touches them.
func (proof Proof) wellFormed() bool {
	if proof.A == nil || proof.S == nil || proof.T1 == nil || proof.T2 == nil {
		return false
	}
	if proof.TX == nil || proof.TXBlinding == nil || proof.EBlinding == nil {
		return false
	}
	if proof.IPP.A == nil || proof.IPP.B == nil {
		return false
	}
	if len(proof.IPP.Ls) != len(proof.IPP.Rs) {
		return false
	}
	for i := range proof.IPP.Ls {
		if proof.IPP.Ls[i] == nil || proof.IPP.Rs[i] == nil {
			return false
		}
	}
	return true
}

// delta computes δ(y,z) = (z - z²)·<1, y^n> - z³·<1, 2^n>, the public
// part of t(x) that the commitment check offsets.
func (params SetupParams) delta(y, z *big.Int) *big.Int {
	mod := params.GP.N()

	sumY := new(big.Int)
	for _, p := range powers(y, params.N, mod) {
		sumY.Add(sumY, p)
	}
	sumY.Mod(sumY, mod)

	// <1, 2^n> = 2^n - 1
	sum2 := new(big.Int).Lsh(big.NewInt(1), uint(params.N))
	sum2.Sub(sum2, big.NewInt(1))

	zz := mulMod(z, z, mod)
	zzz := mulMod(zz, z, mod)

	out := new(big.Int).Sub(z, zz)
	out.Mod(out, mod)
	out = mulMod(out, sumY, mod)
	out.Sub(out, mulMod(zzz, sum2, mod))
	return out.Mod(out, mod)
}
