package bulletproofs

import (
	"errors"
	"math/big"

	"github.com/veilcash/bulletproofs-go/group"
)

// Prove builds a Bulletproof showing that the Pedersen commitment
// V = value·G + blinding·H commits to a value in [0, 2^n). The caller
// supplies the commitment and its blinding factor; Prove never
// recomputes or validates V beyond folding it into the transcript.
//
// Returns ErrValueOutOfRange if value is negative or does not fit n
// bits. This is a caller contract, not a hiding guarantee: proving an
// out-of-range value is impossible, not merely forbidden.
func Prove(value *big.Int, V group.Element, blinding *big.Int, params SetupParams) (Proof, error) {
	if value == nil || value.Sign() < 0 || value.BitLen() > int(params.N) {
		return Proof{}, ErrValueOutOfRange
	}
	if V == nil || blinding == nil {
		return Proof{}, errors.New("bulletproofs: nil commitment or blinding")
	}

	mod := params.GP.N()

	t := newTranscript(bulletproofDomainTag, mod)
	t.rangeproofDomainSep(uint64(params.N))
	t.appendPoint("V", V)

	// Bit decomposition: aL holds the bits of value, aR = aL - 1, so
	// aL ∘ aR = 0 and <aL, 2^n> = value.
	aL := bitVector(value, params.N)
	aR := vectorSubScalar(aL, big.NewInt(1), mod)

	alpha := group.RandomScalar(mod)
	A := commitBits(params, alpha, aL, aR)

	sL := randomVector(params.N, mod)
	sR := randomVector(params.N, mod)
	rho := group.RandomScalar(mod)
	S := commitBits(params, rho, sL, sR)

	t.appendPoint("A", A)
	t.appendPoint("S", S)
	y := t.challengeScalar("y")
	z := t.challengeScalar("z")

	yPow := powers(y, params.N, mod)
	twoPow := powers(big.NewInt(2), params.N, mod)
	zz := mulMod(z, z, mod)

	// l(X) = (aL - z·1) + sL·X
	lPoly := vecPoly1{a: vectorSubScalar(aL, z, mod), b: sL}

	// r(X) = y^n ∘ (aR + z·1 + sR·X) + z²·2^n
	r0, _ := vectorHadamard(yPow, vectorAddScalar(aR, z, mod), mod)
	r0, _ = vectorAdd(r0, vectorScalarMul(twoPow, zz, mod), mod)
	r1, _ := vectorHadamard(yPow, sR, mod)
	rPoly := vecPoly1{a: r0, b: r1}

	tPoly := lPoly.innerProduct(rPoly, mod)

	tau1 := group.RandomScalar(mod)
	tau2 := group.RandomScalar(mod)
	T1 := params.Commit(tPoly.t1, tau1)
	T2 := params.Commit(tPoly.t2, tau2)

	t.appendPoint("T_1", T1)
	t.appendPoint("T_2", T2)
	x := t.challengeScalar("x")

	l := lPoly.eval(x, mod)
	r := rPoly.eval(x, mod)
	tx := tPoly.eval(x, mod)

	// taux = tau1·x + tau2·x² + z²·gamma
	taux := mulMod(tau1, x, mod)
	taux.Add(taux, mulMod(tau2, mulMod(x, x, mod), mod))
	taux.Add(taux, mulMod(zz, blinding, mod))
	taux.Mod(taux, mod)

	// mu = alpha + rho·x
	mu := mulMod(rho, x, mod)
	mu.Add(mu, alpha)
	mu.Mod(mu, mod)

	t.appendScalar("t_x", tx)
	t.appendScalar("t_x_blinding", taux)
	t.appendScalar("e_blinding", mu)
	w := t.challengeScalar("w")
	u := params.GP.Element().BaseScale(w)

	// Switch to h' = h ∘ y^(-n); the argument proves
	// <l, g> + <r, h'> + tx·u against the commitment the verifier
	// rebuilds from A, S and the challenges.
	hp := updateGenerators(params, y)
	ipp, err := proveInnerProduct(t, params, u, l, r, params.Gg, hp)
	if err != nil {
		return Proof{}, err
	}

	return Proof{
		A:          A,
		S:          S,
		T1:         T1,
		T2:         T2,
		TX:         tx,
		TXBlinding: taux,
		EBlinding:  mu,
		IPP:        ipp,
		Params:     params,
	}, nil
}

// commitBits computes blind·H + <a, Gg> + <b, Hh>.
func commitBits(params SetupParams, blind *big.Int, a, b []*big.Int) group.Element {
	scalars := make([]*big.Int, 0, 2*params.N+1)
	scalars = append(scalars, blind)
	scalars = append(scalars, a...)
	scalars = append(scalars, b...)

	points := make([]group.Element, 0, 2*params.N+1)
	points = append(points, params.H)
	points = append(points, params.Gg...)
	points = append(points, params.Hh...)

	out, err := params.GP.MultiExp(scalars, points)
	if err != nil {
		panic(err)
	}
	return out
}
