package bulletproofs

import (
	"errors"
	"math/big"

	"github.com/veilcash/bulletproofs-go/group"
)

// InnerProductProof is the logarithmic argument that two committed
// vectors have a claimed inner product: one (L, R) pair per halving
// round plus the two fully folded scalars.
type InnerProductProof struct {
	Ls []group.Element
	Rs []group.Element
	A  *big.Int
	B  *big.Int
}

// proveInnerProduct proves knowledge of a, b with
// P = <a, g> + <b, h> + <a, b>·u. The vectors are halved every round:
// the cross terms L, R are committed, a challenge x is extracted, and
// a, b, g, h are folded with x and x^-1 until length 1.
func proveInnerProduct(t *transcript, params SetupParams, u group.Element, a, b []*big.Int, g, h []group.Element) (InnerProductProof, error) {
	mod := params.GP.N()
	n := len(a)
	if len(b) != n || len(g) != n || len(h) != n {
		return InnerProductProof{}, group.ErrLengthMismatch
	}

	t.innerproductDomainSep(uint64(n))

	var Ls, Rs []group.Element
	for n > 1 {
		n = n / 2
		aL, aR := a[:n], a[n:]
		bL, bR := b[:n], b[n:]
		gL, gR := g[:n], g[n:]
		hL, hR := h[:n], h[n:]

		cL, _ := innerProduct(aL, bR, mod)
		cR, _ := innerProduct(aR, bL, mod)

		// L = <aL, gR> + <bR, hL> + cL·u
		L := crossTerm(params.GP, aL, gR, bR, hL, cL, u)
		// R = <aR, gL> + <bL, hR> + cR·u
		R := crossTerm(params.GP, aR, gL, bL, hR, cR, u)

		t.appendPoint("L", L)
		t.appendPoint("R", R)
		x := t.challengeScalar("u")
		xInv := group.ModInverse(x, mod)
		if xInv == nil {
			return InnerProductProof{}, errors.New("bulletproofs: non-invertible challenge")
		}

		a = foldScalars(aL, aR, x, xInv, mod)
		b = foldScalars(bL, bR, xInv, x, mod)
		g = foldPoints(params.GP, gL, gR, xInv, x)
		h = foldPoints(params.GP, hL, hR, x, xInv)

		Ls = append(Ls, L)
		Rs = append(Rs, R)
	}

	return InnerProductProof{Ls: Ls, Rs: Rs, A: a[0], B: b[0]}, nil
}

// verify folds the generators and the commitment P through the same
// rounds using the proof's (L, R) pairs and re-derived challenges,
// then checks the length-1 relation
// a·g + b·h + (a·b)·u == P + Σ x_i²·L_i + x_i^-2·R_i.
func (p InnerProductProof) verify(t *transcript, params SetupParams, u group.Element, g, h []group.Element, P group.Element) bool {
	mod := params.GP.N()
	n := len(g)
	if len(h) != n || len(p.Ls) != len(p.Rs) {
		return false
	}
	if n != 1<<uint(len(p.Ls)) {
		return false
	}

	t.innerproductDomainSep(uint64(n))

	Pp := params.GP.Element().Set(P)
	for i := range p.Ls {
		n = n / 2
		t.appendPoint("L", p.Ls[i])
		t.appendPoint("R", p.Rs[i])
		x := t.challengeScalar("u")
		xInv := group.ModInverse(x, mod)
		if xInv == nil {
			return false
		}

		g = foldPoints(params.GP, g[:n], g[n:], xInv, x)
		h = foldPoints(params.GP, h[:n], h[n:], x, xInv)

		x2 := mulMod(x, x, mod)
		x2Inv := mulMod(xInv, xInv, mod)
		Pp.Add(Pp, params.GP.Element().Scale(p.Ls[i], x2))
		Pp.Add(Pp, params.GP.Element().Scale(p.Rs[i], x2Inv))
	}

	ab := mulMod(p.A, p.B, mod)
	rhs, err := params.GP.MultiExp(
		[]*big.Int{p.A, p.B, ab},
		[]group.Element{g[0], h[0], u},
	)
	if err != nil {
		return false
	}
	return rhs.IsEqual(Pp)
}

// crossTerm computes <s1, p1> + <s2, p2> + c·u as one chained
// multi-exponentiation.
func crossTerm(gp group.Group, s1 []*big.Int, p1 []group.Element, s2 []*big.Int, p2 []group.Element, c *big.Int, u group.Element) group.Element {
	scalars := make([]*big.Int, 0, len(s1)+len(s2)+1)
	scalars = append(scalars, s1...)
	scalars = append(scalars, s2...)
	scalars = append(scalars, c)

	points := make([]group.Element, 0, len(p1)+len(p2)+1)
	points = append(points, p1...)
	points = append(points, p2...)
	points = append(points, u)

	out, err := gp.MultiExp(scalars, points)
	if err != nil {
		panic(err)
	}
	return out
}

// foldScalars returns l·xl + r·xr elementwise.
func foldScalars(l, r []*big.Int, xl, xr, mod *big.Int) []*big.Int {
	out := make([]*big.Int, len(l))
	for i := range l {
		out[i] = new(big.Int).Add(mulMod(l[i], xl, mod), mulMod(r[i], xr, mod))
		out[i].Mod(out[i], mod)
	}
	return out
}

// foldPoints returns xl·l + xr·r elementwise.
func foldPoints(gp group.Group, l, r []group.Element, xl, xr *big.Int) []group.Element {
	out := make([]group.Element, len(l))
	for i := range l {
		li := gp.Element().Scale(l[i], xl)
		out[i] = li.Add(li, gp.Element().Scale(r[i], xr))
	}
	return out
}
