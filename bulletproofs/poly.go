package bulletproofs

import "math/big"

// vecPoly1 is a degree-1 vector polynomial a + b·X.
type vecPoly1 struct {
	a []*big.Int
	b []*big.Int
}

// innerProduct computes t(X) = <l(X), r(X)> as a degree-2 polynomial.
// t1 is obtained as <l0+l1, r0+r1> - t0 - t2, which saves one vector
// inner product over the naive expansion.
func (v vecPoly1) innerProduct(rhs vecPoly1, mod *big.Int) poly2 {
	t0, _ := innerProduct(v.a, rhs.a, mod)
	t2, _ := innerProduct(v.b, rhs.b, mod)

	l0PlusL1, _ := vectorAdd(v.a, v.b, mod)
	r0PlusR1, _ := vectorAdd(rhs.a, rhs.b, mod)

	t1, _ := innerProduct(l0PlusL1, r0PlusR1, mod)
	t1 = new(big.Int).Sub(t1, t0)
	t1 = new(big.Int).Mod(t1.Sub(t1, t2), mod)

	return poly2{t0: t0, t1: t1, t2: t2}
}

func (v vecPoly1) eval(x, mod *big.Int) []*big.Int {
	out, _ := vectorAdd(v.a, vectorScalarMul(v.b, x, mod), mod)
	return out
}

// poly2 is a degree-2 polynomial t0 + t1·X + t2·X².
type poly2 struct {
	t0, t1, t2 *big.Int
}

func (p poly2) eval(x, mod *big.Int) *big.Int {
	r := mulMod(p.t2, x, mod)
	r.Add(r, p.t1)
	r = mulMod(r, x, mod)
	r.Add(r, p.t0)
	return r.Mod(r, mod)
}
