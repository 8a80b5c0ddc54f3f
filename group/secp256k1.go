package group

import (
	"encoding/hex"
	"errors"
	"math/big"

	btcec "github.com/btcsuite/btcd/btcec/v2"
	"github.com/dchest/blake2b"
)

const secpHashToPointTag = "vc_secp256k1_hash_to_point"

var secpB = big.NewInt(7)

type secpGroup struct {
	curve      *btcec.KoblitzCurve
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

// secpPoint is an affine point; x == nil marks the identity.
type secpPoint struct {
	curve *secpGroup
	x, y  *big.Int
}

// Secp256k1 returns a secp256k1 group backend, backed by btcec.
func Secp256k1() Group {
	c := btcec.S256()
	return &secpGroup{
		curve:      c,
		fieldOrder: c.Params().P,
		curveOrder: c.Params().N,
		name:       "secp256k1",
	}
}

func (g *secpGroup) Name() string {
	return g.name
}

func (g *secpGroup) P() *big.Int {
	return g.fieldOrder
}

func (g *secpGroup) N() *big.Int {
	return g.curveOrder
}

func (g *secpGroup) ElementSize() int {
	return 33
}

func (g *secpGroup) Element() Element {
	return &secpPoint{curve: g}
}

func (g *secpGroup) Identity() Element {
	return g.Element()
}

func (g *secpGroup) Generator() Element {
	return &secpPoint{
		curve: g,
		x:     new(big.Int).Set(g.curve.Params().Gx),
		y:     new(big.Int).Set(g.curve.Params().Gy),
	}
}

func (g *secpGroup) Random() Element {
	return g.Element().BaseScale(RandomScalar(g.curveOrder))
}

func (g *secpGroup) MultiExp(scalars []*big.Int, points []Element) (Element, error) {
	return multiExp(g, scalars, points)
}

// HashToPoint interprets a blake2b digest as a candidate x coordinate
// and re-hashes until x^3 + 7 is a quadratic residue. The even root is
// taken so the result does not depend on ModSqrt's branch.
func (g *secpGroup) HashToPoint(data []byte) Element {
	h := blake2b.New256()
	h.Write([]byte(secpHashToPointTag))
	h.Write(data)
	digest := h.Sum(nil)

	for {
		x := new(big.Int).SetBytes(digest)
		x.Mod(x, g.fieldOrder)
		if y := g.solveY(x); y != nil {
			if y.Bit(0) == 1 {
				y.Sub(g.fieldOrder, y)
			}
			return &secpPoint{curve: g, x: x, y: y}
		}
		next := blake2b.New256()
		next.Write(digest)
		digest = next.Sum(nil)
	}
}

// solveY returns a square root of x^3 + 7 mod p, or nil if none exists.
func (g *secpGroup) solveY(x *big.Int) *big.Int {
	rhs := new(big.Int).Exp(x, big.NewInt(3), g.fieldOrder)
	rhs.Add(rhs, secpB)
	rhs.Mod(rhs, g.fieldOrder)
	return new(big.Int).ModSqrt(rhs, g.fieldOrder)
}

func (e *secpPoint) check(a Element) *secpPoint {
	ea, ok := a.(*secpPoint)
	if !ok {
		panic("incompatible group element type")
	}
	return ea
}

func (e *secpPoint) isInf() bool {
	return e.x == nil
}

func (e *secpPoint) setInf() Element {
	e.x, e.y = nil, nil
	return e
}

func (e *secpPoint) Add(a, b Element) Element {
	ca, cb := e.check(a), e.check(b)
	if ca.isInf() {
		return e.Set(cb)
	}
	if cb.isInf() {
		return e.Set(ca)
	}
	// P + (-P): btcec's Add is undefined there, short-circuit it.
	if ca.x.Cmp(cb.x) == 0 && ca.y.Cmp(cb.y) != 0 {
		return e.setInf()
	}
	e.x, e.y = e.curve.curve.Add(ca.x, ca.y, cb.x, cb.y)
	return e
}

func (e *secpPoint) Subtract(a, b Element) Element {
	nb := e.curve.Element().Negate(b)
	return e.Add(a, nb)
}

func (e *secpPoint) Negate(a Element) Element {
	ca := e.check(a)
	if ca.isInf() {
		return e.setInf()
	}
	e.x = new(big.Int).Set(ca.x)
	e.y = new(big.Int).Sub(e.curve.fieldOrder, ca.y)
	return e
}

func (e *secpPoint) Scale(a Element, s *big.Int) Element {
	ca := e.check(a)
	k := new(big.Int).Mod(s, e.curve.curveOrder)
	if ca.isInf() || k.Sign() == 0 {
		return e.setInf()
	}
	e.x, e.y = e.curve.curve.ScalarMult(ca.x, ca.y, k.Bytes())
	return e
}

func (e *secpPoint) BaseScale(s *big.Int) Element {
	k := new(big.Int).Mod(s, e.curve.curveOrder)
	if k.Sign() == 0 {
		return e.setInf()
	}
	e.x, e.y = e.curve.curve.ScalarBaseMult(k.Bytes())
	return e
}

func (e *secpPoint) Set(a Element) Element {
	ca := e.check(a)
	if ca.isInf() {
		return e.setInf()
	}
	e.x = new(big.Int).Set(ca.x)
	e.y = new(big.Int).Set(ca.y)
	return e
}

func (e *secpPoint) IsEqual(a Element) bool {
	ca := e.check(a)
	if e.isInf() || ca.isInf() {
		return e.isInf() == ca.isInf()
	}
	return e.x.Cmp(ca.x) == 0 && e.y.Cmp(ca.y) == 0
}

func (e *secpPoint) IsIdentity() bool {
	return e.isInf()
}

func (e *secpPoint) String() string {
	buf, _ := e.MarshalBinary()
	return hex.EncodeToString(buf)
}

// MarshalBinary uses 33-byte SEC1 compressed encoding; the identity is
// 33 zero bytes.
func (e *secpPoint) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 33)
	if e.isInf() {
		return buf, nil
	}
	buf[0] = byte(2 + e.y.Bit(0))
	e.x.FillBytes(buf[1:])
	return buf, nil
}

func (e *secpPoint) UnmarshalBinary(data []byte) error {
	if len(data) != 33 {
		return errors.New("group: secp256k1 element must be 33 bytes")
	}
	if data[0] == 0 {
		for _, b := range data[1:] {
			if b != 0 {
				return errors.New("group: invalid secp256k1 encoding")
			}
		}
		e.setInf()
		return nil
	}
	if data[0] != 2 && data[0] != 3 {
		return errors.New("group: invalid secp256k1 encoding")
	}
	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(e.curve.fieldOrder) >= 0 {
		return errors.New("group: invalid secp256k1 encoding")
	}
	y := e.curve.solveY(x)
	if y == nil {
		return errors.New("group: invalid secp256k1 encoding")
	}
	if y.Bit(0) != uint(data[0]&1) {
		y.Sub(e.curve.fieldOrder, y)
	}
	e.x, e.y = x, y
	return nil
}
