package group

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/cloudflare/circl/group"
)

var p256HashToPointDST = []byte("vc_p256_hash_to_point")

type p256Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type p256Point struct {
	curve *p256Group
	val   group.Element
}

// P256 returns a NIST P-256 group backend, backed by cloudflare/circl.
func P256() Group {
	p, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	n, _ := new(big.Int).SetString("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)

	G := new(p256Group)
	G.fieldOrder = p
	G.curveOrder = n
	G.name = "P-256"
	return G
}

func (g *p256Group) Name() string {
	return g.name
}

func (g *p256Group) P() *big.Int {
	return g.fieldOrder
}

func (g *p256Group) N() *big.Int {
	return g.curveOrder
}

func (g *p256Group) ElementSize() int {
	return 33
}

func (g *p256Group) Element() Element {
	return &p256Point{
		curve: g,
		val:   group.P256.Identity(),
	}
}

func (g *p256Group) Identity() Element {
	return g.Element()
}

func (g *p256Group) Generator() Element {
	return &p256Point{
		curve: g,
		val:   group.P256.Generator(),
	}
}

func (g *p256Group) Random() Element {
	return &p256Point{
		curve: g,
		val:   group.P256.RandomElement(rand.Reader),
	}
}

func (g *p256Group) MultiExp(scalars []*big.Int, points []Element) (Element, error) {
	return multiExp(g, scalars, points)
}

// HashToPoint defers to circl's hash-to-curve; the rejection loop
// lives inside the library there.
func (g *p256Group) HashToPoint(data []byte) Element {
	return &p256Point{
		curve: g,
		val:   group.P256.HashToElement(data, p256HashToPointDST),
	}
}

func (g *p256Group) scalar(s *big.Int) group.Scalar {
	scalar := group.P256.NewScalar()
	scalar.SetBigInt(new(big.Int).Mod(s, g.curveOrder))
	return scalar
}

func (e *p256Point) check(a Element) *p256Point {
	ea, ok := a.(*p256Point)
	if !ok {
		panic("incompatible group element type")
	}
	return ea
}

func (e *p256Point) Add(a, b Element) Element {
	e.val = group.P256.NewElement().Add(e.check(a).val, e.check(b).val)
	return e
}

func (e *p256Point) Subtract(a, b Element) Element {
	nb := group.P256.NewElement().Neg(e.check(b).val)
	e.val = group.P256.NewElement().Add(e.check(a).val, nb)
	return e
}

func (e *p256Point) Negate(a Element) Element {
	e.val = group.P256.NewElement().Neg(e.check(a).val)
	return e
}

func (e *p256Point) Scale(a Element, s *big.Int) Element {
	e.val = group.P256.NewElement().Mul(e.check(a).val, e.curve.scalar(s))
	return e
}

func (e *p256Point) BaseScale(s *big.Int) Element {
	e.val = group.P256.NewElement().MulGen(e.curve.scalar(s))
	return e
}

func (e *p256Point) Set(a Element) Element {
	e.val = group.P256.NewElement().Set(e.check(a).val)
	return e
}

func (e *p256Point) IsEqual(a Element) bool {
	return e.val.IsEqual(e.check(a).val)
}

func (e *p256Point) IsIdentity() bool {
	return e.val.IsIdentity()
}

func (e *p256Point) String() string {
	buf, _ := e.val.MarshalBinaryCompress()
	return hex.EncodeToString(buf)
}

func (e *p256Point) MarshalBinary() ([]byte, error) {
	return e.val.MarshalBinaryCompress()
}

func (e *p256Point) UnmarshalBinary(data []byte) error {
	if len(data) != e.curve.ElementSize() {
		return errors.New("group: P-256 element must be 33 bytes")
	}
	return e.val.UnmarshalBinary(data)
}
