package group

import (
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"
)

const r255HashToPointTag = "vc_ristretto_hash_to_point"

type r255Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type r255Point struct {
	curve *r255Group
	val   ristretto.Point
}

// Ristretto255 returns the default group backend, backed by
// bwesterb/go-ristretto.
func Ristretto255() Group {
	p, _ := new(big.Int).SetString("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	n, _ := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

	G := new(r255Group)
	G.fieldOrder = p
	G.curveOrder = n
	G.name = "ristretto255"
	return G
}

func (g *r255Group) Name() string {
	return g.name
}

func (g *r255Group) P() *big.Int {
	return g.fieldOrder
}

func (g *r255Group) N() *big.Int {
	return g.curveOrder
}

func (g *r255Group) ElementSize() int {
	return 32
}

func (g *r255Group) Element() Element {
	e := &r255Point{curve: g}
	e.val.SetZero()
	return e
}

func (g *r255Group) Identity() Element {
	return g.Element()
}

func (g *r255Group) Generator() Element {
	e := &r255Point{curve: g}
	e.val.SetBase()
	return e
}

func (g *r255Group) Random() Element {
	e := &r255Point{curve: g}
	e.val.Rand()
	return e
}

func (g *r255Group) MultiExp(scalars []*big.Int, points []Element) (Element, error) {
	return multiExp(g, scalars, points)
}

// HashToPoint reads 32-byte candidates from a SHAKE256 stream seeded
// with a domain tag and the input, and keeps going until one decodes
// as a canonical ristretto encoding. Deterministic for a given input.
func (g *r255Group) HashToPoint(data []byte) Element {
	h := sha3.NewShake256()
	h.Write([]byte(r255HashToPointTag))
	h.Write(data)

	e := &r255Point{curve: g}
	var buf [32]byte
	for {
		h.Read(buf[:])
		if e.val.SetBytes(&buf) {
			return e
		}
	}
}

func (e *r255Point) check(a Element) *r255Point {
	ea, ok := a.(*r255Point)
	if !ok {
		panic("incompatible group element type")
	}
	return ea
}

func (e *r255Point) Add(a, b Element) Element {
	e.val.Add(&e.check(a).val, &e.check(b).val)
	return e
}

func (e *r255Point) Subtract(a, b Element) Element {
	e.val.Sub(&e.check(a).val, &e.check(b).val)
	return e
}

func (e *r255Point) Negate(a Element) Element {
	e.val.Neg(&e.check(a).val)
	return e
}

func (e *r255Point) Scale(a Element, s *big.Int) Element {
	var scalar ristretto.Scalar
	scalar.SetBigInt(s)
	e.val.ScalarMult(&e.check(a).val, &scalar)
	return e
}

func (e *r255Point) BaseScale(s *big.Int) Element {
	var scalar ristretto.Scalar
	scalar.SetBigInt(s)
	e.val.ScalarMultBase(&scalar)
	return e
}

func (e *r255Point) Set(a Element) Element {
	e.val.Set(&e.check(a).val)
	return e
}

func (e *r255Point) IsEqual(a Element) bool {
	return e.val.Equals(&e.check(a).val)
}

func (e *r255Point) IsIdentity() bool {
	var zero ristretto.Point
	zero.SetZero()
	return e.val.Equals(&zero)
}

func (e *r255Point) String() string {
	return hex.EncodeToString(e.val.Bytes())
}

func (e *r255Point) MarshalBinary() ([]byte, error) {
	return e.val.Bytes(), nil
}

func (e *r255Point) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return errors.New("group: ristretto element must be 32 bytes")
	}
	var buf [32]byte
	copy(buf[:], data)
	if !e.val.SetBytes(&buf) {
		return errors.New("group: invalid ristretto encoding")
	}
	return nil
}
