// Package group abstracts the prime-order group the range-proof
// protocol runs over, so the curve backend stays swappable. Three
// backends are provided: ristretto255 (the default), P-256 and
// secp256k1.
package group

import (
	"encoding"
	"errors"
	"math/big"
)

// ErrLengthMismatch is returned when paired vector arguments do not
// have the same length.
var ErrLengthMismatch = errors.New("group: vector lengths do not match")

// Element represents an element of a prime-order group.
type Element interface {
	// Add sets the receiver to X + Y, and returns it.
	Add(X, Y Element) Element
	// Subtract sets the receiver to X - Y, and returns it.
	Subtract(X, Y Element) Element
	// Negate sets the receiver to -X, and returns it.
	Negate(X Element) Element
	// Scale sets the receiver to s·X, and returns it.
	Scale(X Element, s *big.Int) Element
	// BaseScale sets the receiver to s·G for the group generator G,
	// and returns it.
	BaseScale(s *big.Int) Element
	// Set sets the receiver to X, and returns it.
	Set(X Element) Element
	// IsEqual returns true if the receiver is equal to X.
	IsEqual(X Element) bool
	// IsIdentity returns true if the receiver is the identity element.
	IsIdentity() bool
	// String returns a hex representation of the element.
	String() string
	// BinaryMarshaler returns the canonical encoding of the element.
	encoding.BinaryMarshaler
	// BinaryUnmarshaler recovers an element from its canonical
	// encoding and rejects anything else.
	encoding.BinaryUnmarshaler
}

// Group represents a prime-order group.
type Group interface {
	// Name returns the name of the group.
	Name() string

	// Element creates a new group element set to the identity.
	Element() Element
	// Generator creates a group element set to the group's base point.
	Generator() Element
	// Identity creates a group element set to the identity element.
	Identity() Element
	// Random returns a uniformly sampled group element.
	Random() Element

	// MultiExp returns the weighted sum Σ scalars[i]·points[i]. The
	// two slices must have equal length, else ErrLengthMismatch.
	MultiExp(scalars []*big.Int, points []Element) (Element, error)

	// HashToPoint deterministically derives a group element from data
	// by rejection sampling. The discrete logarithm of the result is
	// unknown to everyone, so derived points are usable as independent
	// commitment bases without a trusted setup.
	HashToPoint(data []byte) Element

	// N returns the prime order of the group.
	N() *big.Int
	// P returns the order of the field the group is defined over.
	P() *big.Int

	// ElementSize returns the byte length of a marshalled element.
	ElementSize() int
}

// multiExp is the accumulator loop shared by all backends.
func multiExp(g Group, scalars []*big.Int, points []Element) (Element, error) {
	if len(scalars) != len(points) {
		return nil, ErrLengthMismatch
	}
	acc := g.Identity()
	for i := range scalars {
		acc.Add(acc, g.Element().Scale(points[i], scalars[i]))
	}
	return acc, nil
}
