// Package bulletproofs implements non-interactive Bulletproof range
// proofs for Pedersen-committed amounts, as used by confidential
// transfers: a prover holding (value, commitment, blinding) convinces
// anyone that the committed value lies in [0, 2^n) without revealing
// it. Challenges are derived from a merlin transcript, so prover and
// verifier must perform byte-identical append sequences.
//
// The scheme follows the ePrint version of the paper:
// Bulletproofs: Short Proofs for Confidential Transactions and More,
// https://eprint.iacr.org/2017/1066.pdf
package bulletproofs

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/veilcash/bulletproofs-go/group"
)

const bulletproofDomainTag = "vc_bulletproof_transcript"

var (
	// ErrValueOutOfRange means the secret value does not fit the range
	// being proven. Callers must range-check amounts before proving.
	ErrValueOutOfRange = errors.New("bulletproofs: value outside proof range")
	// ErrInvalidProofLength means a serialized proof has a length the
	// wire layout cannot produce.
	ErrInvalidProofLength = errors.New("bulletproofs: invalid serialized proof length")
	// ErrInvalidProofEncoding means a point or scalar inside a
	// serialized proof does not decode canonically.
	ErrInvalidProofEncoding = errors.New("bulletproofs: malformed proof encoding")
)

// SetupParams holds the public parameters shared by prover and
// verifier. All generators are derived deterministically, so both
// sides recompute identical parameters and nothing is ever
// transmitted or trusted.
type SetupParams struct {
	// N is the bit length of the range.
	N int64
	// G is the value base of Pedersen commitments (the group's base
	// point).
	G group.Element
	// H is the blinding base, derived from G by hash-to-point so that
	// no one knows the discrete logarithm between the two.
	H group.Element
	// Gg and Hh are the per-bit generator vectors.
	Gg []group.Element
	Hh []group.Element
	GP group.Group
}

// Setup derives the public parameters for range [0, 2^n) over gp.
// n must be 8, 16, 32 or 64.
func Setup(gp group.Group, n int64) (SetupParams, error) {
	switch n {
	case 8, 16, 32, 64:
	default:
		return SetupParams{}, fmt.Errorf("bulletproofs: invalid bitsize %d", n)
	}

	params := SetupParams{N: n, GP: gp}
	params.G = gp.Generator()
	gBytes, err := params.G.MarshalBinary()
	if err != nil {
		return SetupParams{}, err
	}
	params.H = gp.HashToPoint(gBytes)
	params.Gg, params.Hh = deriveGenerators(gp, n)
	return params, nil
}

var (
	defaultOnce   sync.Once
	defaultParams SetupParams
)

// Params returns the shared 64-bit parameters over ristretto255.
// Computed once on first use and immutable afterwards, so concurrent
// provers and verifiers share it without locking.
func Params() SetupParams {
	defaultOnce.Do(func() {
		defaultParams, _ = Setup(group.Ristretto255(), 64)
	})
	return defaultParams
}

// Commit returns the Pedersen commitment value·G + blinding·H.
func (params SetupParams) Commit(value, blinding *big.Int) group.Element {
	C := params.GP.Element().BaseScale(value)
	return C.Add(C, params.GP.Element().Scale(params.H, blinding))
}

// Proof is a Bulletproof for a single Pedersen commitment. TX is the
// claimed polynomial evaluation t(x), TXBlinding its blinding factor
// and EBlinding the blinding for the combined A/S commitment.
type Proof struct {
	A, S       group.Element
	T1, T2     group.Element
	TX         *big.Int
	TXBlinding *big.Int
	EBlinding  *big.Int
	IPP        InnerProductProof

	// Params are the public parameters the proof was built against.
	Params SetupParams
}
