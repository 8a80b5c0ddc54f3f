package bulletproofs

import (
	"math/big"

	"github.com/veilcash/bulletproofs-go/group"
)

const scalarSize = 32

// Wire layout:
//
//	A ‖ S ‖ T1 ‖ T2 ‖ taux ‖ mu ‖ tx ‖ (L_i ‖ R_i)* ‖ a ‖ b
//
// Points use the group's canonical encoding (32 bytes on
// ristretto255), scalars are 32-byte little-endian. At bit-width 64
// the proof is 224 + 6·64 + 64 = 672 bytes. The round count is not
// encoded; deserialization infers it from the total length.

// Bytes serializes the proof.
func (proof Proof) Bytes() []byte {
	var buf []byte
	buf = append(buf, marshalPoint(proof.A)...)
	buf = append(buf, marshalPoint(proof.S)...)
	buf = append(buf, marshalPoint(proof.T1)...)
	buf = append(buf, marshalPoint(proof.T2)...)
	buf = append(buf, scalarToBytes(proof.TXBlinding)...)
	buf = append(buf, scalarToBytes(proof.EBlinding)...)
	buf = append(buf, scalarToBytes(proof.TX)...)
	for i := range proof.IPP.Ls {
		buf = append(buf, marshalPoint(proof.IPP.Ls[i])...)
		buf = append(buf, marshalPoint(proof.IPP.Rs[i])...)
	}
	buf = append(buf, scalarToBytes(proof.IPP.A)...)
	buf = append(buf, scalarToBytes(proof.IPP.B)...)
	return buf
}

// ProofFromBytes parses a serialized proof produced against params.
// It returns ErrInvalidProofLength when the length cannot match the
// layout, and ErrInvalidProofEncoding when a point or scalar inside
// does not decode canonically. Cryptographic validity is not checked
// here; that is Verify's job.
func ProofFromBytes(data []byte, params SetupParams) (Proof, error) {
	pLen := params.GP.ElementSize()
	headLen := 4*pLen + 3*scalarSize
	tailLen := 2 * scalarSize
	if len(data) < headLen+tailLen {
		return Proof{}, ErrInvalidProofLength
	}
	roundsLen := len(data) - headLen - tailLen
	if roundsLen%(2*pLen) != 0 {
		return Proof{}, ErrInvalidProofLength
	}
	rounds := roundsLen / (2 * pLen)

	mod := params.GP.N()
	r := proofReader{data: data, pLen: pLen, gp: params.GP, mod: mod}

	proof := Proof{Params: params}
	var err error
	if proof.A, err = r.point(); err != nil {
		return Proof{}, err
	}
	if proof.S, err = r.point(); err != nil {
		return Proof{}, err
	}
	if proof.T1, err = r.point(); err != nil {
		return Proof{}, err
	}
	if proof.T2, err = r.point(); err != nil {
		return Proof{}, err
	}
	if proof.TXBlinding, err = r.scalar(); err != nil {
		return Proof{}, err
	}
	if proof.EBlinding, err = r.scalar(); err != nil {
		return Proof{}, err
	}
	if proof.TX, err = r.scalar(); err != nil {
		return Proof{}, err
	}
	proof.IPP.Ls = make([]group.Element, rounds)
	proof.IPP.Rs = make([]group.Element, rounds)
	for i := 0; i < rounds; i++ {
		if proof.IPP.Ls[i], err = r.point(); err != nil {
			return Proof{}, err
		}
		if proof.IPP.Rs[i], err = r.point(); err != nil {
			return Proof{}, err
		}
	}
	if proof.IPP.A, err = r.scalar(); err != nil {
		return Proof{}, err
	}
	if proof.IPP.B, err = r.scalar(); err != nil {
		return Proof{}, err
	}
	return proof, nil
}

type proofReader struct {
	data []byte
	pLen int
	gp   group.Group
	mod  *big.Int
}

func (r *proofReader) point() (group.Element, error) {
	e := r.gp.Element()
	if err := e.UnmarshalBinary(r.data[:r.pLen]); err != nil {
		return nil, ErrInvalidProofEncoding
	}
	r.data = r.data[r.pLen:]
	return e, nil
}

func (r *proofReader) scalar() (*big.Int, error) {
	s, err := scalarFromBytes(r.data[:scalarSize], r.mod)
	if err != nil {
		return nil, err
	}
	r.data = r.data[scalarSize:]
	return s, nil
}

func marshalPoint(p group.Element) []byte {
	buf, err := p.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return buf
}

// scalarToBytes encodes a reduced scalar as 32 little-endian bytes.
func scalarToBytes(s *big.Int) []byte {
	be := make([]byte, scalarSize)
	s.FillBytes(be)
	le := make([]byte, scalarSize)
	for i := range be {
		le[scalarSize-1-i] = be[i]
	}
	return le
}

// scalarFromBytes decodes 32 little-endian bytes, rejecting
// non-canonical values (>= the group order).
func scalarFromBytes(data []byte, mod *big.Int) (*big.Int, error) {
	be := make([]byte, len(data))
	for i := range data {
		be[len(data)-1-i] = data[i]
	}
	s := new(big.Int).SetBytes(be)
	if s.Cmp(mod) >= 0 {
		return nil, ErrInvalidProofEncoding
	}
	return s, nil
}
