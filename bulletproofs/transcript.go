package bulletproofs

import (
	"encoding/binary"
	"math/big"

	"github.com/gtank/merlin"

	"github.com/veilcash/bulletproofs-go/group"
)

// transcript drives the Fiat-Shamir heuristic: every public protocol
// value is appended before any challenge depending on it is extracted,
// and prover and verifier must append in byte-identical order.
type transcript struct {
	mt  *merlin.Transcript
	mod *big.Int
}

func newTranscript(label string, mod *big.Int) *transcript {
	return &transcript{mt: merlin.NewTranscript(label), mod: mod}
}

func (t *transcript) appendBytes(label string, data []byte) {
	t.mt.AppendMessage([]byte(label), data)
}

func (t *transcript) appendUint64(label string, v uint64) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	t.appendBytes(label, buf)
}

func (t *transcript) rangeproofDomainSep(n uint64) {
	t.appendBytes("dom-sep", []byte("rangeproof v1"))
	t.appendUint64("n", n)
}

func (t *transcript) innerproductDomainSep(n uint64) {
	t.appendBytes("dom-sep", []byte("ipp v1"))
	t.appendUint64("n", n)
}

func (t *transcript) appendPoint(label string, p group.Element) {
	buf, err := p.MarshalBinary()
	if err != nil {
		panic(err)
	}
	t.appendBytes(label, buf)
}

func (t *transcript) appendScalar(label string, s *big.Int) {
	t.appendBytes(label, scalarToBytes(s))
}

// challengeScalar extracts 64 bytes and reduces them mod the group
// order, so the challenge bias is negligible.
func (t *transcript) challengeScalar(label string) *big.Int {
	data := t.mt.ExtractBytes([]byte(label), 64)
	return scalarFromWide(data, t.mod)
}

// scalarFromWide interprets data as a little-endian integer and
// reduces it mod mod.
func scalarFromWide(data []byte, mod *big.Int) *big.Int {
	buf := make([]byte, len(data))
	for i := range data {
		buf[len(data)-1-i] = data[i]
	}
	return new(big.Int).Mod(new(big.Int).SetBytes(buf), mod)
}
