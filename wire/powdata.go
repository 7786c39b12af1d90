// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// PowAlgo identifies the hashing algorithm a block declares for its
// proof-of-work.  The high bit flags a merge-mined proof; the remaining bits
// select the core algorithm.
type PowAlgo uint8

const (
	// PowAlgoInvalid is the zero value and never valid on the wire.
	PowAlgoInvalid PowAlgo = 0

	// PowAlgoSHA256D is the classic double-SHA256 algorithm.  It is the
	// only algorithm for which proofs may be merge-mined.
	PowAlgoSHA256D PowAlgo = 1

	// PowAlgoNeoscrypt is the memory-hard Neoscrypt algorithm, used for
	// standalone (non-merged) mining.
	PowAlgoNeoscrypt PowAlgo = 2

	// PowAlgoFlagMergeMined is the bit flagging a merge-mined proof on
	// top of the core algorithm value.
	PowAlgoFlagMergeMined PowAlgo = 0x80
)

// powAlgoStrings maps core algorithms to their names for pretty printing.
var powAlgoStrings = map[PowAlgo]string{
	PowAlgoSHA256D:   "sha256d",
	PowAlgoNeoscrypt: "neoscrypt",
}

// CoreAlgo returns the algorithm with the merge-mined flag stripped.
func (a PowAlgo) CoreAlgo() PowAlgo {
	return a &^ PowAlgoFlagMergeMined
}

// IsMergeMined returns whether the merge-mined flag is set.
func (a PowAlgo) IsMergeMined() bool {
	return a&PowAlgoFlagMergeMined != 0
}

// String returns the PowAlgo in human-readable form.
func (a PowAlgo) String() string {
	s, ok := powAlgoStrings[a.CoreAlgo()]
	if !ok {
		return fmt.Sprintf("Unknown PowAlgo (%d)", uint8(a))
	}
	if a.IsMergeMined() {
		return s + "/merged"
	}
	return s
}

// PowHasher computes the proof-of-work digest over a serialized fake header
// for one core algorithm.
type PowHasher func([]byte) chainhash.Hash

// powHashers holds the registered digest function per core algorithm.
// Double-SHA256 is built in; the Neoscrypt digest is an external
// collaborator registered by the consumer that links one in.  The map is
// only mutated from init-time registration.
var powHashers = map[PowAlgo]PowHasher{
	PowAlgoSHA256D: chainhash.DoubleHashH,
}

// RegisterPowHasher registers the digest function for the given core
// algorithm, replacing any previous registration.
func RegisterPowHasher(algo PowAlgo, hasher PowHasher) {
	powHashers[algo.CoreAlgo()] = hasher
}

// PowData is the proof-of-work envelope attached to every block header.  The
// difficulty target and the mining nonce live here rather than on the pure
// header: standalone proofs carry a fake header whose merkle-root field
// commits to the parent pure header's hash and whose nonce is the free
// search parameter, while merge-mined proofs carry an auxiliary proof from
// the parent chain instead.
type PowData struct {
	// Algo declares the hashing algorithm, possibly flagged merge-mined.
	Algo PowAlgo

	// Bits is the compact difficulty target the proof must meet.
	Bits uint32

	// FakeHeader is the standalone proof.  It is nil when the proof is
	// merge-mined.
	FakeHeader *BlockHeader
}

// SetCoreAlgo sets the core algorithm, preserving the merge-mined flag.
func (p *PowData) SetCoreAlgo(algo PowAlgo) {
	p.Algo = algo.CoreAlgo() | (p.Algo & PowAlgoFlagMergeMined)
}

// InitFakeHeader attaches a fresh fake header committing to the given parent
// pure header and returns it for nonce iteration.
func (p *PowData) InitFakeHeader(parent *BlockHeader) *BlockHeader {
	fake := &BlockHeader{
		MerkleRoot: parent.BlockHash(),
		Timestamp:  time.Unix(0, 0),
	}
	p.FakeHeader = fake
	return fake
}

// ValidFakeHeader returns whether the attached fake header commits to the
// given parent pure header.
func (p *PowData) ValidFakeHeader(parent *BlockHeader) bool {
	if p.FakeHeader == nil {
		return false
	}
	parentHash := parent.BlockHash()
	return p.FakeHeader.MerkleRoot.IsEqual(&parentHash)
}

// PowHash computes the declared algorithm's digest over the serialized fake
// header.  This is the hash checked against the difficulty target; it is not
// the block's identifying hash.
func (p *PowData) PowHash() (chainhash.Hash, error) {
	if p.FakeHeader == nil {
		return chainhash.Hash{}, fmt.Errorf("pow data carries no fake header")
	}
	hasher, ok := powHashers[p.Algo.CoreAlgo()]
	if !ok || hasher == nil {
		return chainhash.Hash{}, fmt.Errorf("no digest registered for "+
			"algorithm %v", p.Algo.CoreAlgo())
	}

	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, 0, p.FakeHeader)
	return hasher(buf.Bytes()), nil
}

// BtcDecode decodes r using the network protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (p *PowData) BtcDecode(r io.Reader, pver uint32) error {
	var algo uint8
	err := readElements(r, &algo, &p.Bits)
	if err != nil {
		return err
	}
	p.Algo = PowAlgo(algo)

	if p.Algo.IsMergeMined() {
		// Decoding the auxiliary proof from the parent chain is the
		// business of the merge-mining collaborator.
		return fmt.Errorf("merge-mined proof decoding is not supported")
	}

	p.FakeHeader = &BlockHeader{}
	return readBlockHeader(r, pver, p.FakeHeader)
}

// BtcEncode encodes the receiver to w using the network protocol encoding.
// This is part of the Message interface implementation.
func (p *PowData) BtcEncode(w io.Writer, pver uint32) error {
	err := writeElements(w, uint8(p.Algo), p.Bits)
	if err != nil {
		return err
	}

	if p.Algo.IsMergeMined() {
		return fmt.Errorf("merge-mined proof encoding is not supported")
	}
	if p.FakeHeader == nil {
		return fmt.Errorf("pow data carries no fake header")
	}
	return writeBlockHeader(w, pver, p.FakeHeader)
}

// Serialize encodes the pow data to w using a format that is suitable for
// long-term storage such as a database.
func (p *PowData) Serialize(w io.Writer) error {
	return p.BtcEncode(w, 0)
}

// Deserialize decodes the pow data from r using a format that is suitable
// for long-term storage such as a database.
func (p *PowData) Deserialize(r io.Reader) error {
	return p.BtcDecode(r, 0)
}

// SerializeSize returns the number of bytes it would take to serialize the
// pow data.
func (p *PowData) SerializeSize() int {
	// Algo 1 byte + Bits 4 bytes + fake header.
	return 5 + blockHeaderLen
}
