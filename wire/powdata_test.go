// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// TestPowAlgo tests the algorithm flag helpers and string forms.
func TestPowAlgo(t *testing.T) {
	tests := []struct {
		algo   PowAlgo
		core   PowAlgo
		merged bool
		str    string
	}{
		{PowAlgoSHA256D, PowAlgoSHA256D, false, "sha256d"},
		{PowAlgoNeoscrypt, PowAlgoNeoscrypt, false, "neoscrypt"},
		{
			PowAlgoSHA256D | PowAlgoFlagMergeMined,
			PowAlgoSHA256D, true, "sha256d/merged",
		},
		{PowAlgoInvalid, PowAlgoInvalid, false, "Unknown PowAlgo (0)"},
		{PowAlgo(0xff), PowAlgo(0x7f), true, "Unknown PowAlgo (255)"},
	}

	for _, test := range tests {
		if got := test.algo.CoreAlgo(); got != test.core {
			t.Errorf("%d: CoreAlgo got %v, want %v", test.algo, got,
				test.core)
		}
		if got := test.algo.IsMergeMined(); got != test.merged {
			t.Errorf("%d: IsMergeMined got %v, want %v", test.algo,
				got, test.merged)
		}
		if got := test.algo.String(); got != test.str {
			t.Errorf("%d: String got %q, want %q", test.algo, got,
				test.str)
		}
	}
}

// TestPowDataSetCoreAlgo checks that changing the core algorithm preserves
// the merge-mined flag.
func TestPowDataSetCoreAlgo(t *testing.T) {
	var pow PowData
	pow.SetCoreAlgo(PowAlgoNeoscrypt)
	if pow.Algo != PowAlgoNeoscrypt {
		t.Fatalf("got algo %v, want %v", pow.Algo, PowAlgoNeoscrypt)
	}

	pow.Algo = PowAlgoSHA256D | PowAlgoFlagMergeMined
	pow.SetCoreAlgo(PowAlgoNeoscrypt)
	if pow.Algo != PowAlgoNeoscrypt|PowAlgoFlagMergeMined {
		t.Fatalf("merge-mined flag lost: got algo %v", pow.Algo)
	}

	// Setting an already-flagged algorithm must not leak the flag into
	// the core bits.
	pow.SetCoreAlgo(PowAlgoSHA256D | PowAlgoFlagMergeMined)
	if pow.Algo != PowAlgoSHA256D|PowAlgoFlagMergeMined {
		t.Fatalf("got algo %v", pow.Algo)
	}
}

// TestPowDataFakeHeader checks the fake header commitment helpers.
func TestPowDataFakeHeader(t *testing.T) {
	parent := BlockHeader{
		Version:    1,
		MerkleRoot: chainhash.Hash{0x01},
		Timestamp:  time.Unix(1531470713, 0),
	}

	pow := PowData{Algo: PowAlgoSHA256D, Bits: 0x1e0ffff0}
	if pow.ValidFakeHeader(&parent) {
		t.Fatalf("nil fake header reported valid")
	}

	fake := pow.InitFakeHeader(&parent)
	if fake != pow.FakeHeader {
		t.Fatalf("InitFakeHeader did not return the attached header")
	}
	parentHash := parent.BlockHash()
	if !fake.MerkleRoot.IsEqual(&parentHash) {
		t.Fatalf("fake header does not commit to the parent hash")
	}
	if got := fake.Timestamp.Unix(); got != 0 {
		t.Fatalf("fake header timestamp: got %d, want 0", got)
	}
	if !pow.ValidFakeHeader(&parent) {
		t.Fatalf("fresh fake header reported invalid")
	}

	// A different parent must not validate.
	other := parent
	other.Version = 2
	if pow.ValidFakeHeader(&other) {
		t.Fatalf("fake header validated against the wrong parent")
	}

	// The nonce is free to iterate without breaking the commitment.
	fake.Nonce = 12345
	if !pow.ValidFakeHeader(&parent) {
		t.Fatalf("nonce iteration broke the commitment")
	}
}

// TestPowHash checks the proof-of-work digest computation.
func TestPowHash(t *testing.T) {
	parent := BlockHeader{Version: 1, Timestamp: time.Unix(1, 0)}

	pow := PowData{Algo: PowAlgoSHA256D, Bits: 0x207fffff}
	if _, err := pow.PowHash(); err == nil {
		t.Fatalf("PowHash succeeded without a fake header")
	}

	pow.InitFakeHeader(&parent)
	got, err := pow.PowHash()
	if err != nil {
		t.Fatalf("PowHash: %v", err)
	}

	// For sha256d the proof-of-work digest equals the fake header's own
	// block hash.
	want := pow.FakeHeader.BlockHash()
	if !got.IsEqual(&want) {
		t.Fatalf("PowHash: got %v, want %v", got, want)
	}

	// No digest is linked for neoscrypt by default.
	pow.SetCoreAlgo(PowAlgoNeoscrypt)
	if _, err := pow.PowHash(); err == nil {
		t.Fatalf("PowHash succeeded without a registered digest")
	}
}

// TestRegisterPowHasher checks digest registration, using a throwaway
// algorithm value so the package-level map stays clean for other tests.
func TestRegisterPowHasher(t *testing.T) {
	algo := PowAlgo(0x70)
	defer delete(powHashers, algo)

	sentinel := chainhash.Hash{0xab}
	RegisterPowHasher(algo|PowAlgoFlagMergeMined, func(b []byte) chainhash.Hash {
		return sentinel
	})

	parent := BlockHeader{Version: 1, Timestamp: time.Unix(1, 0)}
	pow := PowData{Algo: algo}
	pow.InitFakeHeader(&parent)
	got, err := pow.PowHash()
	if err != nil {
		t.Fatalf("PowHash: %v", err)
	}
	if !got.IsEqual(&sentinel) {
		t.Fatalf("registered digest not used: got %v", got)
	}
}

// TestPowDataWire tests the PowData wire encode and decode round trip.
func TestPowDataWire(t *testing.T) {
	parent := BlockHeader{
		Version:    1,
		MerkleRoot: chainhash.Hash{0x03},
		Timestamp:  time.Unix(1531470713, 0),
	}
	pow := PowData{Algo: PowAlgoNeoscrypt, Bits: 0x1e0ffff0}
	pow.InitFakeHeader(&parent).Nonce = 482087

	var buf bytes.Buffer
	if err := pow.BtcEncode(&buf, ProtocolVersion); err != nil {
		t.Fatalf("BtcEncode: %v", err)
	}
	if buf.Len() != pow.SerializeSize() {
		t.Fatalf("encoded length %d does not match SerializeSize %d",
			buf.Len(), pow.SerializeSize())
	}

	var got PowData
	if err := got.BtcDecode(&buf, ProtocolVersion); err != nil {
		t.Fatalf("BtcDecode: %v", err)
	}
	if !reflect.DeepEqual(got, pow) {
		t.Fatalf("round trip mismatch: got %v, want %v",
			spew.Sdump(&got), spew.Sdump(&pow))
	}
}

// TestPowDataMergeMined ensures merge-mined proofs are rejected by the
// codec, matching the unsupported auxiliary proof format.
func TestPowDataMergeMined(t *testing.T) {
	pow := PowData{Algo: PowAlgoSHA256D | PowAlgoFlagMergeMined}
	var buf bytes.Buffer
	if err := pow.BtcEncode(&buf, ProtocolVersion); err == nil {
		t.Fatalf("encoded a merge-mined proof")
	}

	wireData := []byte{
		byte(PowAlgoSHA256D | PowAlgoFlagMergeMined),
		0xf0, 0xff, 0x0f, 0x1e,
	}
	var got PowData
	err := got.BtcDecode(bytes.NewReader(wireData), ProtocolVersion)
	if err == nil {
		t.Fatalf("decoded a merge-mined proof")
	}
}

// TestPowDataEncodeNilFakeHeader ensures encoding a standalone proof without
// a fake header fails rather than writing a truncated envelope.
func TestPowDataEncodeNilFakeHeader(t *testing.T) {
	pow := PowData{Algo: PowAlgoNeoscrypt, Bits: 0x1e0ffff0}
	var buf bytes.Buffer
	if err := pow.BtcEncode(&buf, ProtocolVersion); err == nil {
		t.Fatalf("encoded a standalone proof without a fake header")
	}
}
