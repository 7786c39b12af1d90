// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// regTestCoinbaseBytes is the wire encoding of the regression test network's
// genesis coinbase transaction.
var regTestCoinbaseBytes = []byte{
	0x01, 0x00, 0x00, 0x00, // Version
	0x01, // Varint for number of transaction inputs
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Previous output hash
	0xff, 0xff, 0xff, 0xff, // Previous output index
	0x20, // Varint for length of signature script
	0x1f, 0x44, 0x65, 0x63, 0x65, 0x6e, 0x74, 0x72,
	0x61, 0x6c, 0x69, 0x73, 0x65, 0x64, 0x20, 0x41,
	0x75, 0x74, 0x6f, 0x6e, 0x6f, 0x6d, 0x6f, 0x75,
	0x73, 0x20, 0x57, 0x6f, 0x72, 0x6c, 0x64, 0x73, // Signature script
	0xff, 0xff, 0xff, 0xff, // Sequence
	0x01,                                           // Varint for number of transaction outputs
	0x00, 0xce, 0x59, 0x4c, 0xfe, 0xf2, 0x4e, 0x00, // Transaction amount
	0x17, // Varint for length of pk script
	0xa9, 0x14, 0x2b, 0x6d, 0xef, 0xe4, 0x1a, 0xa3,
	0xaa, 0x47, 0x79, 0x5b, 0x70, 0x2c, 0x89, 0x3c,
	0x73, 0xe7, 0x16, 0xd4, 0x85, 0xab, 0x87, // Pk script
	0x00, 0x00, 0x00, 0x00, // Lock time
}

// regTestCoinbaseTxID is the identifying hash of the transaction above.
var regTestCoinbaseTxID = chainhash.Hash{
	0x5a, 0xd5, 0x2d, 0xc3, 0xe5, 0x8a, 0x96, 0x8b,
	0xa9, 0x21, 0x02, 0xf4, 0xf9, 0xe2, 0x11, 0xde,
	0xaa, 0x5b, 0xbe, 0x44, 0x24, 0x65, 0x86, 0x63,
	0xaf, 0x0a, 0x32, 0x75, 0xc2, 0xa4, 0x96, 0x9f,
}

// TestTx tests the MsgTx API.
func TestTx(t *testing.T) {
	// Ensure the constructor returns the expected version.
	msg := NewMsgTx(TxVersion)
	if msg.Version != TxVersion {
		t.Errorf("NewMsgTx: wrong version - got %v, want %v",
			msg.Version, TxVersion)
	}

	// Ensure we get the same transaction input back out.
	prevOut := OutPoint{Hash: chainhash.Hash{0x01}, Index: 1}
	txIn := &TxIn{
		PreviousOutPoint: prevOut,
		SignatureScript:  []byte{0x04, 0x31, 0x32, 0x33, 0x34},
		Sequence:         MaxTxInSequenceNum,
	}
	msg.AddTxIn(txIn)
	if !reflect.DeepEqual(msg.TxIn[0], txIn) {
		t.Errorf("AddTxIn: wrong transaction input added - got %v, "+
			"want %v", spew.Sprint(msg.TxIn[0]), spew.Sprint(txIn))
	}

	// Ensure we get the same transaction output back out.
	txOut := &TxOut{
		Value:    5000000000,
		PkScript: []byte{0x51},
	}
	msg.AddTxOut(txOut)
	if !reflect.DeepEqual(msg.TxOut[0], txOut) {
		t.Errorf("AddTxOut: wrong transaction output added - got %v, "+
			"want %v", spew.Sprint(msg.TxOut[0]), spew.Sprint(txOut))
	}

	// Ensure copy produces an identical, independent transaction.
	newMsg := msg.Copy()
	if !reflect.DeepEqual(newMsg, msg) {
		t.Errorf("Copy: mismatched tx messages - got %v, want %v",
			spew.Sdump(newMsg), spew.Sdump(msg))
	}
	newMsg.TxIn[0].SignatureScript[0] = 0xff
	if msg.TxIn[0].SignatureScript[0] == 0xff {
		t.Errorf("Copy: script not deep copied")
	}
}

// TestTxHash tests the ability to generate the identifying hash of a
// transaction accurately.
func TestTxHash(t *testing.T) {
	var tx MsgTx
	rbuf := bytes.NewReader(regTestCoinbaseBytes)
	if err := tx.Deserialize(rbuf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	txHash := tx.TxHash()
	if !txHash.IsEqual(&regTestCoinbaseTxID) {
		t.Errorf("TxHash: wrong hash - got %v, want %v",
			spew.Sprint(txHash), spew.Sprint(regTestCoinbaseTxID))
	}
}

// TestTxSerialize tests MsgTx serialize and deserialize against the known
// regression test genesis coinbase.
func TestTxSerialize(t *testing.T) {
	var tx MsgTx
	rbuf := bytes.NewReader(regTestCoinbaseBytes)
	if err := tx.Deserialize(rbuf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if len(tx.TxIn) != 1 || len(tx.TxOut) != 1 {
		t.Fatalf("unexpected input/output counts: %d/%d",
			len(tx.TxIn), len(tx.TxOut))
	}
	if tx.TxIn[0].PreviousOutPoint.Index != MaxPrevOutIndex {
		t.Fatalf("coinbase prevout index: got %d, want %d",
			tx.TxIn[0].PreviousOutPoint.Index, uint32(MaxPrevOutIndex))
	}
	if tx.TxOut[0].Value != 22222222200000000 {
		t.Fatalf("output value: got %d", tx.TxOut[0].Value)
	}

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), regTestCoinbaseBytes) {
		t.Fatalf("Serialize: got %v, want %v", spew.Sdump(buf.Bytes()),
			spew.Sdump(regTestCoinbaseBytes))
	}
	if buf.Len() != tx.SerializeSize() {
		t.Fatalf("SerializeSize: got %d, want %d", tx.SerializeSize(),
			buf.Len())
	}
}
