// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestGenesisBlock tests the genesis block of the main network for validity
// by checking the encoded bytes and hashes.
func TestGenesisBlock(t *testing.T) {
	// Encode the genesis block to raw bytes.
	var buf bytes.Buffer
	err := MainNetParams.GenesisBlock.Serialize(&buf)
	if err != nil {
		t.Fatalf("TestGenesisBlock: %v", err)
	}

	// Ensure the encoded block matches the expected bytes.
	if !bytes.Equal(buf.Bytes(), genesisBlockBytes) {
		t.Fatalf("TestGenesisBlock: Genesis block does not appear valid - "+
			"got %v, want %v", spew.Sdump(buf.Bytes()),
			spew.Sdump(genesisBlockBytes))
	}

	// Check hash of the block against expected hash.
	hash := MainNetParams.GenesisBlock.BlockHash()
	if !MainNetParams.GenesisHash.IsEqual(&hash) {
		t.Fatalf("TestGenesisBlock: Genesis block hash does not "+
			"appear valid - got %v, want %v", spew.Sdump(hash),
			spew.Sdump(MainNetParams.GenesisHash))
	}

	// Check the merkle root against the expected value.
	merkle := MainNetParams.GenesisBlock.Header.MerkleRoot
	if !genesisMerkleRoot.IsEqual(&merkle) {
		t.Fatalf("TestGenesisBlock: Genesis merkle root does not "+
			"appear valid - got %v, want %v", spew.Sdump(merkle),
			spew.Sdump(genesisMerkleRoot))
	}
}

// TestRegTestGenesisBlock tests the genesis block of the regression test
// network for validity by checking the encoded bytes and hashes.
func TestRegTestGenesisBlock(t *testing.T) {
	// Encode the genesis block to raw bytes.
	var buf bytes.Buffer
	err := RegressionNetParams.GenesisBlock.Serialize(&buf)
	if err != nil {
		t.Fatalf("TestRegTestGenesisBlock: %v", err)
	}

	// Ensure the encoded block matches the expected bytes.
	if !bytes.Equal(buf.Bytes(), regTestGenesisBlockBytes) {
		t.Fatalf("TestRegTestGenesisBlock: Genesis block does not "+
			"appear valid - got %v, want %v",
			spew.Sdump(buf.Bytes()),
			spew.Sdump(regTestGenesisBlockBytes))
	}

	// Check hash of the block against expected hash.
	hash := RegressionNetParams.GenesisBlock.BlockHash()
	if !RegressionNetParams.GenesisHash.IsEqual(&hash) {
		t.Fatalf("TestRegTestGenesisBlock: Genesis block hash does "+
			"not appear valid - got %v, want %v", spew.Sdump(hash),
			spew.Sdump(RegressionNetParams.GenesisHash))
	}
}

// TestGenesisHashes checks that every default network's genesis block hash
// and merkle root match the hardcoded expected values.
func TestGenesisHashes(t *testing.T) {
	tests := []struct {
		name       string
		params     *Params
		hash       string
		merkleRoot string
	}{
		{
			name:       "main",
			params:     MainNetParams,
			hash:       "e5062d76e5f50c42f493826ac9920b63a8def2626fd70a5cec707ec47a4c4651",
			merkleRoot: "0827901b75ab43978c3cf20a78baf040faeb0e2eeff3a2c58ab6521a6d46f8fd",
		},
		{
			name:       "test",
			params:     TestNet3Params,
			hash:       "5195fc01d0e23d70d1f929f21ec55f47e1c6ea1e66fae98ee44cbbc994509bba",
			merkleRoot: "59d1a23342282179e810dff9238a97d07bd8602e3a1ba0efb5f519008541f257",
		},
		{
			name:       "testnet4",
			params:     TestNet4Params,
			hash:       "5195fc01d0e23d70d1f929f21ec55f47e1c6ea1e66fae98ee44cbbc994509bba",
			merkleRoot: "59d1a23342282179e810dff9238a97d07bd8602e3a1ba0efb5f519008541f257",
		},
		{
			name:       "signet",
			params:     SigNetParams,
			hash:       "8d5223e215a03970bb3d3bc511a0d9a003e03cbc973289611ca6e0e617f57ccf",
			merkleRoot: "59d1a23342282179e810dff9238a97d07bd8602e3a1ba0efb5f519008541f257",
		},
		{
			name:       "regtest",
			params:     RegressionNetParams,
			hash:       "6f750b36d22f1dc3d0a6e483af45301022646dfc3b3ba2187865f5a7d6d83ab1",
			merkleRoot: "9f96a4c275320aaf6386652444be5baade11e2f9f40221a98b968ae5c32dd55a",
		},
	}

	for _, test := range tests {
		wantHash := newHashFromStr(test.hash)
		gotHash := test.params.GenesisBlock.BlockHash()
		if !gotHash.IsEqual(wantHash) {
			t.Errorf("%s: genesis hash mismatch - got %v, want %v",
				test.name, gotHash, wantHash)
		}

		wantMerkle := newHashFromStr(test.merkleRoot)
		gotMerkle := test.params.GenesisBlock.Header.MerkleRoot
		if !gotMerkle.IsEqual(wantMerkle) {
			t.Errorf("%s: genesis merkle root mismatch - got %v, "+
				"want %v", test.name, gotMerkle, wantMerkle)
		}
	}
}

// TestGenesisDeterminism checks that building the same genesis block twice
// yields byte-identical results.
func TestGenesisDeterminism(t *testing.T) {
	a := newGenesisBlock(1531470713, 482087, 0x1e0ffff0,
		genesisTimestampMainNet, preminePayoutMainNet)
	b := newGenesisBlock(1531470713, 482087, 0x1e0ffff0,
		genesisTimestampMainNet, preminePayoutMainNet)

	var bufA, bufB bytes.Buffer
	if err := a.Serialize(&bufA); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if err := b.Serialize(&bufB); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !bytes.Equal(bufA.Bytes(), bufB.Bytes()) {
		t.Fatalf("identical inputs produced different genesis blocks")
	}

	hashA, hashB := a.BlockHash(), b.BlockHash()
	if !hashA.IsEqual(&hashB) {
		t.Fatalf("identical inputs produced different genesis hashes")
	}
}

// TestGenesisFakeHeaderCommitment checks that every network's genesis
// proof-of-work envelope commits to its own pure header.
func TestGenesisFakeHeaderCommitment(t *testing.T) {
	for _, params := range []*Params{MainNetParams, TestNet3Params,
		TestNet4Params, SigNetParams, RegressionNetParams} {

		block := params.GenesisBlock
		if !block.Pow.ValidFakeHeader(&block.Header) {
			t.Errorf("%s: genesis fake header does not commit to "+
				"the pure header", params.Name)
		}
		if block.Header.Bits != 0 || block.Header.Nonce != 0 {
			t.Errorf("%s: genesis pure header must keep zero "+
				"bits/nonce", params.Name)
		}
	}
}

// genesisBlockBytes are the wire encoded bytes for the genesis block of the
// main network as of protocol version 70016.
var genesisBlockBytes = []byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xfd, 0xf8, 0x46, 0x6d,
	0x1a, 0x52, 0xb6, 0x8a, 0xc5, 0xa2, 0xf3, 0xef,
	0x2e, 0x0e, 0xeb, 0xfa, 0x40, 0xf0, 0xba, 0x78,
	0x0a, 0xf2, 0x3c, 0x8c, 0x97, 0x43, 0xab, 0x75,
	0x1b, 0x90, 0x27, 0x08, 0x79, 0x63, 0x48, 0x5b,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x02, 0xf0, 0xff, 0x0f, 0x1e, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x51, 0x46, 0x4c, 0x7a, 0xc4, 0x7e, 0x70,
	0xec, 0x5c, 0x0a, 0xd7, 0x6f, 0x62, 0xf2, 0xde,
	0xa8, 0x63, 0x0b, 0x92, 0xc9, 0x6a, 0x82, 0x93,
	0xf4, 0x42, 0x0c, 0xf5, 0xe5, 0x76, 0x2d, 0x06,
	0xe5, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x27, 0x5b, 0x07, 0x00, 0x01, 0x01, 0x00,
	0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0x52,
	0x4c, 0x50, 0x48, 0x55, 0x43, 0x20, 0x23, 0x32,
	0x2c, 0x33, 0x35, 0x31, 0x2c, 0x38, 0x30, 0x30,
	0x3a, 0x20, 0x38, 0x37, 0x33, 0x30, 0x65, 0x61,
	0x36, 0x35, 0x30, 0x64, 0x32, 0x34, 0x63, 0x64,
	0x30, 0x31, 0x36, 0x39, 0x32, 0x61, 0x35, 0x61,
	0x64, 0x62, 0x39, 0x34, 0x33, 0x65, 0x37, 0x62,
	0x38, 0x37, 0x32, 0x30, 0x62, 0x30, 0x62, 0x61,
	0x38, 0x61, 0x34, 0x63, 0x36, 0x34, 0x66, 0x66,
	0x63, 0x64, 0x66, 0x35, 0x61, 0x39, 0x35, 0x64,
	0x39, 0x62, 0x33, 0x66, 0x62, 0x35, 0x37, 0x62,
	0x37, 0x66, 0xff, 0xff, 0xff, 0xff, 0x01, 0x00,
	0xce, 0x59, 0x4c, 0xfe, 0xf2, 0x4e, 0x00, 0x17,
	0xa9, 0x14, 0x8c, 0xb1, 0xc2, 0x36, 0xd3, 0x4c,
	0x74, 0x22, 0x1f, 0xe4, 0x16, 0x3b, 0xbb, 0xa7,
	0x39, 0xb5, 0x2e, 0x95, 0xf4, 0x84, 0x87, 0x00,
	0x00, 0x00, 0x00,
}

// regTestGenesisBlockBytes are the wire encoded bytes for the genesis block
// of the regression test network as of protocol version 70016.
var regTestGenesisBlockBytes = []byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x5a, 0xd5, 0x2d, 0xc3,
	0xe5, 0x8a, 0x96, 0x8b, 0xa9, 0x21, 0x02, 0xf4,
	0xf9, 0xe2, 0x11, 0xde, 0xaa, 0x5b, 0xbe, 0x44,
	0x24, 0x65, 0x86, 0x63, 0xaf, 0x0a, 0x32, 0x75,
	0xc2, 0xa4, 0x96, 0x9f, 0x00, 0x6d, 0x7c, 0x4d,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x02, 0xff, 0xff, 0x7f, 0x20, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0xb1, 0x3a, 0xd8, 0xd6, 0xa7, 0xf5, 0x65,
	0x78, 0x18, 0xa2, 0x3b, 0x3b, 0xfc, 0x6d, 0x64,
	0x22, 0x10, 0x30, 0x45, 0xaf, 0x83, 0xe4, 0xa6,
	0xd0, 0xc3, 0x1d, 0x2f, 0xd2, 0x36, 0x0b, 0x75,
	0x6f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x00,
	0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0x20,
	0x1f, 0x44, 0x65, 0x63, 0x65, 0x6e, 0x74, 0x72,
	0x61, 0x6c, 0x69, 0x73, 0x65, 0x64, 0x20, 0x41,
	0x75, 0x74, 0x6f, 0x6e, 0x6f, 0x6d, 0x6f, 0x75,
	0x73, 0x20, 0x57, 0x6f, 0x72, 0x6c, 0x64, 0x73,
	0xff, 0xff, 0xff, 0xff, 0x01, 0x00, 0xce, 0x59,
	0x4c, 0xfe, 0xf2, 0x4e, 0x00, 0x17, 0xa9, 0x14,
	0x2b, 0x6d, 0xef, 0xe4, 0x1a, 0xa3, 0xaa, 0x47,
	0x79, 0x5b, 0x70, 0x2c, 0x89, 0x3c, 0x73, 0xe7,
	0x16, 0xd4, 0x85, 0xab, 0x87, 0x00, 0x00, 0x00,
	0x00,
}
