// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/spaceexpanse/rod-core-wallet/wire"
)

// premineAmount is the amount paid to the premine script by every genesis
// block.  It is the maximum possible number of coins needed in case
// everything is sold in the ICO; excessive coins are burnt by sending them
// to an unspendable output.
const premineAmount = 222222222 * SatoshiPerRod

// genesisTimestampMainNet is the string embedded in the main network genesis
// coinbase input.  It references a block hash of the Huntercoin chain to
// prove the genesis was not created ahead of time.
const genesisTimestampMainNet = "HUC #2,351,800: " +
	"8730ea650d24cd01692a5adb943e7b8720b0ba8a4c64ffcdf5a95d9b3fb57b7f"

// genesisTimestampTestNet is the string embedded in the genesis coinbase
// input of all test networks.
const genesisTimestampTestNet = "Decentralised Autonomous Worlds"

// preminePayoutMainNet is the HASH160 of the 2-of-4 multisig redeem script
// holding the premine on the main and public test networks.  Like all hashes
// in this package it is stored in reverse of its canonical display order
// (display 8cb1c236d34c74221fe4163bbba739b52e95f484).
var preminePayoutMainNet = [20]byte{
	0x84, 0xf4, 0x95, 0x2e, 0xb5, 0x39, 0xa7, 0xbb,
	0x3b, 0x16, 0xe4, 0x1f, 0x22, 0x74, 0x4c, 0xd3,
	0x36, 0xc2, 0xb1, 0x8c,
}

// preminePayoutRegNet is the HASH160 of the 1-of-2 multisig redeem script
// holding the premine on the regression test network, stored in reverse of
// its display order (display 2b6defe41aa3aa47795b702c893c73e716d485ab).
var preminePayoutRegNet = [20]byte{
	0xab, 0x85, 0xd4, 0x16, 0xe7, 0x73, 0x3c, 0x89,
	0x2c, 0x70, 0x5b, 0x79, 0x47, 0xaa, 0xa3, 0x1a,
	0xe4, 0xef, 0x6d, 0x2b,
}

// genesisCoinbaseTx builds the single coinbase transaction of a genesis
// block.  The input spends nothing and carries the raw timestamp string as
// its signature script; the output pays the premine to a pay-to-script-hash
// script built from the premine script hash.
func genesisCoinbaseTx(timestamp string, preminePayout [20]byte) *wire.MsgTx {
	// A direct push for short timestamps, OP_PUSHDATA1 once the data no
	// longer fits in a single push opcode.
	data := []byte(timestamp)
	var sigScript []byte
	if len(data) < 0x4c {
		sigScript = append([]byte{byte(len(data))}, data...)
	} else {
		sigScript = append([]byte{0x4c, byte(len(data))}, data...)
	}

	// The script hash is stored in reversed hash order, so it has to be
	// flipped back into display order for the script itself.
	var scriptHash [20]byte
	for i, b := range preminePayout {
		scriptHash[len(scriptHash)-1-i] = b
	}

	// OP_HASH160 <20-byte hash> OP_EQUAL.
	pkScript := make([]byte, 0, 23)
	pkScript = append(pkScript, 0xa9, 0x14)
	pkScript = append(pkScript, scriptHash[:]...)
	pkScript = append(pkScript, 0x87)

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(&wire.TxOut{
		Value:    premineAmount,
		PkScript: pkScript,
	})
	return tx
}

// NewGenesisBlock deterministically constructs a genesis block for the given
// proof-of-work algorithm.  The pure header keeps zero difficulty bits and
// nonce; the externally mined nonce and the difficulty bits live on the
// proof-of-work envelope, whose fake header commits to the pure header's
// hash.  It exists as an exported constructor so offline mining tools can
// build candidate genesis blocks for new networks.
func NewGenesisBlock(nTime, nonce, bits uint32, algo wire.PowAlgo,
	timestamp string, preminePayout [20]byte) *wire.MsgBlock {

	tx := genesisCoinbaseTx(timestamp, preminePayout)
	merkleRoot := tx.TxHash()

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    1,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: merkleRoot,
			Timestamp:  time.Unix(int64(nTime), 0),
			Bits:       0,
			Nonce:      0,
		},
		Transactions: []*wire.MsgTx{tx},
	}

	block.Pow.SetCoreAlgo(algo)
	block.Pow.Bits = bits
	fake := block.Pow.InitFakeHeader(&block.Header)
	fake.Nonce = nonce

	return block
}

// newGenesisBlock constructs one of the package-level genesis blocks.  All
// shipped networks declare the neoscrypt algorithm on their genesis proof.
func newGenesisBlock(nTime, nonce, bits uint32, timestamp string,
	preminePayout [20]byte) *wire.MsgBlock {

	return NewGenesisBlock(nTime, nonce, bits, wire.PowAlgoNeoscrypt,
		timestamp, preminePayout)
}

// genesisBlock defines the genesis block of the block chain which serves as
// the public transaction ledger for the main network.
var genesisBlock = newGenesisBlock(1531470713, 482087, 0x1e0ffff0,
	genesisTimestampMainNet, preminePayoutMainNet)

// genesisHash is the hash of the first block in the block chain for the main
// network (genesis block).
var genesisHash = newHashFromStr("e5062d76e5f50c42f493826ac9920b63a8def2626fd70a5cec707ec47a4c4651")

// genesisMerkleRoot is the hash of the first transaction in the genesis
// block for the main network.
var genesisMerkleRoot = newHashFromStr("0827901b75ab43978c3cf20a78baf040faeb0e2eeff3a2c58ab6521a6d46f8fd")

// testNet3GenesisBlock defines the genesis block for the legacy public test
// network (version 3).
var testNet3GenesisBlock = newGenesisBlock(1530623291, 343829, 0x1e0ffff0,
	genesisTimestampTestNet, preminePayoutMainNet)

// testNet3GenesisHash is the hash of the first block in the block chain for
// the legacy public test network (version 3).
var testNet3GenesisHash = newHashFromStr("5195fc01d0e23d70d1f929f21ec55f47e1c6ea1e66fae98ee44cbbc994509bba")

// testNet3GenesisMerkleRoot is the hash of the first transaction in the
// genesis block for the test networks.  It shares the mainnet premine but
// embeds the shorter test timestamp string.
var testNet3GenesisMerkleRoot = newHashFromStr("59d1a23342282179e810dff9238a97d07bd8602e3a1ba0efb5f519008541f257")

// testNet4GenesisBlock defines the genesis block for the version 4 public
// test network.  It is currently the same block as the version 3 genesis.
var testNet4GenesisBlock = newGenesisBlock(1530623291, 343829, 0x1e0ffff0,
	genesisTimestampTestNet, preminePayoutMainNet)

// sigNetGenesisBlock defines the genesis block for the signet network.
var sigNetGenesisBlock = newGenesisBlock(1601286749, 534547, 0x1e0ffff0,
	genesisTimestampTestNet, preminePayoutMainNet)

// sigNetGenesisHash is the hash of the first block in the block chain for
// the signet network.
var sigNetGenesisHash = newHashFromStr("8d5223e215a03970bb3d3bc511a0d9a003e03cbc973289611ca6e0e617f57ccf")

// regTestGenesisBlock defines the genesis block for the regression test
// network.
var regTestGenesisBlock = newGenesisBlock(1300000000, 0, 0x207fffff,
	genesisTimestampTestNet, preminePayoutRegNet)

// regTestGenesisHash is the hash of the first block in the block chain for
// the regression test network.
var regTestGenesisHash = newHashFromStr("6f750b36d22f1dc3d0a6e483af45301022646dfc3b3ba2187865f5a7d6d83ab1")

// regTestGenesisMerkleRoot is the hash of the first transaction in the
// genesis block for the regression test network.
var regTestGenesisMerkleRoot = newHashFromStr("9f96a4c275320aaf6386652444be5baade11e2f9f40221a98b968ae5c32dd55a")

// assertGenesis compares a freshly built genesis block against its expected
// hash and merkle root and panics on any mismatch.  A failure here is a
// programming defect, not a runtime condition, so there is no recoverable
// path.
func assertGenesis(name string, block *wire.MsgBlock, wantHash,
	wantMerkle *chainhash.Hash) {

	gotHash := block.BlockHash()
	if !gotHash.IsEqual(wantHash) {
		panic("genesis block hash mismatch for " + name + ": got " +
			gotHash.String() + ", want " + wantHash.String())
	}
	if !block.Header.MerkleRoot.IsEqual(wantMerkle) {
		panic("genesis merkle root mismatch for " + name + ": got " +
			block.Header.MerkleRoot.String() + ", want " +
			wantMerkle.String())
	}
	if !block.Pow.ValidFakeHeader(&block.Header) {
		panic("genesis fake header does not commit to the pure " +
			"header for " + name)
	}
}

func init() {
	assertGenesis("mainnet", genesisBlock, genesisHash, genesisMerkleRoot)
	assertGenesis("testnet3", testNet3GenesisBlock, testNet3GenesisHash,
		testNet3GenesisMerkleRoot)
	assertGenesis("testnet4", testNet4GenesisBlock, testNet3GenesisHash,
		testNet3GenesisMerkleRoot)
	assertGenesis("signet", sigNetGenesisBlock, sigNetGenesisHash,
		testNet3GenesisMerkleRoot)
	assertGenesis("regtest", regTestGenesisBlock, regTestGenesisHash,
		regTestGenesisMerkleRoot)
}
