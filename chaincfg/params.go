// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/spaceexpanse/rod-core-wallet/wire"
)

// SatoshiPerRod is the number of base units in one coin.
const SatoshiPerRod int64 = 1e8

// These variables are the chain proof-of-work limit parameters for each
// default network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have
	// for the main and public test networks.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowLimit is the highest proof of work value a block can
	// have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a
	// standard network or previously-registered via this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNet describes an error where a network selection token
	// names no known network.
	ErrUnknownNet = errors.New("unknown chain")

	// ErrMultipleSignetChallenges is returned when more than one signet
	// challenge value is supplied.
	ErrMultipleSignetChallenges = errors.New("-signetchallenge cannot be " +
		"multiple values")

	// ErrInvalidSignetChallenge is returned when the supplied signet
	// challenge is not valid hex.
	ErrInvalidSignetChallenge = errors.New("-signetchallenge must be hex")
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial
// download and also prevents forks from old blocks.
//
// Each checkpoint is selected based upon several factors.  See the
// documentation for chain.IsCheckpointCandidate for details on the
// selection criteria.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// AssumeUtxo is a trust anchor for fast initial sync: at the given height,
// a UTXO set snapshot matching the expected serialized digest may be loaded
// and the chain assumed valid below it while the gap is backfilled.
type AssumeUtxo struct {
	// Height is the block height the snapshot is based on.
	Height int32

	// HashSerialized is the expected digest of the serialized UTXO set.
	HashSerialized *chainhash.Hash

	// ChainTxCount is the expected number of transactions in the chain
	// up to and including the base block, used for progress estimates.
	ChainTxCount uint64

	// BlockHash is the expected hash of the base block.
	BlockHash *chainhash.Hash
}

// ChainTxData holds the statistics of the transaction rate at a recent
// point of the chain.  It is used only for user-facing sync progress
// estimation, never for validation.
type ChainTxData struct {
	// Time is the unix timestamp the statistics were taken at.
	Time int64

	// TxCount is the cumulative number of transactions up to that time.
	TxCount uint64

	// TxRate is the estimated number of transactions per second.
	TxRate float64
}

// Params defines a network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
//
// A Params value is constructed exactly once, is never mutated afterwards
// and is handed to consumers by reference.  The regression test overrides
// are applied strictly during construction.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.RodNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines the DNS seed hostnames for the network.
	DNSSeeds []string

	// FixedSeeds defines serialized known-good peer addresses compiled
	// into the binary for bootstrap when DNS seeding fails.
	FixedSeeds []byte

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a
	// block as a uint256.  Both mining algorithms currently share one
	// limit; use PowLimitForAlgo for per-algorithm access.
	PowLimit *big.Int

	// PowNoRetargeting defines whether the network has difficulty
	// retargeting disabled.
	PowNoRetargeting bool

	// SubsidyHalvingInterval is the interval, in blocks, at which the
	// block subsidy halves.
	SubsidyHalvingInterval int32

	// InitialSubsidy is the block subsidy before the first halving, in
	// base units.
	InitialSubsidy int64

	// AuxpowChainID is this chain's identifier inside merge-mined
	// auxiliary proofs of work.
	AuxpowChainID int32

	// BIP0016Height is the height at which pay-to-script-hash evaluation
	// activates.
	BIP0016Height int32

	// BIP0034Height is the height at which the block height must be
	// committed in the coinbase script.
	BIP0034Height int32

	// BIP0065Height is the height at which OP_CHECKLOCKTIMEVERIFY
	// activates.
	BIP0065Height int32

	// BIP0066Height is the height at which strict DER signatures
	// activate.
	BIP0066Height int32

	// CSVHeight is the height at which relative lock times activate.
	CSVHeight int32

	// SegwitHeight is the height at which segregated witness activates.
	SegwitHeight int32

	// MinBIP9WarningHeight is the first height at which unknown
	// version-bits signalling triggers an operator warning.
	MinBIP9WarningHeight int32

	// EnforceBIP94 defines whether the timewarp mitigation rules on
	// difficulty retarget boundaries are enforced.
	EnforceBIP94 bool

	// RuleChangeActivationThreshold is the number of blocks in a
	// confirmation window that must signal a version-bits deployment in
	// order to lock it in.
	RuleChangeActivationThreshold uint32

	// MinerConfirmationWindow is the number of blocks in a version-bits
	// confirmation window.
	MinerConfirmationWindow uint32

	// Deployments define the specific consensus rule changes to be voted
	// on via version bits.
	Deployments [DefinedDeployments]ConsensusDeployment

	// MinimumChainWork is the minimum cumulative work a chain must have
	// before the node considers it the valid chain.  Nil when no
	// minimum is enforced.
	MinimumChainWork *big.Int

	// DefaultAssumeValid is the block hash below which script checks are
	// assumed valid.  Nil disables the assumption.
	DefaultAssumeValid *chainhash.Hash

	// SignetBlocks defines whether blocks must satisfy the additional
	// signet challenge script.
	SignetBlocks bool

	// SignetChallenge is the raw challenge script signet block solutions
	// must satisfy.  Empty on all other networks.
	SignetChallenge []byte

	// PruneAfterHeight is the first height at which block files may be
	// pruned.
	PruneAfterHeight uint64

	// AssumedBlockchainSize and AssumedChainStateSize are the estimated
	// current disk requirements in gigabytes, used for user prompts.
	AssumedBlockchainSize uint64
	AssumedChainStateSize uint64

	// DefaultConsistencyChecks defines whether expensive sanity checks
	// default to enabled.
	DefaultConsistencyChecks bool

	// MockableChain defines whether block times may be mocked for tests.
	MockableChain bool

	// Checkpoints orders known good block hashes by strictly increasing
	// height.
	Checkpoints []Checkpoint

	// AssumeUtxos lists the supported UTXO set snapshots, ordered by
	// height.
	AssumeUtxos []AssumeUtxo

	// TxData holds recent transaction rate statistics for sync progress
	// estimation.
	TxData ChainTxData

	// Rules selects the per-network consensus rule behaviors.
	Rules RuleVariant

	// Address encoding magics.
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// Human-readable part for Bech32 encoded segwit addresses.
	Bech32HRPSegwit string

	// BIP32 hierarchical deterministic extended key magics.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// PowLimitForAlgo returns the highest allowed proof of work value for the
// given mining algorithm.  A separate limit per algorithm has not been
// needed so far, so both share PowLimit.
func (p *Params) PowLimitForAlgo(algo wire.PowAlgo) *big.Int {
	return p.PowLimit
}

// BuriedActivationHeight returns the activation height of the given buried
// deployment.  Every buried deployment is defined on every network.
func (p *Params) BuriedActivationHeight(dep BuriedDeployment) int32 {
	switch dep {
	case DeploymentP2SH:
		return p.BIP0016Height
	case DeploymentHeightInCoinbase:
		return p.BIP0034Height
	case DeploymentCLTV:
		return p.BIP0065Height
	case DeploymentDerSig:
		return p.BIP0066Height
	case DeploymentCSV:
		return p.CSVHeight
	case DeploymentSegwit:
		return p.SegwitHeight
	}
	panic(fmt.Sprintf("unknown buried deployment %d", dep))
}

// AssumeUtxoForHeight returns the snapshot anchored at the given height, or
// nil when none is defined.
func (p *Params) AssumeUtxoForHeight(height int32) *AssumeUtxo {
	for i := range p.AssumeUtxos {
		if p.AssumeUtxos[i].Height == height {
			return &p.AssumeUtxos[i]
		}
	}
	return nil
}

// AssumeUtxoForBlockHash returns the snapshot anchored at the given block
// hash, or nil when none is defined.
func (p *Params) AssumeUtxoForBlockHash(hash *chainhash.Hash) *AssumeUtxo {
	for i := range p.AssumeUtxos {
		if p.AssumeUtxos[i].BlockHash.IsEqual(hash) {
			return &p.AssumeUtxos[i]
		}
	}
	return nil
}

// AvailableSnapshotHeights returns the heights of all supported UTXO set
// snapshots.
func (p *Params) AvailableSnapshotHeights() []int32 {
	heights := make([]int32, 0, len(p.AssumeUtxos))
	for i := range p.AssumeUtxos {
		heights = append(heights, p.AssumeUtxos[i].Height)
	}
	return heights
}

// newMainNetParams returns the parameters of the main network.
func newMainNetParams() *Params {
	return &Params{
		Name:        "main",
		Net:         wire.MainNet,
		DefaultPort: "8394",
		DNSSeeds: []string{
			"seed.xaya.io",
			"seed.xaya.domob.eu",
		},

		GenesisBlock: genesisBlock,
		GenesisHash:  genesisHash,

		PowLimit:         mainPowLimit,
		PowNoRetargeting: false,

		// The initial subsidy of ~3.8 coins is calculated to yield the
		// desired total PoW coin supply on top of the premine.
		SubsidyHalvingInterval: 4200000,
		InitialSubsidy:         382934346,

		AuxpowChainID: 1829,

		BIP0016Height:        0,
		BIP0034Height:        1,
		BIP0065Height:        0,
		BIP0066Height:        0,
		CSVHeight:            1,
		SegwitHeight:         0,
		MinBIP9WarningHeight: 2016, // segwit height + confirmation window
		EnforceBIP94:         false,

		RuleChangeActivationThreshold: 1815, // 90% of MinerConfirmationWindow
		MinerConfirmationWindow:       2016,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber:  28,
				StartTime:  NeverActive,
				ExpireTime: NoTimeout,
			},
			DeploymentTaproot: {
				BitNumber:  2,
				StartTime:  NeverActive,
				ExpireTime: NoTimeout,
			},
		},

		// The chain work and assume-valid anchor of the main chain at
		// height 6'140'000.
		MinimumChainWork:   hexToBig("0000000000000000000000000000000000000000087d01af5f5d07ac7504ad09"),
		DefaultAssumeValid: newHashFromStr("e7e2e42a07146e80bc64279daefbba6580f1fc40945cdb8defaafde349e9b8d8"),

		PruneAfterHeight:      100000,
		AssumedBlockchainSize: 6,
		AssumedChainStateSize: 1,

		DefaultConsistencyChecks: false,
		MockableChain:            false,

		Checkpoints: []Checkpoint{
			{0, newHashFromStr("ce46f5f898b38e9c8c5e9ae4047ef5bccc42ec8eca0142202813a625e6dc2656")},
			{340000, newHashFromStr("e685ccaa62025c5c5075cfee80e498589bd4788614dcbe397e12bf2b8e887e47")},
			{1234000, newHashFromStr("a853c0581c3637726a769b77cadf185e09666742757ef2df00058e876cf25897")},
		},

		AssumeUtxos: []AssumeUtxo{
			{
				Height:         840000,
				HashSerialized: newHashFromStr("a2a5521b1b5ab65f67818e5e8eccabb7171a517f9e2382208f77687310768f96"),
				ChainTxCount:   991032194,
				BlockHash:      newHashFromStr("0000000000000000000320283a032748cef8227873ff4872689bf23f1cda83a5"),
			},
		},

		TxData: ChainTxData{
			Time:    1725025292,
			TxCount: 8594116,
			TxRate:  0.03238473620992331,
		},

		Rules: MainNetRules,

		PubKeyHashAddrID: 28,
		ScriptHashAddrID: 30,
		PrivateKeyID:     130,
		Bech32HRPSegwit:  "chi",
		HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:    [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
	}
}

// newTestNet3Params returns the parameters of the legacy public test
// network (version 3).
func newTestNet3Params() *Params {
	return &Params{
		Name:        "test",
		Net:         wire.TestNet3,
		DefaultPort: "18394",
		DNSSeeds: []string{
			"seed.testnet.xaya.io",
			"seed.testnet.xaya.domob.eu",
		},

		GenesisBlock: testNet3GenesisBlock,
		GenesisHash:  testNet3GenesisHash,

		PowLimit:         mainPowLimit,
		PowNoRetargeting: false,

		SubsidyHalvingInterval: 4200000,
		InitialSubsidy:         10 * SatoshiPerRod,

		AuxpowChainID: 1829,

		BIP0016Height:        0,
		BIP0034Height:        1,
		BIP0065Height:        0,
		BIP0066Height:        0,
		CSVHeight:            1,
		SegwitHeight:         0,
		MinBIP9WarningHeight: 2016,
		EnforceBIP94:         false,

		RuleChangeActivationThreshold: 1512, // 75% for test networks
		MinerConfirmationWindow:       2016,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber:  28,
				StartTime:  NeverActive,
				ExpireTime: NoTimeout,
			},
			DeploymentTaproot: {
				BitNumber:  2,
				StartTime:  NeverActive,
				ExpireTime: NoTimeout,
			},
		},

		// Anchored at height 110'000.
		MinimumChainWork:   hexToBig("0000000000000000000000000000000000000000000000000000e59eda1191b9"),
		DefaultAssumeValid: newHashFromStr("01547d538737e01d81d207e7d2f4c8f2510c6b82f0ee5dd8cd6c26bed5a03d0f"),

		PruneAfterHeight:      1000,
		AssumedBlockchainSize: 1,
		AssumedChainStateSize: 1,

		DefaultConsistencyChecks: false,
		MockableChain:            false,

		Checkpoints: []Checkpoint{
			{0, newHashFromStr("3bcc29e821e7fbd374c7460306eb893725d69dbee87c4774cdcd618059b6a578")},
			{11000, newHashFromStr("57670b799b6645c7776e9fdbd6abff510aaed9790625dd28072d0e87a7fafcf4")},
			{70000, newHashFromStr("e2c154dc8e223cef271b54174c9d66eaf718378b30977c3df115ded629f3edb1")},
		},

		AssumeUtxos: []AssumeUtxo{
			{
				Height:         2500000,
				HashSerialized: newHashFromStr("f841584909f68e47897952345234e37fcd9128cd818f41ee6c3ca68db8071be7"),
				ChainTxCount:   66484552,
				BlockHash:      newHashFromStr("0000000000000093bcb68c03a9a168ae252572d348a2eaeba2cdf9231d73206f"),
			},
		},

		TxData: ChainTxData{
			Time:    1586091497,
			TxCount: 113579,
			TxRate:  0.002815363095612851,
		},

		Rules: TestNetRules,

		PubKeyHashAddrID: 88,
		ScriptHashAddrID: 90,
		PrivateKeyID:     230,
		Bech32HRPSegwit:  "chitn",
		HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
	}
}

// newTestNet4Params returns the parameters of the version 4 public test
// network.
func newTestNet4Params() *Params {
	return &Params{
		Name:        "testnet4",
		Net:         wire.TestNet4,
		DefaultPort: "48333",
		DNSSeeds: []string{
			"seed.testnet4.bitcoin.sprovoost.nl",
			"seed.testnet4.wiz.biz",
		},

		GenesisBlock: testNet4GenesisBlock,
		GenesisHash:  testNet3GenesisHash,

		PowLimit:         mainPowLimit,
		PowNoRetargeting: false,

		SubsidyHalvingInterval: 210000,
		InitialSubsidy:         50 * SatoshiPerRod,

		AuxpowChainID: 1829,

		BIP0016Height:        0,
		BIP0034Height:        1,
		BIP0065Height:        1,
		BIP0066Height:        1,
		CSVHeight:            1,
		SegwitHeight:         1,
		MinBIP9WarningHeight: 0,
		EnforceBIP94:         true,

		RuleChangeActivationThreshold: 1512,
		MinerConfirmationWindow:       2016,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber:  28,
				StartTime:  NeverActive,
				ExpireTime: NoTimeout,
			},
			DeploymentTaproot: {
				BitNumber:  2,
				StartTime:  AlwaysActive,
				ExpireTime: NoTimeout,
			},
		},

		// Anchored at height 39'550.
		MinimumChainWork:   hexToBig("00000000000000000000000000000000000000000000005faa15d02e6202f3ba"),
		DefaultAssumeValid: newHashFromStr("000000005be348057db991fa5d89fe7c4695b667cfb311391a8db374b6f681fd"),

		PruneAfterHeight:      1000,
		AssumedBlockchainSize: 1,
		AssumedChainStateSize: 0,

		DefaultConsistencyChecks: false,
		MockableChain:            false,

		TxData: ChainTxData{
			Time:    1723651702,
			TxCount: 757229,
			TxRate:  0.01570402633472492,
		},

		Rules: TestNetRules,

		PubKeyHashAddrID: 111,
		ScriptHashAddrID: 196,
		PrivateKeyID:     239,
		Bech32HRPSegwit:  "tb",
		HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
		HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	}
}

// DefaultSignetChallenge is the well-known default signet challenge script:
// a 1-of-2 multisig over the keys of the default signet operators, as hex.
const DefaultSignetChallenge = "512103ad5e0edad18cb1f0fc0d28a3d4f1f3e4456403" +
	"37489abb10404f2d1e086be430210359ef5021964fe22d6f8e05b2463c9540ce9688" +
	"3fe3b278760f048f5189f2e6c452ae"

// SigNetOptions holds the construction-time options of a signet network.
type SigNetOptions struct {
	// Challenges holds the hex-encoded challenge script.  At most one
	// value may be supplied; an empty slice selects the default signet.
	Challenges []string

	// Seeds replaces the DNS seed list when non-nil.
	Seeds []string
}

// newSigNetParams returns the parameters of a signet network.  The network
// magic is derived from the challenge script, so custom signet deployments
// receive a collision-resistant magic automatically while the default
// challenge keeps the published one.
func newSigNetParams(opts *SigNetOptions) (*Params, error) {
	if opts == nil {
		opts = &SigNetOptions{}
	}

	challengeHex := DefaultSignetChallenge
	defaultChallenge := true
	switch len(opts.Challenges) {
	case 0:
	case 1:
		challengeHex = opts.Challenges[0]
		defaultChallenge = false
	default:
		return nil, ErrMultipleSignetChallenges
	}

	challenge, err := hex.DecodeString(challengeHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSignetChallenge,
			challengeHex)
	}

	p := &Params{
		Name:        "signet",
		Net:         signetMagic(challenge),
		DefaultPort: "38394",
		DNSSeeds:    opts.Seeds,

		GenesisBlock: sigNetGenesisBlock,
		GenesisHash:  sigNetGenesisHash,

		PowLimit:         mainPowLimit,
		PowNoRetargeting: false,

		SubsidyHalvingInterval: 210000,
		InitialSubsidy:         50 * SatoshiPerRod,

		AuxpowChainID: 1829,

		BIP0016Height:        1,
		BIP0034Height:        1,
		BIP0065Height:        1,
		BIP0066Height:        1,
		CSVHeight:            1,
		SegwitHeight:         1,
		MinBIP9WarningHeight: 0,
		EnforceBIP94:         false,

		RuleChangeActivationThreshold: 1815,
		MinerConfirmationWindow:       2016,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber:  28,
				StartTime:  NeverActive,
				ExpireTime: NoTimeout,
			},
			DeploymentTaproot: {
				BitNumber:  2,
				StartTime:  AlwaysActive,
				ExpireTime: NoTimeout,
			},
		},

		SignetBlocks:    true,
		SignetChallenge: challenge,

		PruneAfterHeight: 1000,

		DefaultConsistencyChecks: false,
		MockableChain:            false,

		AssumeUtxos: []AssumeUtxo{
			{
				Height:         160000,
				HashSerialized: newHashFromStr("fe0a44309b74d6b5883d246cb419c6221bcccf0b308c9b59b7d70783dbdf928a"),
				ChainTxCount:   2289496,
				BlockHash:      newHashFromStr("0000003ca3c99aff040f2563c2ad8f8ec88bd0fd6b8f0895cfaf1ef90353a62c"),
			},
		},

		Rules: TestNetRules,

		PubKeyHashAddrID: 88,
		ScriptHashAddrID: 90,
		PrivateKeyID:     230,
		Bech32HRPSegwit:  "tb",
		HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
		HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	}

	// Work anchors and rate statistics only exist for the chain of the
	// default challenge.
	if defaultChallenge {
		// Anchored at height 208'800.
		p.MinimumChainWork = hexToBig("0000000000000000000000000000000000000000000000000000025dbd66e58f")
		p.DefaultAssumeValid = newHashFromStr("0000014aad1d58dddcb964dd749b073374c6306e716b22f573a2efe68d414539")
		p.AssumedBlockchainSize = 2
		p.TxData = ChainTxData{
			Time:    1723655233,
			TxCount: 5507045,
			TxRate:  0.06271073277261494,
		}
	}

	return p, nil
}

// RegNetOptions holds the construction-time options of the regression test
// network.  They exist so test harnesses can select custom activation
// heights and deployment windows without exposing a mutable parameter set.
type RegNetOptions struct {
	// FastPrune lowers the prune-eligible height for small test chains.
	FastPrune bool

	// VBParams holds version-bits overrides in the form
	// deployment:start:end[:min_activation_height].
	VBParams []string

	// ActivationHeights overrides buried deployment heights.  The value
	// -1 disables a deployment.
	ActivationHeights map[BuriedDeployment]int64
}

// newRegNetParams returns the parameters of the regression test network,
// with the given overrides applied.
func newRegNetParams(opts *RegNetOptions) (*Params, error) {
	if opts == nil {
		opts = &RegNetOptions{}
	}

	pruneAfterHeight := uint64(1000)
	if opts.FastPrune {
		pruneAfterHeight = 100
	}

	p := &Params{
		Name:        "regtest",
		Net:         wire.RegNet,
		DefaultPort: "18495",
		DNSSeeds: []string{
			"dummySeed.invalid",
		},

		GenesisBlock: regTestGenesisBlock,
		GenesisHash:  regTestGenesisHash,

		PowLimit:         regressionPowLimit,
		PowNoRetargeting: true,

		// The subsidy is kept the same as upstream so the regression
		// test suites do not need adjusting.
		SubsidyHalvingInterval: 150,
		InitialSubsidy:         50 * SatoshiPerRod,

		AuxpowChainID: 1829,

		BIP0016Height:        0,
		BIP0034Height:        1,
		BIP0065Height:        1,
		BIP0066Height:        1,
		CSVHeight:            1,
		SegwitHeight:         0,
		MinBIP9WarningHeight: 0,
		EnforceBIP94:         true,

		RuleChangeActivationThreshold: 108, // 75% of MinerConfirmationWindow
		MinerConfirmationWindow:       144,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber:  28,
				StartTime:  0,
				ExpireTime: NoTimeout,
			},
			DeploymentTaproot: {
				BitNumber:  2,
				StartTime:  AlwaysActive,
				ExpireTime: NoTimeout,
			},
		},

		PruneAfterHeight: pruneAfterHeight,

		DefaultConsistencyChecks: true,
		MockableChain:            true,

		Checkpoints: []Checkpoint{
			{0, newHashFromStr("18042820e8a9f538e77e93c500768e5be76720383cd17e9b419916d8f356c619")},
		},

		AssumeUtxos: []AssumeUtxo{
			{
				Height:         110,
				HashSerialized: newHashFromStr("c7b1cf5103d6dd47a4feddb01f0fc951d109ed88f9b406f720a8a7f9942689e4"),
				ChainTxCount:   111,
				BlockHash:      newHashFromStr("b5b31111b3ee8c91956ffb9b248950dd26a878eb72ab7d9e9286bb27603c1ba2"),
			},
			{
				Height:         200,
				HashSerialized: newHashFromStr("4f34d431c3e482f6b0d67b64609ece3964dc8d7976d02ac68dd7c9c1421738f2"),
				ChainTxCount:   201,
				BlockHash:      newHashFromStr("5e93653318f294fb5aa339d00bbf8cf1c3515488ad99412c37608b139ea63b27"),
			},
			{
				Height:         299,
				HashSerialized: newHashFromStr("bc222dd2a08a561ff47d77c06af1fe35127bf4840392a83475332f45ea5efa3e"),
				ChainTxCount:   334,
				BlockHash:      newHashFromStr("cb3e6696a6e1713994cf6daf8c0c874e51d04a9f7ef5a19595639f0293002f70"),
			},
		},

		Rules: RegNetRules,

		PubKeyHashAddrID: 88,
		ScriptHashAddrID: 90,
		PrivateKeyID:     230,
		Bech32HRPSegwit:  "chirt",
		HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
		HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	}

	for dep, height := range opts.ActivationHeights {
		parsed, err := ParseActivationHeight(height)
		if err != nil {
			return nil, fmt.Errorf("activation height for %v: %w",
				dep, err)
		}
		switch dep {
		case DeploymentP2SH:
			p.BIP0016Height = parsed
		case DeploymentHeightInCoinbase:
			p.BIP0034Height = parsed
		case DeploymentCLTV:
			p.BIP0065Height = parsed
		case DeploymentDerSig:
			p.BIP0066Height = parsed
		case DeploymentCSV:
			p.CSVHeight = parsed
		case DeploymentSegwit:
			p.SegwitHeight = parsed
		default:
			return nil, fmt.Errorf("%w: %v", ErrUnknownDeployment, dep)
		}
	}

	for _, spec := range opts.VBParams {
		o, err := ParseDeploymentOverride(spec)
		if err != nil {
			return nil, err
		}
		d := &p.Deployments[o.Deployment]
		d.StartTime = o.StartTime
		d.ExpireTime = o.ExpireTime
		d.MinActivationHeight = o.MinActivationHeight
	}

	return p, nil
}

// signetMagic derives the network magic of a signet chain as the first four
// bytes of the double-SHA256 of the length-prefixed challenge script.
func signetMagic(challenge []byte) wire.RodNet {
	var buf bytes.Buffer
	_ = wire.WriteVarInt(&buf, 0, uint64(len(challenge)))
	buf.Write(challenge)

	hash := chainhash.DoubleHashB(buf.Bytes())
	return wire.RodNet(binary.LittleEndian.Uint32(hash[0:4]))
}

// Options bundles the runtime options consumed while constructing a
// parameter set.  Options for networks other than the selected one are
// ignored.
type Options struct {
	SigNet SigNetOptions
	RegNet RegNetOptions
}

// NewParams constructs the parameter set for the network selected by name.
// Valid names are main, test, testnet4, signet and regtest; anything else
// fails with ErrUnknownNet.  Construction is deterministic given its
// inputs and any malformed option fails fast with a descriptive error.
func NewParams(name string, opts *Options) (*Params, error) {
	if opts == nil {
		opts = &Options{}
	}

	switch strings.ToLower(name) {
	case "main", "mainnet":
		return newMainNetParams(), nil
	case "test", "testnet", "testnet3":
		return newTestNet3Params(), nil
	case "testnet4":
		return newTestNet4Params(), nil
	case "signet":
		return newSigNetParams(&opts.SigNet)
	case "regtest":
		return newRegNetParams(&opts.RegNet)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownNet, name)
}

// ParamsForMagic returns the parameters of the known network identified by
// the given message magic.  All known networks are constructed with their
// default options and compared in a fixed order; no match is a valid
// outcome and returns false rather than an error.
func ParamsForMagic(magic wire.RodNet) (*Params, bool) {
	for _, name := range []string{"main", "test", "testnet4", "regtest",
		"signet"} {

		p, err := NewParams(name, nil)
		if err != nil {
			// Default options never fail to construct.
			panic(err)
		}
		if p.Net == magic {
			return p, true
		}
	}
	return nil, false
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = newMainNetParams()

// TestNet3Params defines the network parameters for the legacy public test
// network (version 3).
var TestNet3Params = newTestNet3Params()

// TestNet4Params defines the network parameters for the version 4 public
// test network.
var TestNet4Params = newTestNet4Params()

// SigNetParams defines the network parameters for the signet network with
// the default challenge.
var SigNetParams = mustSigNetParams()

// RegressionNetParams defines the network parameters for the regression
// test network with default options.  Harnesses needing overrides construct
// their own set through NewParams.
var RegressionNetParams = mustRegNetParams()

func mustSigNetParams() *Params {
	p, err := newSigNetParams(nil)
	if err != nil {
		panic(err)
	}
	return p
}

func mustRegNetParams() *Params {
	p, err := newRegNetParams(nil)
	if err != nil {
		panic(err)
	}
	return p
}

var (
	// registeredNets keeps track of registered networks, keyed by magic.
	registeredNets = make(map[wire.RodNet]struct{})

	// pubKeyHashAddrIDs and scriptHashAddrIDs track the address magics
	// of registered networks for use by the address codecs.
	pubKeyHashAddrIDs = make(map[byte]struct{})
	scriptHashAddrIDs = make(map[byte]struct{})

	// bech32SegwitPrefixes tracks the bech32 prefixes of registered
	// networks, including the separator.
	bech32SegwitPrefixes = make(map[string]struct{})

	// hdPrivToPubKeyIDs maps a registered HD private key magic to its
	// corresponding public key magic.
	hdPrivToPubKeyIDs = make(map[[4]byte][]byte)
)

// Register registers the network parameters for a network.  This may error
// with ErrDuplicateNet if the network is already registered (either due to a
// previous Register call, or the network being one of the default networks).
//
// Network parameters should be registered into this package by a main
// package as early as possible.  Then, library packages may lookup networks
// or network parameters based on inputs and work regardless of the network
// being standard or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	hdPrivToPubKeyIDs[params.HDPrivateKeyID] = params.HDPublicKeyID[:]

	// A valid bech32 encoded segwit address always has as prefix the
	// human-readable part for the given net followed by '1'.
	bech32SegwitPrefixes[params.Bech32HRPSegwit+"1"] = struct{}{}
	return nil
}

// mustRegister performs the same function as Register except it panics on
// error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to
// prefix a pay-to-pubkey-hash address on any default or registered network.
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to
// prefix a pay-to-script-hash address on any default or registered network.
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// IsBech32SegwitPrefix returns whether the prefix is a known prefix for
// segwit addresses on any default or registered network.
func IsBech32SegwitPrefix(prefix string) bool {
	prefix = strings.ToLower(prefix)
	_, ok := bech32SegwitPrefixes[prefix]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the
// provided id is not registered, the ErrUnknownHDKeyID error will be
// returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}

	return pubBytes, nil
}

// ErrUnknownHDKeyID describes an error where either an extended public key
// or an extended private key magic is not registered.
var ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexToBig converts the passed big-endian hex string into a big integer.
// Like newHashFromStr it panics since it is only called with hard-coded
// values.
func hexToBig(hexStr string) *big.Int {
	v, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hex in source file: " + hexStr)
	}
	return v
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(MainNetParams)
	mustRegister(TestNet3Params)
	mustRegister(TestNet4Params)
	mustRegister(SigNetParams)
	mustRegister(RegressionNetParams)
}
