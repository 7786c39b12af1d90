// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/spaceexpanse/rod-core-wallet/wire"
)

// powAlgos lists the mining algorithms sharing the chain's height sequence,
// in the canonical order used by spacing computations.
var powAlgos = []wire.PowAlgo{
	wire.PowAlgoSHA256D,
	wire.PowAlgoNeoscrypt,
}

// RuleVariant selects the per-network consensus rule behaviors that differ
// between the main, test and regression networks: the subsidy schedule, the
// merge-mining policy and the default consistency depth of the name
// database.  It is a closed set dispatched by value.
type RuleVariant int

const (
	// MainNetRules is the rule variant of the main network.
	MainNetRules RuleVariant = iota

	// TestNetRules is the rule variant shared by the public test
	// networks and signet.
	TestNetRules

	// RegNetRules is the rule variant of the regression test network.
	RegNetRules
)

// TargetSpacing returns the target time in seconds between two blocks of
// the given algorithm, were it mined exclusively, at the given height.  Both
// algorithms aim for one block a minute on every network, yielding a
// combined average of 30 seconds.
func (v RuleVariant) TargetSpacing(algo wire.PowAlgo, height int32) int64 {
	return 60
}

// StrictChainID returns whether merge-mined proofs must carry exactly this
// chain's auxpow chain id.  The regression network relaxes the check so
// tests can reuse proofs built for other ids.
func (v RuleVariant) StrictChainID() bool {
	return v != RegNetRules
}

// AllowMinDifficultyBlocks returns whether a block may drop to the minimum
// difficulty when no block has been found for a while.
func (v RuleVariant) AllowMinDifficultyBlocks() bool {
	return v != MainNetRules
}

// NameDBCheckDepth returns the default depth, in blocks, to which the name
// database is verified against the chain on startup.  A negative value
// disables the check; the regression network verifies from genesis.
func (v RuleVariant) NameDBCheckDepth() int {
	if v == RegNetRules {
		return 0
	}
	return -1
}

// BlockSubsidy returns the proof-of-work subsidy at the given height for a
// chain with the given initial subsidy and halving interval.
func (v RuleVariant) BlockSubsidy(height int32, p *Params) int64 {
	halvings := uint(height / p.SubsidyHalvingInterval)

	// Force the subsidy to zero when the right shift would be undefined.
	if halvings >= 64 {
		return 0
	}
	return p.InitialSubsidy >> halvings
}
