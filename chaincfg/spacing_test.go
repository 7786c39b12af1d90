// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
)

// TestCombinedTargetSpacing checks the combined spacing math on known inputs.
func TestCombinedTargetSpacing(t *testing.T) {
	tests := []struct {
		name     string
		spacings []int64
		want     int64
		ok       bool
	}{
		{
			name:     "single algorithm",
			spacings: []int64{60},
			want:     60,
			ok:       true,
		},
		{
			name:     "two equal algorithms",
			spacings: []int64{60, 60},
			want:     30,
			ok:       true,
		},
		{
			name:     "one and two minutes",
			spacings: []int64{60, 120},
			want:     40,
			ok:       true,
		},
		{
			name:     "inexact division",
			spacings: []int64{60, 50},
			ok:       false,
		},
		{
			name:     "no algorithms",
			spacings: nil,
			ok:       false,
		},
	}

	for _, test := range tests {
		got, ok := combinedTargetSpacing(test.spacings...)
		if ok != test.ok {
			t.Errorf("%s: got ok=%v, want %v", test.name, ok, test.ok)
			continue
		}
		if ok && got != test.want {
			t.Errorf("%s: got %d, want %d", test.name, got,
				test.want)
		}
	}
}

// TestAvgTargetSpacing checks the per-network combined block spacing.
func TestAvgTargetSpacing(t *testing.T) {
	for _, params := range []*Params{MainNetParams, TestNet3Params,
		TestNet4Params, SigNetParams, RegressionNetParams} {

		for _, height := range []int32{0, 1, 100000, 1 << 30} {
			if got := params.AvgTargetSpacing(height); got != 30 {
				t.Errorf("%s at height %d: got spacing %d, "+
					"want 30", params.Name, height, got)
			}
		}
	}
}

// TestBlockSubsidy checks the halving schedule on the main and regression
// networks.
func TestBlockSubsidy(t *testing.T) {
	tests := []struct {
		name   string
		params *Params
		height int32
		want   int64
	}{
		{"main genesis era", MainNetParams, 0, 382934346},
		{"main pre halving", MainNetParams, 4199999, 382934346},
		{"main first halving", MainNetParams, 4200000, 191467173},
		{"regtest genesis era", RegressionNetParams, 0, 50 * SatoshiPerRod},
		{"regtest first halving", RegressionNetParams, 150, 25 * SatoshiPerRod},
		{"regtest exhausted", RegressionNetParams, 150 * 70, 0},
	}
	for _, test := range tests {
		got := test.params.Rules.BlockSubsidy(test.height, test.params)
		if got != test.want {
			t.Errorf("%s: got %d, want %d", test.name, got,
				test.want)
		}
	}
}

// TestRuleVariants checks the per-network rule switches.
func TestRuleVariants(t *testing.T) {
	if !MainNetRules.StrictChainID() || !TestNetRules.StrictChainID() {
		t.Errorf("public networks must enforce the auxpow chain id")
	}
	if RegNetRules.StrictChainID() {
		t.Errorf("regtest must not enforce the auxpow chain id")
	}

	if MainNetRules.AllowMinDifficultyBlocks() {
		t.Errorf("mainnet must not allow min difficulty blocks")
	}
	if !TestNetRules.AllowMinDifficultyBlocks() ||
		!RegNetRules.AllowMinDifficultyBlocks() {

		t.Errorf("test networks must allow min difficulty blocks")
	}

	if depth := RegNetRules.NameDBCheckDepth(); depth != 0 {
		t.Errorf("regtest name db check depth: got %d, want 0", depth)
	}
	if depth := MainNetRules.NameDBCheckDepth(); depth >= 0 {
		t.Errorf("mainnet name db check depth: got %d, want negative",
			depth)
	}
}
