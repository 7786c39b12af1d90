// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// netinspect resolves a network by name or wire magic and prints its chain
// parameters.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/spaceexpanse/rod-core-wallet/chaincfg"
	"github.com/spaceexpanse/rod-core-wallet/internal/version"
	"github.com/spaceexpanse/rod-core-wallet/wire"
)

// config defines the configuration options for netinspect.
type config struct {
	Network string `short:"n" long:"network" description:"Network name {main, test, testnet4, signet, regtest}"`
	Magic   string `short:"m" long:"magic" description:"Wire magic as 8 hex characters, e.g. feb4becc"`
	Version bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// resolveParams returns the chain parameters selected by the config.
func resolveParams(cfg *config) (*chaincfg.Params, error) {
	switch {
	case cfg.Network != "" && cfg.Magic != "":
		return nil, fmt.Errorf("--network and --magic are mutually " +
			"exclusive")

	case cfg.Magic != "":
		raw, err := strconv.ParseUint(cfg.Magic, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid magic %q: %w",
				cfg.Magic, err)
		}
		params, ok := chaincfg.ParamsForMagic(wire.RodNet(raw))
		if !ok {
			return nil, fmt.Errorf("no known network has magic %08x",
				raw)
		}
		return params, nil

	case cfg.Network != "":
		return chaincfg.NewParams(cfg.Network, nil)
	}

	return chaincfg.MainNetParams, nil
}

// printParams writes a human-readable summary of the given parameters.
func printParams(params *chaincfg.Params) {
	fmt.Printf("name:           %s\n", params.Name)
	fmt.Printf("magic:          %08x (%v)\n", uint32(params.Net), params.Net)
	fmt.Printf("default port:   %s\n", params.DefaultPort)
	fmt.Printf("genesis hash:   %v\n", params.GenesisHash)
	fmt.Printf("genesis merkle: %v\n", params.GenesisBlock.Header.MerkleRoot)
	fmt.Printf("genesis algo:   %v\n", params.GenesisBlock.Pow.Algo)
	fmt.Printf("auxpow chain:   %d\n", params.AuxpowChainID)
	fmt.Printf("halving every:  %d blocks\n", params.SubsidyHalvingInterval)
	fmt.Printf("avg spacing:    %ds\n", params.AvgTargetSpacing(0))
	fmt.Printf("bech32 prefix:  %s\n", params.Bech32HRPSegwit)
	fmt.Printf("dns seeds:      %s\n", strings.Join(params.DNSSeeds, ", "))
	fmt.Printf("checkpoints:    %d\n", len(params.Checkpoints))
	fmt.Printf("utxo snapshots: %d\n", len(params.AssumeUtxos))
	if params.SignetBlocks {
		fmt.Printf("signet script:  %x\n", params.SignetChallenge)
	}
}

func realMain() error {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	if cfg.Version {
		fmt.Printf("netinspect version %s\n", version.String())
		return nil
	}

	params, err := resolveParams(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	printParams(params)
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
