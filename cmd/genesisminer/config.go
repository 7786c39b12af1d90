// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	flags "github.com/jessevdk/go-flags"

	"github.com/spaceexpanse/rod-core-wallet/wire"
)

const (
	defaultTimestamp = "Decentralised Autonomous Worlds"
	defaultBits      = "1e0ffff0"
	defaultAlgo      = "sha256d"
)

// config defines the configuration options for genesisminer.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Timestamp  string `long:"timestamp" description:"Timestamp string embedded in the coinbase signature script"`
	Payout     string `long:"payout" description:"Premine P2SH script hash in display order (40 hex chars)"`
	Time       uint32 `long:"time" description:"Unix time of the block; defaults to now"`
	Bits       string `long:"bits" description:"Compact difficulty target in hex"`
	Algo       string `long:"algo" description:"Proof of work algorithm {sha256d, neoscrypt}"`
	StartNonce uint32 `long:"startnonce" description:"Nonce value the search starts from"`
	LogFile    string `long:"logfile" description:"Write log output to this file as well as stdout"`
	DebugLevel string `long:"debuglevel" short:"d" description:"Logging level {trace, debug, info, warn, error, critical}"`
	Version    bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// minerParams holds the validated mining inputs derived from the config.
type minerParams struct {
	timestamp  string
	payout     [20]byte
	time       uint32
	bits       uint32
	algo       wire.PowAlgo
	startNonce uint32
}

// parseAlgo maps an algorithm name to its wire value.
func parseAlgo(name string) (wire.PowAlgo, error) {
	switch name {
	case "sha256d":
		return wire.PowAlgoSHA256D, nil
	case "neoscrypt":
		return wire.PowAlgoNeoscrypt, nil
	}
	return wire.PowAlgoInvalid, fmt.Errorf("unknown algorithm %q", name)
}

// loadConfig initializes and parses the config using command line options and
// validates the mining inputs.
func loadConfig() (*config, *minerParams, error) {
	// Default config.
	cfg := config{
		Timestamp:  defaultTimestamp,
		Bits:       defaultBits,
		Algo:       defaultAlgo,
		DebugLevel: "info",
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	mp := minerParams{
		timestamp:  cfg.Timestamp,
		time:       cfg.Time,
		startNonce: cfg.StartNonce,
	}

	// The premine script hash is required and must be exactly 20 bytes.
	// It is given in display order and stored reversed, matching the
	// chain parameter convention.
	payout, err := hex.DecodeString(cfg.Payout)
	if err != nil || len(payout) != 20 {
		err := fmt.Errorf("loadConfig: payout must be 40 hex " +
			"characters naming a 20-byte script hash")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}
	for i, b := range payout {
		mp.payout[len(mp.payout)-1-i] = b
	}

	bits, err := strconv.ParseUint(cfg.Bits, 16, 32)
	if err != nil {
		err := fmt.Errorf("loadConfig: invalid difficulty bits %q: %w",
			cfg.Bits, err)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}
	mp.bits = uint32(bits)

	mp.algo, err = parseAlgo(cfg.Algo)
	if err != nil {
		err := fmt.Errorf("loadConfig: %w", err)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Timestamp strings longer than a single OP_PUSHDATA1 push cannot be
	// represented in the coinbase script.
	if len(cfg.Timestamp) > 0xff {
		err := fmt.Errorf("loadConfig: timestamp string is limited "+
			"to 255 bytes, got %d", len(cfg.Timestamp))
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	return &cfg, &mp, nil
}
