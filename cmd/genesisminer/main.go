// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// genesisminer performs the offline nonce search for a new network's genesis
// block.  It builds the deterministic genesis block from the given inputs,
// then iterates the proof-of-work envelope's fake header nonce until the
// declared difficulty target is met, and prints the solution.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spaceexpanse/rod-core-wallet/blockchain/standalone"
	"github.com/spaceexpanse/rod-core-wallet/chaincfg"
	"github.com/spaceexpanse/rod-core-wallet/internal/rodlog"
	"github.com/spaceexpanse/rod-core-wallet/internal/version"
)

var log = rodlog.MinrLog

// reportInterval is the number of nonces between progress log lines.
const reportInterval = 1000

// realMain is the real main function for the utility.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() error {
	cfg, mp, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Printf("genesisminer version %s\n", version.String())
		return nil
	}

	if cfg.LogFile != "" {
		rodlog.InitLogRotator(cfg.LogFile)
		defer rodlog.LogRotator.Close()
	}
	rodlog.SetLogLevels(cfg.DebugLevel)

	if mp.time == 0 {
		mp.time = uint32(time.Now().Unix())
	}

	block := chaincfg.NewGenesisBlock(mp.time, mp.startNonce, mp.bits,
		mp.algo, mp.timestamp, mp.payout)
	fake := block.Pow.FakeHeader

	target := standalone.CompactToBig(mp.bits)
	if target.Sign() <= 0 {
		return fmt.Errorf("difficulty bits %08x describe an "+
			"unreachable target", mp.bits)
	}

	log.Infof("Mining genesis block: algo %v, time %d, bits %08x, "+
		"start nonce %d", mp.algo, mp.time, mp.bits, mp.startNonce)

	start := time.Now()
	for {
		powHash, err := block.Pow.PowHash()
		if err != nil {
			return err
		}
		if standalone.HashToBig(&powHash).Cmp(target) <= 0 {
			break
		}

		// The nonce is the only search parameter; running out of it
		// means the other inputs have to change.
		if fake.Nonce == math.MaxUint32 {
			return fmt.Errorf("nonce space exhausted at time %d; "+
				"adjust the block time and retry", mp.time)
		}
		fake.Nonce++

		if fake.Nonce%reportInterval == 0 {
			log.Debugf("Still searching, nonce %d", fake.Nonce)
		}
	}

	hash := block.BlockHash()
	log.Infof("Solved after %v", time.Since(start).Truncate(time.Millisecond))
	fmt.Printf("nonce:  %d\n", fake.Nonce)
	fmt.Printf("time:   %d\n", mp.time)
	fmt.Printf("hash:   %v\n", hash)
	fmt.Printf("merkle: %v\n", block.Header.MerkleRoot)
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
