// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// AvgTargetSpacing returns the average time between blocks, all mining
// algorithms combined, at the given height.
//
// Network spacings are chosen at design time so that the division involved
// is exact; an inexact division is a logic error and panics.
func (p *Params) AvgTargetSpacing(height int32) int64 {
	spacings := make([]int64, 0, len(powAlgos))
	for _, algo := range powAlgos {
		spacings = append(spacings, p.Rules.TargetSpacing(algo, height))
	}

	combined, ok := combinedTargetSpacing(spacings...)
	if !ok {
		panic(fmt.Sprintf("per-algorithm target spacings %v do not "+
			"produce an exact combined spacing", spacings))
	}
	return combined
}

// combinedTargetSpacing computes the average spacing of blocks produced by
// several interleaved algorithms sharing one height sequence, given the
// spacing each algorithm would have on its own.
//
// The average is a common multiple timespan of all spacings divided by the
// number of blocks expected (all algorithms together) in that timespan.  The
// numerator is the product of all spacings, while the denominator is a sum
// of products that just excludes the current algorithm, built up
// incrementally in one pass: before the running product of the already
// processed spacings is added, the existing sum is rescaled by the current
// spacing.
//
// The second return value reports whether the division is exact.
func combinedTargetSpacing(spacings ...int64) (int64, bool) {
	numer := int64(1)
	denom := int64(0)
	for _, spacing := range spacings {
		// Multiply all previously added block counts by this target
		// spacing.
		denom *= spacing

		// Add the number of blocks for the current algorithm.  This
		// starts off with the product of all already-processed
		// algorithms (excluding the current one), and is multiplied
		// later on by the still-to-be-processed ones.
		denom += numer

		// The numerator is the product of all spacings.
		numer *= spacing
	}

	if denom <= 0 || numer%denom != 0 {
		return 0, false
	}
	return numer / denom, true
}
