// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMalformedDeploymentSpec is returned when a version-bits override
	// string does not have the deployment:start:end[:min_activation_height]
	// shape.
	ErrMalformedDeploymentSpec = errors.New("version bits parameters " +
		"malformed, expecting deployment:start:end[:min_activation_height]")

	// ErrInvalidNumber is returned when a numeric field of a version-bits
	// override string does not parse.
	ErrInvalidNumber = errors.New("invalid number in version bits parameters")

	// ErrUnknownDeployment is returned when a version-bits override names
	// a deployment this package does not define.
	ErrUnknownDeployment = errors.New("unknown deployment")

	// ErrHeightOutOfRange is returned when a buried-deployment height
	// override lies outside the valid range.  Use -1 to disable a
	// deployment.
	ErrHeightOutOfRange = errors.New("activation height is out of valid range")
)

// BuriedDeployment identifies a soft fork that is activated unconditionally
// at a fixed block height with no miner signalling.
type BuriedDeployment int

// Constants that identify the buried deployments.
const (
	// DeploymentP2SH is the pay-to-script-hash evaluation soft fork.
	DeploymentP2SH BuriedDeployment = iota

	// DeploymentHeightInCoinbase requires the block height in the
	// coinbase script.
	DeploymentHeightInCoinbase

	// DeploymentCLTV is the OP_CHECKLOCKTIMEVERIFY soft fork.
	DeploymentCLTV

	// DeploymentDerSig is the strict DER signature soft fork.
	DeploymentDerSig

	// DeploymentCSV is the relative lock time (OP_CHECKSEQUENCEVERIFY)
	// soft fork.
	DeploymentCSV

	// DeploymentSegwit is the segregated witness soft fork.
	DeploymentSegwit
)

// buriedDeploymentStrings maps the buried deployments to their names.
var buriedDeploymentStrings = map[BuriedDeployment]string{
	DeploymentP2SH:             "p2sh",
	DeploymentHeightInCoinbase: "heightincb",
	DeploymentCLTV:             "cltv",
	DeploymentDerSig:           "dersig",
	DeploymentCSV:              "csv",
	DeploymentSegwit:           "segwit",
}

// String returns the BuriedDeployment in human-readable form.
func (d BuriedDeployment) String() string {
	if s, ok := buriedDeploymentStrings[d]; ok {
		return s
	}
	return fmt.Sprintf("unknown deployment (%d)", int(d))
}

// Constants that identify the version-bits deployments, used as indices into
// the Deployments field of the Params struct.
const (
	// DeploymentTestDummy defines the rule change deployment ID for
	// testing purposes.
	DeploymentTestDummy = iota

	// DeploymentTaproot defines the rule change deployment ID for the
	// taproot soft fork package (BIPs 340 to 342).
	DeploymentTaproot

	// DefinedDeployments is the number of currently defined deployments.
	// It must always come last since it is used to determine how many
	// defined deployments there currently are.
	DefinedDeployments
)

// Sentinel values for the deployment start and expire times.
const (
	// NeverActive signals, as a start time, a deployment that is never
	// eligible for activation.
	NeverActive int64 = -2

	// AlwaysActive signals, as a start time, a deployment that is active
	// from genesis.
	AlwaysActive int64 = -1

	// NoTimeout signals, as an expire time, a deployment that never
	// times out.
	NoTimeout int64 = math.MaxInt64
)

// DisabledActivationHeight is the sentinel a disabled buried deployment's
// height is set to.  No chain can reach it.
const DisabledActivationHeight int32 = math.MaxInt32

// ConsensusDeployment defines the parameters of a version-bits soft-fork
// deployment: the header bit miners signal with over a rolling confirmation
// window, the time window in which signalling counts, and an optional
// minimum activation height.  The version-bits state machine consuming
// these parameters lives with the chain validation code.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// the miners signal with.  Valid values are 0 through 28.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts, or one of the AlwaysActive/NeverActive
	// sentinels.
	StartTime int64

	// ExpireTime is the median block time after which an as-yet
	// unactivated deployment is considered failed, or NoTimeout.
	ExpireTime int64

	// MinActivationHeight is the earliest height at which the deployment
	// may become active, regardless of signalling.  Zero means no delay.
	MinActivationHeight int32
}

// vbDeploymentNames maps the version-bits deployment identifiers to the
// names accepted by override strings.
var vbDeploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentTaproot:   "taproot",
}

// DeploymentOverride is a parsed version-bits override, legal only on the
// regression test construction path.
type DeploymentOverride struct {
	// Deployment is the index of the overridden deployment, one of the
	// Deployment* version-bits constants.
	Deployment int

	// StartTime, ExpireTime and MinActivationHeight replace the
	// corresponding descriptor fields.
	StartTime           int64
	ExpireTime          int64
	MinActivationHeight int32
}

// ParseDeploymentOverride parses a version-bits override string of the form
// deployment:start:end[:min_activation_height].  The deployment name must
// match a defined deployment, start and end must parse as 64-bit integers
// and the optional minimum activation height as a 32-bit integer (default
// zero).
func ParseDeploymentOverride(spec string) (DeploymentOverride, error) {
	var o DeploymentOverride

	fields := strings.Split(spec, ":")
	if len(fields) < 3 || len(fields) > 4 {
		return o, ErrMalformedDeploymentSpec
	}

	startTime, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return o, fmt.Errorf("%w: invalid start time (%s)",
			ErrInvalidNumber, fields[1])
	}
	expireTime, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return o, fmt.Errorf("%w: invalid timeout (%s)",
			ErrInvalidNumber, fields[2])
	}

	var minActivationHeight int64
	if len(fields) == 4 {
		minActivationHeight, err = strconv.ParseInt(fields[3], 10, 32)
		if err != nil {
			return o, fmt.Errorf("%w: invalid min_activation_height (%s)",
				ErrInvalidNumber, fields[3])
		}
	}

	for pos, name := range vbDeploymentNames {
		if fields[0] != name {
			continue
		}
		o.Deployment = pos
		o.StartTime = startTime
		o.ExpireTime = expireTime
		o.MinActivationHeight = int32(minActivationHeight)
		return o, nil
	}

	return o, fmt.Errorf("%w: %s", ErrUnknownDeployment, fields[0])
}

// ParseActivationHeight validates a buried-deployment height override.  The
// value must lie in [-1, math.MaxInt32-1]; -1 disables the deployment and
// translates to DisabledActivationHeight.
func ParseActivationHeight(height int64) (int32, error) {
	if height < -1 || height >= int64(math.MaxInt32) {
		return 0, fmt.Errorf("%w: %d (use -1 to disable)",
			ErrHeightOutOfRange, height)
	}
	if height == -1 {
		return DisabledActivationHeight, nil
	}
	return int32(height), nil
}
