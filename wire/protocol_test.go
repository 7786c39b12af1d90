// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "testing"

// TestServiceFlagStringer tests the stringized output for service flag types.
func TestServiceFlagStringer(t *testing.T) {
	tests := []struct {
		in   ServiceFlag
		want string
	}{
		{0, "0x0"},
		{SFNodeNetwork, "SFNodeNetwork"},
		{SFNodeBloom, "SFNodeBloom"},
		{SFNodeWitness, "SFNodeWitness"},
		{SFNodeNetwork | SFNodeWitness, "SFNodeNetwork|SFNodeWitness"},
		{0xffffffff, "SFNodeNetwork|SFNodeBloom|SFNodeWitness|0xfffffff8"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
		}
	}
}

// TestRodNetStringer tests the stringized output for network types.
func TestRodNetStringer(t *testing.T) {
	tests := []struct {
		in   RodNet
		want string
	}{
		{MainNet, "MainNet"},
		{TestNet3, "TestNet3"},
		{TestNet4, "TestNet4"},
		{RegNet, "RegNet"},
		{SigNetDefault, "SigNet"},
		{0xffffffff, "Unknown RodNet (4294967295)"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
		}
	}
}
