// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) QUILL NETWORK. All rights reserved.

package inventory

import "fmt"

// InvType classifies the object an inventory record refers to.
type InvType uint32

// InvWitnessFlag marks the witness variant of a base inventory type. A
// witness variant is the base numeric value with this bit set, not a
// distinct type of its own.
const InvWitnessFlag InvType = 1 << 30

// All known inventory types. Unknown values are accepted and preserved
// verbatim by the codec, so future types round-trip losslessly.
const (
	InvTypeError         InvType = 0
	InvTypeTx            InvType = 1
	InvTypeBlock         InvType = 2
	InvTypeFilteredBlock InvType = 3
	InvTypeCmpctBlock    InvType = 4

	InvTypeWitnessBlock         = InvTypeBlock | InvWitnessFlag
	InvTypeWitnessTx            = InvTypeTx | InvWitnessFlag
	InvTypeFilteredWitnessBlock = InvTypeFilteredBlock | InvWitnessFlag
)

// invTypeNames holds the display names of the known inventory types.
// Used for debugging output only; comparisons are always numeric.
var invTypeNames = map[InvType]string{
	InvTypeError:                "ERROR",
	InvTypeTx:                   "TX",
	InvTypeBlock:                "BLOCK",
	InvTypeFilteredBlock:        "FILTERED_BLOCK",
	InvTypeCmpctBlock:           "CMPCT_BLOCK",
	InvTypeWitnessBlock:         "WITNESS_BLOCK",
	InvTypeWitnessTx:            "WITNESS_TX",
	InvTypeFilteredWitnessBlock: "FILTERED_WITNESS_BLOCK",
}

// HasWitness reports whether the witness flag is set on t.
func (t InvType) HasWitness() bool {
	return t&InvWitnessFlag != 0
}

// WithWitness returns t with the witness flag set.
func (t InvType) WithWitness() InvType {
	return t | InvWitnessFlag
}

// NoWitness returns t with the witness flag cleared.
func (t InvType) NoWitness() InvType {
	return t &^ InvWitnessFlag
}

// String representation of a known inventory type.
func (t InvType) String() string {
	if s, ok := invTypeNames[t]; ok {
		return s
	}

	return fmt.Sprintf("Unknown InvType (0x%08x)", uint32(t))
}
