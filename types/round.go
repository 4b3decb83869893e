// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types holds the small, copyable value types shared by every YAC
// component: rounds, voting hashes, votes, outcomes, cluster orderings and
// the per-round propagation state.
package types

import "fmt"

// Round identifies a single YAC voting session. BlockRound advances on
// commit; RejectRound advances on reject within a BlockRound. Rounds compare
// lexicographically: (1,0) < (1,1) < (2,0).
type Round struct {
	BlockRound  uint64
	RejectRound uint64
}

// Less reports whether r sorts strictly before other.
func (r Round) Less(other Round) bool {
	if r.BlockRound != other.BlockRound {
		return r.BlockRound < other.BlockRound
	}
	return r.RejectRound < other.RejectRound
}

// Compare returns -1, 0 or 1 as r is less than, equal to, or greater than other.
func (r Round) Compare(other Round) int {
	switch {
	case r.Less(other):
		return -1
	case other.Less(r):
		return 1
	default:
		return 0
	}
}

func (r Round) String() string {
	return fmt.Sprintf("(%d,%d)", r.BlockRound, r.RejectRound)
}

// MaxRound returns the larger of a and b by Round.Compare.
func MaxRound(a, b Round) Round {
	if b.Less(a) {
		return a
	}
	return b
}
