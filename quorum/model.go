// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package quorum implements the pure supermajority/reject-possibility
// arithmetic shared by every Proposal Storage, for the two consistency
// models YAC supports: BFT (3f+1) and CFT (2f+1).
package quorum

import "fmt"

// Model selects the consistency assumption a Checker enforces.
type Model uint8

const (
	// CFT tolerates crash faults only: n = 2f+1 peers, supermajority is
	// n - floor((n-1)/2), i.e. f+1.
	CFT Model = iota
	// BFT tolerates Byzantine faults: n = 3f+1 peers, supermajority is
	// n - floor((n-1)/3), i.e. 2f+1.
	BFT
)

func (m Model) String() string {
	switch m {
	case CFT:
		return "CFT"
	case BFT:
		return "BFT"
	default:
		return "Unknown"
	}
}

// k returns the free parameter of the generic Kf+1 predicate for this model.
func (m Model) k() int {
	switch m {
	case CFT:
		return 2
	case BFT:
		return 3
	default:
		panic(fmt.Sprintf("quorum: unknown consistency model %d", m))
	}
}

// Valid reports whether m names a supported consistency model. Construction
// with an unrecognized model is the one fatal error path in the core:
// callers must check this before wiring a Checker together.
func (m Model) Valid() bool {
	return m == CFT || m == BFT
}
