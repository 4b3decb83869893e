// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

// OutcomeKind discriminates the tagged Outcome union.
type OutcomeKind uint8

const (
	// OutcomeCommit asserts one voting hash reached supermajority.
	OutcomeCommit OutcomeKind = iota
	// OutcomeReject asserts no hash can still reach supermajority this round.
	OutcomeReject
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCommit:
		return "Commit"
	case OutcomeReject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// Outcome is the tagged Commit/Reject union a Proposal Storage emits, always
// carrying the evidence votes that justify the decision.
type Outcome struct {
	Kind  OutcomeKind
	Votes []Vote
}

// Commit builds a commit outcome carrying the winning hash's votes.
func Commit(votes []Vote) Outcome {
	return Outcome{Kind: OutcomeCommit, Votes: votes}
}

// Reject builds a reject outcome carrying the union of all evidence votes.
func Reject(votes []Vote) Outcome {
	return Outcome{Kind: OutcomeReject, Votes: votes}
}

// Round returns the round of the outcome's evidence votes. It panics if
// Votes is empty; callers never construct an Outcome without evidence.
func (o Outcome) Round() Round {
	return o.Votes[0].Hash.Round
}

// IsCommit reports whether this is a Commit outcome.
func (o Outcome) IsCommit() bool { return o.Kind == OutcomeCommit }

// IsReject reports whether this is a Reject outcome.
func (o Outcome) IsReject() bool { return o.Kind == OutcomeReject }
