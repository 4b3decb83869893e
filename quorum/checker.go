// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

// Checker answers the two supermajority questions a Proposal Storage needs:
// has a hash already reached supermajority, and can any hash still reach it.
// It is pure arithmetic, no mutable state, safe for concurrent use.
type Checker struct {
	model Model
}

// NewChecker builds a Checker for the given consistency model. The caller
// must have already validated model.Valid(); NewChecker panics otherwise,
// matching the core's single fatal-at-construction error path.
func NewChecker(model Model) Checker {
	if !model.Valid() {
		panic("quorum: unknown consistency model")
	}
	return Checker{model: model}
}

// Model returns the consistency model this checker enforces.
func (c Checker) Model() Model {
	return c.model
}

// HasSupermajority reports whether agreed votes out of n peers reach
// supermajority under the generic Kf+1 predicate:
//
//	agreed <= n  &&  agreed*K >= (K-1)*(n-1) + K
func (c Checker) HasSupermajority(agreed, n int) bool {
	return hasKfPlus1Supermajority(agreed, n, c.model.k())
}

func hasKfPlus1Supermajority(agreed, n, k int) bool {
	if agreed > n {
		return false
	}
	return agreed*k >= (k-1)*(n-1)+k
}

// CanHaveSupermajority reports whether any hash in voteGroups (a multiset of
// per-hash vote counts) may still reach supermajority once every remaining
// voter has cast a vote. voteGroups need not sum to n; the difference is
// treated as not-yet-voted.
//
// Under CFT the predicate is has_supermajority(L+U, n) where L is the
// largest group and U = n - sum(voteGroups) is the uncommitted count. Under
// BFT an adversarial term is added: up to min((n-1)/5, voted-L) already-cast
// votes may be re-cast by malicious peers for the leading hash.
func (c Checker) CanHaveSupermajority(voteGroups []int, n int) bool {
	largest := 0
	voted := 0
	for _, v := range voteGroups {
		voted += v
		if v > largest {
			largest = v
		}
	}
	notVoted := n - voted

	candidate := largest + notVoted
	if c.model == BFT {
		candidate += min((n-1)/5, voted-largest)
	}
	return c.HasSupermajority(min(candidate, n), n)
}
