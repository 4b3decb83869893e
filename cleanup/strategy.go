// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cleanup decides which round storages may be discarded as the
// voting pipeline advances, bounding the memory a long-running instance
// accumulates.
package cleanup

import (
	"container/heap"

	"github.com/luxfi/yac/types"
)

// Strategy tracks the latest commit/reject rounds observed and a min-heap of
// every round ever admitted, draining rounds made obsolete by a commit.
type Strategy struct {
	heap roundHeap

	lastCommit    types.Round
	hasLastCommit bool
	lastReject    types.Round
	hasLastReject bool
}

// NewStrategy returns an empty Strategy with no commit or reject observed.
func NewStrategy() *Strategy {
	s := &Strategy{}
	heap.Init(&s.heap)
	return s
}

// Finalize records outcome for round and, on commit, drains every round
// strictly less than the new last_commit_round. It returns the drained
// rounds, or ok=false if nothing was drained.
func (s *Strategy) Finalize(round types.Round, outcome types.Outcome) ([]types.Round, bool) {
	if outcome.IsCommit() {
		if s.hasLastReject && (!s.hasLastCommit || s.lastCommit.Less(s.lastReject)) {
			s.hasLastReject = false
			s.lastReject = types.Round{}
		}
		if !s.hasLastCommit {
			s.lastCommit = round
		} else {
			s.lastCommit = types.MaxRound(s.lastCommit, round)
		}
		s.hasLastCommit = true
		drained := s.drainBelow(s.lastCommit)
		return drained, drained != nil
	}

	if !s.hasLastReject {
		s.lastReject = round
	} else {
		s.lastReject = types.MaxRound(s.lastReject, round)
	}
	s.hasLastReject = true
	return nil, false
}

// ShouldCreateRound permits creating a new round storage iff round is not
// older than the minimum of the last commit and last reject rounds (absent
// values act as negative infinity). On permit, the round is pushed onto the
// heap for future draining.
//
// This guards against re-animating already-cleaned history, but a peer
// flooding low rounds before any commit/reject has landed can still grow the
// heap unbounded; no additional bound is enforced here.
func (s *Strategy) ShouldCreateRound(round types.Round) bool {
	floor, hasFloor := s.floor()
	if hasFloor && round.Less(floor) {
		return false
	}
	s.heap.push(round)
	return true
}

func (s *Strategy) floor() (types.Round, bool) {
	switch {
	case s.hasLastCommit && s.hasLastReject:
		if s.lastCommit.Less(s.lastReject) {
			return s.lastCommit, true
		}
		return s.lastReject, true
	case s.hasLastCommit:
		return s.lastCommit, true
	case s.hasLastReject:
		return s.lastReject, true
	default:
		return types.Round{}, false
	}
}

func (s *Strategy) drainBelow(bound types.Round) []types.Round {
	var drained []types.Round
	for {
		next, ok := s.heap.peek()
		if !ok || !next.Less(bound) {
			break
		}
		drained = append(drained, s.heap.pop())
	}
	if len(drained) == 0 {
		return nil
	}
	return drained
}
