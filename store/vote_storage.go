// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"github.com/luxfi/log"
	"github.com/luxfi/yac/cleanup"
	"github.com/luxfi/yac/internal/logging"
	"github.com/luxfi/yac/metrics"
	"github.com/luxfi/yac/quorum"
	"github.com/luxfi/yac/types"
)

// VoteStorage indexes ProposalStorages by round and tracks each round's
// propagation state.
type VoteStorage struct {
	checker quorum.Checker
	log     log.Logger
	metrics *metrics.Metrics

	cleanupStrategy *cleanup.Strategy
	proposals       map[types.Round]*ProposalStorage
	states          map[types.Round]types.PropagationState

	lastFinalized    types.Round
	hasLastFinalized bool
}

// NewVoteStorage creates an empty VoteStorage enforcing model's supermajority
// arithmetic. m may be nil, in which case counters are skipped.
func NewVoteStorage(model quorum.Model, m *metrics.Metrics, logger log.Logger) *VoteStorage {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &VoteStorage{
		checker:         quorum.NewChecker(model),
		log:             logger,
		metrics:         m,
		cleanupStrategy: cleanup.NewStrategy(),
		proposals:       make(map[types.Round]*ProposalStorage),
		states:          make(map[types.Round]types.PropagationState),
	}
}

// Store locates or lazily creates the ProposalStorage for votes[0].Hash.Round
// (using peersInRound on creation only; later calls for the same round must
// pass the same value) and delegates the batch to it. A round the cleanup
// strategy has already discarded is never recreated; its batch is dropped.
// Once the batch decides the round, the cleanup strategy drains any rounds
// it has made obsolete and their storages are forgotten.
func (v *VoteStorage) Store(votes []types.Vote, peersInRound int) (types.Outcome, bool) {
	if len(votes) == 0 {
		return types.Outcome{}, false
	}
	round := votes[0].Hash.Round
	proposal, exists := v.proposals[round]
	if !exists {
		if !v.cleanupStrategy.ShouldCreateRound(round) {
			v.log.Debug("dropping vote batch for an already-cleaned round", log.Stringer("round", round))
			return types.Outcome{}, false
		}
		proposal = NewProposalStorage(round, peersInRound, v.checker, v.log)
		v.proposals[round] = proposal
	}

	before := proposal.TotalVotes()
	outcome, ok := proposal.InsertBatch(votes)
	if accepted := proposal.TotalVotes() - before; accepted > 0 && v.metrics != nil {
		v.metrics.VotesAccepted.Add(float64(accepted))
	}

	if ok {
		v.lastFinalized = types.MaxRound(v.lastFinalized, round)
		v.hasLastFinalized = true

		if drained, any := v.cleanupStrategy.Finalize(round, outcome); any {
			for _, r := range drained {
				v.Forget(r)
			}
			if v.metrics != nil {
				v.metrics.RoundsCleaned.Add(float64(len(drained)))
			}
		}
	}
	return outcome, ok
}

// IsCommitted reports whether round's ProposalStorage has any sticky
// outcome set (commit or reject).
func (v *VoteStorage) IsCommitted(round types.Round) bool {
	proposal, ok := v.proposals[round]
	if !ok {
		return false
	}
	_, set := proposal.State()
	return set
}

// ProcessingState returns the recorded propagation state for round,
// defaulting to NotSentNotProcessed for unknown rounds.
func (v *VoteStorage) ProcessingState(round types.Round) types.PropagationState {
	return v.states[round]
}

// AdvanceProcessingState applies the monotone transition for round; a no-op
// once the round reaches SentProcessed.
func (v *VoteStorage) AdvanceProcessingState(round types.Round) {
	prev := v.states[round]
	next := prev.Advance()
	v.states[round] = next
	if next != prev && v.metrics != nil {
		v.metrics.PropagationAdvances.WithLabelValues(next.String()).Inc()
	}
}

// LastFinalizedRound is the maximum round observed whose outcome has been
// recorded, used by the round driver to answer lagging peers.
func (v *VoteStorage) LastFinalizedRound() (types.Round, bool) {
	return v.lastFinalized, v.hasLastFinalized
}

// OutcomeVotes returns the evidence votes of round's sticky outcome, if set.
func (v *VoteStorage) OutcomeVotes(round types.Round) ([]types.Vote, bool) {
	proposal, ok := v.proposals[round]
	if !ok {
		return nil, false
	}
	outcome, set := proposal.State()
	if !set {
		return nil, false
	}
	return outcome.Votes, true
}

// Forget removes the ProposalStorage and propagation state tracked for
// round. Used by the cleanup strategy to bound memory.
func (v *VoteStorage) Forget(round types.Round) {
	delete(v.proposals, round)
	delete(v.states, round)
}
