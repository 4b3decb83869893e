// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/yac/internal/logging"
	"github.com/luxfi/yac/quorum"
	"github.com/luxfi/yac/types"
)

// ProposalStorage owns every BlockStorage competing within one round. Its
// outcome is sticky: once set to Commit or Reject it is never replaced,
// though later votes are still recorded for evidence forwarding.
type ProposalStorage struct {
	round        types.Round
	peersInRound int
	checker      quorum.Checker
	log          log.Logger

	blocks  []*BlockStorage
	outcome *types.Outcome
}

// NewProposalStorage creates an empty storage for round, scoped to
// peersInRound peers.
func NewProposalStorage(round types.Round, peersInRound int, checker quorum.Checker, logger log.Logger) *ProposalStorage {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &ProposalStorage{round: round, peersInRound: peersInRound, checker: checker, log: logger}
}

// Insert applies the decision procedure for a single vote: check the round,
// check peer uniqueness, insert into the matching Block Storage, and fall
// back to a reject check when no hash can still win. It returns the
// storage's current sticky outcome, if any.
func (p *ProposalStorage) Insert(vote types.Vote) (types.Outcome, bool) {
	if !p.checkRound(vote) {
		return p.State()
	}
	if !p.checkPeerUniqueness(vote) {
		p.log.Warn("dropping vote: peer already voted for a different hash this round",
			log.Stringer("round", p.round))
		return p.State()
	}

	block := p.findOrCreateBlock(vote.Hash)
	if outcome, ok := block.Insert(vote); ok && p.outcome == nil {
		p.outcome = &outcome
		return outcome, true
	}

	if p.outcome == nil {
		if reject, ok := p.findRejectProof(); ok {
			p.outcome = &reject
			return reject, true
		}
	}

	return p.State()
}

// InsertBatch applies Insert to each vote in order and returns the final state.
func (p *ProposalStorage) InsertBatch(votes []types.Vote) (types.Outcome, bool) {
	var (
		outcome types.Outcome
		ok      bool
	)
	for _, v := range votes {
		outcome, ok = p.Insert(v)
	}
	return outcome, ok
}

// TotalVotes sums the accepted vote count across every sibling BlockStorage.
func (p *ProposalStorage) TotalVotes() int {
	total := 0
	for _, b := range p.blocks {
		total += b.NumVotes()
	}
	return total
}

// State returns the sticky outcome, if set.
func (p *ProposalStorage) State() (types.Outcome, bool) {
	if p.outcome == nil {
		return types.Outcome{}, false
	}
	return *p.outcome, true
}

// Round returns the storage key.
func (p *ProposalStorage) Round() types.Round {
	return p.round
}

func (p *ProposalStorage) checkRound(vote types.Vote) bool {
	return vote.Hash.Round == p.round
}

// checkPeerUniqueness enforces that a peer's public key appears in at most
// one BlockStorage of this proposal: it rejects a vote whose signer already
// voted for a different hash in a sibling storage.
func (p *ProposalStorage) checkPeerUniqueness(vote types.Vote) bool {
	for _, b := range p.blocks {
		if b.Key().Equal(vote.Hash) {
			continue
		}
		if blockStorageContainsSigner(b, vote.Signature.NodeID) {
			return false
		}
	}
	return true
}

func blockStorageContainsSigner(b *BlockStorage, nodeID ids.NodeID) bool {
	for _, v := range b.Votes() {
		if v.Signature.NodeID == nodeID {
			return true
		}
	}
	return false
}

func (p *ProposalStorage) findOrCreateBlock(hash types.YacHash) *BlockStorage {
	for _, b := range p.blocks {
		if b.Key().Equal(hash) {
			return b
		}
	}
	b := NewBlockStorage(hash, p.peersInRound, p.checker)
	p.blocks = append(p.blocks, b)
	return b
}

// findRejectProof evaluates whether any hash can still reach supermajority
// across every sibling BlockStorage; if not, it assembles a Reject carrying
// the union of all sibling votes.
func (p *ProposalStorage) findRejectProof() (types.Outcome, bool) {
	counts := make([]int, len(p.blocks))
	total := 0
	for i, b := range p.blocks {
		counts[i] = b.NumVotes()
		total += b.NumVotes()
	}

	if p.checker.CanHaveSupermajority(counts, p.peersInRound) {
		return types.Outcome{}, false
	}

	votes := make([]types.Vote, 0, total)
	for _, b := range p.blocks {
		votes = append(votes, b.Votes()...)
	}
	return types.Reject(votes), true
}
