// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package store holds the three nested vote-aggregation layers: BlockStorage
// collects votes for one exact hash, ProposalStorage owns every BlockStorage
// competing within a round, and VoteStorage indexes ProposalStorages by
// round and tracks propagation state.
package store

import (
	"github.com/luxfi/yac/quorum"
	"github.com/luxfi/yac/types"
)

// BlockStorage holds the vote vector for one (round, proposal_hash,
// block_hash) key. All stored votes share that key; mismatches are silently
// rejected, and duplicate (byte-identical) votes are ignored.
type BlockStorage struct {
	key          types.YacHash
	peersInRound int
	checker      quorum.Checker
	votes        []types.Vote
}

// NewBlockStorage creates an empty storage for key, scoped to peersInRound peers.
func NewBlockStorage(key types.YacHash, peersInRound int, checker quorum.Checker) *BlockStorage {
	return &BlockStorage{key: key, peersInRound: peersInRound, checker: checker}
}

// Insert accepts vote iff its hash equals the storage key and it isn't
// already present (byte-identical). It returns the commit outcome once
// supermajority is reached, and the same outcome again on every later call.
func (b *BlockStorage) Insert(vote types.Vote) (types.Outcome, bool) {
	if b.validScheme(vote) && b.uniqueVote(vote) {
		b.votes = append(b.votes, vote)
	}
	return b.State()
}

// InsertBatch inserts every vote in order and returns the final state.
func (b *BlockStorage) InsertBatch(votes []types.Vote) (types.Outcome, bool) {
	var (
		outcome types.Outcome
		ok      bool
	)
	for _, v := range votes {
		outcome, ok = b.Insert(v)
	}
	return outcome, ok
}

// State is an idempotent read of the storage's current commit status.
func (b *BlockStorage) State() (types.Outcome, bool) {
	if b.checker.HasSupermajority(len(b.votes), b.peersInRound) {
		return types.Commit(b.votes), true
	}
	return types.Outcome{}, false
}

// Votes returns the votes accepted so far. Callers must not mutate the
// returned slice.
func (b *BlockStorage) Votes() []types.Vote {
	return b.votes
}

// NumVotes returns the number of votes accepted so far.
func (b *BlockStorage) NumVotes() int {
	return len(b.votes)
}

// Key returns the (round, proposal_hash, block_hash) this storage collects
// votes for.
func (b *BlockStorage) Key() types.YacHash {
	return b.key
}

// Contains reports whether vote (by full equality, signature included) is
// already stored.
func (b *BlockStorage) Contains(vote types.Vote) bool {
	for _, v := range b.votes {
		if v.Equal(vote) {
			return true
		}
	}
	return false
}

func (b *BlockStorage) validScheme(vote types.Vote) bool {
	return b.key.Equal(vote.Hash)
}

func (b *BlockStorage) uniqueVote(vote types.Vote) bool {
	return !b.Contains(vote)
}
