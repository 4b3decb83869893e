// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/yac/internal/logging"
	"github.com/luxfi/yac/quorum"
	"github.com/luxfi/yac/types"
)

func TestProposalStorageCommitsWinningHash(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	hashA := testHash(round, "block-a")
	ps := NewProposalStorage(round, 4, quorum.NewChecker(quorum.CFT), logging.NoOp())

	ps.Insert(testVote(hashA, 1, 1))
	ps.Insert(testVote(hashA, 2, 2))
	outcome, ok := ps.Insert(testVote(hashA, 3, 3))

	require.True(ok)
	require.True(outcome.IsCommit())
}

func TestProposalStorageRejectsWhenNoHashCanWin(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	hashA := testHash(round, "block-a")
	hashB := testHash(round, "block-b")
	// N=4 CFT: threshold is 3. A 2/2 split with no outstanding votes can
	// never reach it.
	ps := NewProposalStorage(round, 4, quorum.NewChecker(quorum.CFT), logging.NoOp())

	ps.Insert(testVote(hashA, 1, 1))
	ps.Insert(testVote(hashA, 2, 2))
	ps.Insert(testVote(hashB, 3, 3))
	outcome, ok := ps.Insert(testVote(hashB, 4, 4))

	require.True(ok)
	require.True(outcome.IsReject())
	require.Len(outcome.Votes, 4)
}

func TestProposalStorageOutcomeIsSticky(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	hashA := testHash(round, "block-a")
	ps := NewProposalStorage(round, 3, quorum.NewChecker(quorum.CFT), logging.NoOp())

	ps.Insert(testVote(hashA, 1, 1))
	ps.Insert(testVote(hashA, 2, 2))
	first, ok := ps.State()
	require.True(ok)

	// A late vote for a sibling hash from a fresh peer must not replace the
	// already-decided outcome.
	hashB := testHash(round, "block-b")
	ps.Insert(testVote(hashB, 3, 3))
	second, ok := ps.State()
	require.True(ok)
	require.Equal(first, second)
}

func TestProposalStorageDropsVoteFromWrongRound(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	other := types.Round{BlockRound: 2}
	hashA := testHash(round, "block-a")
	wrongRoundHash := testHash(other, "block-a")
	ps := NewProposalStorage(round, 4, quorum.NewChecker(quorum.CFT), logging.NoOp())

	ps.Insert(testVote(wrongRoundHash, 1, 1))
	_, ok := ps.State()
	require.False(ok)

	ps.Insert(testVote(hashA, 1, 1))
	require.Equal(1, ps.blocks[0].NumVotes())
}

// TestProposalStorageRejectsDoubleVotingPeer covers the peer uniqueness
// rule: a signer that already voted for one hash this round must not also
// be counted in a sibling BlockStorage.
func TestProposalStorageRejectsDoubleVotingPeer(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	hashA := testHash(round, "block-a")
	hashB := testHash(round, "block-b")
	ps := NewProposalStorage(round, 4, quorum.NewChecker(quorum.CFT), logging.NoOp())

	ps.Insert(testVote(hashA, 1, 1))
	ps.Insert(testVote(hashB, 1, 2)) // same NodeID(1), different hash: must be dropped

	require.Equal(1, len(ps.blocks))
	require.Equal(1, ps.blocks[0].NumVotes())
}

func TestProposalStorageInsertBatch(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	hashA := testHash(round, "block-a")
	ps := NewProposalStorage(round, 3, quorum.NewChecker(quorum.CFT), logging.NoOp())

	outcome, ok := ps.InsertBatch([]types.Vote{
		testVote(hashA, 1, 1),
		testVote(hashA, 2, 2),
	})
	require.True(ok)
	require.True(outcome.IsCommit())
}
