// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/yac/quorum"
	"github.com/luxfi/yac/types"
)

func testHash(round types.Round, block string) types.YacHash {
	return types.YacHash{Round: round, ProposalHash: "proposal-1", BlockHash: block}
}

func testVote(hash types.YacHash, node byte, sig byte) types.Vote {
	nodeID := ids.NodeID{}
	nodeID[0] = node
	return types.Vote{
		Hash: hash,
		Signature: types.Signature{
			NodeID: nodeID,
			Bytes:  []byte{sig},
		},
	}
}

func TestBlockStorageCommitsAtSupermajority(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	hash := testHash(round, "block-a")
	bs := NewBlockStorage(hash, 4, quorum.NewChecker(quorum.CFT))

	_, ok := bs.Insert(testVote(hash, 1, 1))
	require.False(ok)
	_, ok = bs.Insert(testVote(hash, 2, 2))
	require.False(ok)

	outcome, ok := bs.Insert(testVote(hash, 3, 3))
	require.True(ok)
	require.True(outcome.IsCommit())
	require.Len(outcome.Votes, 3)
}

func TestBlockStorageRejectsMismatchedScheme(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	hash := testHash(round, "block-a")
	other := testHash(round, "block-b")
	bs := NewBlockStorage(hash, 4, quorum.NewChecker(quorum.CFT))

	bs.Insert(testVote(other, 1, 1))
	require.Equal(0, bs.NumVotes())
}

func TestBlockStorageDropsDuplicateVote(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	hash := testHash(round, "block-a")
	bs := NewBlockStorage(hash, 4, quorum.NewChecker(quorum.CFT))
	vote := testVote(hash, 1, 1)

	bs.Insert(vote)
	bs.Insert(vote)
	require.Equal(1, bs.NumVotes())
}

func TestBlockStorageStateIsIdempotent(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	hash := testHash(round, "block-a")
	bs := NewBlockStorage(hash, 3, quorum.NewChecker(quorum.CFT))

	bs.Insert(testVote(hash, 1, 1))
	bs.Insert(testVote(hash, 2, 2))
	outcome1, ok1 := bs.State()
	outcome2, ok2 := bs.State()
	require.Equal(ok1, ok2)
	require.Equal(outcome1, outcome2)
}

func TestBlockStorageContains(t *testing.T) {
	require := require.New(t)
	round := types.Round{BlockRound: 1}
	hash := testHash(round, "block-a")
	bs := NewBlockStorage(hash, 4, quorum.NewChecker(quorum.CFT))
	vote := testVote(hash, 1, 1)

	require.False(bs.Contains(vote))
	bs.Insert(vote)
	require.True(bs.Contains(vote))
}
