// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundLess(t *testing.T) {
	require := require.New(t)

	require.True(Round{BlockRound: 1, RejectRound: 0}.Less(Round{BlockRound: 1, RejectRound: 1}))
	require.True(Round{BlockRound: 1, RejectRound: 9}.Less(Round{BlockRound: 2, RejectRound: 0}))
	require.False(Round{BlockRound: 2, RejectRound: 0}.Less(Round{BlockRound: 1, RejectRound: 9}))
	require.False(Round{BlockRound: 1, RejectRound: 1}.Less(Round{BlockRound: 1, RejectRound: 1}))
}

func TestRoundCompare(t *testing.T) {
	require := require.New(t)

	require.Equal(0, Round{1, 1}.Compare(Round{1, 1}))
	require.Equal(-1, Round{1, 0}.Compare(Round{1, 1}))
	require.Equal(1, Round{1, 1}.Compare(Round{1, 0}))
}

func TestMaxRound(t *testing.T) {
	require := require.New(t)

	require.Equal(Round{2, 0}, MaxRound(Round{1, 5}, Round{2, 0}))
	require.Equal(Round{2, 0}, MaxRound(Round{2, 0}, Round{1, 5}))
}
