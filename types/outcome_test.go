// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcomeConstructors(t *testing.T) {
	require := require.New(t)

	hash := YacHash{Round: Round{1, 0}, ProposalHash: "p", BlockHash: "b"}
	votes := []Vote{{Hash: hash}}

	c := Commit(votes)
	require.True(c.IsCommit())
	require.False(c.IsReject())
	require.Equal(Round{1, 0}, c.Round())

	r := Reject(votes)
	require.True(r.IsReject())
	require.False(r.IsCommit())
}
