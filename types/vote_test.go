// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoteEqual(t *testing.T) {
	require := require.New(t)

	hash := YacHash{Round: Round{1, 0}, ProposalHash: "p", BlockHash: "b"}
	v1 := Vote{Hash: hash, Signature: Signature{Bytes: []byte("sig-a")}}
	v2 := Vote{Hash: hash, Signature: Signature{Bytes: []byte("sig-a")}}
	v3 := Vote{Hash: hash, Signature: Signature{Bytes: []byte("sig-b")}}

	require.True(v1.Equal(v2))
	require.False(v1.Equal(v3), "different signature bytes must not be equal")
}

func TestVoteEqualDifferentHash(t *testing.T) {
	require := require.New(t)

	sig := Signature{Bytes: []byte("sig-a")}
	v1 := Vote{Hash: YacHash{Round: Round{1, 0}, ProposalHash: "p", BlockHash: "b"}, Signature: sig}
	v2 := Vote{Hash: YacHash{Round: Round{1, 0}, ProposalHash: "p2", BlockHash: "b"}, Signature: sig}

	require.False(v1.Equal(v2))
}
