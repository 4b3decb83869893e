// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasSupermajorityUnanimousAndEmpty(t *testing.T) {
	require := require.New(t)

	for _, model := range []Model{CFT, BFT} {
		checker := NewChecker(model)
		for n := 1; n <= 10; n++ {
			require.True(checker.HasSupermajority(n, n), "model=%s n=%d", model, n)
			require.False(checker.HasSupermajority(0, n), "model=%s n=%d", model, n)
		}
	}
}

func TestHasSupermajorityCFTClosedForm(t *testing.T) {
	require := require.New(t)
	checker := NewChecker(CFT)

	for n := 1; n <= 20; n++ {
		threshold := n - (n-1)/2
		for agreed := 0; agreed <= n; agreed++ {
			require.Equal(agreed >= threshold, checker.HasSupermajority(agreed, n), "n=%d agreed=%d", n, agreed)
		}
	}
}

func TestHasSupermajorityBFTClosedForm(t *testing.T) {
	require := require.New(t)
	checker := NewChecker(BFT)

	for n := 1; n <= 20; n++ {
		threshold := n - (n-1)/3
		for agreed := 0; agreed <= n; agreed++ {
			require.Equal(agreed >= threshold, checker.HasSupermajority(agreed, n), "n=%d agreed=%d", n, agreed)
		}
	}
}

func TestCanHaveSupermajorityEmptyGroups(t *testing.T) {
	require := require.New(t)

	for _, model := range []Model{CFT, BFT} {
		checker := NewChecker(model)
		for n := 1; n <= 10; n++ {
			require.True(checker.CanHaveSupermajority(nil, n), "model=%s n=%d", model, n)
		}
	}
}

// TestCanHaveSupermajorityBFTScenario checks seven BFT peers split 2-3 with
// two outstanding votes.
func TestCanHaveSupermajorityBFTScenario(t *testing.T) {
	require := require.New(t)
	checker := NewChecker(BFT)

	require.True(checker.CanHaveSupermajority([]int{2, 3}, 7))
}

// TestCanHaveSupermajorityBFTTightScenario checks the same split after the
// two outstanding votes land on the two-vote hash, giving groups [4,3].
func TestCanHaveSupermajorityBFTTightScenario(t *testing.T) {
	require := require.New(t)
	checker := NewChecker(BFT)

	require.True(checker.CanHaveSupermajority([]int{4, 3}, 7))
}

func TestCanHaveSupermajorityCFTUnanimous(t *testing.T) {
	require := require.New(t)
	checker := NewChecker(CFT)

	// N=4, K=2: 3 votes needed. Two cast, two outstanding: still possible.
	require.True(checker.CanHaveSupermajority([]int{2}, 4))
	// Split 2/2 with none outstanding: impossible for either to reach 3.
	require.False(checker.CanHaveSupermajority([]int{2, 2}, 4))
}

func TestModelValidAndPanicOnUnknown(t *testing.T) {
	require := require.New(t)

	require.True(CFT.Valid())
	require.True(BFT.Valid())
	require.False(Model(99).Valid())

	require.Panics(func() { NewChecker(Model(99)) })
}
