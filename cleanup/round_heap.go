// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cleanup

import (
	"container/heap"

	"github.com/luxfi/yac/types"
)

// roundHeap is a min-heap of rounds ordered by types.Round.Compare, used to
// drain stale round storages in order once a commit advances past them.
type roundHeap []types.Round

func (h roundHeap) Len() int           { return len(h) }
func (h roundHeap) Less(i, j int) bool { return h[i].Less(h[j]) }
func (h roundHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *roundHeap) Push(x any) {
	*h = append(*h, x.(types.Round))
}

func (h *roundHeap) Pop() any {
	old := *h
	n := len(old)
	round := old[n-1]
	*h = old[:n-1]
	return round
}

func (h *roundHeap) push(round types.Round) {
	heap.Push(h, round)
}

// peek returns the smallest round without removing it.
func (h roundHeap) peek() (types.Round, bool) {
	if len(h) == 0 {
		return types.Round{}, false
	}
	return h[0], true
}

func (h *roundHeap) pop() types.Round {
	return heap.Pop(h).(types.Round)
}
