// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/crypto/bls"
	"github.com/luxfi/ids"
)

// Peer is a cluster member: an address the transport can reach plus the
// public key the crypto provider verifies its votes against.
type Peer struct {
	NodeID    ids.NodeID
	Address   string
	PublicKey *bls.PublicKey
}

// ClusterOrder is a deterministic shuffle of a round's peers plus a
// zero-based index into it, produced by the external peer-orderer.
//
// HasNext and the wraparound behavior of Leader do not compose cleanly: the
// driver must consult HasNext before rotating, since Leader itself wraps to
// index 0 once the order is exhausted rather than reporting an error. Both
// behaviors are exposed deliberately rather than unified.
type ClusterOrder struct {
	peers []Peer
	index int
}

// NewClusterOrder builds a ClusterOrder over the given peer slice. An empty
// slice is a valid (if useless) ordering; callers that require at least one
// peer should check len(peers) before constructing.
func NewClusterOrder(peers []Peer) ClusterOrder {
	ordered := make([]Peer, len(peers))
	copy(ordered, peers)
	return ClusterOrder{peers: ordered}
}

// Leader returns the peer at the current index. Once the index reaches the
// end of the order it wraps to zero, matching the original implementation's
// current_leader behavior.
func (c ClusterOrder) Leader() (Peer, bool) {
	if len(c.peers) == 0 {
		return Peer{}, false
	}
	i := c.index
	if i >= len(c.peers) {
		i = 0
	}
	return c.peers[i], true
}

// Advance increments the index with no wraparound.
func (c ClusterOrder) Advance() ClusterOrder {
	c.index++
	return c
}

// HasNext reports whether the index is strictly less than the number of
// peers, i.e. whether a call to Leader still names a peer the local node
// has not yet tried in this rotation.
func (c ClusterOrder) HasNext() bool {
	return c.index < len(c.peers)
}

// Peers returns the underlying ordered peer slice. Callers must not mutate
// the returned slice.
func (c ClusterOrder) Peers() []Peer {
	return c.peers
}

// Size returns the number of peers in the order.
func (c ClusterOrder) Size() int {
	return len(c.peers)
}

// Contains reports whether nodeID names a peer in this order.
func (c ClusterOrder) Contains(nodeID ids.NodeID) bool {
	for _, p := range c.peers {
		if p.NodeID == nodeID {
			return true
		}
	}
	return false
}

// Find returns the peer with the given node ID, if present.
func (c ClusterOrder) Find(nodeID ids.NodeID) (Peer, bool) {
	for _, p := range c.peers {
		if p.NodeID == nodeID {
			return p, true
		}
	}
	return Peer{}, false
}
