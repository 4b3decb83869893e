// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package iface declares the external collaborators the YAC core consumes:
// the wire transport, the crypto provider, the peer orderer, the hash
// provider, and the block-creator event stream. None are implemented here;
// they are deliberately out of scope for the core, and this package exists
// so driver and gate can depend on narrow contracts instead of concrete
// transport/crypto/ordering code.
package iface

import (
	"github.com/luxfi/ids"
	"github.com/luxfi/yac/types"
)

// Transport sends vote batches fire-and-forget; retries are transport
// internal. Every batch the transport receives from the wire must be pushed
// into the driver's OnState.
type Transport interface {
	SendState(to types.Peer, votes []types.Vote)
}

// CryptoProvider signs the local vote and verifies incoming batches.
// Verify must check every signature in the batch against
// YacHash.SigningPayload and return a single boolean: the core treats a
// partially-valid batch as entirely invalid.
type CryptoProvider interface {
	Verify(votes []types.Vote) bool
	GetVote(hash types.YacHash) types.Vote
}

// PeerOrderer deterministically shuffles peers using the block hash string
// as a PRNG seed. The same hash must yield the same ordering on every peer;
// a missing peer list (nil/empty peers) is reported by returning ok=false.
type PeerOrderer interface {
	GetOrdering(hash types.YacHash, peers []types.Peer) (order types.ClusterOrder, ok bool)
}

// HashProvider digests a proposal/block pair into the round's voting hashes,
// and converts a YacHash into the pipeline's model-hash representation.
type HashProvider interface {
	MakeHash(event BlockCreatorEvent) types.YacHash
	ToModelHash(hash types.YacHash) ids.ID
}

// Block is the candidate block a gate adaptor holds while its round is
// voted on. AddSignature appends a committer's signature once the gate
// adaptor learns the local peer's candidate won the round.
type Block interface {
	AddSignature(sig types.Signature)
}

// RoundData is the candidate (proposal, block) pair a block-creator event
// carries when the round produced data. Proposal and Block are opaque to
// the core; only the hash provider and gate adaptor need to interpret them.
type RoundData struct {
	Proposal any
	Block    Block
}

// BlockCreatorEvent is what the surrounding block-creator pipeline emits
// once per round: either a fresh (proposal, block) pair, or a "round had no
// data" marker (RoundData == nil).
type BlockCreatorEvent struct {
	LedgerPeers []types.Peer
	RoundData   *RoundData
	Round       types.Round
}
