// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/luxfi/crypto/bls"
)

// YacHash is the composite value peers vote on: a round plus the digested
// proposal and block hex strings. Equality is by (round, proposal, block);
// the embedded signature rides along for inclusion in committed blocks and
// never participates in equality or hashing.
type YacHash struct {
	Round          Round
	ProposalHash   string
	BlockHash      string
	BlockSignature *bls.Signature
}

// Equal compares two voting hashes by (round, proposal hash, block hash) only.
func (h YacHash) Equal(other YacHash) bool {
	return h.Round == other.Round &&
		h.ProposalHash == other.ProposalHash &&
		h.BlockHash == other.BlockHash
}

// IsEmpty reports whether this hash carries no proposal/block data, the
// representation used for a "round had no data" marker.
func (h YacHash) IsEmpty() bool {
	return h.ProposalHash == "" && h.BlockHash == ""
}

// SigningPayload is the canonical byte string a CryptoProvider signs and
// verifies against. It never includes BlockSignature: the signature cannot
// sign itself.
func (h YacHash) SigningPayload() []byte {
	return []byte(fmt.Sprintf("%s|%s|%s", h.Round, h.ProposalHash, h.BlockHash))
}

func (h YacHash) String() string {
	return fmt.Sprintf("YacHash{round=%s, proposal=%s, block=%s}", h.Round, h.ProposalHash, h.BlockHash)
}
