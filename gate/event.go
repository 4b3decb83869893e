// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gate translates block-creator events into voting hashes, submits
// votes to the round driver, and classifies outcomes into pipeline-level
// events.
package gate

import (
	"github.com/luxfi/crypto/bls"
	"github.com/luxfi/ids"

	"github.com/luxfi/yac/iface"
	"github.com/luxfi/yac/types"
)

// Event is the tagged union the gate adaptor emits for the surrounding
// block-creator pipeline to consume.
type Event interface {
	gateEvent()
}

// PairValid reports that the local peer voted for the committed block:
// Block has the signature of every commit vote appended, the local peer's
// included.
type PairValid struct {
	Block iface.Block
	Round types.Round
}

// AgreementOnNone reports that the round committed to having no data.
type AgreementOnNone struct {
	Round types.Round
}

// VoteOther reports that the network committed to a block the local peer
// did not vote for; the pipeline must sync it by ModelHash.
type VoteOther struct {
	PublicKeys []*bls.PublicKey
	ModelHash  ids.ID
	Round      types.Round
}

// BlockReject reports a reject where every rejecting vote agreed on the same
// proposal hash (only the block was in dispute).
type BlockReject struct {
	Round types.Round
}

// ProposalReject reports a reject where rejecting votes disagreed on the
// proposal hash itself.
type ProposalReject struct {
	Round types.Round
}

func (PairValid) gateEvent()       {}
func (AgreementOnNone) gateEvent() {}
func (VoteOther) gateEvent()       {}
func (BlockReject) gateEvent()     {}
func (ProposalReject) gateEvent()  {}
