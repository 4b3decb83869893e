// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gate

import (
	"sync"

	"github.com/luxfi/crypto/bls"
	"github.com/luxfi/log"

	"github.com/luxfi/yac/iface"
	"github.com/luxfi/yac/types"
)

// outcomeSource is the subset of the round driver the adaptor depends on.
type outcomeSource interface {
	Vote(hash types.YacHash, order types.ClusterOrder)
	OnOutcome() <-chan types.Outcome
}

// Adaptor subscribes to a block-creator's event stream, votes through the
// round driver, and classifies outcomes into Event values for the
// surrounding pipeline.
type Adaptor struct {
	driver       outcomeSource
	orderer      iface.PeerOrderer
	hashProvider iface.HashProvider
	log          log.Logger

	mu           sync.Mutex
	currentHash  types.YacHash
	currentBlock iface.Block

	events chan Event
}

// New wires an Adaptor to driver, orderer and hashProvider. Callers must
// pump block-creator events into OnBlockCreatorEvent and drain Events().
func New(driver outcomeSource, orderer iface.PeerOrderer, hashProvider iface.HashProvider, logger log.Logger) *Adaptor {
	a := &Adaptor{
		driver:       driver,
		orderer:      orderer,
		hashProvider: hashProvider,
		log:          logger,
		events:       make(chan Event, 32),
	}
	go a.consumeOutcomes()
	return a
}

// Events returns the channel of classified gate events.
func (a *Adaptor) Events() <-chan Event {
	return a.events
}

// OnBlockCreatorEvent handles one block-creator event: idempotence check,
// hashing, remembering the candidate block, fetching the round's ordering,
// and submitting the vote.
func (a *Adaptor) OnBlockCreatorEvent(event iface.BlockCreatorEvent) {
	a.mu.Lock()
	if !a.currentHash.Round.Less(event.Round) {
		a.mu.Unlock()
		a.log.Info("current round is not older than event round, skipped",
			log.Stringer("current", a.currentHash.Round),
			log.Stringer("event", event.Round))
		return
	}

	hash := a.hashProvider.MakeHash(event)
	a.currentHash = hash

	if event.RoundData == nil {
		a.currentBlock = nil
		a.log.Debug("agreed on nothing to commit")
	} else {
		a.currentBlock = event.RoundData.Block
		a.log.Info("voting for proposal/block pair",
			log.Stringer("round", hash.Round))
	}
	a.mu.Unlock()

	order, ok := a.orderer.GetOrdering(hash, event.LedgerPeers)
	if !ok {
		a.log.Error("ordering does not provide peers, round skipped", log.Stringer("round", hash.Round))
		return
	}

	a.driver.Vote(hash, order)
}

func (a *Adaptor) consumeOutcomes() {
	for outcome := range a.driver.OnOutcome() {
		if event, ok := a.classify(outcome); ok {
			a.events <- event
		}
	}
}

func (a *Adaptor) classify(outcome types.Outcome) (Event, bool) {
	hash := outcome.Votes[0].Hash

	a.mu.Lock()
	defer a.mu.Unlock()

	if hash.Round.Less(a.currentHash.Round) {
		return nil, false
	}

	if outcome.IsCommit() {
		return a.classifyCommitLocked(hash, outcome)
	}
	return a.classifyRejectLocked(hash, outcome)
}

func (a *Adaptor) classifyCommitLocked(hash types.YacHash, outcome types.Outcome) (Event, bool) {
	if hash.Equal(a.currentHash) && a.currentBlock != nil {
		a.copySignaturesLocked(outcome.Votes)
		block := a.currentBlock
		a.log.Info("consensus: commit top block", log.Stringer("round", hash.Round))
		return PairValid{Block: block, Round: hash.Round}, true
	}

	a.currentHash = hash

	if hash.ProposalHash == "" {
		a.log.Info("consensus skipped round, voted for nothing")
		a.currentBlock = nil
		return AgreementOnNone{Round: hash.Round}, true
	}

	a.log.Info("voted for another block, waiting for sync")
	a.currentBlock = nil

	publicKeys := make([]*bls.PublicKey, 0, len(outcome.Votes))
	for _, v := range outcome.Votes {
		publicKeys = append(publicKeys, v.Signature.PublicKey)
	}
	modelHash := a.hashProvider.ToModelHash(hash)
	return VoteOther{PublicKeys: publicKeys, ModelHash: modelHash, Round: hash.Round}, true
}

func (a *Adaptor) classifyRejectLocked(hash types.YacHash, outcome types.Outcome) (Event, bool) {
	sameProposal := true
	first := outcome.Votes[0].Hash.ProposalHash
	for _, v := range outcome.Votes[1:] {
		if v.Hash.ProposalHash != first {
			sameProposal = false
			break
		}
	}

	if !sameProposal {
		a.log.Info("proposal reject: rejecting votes disagree on proposal hash", log.Stringer("round", hash.Round))
		return ProposalReject{Round: hash.Round}, true
	}
	a.log.Info("block reject: rejecting votes share proposal hash", log.Stringer("round", hash.Round))
	return BlockReject{Round: hash.Round}, true
}

// copySignaturesLocked appends every commit vote's signature to the held
// candidate block, producing a fully-signed block for the pipeline.
func (a *Adaptor) copySignaturesLocked(votes []types.Vote) {
	for _, v := range votes {
		a.currentBlock.AddSignature(v.Signature)
	}
}
