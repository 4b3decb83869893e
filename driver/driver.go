// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package driver drives one round's local vote through the ordered peer
// list, merges incoming vote batches into Vote Storage, and publishes
// outcomes for the gate adaptor to consume.
package driver

import (
	"sync"
	"time"

	"github.com/luxfi/log"

	"github.com/luxfi/yac/iface"
	"github.com/luxfi/yac/metrics"
	"github.com/luxfi/yac/quorum"
	"github.com/luxfi/yac/store"
	"github.com/luxfi/yac/types"
)

// Driver is the round driver (called "YAC" in the surrounding pipeline): it
// owns one mutex guarding the cluster order, the current round, and the
// Vote Storage, and exposes an outcome channel for the gate adaptor.
type Driver struct {
	log       log.Logger
	metrics   *metrics.Metrics
	transport iface.Transport
	crypto    iface.CryptoProvider
	timeout   time.Duration

	mu           sync.Mutex
	clusterOrder types.ClusterOrder
	round        types.Round
	voteStorage  *store.VoteStorage
	timer        *time.Timer

	outcomes chan types.Outcome
}

// New creates a Driver with an empty cluster order and zero round; Vote
// establishes both on the first call.
func New(model quorum.Model, transport iface.Transport, crypto iface.CryptoProvider, timeout time.Duration, m *metrics.Metrics, logger log.Logger) *Driver {
	return &Driver{
		log:         logger,
		metrics:     m,
		transport:   transport,
		crypto:      crypto,
		timeout:     timeout,
		voteStorage: store.NewVoteStorage(model, m, logger),
		outcomes:    make(chan types.Outcome, 32),
	}
}

// Vote updates the current cluster order and round, signs hash via the
// crypto provider, and enters the voting step.
func (d *Driver) Vote(hash types.YacHash, order types.ClusterOrder) {
	d.log.Info("order for voting", log.Int("peers", order.Size()))

	d.mu.Lock()
	d.clusterOrder = order
	d.round = hash.Round
	d.mu.Unlock()

	vote := d.crypto.GetVote(hash)
	d.votingStep(vote)
}

// OnState merges an incoming vote batch from the transport: unknown peers
// are dropped, then the remaining batch is verified as a whole before being
// applied.
func (d *Driver) OnState(votes []types.Vote) {
	d.mu.Lock()

	filtered := d.removeUnknownPeersLocked(votes)
	if len(filtered) == 0 {
		d.mu.Unlock()
		d.log.Debug("no votes left in the message")
		return
	}

	if !d.crypto.Verify(filtered) {
		d.mu.Unlock()
		d.log.Warn("signature verification failed for incoming vote batch", log.Int("votes", len(filtered)))
		if d.metrics != nil {
			d.metrics.VotesDropped.WithLabelValues("verification_failed").Add(float64(len(filtered)))
		}
		return
	}

	d.applyState(filtered)
}

// OnOutcome returns the channel the gate adaptor reads committed and
// rejected outcomes from, one per round, in arrival order.
func (d *Driver) OnOutcome() <-chan types.Outcome {
	return d.outcomes
}

func (d *Driver) removeUnknownPeersLocked(votes []types.Vote) []types.Vote {
	filtered := make([]types.Vote, 0, len(votes))
	for _, v := range votes {
		if !d.clusterOrder.Contains(v.Signature.NodeID) {
			d.log.Warn("got a vote from an unknown peer", log.Stringer("peer", v.Signature.NodeID))
			if d.metrics != nil {
				d.metrics.VotesDropped.WithLabelValues("unknown_peer").Inc()
			}
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

// votingStep sends vote to the current leader, advances the cluster order,
// and reschedules itself after the configured delay as long as peers remain
// untried and the round has not already committed.
func (d *Driver) votingStep(vote types.Vote) {
	d.mu.Lock()

	if d.voteStorage.IsCommitted(vote.Hash.Round) {
		d.mu.Unlock()
		return
	}

	leader, ok := d.clusterOrder.Leader()
	if ok {
		d.log.Info("voting for round",
			log.Stringer("round", vote.Hash.Round),
			log.Stringer("leader", leader.NodeID))
		d.transport.SendState(leader, []types.Vote{vote})
	}

	d.clusterOrder = d.clusterOrder.Advance()
	hasNext := d.clusterOrder.HasNext()
	d.stopTimerLocked()
	if hasNext {
		d.timer = time.AfterFunc(d.timeout, func() { d.votingStep(vote) })
	}

	d.mu.Unlock()
}

// closeRound cancels the rotation timer; cancellation is idempotent.
func (d *Driver) closeRound() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopTimerLocked()
}

func (d *Driver) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// applyState stores the filtered, verified batch and dispatches on the
// resulting propagation state. Called with the lock held; releases it
// before any channel send or transport fan-out that doesn't need it.
func (d *Driver) applyState(batch []types.Vote) {
	round := batch[0].Hash.Round
	outcome, ok := d.voteStorage.Store(batch, d.clusterOrder.Size())
	if !ok {
		d.mu.Unlock()
		d.tryBackPropagate(batch)
		return
	}

	// Batch-size heuristic: a multi-vote batch means some other peer already
	// collected and broadcast this outcome, so skip straight past the
	// broadcast stage.
	if len(batch) > 1 && d.voteStorage.ProcessingState(round) == types.NotSentNotProcessed {
		d.voteStorage.AdvanceProcessingState(round)
		d.log.Info("received supermajority of votes, skipping propagation", log.Stringer("round", round))
	}

	currentRound := d.round
	switch d.voteStorage.ProcessingState(round) {
	case types.NotSentNotProcessed:
		d.voteStorage.AdvanceProcessingState(round)
		order := d.clusterOrder
		d.mu.Unlock()
		d.log.Info("propagating outcome to whole network", log.Stringer("round", round))
		d.broadcast(order, outcome.Votes)

	case types.SentNotProcessed:
		d.voteStorage.AdvanceProcessingState(round)
		d.mu.Unlock()
		if !round.Less(currentRound) {
			d.closeRound()
		}
		d.publish(outcome)
		d.recordOutcomeMetric(outcome)

	case types.SentProcessed:
		d.mu.Unlock()
		d.tryBackPropagate(batch)
	}
}

// recordOutcomeMetric counts a round's decision exactly once: this is only
// called from the SentNotProcessed branch of applyState, which a round
// passes through exactly once on its way to SentProcessed.
func (d *Driver) recordOutcomeMetric(outcome types.Outcome) {
	if d.metrics == nil {
		return
	}
	if outcome.IsCommit() {
		d.metrics.Commits.Inc()
	} else {
		d.metrics.Rejects.Inc()
	}
}

// tryBackPropagate serves a lagging peer: if batch is a single vote whose
// round has already finalized, the stored outcome's votes are sent directly
// to the sender.
func (d *Driver) tryBackPropagate(batch []types.Vote) {
	if len(batch) != 1 {
		return
	}

	d.mu.Lock()
	lastRound, has := d.voteStorage.LastFinalizedRound()
	if !has || lastRound.Less(batch[0].Hash.Round) {
		d.mu.Unlock()
		return
	}

	votes, has := d.voteStorage.OutcomeVotes(lastRound)
	if !has {
		d.mu.Unlock()
		return
	}
	from, found := d.clusterOrder.Find(batch[0].Signature.NodeID)
	d.mu.Unlock()

	if !found {
		return
	}
	d.log.Info("propagating state directly to lagging peer",
		log.Stringer("round", lastRound), log.Stringer("peer", from.NodeID))
	d.transport.SendState(from, votes)
}

func (d *Driver) broadcast(order types.ClusterOrder, votes []types.Vote) {
	for _, p := range order.Peers() {
		d.transport.SendState(p, votes)
	}
}

func (d *Driver) publish(outcome types.Outcome) {
	d.outcomes <- outcome
}
