// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics exposes the prometheus counters the round driver and
// storages increment as votes, outcomes, and propagation transitions occur.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the counters a YAC instance reports.
type Metrics struct {
	VotesAccepted       prometheus.Counter
	VotesDropped        *prometheus.CounterVec
	Commits             prometheus.Counter
	Rejects             prometheus.Counter
	RoundsCleaned       prometheus.Counter
	PropagationAdvances *prometheus.CounterVec
}

// New registers and returns a Metrics bundle under reg. New panics if any
// collector is already registered under reg; callers register one Metrics
// bundle per process, once at wiring time.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		VotesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "yac",
			Name:      "votes_accepted_total",
			Help:      "Number of votes accepted into a Block Storage.",
		}),
		VotesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yac",
			Name:      "votes_dropped_total",
			Help:      "Number of votes dropped, labeled by reason.",
		}, []string{"reason"}),
		Commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "yac",
			Name:      "commits_total",
			Help:      "Number of rounds decided by commit.",
		}),
		Rejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "yac",
			Name:      "rejects_total",
			Help:      "Number of rounds decided by reject.",
		}),
		RoundsCleaned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "yac",
			Name:      "rounds_cleaned_total",
			Help:      "Number of round storages discarded by the cleanup strategy.",
		}),
		PropagationAdvances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yac",
			Name:      "propagation_advances_total",
			Help:      "Number of propagation-state transitions, labeled by destination state.",
		}, []string{"state"}),
	}

	for _, c := range []prometheus.Collector{
		m.VotesAccepted,
		m.VotesDropped,
		m.Commits,
		m.Rejects,
		m.RoundsCleaned,
		m.PropagationAdvances,
	} {
		reg.MustRegister(c)
	}

	return m
}
