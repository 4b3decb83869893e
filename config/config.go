// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the tunables the YAC core needs at construction
// time: which consistency model to enforce and how long the round driver
// waits before rotating to the next leader.
package config

import (
	"errors"
	"time"

	"github.com/luxfi/yac/quorum"
)

// ErrUnknownConsistencyModel is returned by Validate when Model does not
// name a supported consistency model. This is the one fatal error path in
// the core: callers must check it before wiring a driver together.
var ErrUnknownConsistencyModel = errors.New("config: unknown consistency model")

// Parameters configures a YAC instance.
type Parameters struct {
	// Model selects BFT (3f+1) or CFT (2f+1) supermajority arithmetic.
	Model quorum.Model

	// VoteTimeout is the delay between successive voting_step rotations to
	// the next leader in the cluster order.
	VoteTimeout time.Duration
}

// Validate reports ErrUnknownConsistencyModel if Model isn't recognized.
func (p Parameters) Validate() error {
	if !p.Model.Valid() {
		return ErrUnknownConsistencyModel
	}
	return nil
}

// Default returns production-leaning parameters: BFT consistency with a
// generous rotation timeout.
func Default() Parameters {
	return Parameters{
		Model:       quorum.BFT,
		VoteTimeout: 5 * time.Second,
	}
}

// Fast returns parameters suited to local development and tests: CFT
// consistency with a short rotation timeout.
func Fast() Parameters {
	return Parameters{
		Model:       quorum.CFT,
		VoteTimeout: 50 * time.Millisecond,
	}
}
