// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

// PropagationState tracks, per round, whether the local peer has broadcast
// an outcome and whether it has handed that outcome to the pipeline. The
// transition law is strict: NotSentNotProcessed -> SentNotProcessed ->
// SentProcessed, no backward transitions, unknown rounds default to
// NotSentNotProcessed.
type PropagationState uint8

const (
	// NotSentNotProcessed is the default state for any round not yet observed.
	NotSentNotProcessed PropagationState = iota
	// SentNotProcessed means the outcome has been broadcast but not yet
	// published to the gate adaptor.
	SentNotProcessed
	// SentProcessed means the outcome has been both broadcast and published.
	SentProcessed
)

func (s PropagationState) String() string {
	switch s {
	case NotSentNotProcessed:
		return "NotSentNotProcessed"
	case SentNotProcessed:
		return "SentNotProcessed"
	case SentProcessed:
		return "SentProcessed"
	default:
		return "Unknown"
	}
}

// Advance applies the monotone transition, returning the next state. Calling
// Advance on SentProcessed is a no-op (terminal state).
func (s PropagationState) Advance() PropagationState {
	switch s {
	case NotSentNotProcessed:
		return SentNotProcessed
	case SentNotProcessed:
		return SentProcessed
	default:
		return s
	}
}
