// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logging provides the default logger YAC components fall back to
// when callers don't supply one of their own.
package logging

import "github.com/luxfi/log"

// NoOp returns a logger that discards everything written to it. Tests and
// callers that don't care about YAC's internal diagnostics use this instead
// of threading a nil Logger through every constructor.
func NoOp() log.Logger {
	return log.NewNoOpLogger()
}
