// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package walletclock implements the wall-clock contract used to time
// wallet scanning and sub-wallet creation.
package walletclock

import (
	"time"

	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// SyncSafetyMargin is subtracted from the wall-clock time when
// computing the adjusted timestamp a new wallet should begin scanning
// from, so that slightly-drifted block timestamps near "now" aren't
// skipped.
const SyncSafetyMargin = time.Hour

// Clock reads the system wall clock. The zero value is ready to use.
type Clock struct{}

// Now returns the current UNIX time.
func (Clock) Now() wallettypes.Timestamp {
	return wallettypes.Timestamp(time.Now().Unix())
}

// CurrentAdjustedTimestamp returns the current UNIX time minus
// SyncSafetyMargin.
func (Clock) CurrentAdjustedTimestamp() wallettypes.Timestamp {
	return wallettypes.Timestamp(time.Now().Add(-SyncSafetyMargin).Unix())
}
