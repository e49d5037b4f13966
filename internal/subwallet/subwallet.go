// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package subwallet implements the sub-wallet record: identity (keys,
// address, flags) plus an input ledger.
package subwallet

import (
	"github.com/turtlecoin-contrib/subwallets/internal/ledger"
	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// SubWallet is one deterministic spend key pair within a container,
// plus the UTXOs it owns.
type SubWallet struct {
	publicSpendKey  wallettypes.PublicKey
	privateSpendKey wallettypes.SecretKey
	hasPrivateKey   bool

	address string

	// At most one of syncStartHeight/syncStartTimestamp is nonzero.
	syncStartHeight    wallettypes.Height
	syncStartTimestamp wallettypes.Timestamp

	isPrimary bool

	Ledger *ledger.Ledger
}

// New creates a full (spend-capable) sub-wallet record.
func New(
	publicSpendKey wallettypes.PublicKey,
	privateSpendKey wallettypes.SecretKey,
	address string,
	syncStartHeight wallettypes.Height,
	syncStartTimestamp wallettypes.Timestamp,
	isPrimary bool,
) *SubWallet {
	log.Debugf("Creating sub-wallet %v (primary=%v, scan start height=%d, "+
		"scan start timestamp=%d)", publicSpendKey, isPrimary, syncStartHeight, syncStartTimestamp)

	return &SubWallet{
		publicSpendKey:     publicSpendKey,
		privateSpendKey:    privateSpendKey,
		hasPrivateKey:      true,
		address:            address,
		syncStartHeight:    syncStartHeight,
		syncStartTimestamp: syncStartTimestamp,
		isPrimary:          isPrimary,
		Ledger:             ledger.New(),
	}
}

// NewViewOnly creates a sub-wallet record with no private spend key.
func NewViewOnly(
	publicSpendKey wallettypes.PublicKey,
	address string,
	syncStartHeight wallettypes.Height,
	syncStartTimestamp wallettypes.Timestamp,
	isPrimary bool,
) *SubWallet {
	log.Debugf("Creating view-only sub-wallet %v (primary=%v, scan start height=%d, "+
		"scan start timestamp=%d)", publicSpendKey, isPrimary, syncStartHeight, syncStartTimestamp)

	return &SubWallet{
		publicSpendKey:     publicSpendKey,
		hasPrivateKey:      false,
		address:            address,
		syncStartHeight:    syncStartHeight,
		syncStartTimestamp: syncStartTimestamp,
		isPrimary:          isPrimary,
		Ledger:             ledger.New(),
	}
}

// Clone returns a deep copy of this sub-wallet, including its ledger.
func (s *SubWallet) Clone() *SubWallet {
	clone := *s
	clone.Ledger = s.Ledger.Clone()
	return &clone
}

// PublicSpendKey returns the identifying public spend key.
func (s *SubWallet) PublicSpendKey() wallettypes.PublicKey { return s.publicSpendKey }

// PrivateSpendKey returns the private spend key and whether one exists
// (false for view wallets).
func (s *SubWallet) PrivateSpendKey() (wallettypes.SecretKey, bool) {
	return s.privateSpendKey, s.hasPrivateKey
}

// Address returns this sub-wallet's address.
func (s *SubWallet) Address() string { return s.address }

// SyncStartHeight returns the height to begin scanning from, or zero if
// a timestamp should be used instead.
func (s *SubWallet) SyncStartHeight() wallettypes.Height { return s.syncStartHeight }

// SyncStartTimestamp returns the timestamp to begin scanning from, or
// zero if a height should be used instead.
func (s *SubWallet) SyncStartTimestamp() wallettypes.Timestamp { return s.syncStartTimestamp }

// IsPrimaryAddress reports whether this is the container's primary
// sub-wallet.
func (s *SubWallet) IsPrimaryAddress() bool { return s.isPrimary }

// HasKeyImage reports whether this sub-wallet's ledger owns an input
// with the given key image.
func (s *SubWallet) HasKeyImage(ki wallettypes.KeyImage) bool {
	return s.Ledger.HasKeyImage(ki)
}
