// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal implements the transaction journal: confirmed and
// locked transactions, indexed by hash.
package journal

import "github.com/turtlecoin-contrib/subwallets/wallettypes"

// Journal holds the confirmed and locked (user-submitted, unconfirmed)
// transaction history. Not concurrency-safe on its own — callers must
// hold the Container's mutex.
type Journal struct {
	confirmed []wallettypes.Transaction
	locked    []wallettypes.Transaction
}

// New returns an empty Journal.
func New() *Journal {
	return &Journal{}
}

// Clone returns a deep copy.
func (j *Journal) Clone() *Journal {
	clone := &Journal{
		confirmed: make([]wallettypes.Transaction, len(j.confirmed)),
		locked:    make([]wallettypes.Transaction, len(j.locked)),
	}
	copy(clone.confirmed, j.confirmed)
	copy(clone.locked, j.locked)
	for _, txs := range [][]wallettypes.Transaction{clone.confirmed, clone.locked} {
		for i := range txs {
			if txs[i].Transfers == nil {
				continue
			}
			transfers := make(map[wallettypes.PublicKey]int64, len(txs[i].Transfers))
			for k, v := range txs[i].Transfers {
				transfers[k] = v
			}
			txs[i].Transfers = transfers
		}
	}
	return clone
}

// AddUnconfirmed appends a user-submitted transaction to the locked
// set, before the scanner has observed it on-chain.
func (j *Journal) AddUnconfirmed(tx wallettypes.Transaction) {
	j.locked = append(j.locked, tx)
}

// AddConfirmed removes any locked entry with the same hash (the
// scanner has now observed what the user submitted) and appends tx to
// the confirmed set.
func (j *Journal) AddConfirmed(tx wallettypes.Transaction) {
	before := len(j.locked)
	j.locked = removeIf(j.locked, func(t wallettypes.Transaction) bool {
		return t.Hash == tx.Hash
	})
	if len(j.locked) < before {
		log.Debugf("Transaction %v confirmed at height %d, removing locked entry", tx.Hash, tx.BlockHeight)
	}
	j.confirmed = append(j.confirmed, tx)
}

// RemoveForked drops every confirmed entry at or after forkHeight.
func (j *Journal) RemoveForked(forkHeight wallettypes.Height) {
	before := len(j.confirmed)
	j.confirmed = removeIf(j.confirmed, func(t wallettypes.Transaction) bool {
		return t.BlockHeight >= forkHeight
	})
	if dropped := before - len(j.confirmed); dropped > 0 {
		log.Debugf("Dropped %d confirmed transactions at or after height %d", dropped, forkHeight)
	}
}

// RemoveCancelled drops every locked entry whose hash is in hashes.
func (j *Journal) RemoveCancelled(hashes map[wallettypes.Hash]bool) {
	before := len(j.locked)
	j.locked = removeIf(j.locked, func(t wallettypes.Transaction) bool {
		return hashes[t.Hash]
	})
	if dropped := before - len(j.locked); dropped > 0 {
		log.Debugf("Dropped %d cancelled locked transactions", dropped)
	}
}

// Reset clears every locked entry and drops confirmed entries at or
// after scanHeight.
func (j *Journal) Reset(scanHeight wallettypes.Height) {
	if len(j.locked) > 0 {
		log.Debugf("Clearing %d locked transactions on reset", len(j.locked))
	}
	j.locked = nil
	j.confirmed = removeIf(j.confirmed, func(t wallettypes.Transaction) bool {
		return t.BlockHeight >= scanHeight
	})
}

// LockedHashes returns the set of hashes of every locked transaction.
func (j *Journal) LockedHashes() map[wallettypes.Hash]bool {
	result := make(map[wallettypes.Hash]bool, len(j.locked))
	for _, tx := range j.locked {
		result[tx.Hash] = true
	}
	return result
}

// AllConfirmed returns every confirmed transaction.
func (j *Journal) AllConfirmed() []wallettypes.Transaction {
	out := make([]wallettypes.Transaction, len(j.confirmed))
	copy(out, j.confirmed)
	return out
}

// AllUnconfirmed returns every locked (unconfirmed) transaction. This
// does not include incoming transactions still sitting in the mempool
// that the scanner hasn't reported yet — only outgoing transactions
// this container submitted but hasn't seen confirmed.
func (j *Journal) AllUnconfirmed() []wallettypes.Transaction {
	out := make([]wallettypes.Transaction, len(j.locked))
	copy(out, j.locked)
	return out
}

// removeIf returns a new slice with every element matching predicate
// removed, preserving relative order. It erases every match in one
// pass rather than stopping after the first.
func removeIf(s []wallettypes.Transaction, predicate func(wallettypes.Transaction) bool) []wallettypes.Transaction {
	out := s[:0]
	for _, v := range s {
		if !predicate(v) {
			out = append(out, v)
		}
	}
	return out
}
