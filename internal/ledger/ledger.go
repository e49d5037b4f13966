// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger implements the input ledger: the set of UTXOs owned by
// one spend key, and their spendability classification. It follows
// wtxmgr's map-plus-mutex-free-leaf-component shape from
// btcsuite-btcwallet — the container above this package owns the only
// lock.
package ledger

import (
	"github.com/turtlecoin-contrib/subwallets/internal/walleterr"
	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// KeyGenerator is the subset of the Crypto module contract the ledger
// needs to finalize a candidate UTXO.
type KeyGenerator interface {
	DeriveKeyImage(
		derivation wallettypes.KeyDerivation,
		outputIndex uint64,
		publicSpendKey wallettypes.PublicKey,
		privateSpendKey wallettypes.SecretKey,
	) wallettypes.KeyImage
}

// CurrencyParams is the subset of the Currency module contract the
// ledger needs to classify unlock time and coinbase maturity.
type CurrencyParams interface {
	MaxBlockNumber() uint64
	MinedMoneyUnlockWindow() wallettypes.Height
}

// Clock is the subset of the wall-clock contract the ledger needs to
// evaluate timestamp-mode unlock times.
type Clock interface {
	Now() wallettypes.Timestamp
}

// Ledger owns the UTXOs addressable by one sub-wallet's spend key,
// keyed by key image. Not concurrency-safe on its own — callers must
// hold the Container's mutex.
type Ledger struct {
	inputs map[wallettypes.KeyImage]wallettypes.TransactionInput

	// coinbaseKeyImages tracks key images that belong to coinbase
	// outputs, since TransactionInput itself has no "is coinbase" flag
	// but the balance rule needs the distinction for maturity.
	coinbaseKeyImages map[wallettypes.KeyImage]bool
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{
		inputs:            make(map[wallettypes.KeyImage]wallettypes.TransactionInput),
		coinbaseKeyImages: make(map[wallettypes.KeyImage]bool),
	}
}

// Clone returns a deep copy, used by Container's copy constructor.
func (l *Ledger) Clone() *Ledger {
	clone := New()
	for ki, in := range l.inputs {
		clone.inputs[ki] = in
	}
	for ki, v := range l.coinbaseKeyImages {
		clone.coinbaseKeyImages[ki] = v
	}
	return clone
}

// CompleteAndStoreInput finalizes a candidate UTXO discovered by the
// scanner. If the wallet is not a view wallet, the key image is derived
// from the key derivation, output index, and the sub-wallet's spend
// keys; for view wallets the input is stored without a key image.
// Duplicates (matching key image, or — for view wallets, where the key
// image is always zero — matching parent hash and transaction index)
// are idempotent.
func (l *Ledger) CompleteAndStoreInput(
	keyGen KeyGenerator,
	derivation wallettypes.KeyDerivation,
	outputIndex uint64,
	input wallettypes.TransactionInput,
	publicSpendKey wallettypes.PublicKey,
	privateSpendKey wallettypes.SecretKey,
	isViewWallet bool,
	isCoinbase bool,
) {
	if !isViewWallet {
		input.KeyImage = keyGen.DeriveKeyImage(derivation, outputIndex, publicSpendKey, privateSpendKey)
	}

	if !input.KeyImage.IsZero() {
		if _, exists := l.inputs[input.KeyImage]; exists {
			return
		}
	} else {
		// View wallets have no key image to de-duplicate on; fall back
		// to the (parent hash, transaction index) pair, which is unique
		// per output.
		for _, existing := range l.inputs {
			if existing.KeyImage.IsZero() &&
				existing.ParentTransactionHash == input.ParentTransactionHash &&
				existing.TransactionIndex == input.TransactionIndex {
				return
			}
		}
	}

	key := input.KeyImage
	if key.IsZero() {
		// Synthesize a unique map key for view-wallet inputs from their
		// parent hash and index so distinct zero-key-image inputs don't
		// collide in the map.
		key = viewWalletSyntheticKey(input)
	}

	l.inputs[key] = input
	if isCoinbase {
		l.coinbaseKeyImages[key] = true
	}
}

// viewWalletSyntheticKey derives a stable, collision-resistant map key
// for a view-wallet input, which has no real key image.
func viewWalletSyntheticKey(input wallettypes.TransactionInput) wallettypes.KeyImage {
	var key wallettypes.KeyImage
	copy(key[:], input.ParentTransactionHash[:])
	// Fold the transaction index into the low bytes so two outputs of
	// the same parent transaction don't collide.
	key[31] ^= byte(input.TransactionIndex)
	key[30] ^= byte(input.TransactionIndex >> 8)
	return key
}

// HasKeyImage reports whether this ledger owns an input with the given
// key image.
func (l *Ledger) HasKeyImage(ki wallettypes.KeyImage) bool {
	_, ok := l.inputs[ki]
	return ok
}

// GetInputs returns every unspent, unlocked input. Fails with
// ErrIllegalViewWalletOperation if the ledger belongs to a view wallet,
// since view wallets have no key images and thus no spendable inputs to
// report to a transaction builder.
func (l *Ledger) GetInputs(isViewWallet bool) ([]wallettypes.TransactionInput, error) {
	if isViewWallet {
		return nil, walleterr.New(walleterr.ErrIllegalViewWalletOperation,
			"cannot get spendable inputs from a view wallet")
	}

	inputs := make([]wallettypes.TransactionInput, 0, len(l.inputs))
	for _, in := range l.inputs {
		if in.SpendHeight == 0 && !in.Locked {
			inputs = append(inputs, in)
		}
	}
	return inputs, nil
}

// MarkInputAsLocked sets the locked flag on the input with the given
// key image, recording which transaction locked it. If the key image is
// unknown, this is a silent no-op — the input may simply have been
// reorged away.
func (l *Ledger) MarkInputAsLocked(ki wallettypes.KeyImage, lockingTxHash wallettypes.Hash) {
	in, ok := l.inputs[ki]
	if !ok {
		log.Debugf("Ignoring lock request for unknown key image %v, "+
			"input may have been reorged away", ki)
		return
	}
	in.Locked = true
	in.LockedBy = lockingTxHash
	l.inputs[ki] = in
}

// MarkInputAsSpent records the height a spend was confirmed at and
// clears the locked flag. Idempotent: calling it twice with the same
// arguments leaves the same state as calling it once.
func (l *Ledger) MarkInputAsSpent(ki wallettypes.KeyImage, spendHeight wallettypes.Height) {
	in, ok := l.inputs[ki]
	if !ok {
		return
	}
	in.SpendHeight = spendHeight
	in.Locked = false
	l.inputs[ki] = in
}

// RemoveForkedInputs rolls back state for a fork at forkHeight: inputs
// received at or after the fork height are forgotten entirely (they
// never happened on the surviving chain), and inputs spent at or after
// the fork height are returned to the unspent, unlocked state.
func (l *Ledger) RemoveForkedInputs(forkHeight wallettypes.Height) {
	var forgotten, unspent int
	for ki, in := range l.inputs {
		switch {
		case in.BlockHeight >= forkHeight:
			delete(l.inputs, ki)
			delete(l.coinbaseKeyImages, ki)
			forgotten++
		case in.SpendHeight >= forkHeight && in.SpendHeight != 0:
			in.SpendHeight = 0
			in.Locked = false
			l.inputs[ki] = in
			unspent++
		}
	}
	if forgotten > 0 || unspent > 0 {
		log.Debugf("Fork rollback at height %d: forgot %d inputs, "+
			"reverted %d spends", forkHeight, forgotten, unspent)
	}
}

// RemoveCancelledTransactions unlocks every input whose locking
// transaction hash is in hashes. This relies on LockedBy having been
// recorded at MarkInputAsLocked time, rather than re-deriving which
// transaction locked an input from scratch.
func (l *Ledger) RemoveCancelledTransactions(hashes map[wallettypes.Hash]bool) {
	var unlocked int
	for ki, in := range l.inputs {
		if in.Locked && hashes[in.LockedBy] {
			in.Locked = false
			in.LockedBy = wallettypes.Hash{}
			l.inputs[ki] = in
			unlocked++
		}
	}
	if unlocked > 0 {
		log.Debugf("Unlocked %d inputs after cancelling %d transactions", unlocked, len(hashes))
	}
}

// Reset drops every input received at or after scanHeight and clears
// every locked flag, as if the wallet were about to rescan from
// scanHeight.
func (l *Ledger) Reset(scanHeight wallettypes.Height) {
	for ki, in := range l.inputs {
		if in.BlockHeight >= scanHeight {
			delete(l.inputs, ki)
			delete(l.coinbaseKeyImages, ki)
			continue
		}
		if in.Locked {
			in.Locked = false
			in.LockedBy = wallettypes.Hash{}
			l.inputs[ki] = in
		}
	}
}

// isUnlocked reports whether the given unlock-time value has elapsed.
// Zero is always unlocked; values above maxBlockNum are interpreted as
// a UNIX timestamp, otherwise as a block height.
func isUnlocked(unlockTime, maxBlockNum uint64, currentHeight wallettypes.Height, now wallettypes.Timestamp) bool {
	if unlockTime == 0 {
		return true
	}
	if unlockTime > maxBlockNum {
		return uint64(now) >= unlockTime
	}
	return uint64(currentHeight) >= unlockTime
}

// GetBalance returns the (unlocked, locked) totals for this ledger at
// currentHeight. Spent inputs contribute to neither total.
func (l *Ledger) GetBalance(
	currency CurrencyParams,
	clock Clock,
	currentHeight wallettypes.Height,
) (unlocked, locked wallettypes.Amount) {
	maxBlockNum := currency.MaxBlockNumber()
	now := clock.Now()
	unlockWindow := currency.MinedMoneyUnlockWindow()

	for ki, in := range l.inputs {
		if in.SpendHeight != 0 {
			continue
		}

		mature := true
		if l.coinbaseKeyImages[ki] {
			mature = currentHeight >= in.BlockHeight+unlockWindow
		}

		timeUnlocked := isUnlocked(in.UnlockTime, maxBlockNum, currentHeight, now)

		if mature && timeUnlocked && !in.Locked {
			unlocked += in.Amount
		} else {
			locked += in.Amount
		}
	}

	return unlocked, locked
}
