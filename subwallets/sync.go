// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import "github.com/turtlecoin-contrib/subwallets/wallettypes"

// CompleteAndStoreTransactionInput finalizes a candidate UTXO
// discovered by the scanner and stores it in the owning sub-wallet's
// ledger. isCoinbase marks the input as a miner-reward output so its
// balance classification respects the coinbase maturity window.
func (c *Container) CompleteAndStoreTransactionInput(
	publicSpendKey wallettypes.PublicKey,
	derivation wallettypes.KeyDerivation,
	outputIndex uint64,
	input wallettypes.TransactionInput,
	isCoinbase bool,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sw, ok := c.subWallets[publicSpendKey]
	if !ok {
		return
	}

	privateSpendKey, _ := sw.PrivateSpendKey()

	sw.Ledger.CompleteAndStoreInput(
		c.keyGen, derivation, outputIndex, input,
		publicSpendKey, privateSpendKey, c.isViewWallet, isCoinbase,
	)
}

// AddUnconfirmedTransaction records a transaction the user just
// submitted, before the scanner has observed it on-chain.
func (c *Container) AddUnconfirmedTransaction(tx wallettypes.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.journal.AddUnconfirmed(tx)
}

// AddConfirmedTransaction records a transaction the scanner observed in
// a block, removing any matching locked entry first.
func (c *Container) AddConfirmedTransaction(tx wallettypes.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.journal.AddConfirmed(tx)
}

// MarkInputAsLocked marks the given key image, owned by publicKey, as
// locked by lockingTxHash. Fails with ErrIllegalViewWalletOperation on
// a view wallet.
func (c *Container) MarkInputAsLocked(
	ki wallettypes.KeyImage,
	publicKey wallettypes.PublicKey,
	lockingTxHash wallettypes.Hash,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotViewWallet("MarkInputAsLocked"); err != nil {
		return err
	}

	sw, ok := c.subWallets[publicKey]
	if !ok {
		log.Errorf("Requested to lock an input for unknown sub-wallet public key %v", publicKey)
		return newErr(ErrInvariantViolation, "unknown sub-wallet public key requested")
	}

	sw.Ledger.MarkInputAsLocked(ki, lockingTxHash)
	return nil
}

// MarkInputAsSpent marks the given key image, owned by publicKey, as
// spent at spendHeight. Fails with ErrIllegalViewWalletOperation on a
// view wallet, since view wallets never derive key images.
func (c *Container) MarkInputAsSpent(
	ki wallettypes.KeyImage,
	publicKey wallettypes.PublicKey,
	spendHeight wallettypes.Height,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotViewWallet("MarkInputAsSpent"); err != nil {
		return err
	}

	sw, ok := c.subWallets[publicKey]
	if !ok {
		log.Errorf("Requested to mark an input spent for unknown sub-wallet public key %v", publicKey)
		return newErr(ErrInvariantViolation, "unknown sub-wallet public key requested")
	}

	sw.Ledger.MarkInputAsSpent(ki, spendHeight)
	return nil
}

// RemoveForkedTransactions rolls back every confirmed transaction and
// UTXO at or after forkHeight, reconciling state after a chain
// reorganization.
func (c *Container) RemoveForkedTransactions(forkHeight wallettypes.Height) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log.Warnf("Rolling back transactions and UTXOs at or after height %d "+
		"due to a detected reorganization", forkHeight)

	c.journal.RemoveForked(forkHeight)

	for _, sw := range c.subWallets {
		sw.Ledger.RemoveForkedInputs(forkHeight)
	}
}

// RemoveCancelledTransactions drops the given locked transactions and
// unlocks the inputs they had locked. Fails with
// ErrIllegalViewWalletOperation on a view wallet, which can have no
// locked transactions to cancel.
func (c *Container) RemoveCancelledTransactions(hashes map[wallettypes.Hash]bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotViewWallet("RemoveCancelledTransactions"); err != nil {
		return err
	}

	log.Debugf("Cancelling %d locked transactions", len(hashes))

	c.journal.RemoveCancelled(hashes)

	for _, sw := range c.subWallets {
		sw.Ledger.RemoveCancelledTransactions(hashes)
	}

	return nil
}

// Reset clears every locked transaction, drops confirmed transactions
// and UTXOs at or after scanHeight, and clears every input's locked
// flag — as if the wallet were about to rescan from scanHeight.
func (c *Container) Reset(scanHeight wallettypes.Height) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log.Infof("Resetting wallet state to rescan from height %d", scanHeight)

	c.journal.Reset(scanHeight)

	for _, sw := range c.subWallets {
		sw.Ledger.Reset(scanHeight)
	}
}

// GetLockedTransactionHashes returns the hash of every locked
// (submitted but unconfirmed) transaction. Fails with
// ErrIllegalViewWalletOperation on a view wallet.
func (c *Container) GetLockedTransactionHashes() (map[wallettypes.Hash]bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotViewWallet("GetLockedTransactionHashes"); err != nil {
		return nil, err
	}

	return c.journal.LockedHashes(), nil
}

// Transactions returns every confirmed transaction.
func (c *Container) Transactions() []wallettypes.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.journal.AllConfirmed()
}

// UnconfirmedTransactions returns every locked (submitted but
// unconfirmed, outgoing) transaction.
func (c *Container) UnconfirmedTransactions() []wallettypes.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.journal.AllUnconfirmed()
}
