// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import (
	"github.com/turtlecoin-contrib/subwallets/internal/currency"
	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// gatherSpendableInputs collects every unspent, unlocked input owned by
// the given sub-wallets (or every sub-wallet, if takeFromAll is set),
// paired with the owning keys a transaction builder will need. Caller
// must hold c.mu and have already verified this is not a view wallet.
func (c *Container) gatherSpendableInputs(
	takeFromAll bool,
	subWalletKeys []wallettypes.PublicKey,
) ([]wallettypes.TxInputAndOwner, error) {
	if takeFromAll {
		subWalletKeys = c.publicSpendKeys
	}

	var available []wallettypes.TxInputAndOwner

	for _, pub := range subWalletKeys {
		sw, ok := c.subWallets[pub]
		if !ok {
			log.Errorf("Requested inputs for unknown sub-wallet public key %v", pub)
			return nil, newErr(ErrInvariantViolation, "unknown sub-wallet public key requested")
		}

		inputs, err := sw.Ledger.GetInputs(false)
		if err != nil {
			return nil, err
		}

		privateSpendKey, _ := sw.PrivateSpendKey()

		for _, in := range inputs {
			available = append(available, wallettypes.TxInputAndOwner{
				Input:           in,
				PublicSpendKey:  pub,
				PrivateSpendKey: privateSpendKey,
			})
		}
	}

	return available, nil
}

// GetTransactionInputsForAmount selects enough spendable inputs from
// the given sub-wallets (or every sub-wallet, if takeFromAll is set) to
// cover amount, shuffled to avoid revealing wallet structure through
// deterministic ordering. Fails with ErrIllegalViewWalletOperation on a
// view wallet, or ErrNotEnoughFunds if the accumulator exhausts before
// reaching amount.
func (c *Container) GetTransactionInputsForAmount(
	amount wallettypes.Amount,
	takeFromAll bool,
	subWalletKeys []wallettypes.PublicKey,
) ([]wallettypes.TxInputAndOwner, wallettypes.Amount, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotViewWallet("GetTransactionInputsForAmount"); err != nil {
		return nil, 0, err
	}

	if amount == 0 {
		return nil, 0, nil
	}

	available, err := c.gatherSpendableInputs(takeFromAll, subWalletKeys)
	if err != nil {
		return nil, 0, err
	}

	shuffle(available)

	var found wallettypes.Amount
	selected := make([]wallettypes.TxInputAndOwner, 0, len(available))

	for _, candidate := range available {
		selected = append(selected, candidate)
		found += candidate.Input.Amount

		if found >= amount {
			return selected, found, nil
		}
	}

	log.Debugf("Not enough funds: needed %d, only %d available across %d inputs",
		amount, found, len(available))
	return nil, 0, newErr(ErrNotEnoughFunds, "not enough funds found")
}

// GetFusionTransactionInputs selects inputs suitable for a fusion
// (consolidation) transaction. Unlike GetTransactionInputsForAmount,
// this never fails on insufficient
// funds — it returns whatever it could gather, and it is the caller's
// responsibility to decide whether the result is worth submitting.
// Still fails with ErrIllegalViewWalletOperation on a view wallet.
func (c *Container) GetFusionTransactionInputs(
	takeFromAll bool,
	subWalletKeys []wallettypes.PublicKey,
	mixin uint64,
) ([]wallettypes.TxInputAndOwner, uint64, wallettypes.Amount, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotViewWallet("GetFusionTransactionInputs"); err != nil {
		return nil, 0, 0, err
	}

	available, err := c.gatherSpendableInputs(takeFromAll, subWalletKeys)
	if err != nil {
		return nil, 0, 0, err
	}

	maxInputs := c.currency.ApproxMaxInputCount(
		c.currency.FusionTxMaxSize(),
		c.currency.FusionTxMinInOutCountRatio(),
		mixin,
	)

	shuffle(available)

	buckets := make(map[int][]wallettypes.TxInputAndOwner)
	for _, candidate := range available {
		bucket := currency.FusionBucket(candidate.Input.Amount)
		buckets[bucket] = append(buckets[bucket], candidate)
	}

	minInputCount := c.currency.FusionTxMinInputCount()

	var fullBuckets [][]wallettypes.TxInputAndOwner
	for _, bucket := range buckets {
		if len(bucket) >= minInputCount {
			fullBuckets = append(fullBuckets, bucket)
		}
	}

	var bucketsToTakeFrom [][]wallettypes.TxInputAndOwner
	if len(fullBuckets) > 0 {
		shuffle(fullBuckets)
		bucketsToTakeFrom = fullBuckets[:1]
	} else {
		for _, bucket := range buckets {
			bucketsToTakeFrom = append(bucketsToTakeFrom, bucket)
		}
	}

	var selected []wallettypes.TxInputAndOwner
	var foundMoney wallettypes.Amount

	for _, bucket := range bucketsToTakeFrom {
		for _, candidate := range bucket {
			selected = append(selected, candidate)
			foundMoney += candidate.Input.Amount

			if uint64(len(selected)) >= maxInputs {
				return selected, maxInputs, foundMoney, nil
			}
		}
	}

	return selected, maxInputs, foundMoney, nil
}

// GetBalance sums the unlocked and locked balance across the given
// sub-wallets (or every sub-wallet, if takeFromAll is set).
func (c *Container) GetBalance(
	subWalletKeys []wallettypes.PublicKey,
	takeFromAll bool,
	currentHeight wallettypes.Height,
) (unlocked, locked wallettypes.Amount, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if takeFromAll {
		subWalletKeys = c.publicSpendKeys
	}

	for _, pub := range subWalletKeys {
		sw, ok := c.subWallets[pub]
		if !ok {
			log.Errorf("Requested balance for unknown sub-wallet public key %v", pub)
			return 0, 0, newErr(ErrInvariantViolation, "unknown sub-wallet public key requested")
		}

		u, l := sw.Ledger.GetBalance(c.currency, c.clock, currentHeight)
		unlocked += u
		locked += l
	}

	return unlocked, locked, nil
}
