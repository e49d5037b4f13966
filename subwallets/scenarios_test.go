// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/turtlecoin-contrib/subwallets/internal/currency"
	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// A view wallet must never be allowed to select inputs for a spend.
func TestScenarioViewWalletSendRefused(t *testing.T) {
	full, _ := newTestContainer(t)
	addr, err := full.GetPrimaryAddress()
	require.NoError(t, err)

	kg, keyGen, addrCodec, cur, clk := testDeps()
	_ = kg
	view, err := NewViewOnly(wallettypes.SecretKey{2}, addr, 0, false, keyGen, addrCodec, cur, clk)
	require.NoError(t, err)

	_, _, err = view.GetTransactionInputsForAmount(1, true, nil)
	we, ok := err.(*WalletError)
	require.True(t, ok)
	require.Equal(t, ErrIllegalViewWalletOperation, we.Code)
}

// Importing the same private spend key twice must fail the second time
// without disturbing the first import.
func TestScenarioDuplicateImportRejected(t *testing.T) {
	c, _ := newTestContainer(t)

	priv := wallettypes.SecretKey{77}
	require.NoError(t, c.ImportSubWallet(priv, 0, false))
	require.Equal(t, 2, c.SubWalletCount())

	err := c.ImportSubWallet(priv, 0, false)
	we, ok := err.(*WalletError)
	require.True(t, ok)
	require.Equal(t, ErrSubWalletAlreadyExists, we.Code)
	require.Equal(t, 2, c.SubWalletCount())
}

// With denominations [1,2,5,7,20,50,80,80,100,600,700] and a minimum
// fusion bucket size of 4, buckets {1,2,5,7} and {20,50,80,80} both
// qualify (bucket {100,600,700} has only 3 members); exactly one full
// bucket is taken, in its entirety.
func TestScenarioFusionBucketingTakesOneFullBucket(t *testing.T) {
	kg := &fakeKeyGen{}
	addrCodec := fakeAddressCodec{keyGen: kg}
	clk := fakeClock{}
	cur := currency.Params{
		MaxBlockNum:                 currency.DefaultParams.MaxBlockNum,
		MinedMoneyUnlockWindowBlocks: currency.DefaultParams.MinedMoneyUnlockWindowBlocks,
		BlockTargetSeconds:          currency.DefaultParams.BlockTargetSeconds,
		GenesisTimestamp:            currency.DefaultParams.GenesisTimestamp,
		FusionTxMaxSizeBytes:        1_000_000,
		FusionTxMinRatio:            1,
		FusionTxMinInputCountVal:    4,
	}

	privSpend := wallettypes.SecretKey{1}
	privView := wallettypes.SecretKey{2}
	addr := addrCodec.PrivateKeysToAddress(privSpend, privView)
	c := New(privSpend, privView, addr, 0, false, kg, addrCodec, cur, clk)

	primaryKey := c.PublicSpendKeys()[0]
	amounts := []wallettypes.Amount{1, 2, 5, 7, 20, 50, 80, 80, 100, 600, 700}
	for i, amount := range amounts {
		c.CompleteAndStoreTransactionInput(primaryKey, wallettypes.KeyDerivation{byte(i + 1)}, uint64(i), testInput(amount), false)
	}

	selected, _, foundMoney, err := c.GetFusionTransactionInputs(true, nil, 0)
	require.NoError(t, err)
	require.Len(t, selected, 4)

	smallBucketSum := wallettypes.Amount(1 + 2 + 5 + 7)
	midBucketSum := wallettypes.Amount(20 + 50 + 80 + 80)
	require.True(t, foundMoney == smallBucketSum || foundMoney == midBucketSum,
		"expected a full single-bucket sum, got %d", foundMoney)
}

// A fork at height 20 must roll back every confirmed transaction and
// input at or after that height while leaving earlier state untouched.
func TestScenarioForkRollback(t *testing.T) {
	c, _ := newTestContainer(t)
	primaryKey := c.PublicSpendKeys()[0]

	heights := []wallettypes.Height{10, 20, 30}
	for i, h := range heights {
		c.CompleteAndStoreTransactionInput(primaryKey, wallettypes.KeyDerivation{byte(i + 1)},
			uint64(i), wallettypes.TransactionInput{Amount: 100, BlockHeight: h}, false)
		c.AddConfirmedTransaction(wallettypes.Transaction{
			Hash:        wallettypes.Hash{byte(i + 1)},
			BlockHeight: h,
			Transfers:   map[wallettypes.PublicKey]int64{primaryKey: 100},
		})
	}

	c.RemoveForkedTransactions(20)

	txs := c.Transactions()
	require.Len(t, txs, 1)
	require.Equal(t, wallettypes.Height(10), txs[0].BlockHeight)

	unlocked, _, err := c.GetBalance(nil, true, 100)
	require.NoError(t, err)
	require.Equal(t, wallettypes.Amount(100), unlocked)
}

// A sub-wallet with no recorded scan-start information at all (height
// and timestamp both zero) forces the whole container back to (0, 0),
// even when every other sub-wallet has a concrete, later start point.
func TestScenarioMinSyncStartWithOneZeroValue(t *testing.T) {
	c, _ := newTestContainer(t)
	require.NoError(t, c.ImportSubWallet(wallettypes.SecretKey{5}, 1000, false))

	height, timestamp := c.GetMinInitialSyncStart()
	require.Equal(t, wallettypes.Height(0), height)
	require.Equal(t, wallettypes.Timestamp(0), timestamp)
}

// Two sub-wallets that each report a concrete, nonzero start point (one
// height-based, one timestamp-based) are reconciled via
// ScanHeightToTimestamp, and the earlier of the two wins.
func TestScenarioMinSyncStartWithTwoNonzeroValues(t *testing.T) {
	kg := &fakeKeyGen{}
	addrCodec := fakeAddressCodec{keyGen: kg}
	cur := currency.DefaultParams

	privSpend := wallettypes.SecretKey{1}
	privView := wallettypes.SecretKey{2}
	addr := addrCodec.PrivateKeysToAddress(privSpend, privView)

	// The primary sub-wallet starts scanning from height 1000; a second,
	// imported later with newWallet set, starts from a timestamp far in
	// the future — height 1000 converts to an earlier timestamp, so
	// height mode should win.
	farFuture := wallettypes.Timestamp(cur.GenesisTimestamp + 999_999_999)
	clk := fakeClock{adjustedNow: farFuture}
	c2 := New(privSpend, privView, addr, 1000, false, kg, addrCodec, cur, clk)
	require.NoError(t, c2.ImportSubWallet(wallettypes.SecretKey{6}, 0, true))

	height, timestamp := c2.GetMinInitialSyncStart()
	require.Equal(t, wallettypes.Height(1000), height)
	require.Equal(t, wallettypes.Timestamp(0), timestamp)
}

// Invariant: exactly one sub-wallet is ever marked primary, and adding
// more sub-wallets never changes which one it is.
func TestInvariantExactlyOnePrimary(t *testing.T) {
	c, _ := newTestContainer(t)
	require.NoError(t, c.AddSubWallet())
	require.NoError(t, c.ImportSubWallet(wallettypes.SecretKey{9}, 0, false))

	addr, err := c.GetPrimaryAddress()
	require.NoError(t, err)
	require.NotEmpty(t, addr)

	require.NoError(t, c.AddSubWallet())
	addr2, err := c.GetPrimaryAddress()
	require.NoError(t, err)
	require.Equal(t, addr, addr2)
}

// Invariant: the exported public spend key set always equals the set of
// keys the container actually holds sub-wallets for.
func TestInvariantPublicSpendKeySetMatchesSubWallets(t *testing.T) {
	c, _ := newTestContainer(t)
	require.NoError(t, c.AddSubWallet())
	require.NoError(t, c.ImportSubWallet(wallettypes.SecretKey{11}, 0, false))

	keys := c.PublicSpendKeys()
	require.Equal(t, c.SubWalletCount(), len(keys))
	for _, k := range keys {
		require.True(t, c.HasSubWallet(k))
	}
}

// Invariant: a key image belongs to at most one sub-wallet, and looking
// it up reports exactly that owner.
func TestInvariantAtMostOneOwnerPerKeyImage(t *testing.T) {
	c, kg := newTestContainer(t)
	require.NoError(t, c.AddSubWallet())

	keys := c.PublicSpendKeys()
	derivation := wallettypes.KeyDerivation{3}
	ki := kg.DeriveKeyImage(derivation, 0, keys[0], wallettypes.SecretKey(keys[0]))

	c.CompleteAndStoreTransactionInput(keys[0], derivation, 0, testInput(10), false)

	found, owner := c.GetKeyImageOwner(ki)
	require.True(t, found)
	require.Equal(t, keys[0], owner)
	require.NotEqual(t, keys[1], owner)
}

// Law: marking an input spent twice at the same height is a no-op the
// second time.
func TestLawIdempotentSpend(t *testing.T) {
	c, _ := newTestContainer(t)
	primaryKey := c.PublicSpendKeys()[0]
	derivation := wallettypes.KeyDerivation{4}
	c.CompleteAndStoreTransactionInput(primaryKey, derivation, 0, testInput(50), false)

	found, ki := c.GetKeyImageOwner(mustDeriveKeyImage(c, derivation, 0, primaryKey))
	require.True(t, found)
	_ = ki

	err1 := c.MarkInputAsSpent(mustDeriveKeyImage(c, derivation, 0, primaryKey), primaryKey, 5)
	err2 := c.MarkInputAsSpent(mustDeriveKeyImage(c, derivation, 0, primaryKey), primaryKey, 5)
	require.NoError(t, err1)
	require.NoError(t, err2)

	unlockedBefore, _, err := c.GetBalance(nil, true, 5)
	require.NoError(t, err)
	require.Equal(t, wallettypes.Amount(0), unlockedBefore)
}

// Law: forking to height H and resetting to height H leave the ledger
// in the same observable state (both drop everything at or after H).
func TestLawForkResetEquivalence(t *testing.T) {
	fork, _ := newTestContainer(t)
	reset, _ := newTestContainer(t)

	for _, c := range []*Container{fork, reset} {
		primaryKey := c.PublicSpendKeys()[0]
		c.CompleteAndStoreTransactionInput(primaryKey, wallettypes.KeyDerivation{1}, 0,
			wallettypes.TransactionInput{Amount: 10, BlockHeight: 5}, false)
		c.CompleteAndStoreTransactionInput(primaryKey, wallettypes.KeyDerivation{2}, 1,
			wallettypes.TransactionInput{Amount: 20, BlockHeight: 15}, false)
	}

	fork.RemoveForkedTransactions(10)
	reset.Reset(10)

	forkUnlocked, forkLocked, err := fork.GetBalance(nil, true, 100)
	require.NoError(t, err)
	resetUnlocked, resetLocked, err := reset.GetBalance(nil, true, 100)
	require.NoError(t, err)

	require.Equal(t, forkUnlocked, resetUnlocked)
	require.Equal(t, forkLocked, resetLocked)
}

// Law: resetting twice to the same height is equivalent to resetting
// once.
func TestLawResetRoundTrip(t *testing.T) {
	c, _ := newTestContainer(t)
	primaryKey := c.PublicSpendKeys()[0]
	c.CompleteAndStoreTransactionInput(primaryKey, wallettypes.KeyDerivation{1}, 0,
		wallettypes.TransactionInput{Amount: 10, BlockHeight: 5}, false)

	c.Reset(10)
	afterFirst, _, err := c.GetBalance(nil, true, 100)
	require.NoError(t, err)

	c.Reset(10)
	afterSecond, _, err := c.GetBalance(nil, true, 100)
	require.NoError(t, err)

	require.Equal(t, afterFirst, afterSecond)
}

// Law: submitting a transaction and then observing it confirmed leaves
// exactly one journal entry, not two.
func TestLawConfirmationCollapse(t *testing.T) {
	c, _ := newTestContainer(t)
	hash := wallettypes.Hash{1}

	c.AddUnconfirmedTransaction(wallettypes.Transaction{Hash: hash, Fee: 5})
	locked, err := c.GetLockedTransactionHashes()
	require.NoError(t, err)
	require.True(t, locked[hash])

	c.AddConfirmedTransaction(wallettypes.Transaction{Hash: hash, Fee: 5, BlockHeight: 1})

	locked, err = c.GetLockedTransactionHashes()
	require.NoError(t, err)
	require.False(t, locked[hash])
	require.Len(t, c.Transactions(), 1)
}

// Boundary: unlock_time exactly at MaxBlockNumber is still treated as a
// height (unlocked once the chain reaches it); MaxBlockNumber+1 flips to
// timestamp interpretation.
func TestBoundaryUnlockTimeModeSwitch(t *testing.T) {
	c, _ := newTestContainer(t)
	primaryKey := c.PublicSpendKeys()[0]
	maxBlock := currency.DefaultParams.MaxBlockNum

	c.CompleteAndStoreTransactionInput(primaryKey, wallettypes.KeyDerivation{1}, 0,
		wallettypes.TransactionInput{Amount: 10, UnlockTime: maxBlock}, false)
	c.CompleteAndStoreTransactionInput(primaryKey, wallettypes.KeyDerivation{2}, 1,
		wallettypes.TransactionInput{Amount: 20, UnlockTime: maxBlock + 1}, false)

	unlocked, locked, err := c.GetBalance(nil, true, wallettypes.Height(maxBlock))
	require.NoError(t, err)
	require.Equal(t, wallettypes.Amount(10), unlocked)
	require.Equal(t, wallettypes.Amount(20), locked)
}

func mustDeriveKeyImage(c *Container, derivation wallettypes.KeyDerivation, outputIndex uint64, publicSpendKey wallettypes.PublicKey) wallettypes.KeyImage {
	return c.keyGen.DeriveKeyImage(derivation, outputIndex, publicSpendKey, wallettypes.SecretKey(publicSpendKey))
}
