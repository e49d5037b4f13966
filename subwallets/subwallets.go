// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package subwallets implements the Container: the orchestration layer
// that owns a keyed collection of sub-wallet records, the transaction
// journal, the shared private view key, and the mutex that makes every
// externally visible operation concurrency-safe.
package subwallets

import (
	"fmt"
	"sync"

	"github.com/turtlecoin-contrib/subwallets/internal/currency"
	"github.com/turtlecoin-contrib/subwallets/internal/journal"
	"github.com/turtlecoin-contrib/subwallets/internal/subwallet"
	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// Container owns every sub-wallet in a wallet, the shared view key, and
// the confirmed/locked transaction journal. All exported methods are
// safe for concurrent use — a single mutex serializes every operation
// that reads or writes internal state.
type Container struct {
	mu sync.Mutex

	subWallets      map[wallettypes.PublicKey]*subwallet.SubWallet
	publicSpendKeys []wallettypes.PublicKey

	journal *journal.Journal

	privateViewKey wallettypes.SecretKey
	isViewWallet   bool

	keyGen    KeyGenerator
	addrCodec AddressCodec
	currency  CurrencyParams
	clock     Clock
}

// New constructs a full (spend-capable) container around a single
// primary sub-wallet, derived from privateSpendKey.
// scanStartHeight paces the initial blockchain scan; if newWallet is
// true, the primary sub-wallet's scan-start timestamp is set to the
// current adjusted time instead of being left at zero.
func New(
	privateSpendKey, privateViewKey wallettypes.SecretKey,
	address string,
	scanStartHeight wallettypes.Height,
	newWallet bool,
	keyGen KeyGenerator,
	addrCodec AddressCodec,
	currencyParams CurrencyParams,
	clock Clock,
) *Container {
	publicSpendKey := keyGen.SecretKeyToPublicKey(privateSpendKey)

	var timestamp wallettypes.Timestamp
	if newWallet {
		timestamp = clock.CurrentAdjustedTimestamp()
	}

	primary := subwallet.New(publicSpendKey, privateSpendKey, address, scanStartHeight, timestamp, true)

	c := &Container{
		subWallets:      map[wallettypes.PublicKey]*subwallet.SubWallet{publicSpendKey: primary},
		publicSpendKeys: []wallettypes.PublicKey{publicSpendKey},
		journal:         journal.New(),
		privateViewKey:  privateViewKey,
		isViewWallet:    false,
		keyGen:          keyGen,
		addrCodec:       addrCodec,
		currency:        currencyParams,
		clock:           clock,
	}

	return c
}

// NewViewOnly constructs a view-only container: it can receive and
// report funds, but can never derive key images or spend.
func NewViewOnly(
	privateViewKey wallettypes.SecretKey,
	address string,
	scanStartHeight wallettypes.Height,
	newWallet bool,
	keyGen KeyGenerator,
	addrCodec AddressCodec,
	currencyParams CurrencyParams,
	clock Clock,
) (*Container, error) {
	publicSpendKey, _, err := addrCodec.AddressToKeys(address)
	if err != nil {
		return nil, fmt.Errorf("subwallets: decoding address: %w", err)
	}

	var timestamp wallettypes.Timestamp
	if newWallet {
		timestamp = clock.CurrentAdjustedTimestamp()
	}

	primary := subwallet.NewViewOnly(publicSpendKey, address, scanStartHeight, timestamp, true)

	return &Container{
		subWallets:      map[wallettypes.PublicKey]*subwallet.SubWallet{publicSpendKey: primary},
		publicSpendKeys: []wallettypes.PublicKey{publicSpendKey},
		journal:         journal.New(),
		privateViewKey:  privateViewKey,
		isViewWallet:    true,
		keyGen:          keyGen,
		addrCodec:       addrCodec,
		currency:        currencyParams,
		clock:           clock,
	}, nil
}

// DefaultCurrencyParams returns the standard protocol constants, for
// callers that don't need a custom network configuration.
func DefaultCurrencyParams() CurrencyParams {
	return currency.DefaultParams
}

// Clone returns a deep copy of the container, cloning every interior
// collection (invariant: the clone shares no mutable state with the
// original).
func (c *Container) Clone() *Container {
	c.mu.Lock()
	defer c.mu.Unlock()

	clonedSubWallets := make(map[wallettypes.PublicKey]*subwallet.SubWallet, len(c.subWallets))
	for k, v := range c.subWallets {
		clonedSubWallets[k] = v.Clone()
	}

	clonedKeys := make([]wallettypes.PublicKey, len(c.publicSpendKeys))
	copy(clonedKeys, c.publicSpendKeys)

	return &Container{
		subWallets:      clonedSubWallets,
		publicSpendKeys: clonedKeys,
		journal:         c.journal.Clone(),
		privateViewKey:  c.privateViewKey,
		isViewWallet:    c.isViewWallet,
		keyGen:          c.keyGen,
		addrCodec:       c.addrCodec,
		currency:        c.currency,
		clock:           c.clock,
	}
}

// IsViewWallet reports whether this container is view-only.
func (c *Container) IsViewWallet() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isViewWallet
}

// PrivateViewKey returns the view key shared by every sub-wallet.
func (c *Container) PrivateViewKey() wallettypes.SecretKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.privateViewKey
}

func (c *Container) requireNotViewWallet(operation string) error {
	if c.isViewWallet {
		return newErr(ErrIllegalViewWalletOperation,
			fmt.Sprintf("%s: wallet is a view wallet", operation))
	}
	return nil
}
