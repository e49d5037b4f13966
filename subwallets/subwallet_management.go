// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import (
	"github.com/turtlecoin-contrib/subwallets/internal/subwallet"
	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// AddSubWallet generates a fresh spend key pair and adds it as a new,
// non-primary sub-wallet. Fails on view wallets, which cannot generate
// private spend keys.
func (c *Container) AddSubWallet() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotViewWallet("AddSubWallet"); err != nil {
		return err
	}

	publicSpendKey, privateSpendKey := c.keyGen.GenerateKeys()

	address := c.addrCodec.PrivateKeysToAddress(privateSpendKey, c.privateViewKey)

	sw := subwallet.New(publicSpendKey, privateSpendKey, address, 0, c.clock.CurrentAdjustedTimestamp(), false)

	c.subWallets[publicSpendKey] = sw
	c.publicSpendKeys = append(c.publicSpendKeys, publicSpendKey)

	return nil
}

// ImportSubWallet adds a sub-wallet from a known private spend key.
// Fails with ErrIllegalViewWalletOperation on view wallets, or
// ErrSubWalletAlreadyExists if the derived public spend key collides
// with an existing sub-wallet.
func (c *Container) ImportSubWallet(
	privateSpendKey wallettypes.SecretKey,
	scanHeight wallettypes.Height,
	newWallet bool,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotViewWallet("ImportSubWallet"); err != nil {
		return err
	}

	publicSpendKey := c.keyGen.SecretKeyToPublicKey(privateSpendKey)

	if _, exists := c.subWallets[publicSpendKey]; exists {
		log.Warnf("Refusing to import sub-wallet %v: already exists", publicSpendKey)
		return newErr(ErrSubWalletAlreadyExists, "sub-wallet already exists")
	}

	var timestamp wallettypes.Timestamp
	if newWallet {
		timestamp = c.clock.CurrentAdjustedTimestamp()
	}

	address := c.addrCodec.PrivateKeysToAddress(privateSpendKey, c.privateViewKey)

	sw := subwallet.New(publicSpendKey, privateSpendKey, address, scanHeight, timestamp, false)

	c.subWallets[publicSpendKey] = sw
	c.publicSpendKeys = append(c.publicSpendKeys, publicSpendKey)

	log.Infof("Imported sub-wallet %v at address %v", publicSpendKey, address)

	return nil
}

// ImportViewSubWallet adds a view-only sub-wallet from a known public
// spend key. Fails with ErrIllegalNonViewWalletOperation on full
// wallets, or ErrSubWalletAlreadyExists on collision.
func (c *Container) ImportViewSubWallet(
	publicSpendKey wallettypes.PublicKey,
	scanHeight wallettypes.Height,
	newWallet bool,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isViewWallet {
		return newErr(ErrIllegalNonViewWalletOperation,
			"ImportViewSubWallet: wallet is not a view wallet")
	}

	if _, exists := c.subWallets[publicSpendKey]; exists {
		log.Warnf("Refusing to import view sub-wallet %v: already exists", publicSpendKey)
		return newErr(ErrSubWalletAlreadyExists, "sub-wallet already exists")
	}

	var timestamp wallettypes.Timestamp
	if newWallet {
		timestamp = c.clock.CurrentAdjustedTimestamp()
	}

	publicViewKey := c.keyGen.SecretKeyToPublicKey(c.privateViewKey)
	address := c.addrCodec.PublicKeysToAddress(publicSpendKey, publicViewKey)

	sw := subwallet.NewViewOnly(publicSpendKey, address, scanHeight, timestamp, false)

	c.subWallets[publicSpendKey] = sw
	c.publicSpendKeys = append(c.publicSpendKeys, publicSpendKey)

	log.Infof("Imported view sub-wallet %v at address %v", publicSpendKey, address)

	return nil
}

// GetMinInitialSyncStart returns (height, timestamp) describing the
// earliest point any sub-wallet needs scanning from. At most one of the
// two return values is nonzero.
//
// A sub-wallet with both fields still at zero has no scan-start
// information at all and must be rescanned from the beginning of the
// chain, which forces the whole container to (0, 0) regardless of what
// any other sub-wallet reports. Otherwise, the height-mode and
// timestamp-mode sub-wallets are minimized independently — zero in one
// field means that sub-wallet simply isn't using that mode, not that
// zero is its earliest point — and the two results are reconciled via
// ScanHeightToTimestamp so the container reports whichever start point
// is chronologically earliest.
func (c *Container) GetMinInitialSyncStart() (wallettypes.Height, wallettypes.Timestamp) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var minHeight wallettypes.Height
	var minTimestamp wallettypes.Timestamp
	haveHeight := false
	haveTimestamp := false

	for _, sw := range c.subWallets {
		h := sw.SyncStartHeight()
		t := sw.SyncStartTimestamp()

		if h == 0 && t == 0 {
			return 0, 0
		}

		if h != 0 && (!haveHeight || h < minHeight) {
			minHeight = h
			haveHeight = true
		}
		if t != 0 && (!haveTimestamp || t < minTimestamp) {
			minTimestamp = t
			haveTimestamp = true
		}
	}

	switch {
	case !haveHeight:
		return 0, minTimestamp
	case !haveTimestamp:
		return minHeight, 0
	}

	if c.currency.ScanHeightToTimestamp(minHeight) < minTimestamp {
		return minHeight, 0
	}
	return 0, minTimestamp
}

// GetPrimaryAddress returns the address of the unique primary
// sub-wallet. Fails with ErrNoPrimaryAddress if, due to container
// corruption, no sub-wallet is marked primary.
func (c *Container) GetPrimaryAddress() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sw, err := c.findPrimary()
	if err != nil {
		return "", err
	}
	return sw.Address(), nil
}

// GetPrimaryPrivateSpendKey returns the private spend key of the
// primary sub-wallet. Fails with ErrNoPrimaryAddress on corruption, or
// ErrIllegalViewWalletOperation on a view wallet.
func (c *Container) GetPrimaryPrivateSpendKey() (wallettypes.SecretKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero wallettypes.SecretKey

	if err := c.requireNotViewWallet("GetPrimaryPrivateSpendKey"); err != nil {
		return zero, err
	}

	sw, err := c.findPrimary()
	if err != nil {
		return zero, err
	}

	sk, _ := sw.PrivateSpendKey()
	return sk, nil
}

// PrivateSpendKeys returns the private spend key of every sub-wallet.
// Fails with ErrIllegalViewWalletOperation on a view wallet.
func (c *Container) PrivateSpendKeys() ([]wallettypes.SecretKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotViewWallet("PrivateSpendKeys"); err != nil {
		return nil, err
	}

	keys := make([]wallettypes.SecretKey, 0, len(c.subWallets))
	for _, sw := range c.subWallets {
		sk, _ := sw.PrivateSpendKey()
		keys = append(keys, sk)
	}
	return keys, nil
}

func (c *Container) findPrimary() (*subwallet.SubWallet, error) {
	for _, sw := range c.subWallets {
		if sw.IsPrimaryAddress() {
			return sw, nil
		}
	}
	return nil, newErr(ErrNoPrimaryAddress, "container has no primary address")
}

// GetKeyImageOwner returns the public spend key of the sub-wallet that
// owns the given key image, or (false, zero) if no sub-wallet owns it.
// View wallets never own any key image and always report false.
func (c *Container) GetKeyImageOwner(ki wallettypes.KeyImage) (bool, wallettypes.PublicKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero wallettypes.PublicKey

	if c.isViewWallet {
		return false, zero
	}

	for pub, sw := range c.subWallets {
		if sw.HasKeyImage(ki) {
			return true, pub
		}
	}
	return false, zero
}
