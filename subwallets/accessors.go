// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import "github.com/turtlecoin-contrib/subwallets/wallettypes"

// PublicSpendKeys returns every sub-wallet's public spend key, in the
// order they were created. This set always equals the key set of the
// internal sub-wallet map.
func (c *Container) PublicSpendKeys() []wallettypes.PublicKey {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]wallettypes.PublicKey, len(c.publicSpendKeys))
	copy(keys, c.publicSpendKeys)
	return keys
}

// SubWalletCount returns the number of sub-wallets in the container.
func (c *Container) SubWalletCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subWallets)
}

// HasSubWallet reports whether a sub-wallet with the given public spend
// key exists in the container.
func (c *Container) HasSubWallet(publicSpendKey wallettypes.PublicKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.subWallets[publicSpendKey]
	return ok
}

// Address returns the address of the sub-wallet with the given public
// spend key, or false if no such sub-wallet exists.
func (c *Container) Address(publicSpendKey wallettypes.PublicKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sw, ok := c.subWallets[publicSpendKey]
	if !ok {
		return "", false
	}
	return sw.Address(), true
}
