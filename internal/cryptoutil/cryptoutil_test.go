// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptoutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

func TestGenerateKeysProducesConsistentPublicKey(t *testing.T) {
	c := Crypto{}

	pub, priv := c.GenerateKeys()
	require.NotEqual(t, wallettypes.PublicKey{}, pub)
	require.NotEqual(t, wallettypes.SecretKey{}, priv)

	require.Equal(t, pub, c.SecretKeyToPublicKey(priv))
}

func TestGenerateKeysAreNotReused(t *testing.T) {
	c := Crypto{}
	_, priv1 := c.GenerateKeys()
	_, priv2 := c.GenerateKeys()
	require.NotEqual(t, priv1, priv2)
}

func TestDeriveKeyImageIsDeterministic(t *testing.T) {
	c := Crypto{}
	_, spendKey := c.GenerateKeys()
	spendPub := c.SecretKeyToPublicKey(spendKey)

	derivation := wallettypes.KeyDerivation{1, 2, 3}

	ki1 := c.DeriveKeyImage(derivation, 0, spendPub, spendKey)
	ki2 := c.DeriveKeyImage(derivation, 0, spendPub, spendKey)

	require.Equal(t, ki1, ki2)
	require.False(t, ki1.IsZero())
}

func TestDeriveKeyImageVariesByOutputIndex(t *testing.T) {
	c := Crypto{}
	_, spendKey := c.GenerateKeys()
	spendPub := c.SecretKeyToPublicKey(spendKey)
	derivation := wallettypes.KeyDerivation{9}

	ki0 := c.DeriveKeyImage(derivation, 0, spendPub, spendKey)
	ki1 := c.DeriveKeyImage(derivation, 1, spendPub, spendKey)

	require.NotEqual(t, ki0, ki1)
}
