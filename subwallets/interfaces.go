// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import "github.com/turtlecoin-contrib/subwallets/wallettypes"

// KeyGenerator is the cryptography contract the container relies on. It
// is implemented by internal/cryptoutil; the container never imports a
// cryptography library directly.
type KeyGenerator interface {
	SecretKeyToPublicKey(sk wallettypes.SecretKey) wallettypes.PublicKey
	GenerateKeys() (wallettypes.PublicKey, wallettypes.SecretKey)
	DeriveKeyImage(
		derivation wallettypes.KeyDerivation,
		outputIndex uint64,
		publicSpendKey wallettypes.PublicKey,
		privateSpendKey wallettypes.SecretKey,
	) wallettypes.KeyImage
}

// AddressCodec is the address encode/decode contract the container
// relies on. Implemented by internal/addressutil.
type AddressCodec interface {
	AddressToKeys(address string) (wallettypes.PublicKey, wallettypes.PublicKey, error)
	PrivateKeysToAddress(privateSpendKey, privateViewKey wallettypes.SecretKey) string
	PublicKeysToAddress(publicSpendKey, publicViewKey wallettypes.PublicKey) string
}

// CurrencyParams is the protocol-constants contract the container
// relies on. Implemented by internal/currency.
type CurrencyParams interface {
	MaxBlockNumber() uint64
	MinedMoneyUnlockWindow() wallettypes.Height
	ApproxMaxInputCount(maxSize, minRatio, mixin uint64) uint64
	ScanHeightToTimestamp(height wallettypes.Height) wallettypes.Timestamp
	FusionTxMaxSize() uint64
	FusionTxMinInOutCountRatio() uint64
	FusionTxMinInputCount() int
}

// Clock is the wall-clock contract the container relies on. Implemented
// by internal/walletclock.
type Clock interface {
	Now() wallettypes.Timestamp
	CurrentAdjustedTimestamp() wallettypes.Timestamp
}
