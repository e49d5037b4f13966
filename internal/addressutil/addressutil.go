// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addressutil implements the address encode/decode contract,
// plus mnemonic seed backup/restore for the wallet's seed phrase flow.
package addressutil

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/tyler-smith/go-bip39"

	"github.com/turtlecoin-contrib/subwallets/internal/cryptoutil"
	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// addressVersion is the base58Check version byte prefixed to every
// encoded address. It has no protocol significance beyond
// distinguishing this wallet family's addresses from other base58Check
// payloads.
const addressVersion = 0x3a

// ErrMalformedAddress is returned when decoding a string that isn't a
// validly check-encoded address of the expected length.
var ErrMalformedAddress = errors.New("addressutil: malformed address")

// Codec implements subwallets.AddressCodec.
type Codec struct {
	crypto cryptoutil.Crypto
}

// AddressToKeys decodes an address into its public spend and public
// view keys.
func (c Codec) AddressToKeys(address string) (wallettypes.PublicKey, wallettypes.PublicKey, error) {
	var zero wallettypes.PublicKey

	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return zero, zero, ErrMalformedAddress
	}

	if version != addressVersion || len(payload) != 64 {
		return zero, zero, ErrMalformedAddress
	}

	var spend, view wallettypes.PublicKey
	copy(spend[:], payload[:32])
	copy(view[:], payload[32:])

	return spend, view, nil
}

// PrivateKeysToAddress derives the public spend/view keys from the
// given private keys and encodes the resulting address.
func (c Codec) PrivateKeysToAddress(privateSpendKey, privateViewKey wallettypes.SecretKey) string {
	publicSpendKey := c.crypto.SecretKeyToPublicKey(privateSpendKey)
	publicViewKey := c.crypto.SecretKeyToPublicKey(privateViewKey)
	return c.PublicKeysToAddress(publicSpendKey, publicViewKey)
}

// PublicKeysToAddress encodes a public spend/view key pair as an
// address string.
func (c Codec) PublicKeysToAddress(publicSpendKey, publicViewKey wallettypes.PublicKey) string {
	payload := make([]byte, 0, 64)
	payload = append(payload, publicSpendKey[:]...)
	payload = append(payload, publicViewKey[:]...)
	return base58.CheckEncode(payload, addressVersion)
}

// GenerateMnemonic derives a BIP-39 mnemonic seed phrase from a private
// spend key, for a wallet's backup/restore flow.
func GenerateMnemonic(privateSpendKey wallettypes.SecretKey) (string, error) {
	return bip39.NewMnemonic(privateSpendKey[:])
}

// MnemonicToPrivateSpendKey recovers the private spend key encoded in a
// BIP-39 mnemonic seed phrase.
func MnemonicToPrivateSpendKey(mnemonic string) (wallettypes.SecretKey, error) {
	var sk wallettypes.SecretKey

	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return sk, err
	}

	if len(entropy) != len(sk) {
		return sk, errors.New("addressutil: mnemonic does not encode a 32-byte key")
	}

	copy(sk[:], entropy)
	return sk, nil
}
