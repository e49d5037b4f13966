// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallettypes defines the fixed-size key types and wallet-side
// ledger records shared by every package in this module. It mirrors the
// role of the CryptoNote reference wallet's WalletTypes header: plain
// data, no behavior tied to a particular storage or network layer.
package wallettypes

import "encoding/hex"

// keySize is the width, in bytes, of every opaque key/hash type below.
// CryptoNote-family keys are Ed25519 points or scalars and hashes are
// 256-bit, so all five types share it.
const keySize = 32

// PublicKey is a spend or view public key.
type PublicKey [keySize]byte

// SecretKey is a spend or view private key.
type SecretKey [keySize]byte

// KeyImage uniquely identifies the spend opportunity of a one-time
// output. Two UTXOs with the same key image are the same spendable coin.
type KeyImage [keySize]byte

// KeyDerivation is the shared secret derived from a transaction public
// key and a recipient's private view key, used to compute per-output
// one-time keys and key images.
type KeyDerivation [keySize]byte

// Hash identifies a block or transaction.
type Hash [keySize]byte

// Amount is an atomic-unit quantity of currency.
type Amount uint64

// Height is a block index.
type Height uint64

// Timestamp is a UNIX time in seconds.
type Timestamp uint64

func (k PublicKey) String() string     { return hex.EncodeToString(k[:]) }
func (k SecretKey) String() string     { return hex.EncodeToString(k[:]) }
func (k KeyImage) String() string      { return hex.EncodeToString(k[:]) }
func (k KeyDerivation) String() string { return hex.EncodeToString(k[:]) }
func (h Hash) String() string          { return hex.EncodeToString(h[:]) }

// IsZero reports whether the key image is the zero value, i.e. no key
// image has been computed for the owning output (view wallet case).
func (k KeyImage) IsZero() bool {
	return k == KeyImage{}
}
