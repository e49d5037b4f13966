// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cryptoutil implements key pair generation and key image
// derivation. The container depends only on the subwallets.KeyGenerator
// interface; this package is its one production implementation.
package cryptoutil

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"

	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// Crypto implements subwallets.KeyGenerator on top of the secp256k1
// curve. CryptoNote proper uses Ed25519; this module follows the
// teacher's EC stack (btcec/v2, decred's secp256k1) instead of pulling
// in a separate twisted-Edwards library, and represents points as
// x-only 32-byte coordinates, matching the fixed key-size types in
// wallettypes.
type Crypto struct{}

// SecretKeyToPublicKey derives the public key for a secret key.
func (Crypto) SecretKeyToPublicKey(sk wallettypes.SecretKey) wallettypes.PublicKey {
	priv := secp256k1.PrivKeyFromBytes(sk[:])
	return xOnly(priv.PubKey())
}

// GenerateKeys produces a fresh random key pair.
func (Crypto) GenerateKeys() (wallettypes.PublicKey, wallettypes.SecretKey) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		// crypto/rand is exhausted or broken; there is no safe way to
		// continue wallet key generation.
		panic("cryptoutil: failed to generate key pair: " + err.Error())
	}

	var sk wallettypes.SecretKey
	copy(sk[:], priv.Serialize())

	return xOnly(priv.PubKey()), sk
}

// DeriveKeyImage computes the key image for one output: a CryptoNote
// key image is hash_to_point(derivation, outputIndex, publicSpendKey)
// scalar-multiplied by the private spend key. We keep that shape on
// secp256k1: hash the derivation inputs down to a scalar, map it to a
// curve point via scalar base multiplication, then scalar-multiply that
// point by the private spend key.
func (Crypto) DeriveKeyImage(
	derivation wallettypes.KeyDerivation,
	outputIndex uint64,
	publicSpendKey wallettypes.PublicKey,
	privateSpendKey wallettypes.SecretKey,
) wallettypes.KeyImage {
	h := sha3.NewLegacyKeccak256()
	h.Write(derivation[:])

	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], outputIndex)
	h.Write(idx[:])
	h.Write(publicSpendKey[:])

	scalarBytes := h.Sum(nil)

	var hashScalar secp256k1.ModNScalar
	hashScalar.SetByteSlice(scalarBytes)

	var derivedPoint secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&hashScalar, &derivedPoint)
	derivedPoint.ToAffine()

	var spendScalar secp256k1.ModNScalar
	spendScalar.SetByteSlice(privateSpendKey[:])

	var imagePoint secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&spendScalar, &derivedPoint, &imagePoint)
	imagePoint.ToAffine()

	var ki wallettypes.KeyImage
	xBytes := imagePoint.X.Bytes()
	copy(ki[:], xBytes[:])

	return ki
}

func xOnly(pub *btcec.PublicKey) wallettypes.PublicKey {
	var out wallettypes.PublicKey
	x := pub.X().Bytes()
	// X() may return fewer than 32 bytes for small values; right-align.
	copy(out[32-len(x):], x)
	return out
}
