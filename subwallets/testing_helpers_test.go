// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import (
	"encoding/hex"
	"errors"

	"github.com/turtlecoin-contrib/subwallets/internal/currency"
	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// fakeKeyGen is a deterministic stand-in for cryptoutil.Crypto: public
// keys are just their secret key's bytes, so tests can construct keys
// by hand without touching a real curve. Generated keys carry a first
// byte of 0x81 and up, so they never collide with the small hand-picked
// keys the tests construct.
type fakeKeyGen struct {
	counter byte
}

func (f *fakeKeyGen) SecretKeyToPublicKey(sk wallettypes.SecretKey) wallettypes.PublicKey {
	return wallettypes.PublicKey(sk)
}

func (f *fakeKeyGen) GenerateKeys() (wallettypes.PublicKey, wallettypes.SecretKey) {
	f.counter++
	var sk wallettypes.SecretKey
	sk[0] = 0x80 + f.counter
	return wallettypes.PublicKey(sk), sk
}

func (f *fakeKeyGen) DeriveKeyImage(
	derivation wallettypes.KeyDerivation,
	outputIndex uint64,
	publicSpendKey wallettypes.PublicKey,
	privateSpendKey wallettypes.SecretKey,
) wallettypes.KeyImage {
	var ki wallettypes.KeyImage
	ki[0] = derivation[0]
	ki[1] = byte(outputIndex)
	ki[2] = byte(outputIndex >> 8)
	ki[3] = publicSpendKey[0]
	return ki
}

// fakeAddressCodec encodes an address as the concatenated hex of the
// spend and view public keys, avoiding a dependency on the real
// base58Check codec for container-level tests.
type fakeAddressCodec struct {
	keyGen *fakeKeyGen
}

func (f fakeAddressCodec) AddressToKeys(address string) (wallettypes.PublicKey, wallettypes.PublicKey, error) {
	var spend, view wallettypes.PublicKey
	if len(address) != 128 {
		return spend, view, errors.New("fakeAddressCodec: malformed address")
	}
	spendBytes, err := hex.DecodeString(address[:64])
	if err != nil {
		return spend, view, err
	}
	viewBytes, err := hex.DecodeString(address[64:])
	if err != nil {
		return spend, view, err
	}
	copy(spend[:], spendBytes)
	copy(view[:], viewBytes)
	return spend, view, nil
}

func (f fakeAddressCodec) PrivateKeysToAddress(privateSpendKey, privateViewKey wallettypes.SecretKey) string {
	return f.PublicKeysToAddress(f.keyGen.SecretKeyToPublicKey(privateSpendKey), f.keyGen.SecretKeyToPublicKey(privateViewKey))
}

func (f fakeAddressCodec) PublicKeysToAddress(publicSpendKey, publicViewKey wallettypes.PublicKey) string {
	return hex.EncodeToString(publicSpendKey[:]) + hex.EncodeToString(publicViewKey[:])
}

// fakeClock returns a fixed point in time, controllable by the test.
type fakeClock struct {
	now         wallettypes.Timestamp
	adjustedNow wallettypes.Timestamp
}

func (f fakeClock) Now() wallettypes.Timestamp                      { return f.now }
func (f fakeClock) CurrentAdjustedTimestamp() wallettypes.Timestamp { return f.adjustedNow }

func testDeps() (*fakeKeyGen, KeyGenerator, AddressCodec, CurrencyParams, Clock) {
	kg := &fakeKeyGen{}
	return kg, kg, fakeAddressCodec{keyGen: kg}, currency.DefaultParams, fakeClock{}
}

func testInput(amount wallettypes.Amount) wallettypes.TransactionInput {
	return wallettypes.TransactionInput{Amount: amount}
}
