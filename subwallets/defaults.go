// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import (
	"github.com/turtlecoin-contrib/subwallets/internal/addressutil"
	"github.com/turtlecoin-contrib/subwallets/internal/cryptoutil"
	"github.com/turtlecoin-contrib/subwallets/internal/walletclock"
)

// DefaultDependencies wires the production implementations of every
// external collaborator the container needs (key generation, address
// codec, clock; DefaultCurrencyParams supplies the protocol constants).
// Callers
// that need a custom network configuration or want to mock a
// collaborator for testing should construct a Container directly
// instead.
func DefaultDependencies() (KeyGenerator, AddressCodec, CurrencyParams, Clock) {
	return cryptoutil.Crypto{}, addressutil.Codec{}, DefaultCurrencyParams(), walletclock.Clock{}
}
