// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import (
	"crypto/rand"
	"math/big"
)

// shuffle performs an in-place Fisher-Yates shuffle using a fresh
// crypto/rand-seeded draw for every swap. Input selection must be
// seeded from a true entropy source on every call, not a reusable
// deterministic seed — unlike btcwallet/wallet/rand.go's pattern of
// seeding math/rand's global source once at process start, which would
// leak deterministic ordering information across calls and undermine
// the privacy input shuffling is meant to provide.
func shuffle[T any](items []T) {
	for i := len(items) - 1; i > 0; i-- {
		jBig, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			// crypto/rand is the only source of randomness we trust for
			// input-selection privacy; if it fails there is no safe
			// fallback.
			panic("subwallets: failed to read entropy for shuffle: " + err.Error())
		}
		j := int(jBig.Int64())
		items[i], items[j] = items[j], items[i]
	}
}
