// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package buildercontract defines the value types the (external,
// out-of-scope) transaction builder needs in order to consume the
// inputs a Container selects. None of these types carry behavior, and
// none of this module's own code constructs or consumes them —
// Container hands the builder wallettypes.TxInputAndOwner values, not
// these. This package exists purely to document the boundary between
// this module and the transaction builder/signer: the shape the
// builder is expected to assemble ObscuredInput/TransactionDestination
// values into once it receives selected inputs, in case a caller
// wants a shared vocabulary for that handoff.
package buildercontract

import "github.com/turtlecoin-contrib/subwallets/wallettypes"

// GlobalIndexKey pairs a global output index with its one-time public
// key, one entry in a ring signature's decoy set.
type GlobalIndexKey struct {
	Index uint64
	Key   wallettypes.PublicKey
}

// ObscuredInput is one real input plus the mixin decoys the builder
// will use to construct its ring signature.
type ObscuredInput struct {
	Outputs                    []GlobalIndexKey
	RealOutputIndex            uint64
	RealTransactionPublicKey   wallettypes.PublicKey
	RealOutputTransactionIndex uint64
	Amount                     wallettypes.Amount
	OwnerPublicSpendKey        wallettypes.PublicKey
	OwnerPrivateSpendKey       wallettypes.SecretKey
}

// TransactionDestination is one output the builder will create: an
// amount sent to a recipient's public spend/view key pair.
type TransactionDestination struct {
	ReceiverPublicSpendKey wallettypes.PublicKey
	ReceiverPublicViewKey  wallettypes.PublicKey
	Amount                 wallettypes.Amount
}
