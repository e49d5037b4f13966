// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency implements the protocol-constants contract: the
// values and derived helpers the container needs to classify coinbase
// maturity, unlock-time mode, and fusion transaction sizing. None of it
// depends on network state; it is pure arithmetic over protocol-wide
// constants, the same role CryptoNote::Currency plays for the reference
// wallet.
package currency

import (
	"github.com/turtlecoin-contrib/subwallets/wallettypes"
)

// Params holds the protocol constants a container instance is
// configured with. A single network (mainnet, testnet, ...) is
// represented by one Params value.
type Params struct {
	// MaxBlockNum is the boundary above which an unlock_time value is
	// interpreted as a UNIX timestamp rather than a block height.
	MaxBlockNum uint64

	// MinedMoneyUnlockWindowBlocks is the number of blocks a coinbase
	// output must wait, beyond its inclusion height, before it matures.
	MinedMoneyUnlockWindowBlocks uint64

	// BlockTargetSeconds is the expected average time between blocks,
	// used to convert a height into an approximate timestamp.
	BlockTargetSeconds uint64

	// GenesisTimestamp anchors height-to-timestamp conversion.
	GenesisTimestamp uint64

	FusionTxMaxSizeBytes     uint64
	FusionTxMinRatio         uint64
	FusionTxMinInputCountVal int
}

// DefaultParams mirrors the constants shipped by the reference
// CryptoNote daemon configuration (CryptoNoteConfig.h): a 60-block
// unlock window for coinbase outputs, a two-minute block target,
// and the conventional fusion transaction thresholds.
var DefaultParams = Params{
	MaxBlockNum:                  500000000,
	MinedMoneyUnlockWindowBlocks: 60,
	BlockTargetSeconds:           120,
	GenesisTimestamp:             1527078920,
	FusionTxMaxSizeBytes:         32000,
	FusionTxMinRatio:             4,
	FusionTxMinInputCountVal:     12,
}

// MaxBlockNumber returns the unlock-time mode boundary.
func (p Params) MaxBlockNumber() uint64 {
	return p.MaxBlockNum
}

// MinedMoneyUnlockWindow returns the coinbase maturity window, in
// blocks, as a wallettypes.Height for direct addition to a block height.
func (p Params) MinedMoneyUnlockWindow() wallettypes.Height {
	return wallettypes.Height(p.MinedMoneyUnlockWindowBlocks)
}

// FusionTxMaxSize returns the maximum serialized size, in bytes, a
// fusion transaction may occupy.
func (p Params) FusionTxMaxSize() uint64 {
	return p.FusionTxMaxSizeBytes
}

// FusionTxMinInOutCountRatio returns the minimum ratio of inputs to
// outputs a fusion transaction must achieve to be accepted by the
// daemon.
func (p Params) FusionTxMinInOutCountRatio() uint64 {
	return p.FusionTxMinRatio
}

// FusionTxMinInputCount returns the minimum bucket size required for a
// bucket of same-magnitude inputs to be eligible for exclusive fusion
// selection.
func (p Params) FusionTxMinInputCount() int {
	return p.FusionTxMinInputCountVal
}

// ApproxMaxInputCount estimates how many inputs of the given mixin can
// be packed into a fusion transaction no larger than maxSize bytes,
// while keeping at least minRatio inputs per output. This follows the
// reference daemon's Currency::getApproximateMaximumInputCount: each
// input costs roughly a fixed key-image plus (mixin+1) ring-member
// signature components, each output costs a fixed key/amount pair, and
// the ratio constraint bounds the output count from the input count.
func (p Params) ApproxMaxInputCount(maxSize, minRatio, mixin uint64) uint64 {
	const (
		keyImageSize     = 32
		outputKeySize    = 32
		ringMemberSize   = 32 + 64 // public key + signature share
		amountVarintSize = 2
	)

	if minRatio == 0 {
		minRatio = 1
	}

	perInputCost := keyImageSize + amountVarintSize + ringMemberSize*(mixin+1)
	perOutputCost := uint64(outputKeySize + amountVarintSize)

	// maxSize >= n*perInputCost + (n/minRatio)*perOutputCost
	denom := perInputCost + perOutputCost/minRatio
	if denom == 0 {
		return 0
	}

	return maxSize / denom
}

// ScanHeightToTimestamp converts a block height into an approximate
// UNIX timestamp, anchored at the genesis block and extrapolated at the
// network's target block time. The reference daemon performs the
// equivalent lookup against its stored block index; lacking a live
// chain the container only ever needs this for comparison purposes, so
// a linear approximation is sufficient.
func (p Params) ScanHeightToTimestamp(height wallettypes.Height) wallettypes.Timestamp {
	if height == 0 {
		return 0
	}

	seconds := uint64(height) * p.BlockTargetSeconds
	return wallettypes.Timestamp(p.GenesisTimestamp + seconds)
}

// FusionBucket computes the base-10 magnitude bucket used to group
// candidate fusion inputs by denomination: floor(log10(amount)), counted
// in integer arithmetic so exact powers of ten are never rounded down.
// Amount zero cannot occur in practice for CryptoNote denominations, but
// log10(0) is undefined, so it is guarded to bucket 0.
func FusionBucket(amount wallettypes.Amount) int {
	bucket := 0
	for amount >= 10 {
		amount /= 10
		bucket++
	}
	return bucket
}
