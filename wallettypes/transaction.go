// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallettypes

// KeyOutput is one output of a transaction as seen on the wire: an
// amount and the one-time public key it was sent to.
type KeyOutput struct {
	Key    PublicKey
	Amount Amount
}

// RawTx is a block-scanner's view of one transaction, tagged by whether
// it is a coinbase (miner reward) transaction. The original reference
// wallet modeled this with struct inheritance (RawTransaction embedding
// RawCoinbaseTransaction); a coinbase transaction has no inputs and no
// payment ID, so those fields are simply absent when Coinbase is true.
type RawTx struct {
	Coinbase bool

	KeyOutputs           []KeyOutput
	Hash                 Hash
	TransactionPublicKey PublicKey
	UnlockTime           uint64

	// Only meaningful when Coinbase is false.
	PaymentID string
	KeyImages []KeyImage
}

// WalletBlockInfo is the minimal per-block payload the scanner feeds to
// the container: the coinbase transaction, the regular transactions,
// and enough block metadata to classify and, later, roll back inputs.
type WalletBlockInfo struct {
	CoinbaseTransaction RawTx
	Transactions        []RawTx
	BlockHeight         Height
	BlockHash           Hash
	BlockTimestamp      Timestamp
}

// TransactionInput is one UTXO observed on-chain that belongs to a
// sub-wallet. Two TransactionInput values are considered the same coin
// iff their KeyImage is equal; see Equal.
type TransactionInput struct {
	// KeyImage is the zero value until a spend key is available to
	// derive it (view wallets never populate this field).
	KeyImage KeyImage

	Amount Amount

	// BlockHeight is the inclusion height, used for fork rollback.
	BlockHeight Height

	TransactionPublicKey PublicKey
	TransactionIndex     uint64
	GlobalOutputIndex    uint64

	// Key is the derived one-time output public key.
	Key PublicKey

	// SpendHeight is zero if the input is unspent, else the block the
	// spend was confirmed in.
	SpendHeight Height

	// UnlockTime is dual-purpose: above currency.MaxBlockNumber it is a
	// UNIX timestamp, otherwise a block height.
	UnlockTime uint64

	ParentTransactionHash Hash

	// Locked is set when a spend using this input has been submitted to
	// the network, and cleared on confirmation or cancellation.
	Locked bool

	// LockedBy records the hash of the transaction that most recently
	// set Locked, so a later cancellation of that specific transaction
	// can unlock only the inputs it locked. See DESIGN.md.
	LockedBy Hash
}

// Equal reports whether two inputs represent the same spend opportunity.
func (t TransactionInput) Equal(other TransactionInput) bool {
	return t.KeyImage == other.KeyImage
}

// TxInputAndOwner pairs a UTXO with the sub-wallet keys needed to sign
// it, for consumption by the (external) transaction builder.
type TxInputAndOwner struct {
	Input           TransactionInput
	PublicSpendKey  PublicKey
	PrivateSpendKey SecretKey
}

// Transaction is one journal entry: a confirmed or locked transaction
// and its net effect on each sub-wallet the container owns.
type Transaction struct {
	Hash        Hash
	BlockHeight Height
	Timestamp   Timestamp
	UnlockTime  uint64
	PaymentID   string
	Fee         Amount
	IsCoinbase  bool

	// Transfers maps a sub-wallet's public spend key to its signed
	// amount delta for this transaction: positive is incoming, negative
	// is outgoing. One hash may touch many sub-wallets.
	Transfers map[PublicKey]int64
}

// IsFusion reports whether this is a fusion (zero-fee, non-coinbase)
// transaction. This isn't a conclusive fusion check on its own — the
// daemon enforces the real requirements — but any non-coinbase,
// zero-fee transaction reaching the wallet is one in practice.
func (t Transaction) IsFusion() bool {
	return t.Fee == 0 && !t.IsCoinbase
}

// TotalAmount sums every transfer in this transaction.
func (t Transaction) TotalAmount() int64 {
	var sum int64
	for _, amount := range t.Transfers {
		sum += amount
	}
	return sum
}
