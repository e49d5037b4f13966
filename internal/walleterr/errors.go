// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package walleterr provides the tagged error type shared by every
// package that makes up the sub-wallet container, following the shape
// of wtxmgr.TxStoreError in btcsuite/btcwallet: an ErrorCode plus a
// human-readable description and an optional wrapped error.
package walleterr

import "fmt"

// ErrorCode identifies a kind of error raised by the container or one
// of its components.
type ErrorCode int

const (
	// ErrIllegalViewWalletOperation is returned when a spend-only
	// operation is called on a view wallet.
	ErrIllegalViewWalletOperation ErrorCode = iota

	// ErrIllegalNonViewWalletOperation is returned when
	// ImportViewSubWallet is called on a full wallet.
	ErrIllegalNonViewWalletOperation

	// ErrSubWalletAlreadyExists is returned when importing a sub-wallet
	// whose public spend key already exists in the container.
	ErrSubWalletAlreadyExists

	// ErrNotEnoughFunds is returned when standard input selection
	// cannot meet its target amount.
	ErrNotEnoughFunds

	// ErrNoPrimaryAddress is returned when no sub-wallet is marked
	// primary; this indicates container corruption, since invariant 1
	// requires exactly one primary sub-wallet at all times.
	ErrNoPrimaryAddress

	// ErrInvariantViolation marks a programmer error: an internal
	// inconsistency such as a key image or public spend key that was
	// expected to exist but doesn't. It is never expected to surface in
	// normal operation.
	ErrInvariantViolation
)

var errorCodeStrings = map[ErrorCode]string{
	ErrIllegalViewWalletOperation:    "ErrIllegalViewWalletOperation",
	ErrIllegalNonViewWalletOperation: "ErrIllegalNonViewWalletOperation",
	ErrSubWalletAlreadyExists:        "ErrSubWalletAlreadyExists",
	ErrNotEnoughFunds:                "ErrNotEnoughFunds",
	ErrNoPrimaryAddress:              "ErrNoPrimaryAddress",
	ErrInvariantViolation:            "ErrInvariantViolation",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// WalletError is the single error type returned by fallible operations
// across the container and its components.
type WalletError struct {
	Code        ErrorCode
	Description string
	Err         error
}

// Error satisfies the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap allows errors.Is/errors.As to see through to the wrapped
// error, if any.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// New constructs a WalletError with no wrapped cause.
func New(code ErrorCode, description string) *WalletError {
	return &WalletError{Code: code, Description: description}
}

// Wrap constructs a WalletError that wraps an underlying cause.
func Wrap(code ErrorCode, description string, err error) *WalletError {
	return &WalletError{Code: code, Description: description, Err: err}
}

// Is reports whether err is a *WalletError with the given code. Only err
// itself is checked; an error wrapping a *WalletError is not unwrapped.
func Is(err error, code ErrorCode) bool {
	we, ok := err.(*WalletError)
	if !ok {
		return false
	}
	return we.Code == code
}
