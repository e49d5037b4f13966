// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import "github.com/turtlecoin-contrib/subwallets/internal/walleterr"

// ErrorCode identifies a kind of error raised by the container.
type ErrorCode = walleterr.ErrorCode

// WalletError is the error type returned by every fallible operation on
// a Container.
type WalletError = walleterr.WalletError

// The error kinds a caller may need to branch on. Compare against
// (*WalletError).Code, or use errors.As to recover a *WalletError from
// a wrapped error.
const (
	ErrIllegalViewWalletOperation    = walleterr.ErrIllegalViewWalletOperation
	ErrIllegalNonViewWalletOperation = walleterr.ErrIllegalNonViewWalletOperation
	ErrSubWalletAlreadyExists        = walleterr.ErrSubWalletAlreadyExists
	ErrNotEnoughFunds                = walleterr.ErrNotEnoughFunds
	ErrNoPrimaryAddress              = walleterr.ErrNoPrimaryAddress
	ErrInvariantViolation            = walleterr.ErrInvariantViolation
)

func newErr(code ErrorCode, description string) *WalletError {
	return walleterr.New(code, description)
}
