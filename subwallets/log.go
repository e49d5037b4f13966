// Copyright (c) 2026 The subwallets developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subwallets

import (
	"github.com/btcsuite/btclog"

	"github.com/turtlecoin-contrib/subwallets/internal/journal"
	"github.com/turtlecoin-contrib/subwallets/internal/ledger"
	"github.com/turtlecoin-contrib/subwallets/internal/subwallet"
)

// log is a logger that is initialized with no output filters. This
// means the package will not perform any logging by default until the
// caller requests it.
var log btclog.Logger

func init() {
	DisableLog()
}

// DisableLog disables all library log output. Logging output is
// disabled by default until UseLogger is called.
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger uses a specified Logger to output package logging info.
// It propagates to every internal component package,
// the same way wallet.UseLogger wires waddrmgr/wtxmgr in
// btcsuite-btcwallet.
func UseLogger(logger btclog.Logger) {
	log = logger

	ledger.UseLogger(logger)
	subwallet.UseLogger(logger)
	journal.UseLogger(logger)
}
