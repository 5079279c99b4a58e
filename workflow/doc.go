// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workflow - the operations offered to the command line
//
// every operation takes dryrun as its last argument and returns true on
// success; a dryrun makes no ledger call and succeeds
//
// operations open the session on first use, resolve their subjects
// and then run a fixed sequence of ledger calls; only a verified status
// of success continues the sequence
//
// operations over "all" items report a tally: every item succeeding
// or some items succeeding both return true, with different wording
package workflow
