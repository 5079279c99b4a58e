// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package subject - the four kinds of ledger subject
//
// Accounts, asset types, nyms and servers each live in their own
// identifier space.  A reference beginning with '^' is a literal
// identifier; anything else is a display name to be resolved.
package subject
