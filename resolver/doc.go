// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package resolver - map names and literal identifiers to ledger identifiers
//
// a reference starting with '^' is a literal identifier and is returned
// without any ledger call; other references are names, resolved through
// the nym cache (nyms only) and then a scan of the live ledger list
package resolver
