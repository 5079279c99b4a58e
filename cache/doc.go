// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache maintains the identity name cache
//
//  ***** Data Structure *****
//
//  Identities (one per subject kind)
//  |___ key: identifier      value: entry{name, index}      expires: never
//
//  ***** Purpose *****
//
//  Identities:
//    maps an identifier to its display name; the enumeration index is
//    retained so that a name lookup returns the first match in the
//    order reported by the ledger
//
//  ***** Invalidation *****
//
//    entries never expire; before a full pass the item count is
//    compared with the live count from the ledger, counting empty
//    identifiers skipped by the last reload, and any difference
//    flushes and reloads the whole cache
//
//  Not safe for concurrent use.
package cache
