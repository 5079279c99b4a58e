// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - interface to the notarising ledger gateway
//
// All identifiers and encoded instruments are opaque strings.  Server
// replies are verified with VerifyMessageSuccess which returns a
// tri-state Status; only StatusSuccess counts as success.
package ledger
