// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - JSON RPC client for a ledger gateway
//
// every ledger.Service operation is sent as "Ledger.<Operation>" with a
// single Arguments value; a transport failure is logged and the caller
// sees an empty reply
package rpccalls
