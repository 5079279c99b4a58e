// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package session - one time connection and wallet load
//
//   Uninitialised --Init--> Initialising --> Ready
//                                       \--> Errored (sticky)
package session
