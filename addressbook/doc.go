// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addressbook - per-nym contact lists
//
//  ***** Data Structure *****
//
//  key:   owner nym ID | 0x00 | contact nym ID
//  value: contact name
//
//  each owner is an independent namespace, so the same contact may
//  carry a different name in each owner's book
package addressbook
