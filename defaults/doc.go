// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package defaults - the default subject of each kind
//
// the map always holds one entry per subject kind, an empty identifier
// means no default; every Set writes the whole map back to the persister
package defaults
