// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"github.com/bitmark-inc/otclient/subject"
)

// Refresh - refresh every account and every nym, both must succeed
func (e *Engine) Refresh(dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	acc, ok := e.defaultOf(subject.Account)
	if !ok {
		return false
	}
	nym, ok := e.defaultOf(subject.Nym)
	if !ok {
		return false
	}

	accounts := e.AccountRefresh("^"+acc, true, false)
	nyms := e.NymRefresh("^"+nym, true, false)

	switch {
	case accounts && nyms:
		return e.succeed("refreshed accounts and nyms")
	case accounts:
		e.log.Error("refresh: nyms failed")
	case nyms:
		e.log.Error("refresh: accounts failed")
	default:
		e.log.Error("refresh: accounts and nyms failed")
	}
	return false
}
