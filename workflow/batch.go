// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"github.com/bitmark-inc/otclient/fault"
)

// run an item function for every index, highest index first so that
// removing an item never moves one not yet processed
func (e *Engine) reverse(what string, count int32, item func(index int32) bool) bool {
	succeeded := int32(0)
	for i := count - 1; i >= 0; i -= 1 {
		if item(i) {
			succeeded += 1
		} else {
			e.log.Warnf("%s: index: %d failed", what, i)
		}
	}
	return e.tally(what, count, succeeded)
}

// report the outcome of a batch, partial success is still success
func (e *Engine) tally(what string, total int32, succeeded int32) bool {
	failed := total - succeeded
	switch {
	case succeeded == total:
		e.log.Infof("%s: all %d items succeeded", what, total)
		e.console.Successf("%s: all %d items succeeded", what, total)
		return true
	case 0 == succeeded:
		e.log.Errorf("%s: none of %d items succeeded", what, total)
		e.console.Failuref("%s: none of %d items succeeded", what, total)
		return false
	default:
		e.log.Warnf("%s: %s: succeeded: %d  failed: %d", what, fault.ErrPartialBatch, succeeded, failed)
		e.console.Partialf("%s: only %d of %d items succeeded, %d failed", what, succeeded, total, failed)
		return true
	}
}
