// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// Status - tri-state result of a server message
type Status int32

// only StatusSuccess is treated as success
const (
	StatusError   Status = -1
	StatusFailed  Status = 0
	StatusSuccess Status = 1
)

// OK - true only for success
func (s Status) OK() bool {
	return StatusSuccess == s
}

func (s Status) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusFailed:
		return "failed"
	case StatusSuccess:
		return "success"
	default:
		return "*unknown*"
	}
}
