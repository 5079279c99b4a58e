// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package console

// ANSI colour codes
const (
	CoReset  = "\x1b[0m"
	CoBright = "\x1b[1m"
	CoDim    = "\x1b[2m"

	CoRed     = "\x1b[31m"
	CoGreen   = "\x1b[32m"
	CoYellow  = "\x1b[33m"
	CoBlue    = "\x1b[34m"
	CoMagenta = "\x1b[35m"
	CoCyan    = "\x1b[36m"

	CoLightGray   = "\x1b[90m"
	CoLightRed    = "\x1b[91m"
	CoLightGreen  = "\x1b[92m"
	CoLightYellow = "\x1b[93m"
	CoLightBlue   = "\x1b[94m"
)

func (c *Console) paint(colour string, text string) string {
	if !c.colour || "" == colour {
		return text
	}
	return colour + text + CoReset
}
