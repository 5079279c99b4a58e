// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/otclient/ledger"
)

func (c *Client) Instrument(instrument string) ledger.Instrument {
	var result ledger.Instrument
	c.call("Ledger.Instrument", &Arguments{
		Instrument: instrument,
	}, &result)
	return result
}

func (c *Client) WriteCheque(server string, amount int64, validFrom time.Time, validTo time.Time, account string, nym string, memo string, recipient string) string {
	var result string
	c.call("Ledger.WriteCheque", &Arguments{
		Server:    server,
		Amount:    amount,
		ValidFrom: unixTime(validFrom),
		ValidTo:   unixTime(validTo),
		Account:   account,
		Nym:       nym,
		Memo:      memo,
		Recipient: recipient,
	}, &result)
	return result
}

func (c *Client) DiscardCheque(server string, nym string, account string, cheque string) bool {
	var result bool
	c.call("Ledger.DiscardCheque", &Arguments{
		Server:  server,
		Nym:     nym,
		Account: account,
		Cheque:  cheque,
	}, &result)
	return result
}

// Time - the ledger's clock, local time if the ledger cannot be reached
func (c *Client) Time() time.Time {
	var result time.Time
	if nil != c.call("Ledger.Time", &Arguments{}, &result) || result.IsZero() {
		return time.Now()
	}
	return result
}
