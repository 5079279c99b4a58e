// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

func (c *Client) Encode(text string, lineBreaks bool) string {
	var result string
	c.call("Ledger.Encode", &Arguments{
		Text:       text,
		LineBreaks: lineBreaks,
	}, &result)
	return result
}

func (c *Client) Decode(text string, lineBreaks bool) string {
	var result string
	c.call("Ledger.Decode", &Arguments{
		Text:       text,
		LineBreaks: lineBreaks,
	}, &result)
	return result
}

func (c *Client) Encrypt(recipient string, text string) string {
	var result string
	c.call("Ledger.Encrypt", &Arguments{
		Recipient: recipient,
		Text:      text,
	}, &result)
	return result
}

func (c *Client) Decrypt(nym string, text string) string {
	var result string
	c.call("Ledger.Decrypt", &Arguments{
		Nym:  nym,
		Text: text,
	}, &result)
	return result
}
