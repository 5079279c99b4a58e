// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"
)

// Arguments - parameters of every Ledger.* call, unused fields are omitted
type Arguments struct {
	Kind   string `json:"kind,omitempty"`
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Signer string `json:"signer,omitempty"`

	Server    string `json:"server,omitempty"`
	Nym       string `json:"nym,omitempty"`
	Account   string `json:"account,omitempty"`
	Asset     string `json:"asset,omitempty"`
	Owner     string `json:"owner,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Target    string `json:"target,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`

	Contract    string `json:"contract,omitempty"`
	XML         string `json:"xml,omitempty"`
	Data        string `json:"data,omitempty"`
	Text        string `json:"text,omitempty"`
	Message     string `json:"message,omitempty"`
	Memo        string `json:"memo,omitempty"`
	Note        string `json:"note,omitempty"`
	Reply       string `json:"reply,omitempty"`
	Attempt     string `json:"attempt,omitempty"`
	Ledger      string `json:"ledger,omitempty"`
	Transaction string `json:"transaction,omitempty"`
	Instrument  string `json:"instrument,omitempty"`
	Cheque      string `json:"cheque,omitempty"`
	Payment     string `json:"payment,omitempty"`
	Purse       string `json:"purse,omitempty"`
	Retained    string `json:"retained,omitempty"`
	Indices     string `json:"indices,omitempty"`

	Index     int32 `json:"index"`
	Count     int32 `json:"count"`
	Box       int32 `json:"box"`
	ItemType  int32 `json:"itemType"`
	KeyBits   int32 `json:"keyBits"`
	Amount    int64 `json:"amount"`
	ValidFrom int64 `json:"validFrom"`
	ValidTo   int64 `json:"validTo"`

	All               bool `json:"all,omitempty"`
	Force             bool `json:"force,omitempty"`
	Inbox             bool `json:"inbox,omitempty"`
	LineBreaks        bool `json:"lineBreaks,omitempty"`
	PasswordProtected bool `json:"passwordProtected,omitempty"`
	SaveCopy          bool `json:"saveCopy,omitempty"`
	Verify            bool `json:"verify,omitempty"`
}

// ExportReply - result of Ledger.ExportCash
type ExportReply struct {
	Exported string `json:"exported"`
	Retained string `json:"retained"`
}

// zero time is sent as zero, meaning no limit
func unixTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
