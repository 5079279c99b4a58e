// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"
)

// instrument type tags
const (
	Cheque  = "CHEQUE"
	Voucher = "VOUCHER"
	Invoice = "INVOICE"
	Purse   = "PURSE"
)

// account types
const (
	SimpleAccount = "simple"
	IssuerAccount = "issuer"
)

// MailBox - selects the incoming or outgoing mail of a nym
type MailBox int

// mail boxes
const (
	Inbox  MailBox = iota
	Outbox MailBox = iota
)

// Instrument - decoded view of a payment instrument
type Instrument struct {
	Type              string    `json:"type"`
	Amount            int64     `json:"amount"`
	TransactionNumber int64     `json:"transactionNumber"`
	ValidFrom         time.Time `json:"validFrom"`
	ValidTo           time.Time `json:"validTo"` // zero => does not expire
	Asset             string    `json:"asset"`
	Notary            string    `json:"notary"`
	SenderNym         string    `json:"senderNym"`
	SenderAccount     string    `json:"senderAccount"`
	RecipientNym      string    `json:"recipientNym"`
	RecipientAccount  string    `json:"recipientAccount"`
	Memo              string    `json:"memo"`
}

// Expired - true if a validity end is set and has passed
func (i Instrument) Expired(now time.Time) bool {
	return !i.ValidTo.IsZero() && now.After(i.ValidTo)
}

// NotYetValid - true if the validity start is still in the future
func (i Instrument) NotYetValid(now time.Time) bool {
	return now.Before(i.ValidFrom)
}

// Transaction - decoded view of a box transaction
type Transaction struct {
	Type             string `json:"type"`
	Amount           int64  `json:"amount"`
	Reference        int64  `json:"reference"`
	SenderNym        string `json:"senderNym"`
	SenderAccount    string `json:"senderAccount"`
	RecipientNym     string `json:"recipientNym"`
	RecipientAccount string `json:"recipientAccount"`
	Success          bool   `json:"success"`
	Canceled         bool   `json:"canceled"`
}

// Token - a single cash token inside a purse
type Token struct {
	Denomination int64     `json:"denomination"`
	Series       int32     `json:"series"`
	ValidFrom    time.Time `json:"validFrom"`
	ValidTo      time.Time `json:"validTo"`
}

// PurseContents - decoded view of a cash purse
type PurseContents struct {
	Total  int64   `json:"total"`
	Tokens []Token `json:"tokens"`
}
