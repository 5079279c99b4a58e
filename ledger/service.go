// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/otclient/subject"
)

//go:generate mockgen -destination=mocks/service.go -package=mocks github.com/bitmark-inc/otclient/ledger Service

// Wallet - local wallet enumeration and contract storage
type Wallet interface {
	Open() bool
	LoadWallet() bool
	Close()

	Count(kind subject.Kind) int32
	IDAt(kind subject.Kind, index int32) string
	NameOf(kind subject.Kind, id string) string
	SetName(kind subject.Kind, id string, signer string, name string) bool
	CanRemove(kind subject.Kind, id string) bool
	Remove(kind subject.Kind, id string) bool

	AddContract(kind subject.Kind, contract string) bool
	Contract(kind subject.Kind, id string) string
	CreateContract(kind subject.Kind, nym string, xml string) string
	LoadAssetContract(asset string) string

	CreateNym(keyBits int32) string
	ExportNym(nym string) string
	ImportNym(data string) string
	NymStats(nym string) string
	IsNymRegistered(nym string, server string) bool
}

// Accounts - per account introspection
type Accounts interface {
	AccountNym(account string) string
	AccountServer(account string) string
	AccountAsset(account string) string
	AccountBalance(account string) int64
	AccountType(account string) string
	StatAccount(account string) string
	FormatAmount(asset string, amount int64) string
}

// Boxes - inbox, outbox, payment inbox and record box ledgers
type Boxes interface {
	LoadInbox(server string, nym string, account string) string
	LoadOutbox(server string, nym string, account string) string
	LoadPaymentInbox(server string, nym string) string
	LoadRecordBox(server string, nym string, account string, verify bool) string

	LedgerCount(server string, nym string, account string, ledger string) int32
	LedgerTransaction(server string, nym string, account string, ledger string, index int32) string
	LedgerTransactionID(server string, nym string, account string, ledger string, index int32) int64
	LedgerInstrument(server string, nym string, account string, ledger string, index int32) string

	Transaction(server string, nym string, account string, transaction string) Transaction
	TransactionVoucher(server string, nym string, account string, transaction string) string
	MessageLedger(reply string) string

	RecordPayment(server string, nym string, inbox bool, index int32, saveCopy bool) bool
	ClearRecord(server string, nym string, account string, index int32, all bool) bool
	ClearExpired(server string, nym string, index int32, all bool) bool
}

// Instruments - cheque writing and instrument introspection
type Instruments interface {
	Instrument(instrument string) Instrument
	WriteCheque(server string, amount int64, validFrom time.Time, validTo time.Time, account string, nym string, memo string, recipient string) string
	DiscardCheque(server string, nym string, account string, cheque string) bool
	Time() time.Time
}

// Payments - outgoing payment slots and nym mail
type Payments interface {
	OutpaymentCount(nym string) int32
	Outpayment(nym string, index int32) string
	OutpaymentRecipient(nym string, index int32) string
	OutpaymentServer(nym string, index int32) string
	VerifyOutpayment(nym string, index int32) bool
	RemoveOutpayment(nym string, index int32) bool

	MailCount(nym string, box MailBox) int32
	Mail(nym string, box MailBox, index int32) string
	MailCounterparty(nym string, box MailBox, index int32) string
	MailServer(nym string, box MailBox, index int32) string
	RemoveMail(nym string, box MailBox, index int32) bool
}

// Purses - local cash purses
type Purses interface {
	LoadPurse(server string, asset string, nym string) string
	Purse(server string, asset string, nym string, purse string) PurseContents
	PurseHasPassword(server string, purse string) bool
	CreatePurse(server string, asset string, owner string, signer string) string
	SavePurse(server string, asset string, nym string, purse string) bool
	ImportPurse(server string, asset string, nym string, purse string) bool
}

// Notary - messages sent to a notary server
type Notary interface {
	RetrieveAccount(server string, nym string, account string, force bool) bool
	RetrieveNym(server string, nym string, force bool) bool
	RetrieveContract(server string, nym string, contract string) string
	LoadOrRetrieveContract(server string, nym string, contract string) string
	LoadOrRetrieveMint(server string, nym string, asset string) string

	CheckNym(server string, nym string, target string) string
	RegisterNym(server string, nym string) string
	IssueAsset(server string, nym string, contract string) string
	CreateAccount(server string, nym string, asset string) string
	NewAccountID(reply string) string
	DeleteAccount(server string, nym string, account string) string

	DepositCheque(server string, nym string, account string, cheque string) string
	DepositCash(server string, nym string, account string, purse string) Status
	WithdrawCash(server string, nym string, account string, amount int64) string
	WithdrawVoucher(server string, nym string, account string, recipient string, memo string, amount int64) string
	InterpretReply(server string, nym string, account string, attempt string, reply string) Status

	SendPayment(server string, nym string, recipient string, payment string) string
	SendCash(server string, nym string, recipient string, purse string, retained string) string
	ExportCash(server string, nym string, asset string, recipient string, indices string, passwordProtected bool) (string, string)
	SendTransfer(server string, nym string, from string, to string, amount int64, note string) string
	SendMessage(server string, nym string, recipient string, message string) string

	AcceptInboxItems(account string, itemType int32, indices string) bool
	CancelOutgoingPayments(nym string, account string, indices string) bool
	DiscardIncomingPayments(server string, nym string, indices string) bool

	EnsureTransactionNumbers(count int32, server string, nym string) bool
	HarvestTransactionNumbers(reply string, nym string) bool

	MarketList(server string, nym string) string
	PingNotary(server string, nym string) int32
	VerifyMessageSuccess(reply string) Status
}

// Codec - text armouring and nym encryption
type Codec interface {
	Encode(text string, lineBreaks bool) string
	Decode(text string, lineBreaks bool) string
	Encrypt(recipient string, text string) string
	Decrypt(nym string, text string) string
}

// Service - everything the client requires of a ledger gateway
type Service interface {
	Wallet
	Accounts
	Boxes
	Instruments
	Payments
	Purses
	Notary
	Codec
}
