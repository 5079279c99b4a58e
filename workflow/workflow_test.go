// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow_test

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/otclient/console"
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/fixtures"
	"github.com/bitmark-inc/otclient/ledger"
	"github.com/bitmark-inc/otclient/ledger/mocks"
	"github.com/bitmark-inc/otclient/session"
	"github.com/bitmark-inc/otclient/subject"
	"github.com/bitmark-inc/otclient/workflow"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type memory struct {
	items map[subject.Kind]string
	saved map[subject.Kind]string
}

func (m *memory) Load() (map[subject.Kind]string, error) {
	if nil == m.items {
		return nil, fault.ErrNotFoundConfigFile
	}
	return m.items, nil
}

func (m *memory) Save(items map[subject.Kind]string) error {
	m.saved = items
	return nil
}

type setup struct {
	ledger    *mocks.MockService
	persister *memory
	out       *bytes.Buffer
	engine    *workflow.Engine
}

func newSetup(ctl *gomock.Controller, composed string) *setup {
	m := mocks.NewMockService(ctl)
	p := &memory{
		items: map[subject.Kind]string{
			subject.Account: "ACC",
			subject.Asset:   "A1",
			subject.Nym:     "N1",
			subject.Server:  "S1",
		},
	}
	out := &bytes.Buffer{}
	e := workflow.New(workflow.Options{
		Ledger:    m,
		Persister: p,
		Console:   console.New(out, false),
		Input:     console.NewReader(strings.NewReader(composed), out),
	}, logger.New(fixtures.LogCategory))

	return &setup{
		ledger:    m,
		persister: p,
		out:       out,
		engine:    e,
	}
}

func (s *setup) expectSession() {
	s.ledger.EXPECT().Open().Return(true).Times(1)
	s.ledger.EXPECT().LoadWallet().Return(true).Times(1)
}

// amounts are shown as plain integers
func (s *setup) expectFormat() {
	s.ledger.EXPECT().FormatAmount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(asset string, amount int64) string {
			return strconv.FormatInt(amount, 10)
		}).AnyTimes()
}

// an empty wallet as far as enumeration is concerned
func (s *setup) expectNoNyms() {
	s.ledger.EXPECT().Count(subject.Nym).Return(int32(0)).AnyTimes()
}

func (s *setup) expectAccount(id string, nym string, server string, asset string) {
	s.ledger.EXPECT().AccountNym(id).Return(nym).AnyTimes()
	s.ledger.EXPECT().AccountServer(id).Return(server).AnyTimes()
	s.ledger.EXPECT().AccountAsset(id).Return(asset).AnyTimes()
}

func TestDryrunMakesNoCalls(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	e := s.engine

	assert.True(t, e.AccountCreate("alice", "Gold", "savings", true), "account create")
	assert.True(t, e.AccountTransfer("a", "b", 10, "", true), "account transfer")
	assert.True(t, e.AccountInAccept("a", 0, true, true), "inbox accept")
	assert.True(t, e.CashWithdraw("a", 10, true), "cash withdraw")
	assert.True(t, e.CashSend("a", "bob", 10, true), "cash send")
	assert.True(t, e.ChequeCreate("a", "bob", 10, "", true), "cheque create")
	assert.True(t, e.VoucherWithdraw("a", "alice", "bob", 10, "", true), "voucher withdraw")
	assert.True(t, e.PaymentAccept("a", -1, true, true), "payment accept")
	assert.True(t, e.OutpaymentDiscard("a", "alice", 0, true), "outpayment discard")
	assert.True(t, e.NymCreate("carol", true, true), "nym create")
	assert.True(t, e.MsgSend("alice", []string{"bob"}, "", "hello", "", true), "message send")
	assert.True(t, e.AssetSetDefault("Gold", true), "set default")
	assert.True(t, e.Refresh(true), "refresh")

	assert.Equal(t, session.Uninitialised, e.Session().State(), "dryrun must not open the session")
	assert.Nil(t, s.persister.saved, "dryrun must not save defaults")
}

func TestSessionFailureMakesNoCalls(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.ledger.EXPECT().Open().Return(false).Times(1)

	e := s.engine
	assert.False(t, e.AccountCreate("alice", "Gold", "savings", false), "first operation")
	assert.False(t, e.CashWithdraw("^ACC", 10, false), "second operation")
	assert.Equal(t, "", e.AccountGetID("savings"), "lookup")

	assert.Equal(t, session.Errored, e.Session().State(), "wrong state")
	assert.Equal(t, fault.ErrLedgerConnectionFailure, e.Session().Err(), "wrong error")
	assert.Contains(t, s.out.String(), "[error]", "failure must be shown")
}

func TestLiteralReferenceSkipsEnumeration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()

	assert.Equal(t, "deadbeef", s.engine.AccountGetID("^deadbeef"), "literal account")
	assert.Equal(t, "", s.engine.AccountGetID(""), "empty reference")
}

func TestDefaultsComeFromPersister(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()

	id, err := s.engine.ServerGetDefault()
	assert.Nil(t, err, "server default")
	assert.Equal(t, "S1", id, "wrong server default")
}

func TestDefaultWithoutSession(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.ledger.EXPECT().Open().Return(true).Times(1)
	s.ledger.EXPECT().LoadWallet().Return(false).Times(1)

	_, err := s.engine.AccountGetDefault()
	assert.Equal(t, fault.ErrNotInitialised, err, "wrong error")
}

func TestAssetSetDefault(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.ledger.EXPECT().Count(subject.Asset).Return(int32(2)).AnyTimes()
	s.ledger.EXPECT().IDAt(subject.Asset, int32(0)).Return("A1").AnyTimes()
	s.ledger.EXPECT().IDAt(subject.Asset, int32(1)).Return("G123").AnyTimes()
	s.ledger.EXPECT().NameOf(subject.Asset, "A1").Return("Silver").AnyTimes()
	s.ledger.EXPECT().NameOf(subject.Asset, "G123").Return("Gold").AnyTimes()

	assert.True(t, s.engine.AssetSetDefault("Gold", false), "set default")

	id, err := s.engine.AssetGetDefault()
	assert.Nil(t, err, "get default")
	assert.Equal(t, "G123", id, "wrong default")
	assert.Equal(t, "G123", s.persister.saved[subject.Asset], "default not saved")
	assert.Equal(t, "S1", s.persister.saved[subject.Server], "whole map must be saved")

	assert.False(t, s.engine.AssetSetDefault("Platinum", false), "unknown asset")
	id, _ = s.engine.AssetGetDefault()
	assert.Equal(t, "G123", id, "failed set must not change the default")
}

func TestAccountRefreshPartialBatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.ledger.EXPECT().Count(subject.Account).Return(int32(3)).Times(1)
	for i, id := range []string{"X0", "X1", "X2"} {
		s.ledger.EXPECT().IDAt(subject.Account, int32(i)).Return(id).Times(1)
		s.expectAccount(id, "N1", "S1", "A1")
	}
	s.ledger.EXPECT().RetrieveAccount("S1", "N1", "X0", false).Return(true)
	s.ledger.EXPECT().RetrieveAccount("S1", "N1", "X1", false).Return(false)
	s.ledger.EXPECT().RetrieveAccount("S1", "N1", "X2", false).Return(true)

	assert.True(t, s.engine.AccountRefresh("", true, false), "partial success is success")
	assert.Contains(t, s.out.String(), "[partial]", "partial outcome must be reported")
	assert.Contains(t, s.out.String(), "only 2 of 3", "wrong tally")
}

func TestOutpaymentRemoveReverseOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.ledger.EXPECT().OutpaymentCount("N1").Return(int32(3)).Times(1)
	gomock.InOrder(
		s.ledger.EXPECT().RemoveOutpayment("N1", int32(2)).Return(false),
		s.ledger.EXPECT().RemoveOutpayment("N1", int32(1)).Return(false),
		s.ledger.EXPECT().RemoveOutpayment("N1", int32(0)).Return(false),
	)

	assert.False(t, s.engine.OutpaymentRemove("^N1", 0, true, false), "nothing removed")
	assert.Contains(t, s.out.String(), "none of 3", "wrong tally")
}

func TestVoucherWithdrawSequence(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectFormat()
	s.expectNoNyms()
	s.expectAccount("ACC", "N1", "S1", "A1")
	s.ledger.EXPECT().AccountType("ACC").Return(ledger.SimpleAccount).AnyTimes()
	s.ledger.EXPECT().AccountBalance("ACC").Return(int64(500)).AnyTimes()

	gomock.InOrder(
		s.ledger.EXPECT().EnsureTransactionNumbers(int32(1), "S1", "N1").Return(true),
		s.ledger.EXPECT().WithdrawVoucher("S1", "N1", "ACC", "N2", "rent", int64(100)).Return("reply"),
		s.ledger.EXPECT().InterpretReply("S1", "N1", "ACC", "withdraw_voucher", "reply").Return(ledger.StatusSuccess),
		s.ledger.EXPECT().MessageLedger("reply").Return("ledger"),
		s.ledger.EXPECT().LedgerTransaction("S1", "N1", "ACC", "ledger", int32(0)).Return("txn"),
		s.ledger.EXPECT().TransactionVoucher("S1", "N1", "ACC", "txn").Return("voucher"),
		s.ledger.EXPECT().SendPayment("S1", "N1", "N1", "voucher").Return("sent"),
		s.ledger.EXPECT().VerifyMessageSuccess("sent").Return(ledger.StatusFailed),
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),
	)

	assert.True(t, s.engine.VoucherWithdraw("^ACC", "^N1", "^N2", 100, "rent", false), "voucher withdraw")
	assert.Contains(t, s.out.String(), "voucher", "voucher must be printed")
	assert.Contains(t, s.out.String(), "[warning]", "failed staging is a warning")
}

func TestVoucherWithdrawInsufficientFunds(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectFormat()
	s.expectAccount("ACC", "N1", "S1", "A1")
	s.ledger.EXPECT().AccountType("ACC").Return(ledger.SimpleAccount).AnyTimes()
	s.ledger.EXPECT().AccountBalance("ACC").Return(int64(50)).AnyTimes()
	s.ledger.EXPECT().WithdrawVoucher(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	assert.False(t, s.engine.VoucherWithdraw("^ACC", "^N1", "^N2", 100, "", false), "balance too low")
	assert.Contains(t, s.out.String(), fault.ErrInsufficientFunds.Error(), "wrong error")
}

func TestExpiredPaymentIsRecorded(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectFormat()
	s.expectAccount("ACC", "N1", "S1", "A1")

	now := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	count := int32(6)

	s.ledger.EXPECT().LoadPaymentInbox("S1", "N1").Return("inbox").AnyTimes()
	s.ledger.EXPECT().LedgerCount("S1", "N1", "N1", "inbox").DoAndReturn(
		func(server string, nym string, account string, box string) int32 {
			return count
		}).AnyTimes()
	s.ledger.EXPECT().LedgerInstrument("S1", "N1", "N1", "inbox", int32(5)).Return("cheque")
	s.ledger.EXPECT().Instrument("cheque").Return(ledger.Instrument{
		Type:      ledger.Cheque,
		Amount:    10,
		Asset:     "A1",
		ValidFrom: now.Add(-48 * time.Hour),
		ValidTo:   now.Add(-24 * time.Hour),
	})
	s.ledger.EXPECT().Time().Return(now).AnyTimes()
	s.ledger.EXPECT().RecordPayment("S1", "N1", true, int32(5), true).DoAndReturn(
		func(server string, nym string, inbox bool, index int32, saveCopy bool) bool {
			count -= 1
			return true
		}).Times(1)
	s.ledger.EXPECT().DepositCheque(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	assert.False(t, s.engine.PaymentAccept("^ACC", 5, false, false), "expired payment must fail")
	assert.Equal(t, int32(5), count, "payment must leave the inbox")
	assert.Contains(t, s.out.String(), fault.ErrInstrumentExpired.Error(), "wrong error")
}

func TestPaymentAcceptNewestCheque(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectFormat()
	s.expectAccount("ACC", "N1", "S1", "A1")

	now := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	s.ledger.EXPECT().LoadPaymentInbox("S1", "N1").Return("inbox").AnyTimes()
	s.ledger.EXPECT().LedgerCount("S1", "N1", "N1", "inbox").Return(int32(2)).AnyTimes()
	s.ledger.EXPECT().LedgerInstrument("S1", "N1", "N1", "inbox", int32(1)).Return("cheque")
	s.ledger.EXPECT().Instrument("cheque").Return(ledger.Instrument{
		Type:      ledger.Cheque,
		Amount:    10,
		Asset:     "A1",
		ValidFrom: now.Add(-time.Hour),
	})
	s.ledger.EXPECT().Time().Return(now).AnyTimes()
	gomock.InOrder(
		s.ledger.EXPECT().DepositCheque("S1", "N1", "ACC", "cheque").Return("deposited"),
		s.ledger.EXPECT().VerifyMessageSuccess("deposited").Return(ledger.StatusSuccess),
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(false),
	)

	assert.True(t, s.engine.PaymentAccept("^ACC", -1, false, false), "accept newest")
	assert.Contains(t, s.out.String(), "[warning]", "refresh failure is only a warning")
}

func TestPaymentAcceptMismatchedAsset(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectAccount("ACC", "N1", "S1", "A1")
	s.ledger.EXPECT().LoadPaymentInbox("S1", "N1").Return("inbox").AnyTimes()
	s.ledger.EXPECT().LedgerCount("S1", "N1", "N1", "inbox").Return(int32(1)).AnyTimes()
	s.ledger.EXPECT().LedgerInstrument("S1", "N1", "N1", "inbox", int32(0)).Return("cheque")
	s.ledger.EXPECT().Instrument("cheque").Return(ledger.Instrument{Type: ledger.Cheque, Asset: "B2"})

	assert.False(t, s.engine.PaymentAccept("^ACC", 0, false, false), "wrong asset")
	assert.Contains(t, s.out.String(), fault.ErrMismatchedAsset.Error(), "wrong error")
}

func TestCashWithdrawWithoutMint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectAccount("ACC", "N1", "S1", "A1")
	s.ledger.EXPECT().LoadAssetContract("A1").Return("contract")
	s.ledger.EXPECT().LoadOrRetrieveMint("S1", "N1", "A1").Return("")
	s.ledger.EXPECT().WithdrawCash(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	assert.False(t, s.engine.CashWithdraw("^ACC", 25, false), "no mint")
}

func TestCashWithdrawInvalidAmount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()

	assert.False(t, s.engine.CashWithdraw("^ACC", 0, false), "zero amount")
	assert.Contains(t, s.out.String(), fault.ErrInvalidAmount.Error(), "wrong error")
}

func TestCashSendReimportsRetained(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectAccount("ACC", "N1", "S1", "A1")
	s.ledger.EXPECT().LoadAssetContract("A1").Return("contract")
	s.ledger.EXPECT().LoadOrRetrieveMint("S1", "N1", "A1").Return("mint")
	s.ledger.EXPECT().WithdrawCash("S1", "N1", "ACC", int64(25)).Return("withdrawn")
	s.ledger.EXPECT().VerifyMessageSuccess("withdrawn").Return(ledger.StatusSuccess)
	s.ledger.EXPECT().LoadOrRetrieveContract("S1", "N1", "A1").Return("contract")
	s.ledger.EXPECT().ExportCash("S1", "N1", "A1", "N2", "", false).Return("exported", "retained")
	s.ledger.EXPECT().SendCash("S1", "N1", "N2", "exported", "retained").Return("sent")
	s.ledger.EXPECT().VerifyMessageSuccess("sent").Return(ledger.StatusError)
	s.ledger.EXPECT().ImportPurse("S1", "A1", "N1", "retained").Return(true).Times(1)

	assert.False(t, s.engine.CashSend("^ACC", "^N2", 25, false), "failed send")
	assert.Contains(t, s.out.String(), "retained copy returned", "re-import must be reported")
}

func TestOutpaymentDiscardUnsupported(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.ledger.EXPECT().OutpaymentCount("N1").Return(int32(1)).AnyTimes()
	s.ledger.EXPECT().Outpayment("N1", int32(0)).Return("invoice")
	s.ledger.EXPECT().Instrument("invoice").Return(ledger.Instrument{Type: ledger.Invoice})

	assert.False(t, s.engine.OutpaymentDiscard("^ACC", "^N1", 0, false), "invoice")
	assert.Contains(t, s.out.String(), fault.ErrNotImplemented.Error(), "wrong error")
}

func TestServerPing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectNoNyms()
	s.ledger.EXPECT().NameOf(subject.Server, "S1").Return("notary").AnyTimes()
	gomock.InOrder(
		s.ledger.EXPECT().PingNotary("S1", "N1").Return(int32(-1)),
		s.ledger.EXPECT().PingNotary("S1", "N1").Return(int32(0)),
		s.ledger.EXPECT().PingNotary("S1", "N1").Return(int32(3)),
	)

	assert.False(t, s.engine.ServerPing("^S1", "^N1", false), "connection failed")
	assert.True(t, s.engine.ServerPing("^S1", "^N1", false), "no message sent")
	assert.Contains(t, s.out.String(), "no message sent", "wrong wording")
	assert.True(t, s.engine.ServerCheck(), "default server")
}

func TestMsgSendComposed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "line one\nline two\n~\n")
	s.expectSession()
	s.ledger.EXPECT().SendMessage("S1", "N1", "N2", "Subject: hi\n\nline one\nline two\n").Return("r2")
	s.ledger.EXPECT().SendMessage("S1", "N1", "N3", "Subject: hi\n\nline one\nline two\n").Return("r3")
	s.ledger.EXPECT().VerifyMessageSuccess("r2").Return(ledger.StatusSuccess)
	s.ledger.EXPECT().VerifyMessageSuccess("r3").Return(ledger.StatusSuccess)

	assert.True(t, s.engine.MsgSend("^N1", []string{"^N2", "^N3"}, "hi", "", "", false), "send")
}

func TestNymCreateBecomesDefault(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.persister.items = map[subject.Kind]string{subject.Server: "S1"}
	s.expectSession()
	s.ledger.EXPECT().Count(subject.Nym).Return(int32(0)).AnyTimes()
	s.ledger.EXPECT().CreateNym(int32(1024)).Return("NEW")
	s.ledger.EXPECT().SetName(subject.Nym, "NEW", "NEW", "carol").Return(true)
	s.ledger.EXPECT().IsNymRegistered("NEW", "S1").Return(false)
	s.ledger.EXPECT().RegisterNym("S1", "NEW").Return("registered")
	s.ledger.EXPECT().VerifyMessageSuccess("registered").Return(ledger.StatusSuccess)

	assert.True(t, s.engine.NymCreate("carol", true, false), "create")

	id, err := s.engine.NymGetDefault()
	assert.Nil(t, err, "default nym")
	assert.Equal(t, "NEW", id, "new nym must become the default")
	assert.Equal(t, "NEW", s.persister.saved[subject.Nym], "default not saved")
}

func TestAccountLookups(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectNoNyms()
	s.ledger.EXPECT().Count(subject.Account).Return(int32(2)).AnyTimes()
	s.ledger.EXPECT().IDAt(subject.Account, int32(0)).Return("AC1").AnyTimes()
	s.ledger.EXPECT().IDAt(subject.Account, int32(1)).Return("AC2").AnyTimes()
	s.ledger.EXPECT().NameOf(subject.Account, "AC1").Return("savings").AnyTimes()
	s.ledger.EXPECT().NameOf(subject.Account, "AC2").Return("cheque").AnyTimes()
	s.ledger.EXPECT().AccountBalance("AC2").Return(int64(42)).Times(1)
	s.expectAccount("AC2", "N1", "S1", "A1")

	e := s.engine
	assert.Equal(t, "AC2", e.AccountGetID("cheque"), "id by name")
	assert.Equal(t, "savings", e.AccountGetName("AC1"), "name by id")
	assert.Equal(t, "N1", e.AccountGetNymID("cheque"), "owner")
	assert.Equal(t, "A1", e.AccountGetAssetID("^AC2"), "asset")
	assert.Equal(t, int64(42), e.AccountGetBalance("cheque"), "balance")
	assert.True(t, e.AccountIsOwnerNym("cheque", "^N1"), "owner nym")
	assert.False(t, e.AccountIsOwnerNym("cheque", "^N2"), "other nym")
	assert.False(t, e.CheckIfExists(subject.Account, "current"), "unknown name")
	assert.True(t, e.CheckIfExists(subject.Account, "savings"), "known name")
	assert.Equal(t, "savings (AC1)", e.SubjectDescription(subject.Account, "savings"), "description")
	assert.Equal(t, "N7", e.NymGetRecipientName("N7"), "unnamed recipient shows its id")
}

func TestOutpaymentCheckIndex(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.ledger.EXPECT().OutpaymentCount("N1").Return(int32(2)).AnyTimes()

	e := s.engine
	assert.Equal(t, int32(2), e.OutpaymentCount("^N1"), "count")
	assert.True(t, e.OutpaymentCheckIndex("^N1", 0), "first")
	assert.True(t, e.OutpaymentCheckIndex("^N1", 1), "last")
	assert.False(t, e.OutpaymentCheckIndex("^N1", 2), "past the end")
	assert.False(t, e.OutpaymentCheckIndex("^N1", -1), "negative")
}

// subjects shown while describing an instrument have no names
func (s *setup) expectNoNames() {
	s.ledger.EXPECT().NameOf(gomock.Any(), gomock.Any()).Return("").AnyTimes()
}

func TestOutpaymentSendHarvestsOnFailure(t *testing.T) {
	for _, status := range []ledger.Status{ledger.StatusFailed, ledger.StatusError} {
		ctl := gomock.NewController(t)

		s := newSetup(ctl, "")
		s.expectSession()
		s.expectFormat()
		s.expectNoNyms()
		s.expectNoNames()
		s.ledger.EXPECT().Time().Return(time.Now()).AnyTimes()
		s.ledger.EXPECT().OutpaymentCount("N1").Return(int32(1)).Times(1)
		s.ledger.EXPECT().Outpayment("N1", int32(0)).Return("cheque").Times(1)
		s.ledger.EXPECT().Instrument("cheque").Return(ledger.Instrument{
			Type:   ledger.Cheque,
			Amount: 10,
			Asset:  "A1",
			Notary: "S1",
		}).AnyTimes()

		gomock.InOrder(
			s.ledger.EXPECT().SendPayment("S1", "N1", "N2", "cheque").Return("reply"),
			s.ledger.EXPECT().VerifyMessageSuccess("reply").Return(status),
			s.ledger.EXPECT().RetrieveNym("S1", "N1", true).Return(true),
			s.ledger.EXPECT().HarvestTransactionNumbers("reply", "N1").Return(true),
		)

		assert.False(t, s.engine.OutpaymentSend("^N1", "^N2", 0, false, false), "status: %s", status)
		ctl.Finish()
	}
}

func TestOutpaymentSendRefreshesSender(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectFormat()
	s.expectNoNyms()
	s.expectNoNames()
	s.ledger.EXPECT().Time().Return(time.Now()).AnyTimes()
	s.ledger.EXPECT().OutpaymentCount("N1").Return(int32(1)).Times(1)
	s.ledger.EXPECT().Outpayment("N1", int32(0)).Return("voucher").Times(1)
	s.ledger.EXPECT().Instrument("voucher").Return(ledger.Instrument{Type: ledger.Voucher, Asset: "A1"}).AnyTimes()
	s.ledger.EXPECT().OutpaymentServer("N1", int32(0)).Return("S2").Times(1)
	s.ledger.EXPECT().HarvestTransactionNumbers(gomock.Any(), gomock.Any()).Times(0)

	gomock.InOrder(
		s.ledger.EXPECT().SendPayment("S2", "N1", "N2", "voucher").Return("reply"),
		s.ledger.EXPECT().VerifyMessageSuccess("reply").Return(ledger.StatusSuccess),
		s.ledger.EXPECT().RetrieveNym("S2", "N1", true).Return(true),
	)

	assert.True(t, s.engine.OutpaymentSend("^N1", "^N2", 0, false, false), "send")
}

func TestPaymentAcceptAllPartial(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectFormat()
	s.expectAccount("ACC", "N1", "S1", "A1")

	now := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	s.ledger.EXPECT().Time().Return(now).AnyTimes()
	s.ledger.EXPECT().LoadPaymentInbox("S1", "N1").Return("inbox").AnyTimes()
	s.ledger.EXPECT().LedgerCount("S1", "N1", "N1", "inbox").Return(int32(2)).AnyTimes()
	for _, c := range []string{"c0", "c1"} {
		s.ledger.EXPECT().Instrument(c).Return(ledger.Instrument{
			Type:      ledger.Cheque,
			Amount:    10,
			Asset:     "A1",
			ValidFrom: now.Add(-time.Hour),
		}).AnyTimes()
	}

	gomock.InOrder(
		s.ledger.EXPECT().LedgerInstrument("S1", "N1", "N1", "inbox", int32(1)).Return("c1"),
		s.ledger.EXPECT().DepositCheque("S1", "N1", "ACC", "c1").Return("r1"),
		s.ledger.EXPECT().VerifyMessageSuccess("r1").Return(ledger.StatusSuccess),
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),
		s.ledger.EXPECT().LedgerInstrument("S1", "N1", "N1", "inbox", int32(0)).Return("c0"),
		s.ledger.EXPECT().DepositCheque("S1", "N1", "ACC", "c0").Return("r0"),
		s.ledger.EXPECT().VerifyMessageSuccess("r0").Return(ledger.StatusFailed),
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),
	)

	assert.True(t, s.engine.PaymentAccept("^ACC", 0, true, false), "partial success is success")
	assert.Contains(t, s.out.String(), "only 1 of 2", "wrong tally")
}

func TestAccountInAcceptAllPartial(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectAccount("ACC", "N1", "S1", "A1")

	gomock.InOrder(
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),
		s.ledger.EXPECT().LoadInbox("S1", "N1", "ACC").Return("inbox"),
		s.ledger.EXPECT().LedgerCount("S1", "N1", "ACC", "inbox").Return(int32(2)),
		s.ledger.EXPECT().AcceptInboxItems("ACC", int32(0), "0").Return(true),
		s.ledger.EXPECT().AcceptInboxItems("ACC", int32(0), "0").Return(false),
		s.ledger.EXPECT().AcceptInboxItems("ACC", int32(0), "0").Return(false),
	)

	assert.True(t, s.engine.AccountInAccept("^ACC", 0, true, false), "partial success is success")
	assert.Contains(t, s.out.String(), "only 1 of 2", "wrong tally")
}

func TestAccountInAcceptRetriesOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectAccount("ACC", "N1", "S1", "A1")

	gomock.InOrder(
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),
		s.ledger.EXPECT().LoadInbox("S1", "N1", "ACC").Return("inbox"),
		s.ledger.EXPECT().LedgerCount("S1", "N1", "ACC", "inbox").Return(int32(1)),
		s.ledger.EXPECT().AcceptInboxItems("ACC", int32(0), "0").Return(false),
		s.ledger.EXPECT().AcceptInboxItems("ACC", int32(0), "0").Return(true),
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),
	)

	assert.True(t, s.engine.AccountInAccept("^ACC", 0, true, false), "retry succeeded")
	assert.Contains(t, s.out.String(), "all 1 items succeeded", "wrong tally")
}

func TestVoucherWithdrawCancelAccept(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectFormat()
	s.expectNoNyms()
	s.expectAccount("ACC", "N1", "S1", "A1")
	s.ledger.EXPECT().AccountType("ACC").Return(ledger.SimpleAccount).AnyTimes()
	s.ledger.EXPECT().AccountBalance("ACC").Return(int64(500)).AnyTimes()
	s.ledger.EXPECT().Instrument("voucher").Return(ledger.Instrument{
		Type:   ledger.Voucher,
		Amount: 100,
		Asset:  "A1",
		Notary: "S1",
	}).AnyTimes()

	gomock.InOrder(
		// withdraw, staged in outgoing payment slot 0
		s.ledger.EXPECT().EnsureTransactionNumbers(int32(1), "S1", "N1").Return(true),
		s.ledger.EXPECT().WithdrawVoucher("S1", "N1", "ACC", "N2", "rent", int64(100)).Return("reply"),
		s.ledger.EXPECT().InterpretReply("S1", "N1", "ACC", "withdraw_voucher", "reply").Return(ledger.StatusSuccess),
		s.ledger.EXPECT().MessageLedger("reply").Return("ledger"),
		s.ledger.EXPECT().LedgerTransaction("S1", "N1", "ACC", "ledger", int32(0)).Return("txn"),
		s.ledger.EXPECT().TransactionVoucher("S1", "N1", "ACC", "txn").Return("voucher"),
		s.ledger.EXPECT().SendPayment("S1", "N1", "N1", "voucher").Return("staged"),
		s.ledger.EXPECT().VerifyMessageSuccess("staged").Return(ledger.StatusSuccess),
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),

		// cancel deposits it back and clears the slot
		s.ledger.EXPECT().OutpaymentCount("N1").Return(int32(1)),
		s.ledger.EXPECT().Outpayment("N1", int32(0)).Return("voucher"),
		s.ledger.EXPECT().DepositCheque("S1", "N1", "ACC", "voucher").Return("deposit"),
		s.ledger.EXPECT().VerifyMessageSuccess("deposit").Return(ledger.StatusSuccess),
		s.ledger.EXPECT().RemoveOutpayment("N1", int32(0)).Return(true),
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),

		// the deposit receipt is accepted from the inbox
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),
		s.ledger.EXPECT().LoadInbox("S1", "N1", "ACC").Return("inbox"),
		s.ledger.EXPECT().LedgerCount("S1", "N1", "ACC", "inbox").Return(int32(1)),
		s.ledger.EXPECT().AcceptInboxItems("ACC", int32(0), "0").Return(true),
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),
	)

	e := s.engine
	assert.True(t, e.VoucherWithdraw("^ACC", "^N1", "^N2", 100, "rent", false), "withdraw")
	assert.True(t, e.VoucherCancel("^ACC", "^N1", 0, false), "cancel")
	assert.True(t, e.AccountInAccept("^ACC", 0, true, false), "accept")
}

func TestChequeDiscardRemovesSlot(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectAccount("ACC", "N1", "S1", "A1")
	s.ledger.EXPECT().OutpaymentCount("N1").Return(int32(1)).AnyTimes()
	s.ledger.EXPECT().Outpayment("N1", int32(0)).Return("cheque").AnyTimes()
	s.ledger.EXPECT().Instrument("cheque").Return(ledger.Instrument{
		Type:   ledger.Cheque,
		Asset:  "A1",
		Notary: "S1",
	}).AnyTimes()

	gomock.InOrder(
		s.ledger.EXPECT().DiscardCheque("S1", "N1", "ACC", "cheque").Return(true),
		s.ledger.EXPECT().RemoveOutpayment("N1", int32(0)).Return(true),
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),
	)

	assert.True(t, s.engine.OutpaymentDiscard("^ACC", "^N1", 0, false), "discard")
}

func TestChequeDiscardComposed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "cheque\n~\n")
	s.expectSession()
	s.expectAccount("ACC", "N1", "S1", "A1")
	s.ledger.EXPECT().Instrument("cheque\n").Return(ledger.Instrument{Type: ledger.Cheque, Notary: "S1"})
	s.ledger.EXPECT().RemoveOutpayment(gomock.Any(), gomock.Any()).Times(0)

	gomock.InOrder(
		s.ledger.EXPECT().DiscardCheque("S1", "N1", "ACC", "cheque\n").Return(true),
		s.ledger.EXPECT().RetrieveAccount("S1", "N1", "ACC", true).Return(true),
	)

	assert.True(t, s.engine.ChequeDiscard("^ACC", "^N1", -1, false), "discard")
}

func TestChequeDiscardRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectAccount("ACC", "N1", "S1", "A1")
	s.ledger.EXPECT().OutpaymentCount("N1").Return(int32(1))
	s.ledger.EXPECT().Outpayment("N1", int32(0)).Return("cheque")
	s.ledger.EXPECT().Instrument("cheque").Return(ledger.Instrument{Type: ledger.Cheque, Notary: "S1"})
	s.ledger.EXPECT().DiscardCheque("S1", "N1", "ACC", "cheque").Return(false)
	s.ledger.EXPECT().RemoveOutpayment(gomock.Any(), gomock.Any()).Times(0)
	s.ledger.EXPECT().RetrieveAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	assert.False(t, s.engine.ChequeDiscard("^ACC", "^N1", 0, false), "rejected discard")
	assert.Contains(t, s.out.String(), fault.ErrServerRejected.Error(), "wrong error")
}

func TestPaymentAcceptRequiresAsset(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, "")
	s.expectSession()
	s.expectAccount("ACC", "N1", "S1", "A1")
	s.ledger.EXPECT().LoadPaymentInbox("S1", "N1").Return("inbox").AnyTimes()
	s.ledger.EXPECT().LedgerCount("S1", "N1", "N1", "inbox").Return(int32(1)).AnyTimes()
	s.ledger.EXPECT().LedgerInstrument("S1", "N1", "N1", "inbox", int32(0)).Return("cheque")
	s.ledger.EXPECT().Instrument("cheque").Return(ledger.Instrument{Type: ledger.Cheque})
	s.ledger.EXPECT().DepositCheque(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	assert.False(t, s.engine.PaymentAccept("^ACC", 0, false, false), "missing asset")
	assert.Contains(t, s.out.String(), fault.ErrMismatchedAsset.Error(), "wrong error")
}
