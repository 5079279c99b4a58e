// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/fixtures"
	"github.com/bitmark-inc/otclient/ledger"
	"github.com/bitmark-inc/otclient/rpccalls"
	"github.com/bitmark-inc/otclient/subject"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// Ledger - a minimal gateway
type Ledger struct {
	last rpccalls.Arguments
}

func (l *Ledger) Count(arguments *rpccalls.Arguments, reply *int32) error {
	l.last = *arguments
	if "nym" == arguments.Kind {
		*reply = 2
	}
	return nil
}

func (l *Ledger) IDAt(arguments *rpccalls.Arguments, reply *string) error {
	l.last = *arguments
	*reply = []string{"N1", "N2"}[arguments.Index]
	return nil
}

func (l *Ledger) WriteCheque(arguments *rpccalls.Arguments, reply *string) error {
	l.last = *arguments
	*reply = "CHEQUE-TEXT"
	return nil
}

func (l *Ledger) ExportCash(arguments *rpccalls.Arguments, reply *rpccalls.ExportReply) error {
	l.last = *arguments
	reply.Exported = "EXPORTED"
	reply.Retained = "RETAINED"
	return nil
}

func (l *Ledger) VerifyMessageSuccess(arguments *rpccalls.Arguments, reply *ledger.Status) error {
	l.last = *arguments
	*reply = ledger.StatusSuccess
	return nil
}

func (l *Ledger) Instrument(arguments *rpccalls.Arguments, reply *ledger.Instrument) error {
	l.last = *arguments
	reply.Type = ledger.Voucher
	reply.Amount = 25
	reply.Asset = "G123"
	return nil
}

func (l *Ledger) MailCount(arguments *rpccalls.Arguments, reply *int32) error {
	l.last = *arguments
	*reply = 3
	return nil
}

func setup(t *testing.T, verbose *bytes.Buffer) (*rpccalls.Client, *Ledger, func()) {
	server := rpc.NewServer()
	l := &Ledger{}
	if err := server.RegisterName("Ledger", l); nil != err {
		t.Fatalf("register error: %s", err)
	}

	serverConn, clientConn := net.Pipe()
	go server.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	options := rpccalls.Options{
		Timeout: 5 * time.Second,
	}
	if nil != verbose {
		options.Verbose = true
		options.Handle = verbose
	}

	c := rpccalls.NewConnectedClient(clientConn, options, logger.New(fixtures.LogCategory))
	return c, l, func() {
		c.Close()
		serverConn.Close()
	}
}

func TestCalls(t *testing.T) {
	c, l, done := setup(t, nil)
	defer done()

	assert.True(t, c.Open(), "already connected")

	assert.Equal(t, int32(2), c.Count(subject.Nym), "nym count")
	assert.Equal(t, "nym", l.last.Kind, "kind is sent as text")
	assert.Equal(t, int32(0), c.Count(subject.Asset), "asset count")

	assert.Equal(t, "N2", c.IDAt(subject.Nym, 1), "id at 1")
	assert.Equal(t, int32(1), l.last.Index, "index")

	from := time.Unix(1500000000, 0)
	cheque := c.WriteCheque("S1", 100, from, time.Time{}, "A1", "N1", "rent", "N2")
	assert.Equal(t, "CHEQUE-TEXT", cheque, "cheque")
	assert.Equal(t, int64(100), l.last.Amount, "amount")
	assert.Equal(t, int64(1500000000), l.last.ValidFrom, "valid from")
	assert.Equal(t, int64(0), l.last.ValidTo, "zero time means no expiry")
	assert.Equal(t, "rent", l.last.Memo, "memo")

	exported, retained := c.ExportCash("S1", "N1", "G123", "N2", "", true)
	assert.Equal(t, "EXPORTED", exported, "exported")
	assert.Equal(t, "RETAINED", retained, "retained")
	assert.True(t, l.last.PasswordProtected, "password flag")

	assert.Equal(t, ledger.StatusSuccess, c.VerifyMessageSuccess("reply"), "verify")

	i := c.Instrument("VOUCHER-TEXT")
	assert.Equal(t, ledger.Voucher, i.Type, "instrument type")
	assert.Equal(t, int64(25), i.Amount, "instrument amount")

	assert.Equal(t, int32(3), c.MailCount("N1", ledger.Outbox), "mail count")
	assert.Equal(t, int32(ledger.Outbox), l.last.Box, "box")
}

func TestEmptyReplyMakesNoCall(t *testing.T) {
	c, l, done := setup(t, nil)
	defer done()

	assert.Equal(t, ledger.StatusError, c.VerifyMessageSuccess(""), "empty reply")
	assert.Equal(t, rpccalls.Arguments{}, l.last, "no call expected")
}

func TestUnknownMethodIsTransportError(t *testing.T) {
	c, _, done := setup(t, nil)
	defer done()

	assert.Equal(t, "", c.LoadInbox("S1", "N1", "A1"), "missing method gives empty reply")
	assert.Equal(t, ledger.StatusError, c.DepositCash("S1", "N1", "A1", "PURSE"), "missing status method")
	assert.Equal(t, int32(-1), c.PingNotary("S1", "N1"), "missing ping")
	assert.False(t, c.LoadWallet(), "missing wallet load")
}

func TestVerbose(t *testing.T) {
	buffer := &bytes.Buffer{}
	c, _, done := setup(t, buffer)
	defer done()

	c.Count(subject.Server)
	assert.Contains(t, buffer.String(), "Ledger.Count:", "request title")
	assert.Contains(t, buffer.String(), `"kind": "server"`, "request body")
	assert.Contains(t, buffer.String(), "Ledger.Count reply:", "reply title")
}

func TestNotConnected(t *testing.T) {
	_, err := rpccalls.NewClient(rpccalls.Options{}, logger.New(fixtures.LogCategory))
	assert.Equal(t, fault.ErrRequiredConnect, err, "connect is required")

	c, err := rpccalls.NewClient(rpccalls.Options{Connect: "127.0.0.1:1"}, logger.New(fixtures.LogCategory))
	assert.Nil(t, err, "new client")
	assert.Equal(t, int32(0), c.Count(subject.Nym), "no connection")
	c.Close()
}
