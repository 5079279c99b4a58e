// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/ledger"
	"github.com/bitmark-inc/otclient/subject"
)

// MsgSend - send a message to each recipient through the default
// server; the body comes from the file, then the argument, then compose
func (e *Engine) MsgSend(senderRef string, recipients []string, title string, message string, file string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	if 0 == len(recipients) {
		return e.fail(fault.ErrEmptyInput, "send message: no recipients")
	}
	sender, ok := e.lookup(subject.Nym, senderRef)
	if !ok {
		return false
	}
	server, ok := e.defaultOf(subject.Server)
	if !ok {
		return false
	}

	// resolve every recipient before anything is sent
	ids := make([]string, 0, len(recipients))
	for _, r := range recipients {
		id := e.resolver.RecipientID(r, sender)
		if "" == id {
			return e.fail(fault.ErrNotFoundSubject, "send message: recipient: %q", r)
		}
		ids = append(ids, id)
	}

	body := ""
	if "" != file {
		text, err := e.input.ReadFile(file)
		if nil != err {
			return e.fail(err, "send message: read: %q", file)
		}
		body = text
	}
	if "" == strings.TrimSpace(body) {
		body = message
	}
	if "" == strings.TrimSpace(body) {
		text, ok := e.text("", "message")
		if !ok {
			return false
		}
		body = text
	}
	if "" != title {
		body = "Subject: " + title + "\n\n" + body
	}

	for _, id := range ids {
		if !e.verify("send message to: "+id, e.ledger.SendMessage(server, sender, id, body)) {
			return false
		}
		e.log.Debugf("message from: %s to: %s sent", sender, id)
	}
	return e.succeed("sent message to: %d recipients", len(ids))
}

// MsgDisplayForNym - tables of the incoming and outgoing mail of a nym
func (e *Engine) MsgDisplayForNym(nymRef string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	nym, ok := e.lookup(subject.Nym, nymRef)
	if !ok {
		return false
	}

	e.console.Field("nym", e.resolver.Name(subject.Nym, nym)+" ("+nym+")")
	e.console.Infof("INBOX")
	e.mailTable(nym, ledger.Inbox, "from")
	e.console.Infof("OUTBOX")
	e.mailTable(nym, ledger.Outbox, "to")
	return true
}

func (e *Engine) mailTable(nym string, box ledger.MailBox, counterparty string) {
	count := e.ledger.MailCount(nym, box)
	rows := make([][]string, 0, count)
	for i := int32(0); i < count; i += 1 {
		rows = append(rows, []string{
			strconv.Itoa(int(i)),
			e.resolver.RecipientName(e.ledger.MailCounterparty(nym, box, i)),
			firstLine(e.ledger.Mail(nym, box, i)),
		})
	}
	e.console.Table([]string{"index", counterparty, "content"}, rows)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if n := strings.IndexByte(s, '\n'); n >= 0 {
		return s[:n] + " ..."
	}
	return s
}

// MsgDisplayForNymInbox - one incoming message
func (e *Engine) MsgDisplayForNymInbox(nymRef string, index int32, dryrun bool) bool {
	return e.showMail(nymRef, ledger.Inbox, index, dryrun)
}

// MsgDisplayForNymOutbox - one outgoing message
func (e *Engine) MsgDisplayForNymOutbox(nymRef string, index int32, dryrun bool) bool {
	return e.showMail(nymRef, ledger.Outbox, index, dryrun)
}

func (e *Engine) showMail(nymRef string, box ledger.MailBox, index int32, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	nym, ok := e.lookup(subject.Nym, nymRef)
	if !ok {
		return false
	}

	message := e.ledger.Mail(nym, box, index)
	if "" == message {
		return e.fail(fault.ErrIndexOutOfRange, "message: %d", index)
	}
	counterparty := e.resolver.RecipientName(e.ledger.MailCounterparty(nym, box, index))
	owner := e.resolver.Name(subject.Nym, nym)

	if ledger.Inbox == box {
		e.console.Field("to", owner)
		e.console.Field("from", counterparty)
	} else {
		e.console.Field("to", counterparty)
		e.console.Field("from", owner)
	}
	e.console.Field("server", e.resolver.Name(subject.Server, e.ledger.MailServer(nym, box, index)))
	e.console.Text(message)
	e.console.Infof("--- end of message ---")
	return true
}

// MsgInCheckIndex - true if index selects an incoming message
func (e *Engine) MsgInCheckIndex(nymRef string, index int32) bool {
	return e.mailIndex(nymRef, ledger.Inbox, index)
}

// MsgOutCheckIndex - true if index selects an outgoing message
func (e *Engine) MsgOutCheckIndex(nymRef string, index int32) bool {
	return e.mailIndex(nymRef, ledger.Outbox, index)
}

func (e *Engine) mailIndex(nymRef string, box ledger.MailBox, index int32) bool {
	if !e.ready() {
		return false
	}
	nym := e.resolver.ID(subject.Nym, nymRef)
	if "" == nym {
		return false
	}
	return index >= 0 && index < e.ledger.MailCount(nym, box)
}

// MsgInRemoveByIndex - delete an incoming message
func (e *Engine) MsgInRemoveByIndex(nymRef string, index int32, dryrun bool) bool {
	return e.removeMail(nymRef, ledger.Inbox, index, dryrun)
}

// MsgOutRemoveByIndex - delete an outgoing message
func (e *Engine) MsgOutRemoveByIndex(nymRef string, index int32, dryrun bool) bool {
	return e.removeMail(nymRef, ledger.Outbox, index, dryrun)
}

func (e *Engine) removeMail(nymRef string, box ledger.MailBox, index int32, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	nym, ok := e.lookup(subject.Nym, nymRef)
	if !ok {
		return false
	}
	if !e.ledger.RemoveMail(nym, box, index) {
		return e.fail(fault.ErrIndexOutOfRange, "remove message: %d", index)
	}
	return e.succeed("removed message: %d of: %s", index, nym)
}
