// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/otclient/addressbook"
	"github.com/bitmark-inc/otclient/cache"
	"github.com/bitmark-inc/otclient/console"
	"github.com/bitmark-inc/otclient/defaults"
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/ledger"
	"github.com/bitmark-inc/otclient/resolver"
	"github.com/bitmark-inc/otclient/session"
	"github.com/bitmark-inc/otclient/subject"
)

// Engine - runs operations against a ledger service
type Engine struct {
	log      *logger.L
	ledger   ledger.Service
	gate     *session.Gate
	nyms     *cache.Identities
	resolver *resolver.Resolver
	defaults *defaults.Store
	book     *addressbook.Store
	console  *console.Console
	input    console.Input
}

// Options - collaborators of an engine
type Options struct {
	Ledger    ledger.Service
	Book      *addressbook.Store // optional
	Persister defaults.Persister
	Console   *console.Console
	Input     console.Input
}

// New - create an engine, the session is opened by the first operation
func New(options Options, log *logger.L) *Engine {
	service := options.Ledger

	// keep a nil store out of the interface
	var contacts resolver.AddressBook
	if nil != options.Book {
		contacts = options.Book
	}

	nyms := cache.New(subject.Nym, service, logger.New("cache"))
	r := resolver.New(service, nyms, contacts, logger.New("resolver"))
	d := defaults.New(service, r, options.Persister, logger.New("defaults"))

	gate := session.New(service, logger.New("session"))
	gate.OnReady(d.Load)

	return &Engine{
		log:      log,
		ledger:   service,
		gate:     gate,
		nyms:     nyms,
		resolver: r,
		defaults: d,
		book:     options.Book,
		console:  options.Console,
		input:    options.Input,
	}
}

// Close - end the ledger session
func (e *Engine) Close() {
	e.gate.Close()
}

// Session - the session gate
func (e *Engine) Session() *session.Gate {
	return e.gate
}

// open the session, false stops the operation
func (e *Engine) ready() bool {
	if e.gate.Init() {
		return true
	}
	e.log.Errorf("%s: %v", fault.ErrNotInitialised, e.gate.Err())
	e.console.Failuref("%s: %v", fault.ErrNotInitialised, e.gate.Err())
	return false
}

func (e *Engine) succeed(format string, arguments ...interface{}) bool {
	message := fmt.Sprintf(format, arguments...)
	e.log.Info(message)
	e.console.Successf("%s", message)
	return true
}

func (e *Engine) fail(err error, format string, arguments ...interface{}) bool {
	message := fmt.Sprintf(format, arguments...)
	e.log.Errorf("%s: %s", message, err)
	e.console.Failuref("%s: %s", message, err)
	return false
}

func (e *Engine) warn(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	e.log.Warn(message)
	e.console.Warningf("%s", message)
}

// check a server reply, only success continues
func (e *Engine) verify(what string, reply string) bool {
	return e.status(what, e.ledger.VerifyMessageSuccess(reply))
}

func (e *Engine) status(what string, status ledger.Status) bool {
	switch status {
	case ledger.StatusSuccess:
		e.log.Debugf("%s: %s", what, status)
		return true
	case ledger.StatusFailed:
		e.log.Warnf("%s: %s", what, fault.ErrServerRejected)
		e.console.Failuref("%s: %s", what, fault.ErrServerRejected)
	default:
		e.log.Errorf("%s: status: %s  %s", what, status, fault.ErrTransport)
		e.console.Failuref("%s: %s", what, fault.ErrTransport)
	}
	return false
}

// resolve a reference that must exist
func (e *Engine) lookup(kind subject.Kind, ref string) (string, bool) {
	id := e.resolver.ID(kind, ref)
	if "" == id {
		return "", e.fail(fault.ErrNotFoundSubject, "%s: %q", kind, ref)
	}
	return id, true
}

// the default of a kind, reporting a missing default
func (e *Engine) defaultOf(kind subject.Kind) (string, bool) {
	id, err := e.defaults.Get(kind)
	if nil != err {
		return "", e.fail(err, "default %s", kind)
	}
	return id, true
}

// a resolved account with its owner, notary and asset
type account struct {
	id     string
	nym    string
	server string
	asset  string
}

func (e *Engine) account(ref string) (account, bool) {
	id, ok := e.lookup(subject.Account, ref)
	if !ok {
		return account{}, false
	}
	a := account{
		id:     id,
		nym:    e.ledger.AccountNym(id),
		server: e.ledger.AccountServer(id),
		asset:  e.ledger.AccountAsset(id),
	}
	if "" == a.nym || "" == a.server || "" == a.asset {
		return account{}, e.fail(fault.ErrNotFoundSubject, "account: %s details", id)
	}
	return a, true
}

// text from a file, or composed interactively when no file is given
func (e *Engine) text(file string, prompt string) (string, bool) {
	var text string
	var err error
	if "" != file {
		text, err = e.input.ReadFile(file)
	} else {
		text, err = e.input.Compose(prompt)
	}
	if nil != err {
		return "", e.fail(err, "read %s", prompt)
	}
	if "" == text {
		return "", e.fail(fault.ErrEmptyInput, "read %s", prompt)
	}
	return text, true
}

// write text to a file, or to the console when no file is given
func (e *Engine) output(file string, text string) bool {
	if "" == file {
		e.console.Text(text)
		return true
	}
	if err := e.input.WriteFile(file, text); nil != err {
		return e.fail(err, "write: %q", file)
	}
	e.log.Infof("wrote: %q", file)
	return true
}
