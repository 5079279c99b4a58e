// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workflow

import (
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/subject"
)

// armoured text is always line broken
const lineBreaks = true

// TextEncode - armour text from a file, the argument or compose
func (e *Engine) TextEncode(text string, fromFile string, toFile string, dryrun bool) bool {
	return e.transcode("encode", text, fromFile, toFile, dryrun, func(s string) string {
		return e.ledger.Encode(s, lineBreaks)
	})
}

// TextDecode - remove the armour from encoded text
func (e *Engine) TextDecode(text string, fromFile string, toFile string, dryrun bool) bool {
	return e.transcode("decode", text, fromFile, toFile, dryrun, func(s string) string {
		return e.ledger.Decode(s, lineBreaks)
	})
}

func (e *Engine) transcode(what string, text string, fromFile string, toFile string, dryrun bool, convert func(string) string) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	in, ok := e.argumentOr(text, fromFile, what+" text")
	if !ok {
		return false
	}
	out := convert(in)
	if "" == out {
		return e.fail(fault.ErrEmptyInput, "%s: empty result", what)
	}
	if "" != toFile {
		e.console.Text(out)
	}
	return e.output(toFile, out)
}

// TextEncrypt - encrypt text for a recipient nym
func (e *Engine) TextEncrypt(recipientRef string, text string, dryrun bool) bool {
	if dryrun {
		return true
	}
	if !e.ready() {
		return false
	}
	owner, _ := e.defaults.Get(subject.Nym)
	recipient := e.resolver.RecipientID(recipientRef, owner)
	if "" == recipient {
		return e.fail(fault.ErrNotFoundSubject, "encrypt: recipient: %q", recipientRef)
	}
	in, ok := e.argumentOr(text, "", "plain text")
	if !ok {
		return false
	}
	out := e.ledger.Encrypt(recipient, in)
	if "" == out {
		return e.fail(fault.ErrServerRejected, "encrypt for: %s", recipient)
	}
	e.console.Text(out)
	return true
}

// TextDecrypt - decrypt text with a wallet nym's key
func (e *Engine) TextDecrypt(nymRef string, text string, dryrun bool) bool {
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
	in, ok := e.argumentOr(text, "", "encrypted text")
	if !ok {
		return false
	}
	out := e.ledger.Decrypt(nym, in)
	if "" == out {
		return e.fail(fault.ErrServerRejected, "decrypt for: %s", nym)
	}
	e.console.Text(out)
	return true
}

// a file wins over the argument, compose is the last resort
func (e *Engine) argumentOr(argument string, file string, prompt string) (string, bool) {
	if "" == file && "" != argument {
		return argument, true
	}
	return e.text(file, prompt)
}
