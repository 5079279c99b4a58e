// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subject

import (
	"strings"

	"github.com/bitmark-inc/otclient/fault"
)

// Kind - the identity space a name or identifier belongs to
type Kind int

// the closed set of subject kinds
const (
	Account Kind = iota
	Asset   Kind = iota
	Nym     Kind = iota
	Server  Kind = iota
)

// Prefix - marks a reference as a literal identifier
const Prefix = '^'

var kindNames = map[Kind]string{
	Account: "account",
	Asset:   "asset",
	Nym:     "nym",
	Server:  "server",
}

// Kinds - all kinds in their canonical order
func Kinds() []Kind {
	return []Kind{Account, Asset, Nym, Server}
}

// String - lower case name of the kind
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "*unknown*"
}

// Valid - true if the kind is one of the defined constants
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Parse - convert text to a kind, "user" is accepted as an alias
// for nym
func Parse(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if "user" == s {
		return Nym, nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return Account, fault.ErrInvalidSubjectKind
}

// IsLiteral - true if the reference carries the literal identifier prefix
func IsLiteral(ref string) bool {
	return "" != ref && Prefix == ref[0]
}

// Strip - remove exactly one prefix character
func Strip(ref string) string {
	if IsLiteral(ref) {
		return ref[1:]
	}
	return ref
}

// MarshalText - allows a kind to be used as a YAML/JSON map key
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fault.ErrInvalidSubjectKind
	}
	return []byte(k.String()), nil
}

// UnmarshalText - inverse of MarshalText
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := Parse(string(text))
	if nil != err {
		return err
	}
	*k = kind
	return nil
}
