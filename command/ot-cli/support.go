// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/otclient/subject"
)

var (
	errOperationFailed = errors.New("operation failed")
	errAmountRequired  = errors.New("amount is required")
	errAmountNotWhole  = errors.New("amount must be a whole number")
	errAmountNegative  = errors.New("amount must be positive")
	errAmountRange     = errors.New("amount is too large")

	errRecipientRequired = errors.New("at least one recipient is required")
	errIndexOutOfRange   = errors.New("nothing at that index")
	errLookupArguments   = errors.New("lookup needs a kind and a reference")
	errNotFound          = errors.New("not found")
)

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// map an engine result to the command exit status
func result(ok bool) error {
	if !ok {
		return errOperationFailed
	}
	return nil
}

func timeoutOf(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// reference from a flag, the default of the kind when the flag is empty
func checkSubject(c *cli.Context, flag string, kind subject.Kind) (string, error) {
	ref := c.String(flag)
	if "" != ref {
		return ref, nil
	}

	m := getMetadata(c)
	if m.dryrun {
		return "", nil
	}

	var id string
	var err error
	switch kind {
	case subject.Account:
		id, err = m.engine.AccountGetDefault()
	case subject.Asset:
		id, err = m.engine.AssetGetDefault()
	case subject.Nym:
		id, err = m.engine.NymGetDefault()
	case subject.Server:
		id, err = m.engine.ServerGetDefault()
	default:
		return "", fmt.Errorf("%s: no default for kind: %s", flag, kind)
	}
	if nil != err {
		return "", fmt.Errorf("%s: %s", flag, err)
	}
	if m.verbose {
		fmt.Fprintf(m.e, "%s: default %s: %s\n", flag, kind, id)
	}
	return "^" + id, nil
}

func checkRequired(c *cli.Context, flag string) (string, error) {
	s := c.String(flag)
	if "" == s {
		return "", fmt.Errorf("%s is required", flag)
	}
	return s, nil
}

// whole positive amounts only, converted to minor units
func checkAmount(s string) (int64, error) {
	if "" == s {
		return 0, errAmountRequired
	}
	d, err := decimal.NewFromString(s)
	if nil != err {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, errAmountNotWhole
	}
	if d.Sign() <= 0 {
		return 0, errAmountNegative
	}
	if d.GreaterThan(decimal.New(math.MaxInt64, 0)) {
		return 0, errAmountRange
	}
	return d.IntPart(), nil
}

// index -1 selects the newest item or composed input
func checkIndex(c *cli.Context) int32 {
	return int32(c.Int("index"))
}

func checkKind(s string) (subject.Kind, error) {
	return subject.Parse(s)
}
