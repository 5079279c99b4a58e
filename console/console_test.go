// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package console_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/otclient/console"
	"github.com/bitmark-inc/otclient/fault"
	"github.com/bitmark-inc/otclient/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestStatusLines(t *testing.T) {
	buffer := &bytes.Buffer{}
	c := console.New(buffer, false)

	c.Successf("sent %d", 3)
	c.Partialf("accepted %d of %d", 1, 2)
	c.Failuref("failed")
	c.Field("balance", 10)

	assert.Equal(t, "[ok] sent 3\n[partial] accepted 1 of 2\n[error] failed\nbalance: 10\n", buffer.String(), "wrong plain output")

	buffer.Reset()
	c = console.New(buffer, true)
	c.Failuref("failed")
	assert.Equal(t, console.CoLightRed+"[error]"+console.CoReset+" failed\n", buffer.String(), "wrong coloured output")
}

func TestTable(t *testing.T) {
	buffer := &bytes.Buffer{}
	c := console.New(buffer, false)

	c.Table([]string{"id", "name"}, [][]string{{"N1", "alice"}, {"N22", "bob"}})

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	assert.Equal(t, 3, len(lines), "header plus two rows")
	assert.Equal(t, "N1   alice", lines[1], "aligned row")
}

func TestCompose(t *testing.T) {
	out := &bytes.Buffer{}
	r := console.NewReader(strings.NewReader("line one\nline two\n~\nignored\n"), out)

	text, err := r.Compose("paste the cheque")
	assert.Nil(t, err, "compose")
	assert.Equal(t, "line one\nline two\n", text, "wrong text")
	assert.Equal(t, "", out.String(), "no prompt without a terminal")

	r = console.NewReader(strings.NewReader("to end of input"), out)
	text, err = r.Compose("")
	assert.Nil(t, err, "compose to EOF")
	assert.Equal(t, "to end of input\n", text, "wrong text at EOF")

	r = console.NewReader(strings.NewReader("  \n~\n"), out)
	_, err = r.Compose("")
	assert.Equal(t, fault.ErrEmptyInput, err, "blank input")
}

func TestFiles(t *testing.T) {
	d := fixtures.TestDirectory("console")
	name := filepath.Join(d, "contract.txt")

	r := console.NewReader(strings.NewReader(""), &bytes.Buffer{})
	assert.Nil(t, r.WriteFile(name, "contract text"), "write")

	text, err := r.ReadFile(name)
	assert.Nil(t, err, "read")
	assert.Equal(t, "contract text", text, "round trip")

	_, err = r.ReadFile(filepath.Join(d, "missing.txt"))
	assert.NotNil(t, err, "missing file")
}
