// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package console

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/otclient/fault"
)

// EndOfText - a line holding only this ends composed input
const EndOfText = "~"

// Input - interactive text entry and file helpers
type Input interface {
	Compose(prompt string) (string, error)
	ReadFile(name string) (string, error)
	WriteFile(name string, text string) error
}

// Terminal - Input reading from a stream
type Terminal struct {
	in     io.Reader
	out    io.Writer
	prompt bool
}

// NewTerminal - compose from stdin, prompts are only shown on a real terminal
func NewTerminal(out io.Writer, prompt bool) *Terminal {
	return &Terminal{
		in:     os.Stdin,
		out:    out,
		prompt: prompt && terminal.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewReader - compose from any reader without prompts
func NewReader(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		prompt: false,
	}
}

// Compose - read lines until a line holding only "~" or end of input
func (t *Terminal) Compose(prompt string) (string, error) {
	if t.prompt {
		fmt.Fprintf(t.out, "%s (finish with a line containing only %s)\n", prompt, EndOfText)
	}

	lines := make([]string, 0, 20)
	scanner := bufio.NewScanner(t.in)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if EndOfText == strings.TrimSpace(line) {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); nil != err {
		return "", err
	}

	text := strings.Join(lines, "\n")
	if "" == strings.TrimSpace(text) {
		return "", fault.ErrEmptyInput
	}
	return text + "\n", nil
}

// ReadFile - whole file as text
func (t *Terminal) ReadFile(name string) (string, error) {
	data, err := ioutil.ReadFile(name)
	if nil != err {
		return "", err
	}
	return string(data), nil
}

// WriteFile - replace a file with text
func (t *Terminal) WriteFile(name string, text string) error {
	return ioutil.WriteFile(name, []byte(text), 0600)
}
