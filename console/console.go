// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Console - status line writer
type Console struct {
	w      io.Writer
	colour bool
}

// New - create a console on a writer, colour adds ANSI codes
func New(w io.Writer, colour bool) *Console {
	return &Console{
		w:      w,
		colour: colour,
	}
}

// Writer - the underlying writer
func (c *Console) Writer() io.Writer {
	return c.w
}

// Successf - an operation completed
func (c *Console) Successf(format string, arguments ...interface{}) {
	c.line(CoLightGreen, "ok", format, arguments...)
}

// Partialf - a batch where only some items completed
func (c *Console) Partialf(format string, arguments ...interface{}) {
	c.line(CoLightYellow, "partial", format, arguments...)
}

// Warningf - something the user should know about
func (c *Console) Warningf(format string, arguments ...interface{}) {
	c.line(CoYellow, "warning", format, arguments...)
}

// Failuref - an operation failed
func (c *Console) Failuref(format string, arguments ...interface{}) {
	c.line(CoLightRed, "error", format, arguments...)
}

// Infof - plain informative line
func (c *Console) Infof(format string, arguments ...interface{}) {
	fmt.Fprintf(c.w, format+"\n", arguments...)
}

// Field - "name: value" with the name highlighted
func (c *Console) Field(name string, value interface{}) {
	fmt.Fprintf(c.w, "%s %v\n", c.paint(CoCyan, name+":"), value)
}

// Text - a block of text such as a contract or instrument
func (c *Console) Text(text string) {
	fmt.Fprint(c.w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(c.w)
	}
}

// Table - aligned columns under a highlighted header
func (c *Console) Table(header []string, rows [][]string) {
	tw := tabwriter.NewWriter(c.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, c.paint(CoBright, strings.Join(header, "\t")))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func (c *Console) line(colour string, label string, format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	fmt.Fprintf(c.w, "%s %s\n", c.paint(colour, "["+label+"]"), message)
}
