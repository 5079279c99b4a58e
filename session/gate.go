// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"

	"github.com/bitmark-inc/otclient/fault"
)

// State - gate state
type State int

// gate states
const (
	Uninitialised State = iota
	Initialising
	Ready
	Errored
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case Initialising:
		return "initialising"
	case Ready:
		return "ready"
	case Errored:
		return "errored"
	default:
		return "*unknown*"
	}
}

// Connector - the part of the ledger service that opens a session
type Connector interface {
	Open() bool
	LoadWallet() bool
	Close()
}

// Gate - lazy session initialisation
type Gate struct {
	log       *logger.L
	tag       string
	connector Connector
	onReady   []func()
	state     State
	err       error
}

// New - create a gate in the uninitialised state
func New(connector Connector, log *logger.L) *Gate {
	return &Gate{
		log:       log,
		tag:       uuid.New().String(),
		connector: connector,
		state:     Uninitialised,
	}
}

// OnReady - register a function to run once after the first successful Init
func (g *Gate) OnReady(f func()) {
	g.onReady = append(g.onReady, f)
}

// Tag - session identifier used in log lines
func (g *Gate) Tag() string {
	return g.tag
}

// State - current state
func (g *Gate) State() State {
	return g.state
}

// Err - the error that moved the gate to Errored
func (g *Gate) Err() error {
	return g.err
}

// Init - open the session if necessary, true if the session is usable
func (g *Gate) Init() bool {
	switch g.state {
	case Ready:
		return true
	case Errored:
		g.log.Debugf("session: %s  previous failure: %s", g.tag, g.err)
		return false
	case Initialising:
		// re-entered from an OnReady hook
		return true
	}

	g.state = Initialising
	g.log.Infof("session: %s  initialising", g.tag)

	if !g.connector.Open() {
		return g.fail(fault.ErrLedgerConnectionFailure)
	}
	if !g.connector.LoadWallet() {
		return g.fail(fault.ErrWalletNotLoaded)
	}

	for _, f := range g.onReady {
		f()
	}

	g.state = Ready
	g.log.Infof("session: %s  ready", g.tag)
	return true
}

func (g *Gate) fail(err error) bool {
	g.err = err
	g.state = Errored
	g.log.Errorf("session: %s  error: %s", g.tag, err)
	return false
}

// Close - end the session if it was opened
func (g *Gate) Close() {
	if Ready != g.state {
		return
	}
	g.connector.Close()
	g.state = Uninitialised
	g.log.Infof("session: %s  closed", g.tag)
}
