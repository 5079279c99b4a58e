// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/otclient/addressbook"
	"github.com/bitmark-inc/otclient/configuration"
	"github.com/bitmark-inc/otclient/console"
	"github.com/bitmark-inc/otclient/defaults"
	"github.com/bitmark-inc/otclient/rpccalls"
	"github.com/bitmark-inc/otclient/workflow"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	dryrun  bool
	verbose bool
	log     *logger.L
	book    *addressbook.Store
	engine  *workflow.Engine
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	program           = "ot-cli"
	configurationFile = "ot-cli.conf"
)

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = program
	app.Usage = "client for an open transactions ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/ot-cli/ot-cli.conf]",
		},
		cli.BoolFlag{
			Name:  "dryrun, d",
			Usage: " check the arguments only, nothing is sent to the ledger",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = commands()

	// read the configuration and connect the engine
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			p := os.Getenv("XDG_CONFIG_HOME")
			if "" == p {
				return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
			}
			file = path.Join(p, program, configurationFile)
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		theConfiguration, err := configuration.GetConfiguration(file)
		if nil != err {
			return fmt.Errorf("failed to read configuration from: %q  error: %s", file, err)
		}

		if err = logger.Initialise(theConfiguration.Logging); nil != err {
			return fmt.Errorf("logger setup failed with error: %s", err)
		}
		log := logger.New("main")
		log.Infof("%s: version: %s  command: %s", program, version, command)

		book, err := addressbook.Open(theConfiguration.AddressBook, logger.New("addressbook"))
		if nil != err {
			log.Criticalf("address book: %q  error: %s", theConfiguration.AddressBook, err)
			return fmt.Errorf("address book: %q  error: %s", theConfiguration.AddressBook, err)
		}

		client, err := rpccalls.NewClient(ledgerOptions(theConfiguration, verbose, e), logger.New("rpccalls"))
		if nil != err {
			log.Criticalf("ledger client error: %s", err)
			book.Close()
			return err
		}

		engine := workflow.New(workflow.Options{
			Ledger:    client,
			Book:      book,
			Persister: defaults.NewFilePersister(theConfiguration.DefaultsFile),
			Console:   console.New(w, theConfiguration.Console.Colour),
			Input:     console.NewTerminal(w, theConfiguration.Console.EditorPrompt),
		}, logger.New("workflow"))

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  theConfiguration,
			dryrun:  c.GlobalBool("dryrun"),
			verbose: verbose,
			log:     log,
			book:    book,
			engine:  engine,
			e:       e,
			w:       w,
		}
		return nil
	}

	// close the session and the stores
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.engine.Close()
		if err := m.book.Close(); nil != err {
			m.log.Errorf("address book close error: %s", err)
		}
		m.log.Info("finished")
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", program, err)
	}
}

func ledgerOptions(config *configuration.Configuration, verbose bool, handle io.Writer) rpccalls.Options {
	l := config.Ledger
	return rpccalls.Options{
		Connect:           l.Connect,
		Certificate:       l.Certificate,
		Insecure:          l.Insecure,
		Timeout:           timeoutOf(l.Timeout),
		RequestsPerSecond: l.RequestsPerSecond,
		Burst:             l.Burst,
		DialAttempts:      l.DialAttempts,
		Verbose:           verbose,
		Handle:            handle,
	}
}
