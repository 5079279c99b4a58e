// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/otclient/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDefaultsFile = "defaults.yaml"
	defaultAddressBook  = "addressbook.leveldb"

	defaultTimeout           = 30 // seconds
	defaultRequestsPerSecond = 10
	defaultBurst             = 5
	defaultDialAttempts      = 3

	defaultLogDirectory = "log"
	defaultLogFile      = "ot-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// LedgerType - connection to the ledger gateway
type LedgerType struct {
	Connect           string  `gluamapper:"connect" json:"connect"`
	Certificate       string  `gluamapper:"certificate" json:"certificate"`
	Insecure          bool    `gluamapper:"insecure" json:"insecure"`
	Timeout           int     `gluamapper:"timeout" json:"timeout"`
	RequestsPerSecond float64 `gluamapper:"requests_per_second" json:"requests_per_second"`
	Burst             int     `gluamapper:"burst" json:"burst"`
	DialAttempts      int     `gluamapper:"dial_attempts" json:"dial_attempts"`
}

// ConsoleType - terminal output
type ConsoleType struct {
	Colour       bool `gluamapper:"colour" json:"colour"`
	EditorPrompt bool `gluamapper:"editor_prompt" json:"editor_prompt"`
}

// Configuration - the whole client configuration
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	DefaultsFile  string               `gluamapper:"defaults_file" json:"defaults_file"`
	AddressBook   string               `gluamapper:"address_book" json:"address_book"`
	Ledger        LedgerType           `gluamapper:"ledger" json:"ledger"`
	Console       ConsoleType          `gluamapper:"console" json:"console"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		DefaultsFile:  defaultDefaultsFile,
		AddressBook:   defaultAddressBook,

		Ledger: LedgerType{
			Timeout:           defaultTimeout,
			RequestsPerSecond: defaultRequestsPerSecond,
			Burst:             defaultBurst,
			DialAttempts:      defaultDialAttempts,
		},

		Console: ConsoleType{
			Colour:       true,
			EditorPrompt: true,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if "" == options.Ledger.Connect {
		return nil, fault.ErrRequiredConnect
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrConfigDirPath
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.DefaultsFile,
		&options.AddressBook,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.Ledger.Certificate,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names
	mustNotBePaths := []*string{
		&options.Logging.File,
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f) {
		case "", ".":
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f)
		}
	}

	// create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// EnsureAbsolute - if path is relative, prefix it with directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
