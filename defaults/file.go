// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package defaults

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/otclient/subject"
)

// FilePersister - defaults held in a YAML file
type FilePersister struct {
	filename string
}

// NewFilePersister - persister for the given file
func NewFilePersister(filename string) *FilePersister {
	return &FilePersister{
		filename: filepath.Clean(filename),
	}
}

// Filename - the file being used
func (f *FilePersister) Filename() string {
	return f.filename
}

// Load - read and decode the file
func (f *FilePersister) Load() (map[subject.Kind]string, error) {
	data, err := ioutil.ReadFile(f.filename)
	if nil != err {
		return nil, err
	}

	items := make(map[subject.Kind]string)
	err = yaml.Unmarshal(data, &items)
	if nil != err {
		return nil, err
	}
	return items, nil
}

// Save - write a new file and keep the previous one as .bk
func (f *FilePersister) Save(items map[subject.Kind]string) error {
	data, err := yaml.Marshal(items)
	if nil != err {
		return err
	}

	tempFile := f.filename + ".new"
	previousFile := f.filename + ".bk"

	_ = os.Remove(tempFile)
	err = ioutil.WriteFile(tempFile, data, 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(f.filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, f.filename)
}
