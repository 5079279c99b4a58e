// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAmount(t *testing.T) {
	items := []struct {
		text   string
		amount int64
		err    error
	}{
		{"1", 1, nil},
		{"250", 250, nil},
		{"1e3", 1000, nil},
		{"100.00", 100, nil},
		{"", 0, errAmountRequired},
		{"0", 0, errAmountNegative},
		{"-5", 0, errAmountNegative},
		{"1.5", 0, errAmountNotWhole},
		{"99999999999999999999", 0, errAmountRange},
	}

	for i, item := range items {
		amount, err := checkAmount(item.text)
		assert.Equal(t, item.err, err, "%d: wrong error for: %q", i, item.text)
		assert.Equal(t, item.amount, amount, "%d: wrong amount for: %q", i, item.text)
	}
}

func TestCheckAmountInvalid(t *testing.T) {
	_, err := checkAmount("ten")
	assert.NotNil(t, err, "non numeric amount")
}

func TestResult(t *testing.T) {
	assert.Nil(t, result(true), "success")
	assert.Equal(t, errOperationFailed, result(false), "failure")
}
