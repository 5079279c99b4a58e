// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/otclient/subject"
)

func (c *Client) Count(kind subject.Kind) int32 {
	var result int32
	c.call("Ledger.Count", &Arguments{
		Kind: kind.String(),
	}, &result)
	return result
}

func (c *Client) IDAt(kind subject.Kind, index int32) string {
	var result string
	c.call("Ledger.IDAt", &Arguments{
		Kind:  kind.String(),
		Index: index,
	}, &result)
	return result
}

func (c *Client) NameOf(kind subject.Kind, id string) string {
	var result string
	c.call("Ledger.NameOf", &Arguments{
		Kind: kind.String(),
		ID:   id,
	}, &result)
	return result
}

func (c *Client) SetName(kind subject.Kind, id string, signer string, name string) bool {
	var result bool
	c.call("Ledger.SetName", &Arguments{
		Kind:   kind.String(),
		ID:     id,
		Signer: signer,
		Name:   name,
	}, &result)
	return result
}

func (c *Client) CanRemove(kind subject.Kind, id string) bool {
	var result bool
	c.call("Ledger.CanRemove", &Arguments{
		Kind: kind.String(),
		ID:   id,
	}, &result)
	return result
}

func (c *Client) Remove(kind subject.Kind, id string) bool {
	var result bool
	c.call("Ledger.Remove", &Arguments{
		Kind: kind.String(),
		ID:   id,
	}, &result)
	return result
}

func (c *Client) AddContract(kind subject.Kind, contract string) bool {
	var result bool
	c.call("Ledger.AddContract", &Arguments{
		Kind:     kind.String(),
		Contract: contract,
	}, &result)
	return result
}

func (c *Client) Contract(kind subject.Kind, id string) string {
	var result string
	c.call("Ledger.Contract", &Arguments{
		Kind: kind.String(),
		ID:   id,
	}, &result)
	return result
}

func (c *Client) CreateContract(kind subject.Kind, nym string, xml string) string {
	var result string
	c.call("Ledger.CreateContract", &Arguments{
		Kind: kind.String(),
		Nym:  nym,
		XML:  xml,
	}, &result)
	return result
}

func (c *Client) LoadAssetContract(asset string) string {
	var result string
	c.call("Ledger.LoadAssetContract", &Arguments{
		Asset: asset,
	}, &result)
	return result
}

func (c *Client) CreateNym(keyBits int32) string {
	var result string
	c.call("Ledger.CreateNym", &Arguments{
		KeyBits: keyBits,
	}, &result)
	return result
}

func (c *Client) ExportNym(nym string) string {
	var result string
	c.call("Ledger.ExportNym", &Arguments{
		Nym: nym,
	}, &result)
	return result
}

func (c *Client) ImportNym(data string) string {
	var result string
	c.call("Ledger.ImportNym", &Arguments{
		Data: data,
	}, &result)
	return result
}

func (c *Client) NymStats(nym string) string {
	var result string
	c.call("Ledger.NymStats", &Arguments{
		Nym: nym,
	}, &result)
	return result
}

func (c *Client) IsNymRegistered(nym string, server string) bool {
	var result bool
	c.call("Ledger.IsNymRegistered", &Arguments{
		Nym:    nym,
		Server: server,
	}, &result)
	return result
}
