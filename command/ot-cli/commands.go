// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

const requiredUsage = "\n   (* = required)"

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:  "account",
			Usage: "accounts held on a server",
			Subcommands: []cli.Command{
				{
					Name:      "new",
					Usage:     "create a named account on the default server",
					ArgsUsage: requiredUsage,
					Flags:     []cli.Flag{nymFlag, assetFlag, nameFlag},
					Action:    runAccountCreate,
				},
				{
					Name:   "ls",
					Usage:  "list all accounts",
					Action: runAccountDisplayAll,
				},
				{
					Name:   "show",
					Usage:  "show one account",
					Flags:  []cli.Flag{accountFlag},
					Action: runAccountDisplay,
				},
				{
					Name:   "refresh",
					Usage:  "download the latest account state",
					Flags:  []cli.Flag{accountFlag, allFlag},
					Action: runAccountRefresh,
				},
				{
					Name:   "rm",
					Usage:  "delete an empty account",
					Flags:  []cli.Flag{accountFlag},
					Action: runAccountRemove,
				},
				{
					Name:      "mv",
					Usage:     "rename an account",
					ArgsUsage: requiredUsage,
					Flags:     []cli.Flag{accountFlag, nameFlag},
					Action:    runAccountRename,
				},
				{
					Name:      "transfer",
					Usage:     "transfer an amount to another account",
					ArgsUsage: requiredUsage,
					Flags: []cli.Flag{
						accountFlag,
						stringFlag("to", "*destination account `NAME` or ^ID"),
						amountFlag,
						stringFlag("note", " transfer `NOTE`"),
					},
					Action: runAccountTransfer,
				},
				{
					Name:   "set-default",
					Usage:  "make an account the default",
					Flags:  []cli.Flag{accountFlag},
					Action: runAccountSetDefault,
				},
			},
		},
		{
			Name:  "account-in",
			Usage: "account inbox",
			Subcommands: []cli.Command{
				{
					Name:   "ls",
					Usage:  "list the inbox",
					Flags:  []cli.Flag{accountFlag},
					Action: runAccountInDisplay,
				},
				{
					Name:   "accept",
					Usage:  "accept an inbox item or all of them",
					Flags:  []cli.Flag{accountFlag, firstIndexFlag, allFlag},
					Action: runAccountInAccept,
				},
			},
		},
		{
			Name:  "account-out",
			Usage: "account outbox",
			Subcommands: []cli.Command{
				{
					Name:   "ls",
					Usage:  "list the outbox",
					Flags:  []cli.Flag{accountFlag},
					Action: runAccountOutDisplay,
				},
				{
					Name:   "cancel",
					Usage:  "cancel an outgoing payment of an account",
					Flags:  []cli.Flag{accountFlag, firstIndexFlag},
					Action: runAccountOutCancel,
				},
			},
		},
		{
			Name:  "addressbook",
			Usage: "per nym contacts",
			Subcommands: []cli.Command{
				{
					Name:      "add",
					Usage:     "add a contact",
					ArgsUsage: requiredUsage,
					Flags:     []cli.Flag{nymFlag, nameFlag, stringFlag("id", "*contact nym `ID`")},
					Action:    runAddressBookAdd,
				},
				{
					Name:   "ls",
					Usage:  "list contacts",
					Flags:  []cli.Flag{nymFlag},
					Action: runAddressBookDisplay,
				},
				{
					Name:      "rm",
					Usage:     "remove a contact",
					ArgsUsage: requiredUsage,
					Flags:     []cli.Flag{nymFlag, stringFlag("contact", "*contact `NAME` or ^ID")},
					Action:    runAddressBookRemove,
				},
			},
		},
		{
			Name:  "asset",
			Usage: "asset contracts",
			Subcommands: []cli.Command{
				{
					Name:   "add",
					Usage:  "add a signed asset contract",
					Flags:  []cli.Flag{fileFlag},
					Action: runAssetAdd,
				},
				{
					Name:   "ls",
					Usage:  "list all assets",
					Action: runAssetDisplayAll,
				},
				{
					Name:   "issue",
					Usage:  "issue an asset on a server",
					Flags:  []cli.Flag{serverFlag, nymFlag, fileFlag},
					Action: runAssetIssue,
				},
				{
					Name:   "new",
					Usage:  "create and sign an asset contract",
					Flags:  []cli.Flag{nymFlag, fileFlag},
					Action: runAssetNew,
				},
				{
					Name:   "rm",
					Usage:  "remove an unused asset",
					Flags:  []cli.Flag{assetFlag},
					Action: runAssetRemove,
				},
				{
					Name:   "show-contract",
					Usage:  "print or save an asset contract",
					Flags:  []cli.Flag{assetFlag, fileFlag},
					Action: runAssetShowContract,
				},
				{
					Name:   "set-default",
					Usage:  "make an asset the default",
					Flags:  []cli.Flag{assetFlag},
					Action: runAssetSetDefault,
				},
			},
		},
		{
			Name:  "cash",
			Usage: "cash purses",
			Subcommands: []cli.Command{
				{
					Name:      "withdraw",
					Usage:     "withdraw cash into the local purse",
					ArgsUsage: requiredUsage,
					Flags:     []cli.Flag{accountFlag, amountFlag},
					Action:    runCashWithdraw,
				},
				{
					Name:      "send",
					Usage:     "withdraw cash and send it to a recipient",
					ArgsUsage: requiredUsage,
					Flags:     []cli.Flag{accountFlag, recipientFlag, amountFlag},
					Action:    runCashSend,
				},
				{
					Name:  "export",
					Usage: "export the purse of an account's asset",
					Flags: []cli.Flag{
						accountFlag,
						nymFlag,
						recipientFlag,
						cli.BoolFlag{
							Name:  "password, p",
							Usage: " protect the exported purse with a password instead of a recipient",
						},
					},
					Action: runCashExport,
				},
				{
					Name:   "import",
					Usage:  "import a purse",
					Flags:  []cli.Flag{nymFlag, fileFlag},
					Action: runCashImport,
				},
				{
					Name:   "deposit",
					Usage:  "deposit a purse, or the local purse, into an account",
					Flags:  []cli.Flag{accountFlag, fileFlag},
					Action: runCashDeposit,
				},
				{
					Name:   "show",
					Usage:  "list the local purse of an account's owner",
					Flags:  []cli.Flag{accountFlag},
					Action: runCashShow,
				},
			},
		},
		{
			Name:  "cheque",
			Usage: "cheques",
			Subcommands: []cli.Command{
				{
					Name:      "new",
					Usage:     "write a cheque",
					ArgsUsage: requiredUsage,
					Flags:     []cli.Flag{accountFlag, recipientFlag, amountFlag, memoFlag},
					Action:    runChequeCreate,
				},
				{
					Name:   "discard",
					Usage:  "discard an unsent cheque",
					Flags:  []cli.Flag{accountFlag, nymFlag, indexFlag},
					Action: runChequeDiscard,
				},
			},
		},
		{
			Name:  "voucher",
			Usage: "vouchers",
			Subcommands: []cli.Command{
				{
					Name:      "new",
					Usage:     "withdraw a voucher payable to a recipient",
					ArgsUsage: requiredUsage,
					Flags:     []cli.Flag{accountFlag, nymFlag, recipientFlag, amountFlag, memoFlag},
					Action:    runVoucherWithdraw,
				},
				{
					Name:   "cancel",
					Usage:  "deposit an unsent voucher back",
					Flags:  []cli.Flag{accountFlag, nymFlag, indexFlag},
					Action: runVoucherCancel,
				},
			},
		},
		{
			Name:  "payment",
			Usage: "payment inbox",
			Subcommands: []cli.Command{
				{
					Name:   "accept",
					Usage:  "accept an incoming payment or all of them",
					Flags:  []cli.Flag{accountFlag, indexFlag, allFlag},
					Action: runPaymentAccept,
				},
				{
					Name:   "ls",
					Usage:  "list the payment inbox",
					Flags:  []cli.Flag{nymFlag, serverFlag},
					Action: runPaymentShow,
				},
				{
					Name:   "discard",
					Usage:  "discard an incoming payment",
					Flags:  []cli.Flag{nymFlag, indexFlag, allFlag},
					Action: runPaymentDiscard,
				},
				{
					Name:   "discard-all",
					Usage:  "discard every incoming payment of every nym",
					Action: runPaymentDiscardAll,
				},
				{
					Name:   "info",
					Usage:  "describe an instrument",
					Flags:  []cli.Flag{fileFlag},
					Action: runPrintInstrumentInfo,
				},
			},
		},
		{
			Name:  "outpayment",
			Usage: "outgoing payments",
			Subcommands: []cli.Command{
				{
					Name:   "ls",
					Usage:  "list outgoing payments",
					Flags:  []cli.Flag{nymFlag},
					Action: runOutpaymentDisplay,
				},
				{
					Name:   "show",
					Usage:  "show and verify an outgoing payment",
					Flags:  []cli.Flag{nymFlag, firstIndexFlag},
					Action: runOutpaymentShow,
				},
				{
					Name:   "send",
					Usage:  "send an outgoing payment or all of them",
					Flags:  []cli.Flag{nymFlag, recipientFlag, firstIndexFlag, allFlag},
					Action: runOutpaymentSend,
				},
				{
					Name:   "rm",
					Usage:  "remove an outgoing payment or all of them",
					Flags:  []cli.Flag{nymFlag, firstIndexFlag, allFlag},
					Action: runOutpaymentRemove,
				},
				{
					Name:   "discard",
					Usage:  "cancel an outgoing payment according to its type",
					Flags:  []cli.Flag{accountFlag, nymFlag, firstIndexFlag},
					Action: runOutpaymentDiscard,
				},
			},
		},
		{
			Name:  "nym",
			Usage: "identities",
			Subcommands: []cli.Command{
				{
					Name:      "new",
					Usage:     "create a nym",
					ArgsUsage: requiredUsage,
					Flags: []cli.Flag{
						nameFlag,
						cli.BoolFlag{
							Name:  "register",
							Usage: " register on the default server",
						},
					},
					Action: runNymCreate,
				},
				{
					Name:   "check",
					Usage:  "download the public key of a nym",
					Flags:  []cli.Flag{recipientFlag},
					Action: runNymCheck,
				},
				{
					Name:   "ls",
					Usage:  "list all nyms",
					Action: runNymDisplayAll,
				},
				{
					Name:   "info",
					Usage:  "show nym statistics",
					Flags:  []cli.Flag{nymFlag},
					Action: runNymDisplayInfo,
				},
				{
					Name:   "export",
					Usage:  "export a nym",
					Flags:  []cli.Flag{nymFlag, fileFlag},
					Action: runNymExport,
				},
				{
					Name:   "import",
					Usage:  "import an exported nym",
					Flags:  []cli.Flag{fileFlag},
					Action: runNymImport,
				},
				{
					Name:   "refresh",
					Usage:  "download a nym from its servers",
					Flags:  []cli.Flag{nymFlag, allFlag},
					Action: runNymRefresh,
				},
				{
					Name:   "register",
					Usage:  "register a nym on the default server",
					Flags:  []cli.Flag{nymFlag},
					Action: runNymRegister,
				},
				{
					Name:   "rm",
					Usage:  "remove an unused nym",
					Flags:  []cli.Flag{nymFlag},
					Action: runNymRemove,
				},
				{
					Name:      "mv",
					Usage:     "rename a nym",
					ArgsUsage: requiredUsage,
					Flags:     []cli.Flag{nymFlag, nameFlag},
					Action:    runNymRename,
				},
				{
					Name:   "set-default",
					Usage:  "make a nym the default",
					Flags:  []cli.Flag{nymFlag},
					Action: runNymSetDefault,
				},
			},
		},
		{
			Name:  "server",
			Usage: "notary servers",
			Subcommands: []cli.Command{
				{
					Name:   "add",
					Usage:  "add a server contract",
					Flags:  []cli.Flag{fileFlag},
					Action: runServerAdd,
				},
				{
					Name:   "new",
					Usage:  "create and sign a server contract",
					Flags:  []cli.Flag{nymFlag, fileFlag},
					Action: runServerCreate,
				},
				{
					Name:   "check",
					Usage:  "ping the default server as the default nym",
					Action: runServerCheck,
				},
				{
					Name:   "ls",
					Usage:  "list all servers",
					Action: runServerDisplayAll,
				},
				{
					Name:   "rm",
					Usage:  "remove an unused server",
					Flags:  []cli.Flag{serverFlag},
					Action: runServerRemove,
				},
				{
					Name:   "show-contract",
					Usage:  "print or save a server contract",
					Flags:  []cli.Flag{serverFlag, fileFlag},
					Action: runServerShowContract,
				},
				{
					Name:   "ping",
					Usage:  "check the connection to a server",
					Flags:  []cli.Flag{serverFlag, nymFlag},
					Action: runServerPing,
				},
				{
					Name:   "set-default",
					Usage:  "make a server the default",
					Flags:  []cli.Flag{serverFlag},
					Action: runServerSetDefault,
				},
			},
		},
		{
			Name:  "msg",
			Usage: "nym mail",
			Subcommands: []cli.Command{
				{
					Name:      "send",
					Usage:     "send a message through the default server",
					ArgsUsage: "RECIPIENT...\n   (* = required)",
					Flags: []cli.Flag{
						nymFlag,
						stringFlag("subject", " message `SUBJECT`"),
						textFlag,
						fileFlag,
					},
					Action: runMsgSend,
				},
				{
					Name:   "ls",
					Usage:  "list the mail of a nym",
					Flags:  []cli.Flag{nymFlag},
					Action: runMsgDisplayForNym,
				},
				{
					Name:   "show",
					Usage:  "show an incoming message",
					Flags:  []cli.Flag{nymFlag, firstIndexFlag},
					Action: runMsgDisplayInbox,
				},
				{
					Name:   "show-out",
					Usage:  "show an outgoing message",
					Flags:  []cli.Flag{nymFlag, firstIndexFlag},
					Action: runMsgDisplayOutbox,
				},
				{
					Name:   "rm",
					Usage:  "remove an incoming message",
					Flags:  []cli.Flag{nymFlag, firstIndexFlag},
					Action: runMsgInRemove,
				},
				{
					Name:   "rm-out",
					Usage:  "remove an outgoing message",
					Flags:  []cli.Flag{nymFlag, firstIndexFlag},
					Action: runMsgOutRemove,
				},
			},
		},
		{
			Name:  "purse",
			Usage: "local purses",
			Subcommands: []cli.Command{
				{
					Name:  "new",
					Usage: "create an empty purse",
					Flags: []cli.Flag{
						serverFlag,
						assetFlag,
						nymFlag,
						stringFlag("signer", " signing nym `NAME` [owner]"),
					},
					Action: runPurseCreate,
				},
				{
					Name:   "show",
					Usage:  "list the tokens in a purse",
					Flags:  []cli.Flag{serverFlag, assetFlag, nymFlag},
					Action: runPurseDisplay,
				},
			},
		},
		{
			Name:  "record",
			Usage: "record box",
			Subcommands: []cli.Command{
				{
					Name:  "ls",
					Usage: "list the record box of an account",
					Flags: []cli.Flag{
						accountFlag,
						cli.BoolFlag{
							Name:  "no-verify",
							Usage: " load without verifying signatures",
						},
					},
					Action: runRecordDisplay,
				},
				{
					Name:   "clear",
					Usage:  "clear expired records, or all records",
					Flags:  []cli.Flag{accountFlag, allFlag},
					Action: runRecordClear,
				},
			},
		},
		{
			Name:  "text",
			Usage: "text armour and encryption",
			Subcommands: []cli.Command{
				{
					Name:   "encode",
					Usage:  "armour text",
					Flags:  []cli.Flag{textFlag, fileFlag, stringFlag("out, o", " write result to `FILE`")},
					Action: runTextEncode,
				},
				{
					Name:   "decode",
					Usage:  "remove text armour",
					Flags:  []cli.Flag{textFlag, fileFlag, stringFlag("out, o", " write result to `FILE`")},
					Action: runTextDecode,
				},
				{
					Name:      "encrypt",
					Usage:     "encrypt text for a nym",
					ArgsUsage: requiredUsage,
					Flags:     []cli.Flag{recipientFlag, textFlag},
					Action:    runTextEncrypt,
				},
				{
					Name:   "decrypt",
					Usage:  "decrypt text with a wallet nym",
					Flags:  []cli.Flag{nymFlag, textFlag},
					Action: runTextDecrypt,
				},
			},
		},
		{
			Name:   "market",
			Usage:  "list the markets of a server",
			Flags:  []cli.Flag{serverFlag, nymFlag},
			Action: runMarketList,
		},
		{
			Name:   "mint",
			Usage:  "show the mint of an asset",
			Flags:  []cli.Flag{serverFlag, nymFlag, assetFlag},
			Action: runMintShow,
		},
		{
			Name:      "lookup",
			Usage:     "show the name and identifier of a subject",
			ArgsUsage: "account|asset|nym|server NAME|^ID",
			Flags: []cli.Flag{
				stringFlag("owner, o", " address book owner `NYM` for nym lookups"),
			},
			Action: runLookup,
		},
		{
			Name:      "defaults",
			Usage:     "show the default of a kind, or of every kind",
			ArgsUsage: "[account|asset|nym|server]",
			Action:    runDefaults,
		},
		{
			Name:   "refresh",
			Usage:  "refresh every account and nym",
			Action: runRefresh,
		},
		{
			Name:  "version",
			Usage: "display ot-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
