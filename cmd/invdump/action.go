// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) QUILL NETWORK. All rights reserved.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/quill-network/quill-wire/pkg/p2p/wire/inventory"
	"github.com/urfave/cli"
)

func decodeAction(ctx *cli.Context) error {
	raw, err := inputBytes(ctx)
	if err != nil {
		return err
	}

	buf := bytes.NewBuffer(raw)

	if ctx.Bool("list") {
		inv := &inventory.Inv{}
		if err := inv.Decode(buf); err != nil {
			return err
		}

		for i := range inv.InvList {
			fmt.Printf("%4d  %s\n", i, inv.InvList[i].String())
		}

		return nil
	}

	for i := 0; buf.Len() > 0; i++ {
		var v inventory.InvVect
		if err := v.Decode(buf); err != nil {
			return errors.WithMessagef(err, "record %d", i)
		}

		fmt.Printf("%4d  %s\n", i, v.String())
	}

	return nil
}

func makeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one hash argument")
	}

	v, err := buildVect(ctx.String("type"), ctx.Args().First(), ctx.Bool("witness"))
	if err != nil {
		return err
	}

	b, err := v.MarshalBinary()
	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(b))
	return nil
}

func buildVect(kind, hash string, witness bool) (*inventory.InvVect, error) {
	switch kind {
	case "tx":
		return inventory.NewTxVectFromHex(hash, witness)
	case "block":
		return inventory.NewBlockVectFromHex(hash, witness)
	case "filtered-block":
		return inventory.NewFilteredBlockVectFromHex(hash, witness)
	case "cmpct-block":
		if witness {
			return nil, errors.New("cmpct-block has no witness variant")
		}
		return inventory.NewInvVectFromHex(inventory.InvTypeCmpctBlock, hash)
	default:
		return nil, errors.Errorf("unknown record type %q", kind)
	}
}

// inputBytes reads the hex argument, or stdin when the argument is "-",
// and decodes it.
func inputBytes(ctx *cli.Context) ([]byte, error) {
	if ctx.NArg() != 1 {
		return nil, errors.New("expected exactly one hex argument")
	}

	arg := ctx.Args().First()
	if arg == "-" {
		in, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		arg = string(in)
	}

	b, err := hex.DecodeString(strings.TrimSpace(arg))
	if err != nil {
		return nil, errors.WithMessage(err, "input is not valid hex")
	}

	return b, nil
}
