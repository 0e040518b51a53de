package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"

	"github.com/pistis-network/go-pistis/registry"
)

var (
	fromFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "Account the action is executed as",
	}
	numberFlag = &cli.Uint64Flag{
		Name:  "number",
		Usage: "Height the action is executed at",
	}
	randomFlag = &cli.StringFlag{
		Name:  "random",
		Usage: "Randomness seed mixed into business hash derivation",
	}
)

var commandExec = &cli.Command{
	Name:      "exec",
	Usage:     "execute a system action against the registry",
	ArgsUsage: "<action-json | @file>",
	Description: `
Executes one system action. The argument is either the JSON encoded action
itself or @path pointing at a file containing it, e.g.

    pistis exec --from 0xabc.. '{"action":"NS_SET_ROOT_OWNER","payload":{"owner":"0xabc.."}}'
`,
	Flags: []cli.Flag{
		fromFlag,
		numberFlag,
		randomFlag,
		jsonFlag,
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			Fatalf("Expected exactly one action argument")
		}
		data := []byte(ctx.Args().First())
		if strings.HasPrefix(string(data), "@") {
			content, err := os.ReadFile(string(data[1:]))
			if err != nil {
				Fatalf("Failed to read action file: %v", err)
			}
			data = content
		}
		if !common.IsHexAddress(ctx.String(fromFlag.Name)) {
			Fatalf("--from must be a hex account address")
		}
		from := common.HexToAddress(ctx.String(fromFlag.Name))
		random := common.HexToHash(ctx.String(randomFlag.Name))

		reg := makeRegistry(ctx)
		defer reg.Close()

		events := make(chan registry.Event, 16)
		sub := reg.SubscribeEvents(events)
		defer sub.Unsubscribe()

		if err := reg.Execute(from, ctx.Uint64(numberFlag.Name), random, data); err != nil {
			return err
		}
		for len(events) > 0 {
			ev := <-events
			if ctx.Bool(jsonFlag.Name) {
				mustPrintJSON(ev)
			} else {
				fmt.Printf("%T%+v\n", ev.Detail, ev.Detail)
			}
		}
		return nil
	},
}
