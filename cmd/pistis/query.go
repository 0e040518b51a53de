package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/pistis-network/go-pistis/business"
	"github.com/pistis-network/go-pistis/nameservice"
)

var commandNameHash = &cli.Command{
	Name:      "namehash",
	Usage:     "print the node hash of a dotted name",
	ArgsUsage: "<name>",
	Action: func(ctx *cli.Context) error {
		fmt.Println(nameservice.NameHash(ctx.Args().First()).Hex())
		return nil
	},
}

var commandOwner = &cli.Command{
	Name:      "owner",
	Usage:     "print the ownership record of an identity node",
	ArgsUsage: "<node-hash | name>",
	Flags:     []cli.Flag{jsonFlag},
	Action: func(ctx *cli.Context) error {
		node := nodeArg(ctx)
		reg := makeRegistry(ctx)
		defer reg.Close()

		rec, ok := reg.NodeRecord(node)
		if !ok {
			Fatalf("Node %s has no ownership record", node.Hex())
		}
		out := struct {
			Node  common.Hash    `json:"node"`
			Owner common.Address `json:"owner"`
			TTL   uint64         `json:"ttl"`
		}{node, rec.Owner, rec.TTL}
		if ctx.Bool(jsonFlag.Name) {
			mustPrintJSON(out)
		} else {
			fmt.Println("Node: ", out.Node.Hex())
			fmt.Println("Owner:", out.Owner.Hex())
			fmt.Println("TTL:  ", out.TTL)
		}
		return nil
	},
}

var commandResolve = &cli.Command{
	Name:      "resolve",
	Usage:     "print the resolution record of an identity node",
	ArgsUsage: "<node-hash | name>",
	Flags:     []cli.Flag{jsonFlag},
	Action: func(ctx *cli.Context) error {
		node := nodeArg(ctx)
		reg := makeRegistry(ctx)
		defer reg.Close()

		rec, ok := reg.Resolve(node)
		if !ok {
			Fatalf("Node %s has no resolution record", node.Hex())
		}
		out := struct {
			Node    common.Hash    `json:"node"`
			Addr    common.Address `json:"addr"`
			Name    string         `json:"name"`
			Profile common.Hash    `json:"profile"`
			Zone    hexutil.Bytes  `json:"zone"`
		}{node, rec.Addr, string(rec.Name), rec.Profile, rec.Zone}
		if ctx.Bool(jsonFlag.Name) {
			mustPrintJSON(out)
		} else {
			fmt.Println("Node:   ", out.Node.Hex())
			fmt.Println("Addr:   ", out.Addr.Hex())
			fmt.Println("Name:   ", out.Name)
			fmt.Println("Profile:", out.Profile.Hex())
			fmt.Println("Zone:   ", string(out.Zone))
		}
		return nil
	},
}

var commandBusiness = &cli.Command{
	Name:      "business",
	Usage:     "print a business record",
	ArgsUsage: "<business-hash>",
	Flags:     []cli.Flag{jsonFlag},
	Action: func(ctx *cli.Context) error {
		biz := hashArg(ctx)
		reg := makeRegistry(ctx)
		defer reg.Close()

		b, ok := reg.Business(biz)
		if !ok {
			Fatalf("Business %s not found", biz.Hex())
		}
		out := struct {
			Business   common.Hash    `json:"business"`
			Creator    common.Address `json:"creator"`
			Owner      common.Hash    `json:"owner"`
			Name       string         `json:"name"`
			Expiration uint64         `json:"expiration"`
			Whitelist  []common.Hash  `json:"whitelist"`
			Products   uint64         `json:"products"`
		}{biz, b.Creator, b.Owner, string(b.Name), b.Expiration, b.Whitelist, reg.ProductCount(biz)}
		if ctx.Bool(jsonFlag.Name) {
			mustPrintJSON(out)
			return nil
		}
		fmt.Println("Business:  ", out.Business.Hex())
		fmt.Println("Creator:   ", out.Creator.Hex())
		fmt.Println("Owner:     ", out.Owner.Hex())
		fmt.Println("Name:      ", out.Name)
		fmt.Println("Expiration:", out.Expiration)
		fmt.Println("Products:  ", out.Products)
		for _, h := range out.Whitelist {
			fmt.Println("Whitelist: ", h.Hex())
		}
		return nil
	},
}

var commandProducts = &cli.Command{
	Name:      "products",
	Usage:     "list the products of a business in creation order",
	ArgsUsage: "<business-hash>",
	Action: func(ctx *cli.Context) error {
		biz := hashArg(ctx)
		reg := makeRegistry(ctx)
		defer reg.Close()

		if _, ok := reg.Business(biz); !ok {
			Fatalf("Business %s not found", biz.Hex())
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Ordinal", "Product", "SeqID", "Records"})
		count := reg.ProductCount(biz)
		for i := uint64(0); i < count; i++ {
			hash, ok := reg.ProductIndex(biz, i)
			if !ok {
				Fatalf("Missing index entry at ordinal %d", i)
			}
			p, ok := reg.Product(hash)
			if !ok {
				Fatalf("Missing product %s", hash.Hex())
			}
			table.Append([]string{
				fmt.Sprintf("%d", i),
				hash.Hex(),
				string(p.SeqID),
				fmt.Sprintf("%d", len(p.Infos)),
			})
		}
		table.Render()
		return nil
	},
}

var commandProduct = &cli.Command{
	Name:      "product",
	Usage:     "print the provenance history of a product",
	ArgsUsage: "<business-hash> <seq-id>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			Fatalf("Expected a business hash and a sequence id")
		}
		biz := common.HexToHash(ctx.Args().Get(0))
		seqID := []byte(ctx.Args().Get(1))
		reg := makeRegistry(ctx)
		defer reg.Close()

		hash := business.ProductHash(biz, seqID)
		p, ok := reg.Product(hash)
		if !ok {
			Fatalf("Product %s not found", hash.Hex())
		}
		fmt.Println("Product:", hash.Hex())
		fmt.Println("SeqID:  ", string(p.SeqID))
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"#", "Creator", "Height", "Data Hash", "Extra"})
		for i, rec := range p.Infos {
			table.Append([]string{
				fmt.Sprintf("%d", i),
				rec.Creator.Hex(),
				fmt.Sprintf("%d", rec.CreatedAt),
				rec.DataHash.Hex(),
				string(rec.Extra),
			})
		}
		table.Render()
		return nil
	},
}

// nodeArg interprets the first argument as a node hash when it looks like
// one, and as a dotted name otherwise.
func nodeArg(ctx *cli.Context) common.Hash {
	arg := ctx.Args().First()
	if arg == "" {
		Fatalf("Expected a node hash or name argument")
	}
	if strings.HasPrefix(arg, "0x") {
		return common.HexToHash(arg)
	}
	return nameservice.NameHash(arg)
}

func hashArg(ctx *cli.Context) common.Hash {
	arg := ctx.Args().First()
	if !strings.HasPrefix(arg, "0x") {
		Fatalf("Expected a hex hash argument")
	}
	return common.HexToHash(arg)
}
