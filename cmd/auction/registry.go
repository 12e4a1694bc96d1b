package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var mintcollection = cli.Command{
	Name:  "mintcollection",
	Usage: "mint a new collection owned by the caller",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name", Required: true},
		&cli.StringFlag{Name: "symbol", Required: true},
		&cli.StringFlag{Name: "uri", Required: true},
	},
	Action: mintCollectionAction,
}

var mint = cli.Command{
	Name:  "mint",
	Usage: "mint a new asset into an existing collection",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name", Required: true},
		&cli.StringFlag{Name: "symbol", Required: true},
		&cli.StringFlag{Name: "uri", Required: true},
		&cli.StringFlag{Name: "collection", Usage: "collection id", Required: true},
	},
	Action: mintAction,
}

var owner = cli.Command{
	Name:  "owner",
	Usage: "show the current holder of an asset",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "asset", Usage: "asset id", Required: true},
	},
	Action: ownerAction,
}

var deposit = cli.Command{
	Name:  "deposit",
	Usage: "credit the caller's currency account",
	Flags: []cli.Flag{
		&cli.Uint64Flag{Name: "amount", Usage: "amount in the smallest currency unit", Required: true},
	},
	Action: depositAction,
}

var balance = cli.Command{
	Name:   "balance",
	Usage:  "show the caller's currency balance",
	Action: balanceAction,
}

func mintCollectionAction(ctx *cli.Context) error {
	return post(ctx, "/v1/collections", map[string]interface{}{
		"name":   ctx.String("name"),
		"symbol": ctx.String("symbol"),
		"uri":    ctx.String("uri"),
	})
}

func mintAction(ctx *cli.Context) error {
	return post(ctx, "/v1/assets", map[string]interface{}{
		"name":          ctx.String("name"),
		"symbol":        ctx.String("symbol"),
		"uri":           ctx.String("uri"),
		"collection_id": ctx.String("collection"),
	})
}

func ownerAction(ctx *cli.Context) error {
	return get(ctx, fmt.Sprintf("/v1/assets/%s/owner", ctx.String("asset")))
}

func depositAction(ctx *cli.Context) error {
	return post(ctx, "/v1/accounts/deposit", map[string]interface{}{
		"amount": ctx.Uint64("amount"),
	})
}

func balanceAction(ctx *cli.Context) error {
	return get(ctx, fmt.Sprintf("/v1/accounts/%s/balance", ctx.String("caller")))
}
