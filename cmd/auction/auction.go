package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var start = cli.Command{
	Name:  "start",
	Usage: "start an auction for an owned asset",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "asset", Usage: "asset id to put up for sale", Required: true},
		&cli.Int64Flag{Name: "start_time", Usage: "auction start time as unix timestamp"},
		&cli.Uint64Flag{Name: "floor_price", Usage: "minimum acceptable bid amount"},
	},
	Action: startAction,
}

var bid = cli.Command{
	Name:  "bid",
	Usage: "place or update a bid on an active auction",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "auction", Usage: "auction id", Required: true},
		&cli.Uint64Flag{Name: "amount", Usage: "bid amount in the smallest currency unit", Required: true},
	},
	Action: bidAction,
}

var accept = cli.Command{
	Name:  "accept",
	Usage: "accept a recorded bid and settle the auction",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "auction", Usage: "auction id", Required: true},
		&cli.StringFlag{Name: "bidder", Usage: "winning bidder identity", Required: true},
	},
	Action: acceptAction,
}

var reject = cli.Command{
	Name:  "reject",
	Usage: "reject a named bidder's bid, keeping the auction active",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "auction", Usage: "auction id", Required: true},
		&cli.StringFlag{Name: "bidder", Usage: "bidder identity", Required: true},
	},
	Action: rejectAction,
}

var withdraw = cli.Command{
	Name:  "withdraw",
	Usage: "withdraw the caller's own bid",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "auction", Usage: "auction id", Required: true},
	},
	Action: withdrawAction,
}

var cancel = cli.Command{
	Name:  "cancel",
	Usage: "cancel an active auction and recover the asset",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "auction", Usage: "auction id", Required: true},
	},
	Action: cancelAction,
}

var listauctions = cli.Command{
	Name:   "list",
	Usage:  "list all auctions, terminal ones included",
	Action: listAction,
}

var auctionstatus = cli.Command{
	Name:  "status",
	Usage: "show an auction with its bid book",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "auction", Usage: "auction id", Required: true},
	},
	Action: statusAction,
}

func startAction(ctx *cli.Context) error {
	return post(ctx, "/v1/auctions", map[string]interface{}{
		"asset_id":    ctx.String("asset"),
		"start_time":  ctx.Int64("start_time"),
		"floor_price": ctx.Uint64("floor_price"),
	})
}

func bidAction(ctx *cli.Context) error {
	return post(
		ctx,
		fmt.Sprintf("/v1/auctions/%s/bids", ctx.String("auction")),
		map[string]interface{}{"amount": ctx.Uint64("amount")},
	)
}

func acceptAction(ctx *cli.Context) error {
	return post(
		ctx,
		fmt.Sprintf("/v1/auctions/%s/accept", ctx.String("auction")),
		map[string]interface{}{"bidder": ctx.String("bidder")},
	)
}

func rejectAction(ctx *cli.Context) error {
	return post(
		ctx,
		fmt.Sprintf("/v1/auctions/%s/reject", ctx.String("auction")),
		map[string]interface{}{"bidder": ctx.String("bidder")},
	)
}

func withdrawAction(ctx *cli.Context) error {
	return post(
		ctx,
		fmt.Sprintf("/v1/auctions/%s/withdraw", ctx.String("auction")),
		map[string]interface{}{},
	)
}

func cancelAction(ctx *cli.Context) error {
	return post(
		ctx,
		fmt.Sprintf("/v1/auctions/%s/cancel", ctx.String("auction")),
		map[string]interface{}{},
	)
}

func listAction(ctx *cli.Context) error {
	return get(ctx, "/v1/auctions")
}

func statusAction(ctx *cli.Context) error {
	return get(ctx, fmt.Sprintf("/v1/auctions/%s", ctx.String("auction")))
}
