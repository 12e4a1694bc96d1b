package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "auction operator CLI"
	app.Usage = "Command line interface for auctiond daemon operators"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "rpcserver",
			Usage: "auctiond daemon address",
			Value: "http://localhost:9000",
		},
		&cli.StringFlag{
			Name:     "caller",
			Usage:    "identity signing the call",
			Required: true,
		},
	}
	app.Commands = append(
		app.Commands,
		&mintcollection,
		&mint,
		&owner,
		&deposit,
		&balance,
		&start,
		&bid,
		&accept,
		&reject,
		&withdraw,
		&cancel,
		&listauctions,
		&auctionstatus,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[auction] %v\n", err)
	os.Exit(1)
}

func post(ctx *cli.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(
		http.MethodPost,
		ctx.String("rpcserver")+path,
		bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auction-Caller", ctx.String("caller"))

	return do(req)
}

func get(ctx *cli.Context, path string) error {
	req, err := http.NewRequest(http.MethodGet, ctx.String("rpcserver")+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Auction-Caller", ctx.String("caller"))

	return do(req)
}

func do(req *http.Request) error {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s: %s", resp.Status, string(data))
	}

	printRespJSON(data)
	return nil
}

func printRespJSON(data []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Println(out.String())
}
