package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/dropletswap/bucketd/cmd/bucketd/client"
	"github.com/dropletswap/bucketd/x/asset"
	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

func cmdInspectPool(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the state of a pool as JSON. When an asset is given, also print the
asset record and whether the pool holds it. When a holder is given, also print
the holder droplet balance and whether the holder has a swap pending.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", env("BUCKETCLI_TM_ADDR", "http://localhost:26657"),
			"Tendermint node address. You can use BUCKETCLI_TM_ADDR environment variable to set it.")
		tickerFl = fl.String("ticker", "", "Ticker of the pool.")
		assetFl  = fl.String("asset", "", "Optional ID of an asset.")
		holderFl = flAddress(fl, "holder", "", "Optional address of a droplet holder.")
	)
	fl.Parse(args)
	if *tickerFl == "" {
		flagDie("ticker is required")
	}

	bucketClient := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	info, err := inspectPool(bucketClient, *tickerFl, *assetFl, *holderFl)
	if err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(info, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = output.Write(pretty)
	return err
}

type poolInfo struct {
	Height int64        `json:"height"`
	Pool   droplet.Pool `json:"pool"`
	Asset  *assetInfo   `json:"asset,omitempty"`
	Holder *holderInfo  `json:"holder,omitempty"`
}

type assetInfo struct {
	asset.Asset
	InPool bool `json:"in_pool"`
}

type holderInfo struct {
	Droplets    coin.Coin `json:"droplets"`
	SwapPending bool      `json:"swap_pending"`
}

func inspectPool(c *client.BucketClient, ticker, assetID string, holder weave.Address) (*poolInfo, error) {
	pool, err := c.GetPool(ticker)
	if err != nil {
		return nil, fmt.Errorf("cannot get pool: %s", err)
	}
	if pool == nil {
		return nil, fmt.Errorf("pool %q not found", ticker)
	}
	info := poolInfo{Height: pool.Height, Pool: pool.Pool}

	if assetID != "" {
		a, err := c.GetAsset(assetID)
		if err != nil {
			return nil, fmt.Errorf("cannot get asset: %s", err)
		}
		if a == nil {
			return nil, fmt.Errorf("asset %q not found", assetID)
		}
		dep, err := c.GetDeposit(ticker, assetID)
		if err != nil {
			return nil, fmt.Errorf("cannot get deposit: %s", err)
		}
		info.Asset = &assetInfo{Asset: a.Asset, InPool: dep != nil}
	}

	if len(holder) != 0 {
		pending, err := c.GetSwapPending(ticker, holder)
		if err != nil {
			return nil, fmt.Errorf("cannot get swap state: %s", err)
		}
		w, err := c.GetWallet(holder)
		if err != nil {
			return nil, fmt.Errorf("cannot get wallet: %s", err)
		}
		h := holderInfo{
			Droplets:    coin.NewCoin(0, 0, ticker),
			SwapPending: pending,
		}
		if w != nil {
			for _, have := range w.Wallet.Coins {
				if have.Ticker == ticker {
					h.Droplets = *have
				}
			}
		}
		info.Holder = &h
	}
	return &info, nil
}
