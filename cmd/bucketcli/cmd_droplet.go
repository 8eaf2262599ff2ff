package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/dropletswap/bucketd/cmd/bucketd/app"
	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
)

func cmdCreatePool(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for registering a new pool. A pool admits either all
assets of a single collection or only the assets proven to belong to a
whitelist merkle root. Use the whitelist command to compute the root.
`)
		fl.PrintDefaults()
	}
	var (
		tickerFl     = fl.String("ticker", "", "Droplet ticker of the pool.")
		collectionFl = fl.String("collection", "", "Collection that all admitted assets must belong to.")
		rootFl       = flHex(fl, "whitelist-root", "", "Hex encoded merkle root of the admitted asset IDs.")
	)
	fl.Parse(args)

	if *tickerFl == "" {
		flagDie("ticker is required")
	}
	if (*collectionFl == "") == (len(*rootFl) == 0) {
		flagDie("exactly one of collection or whitelist-root must be provided")
	}

	tx := &app.Tx{
		Sum: &app.Tx_DropletCreatePoolMsg{
			DropletCreatePoolMsg: &droplet.CreatePoolMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Ticker:   *tickerFl,
				Collection: &droplet.CollectionDescriptor{
					CollectionID:  *collectionFl,
					WhitelistRoot: *rootFl,
				},
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdDeposit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for depositing an asset into a pool. The asset is moved
into the pool custody and droplets are minted to the destination.

With -swap flag no droplets are minted. Instead a swap is opened that must be
completed by redeeming another asset from the same pool.
`)
		fl.PrintDefaults()
	}
	var (
		tickerFl = fl.String("ticker", "", "Droplet ticker of the pool.")
		assetFl  = fl.String("asset", "", "ID of the deposited asset.")
		holderFl = flAddress(fl, "holder", "", "Address of the asset owner. The transaction must be signed by this account.")
		destFl   = flAddress(fl, "dst", "", "Optional address receiving the droplets. Holder is used if not provided.")
		swapFl   = fl.Bool("swap", false, "Open a swap instead of minting droplets.")
		proofFl  = flHexList(fl, "proof", "Comma separated hex encoded merkle proof for whitelist pools. Can be repeated.")
	)
	fl.Parse(args)

	if *tickerFl == "" || *assetFl == "" {
		flagDie("ticker and asset are required")
	}

	tx := &app.Tx{
		Sum: &app.Tx_DropletDepositMsg{
			DropletDepositMsg: &droplet.DepositMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Ticker:      *tickerFl,
				AssetID:     *assetFl,
				Swap:        *swapFl,
				Proof:       *proofFl,
				Holder:      *holderFl,
				Destination: *destFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdRedeem(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for redeeming an asset held by a pool. Droplets are burned
from the holder account together with the redeem fee and the asset is released
to the destination.

Use -swap flag to complete a swap opened with a swap deposit.
`)
		fl.PrintDefaults()
	}
	var (
		tickerFl      = fl.String("ticker", "", "Droplet ticker of the pool.")
		assetFl       = fl.String("asset", "", "ID of the redeemed asset.")
		holderFl      = flAddress(fl, "holder", "", "Address paying for the redeem. The transaction must be signed by this account.")
		destFl        = flAddress(fl, "dst", "", "Optional address receiving the asset. Holder is used if not provided.")
		swapFl        = fl.Bool("swap", false, "Complete a pending swap.")
		distributorFl = flAddress(fl, "distributor", "", "Address receiving the distributor part of the fee.")
		treasuryFl    = flAddress(fl, "treasury", "", "Treasury address. Must match the configured treasury.")
	)
	fl.Parse(args)

	if *tickerFl == "" || *assetFl == "" {
		flagDie("ticker and asset are required")
	}

	tx := &app.Tx{
		Sum: &app.Tx_DropletRedeemMsg{
			DropletRedeemMsg: &droplet.RedeemMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Ticker:      *tickerFl,
				AssetID:     *assetFl,
				Holder:      *holderFl,
				Destination: *destFl,
				Swap:        *swapFl,
				Distributor: *distributorFl,
				Treasury:    *treasuryFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdUpdateDropletConfiguration(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for updating the droplet extension configuration. The
patch must describe a complete, valid configuration. The transaction must be
signed by the configuration owner.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl       = flAddress(fl, "owner", "", "New configuration owner.")
		adminFl       = flAddress(fl, "admin", "", "New admin allowed to create pools.")
		treasuryFl    = flAddress(fl, "treasury", "", "New treasury address.")
		perAssetFl    = fl.Uint64("droplets-per-asset", 0, "Whole droplets minted for a single deposited asset.")
		redeemFeeFl   = fl.Uint("redeem-fee", 0, "Redeem fee in basis points.")
		swapFeeFl     = fl.Uint("swap-fee", 0, "Swap fee in basis points.")
		distributorFl = fl.Uint("distributor-share", 0, "Part of the fee paid to the distributor, in basis points.")
		bannedFl      = flStrings(fl, "banned", "Comma separated list of banned asset IDs.")
	)
	fl.Parse(args)

	tx := &app.Tx{
		Sum: &app.Tx_DropletUpdateConfigurationMsg{
			DropletUpdateConfigurationMsg: &droplet.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &droplet.Configuration{
					Metadata:           &weave.Metadata{Schema: 1},
					Owner:              *ownerFl,
					Admin:              *adminFl,
					Treasury:           *treasuryFl,
					DropletsPerAsset:   *perAssetFl,
					RedeemFeeBp:        uint32(*redeemFeeFl),
					SwapFeeBp:          uint32(*swapFeeFl),
					DistributorShareBp: uint32(*distributorFl),
					BannedAssets:       *bannedFl,
				},
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}
