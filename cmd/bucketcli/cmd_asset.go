package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/dropletswap/bucketd/cmd/bucketd/app"
	"github.com/dropletswap/bucketd/x/asset"
	"github.com/iov-one/weave"
)

func cmdIssueAsset(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for issuing a new asset. The transaction must be signed by
the configured issuer.
`)
		fl.PrintDefaults()
	}
	var (
		idFl         = fl.String("id", "", "Unique ID of the asset.")
		ownerFl      = flAddress(fl, "owner", "", "Address of the first owner of the asset.")
		collectionFl = fl.String("collection", "", "Collection the asset belongs to.")
		uriFl        = fl.String("uri", "", "Optional URI of the asset metadata.")
	)
	fl.Parse(args)

	tx := &app.Tx{
		Sum: &app.Tx_AssetIssueMsg{
			AssetIssueMsg: &asset.IssueAssetMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				AssetID:    *idFl,
				Owner:      *ownerFl,
				Collection: *collectionFl,
				URI:        *uriFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdTransferAsset(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for transferring an asset to a new owner. The transaction
must be signed by the current owner.
`)
		fl.PrintDefaults()
	}
	var (
		idFl  = fl.String("id", "", "ID of the transferred asset.")
		dstFl = flAddress(fl, "dst", "", "Address of the new owner.")
	)
	fl.Parse(args)

	tx := &app.Tx{
		Sum: &app.Tx_AssetTransferMsg{
			AssetTransferMsg: &asset.TransferAssetMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				AssetID:     *idFl,
				Destination: *dstFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdUpdateAssetConfiguration(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for updating the asset registry configuration. The
transaction must be signed by the configuration owner.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl  = flAddress(fl, "owner", "", "New configuration owner.")
		issuerFl = flAddress(fl, "issuer", "", "New address allowed to issue assets.")
	)
	fl.Parse(args)

	tx := &app.Tx{
		Sum: &app.Tx_AssetUpdateConfigurationMsg{
			AssetUpdateConfigurationMsg: &asset.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &asset.Configuration{
					Metadata: &weave.Metadata{Schema: 1},
					Owner:    *ownerFl,
					Issuer:   *issuerFl,
				},
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}
