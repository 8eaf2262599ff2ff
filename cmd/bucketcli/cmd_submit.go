package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dropletswap/bucketd/cmd/bucketd/client"
	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it.

For deposit and redeem transactions the emitted event is written out.

Make sure to collect enough signatures before submitting the transaction.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", env("BUCKETCLI_TM_ADDR", "http://localhost:26657"),
			"Tendermint node address. You can use BUCKETCLI_TM_ADDR environment variable to set it.")
	)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	bucketClient := client.NewClient(client.NewHTTPConnection(*tmAddrFl))

	resp := bucketClient.BroadcastTx(tx)
	if err := resp.IsError(); err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}

	out, err := extractResponse(tx, resp.Response.DeliverTx.Data, formatters)
	if err != nil {
		return fmt.Errorf("cannot extract response: %s", err)
	}
	if out != "" {
		fmt.Fprintln(output, out)
	}
	return nil
}

// extractResponse parse given raw response data bytes according to what is
// expected considering the submitted transaction. It returns a human readable
// representation of given response. It returns an empty string if the
// response does not contain anything worth showing to the user.
func extractResponse(tx weave.Tx, respData []byte, fmts map[string]func([]byte) (string, error)) (string, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return "", fmt.Errorf("cannot extract message from transaction: %s", err)
	}
	format, ok := fmts[msg.Path()]
	if !ok || len(respData) == 0 {
		return "", nil
	}
	pretty, err := format(respData)
	if err != nil {
		return "", fmt.Errorf("cannot format result data %x: %s", respData, err)
	}
	return pretty, nil
}

// formatters contains a mapping of a message path to response parser. Response
// parse function accepts a raw bytes of serialized response and must return a
// human representation of that data.
var formatters = map[string]func([]byte) (string, error){
	droplet.DepositMsg{}.Path(): fmtDepositEvent,
	droplet.RedeemMsg{}.Path():  fmtRedeemEvent,
}

func fmtDepositEvent(raw []byte) (string, error) {
	var e droplet.DepositEvent
	if err := e.Unmarshal(raw); err != nil {
		return "", fmt.Errorf("cannot parse deposit event: %s", err)
	}
	kind := "deposit"
	if e.Swap {
		kind = "swap deposit"
	}
	return fmt.Sprintf("%s of %q into %s by %s to %s, pool holds %d assets",
		kind, e.AssetID, e.Ticker, e.Holder, e.Destination, e.AssetCount), nil
}

func fmtRedeemEvent(raw []byte) (string, error) {
	var e droplet.RedeemEvent
	if err := e.Unmarshal(raw); err != nil {
		return "", fmt.Errorf("cannot parse redeem event: %s", err)
	}
	kind := "redeem"
	if e.Swap {
		kind = "swap redeem"
	}
	var fees []string
	for _, c := range []*coin.Coin{e.DistributorFee, e.TreasuryFee} {
		if c != nil && !c.IsZero() {
			fees = append(fees, c.String())
		}
	}
	feeInfo := "no fee"
	if len(fees) != 0 {
		feeInfo = "fees " + strings.Join(fees, ", ")
	}
	return fmt.Sprintf("%s of %q from %s by %s to %s, %s, pool holds %d assets",
		kind, e.AssetID, e.Ticker, e.Holder, e.Destination, feeInfo, e.AssetCount), nil
}
