package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/dropletswap/bucketd/cmd/bucketd/app"
	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestCmdSubmitTxHappyPath(t *testing.T) {
	event := droplet.DepositEvent{
		Ticker:      "APE",
		AssetID:     "a1",
		Holder:      weavetest.NewCondition().Address(),
		Destination: weavetest.NewCondition().Address(),
		AssetCount:  2,
	}
	data, err := event.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal event: %s", err)
	}
	tm, submitted := newSubmitTendermintServer(t, data)
	defer tm.Close()

	tx := &app.Tx{
		Sum: &app.Tx_DropletDepositMsg{
			DropletDepositMsg: &droplet.DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Ticker:   "APE",
				AssetID:  "a1",
				Holder:   event.Holder,
			},
		},
	}
	var input bytes.Buffer
	if _, err := writeTx(&input, tx); err != nil {
		t.Fatalf("cannot write transaction: %s", err)
	}
	var output bytes.Buffer
	args := []string{
		"-tm", tm.URL,
	}

	if err := cmdSubmitTransaction(&input, &output, args); err != nil {
		t.Fatalf("cannot submit the transaction: %s", err)
	}
	if !*submitted {
		t.Fatal("not submitted")
	}
	if !strings.HasPrefix(output.String(), `deposit of "a1" into APE`) {
		t.Fatalf("unexpected output: %q", output.String())
	}
}

func TestExtractResponse(t *testing.T) {
	holder := weavetest.NewCondition().Address()
	redeem := &app.Tx{
		Sum: &app.Tx_DropletRedeemMsg{
			DropletRedeemMsg: &droplet.RedeemMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Ticker:   "APE",
				AssetID:  "a1",
				Holder:   holder,
			},
		},
	}
	event := droplet.RedeemEvent{
		Ticker:         "APE",
		AssetID:        "a1",
		Holder:         holder,
		Destination:    holder,
		Swap:           true,
		DistributorFee: coin.NewCoinp(0, 5000000, "APE"),
		TreasuryFee:    coin.NewCoinp(0, 5000000, "APE"),
	}
	raw, err := event.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal event: %s", err)
	}

	got, err := extractResponse(redeem, raw, formatters)
	if err != nil {
		t.Fatalf("cannot extract response: %s", err)
	}
	if !strings.HasPrefix(got, `swap redeem of "a1" from APE`) {
		t.Fatalf("unexpected response: %q", got)
	}
	if !strings.Contains(got, "fees "+event.DistributorFee.String()+", "+event.TreasuryFee.String()) {
		t.Fatalf("fees missing: %q", got)
	}

	// Messages without a formatter produce no output.
	transfer := &app.Tx{
		Sum: &app.Tx_DropletCreatePoolMsg{
			DropletCreatePoolMsg: &droplet.CreatePoolMsg{Metadata: &weave.Metadata{Schema: 1}},
		},
	}
	got, err = extractResponse(transfer, []byte("ignored"), formatters)
	assert.Nil(t, err)
	assert.Equal(t, "", got)

	if _, err := extractResponse(redeem, []byte{0xff, 0xff}, formatters); err == nil {
		t.Fatal("want error for malformed event")
	}
}

func newSubmitTendermintServer(t *testing.T, deliverData []byte) (*httptest.Server, *bool) {
	t.Helper()

	var submitted bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := ioutil.ReadAll(r.Body)
		t.Logf("tendermint request: %s %s: %s", r.Method, r.URL.Path, string(b))

		if r.Method != "POST" || r.URL.Path != "/" {
			http.Error(w, "not implemented", http.StatusNotImplemented)
			return
		}
		var req struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(b, &req)
		io.WriteString(w, `
			{
				"jsonrpc": "2.0",
				"id": `+strconv.Quote(req.ID)+`,
				"result": {
					"check_tx": {},
					"deliver_tx": {"data": "`+base64.StdEncoding.EncodeToString(deliverData)+`"},
					"hash": "",
					"height": "12345"
				}
			}
		`)
		submitted = true
	}))
	return server, &submitted
}
