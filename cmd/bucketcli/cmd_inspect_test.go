package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/dropletswap/bucketd/x/asset"
	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
)

func TestCmdInspectPool(t *testing.T) {
	holder := weavetest.NewCondition().Address()
	owner := droplet.CustodyAddress("APE", "a1")

	state := map[string]weave.Model{
		queryKey("/pools", []byte("APE")): mustModel(t, "pool:APE", &droplet.Pool{
			Metadata:   &weave.Metadata{Schema: 1},
			Ticker:     "APE",
			AssetCount: 1,
			Collection: &droplet.CollectionDescriptor{CollectionID: "apes"},
		}),
		queryKey("/assets", []byte("a1")): mustModel(t, "asset:a1", &asset.Asset{
			Metadata:   &weave.Metadata{Schema: 1},
			Owner:      owner,
			Collection: "apes",
		}),
		queryKey("/deposits", droplet.DepositKey("APE", "a1")): mustModel(t, "deposit:APE:a1", &droplet.Deposit{
			Metadata: &weave.Metadata{Schema: 1},
			Ticker:   "APE",
			AssetID:  "a1",
		}),
		queryKey("/swapstates", droplet.SwapStateKey("APE", holder)): mustModel(t, "swapstate:"+string(droplet.SwapStateKey("APE", holder)), &droplet.SwapState{
			Metadata: &weave.Metadata{Schema: 1},
			Ticker:   "APE",
			Holder:   holder,
			Pending:  true,
		}),
		queryKey("/wallets", holder): mustModel(t, "cash:"+string(holder), &cash.Set{
			Metadata: &weave.Metadata{Schema: 1},
			Coins: []*coin.Coin{
				coin.NewCoinp(3, 0, "DRP"),
				coin.NewCoinp(0, 500000000, "APE"),
			},
		}),
	}
	tm := newQueryTendermintServer(t, state)
	defer tm.Close()

	cases := map[string]struct {
		args       []string
		wantErr    string
		wantAsset  *assetInfo
		wantHolder *holderInfo
	}{
		"pool only": {
			args: []string{"-ticker", "APE"},
		},
		"pool with a deposited asset": {
			args: []string{"-ticker", "APE", "-asset", "a1"},
			wantAsset: &assetInfo{
				Asset:  asset.Asset{Owner: owner, Collection: "apes"},
				InPool: true,
			},
		},
		"pool with a holder": {
			args: []string{"-ticker", "APE", "-holder", holder.String()},
			wantHolder: &holderInfo{
				Droplets:    coin.NewCoin(0, 500000000, "APE"),
				SwapPending: true,
			},
		},
		"holder without wallet or swap state": {
			args: []string{"-ticker", "APE", "-holder", weavetest.NewCondition().Address().String()},
			wantHolder: &holderInfo{
				Droplets:    coin.NewCoin(0, 0, "APE"),
				SwapPending: false,
			},
		},
		"unknown pool": {
			args:    []string{"-ticker", "WHL"},
			wantErr: `pool "WHL" not found`,
		},
		"unknown asset": {
			args:    []string{"-ticker", "APE", "-asset", "a2"},
			wantErr: `asset "a2" not found`,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var output bytes.Buffer
			args := append([]string{"-tm", tm.URL}, tc.args...)
			err := cmdInspectPool(nil, &output, args)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("want %q error, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot inspect pool: %s", err)
			}

			var got struct {
				Height int64 `json:"height"`
				Pool   struct {
					Ticker     string `json:"ticker"`
					AssetCount uint32 `json:"asset_count"`
				} `json:"pool"`
				Asset *struct {
					Owner      weave.Address `json:"owner"`
					Collection string        `json:"collection"`
					InPool     bool          `json:"in_pool"`
				} `json:"asset"`
				Holder *struct {
					Droplets    coin.Coin `json:"droplets"`
					SwapPending bool      `json:"swap_pending"`
				} `json:"holder"`
			}
			if err := json.Unmarshal(output.Bytes(), &got); err != nil {
				t.Fatalf("cannot decode output: %s\n%s", err, output.String())
			}
			assert.Equal(t, int64(7), got.Height)
			assert.Equal(t, "APE", got.Pool.Ticker)
			assert.Equal(t, uint32(1), got.Pool.AssetCount)

			if tc.wantAsset == nil {
				assert.Nil(t, got.Asset)
			} else {
				if got.Asset == nil {
					t.Fatal("asset missing")
				}
				assert.Equal(t, tc.wantAsset.Owner, got.Asset.Owner)
				assert.Equal(t, tc.wantAsset.Collection, got.Asset.Collection)
				assert.Equal(t, tc.wantAsset.InPool, got.Asset.InPool)
			}

			if tc.wantHolder == nil {
				assert.Nil(t, got.Holder)
			} else {
				if got.Holder == nil {
					t.Fatal("holder missing")
				}
				if !tc.wantHolder.Droplets.Equals(got.Holder.Droplets) {
					t.Fatalf("want %s droplets, got %s", tc.wantHolder.Droplets, got.Holder.Droplets)
				}
				assert.Equal(t, tc.wantHolder.SwapPending, got.Holder.SwapPending)
			}
		})
	}
}

type marshaler interface {
	Marshal() ([]byte, error)
}

func mustModel(t testing.TB, key string, m marshaler) weave.Model {
	t.Helper()
	raw, err := m.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal %q: %s", key, err)
	}
	return weave.Model{Key: []byte(key), Value: raw}
}

func queryKey(path string, data []byte) string {
	return path + ":" + hex.EncodeToString(data)
}

// newQueryTendermintServer returns a tendermint RPC server that answers
// abci_query requests using given state. State is indexed by the query path
// and the hex encoded query data.
func newQueryTendermintServer(t *testing.T, state map[string]weave.Model) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     string `json:"id"`
			Method string `json:"method"`
			Params struct {
				Path string `json:"path"`
				Data string `json:"data"`
			} `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Method != "abci_query" {
			http.Error(w, "not implemented", http.StatusNotImplemented)
			return
		}
		data, err := hex.DecodeString(req.Params.Data)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		t.Logf("abci query: %s %q", req.Params.Path, data)

		response := `"height": "7"`
		if m, ok := state[queryKey(req.Params.Path, data)]; ok {
			keys, err := (&app.ResultSet{Results: [][]byte{m.Key}}).Marshal()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			values, err := (&app.ResultSet{Results: [][]byte{m.Value}}).Marshal()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			response = fmt.Sprintf(`"key": %q, "value": %q, "height": "7"`,
				base64.StdEncoding.EncodeToString(keys),
				base64.StdEncoding.EncodeToString(values))
		}
		io.WriteString(w, `
			{
				"jsonrpc": "2.0",
				"id": `+strconv.Quote(req.ID)+`,
				"result": {
					"response": {`+response+`}
				}
			}
		`)
	}))
}
