package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestQueryIDEncoders(t *testing.T) {
	holder := fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282")

	cases := map[string]struct {
		path    string
		data    string
		want    []byte
		wantErr bool
	}{
		"pool ticker": {
			path: "/pools",
			data: "APE",
			want: []byte("APE"),
		},
		"deposit key": {
			path: "/deposits",
			data: "APE:a1",
			want: droplet.DepositKey("APE", "a1"),
		},
		"deposit without asset": {
			path:    "/deposits",
			data:    "APE:",
			wantErr: true,
		},
		"swap state key": {
			path: "/swapstates",
			data: "APE:b1ca7e78f74423ae01da3b51e676934d9105f282",
			want: droplet.SwapStateKey("APE", holder),
		},
		"swap state with invalid holder": {
			path:    "/swapstates",
			data:    "APE:zzz",
			wantErr: true,
		},
		"wallet address": {
			path: "/wallets",
			data: "b1ca7e78f74423ae01da3b51e676934d9105f282",
			want: holder,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := idEncoders[tc.path](tc.data)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQueryPathsHaveEncoders(t *testing.T) {
	for _, p := range queryPaths() {
		if _, ok := idEncoders[p]; !ok {
			t.Errorf("no encoder for %q", p)
		}
	}
}

func TestWriteModels(t *testing.T) {
	pool := droplet.Pool{
		Metadata:   &weave.Metadata{Schema: 1},
		Ticker:     "APE",
		AssetCount: 3,
		Collection: &droplet.CollectionDescriptor{CollectionID: "apes"},
	}
	raw, err := pool.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal pool: %s", err)
	}
	models := []weave.Model{{Key: []byte("pool:APE"), Value: raw}}

	var output bytes.Buffer
	if err := writeModels(&output, models, resultParser["/pools"]); err != nil {
		t.Fatalf("cannot write models: %s", err)
	}

	var got []droplet.Pool
	if err := json.Unmarshal(output.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode output: %s", err)
	}
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "APE", got[0].Ticker)
	assert.Equal(t, uint32(3), got[0].AssetCount)
	assert.Equal(t, "apes", got[0].Collection.CollectionID)
}
