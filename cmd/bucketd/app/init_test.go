package app

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dropletswap/bucketd/x/asset"
	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/multisig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenInitOptions(t *testing.T) {
	cases := []struct {
		args []string
		cur  string
		addr string
	}{
		{nil, "DRP", ""},
		{[]string{"ONE"}, "ONE", ""},
		{[]string{"TWO", "1234567890"}, "TWO", "1234567890"},
		{[]string{"THR", "5238975983695", "FOO"}, "THR", "5238975983695"},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			val, err := GenInitOptions(tc.args)
			require.NoError(t, err)

			cc := fmt.Sprintf(`"ticker":"%s"`, tc.cur)
			assert.Contains(t, string(val), cc)

			ca := fmt.Sprintf(`"address":"%s"`, tc.addr)
			if tc.addr == "" {
				// we just know there is an address, not what it is
				ca = ca[:len(ca)-1]
			}
			assert.Contains(t, string(val), ca)
		})
	}

	_, err := GenInitOptions([]string{"not a ticker"})
	assert.Error(t, err)
}

func TestGenesisInitializesExtensions(t *testing.T) {
	raw, err := GenInitOptions([]string{"APE"})
	require.NoError(t, err)

	var opts weave.Options
	require.NoError(t, json.Unmarshal(raw, &opts))

	db := store.MemStore()
	init := app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&multisig.Initializer{},
		&asset.Initializer{},
		&droplet.Initializer{},
	)
	require.NoError(t, init.FromGenesis(opts, weave.GenesisParams{}, db))

	var pool droplet.Pool
	require.NoError(t, droplet.NewPoolBucket().One(db, []byte("APE"), &pool))
	assert.Equal(t, "dev", pool.Collection.CollectionID)
	assert.Equal(t, uint32(0), pool.AssetCount)

	var cashAccounts []struct {
		Address weave.Address `json:"address"`
	}
	require.NoError(t, opts.ReadOptions("cash", &cashAccounts))
	require.Len(t, cashAccounts, 1)

	coins, err := CashControl().Balance(db, cashAccounts[0].Address)
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.True(t, coins[0].Equals(coin.NewCoin(1000, 0, "APE")))
}
