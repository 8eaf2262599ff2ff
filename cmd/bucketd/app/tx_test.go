package app

import (
	"context"
	"testing"

	"github.com/dropletswap/bucketd/x/asset"
	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxGetMsg(t *testing.T) {
	msg := &droplet.DepositMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Ticker:   "APE",
		AssetID:  "a1",
		Holder:   weavetest.NewCondition().Address(),
	}
	tx := &Tx{
		Sum: &Tx_DropletDepositMsg{DropletDepositMsg: msg},
	}

	raw, err := tx.Marshal()
	require.NoError(t, err)

	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	got, err := decoded.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, "droplet/deposit", got.Path())

	dep, ok := got.(*droplet.DepositMsg)
	require.True(t, ok, "unexpected message type: %T", got)
	assert.Equal(t, msg.AssetID, dep.AssetID)
	assert.True(t, msg.Holder.Equals(dep.Holder))

	_, err = (&Tx{}).GetMsg()
	assert.Error(t, err)
}

func TestTxGetSignBytes(t *testing.T) {
	tx := &Tx{
		Sum: &Tx_AssetTransferMsg{
			AssetTransferMsg: &asset.TransferAssetMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				AssetID:     "a1",
				Destination: weavetest.NewCondition().Address(),
			},
		},
	}
	unsigned, err := tx.GetSignBytes()
	require.NoError(t, err)

	tx.Signatures = []*sigs.StdSignature{{Sequence: 7}}
	signed, err := tx.GetSignBytes()
	require.NoError(t, err)

	assert.Equal(t, unsigned, signed)
	assert.Len(t, tx.Signatures, 1, "signatures must be restored")
}

func TestRouterDispatchesTx(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "droplet", "asset", "cash")

	admin := weavetest.NewCondition()
	conf := droplet.Configuration{
		Metadata:         &weave.Metadata{Schema: 1},
		Owner:            admin.Address(),
		Admin:            admin.Address(),
		Treasury:         admin.Address(),
		DropletsPerAsset: 1,
	}
	require.NoError(t, gconf.Save(db, "droplet", &conf))

	auth := &weavetest.CtxAuth{Key: "auth"}
	ctx := auth.SetConditions(context.Background(), admin)
	rt := Router(auth)

	tx := &Tx{
		Sum: &Tx_DropletCreatePoolMsg{
			DropletCreatePoolMsg: &droplet.CreatePoolMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Ticker:     "APE",
				Collection: &droplet.CollectionDescriptor{CollectionID: "apes"},
			},
		},
	}
	_, err := rt.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = rt.Deliver(ctx, db, tx)
	require.NoError(t, err)

	var pool droplet.Pool
	require.NoError(t, droplet.NewPoolBucket().One(db, []byte("APE"), &pool))
	assert.Equal(t, "apes", pool.Collection.CollectionID)
}
