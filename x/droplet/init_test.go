package droplet

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenesis(t *testing.T) {
	Convey("Test initializer", t, func() {
		db := store.MemStore()
		migration.MustInitPkg(db, "droplet")

		var init Initializer

		Convey("Pools are loaded together with the configuration", func() {
			genesis := `
			{
				"conf": {
					"droplet": {
						"owner": "0000000000000000000000000000000000000001",
						"admin": "0000000000000000000000000000000000000002",
						"treasury": "0000000000000000000000000000000000000003",
						"droplets_per_asset": 1,
						"redeem_fee_bp": 250,
						"swap_fee_bp": 100,
						"distributor_share_bp": 5000,
						"banned_assets": ["stolen"]
					}
				},
				"droplet_pools": [
					{"ticker": "APE", "collection_id": "apes"},
					{"ticker": "WHL", "whitelist_root": "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="}
				]
			}`
			var opts weave.Options
			So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)
			So(init.FromGenesis(opts, weave.GenesisParams{}, db), ShouldBeNil)

			conf, err := loadConf(db)
			So(err, ShouldBeNil)
			So(conf.RedeemFeeBp, ShouldEqual, 250)
			So(conf.BannedAssets, ShouldResemble, []string{"stolen"})

			var ape Pool
			So(NewPoolBucket().One(db, []byte("APE"), &ape), ShouldBeNil)
			So(ape.AssetCount, ShouldEqual, 0)
			So(ape.Collection.CollectionID, ShouldEqual, "apes")

			var whl Pool
			So(NewPoolBucket().One(db, []byte("WHL"), &whl), ShouldBeNil)
			So(len(whl.Collection.WhitelistRoot), ShouldEqual, hashSize)
		})

		Convey("Duplicated pool is rejected", func() {
			genesis := `
			{
				"conf": {
					"droplet": {
						"owner": "0000000000000000000000000000000000000001",
						"admin": "0000000000000000000000000000000000000002",
						"treasury": "0000000000000000000000000000000000000003",
						"droplets_per_asset": 1
					}
				},
				"droplet_pools": [
					{"ticker": "APE", "collection_id": "apes"},
					{"ticker": "APE", "collection_id": "dogs"}
				]
			}`
			var opts weave.Options
			So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)
			err := init.FromGenesis(opts, weave.GenesisParams{}, db)
			So(errors.ErrDuplicate.Is(err), ShouldBeTrue)
		})

		Convey("Invalid pool is rejected", func() {
			genesis := `
			{
				"conf": {
					"droplet": {
						"owner": "0000000000000000000000000000000000000001",
						"admin": "0000000000000000000000000000000000000002",
						"treasury": "0000000000000000000000000000000000000003",
						"droplets_per_asset": 1
					}
				},
				"droplet_pools": [
					{"ticker": "APE"}
				]
			}`
			var opts weave.Options
			So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)
			err := init.FromGenesis(opts, weave.GenesisParams{}, db)
			So(err, ShouldNotBeNil)
		})

		Convey("Missing configuration is not an error", func() {
			var opts weave.Options
			So(json.Unmarshal([]byte(`{}`), &opts), ShouldBeNil)
			So(init.FromGenesis(opts, weave.GenesisParams{}, db), ShouldBeNil)
		})

		Convey("Pools without configuration are rejected", func() {
			genesis := `
			{
				"droplet_pools": [
					{"ticker": "APE", "collection_id": "apes"}
				]
			}`
			var opts weave.Options
			So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)
			err := init.FromGenesis(opts, weave.GenesisParams{}, db)
			So(errors.ErrState.Is(err), ShouldBeTrue)
			So(NewPoolBucket().Has(db, []byte("APE")), ShouldNotBeNil)
		})
	})
}
