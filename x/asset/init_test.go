package asset

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
		migration.MustInitPkg(db, "asset")

		var init Initializer

		Convey("Assets are loaded", func() {
			genesis := `
			{
				"conf": {
					"asset": {
						"owner": "0000000000000000000000000000000000000001",
						"issuer": "0000000000000000000000000000000000000001"
					}
				},
				"assets": [
					{"id": "a1", "owner": "0000000000000000000000000000000000000002", "collection": "apes", "uri": "ipfs://a1"},
					{"id": "a2", "owner": "0000000000000000000000000000000000000002", "collection": "apes"}
				]
			}`
			var opts weave.Options
			So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)
			So(init.FromGenesis(opts, weave.GenesisParams{}, db), ShouldBeNil)

			a, err := NewController().Asset(db, "a1")
			So(err, ShouldBeNil)
			So(a.Collection, ShouldEqual, "apes")
			So(a.URI, ShouldEqual, "ipfs://a1")

			conf, err := loadConf(db)
			So(err, ShouldBeNil)
			So(conf.Issuer.Equals(conf.Owner), ShouldBeTrue)
		})

		Convey("Assets do not require a configuration", func() {
			genesis := `
			{
				"assets": [
					{"id": "a1", "owner": "0000000000000000000000000000000000000002", "collection": "apes"}
				]
			}`
			var opts weave.Options
			So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)
			So(init.FromGenesis(opts, weave.GenesisParams{}, db), ShouldBeNil)

			_, err := NewController().Asset(db, "a1")
			So(err, ShouldBeNil)
		})

		Convey("Duplicated asset is rejected", func() {
			genesis := `
			{
				"assets": [
					{"id": "a1", "owner": "0000000000000000000000000000000000000002", "collection": "apes"},
					{"id": "a1", "owner": "0000000000000000000000000000000000000003", "collection": "dogs"}
				]
			}`
			var opts weave.Options
			So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)
			err := init.FromGenesis(opts, weave.GenesisParams{}, db)
			So(errors.ErrDuplicate.Is(err), ShouldBeTrue)
		})
	})
}
