package asset

import (
	"context"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions []weave.Condition
		Tx         weave.Tx
		WantErr    *errors.Error
	}

	var (
		issuerCond = weavetest.NewCondition()
		aliceCond  = weavetest.NewCondition()
		bobCond    = weavetest.NewCondition()
	)

	issue := func(id string, owner weave.Address) *weavetest.Tx {
		return &weavetest.Tx{
			Msg: &IssueAssetMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				AssetID:    id,
				Owner:      owner,
				Collection: "apes",
				URI:        "ipfs://" + id,
			},
		}
	}
	transfer := func(id string, dest weave.Address) *weavetest.Tx {
		return &weavetest.Tx{
			Msg: &TransferAssetMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				AssetID:     id,
				Destination: dest,
			},
		}
	}

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"issuer can issue an asset": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{issuerCond},
					Tx:         issue("a1", aliceCond.Address()),
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				a, err := NewController().Asset(db, "a1")
				if err != nil {
					t.Fatalf("cannot get asset: %s", err)
				}
				if !a.Owner.Equals(aliceCond.Address()) {
					t.Fatalf("unexpected owner: %s", a.Owner)
				}
				if a.URI != "ipfs://a1" || a.Collection != "apes" {
					t.Fatalf("unexpected asset: %+v", a)
				}
			},
		},
		"only the issuer can issue an asset": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx:         issue("a1", aliceCond.Address()),
					WantErr:    errors.ErrUnauthorized,
				},
			},
		},
		"asset cannot be issued twice": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{issuerCond},
					Tx:         issue("a1", aliceCond.Address()),
				},
				{
					Conditions: []weave.Condition{issuerCond},
					Tx:         issue("a1", bobCond.Address()),
					WantErr:    errors.ErrDuplicate,
				},
			},
		},
		"owner can transfer an asset": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{issuerCond},
					Tx:         issue("a1", aliceCond.Address()),
				},
				{
					Conditions: []weave.Condition{bobCond},
					Tx:         transfer("a1", bobCond.Address()),
					WantErr:    errors.ErrUnauthorized,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx:         transfer("a1", bobCond.Address()),
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx:         transfer("a1", aliceCond.Address()),
					WantErr:    errors.ErrUnauthorized,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var assets []Asset
				if _, err := NewAssetBucket().ByIndex(db, "owner", bobCond.Address(), &assets); err != nil {
					t.Fatalf("cannot query by owner: %s", err)
				}
				if len(assets) != 1 {
					t.Fatalf("want one asset owned by bob, got %d", len(assets))
				}
			},
		},
		"unknown asset cannot be transferred": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx:         transfer("a1", bobCond.Address()),
					WantErr:    errors.ErrNotFound,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "asset")

			config := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    issuerCond.Address(),
				Issuer:   issuerCond.Address(),
			}
			if err := gconf.Save(db, "asset", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth, NewController())

			for i, req := range tc.Requests {
				ctx := auth.SetConditions(context.Background(), req.Conditions...)
				if _, err := rt.Check(ctx, db, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				if _, err := rt.Deliver(ctx, db, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}
