package asset

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func TestControllerMoveAsset(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "asset")

	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	a := Asset{
		Metadata:   &weave.Metadata{Schema: 1},
		Owner:      alice,
		Collection: "apes",
	}
	if _, err := NewAssetBucket().Put(db, []byte("a1"), &a); err != nil {
		t.Fatalf("cannot store asset: %s", err)
	}

	ctrl := NewController()

	if err := ctrl.MoveAsset(db, "a1", bob, alice); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("only the owner can move an asset: %+v", err)
	}
	if err := ctrl.MoveAsset(db, "a1", alice, weave.Address("x")); err == nil {
		t.Fatal("invalid destination accepted")
	}
	if err := ctrl.MoveAsset(db, "a2", alice, bob); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unknown asset moved: %+v", err)
	}
	if err := ctrl.MoveAsset(db, "a1", alice, bob); err != nil {
		t.Fatalf("cannot move asset: %s", err)
	}

	got, err := ctrl.Asset(db, "a1")
	if err != nil {
		t.Fatalf("cannot get asset: %s", err)
	}
	if !got.Owner.Equals(bob) {
		t.Fatalf("unexpected owner: %s", got.Owner)
	}
	if got.Collection != "apes" {
		t.Fatalf("collection changed: %q", got.Collection)
	}
}
