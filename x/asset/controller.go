package asset

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller is the interface other extensions use to inspect and move
// assets.
type Controller interface {
	// Asset returns the asset with given ID.
	Asset(db weave.ReadOnlyKVStore, assetID string) (*Asset, error)
	// MoveAsset changes the owner of an asset. It fails if the asset is not
	// owned by src.
	MoveAsset(db weave.KVStore, assetID string, src, dest weave.Address) error
}

// NewController returns a controller backed by the asset bucket.
func NewController() Controller {
	return &controller{assets: NewAssetBucket()}
}

type controller struct {
	assets orm.ModelBucket
}

var _ Controller = (*controller)(nil)

func (c *controller) Asset(db weave.ReadOnlyKVStore, assetID string) (*Asset, error) {
	var a Asset
	if err := c.assets.One(db, []byte(assetID), &a); err != nil {
		return nil, errors.Wrapf(err, "asset %q", assetID)
	}
	return &a, nil
}

func (c *controller) MoveAsset(db weave.KVStore, assetID string, src, dest weave.Address) error {
	a, err := c.Asset(db, assetID)
	if err != nil {
		return err
	}
	if !a.Owner.Equals(src) {
		return errors.Wrapf(errors.ErrUnauthorized, "asset %q is not owned by %s", assetID, src)
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	a.Owner = dest
	if _, err := c.assets.Put(db, []byte(assetID), a); err != nil {
		return errors.Wrap(err, "store asset")
	}
	return nil
}
