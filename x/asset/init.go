package asset

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial assets from genesis and save them to the
// database
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(db, opts, "asset", &conf); {
	case err == nil, errors.ErrNotFound.Is(err):
		// Assets can be declared without a configuration.
	default:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	var assets []struct {
		ID         string        `json:"id"`
		Owner      weave.Address `json:"owner"`
		Collection string        `json:"collection"`
		URI        string        `json:"uri"`
	}
	if err := opts.ReadOptions("assets", &assets); err != nil {
		return err
	}
	b := NewAssetBucket()
	for i, a := range assets {
		if err := validateID(a.ID); err != nil {
			return errors.Wrapf(err, "asset %d: id", i)
		}
		asset := Asset{
			Metadata:   &weave.Metadata{Schema: 1},
			Owner:      a.Owner,
			Collection: a.Collection,
			URI:        a.URI,
		}
		if err := asset.Validate(); err != nil {
			return errors.Wrapf(err, "asset %d is invalid", i)
		}
		switch err := b.Has(db, []byte(a.ID)); {
		case err == nil:
			return errors.Wrapf(errors.ErrDuplicate, "asset %d: %q", i, a.ID)
		case !errors.ErrNotFound.Is(err):
			return errors.Wrapf(err, "asset %d", i)
		}
		if _, err := b.Put(db, []byte(a.ID), &asset); err != nil {
			return errors.Wrapf(err, "store asset %d", i)
		}
	}
	return nil
}
