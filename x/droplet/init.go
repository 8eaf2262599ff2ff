package droplet

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse the configuration and the initial pools from genesis
// and save them to the database
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var pools []struct {
		Ticker        string `json:"ticker"`
		CollectionID  string `json:"collection_id"`
		WhitelistRoot []byte `json:"whitelist_root"`
	}
	if err := opts.ReadOptions("droplet_pools", &pools); err != nil {
		return err
	}

	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(db, opts, "droplet", &conf); {
	default:
		// All good.
	case errors.ErrNotFound.Is(err):
		if len(pools) != 0 {
			return errors.Wrap(errors.ErrState, "droplet pools require droplet configuration")
		}
		return nil
	case err != nil:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	b := NewPoolBucket()
	for i, p := range pools {
		pool := Pool{
			Metadata: &weave.Metadata{Schema: 1},
			Ticker:   p.Ticker,
			Collection: &CollectionDescriptor{
				CollectionID:  p.CollectionID,
				WhitelistRoot: p.WhitelistRoot,
			},
		}
		if err := pool.Validate(); err != nil {
			return errors.Wrapf(err, "pool %d is invalid", i)
		}
		switch err := b.Has(db, []byte(p.Ticker)); {
		case err == nil:
			return errors.Wrapf(errors.ErrDuplicate, "pool %d: %s", i, p.Ticker)
		case !errors.ErrNotFound.Is(err):
			return errors.Wrapf(err, "pool %d", i)
		}
		if _, err := b.Put(db, []byte(p.Ticker), &pool); err != nil {
			return errors.Wrapf(err, "store pool %d", i)
		}
	}
	return nil
}
