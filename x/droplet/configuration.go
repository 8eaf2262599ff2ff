package droplet

import (
	"math"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

var _ orm.Model = (*Configuration)(nil)

// maxDropletsPerAsset is the largest amount for which the fee computation
// of a full 10000 bp fee stays within uint64.
const maxDropletsPerAsset = math.MaxUint64 / (uint64(coin.FracUnit) * bpUnit)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	errs = errors.AppendField(errs, "Treasury", c.Treasury.Validate())
	switch {
	case c.DropletsPerAsset == 0:
		errs = errors.AppendField(errs, "DropletsPerAsset", errors.ErrEmpty)
	case c.DropletsPerAsset > maxDropletsPerAsset:
		errs = errors.AppendField(errs, "DropletsPerAsset", errors.ErrOverflow)
	}
	if c.RedeemFeeBp > bpUnit {
		errs = errors.AppendField(errs, "RedeemFeeBp", errors.Wrap(errors.ErrInput, "must not exceed 10000"))
	}
	if c.SwapFeeBp > bpUnit {
		errs = errors.AppendField(errs, "SwapFeeBp", errors.Wrap(errors.ErrInput, "must not exceed 10000"))
	}
	if c.DistributorShareBp > bpUnit {
		errs = errors.AppendField(errs, "DistributorShareBp", errors.Wrap(errors.ErrInput, "must not exceed 10000"))
	}
	for _, id := range c.BannedAssets {
		if id == "" {
			errs = errors.AppendField(errs, "BannedAssets", errors.ErrEmpty)
			break
		}
	}
	return errs
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "droplet", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
