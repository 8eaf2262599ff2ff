package droplet

import (
	"math/bits"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// bpUnit is the number of basis points that make a whole.
const bpUnit = 10000

// FeeSplit is the result of a fee computation. All values are expressed in
// fractional units of a droplet coin.
type FeeSplit struct {
	Total       uint64
	Distributor uint64
	Treasury    uint64
}

// SplitFee computes the fee charged for releasing a single asset and the way
// it is shared between the distributor and the treasury.
//
//   total       = dropletsPerAsset * unitScale * feeBp / 10000
//   distributor = total * distributorShareBp / 10000
//   treasury    = total - distributor
//
// Division rounds down, so any remainder of the distributor share goes to the
// treasury.
func SplitFee(feeBp uint32, dropletsPerAsset, unitScale uint64, distributorShareBp uint32) (FeeSplit, error) {
	if feeBp > bpUnit {
		return FeeSplit{}, errors.Wrapf(errors.ErrInput, "fee of %d bp exceeds 10000", feeBp)
	}
	if distributorShareBp > bpUnit {
		return FeeSplit{}, errors.Wrapf(errors.ErrInput, "distributor share of %d bp exceeds 10000", distributorShareBp)
	}

	amount, err := mulUint64(dropletsPerAsset, unitScale)
	if err != nil {
		return FeeSplit{}, errors.Wrap(err, "droplets per asset")
	}
	total, err := mulUint64(amount, uint64(feeBp))
	if err != nil {
		return FeeSplit{}, errors.Wrap(err, "fee")
	}
	total /= bpUnit

	distributor, err := mulUint64(total, uint64(distributorShareBp))
	if err != nil {
		return FeeSplit{}, errors.Wrap(err, "distributor share")
	}
	distributor /= bpUnit

	split := FeeSplit{
		Total:       total,
		Distributor: distributor,
		Treasury:    total - distributor,
	}
	if err := split.check(); err != nil {
		return FeeSplit{}, err
	}
	return split, nil
}

func (f FeeSplit) check() error {
	sum, carry := bits.Add64(f.Distributor, f.Treasury, 0)
	if carry != 0 || sum != f.Total {
		return errors.Wrapf(ErrFeeDistribution,
			"distributor %d and treasury %d do not sum up to %d", f.Distributor, f.Treasury, f.Total)
	}
	return nil
}

// Coins returns the distributor and the treasury share as coins of given
// ticker.
func (f FeeSplit) Coins(ticker string) (distributor, treasury coin.Coin, err error) {
	distributor, err = fracCoin(f.Distributor, ticker)
	if err != nil {
		return distributor, treasury, errors.Wrap(err, "distributor")
	}
	treasury, err = fracCoin(f.Treasury, ticker)
	if err != nil {
		return distributor, treasury, errors.Wrap(err, "treasury")
	}
	return distributor, treasury, nil
}

// fracCoin returns a coin worth given amount of fractional units.
func fracCoin(frac uint64, ticker string) (coin.Coin, error) {
	unit := uint64(coin.FracUnit)
	whole := frac / unit
	if whole > uint64(coin.MaxInt) {
		return coin.Coin{}, errors.Wrapf(errors.ErrOverflow, "%d units of %s", frac, ticker)
	}
	return coin.NewCoin(int64(whole), int64(frac%unit), ticker), nil
}

// wholeCoin returns a coin worth given amount of whole units.
func wholeCoin(whole uint64, ticker string) (coin.Coin, error) {
	if whole > uint64(coin.MaxInt) {
		return coin.Coin{}, errors.Wrapf(errors.ErrOverflow, "%d %s", whole, ticker)
	}
	return coin.NewCoin(int64(whole), 0, ticker), nil
}

func mulUint64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d", a, b)
	}
	return lo, nil
}
