package droplet

import (
	"math"
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFee(t *testing.T) {
	cases := map[string]struct {
		FeeBp              uint32
		DropletsPerAsset   uint64
		UnitScale          uint64
		DistributorShareBp uint32
		Want               FeeSplit
		WantErr            *errors.Error
	}{
		"redeem fee split in half": {
			FeeBp:              250,
			DropletsPerAsset:   1,
			UnitScale:          1000000000,
			DistributorShareBp: 5000,
			Want:               FeeSplit{Total: 25000000, Distributor: 12500000, Treasury: 12500000},
		},
		"zero fee": {
			FeeBp:              0,
			DropletsPerAsset:   10,
			UnitScale:          1000000000,
			DistributorShareBp: 5000,
			Want:               FeeSplit{},
		},
		"whole fee goes to the treasury": {
			FeeBp:              10000,
			DropletsPerAsset:   2,
			UnitScale:          1000,
			DistributorShareBp: 0,
			Want:               FeeSplit{Total: 2000, Distributor: 0, Treasury: 2000},
		},
		"whole fee goes to the distributor": {
			FeeBp:              100,
			DropletsPerAsset:   1,
			UnitScale:          1000000000,
			DistributorShareBp: 10000,
			Want:               FeeSplit{Total: 10000000, Distributor: 10000000, Treasury: 0},
		},
		"rounding remainder goes to the treasury": {
			FeeBp:              10000,
			DropletsPerAsset:   1,
			UnitScale:          10,
			DistributorShareBp: 3333,
			Want:               FeeSplit{Total: 10, Distributor: 3, Treasury: 7},
		},
		"distributor share is rounded down": {
			FeeBp:              1,
			DropletsPerAsset:   1,
			UnitScale:          30000,
			DistributorShareBp: 5000,
			Want:               FeeSplit{Total: 3, Distributor: 1, Treasury: 2},
		},
		"fee above one hundred percent": {
			FeeBp:              10001,
			DropletsPerAsset:   1,
			UnitScale:          1000000000,
			DistributorShareBp: 5000,
			WantErr:            errors.ErrInput,
		},
		"distributor share above one hundred percent": {
			FeeBp:              100,
			DropletsPerAsset:   1,
			UnitScale:          1000000000,
			DistributorShareBp: 10001,
			WantErr:            errors.ErrInput,
		},
		"amount overflow": {
			FeeBp:              100,
			DropletsPerAsset:   math.MaxUint64,
			UnitScale:          1000000000,
			DistributorShareBp: 5000,
			WantErr:            errors.ErrOverflow,
		},
		"fee overflow": {
			FeeBp:              10000,
			DropletsPerAsset:   math.MaxUint64 / 1000,
			UnitScale:          1000,
			DistributorShareBp: 5000,
			WantErr:            errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := SplitFee(tc.FeeBp, tc.DropletsPerAsset, tc.UnitScale, tc.DistributorShareBp)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestSplitFeeSumsUp(t *testing.T) {
	for feeBp := uint32(0); feeBp <= bpUnit; feeBp += 7 {
		for _, share := range []uint32{0, 1, 3333, 5000, 9999, 10000} {
			got, err := SplitFee(feeBp, 7, 1000000000, share)
			require.NoError(t, err)
			require.Equal(t, got.Total, got.Distributor+got.Treasury, "fee %d bp, share %d bp", feeBp, share)
			require.True(t, got.Distributor <= got.Total)
		}
	}
}

func TestFeeSplitCoins(t *testing.T) {
	split := FeeSplit{Total: 3500000001, Distributor: 1, Treasury: 3500000000}
	distributor, treasury, err := split.Coins("DRP")
	require.NoError(t, err)
	assert.True(t, distributor.Equals(coin.NewCoin(0, 1, "DRP")))
	assert.True(t, treasury.Equals(coin.NewCoin(3, 500000000, "DRP")))

	distributor, treasury, err = FeeSplit{}.Coins("DRP")
	require.NoError(t, err)
	assert.True(t, distributor.IsZero())
	assert.True(t, treasury.IsZero())
}

func TestWholeCoin(t *testing.T) {
	c, err := wholeCoin(42, "DRP")
	require.NoError(t, err)
	assert.True(t, c.Equals(coin.NewCoin(42, 0, "DRP")))

	_, err = wholeCoin(uint64(coin.MaxInt)+1, "DRP")
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestSplitFeeWithinConfigurationLimit(t *testing.T) {
	split, err := SplitFee(bpUnit, maxDropletsPerAsset, uint64(coin.FracUnit), bpUnit)
	require.NoError(t, err)
	_, _, err = split.Coins("DRP")
	require.NoError(t, err)

	_, err = SplitFee(bpUnit, maxDropletsPerAsset+1, uint64(coin.FracUnit), bpUnit)
	assert.True(t, errors.ErrOverflow.Is(err))
}
