package droplet

import (
	"context"
	"testing"

	"github.com/dropletswap/bucketd/x/asset"
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	coin "github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions     []weave.Condition
		Tx             weave.Tx
		BlockHeight    int64
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
	}

	type AccountBalance struct {
		Wallet weave.Address
		Amount coin.Coin
	}

	var (
		adminCond       = weavetest.NewCondition()
		aliceCond       = weavetest.NewCondition()
		bobCond         = weavetest.NewCondition()
		distributorCond = weavetest.NewCondition()
		treasuryCond    = weavetest.NewCondition()

		whitelist, proofs = WhitelistRoot([][]byte{
			WhitelistLeaf("w1"),
			WhitelistLeaf("w2"),
			WhitelistLeaf("w3"),
		})
	)

	deposit := func(holder weave.Condition, ticker, assetID string, swap bool) *weavetest.Tx {
		return &weavetest.Tx{
			Msg: &DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Ticker:   ticker,
				AssetID:  assetID,
				Swap:     swap,
				Holder:   holder.Address(),
			},
		}
	}
	redeem := func(holder weave.Condition, ticker, assetID string, swap bool) *weavetest.Tx {
		return &weavetest.Tx{
			Msg: &RedeemMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Ticker:      ticker,
				AssetID:     assetID,
				Holder:      holder.Address(),
				Swap:        swap,
				Distributor: distributorCond.Address(),
				Treasury:    treasuryCond.Address(),
			},
		}
	}

	cases := map[string]struct {
		Requests  []Request
		Funds     []AccountBalance
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"admin can create a pool": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &CreatePoolMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Ticker:     "DOG",
							Collection: &CollectionDescriptor{CollectionID: "dogs"},
						},
					},
					BlockHeight:    100,
					WantCheckErr:   errors.ErrUnauthorized,
					WantDeliverErr: errors.ErrUnauthorized,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &CreatePoolMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Ticker:     "DOG",
							Collection: &CollectionDescriptor{CollectionID: "dogs"},
						},
					},
					BlockHeight:    101,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &CreatePoolMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Ticker:     "DOG",
							Collection: &CollectionDescriptor{CollectionID: "cats"},
						},
					},
					BlockHeight:    102,
					WantCheckErr:   errors.ErrDuplicate,
					WantDeliverErr: errors.ErrDuplicate,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "DOG", 0)
			},
		},
		"deposit into an empty pool mints droplets to the holder": {
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 1)
				assertDeposited(t, db, "APE", "a1", true)
				assertOwner(t, db, "a1", CustodyAddress("APE", "a1"))
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(1, 0, "APE"))
				assertSwapPending(t, db, "APE", aliceCond.Address(), false)
			},
		},
		"deposit mints droplets to the destination": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							Ticker:      "APE",
							AssetID:     "a1",
							Holder:      aliceCond.Address(),
							Destination: bobCond.Address(),
						},
					},
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(1, 0, "APE"))
				assertNoFunds(t, db, aliceCond.Address())
			},
		},
		"holder signature is required to deposit": {
			Requests: []Request{
				{
					Conditions:     []weave.Condition{bobCond},
					Tx:             deposit(aliceCond, "APE", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   errors.ErrUnauthorized,
					WantDeliverErr: errors.ErrUnauthorized,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 0)
				assertOwner(t, db, "a1", aliceCond.Address())
			},
		},
		"holder must own the deposited asset": {
			Requests: []Request{
				{
					Conditions:     []weave.Condition{bobCond},
					Tx:             deposit(bobCond, "APE", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   errors.ErrUnauthorized,
					WantDeliverErr: errors.ErrUnauthorized,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 0)
				assertDeposited(t, db, "APE", "a1", false)
			},
		},
		"cannot deposit into a pool that does not exist": {
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "XYZ", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   errors.ErrNotFound,
					WantDeliverErr: errors.ErrNotFound,
				},
			},
		},
		"asset from a different collection is rejected": {
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "cat", false),
					BlockHeight:    100,
					WantCheckErr:   ErrCollectionVerification,
					WantDeliverErr: ErrCollectionVerification,
				},
			},
		},
		"banned asset is rejected": {
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "banned", false),
					BlockHeight:    100,
					WantCheckErr:   ErrAssetBanned,
					WantDeliverErr: ErrAssetBanned,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertOwner(t, db, "banned", aliceCond.Address())
			},
		},
		"whitelisted asset is accepted with a valid proof": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Ticker:   "WHL",
							AssetID:  "w1",
							Proof:    proofs[1],
							Holder:   aliceCond.Address(),
						},
					},
					BlockHeight:    100,
					WantCheckErr:   ErrCollectionVerification,
					WantDeliverErr: ErrCollectionVerification,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Ticker:   "WHL",
							AssetID:  "w1",
							Proof:    proofs[0],
							Holder:   aliceCond.Address(),
						},
					},
					BlockHeight:    101,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "WHL", 1)
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(1, 0, "WHL"))
			},
		},
		"asset cannot be deposited twice": {
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", false),
					BlockHeight:    101,
					WantCheckErr:   errors.ErrDuplicate,
					WantDeliverErr: errors.ErrDuplicate,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 1)
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(1, 0, "APE"))
			},
		},
		"second swap deposit before redeem is rejected": {
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", true),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a2", true),
					BlockHeight:    101,
					WantCheckErr:   ErrSwapPending,
					WantDeliverErr: ErrSwapPending,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 1)
				assertSwapPending(t, db, "APE", aliceCond.Address(), true)
				// Swap deposit does not mint.
				assertNoFunds(t, db, aliceCond.Address())
			},
		},
		"regular deposit clears a pending swap": {
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", true),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a2", false),
					BlockHeight:    101,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             redeem(aliceCond, "APE", "a1", true),
					BlockHeight:    102,
					WantCheckErr:   ErrSwapNotAllowed,
					WantDeliverErr: ErrSwapNotAllowed,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 2)
				assertSwapPending(t, db, "APE", aliceCond.Address(), false)
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(1, 0, "APE"))
				assertOwner(t, db, "a1", CustodyAddress("APE", "a1"))
			},
		},
		"swap redeem without a swap deposit is rejected": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1, 0, "APE")},
			},
			Requests: []Request{
				{
					Conditions:     []weave.Condition{bobCond},
					Tx:             deposit(bobCond, "APE", "b1", false),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             redeem(aliceCond, "APE", "b1", true),
					BlockHeight:    101,
					WantCheckErr:   ErrSwapNotAllowed,
					WantDeliverErr: ErrSwapNotAllowed,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 1)
				assertOwner(t, db, "b1", CustodyAddress("APE", "b1"))
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(1, 0, "APE"))
			},
		},
		"swap exchanges assets for the swap fee": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1, 0, "APE")},
			},
			Requests: []Request{
				{
					Conditions:     []weave.Condition{bobCond},
					Tx:             deposit(bobCond, "APE", "b1", false),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", true),
					BlockHeight:    101,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             redeem(aliceCond, "APE", "b1", true),
					BlockHeight:    102,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				// Swap eligibility is consumed.
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             redeem(aliceCond, "APE", "a1", true),
					BlockHeight:    103,
					WantCheckErr:   ErrSwapNotAllowed,
					WantDeliverErr: ErrSwapNotAllowed,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 1)
				assertOwner(t, db, "b1", aliceCond.Address())
				assertOwner(t, db, "a1", CustodyAddress("APE", "a1"))
				assertDeposited(t, db, "APE", "b1", false)
				assertDeposited(t, db, "APE", "a1", true)
				assertSwapPending(t, db, "APE", aliceCond.Address(), false)
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(0, 990000000, "APE"))
				assertFunds(t, db, distributorCond.Address(), coin.NewCoin(0, 5000000, "APE"))
				assertFunds(t, db, treasuryCond.Address(), coin.NewCoin(0, 5000000, "APE"))
				assertNoFunds(t, db, BurnAddress("APE"))
			},
		},
		"deposit and redeem costs exactly the redeem fee": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1, 0, "APE")},
			},
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             redeem(aliceCond, "APE", "a1", false),
					BlockHeight:    101,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 0)
				assertDeposited(t, db, "APE", "a1", false)
				assertOwner(t, db, "a1", aliceCond.Address())
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(0, 975000000, "APE"))
				assertFunds(t, db, distributorCond.Address(), coin.NewCoin(0, 12500000, "APE"))
				assertFunds(t, db, treasuryCond.Address(), coin.NewCoin(0, 12500000, "APE"))
				assertFunds(t, db, BurnAddress("APE"), coin.NewCoin(1, 0, "APE"))
			},
		},
		"redeemed asset can be sent to a destination": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1, 0, "APE")},
			},
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RedeemMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							Ticker:      "APE",
							AssetID:     "a1",
							Holder:      aliceCond.Address(),
							Destination: bobCond.Address(),
							Distributor: distributorCond.Address(),
							Treasury:    treasuryCond.Address(),
						},
					},
					BlockHeight:    101,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertOwner(t, db, "a1", bobCond.Address())
				assertNoFunds(t, db, bobCond.Address())
			},
		},
		"redeem requires droplets": {
			Requests: []Request{
				{
					Conditions:     []weave.Condition{bobCond},
					Tx:             deposit(bobCond, "APE", "b1", false),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             redeem(aliceCond, "APE", "b1", false),
					BlockHeight:    101,
					WantCheckErr:   nil,
					WantDeliverErr: errors.ErrAmount,
				},
				// The fee cannot be paid with the droplets minted
				// for the deposit.
				{
					Conditions:     []weave.Condition{bobCond},
					Tx:             redeem(bobCond, "APE", "b1", false),
					BlockHeight:    102,
					WantCheckErr:   nil,
					WantDeliverErr: errors.ErrAmount,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 1)
				assertOwner(t, db, "b1", CustodyAddress("APE", "b1"))
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(1, 0, "APE"))
			},
		},
		"redeem requires the configured treasury": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1, 0, "APE")},
			},
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RedeemMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							Ticker:      "APE",
							AssetID:     "a1",
							Holder:      aliceCond.Address(),
							Distributor: distributorCond.Address(),
							Treasury:    bobCond.Address(),
						},
					},
					BlockHeight:    101,
					WantCheckErr:   ErrTreasuryInvalid,
					WantDeliverErr: ErrTreasuryInvalid,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 1)
				assertNoFunds(t, db, bobCond.Address())
			},
		},
		"holder signature is required to redeem": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1, 0, "APE")},
			},
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{bobCond},
					Tx:             redeem(aliceCond, "APE", "a1", false),
					BlockHeight:    101,
					WantCheckErr:   errors.ErrUnauthorized,
					WantDeliverErr: errors.ErrUnauthorized,
				},
			},
		},
		"redeem of an asset that is not deposited fails": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(5, 0, "APE")},
			},
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             redeem(aliceCond, "APE", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   errors.ErrNotFound,
					WantDeliverErr: errors.ErrNotFound,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", false),
					BlockHeight:    101,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             redeem(aliceCond, "APE", "a1", false),
					BlockHeight:    102,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             redeem(aliceCond, "APE", "a1", false),
					BlockHeight:    103,
					WantCheckErr:   errors.ErrNotFound,
					WantDeliverErr: errors.ErrNotFound,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 0)
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(4, 975000000, "APE"))
			},
		},
		"asset counter follows deposits": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1, 0, "APE")},
			},
			Requests: []Request{
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a1", false),
					BlockHeight:    100,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "APE", "a2", false),
					BlockHeight:    101,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{bobCond},
					Tx:             deposit(bobCond, "APE", "b1", false),
					BlockHeight:    102,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             redeem(aliceCond, "APE", "b1", false),
					BlockHeight:    103,
					WantCheckErr:   nil,
					WantDeliverErr: nil,
				},
				{
					Conditions:     []weave.Condition{aliceCond},
					Tx:             deposit(aliceCond, "WHL", "w2", false),
					BlockHeight:    104,
					WantCheckErr:   ErrCollectionVerification,
					WantDeliverErr: ErrCollectionVerification,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertPool(t, db, "APE", 2)
				assertPool(t, db, "WHL", 0)
				assertOwner(t, db, "b1", aliceCond.Address())
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(1, 975000000, "APE"))
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "droplet", "asset", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			assets := asset.NewController()
			RegisterRoutes(rt, auth, NewCustody(ctrl, assets), NewAdmission(assets))

			for _, b := range tc.Funds {
				if err := ctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
			}

			config := Configuration{
				Metadata:           &weave.Metadata{Schema: 1},
				Owner:              adminCond.Address(),
				Admin:              adminCond.Address(),
				Treasury:           treasuryCond.Address(),
				DropletsPerAsset:   1,
				RedeemFeeBp:        250,
				SwapFeeBp:          100,
				DistributorShareBp: 5000,
				BannedAssets:       []string{"banned"},
			}
			if err := gconf.Save(db, "droplet", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			createAssets(t, db, map[string]weave.Address{
				"a1":     aliceCond.Address(),
				"a2":     aliceCond.Address(),
				"banned": aliceCond.Address(),
				"b1":     bobCond.Address(),
			}, "apes")
			createAssets(t, db, map[string]weave.Address{
				"cat": aliceCond.Address(),
				"w1":  aliceCond.Address(),
				"w2":  aliceCond.Address(),
			}, "other")
			createPool(t, db, "APE", &CollectionDescriptor{CollectionID: "apes"})
			createPool(t, db, "WHL", &CollectionDescriptor{WhitelistRoot: whitelist})

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), req.BlockHeight)
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx); !req.WantCheckErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantCheckErr, err)
				}
				cache.Discard()

				cache = db.CacheWrap()
				_, err := rt.Deliver(ctx, cache, req.Tx)
				if !req.WantDeliverErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantDeliverErr, err)
				}
				if err != nil {
					cache.Discard()
					continue
				}
				if err := cache.Write(); err != nil {
					t.Fatalf("cannot write cache: %s", err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
			assertCustodyConsistent(t, db, "APE")
			assertCustodyConsistent(t, db, "WHL")
		})
	}
}

func TestDeliverResultCarriesEvents(t *testing.T) {
	var (
		aliceCond       = weavetest.NewCondition()
		distributorCond = weavetest.NewCondition()
		treasuryCond    = weavetest.NewCondition()
	)

	db := store.MemStore()
	migration.MustInitPkg(db, "droplet", "asset", "cash")

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())
	assets := asset.NewController()
	RegisterRoutes(rt, auth, NewCustody(ctrl, assets), NewAdmission(assets))

	config := Configuration{
		Metadata:           &weave.Metadata{Schema: 1},
		Owner:              aliceCond.Address(),
		Admin:              aliceCond.Address(),
		Treasury:           treasuryCond.Address(),
		DropletsPerAsset:   3,
		RedeemFeeBp:        200,
		SwapFeeBp:          50,
		DistributorShareBp: 2500,
	}
	if err := gconf.Save(db, "droplet", &config); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
	createAssets(t, db, map[string]weave.Address{"a1": aliceCond.Address()}, "apes")
	createPool(t, db, "APE", &CollectionDescriptor{CollectionID: "apes"})

	ctx := auth.SetConditions(context.Background(), aliceCond)

	res, err := rt.Deliver(ctx, db, &weavetest.Tx{
		Msg: &DepositMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Ticker:   "APE",
			AssetID:  "a1",
			Holder:   aliceCond.Address(),
		},
	})
	if err != nil {
		t.Fatalf("cannot deposit: %s", err)
	}
	var dep DepositEvent
	if err := dep.Unmarshal(res.Data); err != nil {
		t.Fatalf("cannot unmarshal deposit event: %s", err)
	}
	if dep.AssetID != "a1" || dep.Ticker != "APE" || dep.AssetCount != 1 || dep.Swap {
		t.Fatalf("unexpected deposit event: %+v", dep)
	}
	if !dep.Destination.Equals(aliceCond.Address()) {
		t.Fatalf("unexpected destination: %s", dep.Destination)
	}
	assertFunds(t, db, aliceCond.Address(), coin.NewCoin(3, 0, "APE"))

	// Minted droplets are burned, the fee must be paid on top of it.
	if err := ctrl.CoinMint(db, aliceCond.Address(), coin.NewCoin(1, 0, "APE")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	res, err = rt.Deliver(ctx, db, &weavetest.Tx{
		Msg: &RedeemMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			Ticker:      "APE",
			AssetID:     "a1",
			Holder:      aliceCond.Address(),
			Distributor: distributorCond.Address(),
			Treasury:    treasuryCond.Address(),
		},
	})
	if err != nil {
		t.Fatalf("cannot redeem: %s", err)
	}
	var red RedeemEvent
	if err := red.Unmarshal(res.Data); err != nil {
		t.Fatalf("cannot unmarshal redeem event: %s", err)
	}
	if red.AssetCount != 0 || red.Swap {
		t.Fatalf("unexpected redeem event: %+v", red)
	}
	// 3 droplets * 200 bp = 0.06, a quarter of it goes to the distributor.
	if !red.DistributorFee.Equals(coin.NewCoin(0, 15000000, "APE")) {
		t.Fatalf("unexpected distributor fee: %s", red.DistributorFee)
	}
	if !red.TreasuryFee.Equals(coin.NewCoin(0, 45000000, "APE")) {
		t.Fatalf("unexpected treasury fee: %s", red.TreasuryFee)
	}
	if res.Log == "" {
		t.Fatal("want a log summary")
	}
}

func createAssets(t testing.TB, db weave.KVStore, owners map[string]weave.Address, collection string) {
	t.Helper()

	b := asset.NewAssetBucket()
	for id, owner := range owners {
		a := asset.Asset{
			Metadata:   &weave.Metadata{Schema: 1},
			Owner:      owner,
			Collection: collection,
		}
		if _, err := b.Put(db, []byte(id), &a); err != nil {
			t.Fatalf("cannot create %q asset: %s", id, err)
		}
	}
}

func createPool(t testing.TB, db weave.KVStore, ticker string, c *CollectionDescriptor) {
	t.Helper()

	p := Pool{
		Metadata:   &weave.Metadata{Schema: 1},
		Ticker:     ticker,
		Collection: c,
	}
	if _, err := NewPoolBucket().Put(db, []byte(ticker), &p); err != nil {
		t.Fatalf("cannot create %q pool: %s", ticker, err)
	}
}

func assertFunds(t testing.TB, db weave.KVStore, wallet weave.Address, funds coin.Coin) {
	t.Helper()

	ctrl := cash.NewController(cash.NewBucket())
	coins, err := ctrl.Balance(db, wallet)
	if err != nil {
		t.Fatalf("balance: %s", err)
	}
	if len(coins) != 1 {
		t.Fatalf("want %q funds, found %d coins: %q", funds, len(coins), coins)
	}
	if !coins[0].Equals(funds) {
		t.Fatalf("unexpected funds found: %q", coins[0])
	}
}

func assertNoFunds(t testing.TB, db weave.KVStore, wallet weave.Address) {
	t.Helper()

	ctrl := cash.NewController(cash.NewBucket())
	coins, err := ctrl.Balance(db, wallet)
	if err != nil && !errors.ErrNotFound.Is(err) {
		t.Fatalf("balance: %s", err)
	}
	for _, c := range coins {
		if !c.IsZero() {
			t.Fatalf("want no funds, got %q", coins)
		}
	}
}

func assertPool(t testing.TB, db weave.KVStore, ticker string, count uint32) {
	t.Helper()

	var p Pool
	if err := NewPoolBucket().One(db, []byte(ticker), &p); err != nil {
		t.Fatalf("cannot get %q pool: %s", ticker, err)
	}
	if p.AssetCount != count {
		t.Fatalf("want %d assets in %q pool, got %d", count, ticker, p.AssetCount)
	}
}

func assertDeposited(t testing.TB, db weave.KVStore, ticker, assetID string, want bool) {
	t.Helper()

	switch err := NewDepositBucket().Has(db, DepositKey(ticker, assetID)); {
	case err == nil:
		if !want {
			t.Fatalf("asset %q must not be deposited in %q pool", assetID, ticker)
		}
	case errors.ErrNotFound.Is(err):
		if want {
			t.Fatalf("asset %q must be deposited in %q pool", assetID, ticker)
		}
	default:
		t.Fatalf("cannot get deposit: %s", err)
	}
}

func assertOwner(t testing.TB, db weave.KVStore, assetID string, owner weave.Address) {
	t.Helper()

	a, err := asset.NewController().Asset(db, assetID)
	if err != nil {
		t.Fatalf("cannot get %q asset: %s", assetID, err)
	}
	if !a.Owner.Equals(owner) {
		t.Fatalf("want %q asset owned by %s, got %s", assetID, owner, a.Owner)
	}
}

func assertSwapPending(t testing.TB, db weave.KVStore, ticker string, holder weave.Address, want bool) {
	t.Helper()

	s, err := loadSwapState(db, NewSwapStateBucket(), ticker, holder)
	if err != nil {
		t.Fatalf("cannot get swap state: %s", err)
	}
	if s.Pending != want {
		t.Fatalf("want pending swap %v, got %v", want, s.Pending)
	}
}

// assertCustodyConsistent ensures that the pool counter matches the number of
// deposits and that every deposited asset is in custody.
func assertCustodyConsistent(t testing.TB, db weave.KVStore, ticker string) {
	t.Helper()

	var p Pool
	if err := NewPoolBucket().One(db, []byte(ticker), &p); err != nil {
		t.Fatalf("cannot get %q pool: %s", ticker, err)
	}
	var deposits []Deposit
	if _, err := NewDepositBucket().ByIndex(db, "pool", []byte(ticker), &deposits); err != nil {
		t.Fatalf("cannot list deposits: %s", err)
	}
	if int(p.AssetCount) != len(deposits) {
		t.Fatalf("%q pool counts %d assets, but %d are deposited", ticker, p.AssetCount, len(deposits))
	}
	for _, d := range deposits {
		assertOwner(t, db, d.AssetID, CustodyAddress(ticker, d.AssetID))
	}
}
