package droplet

import (
	"github.com/dropletswap/bucketd/x/asset"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
)

// Custody is the ledger of both droplets and assets. Pools only ever issue
// transfer, mint, burn and close intents to it.
type Custody interface {
	// MoveCoins transfers droplets between two wallets.
	MoveCoins(db weave.KVStore, src, dest weave.Address, amount coin.Coin) error
	// CoinMint creates new droplets.
	CoinMint(db weave.KVStore, dest weave.Address, amount coin.Coin) error
	// Burn destroys droplets held by src.
	Burn(db weave.KVStore, src weave.Address, amount coin.Coin) error
	// MoveAsset changes the owner of an asset.
	MoveAsset(db weave.KVStore, assetID string, src, dest weave.Address) error
	// AssetOwner returns the current owner of an asset.
	AssetOwner(db weave.ReadOnlyKVStore, assetID string) (weave.Address, error)
	// Close releases an account. Any funds left are sent to the beneficiary.
	Close(db weave.KVStore, account, beneficiary weave.Address) error
	// EnsureWallet creates an empty wallet unless one exists.
	EnsureWallet(db weave.KVStore, addr weave.Address) error
}

// CashController moves, mints and reports droplet balances.
type CashController interface {
	cash.Controller
	cash.CoinMinter
}

// NewCustody returns a custody ledger that keeps droplets in cash wallets and
// assets in the asset registry.
func NewCustody(cashctrl CashController, assets asset.Controller) Custody {
	return &custody{
		cashctrl: cashctrl,
		wallets:  cash.NewBucket(),
		assets:   assets,
	}
}

type custody struct {
	cashctrl CashController
	wallets  cash.Bucket
	assets   asset.Controller
}

func (c *custody) MoveCoins(db weave.KVStore, src, dest weave.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	if err := c.hasFunds(db, src, amount); err != nil {
		return err
	}
	return c.cashctrl.MoveCoins(db, src, dest, amount)
}

func (c *custody) CoinMint(db weave.KVStore, dest weave.Address, amount coin.Coin) error {
	return c.cashctrl.CoinMint(db, dest, amount)
}

func (c *custody) Burn(db weave.KVStore, src weave.Address, amount coin.Coin) error {
	if err := c.hasFunds(db, src, amount); err != nil {
		return err
	}
	if err := c.cashctrl.MoveCoins(db, src, BurnAddress(amount.Ticker), amount); err != nil {
		return errors.Wrap(err, "burn")
	}
	return nil
}

func (c *custody) MoveAsset(db weave.KVStore, assetID string, src, dest weave.Address) error {
	return c.assets.MoveAsset(db, assetID, src, dest)
}

func (c *custody) AssetOwner(db weave.ReadOnlyKVStore, assetID string) (weave.Address, error) {
	a, err := c.assets.Asset(db, assetID)
	if err != nil {
		return nil, err
	}
	return a.Owner, nil
}

// hasFunds returns no error if given wallet contains at least given amount of
// funds.
func (c *custody) hasFunds(db weave.KVStore, wallet weave.Address, funds coin.Coin) error {
	coins, err := c.cashctrl.Balance(db, wallet)
	switch {
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(errors.ErrAmount, "no funds in %s wallet", wallet)
	case err != nil:
		return errors.Wrap(err, "balance")
	}
	for _, have := range coins {
		if have.Ticker == funds.Ticker && have.Compare(funds) >= 0 {
			return nil
		}
	}
	return errors.Wrapf(errors.ErrAmount, "not enough %s funds in %s wallet", funds.Ticker, wallet)
}

func (c *custody) Close(db weave.KVStore, account, beneficiary weave.Address) error {
	funds, err := c.cashctrl.Balance(db, account)
	switch {
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return errors.Wrap(err, "account balance")
	}
	if err := cash.MoveCoins(db, c.cashctrl, account, beneficiary, funds); err != nil {
		return errors.Wrap(err, "sweep account")
	}
	if err := c.wallets.Delete(db, account); err != nil {
		return errors.Wrap(err, "delete wallet")
	}
	return nil
}

func (c *custody) EnsureWallet(db weave.KVStore, addr weave.Address) error {
	obj, err := c.wallets.Get(db, addr)
	if err != nil {
		return errors.Wrap(err, "get wallet")
	}
	if obj != nil {
		return nil
	}
	obj, err = c.wallets.GetOrCreate(db, addr)
	if err != nil {
		return errors.Wrap(err, "create wallet")
	}
	if err := c.wallets.Save(db, obj); err != nil {
		return errors.Wrap(err, "save wallet")
	}
	return nil
}
