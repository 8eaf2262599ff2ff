package droplet

import (
	"fmt"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewPoolBucket().Register("pools", qr)
	NewDepositBucket().Register("deposits", qr)
	NewSwapStateBucket().Register("swapstates", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator, custody Custody, admission Admission) {
	r = migration.SchemaMigratingRegistry("droplet", r)

	pools := NewPoolBucket()
	deposits := NewDepositBucket()
	swaps := NewSwapStateBucket()

	r.Handle(&CreatePoolMsg{}, &createPoolHandler{
		auth:  auth,
		pools: pools,
	})
	r.Handle(&DepositMsg{}, &depositHandler{
		auth:      auth,
		pools:     pools,
		deposits:  deposits,
		swaps:     swaps,
		custody:   custody,
		admission: admission,
	})
	r.Handle(&RedeemMsg{}, &redeemHandler{
		auth:     auth,
		pools:    pools,
		deposits: deposits,
		swaps:    swaps,
		custody:  custody,
	})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("droplet", &Configuration{}, auth, migration.CurrentAdmin))
}

type createPoolHandler struct {
	auth  x.Authenticator
	pools orm.ModelBucket
}

func (h *createPoolHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *createPoolHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	pool := Pool{
		Metadata:   &weave.Metadata{Schema: 1},
		Ticker:     msg.Ticker,
		AssetCount: 0,
		Collection: msg.Collection,
	}
	key, err := h.pools.Put(db, []byte(msg.Ticker), &pool)
	if err != nil {
		return nil, errors.Wrap(err, "store pool")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *createPoolHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreatePoolMsg, error) {
	var msg CreatePoolMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, errors.Wrap(err, "load conf")
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	switch err := h.pools.Has(db, []byte(msg.Ticker)); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "pool %s already exists", msg.Ticker)
	case !errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(err, "get pool")
	}
	return &msg, nil
}

type depositHandler struct {
	auth      x.Authenticator
	pools     orm.ModelBucket
	deposits  orm.ModelBucket
	swaps     orm.ModelBucket
	custody   Custody
	admission Admission
}

func (h *depositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *depositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, pool, swap, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, errors.Wrap(err, "load conf")
	}

	deposit := Deposit{
		Metadata: &weave.Metadata{Schema: 1},
		Ticker:   msg.Ticker,
		AssetID:  msg.AssetID,
	}
	if _, err := h.deposits.Put(db, DepositKey(msg.Ticker, msg.AssetID), &deposit); err != nil {
		return nil, errors.Wrap(err, "store deposit")
	}

	// A regular deposit cancels any pending swap.
	swap.Pending = msg.Swap
	if _, err := h.swaps.Put(db, SwapStateKey(msg.Ticker, msg.Holder), swap); err != nil {
		return nil, errors.Wrap(err, "store swap state")
	}

	if err := h.custody.MoveAsset(db, msg.AssetID, msg.Holder, CustodyAddress(msg.Ticker, msg.AssetID)); err != nil {
		return nil, errors.Wrap(err, "move asset to custody")
	}

	if !msg.Swap {
		droplets, err := wholeCoin(conf.DropletsPerAsset, msg.Ticker)
		if err != nil {
			return nil, errors.Wrap(err, "droplets per asset")
		}
		if err := h.custody.CoinMint(db, msg.Recipient(), droplets); err != nil {
			return nil, errors.Wrap(err, "mint droplets")
		}
	}

	if err := pool.Increment(); err != nil {
		return nil, err
	}
	if _, err := h.pools.Put(db, []byte(pool.Ticker), pool); err != nil {
		return nil, errors.Wrap(err, "store pool")
	}

	event := DepositEvent{
		Ticker:      msg.Ticker,
		AssetID:     msg.AssetID,
		Holder:      msg.Holder,
		Destination: msg.Recipient(),
		Swap:        msg.Swap,
		AssetCount:  pool.AssetCount,
	}
	return eventResult(ctx, &event, fmt.Sprintf("asset %s deposited to %s pool", msg.AssetID, msg.Ticker),
		"ticker", event.Ticker,
		"asset", event.AssetID,
		"holder", event.Holder,
		"swap", event.Swap,
		"assets", event.AssetCount,
	)
}

func (h *depositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DepositMsg, *Pool, *SwapState, error) {
	var msg DepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Holder) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "holder signature is required")
	}
	var pool Pool
	if err := h.pools.One(db, []byte(msg.Ticker), &pool); err != nil {
		return nil, nil, nil, errors.Wrap(err, "get pool")
	}
	swap, err := loadSwapState(db, h.swaps, msg.Ticker, msg.Holder)
	if err != nil {
		return nil, nil, nil, err
	}
	if msg.Swap && swap.Pending {
		return nil, nil, nil, errors.Wrap(ErrSwapPending, "complete the pending swap first")
	}
	if err := h.admission.VerifyMembership(db, msg.AssetID, pool.Collection, msg.Proof); err != nil {
		return nil, nil, nil, err
	}
	switch banned, err := h.admission.IsBanned(db, msg.AssetID); {
	case err != nil:
		return nil, nil, nil, errors.Wrap(err, "ban list")
	case banned:
		return nil, nil, nil, errors.Wrapf(ErrAssetBanned, "asset %q", msg.AssetID)
	}
	switch err := h.deposits.Has(db, DepositKey(msg.Ticker, msg.AssetID)); {
	case err == nil:
		return nil, nil, nil, errors.Wrapf(errors.ErrDuplicate, "asset %q already deposited", msg.AssetID)
	case !errors.ErrNotFound.Is(err):
		return nil, nil, nil, errors.Wrap(err, "get deposit")
	}
	owner, err := h.custody.AssetOwner(db, msg.AssetID)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "asset owner")
	}
	if !owner.Equals(msg.Holder) {
		return nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "asset %q is not owned by the holder", msg.AssetID)
	}
	return &msg, &pool, swap, nil
}

type redeemHandler struct {
	auth     x.Authenticator
	pools    orm.ModelBucket
	deposits orm.ModelBucket
	swaps    orm.ModelBucket
	custody  Custody
}

func (h *redeemHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *redeemHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, pool, swap, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	feeBp := conf.RedeemFeeBp
	if msg.Swap {
		feeBp = conf.SwapFeeBp
		swap.Pending = false
	} else {
		droplets, err := wholeCoin(conf.DropletsPerAsset, msg.Ticker)
		if err != nil {
			return nil, errors.Wrap(err, "droplets per asset")
		}
		if err := h.custody.Burn(db, msg.Holder, droplets); err != nil {
			return nil, errors.Wrap(err, "burn droplets")
		}
	}
	if _, err := h.swaps.Put(db, SwapStateKey(msg.Ticker, msg.Holder), swap); err != nil {
		return nil, errors.Wrap(err, "store swap state")
	}

	fee, err := SplitFee(feeBp, conf.DropletsPerAsset, uint64(coin.FracUnit), conf.DistributorShareBp)
	if err != nil {
		return nil, errors.Wrap(err, "fee")
	}
	distributorFee, treasuryFee, err := fee.Coins(msg.Ticker)
	if err != nil {
		return nil, errors.Wrap(err, "fee")
	}
	if err := h.custody.EnsureWallet(db, msg.Distributor); err != nil {
		return nil, errors.Wrap(err, "distributor wallet")
	}
	if err := h.custody.EnsureWallet(db, msg.Treasury); err != nil {
		return nil, errors.Wrap(err, "treasury wallet")
	}
	if err := h.custody.MoveCoins(db, msg.Holder, msg.Distributor, distributorFee); err != nil {
		return nil, errors.Wrap(err, "distributor fee")
	}
	if err := h.custody.MoveCoins(db, msg.Holder, msg.Treasury, treasuryFee); err != nil {
		return nil, errors.Wrap(err, "treasury fee")
	}

	custody := CustodyAddress(msg.Ticker, msg.AssetID)
	if err := h.custody.MoveAsset(db, msg.AssetID, custody, msg.Recipient()); err != nil {
		return nil, errors.Wrap(err, "release asset")
	}
	if err := h.custody.Close(db, custody, msg.Holder); err != nil {
		return nil, errors.Wrap(err, "close custody")
	}

	if err := pool.Decrement(); err != nil {
		return nil, err
	}
	if _, err := h.pools.Put(db, []byte(pool.Ticker), pool); err != nil {
		return nil, errors.Wrap(err, "store pool")
	}
	if err := h.deposits.Delete(db, DepositKey(msg.Ticker, msg.AssetID)); err != nil {
		return nil, errors.Wrap(err, "delete deposit")
	}

	event := RedeemEvent{
		Ticker:         msg.Ticker,
		AssetID:        msg.AssetID,
		Holder:         msg.Holder,
		Destination:    msg.Recipient(),
		Swap:           msg.Swap,
		AssetCount:     pool.AssetCount,
		DistributorFee: &distributorFee,
		TreasuryFee:    &treasuryFee,
	}
	return eventResult(ctx, &event, fmt.Sprintf("asset %s redeemed from %s pool", msg.AssetID, msg.Ticker),
		"ticker", event.Ticker,
		"asset", event.AssetID,
		"holder", event.Holder,
		"swap", event.Swap,
		"assets", event.AssetCount,
		"fee", fee.Total,
	)
}

func (h *redeemHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RedeemMsg, *Pool, *SwapState, *Configuration, error) {
	var msg RedeemMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Holder) {
		return nil, nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "holder signature is required")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "load conf")
	}
	if !msg.Treasury.Equals(conf.Treasury) {
		return nil, nil, nil, nil, errors.Wrapf(ErrTreasuryInvalid, "want %s", conf.Treasury)
	}
	var pool Pool
	if err := h.pools.One(db, []byte(msg.Ticker), &pool); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "get pool")
	}
	var deposit Deposit
	if err := h.deposits.One(db, DepositKey(msg.Ticker, msg.AssetID), &deposit); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "get deposit")
	}
	swap, err := loadSwapState(db, h.swaps, msg.Ticker, msg.Holder)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if msg.Swap && !swap.Pending {
		return nil, nil, nil, nil, errors.Wrap(ErrSwapNotAllowed, "no pending swap")
	}
	return &msg, &pool, swap, &conf, nil
}

// eventResult returns the result of a successful operation. The event is
// serialized as the result data and logged.
func eventResult(ctx weave.Context, event weave.Marshaller, summary string, keyvals ...interface{}) (*weave.DeliverResult, error) {
	raw, err := event.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal event")
	}
	weave.GetLogger(ctx).Info(summary, keyvals...)
	return &weave.DeliverResult{Data: raw, Log: summary}, nil
}
