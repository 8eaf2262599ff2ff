package droplet

import (
	"math"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Pool{}, migration.NoModification)
	migration.MustRegister(1, &Deposit{}, migration.NoModification)
	migration.MustRegister(1, &SwapState{}, migration.NoModification)
}

var _ orm.Model = (*Pool)(nil)

func (m *Pool) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.ErrCurrency)
	}
	errs = errors.AppendField(errs, "Collection", m.Collection.Validate())
	return errs
}

// Increment registers a new asset held by the pool.
func (m *Pool) Increment() error {
	if m.AssetCount == math.MaxUint32 {
		return errors.Wrapf(ErrCounterOverflow, "pool %s is full", m.Ticker)
	}
	m.AssetCount++
	return nil
}

// Decrement unregisters an asset released by the pool.
func (m *Pool) Decrement() error {
	if m.AssetCount == 0 {
		return errors.Wrapf(ErrCounterOverflow, "pool %s is empty", m.Ticker)
	}
	m.AssetCount--
	return nil
}

// Validate returns an error unless exactly one admission rule is declared.
func (c *CollectionDescriptor) Validate() error {
	if c == nil {
		return errors.ErrEmpty
	}
	switch hasID, hasRoot := c.CollectionID != "", len(c.WhitelistRoot) != 0; {
	case hasID && hasRoot:
		return errors.Wrap(errors.ErrInput, "only one of collection ID and whitelist root can be set")
	case !hasID && !hasRoot:
		return errors.Wrap(errors.ErrEmpty, "collection ID or whitelist root is required")
	case hasRoot && len(c.WhitelistRoot) != hashSize:
		return errors.Wrapf(errors.ErrInput, "whitelist root must be %d bytes long", hashSize)
	}
	return nil
}

func NewPoolBucket() orm.ModelBucket {
	b := orm.NewModelBucket("pool", &Pool{})
	return migration.NewModelBucket("droplet", b)
}

var _ orm.Model = (*Deposit)(nil)

func (m *Deposit) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.ErrCurrency)
	}
	if m.AssetID == "" {
		errs = errors.AppendField(errs, "AssetID", errors.ErrEmpty)
	}
	return errs
}

// DepositKey returns the key under which the custody record of the asset
// held by the pool identified by the ticker is stored.
func DepositKey(ticker, assetID string) []byte {
	return []byte(ticker + ":" + assetID)
}

func NewDepositBucket() orm.ModelBucket {
	b := orm.NewModelBucket("deposit", &Deposit{},
		orm.WithNativeIndex("pool", depositPool),
	)
	return migration.NewModelBucket("droplet", b)
}

func depositPool(o orm.Object) ([][]byte, error) {
	d, ok := o.Value().(*Deposit)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Deposit")
	}
	return [][]byte{[]byte(d.Ticker)}, nil
}

var _ orm.Model = (*SwapState)(nil)

func (m *SwapState) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.ErrCurrency)
	}
	errs = errors.AppendField(errs, "Holder", m.Holder.Validate())
	return errs
}

// SwapStateKey returns the key of the swap eligibility of a holder within
// the pool identified by the ticker.
func SwapStateKey(ticker string, holder weave.Address) []byte {
	return append([]byte(ticker+":"), holder...)
}

func NewSwapStateBucket() orm.ModelBucket {
	b := orm.NewModelBucket("swapstate", &SwapState{})
	return migration.NewModelBucket("droplet", b)
}

// loadSwapState returns the swap eligibility of the holder. A state that was
// never stored is returned with no pending swap.
func loadSwapState(db weave.ReadOnlyKVStore, b orm.ModelBucket, ticker string, holder weave.Address) (*SwapState, error) {
	var s SwapState
	switch err := b.One(db, SwapStateKey(ticker, holder), &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return &SwapState{
			Metadata: &weave.Metadata{Schema: 1},
			Ticker:   ticker,
			Holder:   holder,
		}, nil
	default:
		return nil, errors.Wrap(err, "load swap state")
	}
}

// CustodyAddress returns the address holding the asset deposited in the pool
// identified by the ticker.
func CustodyAddress(ticker, assetID string) weave.Address {
	return weave.NewCondition("droplet", "custody", DepositKey(ticker, assetID)).Address()
}

// BurnAddress returns the address collecting burned droplets of a pool. No
// handler ever authorizes this address so funds sent there are gone.
func BurnAddress(ticker string) weave.Address {
	return weave.NewCondition("droplet", "burn", []byte(ticker)).Address()
}
