package droplet

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreatePoolMsg{}, migration.NoModification)
	migration.MustRegister(1, &DepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &RedeemMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreatePoolMsg)(nil)

func (CreatePoolMsg) Path() string {
	return "droplet/create_pool"
}

func (m *CreatePoolMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.ErrCurrency)
	}
	errs = errors.AppendField(errs, "Collection", m.Collection.Validate())
	return errs
}

var _ weave.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return "droplet/deposit"
}

func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.ErrCurrency)
	}
	if m.AssetID == "" {
		errs = errors.AppendField(errs, "AssetID", errors.ErrEmpty)
	}
	for _, p := range m.Proof {
		if len(p) != hashSize {
			errs = errors.AppendField(errs, "Proof",
				errors.Wrapf(errors.ErrInput, "proof element must be %d bytes long", hashSize))
			break
		}
	}
	errs = errors.AppendField(errs, "Holder", m.Holder.Validate())
	if m.Destination != nil {
		errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	}
	return errs
}

// Recipient returns the address that receives minted droplets.
func (m *DepositMsg) Recipient() weave.Address {
	if len(m.Destination) != 0 {
		return m.Destination
	}
	return m.Holder
}

var _ weave.Msg = (*RedeemMsg)(nil)

func (RedeemMsg) Path() string {
	return "droplet/redeem"
}

func (m *RedeemMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.ErrCurrency)
	}
	if m.AssetID == "" {
		errs = errors.AppendField(errs, "AssetID", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Holder", m.Holder.Validate())
	if m.Destination != nil {
		errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	}
	errs = errors.AppendField(errs, "Distributor", m.Distributor.Validate())
	errs = errors.AppendField(errs, "Treasury", m.Treasury.Validate())
	return errs
}

// Recipient returns the address that receives the released asset.
func (m *RedeemMsg) Recipient() weave.Address {
	if len(m.Destination) != 0 {
		return m.Destination
	}
	return m.Holder
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "droplet/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Patch", m.Patch.Validate())
	return errs
}
