package asset

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &IssueAssetMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferAssetMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*IssueAssetMsg)(nil)

func (IssueAssetMsg) Path() string {
	return "asset/issue"
}

func (m *IssueAssetMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "AssetID", validateID(m.AssetID))
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if m.Collection == "" {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	return errs
}

var _ weave.Msg = (*TransferAssetMsg)(nil)

func (TransferAssetMsg) Path() string {
	return "asset/transfer"
}

func (m *TransferAssetMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "AssetID", validateID(m.AssetID))
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "asset/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Patch", m.Patch.Validate())
	return errs
}

// maxIDLength is the longest asset ID accepted.
const maxIDLength = 128

func validateID(id string) error {
	switch n := len(id); {
	case n == 0:
		return errors.ErrEmpty
	case n > maxIDLength:
		return errors.Wrapf(errors.ErrInput, "must not be longer than %d characters", maxIDLength)
	}
	return nil
}
