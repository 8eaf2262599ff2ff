package asset

import (
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Asset{}, migration.NoModification)
}

var _ orm.Model = (*Asset)(nil)

func (m *Asset) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if m.Collection == "" {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	return errs
}

func NewAssetBucket() orm.ModelBucket {
	b := orm.NewModelBucket("asset", &Asset{},
		orm.WithNativeIndex("owner", assetOwner),
	)
	return migration.NewModelBucket("asset", b)
}

func assetOwner(o orm.Object) ([][]byte, error) {
	a, ok := o.Value().(*Asset)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not an Asset")
	}
	return [][]byte{a.Owner}, nil
}
