package asset

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewAssetBucket().Register("assets", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl Controller) {
	r = migration.SchemaMigratingRegistry("asset", r)

	assets := NewAssetBucket()

	r.Handle(&IssueAssetMsg{}, &issueAssetHandler{
		auth:   auth,
		assets: assets,
	})
	r.Handle(&TransferAssetMsg{}, &transferAssetHandler{
		auth: auth,
		ctrl: ctrl,
	})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("asset", &Configuration{}, auth, migration.CurrentAdmin))
}

type issueAssetHandler struct {
	auth   x.Authenticator
	assets orm.ModelBucket
}

func (h *issueAssetHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *issueAssetHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	asset := Asset{
		Metadata:   &weave.Metadata{Schema: 1},
		Owner:      msg.Owner,
		Collection: msg.Collection,
		URI:        msg.URI,
	}
	key, err := h.assets.Put(db, []byte(msg.AssetID), &asset)
	if err != nil {
		return nil, errors.Wrap(err, "store asset")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *issueAssetHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*IssueAssetMsg, error) {
	var msg IssueAssetMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, errors.Wrap(err, "load conf")
	}
	if !h.auth.HasAddress(ctx, conf.Issuer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "issuer signature missing")
	}
	switch err := h.assets.Has(db, []byte(msg.AssetID)); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "asset %q", msg.AssetID)
	case !errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(err, "get asset")
	}
	return &msg, nil
}

type transferAssetHandler struct {
	auth x.Authenticator
	ctrl Controller
}

func (h *transferAssetHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *transferAssetHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, asset, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveAsset(db, msg.AssetID, asset.Owner, msg.Destination); err != nil {
		return nil, errors.Wrap(err, "transfer")
	}
	return &weave.DeliverResult{}, nil
}

func (h *transferAssetHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferAssetMsg, *Asset, error) {
	var msg TransferAssetMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	asset, err := h.ctrl.Asset(db, msg.AssetID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, asset.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature is required")
	}
	return &msg, asset, nil
}
