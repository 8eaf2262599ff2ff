package client

import (
	"sync"

	"github.com/dropletswap/bucketd/x/asset"
	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
)

// Client is an interface to interact with a bucketd node
type Client interface {
	GetUser(addr weave.Address) (*UserResponse, error)
	GetWallet(addr weave.Address) (*WalletResponse, error)
	BroadcastTx(tx weave.Tx) BroadcastTxResponse
	BroadcastTxAsync(tx weave.Tx, out chan<- BroadcastTxResponse)
	AbciQuery(path string, data []byte) (AbciResponse, error)
}

// BucketClient is a tendermint client wrapped to provide
// simple access to the data structures used in bucketd.
type BucketClient struct {
	conn client.Client
}

var _ Client = (*BucketClient)(nil)

// NewClient wraps a BucketClient around an existing
// tendermint client connection.
func NewClient(conn client.Client) *BucketClient {
	return &BucketClient{conn: conn}
}

// Nonce has a client/address pair, queries for the nonce
// and caches recent nonce locally to quickly sign
type Nonce struct {
	mutex     sync.Mutex
	client    Client
	addr      weave.Address
	nonce     int64
	fromQuery bool
}

// NewNonce creates a nonce for a client / address pair.
// Call Query to force a query, Next to use cache if possible
func NewNonce(client Client, addr weave.Address) *Nonce {
	return &Nonce{client: client, addr: addr}
}

// Query always queries the blockchain for the next nonce
func (n *Nonce) Query() (int64, error) {
	user, err := n.client.GetUser(n.addr)
	if err != nil {
		return 0, err
	}
	n.mutex.Lock()
	defer n.mutex.Unlock()
	if user != nil {
		n.nonce = user.UserData.Sequence
	} else {
		n.nonce = 0 // new account starts at 0
	}
	n.fromQuery = true
	return n.nonce, nil
}

// Next will use a cached value if present, otherwise Query.
// It will always increment by 1, assuming last nonce
// was properly used.
func (n *Nonce) Next() (int64, error) {
	n.mutex.Lock()
	uninitialized := !n.fromQuery && n.nonce == 0
	n.mutex.Unlock()
	if uninitialized {
		return n.Query()
	}
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.nonce++
	n.fromQuery = false
	return n.nonce, nil
}

// AbciResponse contains a query result:
// a (possibly empty) list of key-value pairs, and the height
// at which it queried
type AbciResponse struct {
	Models []weave.Model
	Height int64
}

// AbciQuery calls abci query on tendermint rpc,
// verifies if it is an error or empty, and if there is
// data pulls out the ResultSets from keys and values into
// a useful AbciResponse struct
func (b *BucketClient) AbciQuery(path string, data []byte) (AbciResponse, error) {
	var out AbciResponse

	q, err := b.conn.ABCIQuery(path, data)
	if err != nil {
		return out, err
	}
	resp := q.Response
	if resp.IsErr() {
		return out, errors.Errorf("(%d): %s", resp.Code, resp.Log)
	}
	out.Height = resp.Height

	if len(resp.Key) == 0 {
		return out, nil
	}

	var keys, vals app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return out, errors.Wrap(err, "keys")
	}
	if err := vals.Unmarshal(resp.Value); err != nil {
		return out, errors.Wrap(err, "values")
	}
	out.Models, err = app.JoinResults(&keys, &vals)
	return out, err
}

// BroadcastTxResponse is the result of submitting a transaction.
type BroadcastTxResponse struct {
	Error    error                           // not-nil if there was an error sending
	Response *ctypes.ResultBroadcastTxCommit // not-nil if we got response from node
}

// IsError returns the error for failure if it failed,
// or null if it succeeded
func (b BroadcastTxResponse) IsError() error {
	if b.Error != nil {
		return b.Error
	}
	if b.Response.CheckTx.IsErr() {
		ctx := b.Response.CheckTx
		return errors.Errorf("CheckTx error: (%d) %s", ctx.Code, ctx.Log)
	}
	if b.Response.DeliverTx.IsErr() {
		dtx := b.Response.DeliverTx
		return errors.Errorf("DeliverTx error: (%d) %s", dtx.Code, dtx.Log)
	}
	return nil
}

// BroadcastTx serializes a signed transaction and writes to the
// blockchain. It returns when the tx is committed to the
// blockchain.
//
// If you want high-performance, parallel sending, use BroadcastTxAsync
func (b *BucketClient) BroadcastTx(tx weave.Tx) BroadcastTxResponse {
	out := make(chan BroadcastTxResponse, 1)
	defer close(out)
	go b.BroadcastTxAsync(tx, out)
	return <-out
}

// BroadcastTxAsync can be run in a goroutine and will output
// the result or error to the given channel.
func (b *BucketClient) BroadcastTxAsync(tx weave.Tx, out chan<- BroadcastTxResponse) {
	data, err := tx.Marshal()
	if err != nil {
		out <- BroadcastTxResponse{Error: err}
		return
	}
	res, err := b.conn.BroadcastTxCommit(data)
	out <- BroadcastTxResponse{
		Error:    err,
		Response: res,
	}
}

// UserResponse is a response on a query for a User
type UserResponse struct {
	Address  weave.Address
	UserData sigs.UserData
	Height   int64
}

// GetUser will return nonce and public key registered
// for a given address if it was ever used.
// If it returns (nil, nil), then this address never signed
// a transaction before (and can use nonce = 0)
func (b *BucketClient) GetUser(addr weave.Address) (*UserResponse, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid address")
	}
	model, height, err := b.one("/auth", addr, "sigs")
	if err != nil || model == nil {
		return nil, err
	}
	out := UserResponse{
		Address: weave.Address(model.Key),
		Height:  height,
	}
	if err := out.UserData.Unmarshal(model.Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// WalletResponse is a response on a query for a wallet
type WalletResponse struct {
	Address weave.Address
	Wallet  cash.Set
	Height  int64
}

// GetWallet will return a wallet given an address
// If non wallet is present, it will return (nil, nil)
// Error codes are used when the query failed on the server
func (b *BucketClient) GetWallet(addr weave.Address) (*WalletResponse, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid address")
	}
	model, height, err := b.one("/wallets", addr, "cash")
	if err != nil || model == nil {
		return nil, err
	}
	out := WalletResponse{
		Address: weave.Address(model.Key),
		Height:  height,
	}
	if err := out.Wallet.Unmarshal(model.Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// PoolResponse is a response on a query for a pool
type PoolResponse struct {
	Pool   droplet.Pool
	Height int64
}

// GetPool returns the pool identified by the ticker or (nil, nil) if no
// such pool exists.
func (b *BucketClient) GetPool(ticker string) (*PoolResponse, error) {
	model, height, err := b.one("/pools", []byte(ticker), "pool")
	if err != nil || model == nil {
		return nil, err
	}
	out := PoolResponse{Height: height}
	if err := out.Pool.Unmarshal(model.Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// DepositResponse is a response on a query for a deposit
type DepositResponse struct {
	Deposit droplet.Deposit
	Height  int64
}

// GetDeposit returns the custody record of an asset held by a pool or (nil,
// nil) if the pool does not hold the asset.
func (b *BucketClient) GetDeposit(ticker, assetID string) (*DepositResponse, error) {
	model, height, err := b.one("/deposits", droplet.DepositKey(ticker, assetID), "deposit")
	if err != nil || model == nil {
		return nil, err
	}
	out := DepositResponse{Height: height}
	if err := out.Deposit.Unmarshal(model.Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSwapPending returns true if the holder has a swap deposit in the pool
// that was not redeemed yet.
func (b *BucketClient) GetSwapPending(ticker string, holder weave.Address) (bool, error) {
	model, _, err := b.one("/swapstates", droplet.SwapStateKey(ticker, holder), "swapstate")
	if err != nil || model == nil {
		return false, err
	}
	var s droplet.SwapState
	if err := s.Unmarshal(model.Value); err != nil {
		return false, err
	}
	return s.Pending, nil
}

// AssetResponse is a response on a query for an asset
type AssetResponse struct {
	ID     string
	Asset  asset.Asset
	Height int64
}

// GetAsset returns the asset with given ID or (nil, nil) if it does not
// exist.
func (b *BucketClient) GetAsset(id string) (*AssetResponse, error) {
	model, height, err := b.one("/assets", []byte(id), "asset")
	if err != nil || model == nil {
		return nil, err
	}
	out := AssetResponse{ID: string(model.Key), Height: height}
	if err := out.Asset.Unmarshal(model.Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// one queries for a single model stored under given key. The returned model
// key has the bucket prefix removed. A nil model is returned if nothing was
// found.
func (b *BucketClient) one(path string, key []byte, bucket string) (*weave.Model, int64, error) {
	resp, err := b.AbciQuery(path, key)
	if err != nil {
		return nil, 0, err
	}
	if len(resp.Models) == 0 {
		return nil, resp.Height, nil
	}
	model := resp.Models[0]
	got, err := stripPrefix(model.Key, bucket)
	if err != nil {
		return nil, 0, err
	}
	if string(got) != string(key) {
		return nil, 0, errors.Errorf("mismatch, queried %x, returned %x", key, got)
	}
	model.Key = got
	return &model, resp.Height, nil
}

// stripPrefix removes the bucket name prefix from a database key.
func stripPrefix(key []byte, bucket string) ([]byte, error) {
	prefix := bucket + ":"
	if len(key) < len(prefix) || string(key[:len(prefix)]) != prefix {
		return nil, errors.Errorf("key %x does not belong to %q bucket", key, bucket)
	}
	return key[len(prefix):], nil
}
