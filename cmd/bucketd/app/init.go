package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dropletswap/bucketd/x/asset"
	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/multisig"
	abci "github.com/tendermint/tendermint/abci/types"
)

// GenInitOptions will produce genesis options for a development chain. A
// single account administers every extension and a single pool, accepting
// assets of the "dev" collection, is created.
//
// The first argument is the pool ticker, the second one the address of the
// administrator.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "DRP"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %s", ticker)
		}
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(keys)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  1000,
						"ticker": ticker,
					},
				},
			},
		},
		"conf": dict{
			"cash": dict{
				"owner":             addr,
				"collector_address": addr,
				"minimal_fee":       dict{"whole": 0},
			},
			"migration": dict{
				"admin": addr,
			},
			"droplet": dict{
				"owner":                addr,
				"admin":                addr,
				"treasury":             addr,
				"droplets_per_asset":   1,
				"redeem_fee_bp":        250,
				"swap_fee_bp":          100,
				"distributor_share_bp": 5000,
			},
			"asset": dict{
				"owner":  addr,
				"issuer": addr,
			},
		},
		"droplet_pools": array{
			dict{
				"ticker":        ticker,
				"collection_id": "dev",
			},
		},
		"assets": array{},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "multisig", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "droplet", "ver": 1},
			{"pkg": "asset", "ver": 1},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "bucketd.db")
	}

	application, err := Application("bucketd", Stack(), TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&multisig.Initializer{},
		&asset.Initializer{},
		&droplet.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in a client to use them
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return addr, string(keys), nil
}
