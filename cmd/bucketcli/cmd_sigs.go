package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dropletswap/bucketd/cmd/bucketd/client"
	"github.com/iov-one/weave/x/sigs"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

Chain ID and the signer sequence are fetched from the node unless both are
provided with flags.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", env("BUCKETCLI_TM_ADDR", "http://localhost:26657"),
			"Tendermint node address. You can use BUCKETCLI_TM_ADDR environment variable to set it.")
		keyPathFl = fl.String("key", env("BUCKETCLI_PRIV_KEY", os.Getenv("HOME")+"/.bucketd.priv.key"),
			"Path to the private key file that transaction should be signed with. You can use BUCKETCLI_PRIV_KEY environment variable to set it.")
		chainIDFl = fl.String("chain-id", "", "Optional chain ID. Fetched from the genesis if not provided.")
		seqFl     = fl.Int64("seq", -1, "Optional signer sequence number. Queried from the node if not provided.")
	)
	fl.Parse(args)

	if *keyPathFl == "" {
		return errors.New("private key is required")
	}
	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	chainID := *chainIDFl
	if chainID == "" {
		genesis, err := fetchGenesis(*tmAddrFl)
		if err != nil {
			return fmt.Errorf("cannot fetch genesis: %s", err)
		}
		chainID = genesis.ChainID
	}

	seq := *seqFl
	if seq < 0 {
		bucketClient := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
		aNonce := client.NewNonce(bucketClient, key.PublicKey().Address())
		if seq, err = aNonce.Next(); err != nil {
			return fmt.Errorf("cannot get the next sequence number: %s", err)
		}
	}

	sig, err := sigs.SignTx(key, tx, chainID, seq)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	_, err = writeTx(output, tx)
	return err
}

func fetchGenesis(serverURL string) (*genesis, error) {
	resp, err := http.Get(serverURL + "/genesis")
	if err != nil {
		return nil, fmt.Errorf("cannot fetch: %s", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Result struct {
			Genesis genesis `json:"genesis"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cannot decode response: %s", err)
	}
	if payload.Result.Genesis.ChainID == "" {
		return nil, errors.New("chain ID missing in genesis")
	}
	return &payload.Result.Genesis, nil
}

type genesis struct {
	ChainID string `json:"chain_id"`
}
