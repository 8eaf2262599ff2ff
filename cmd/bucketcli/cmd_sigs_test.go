package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/sigs"
	"golang.org/x/crypto/ed25519"
)

func TestCmdSignTransactionHappyPath(t *testing.T) {
	tm := newGenesisServer(t, "test-chain-bucket")
	defer tm.Close()

	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	keyPath := mustCreateFile(t, bytes.NewReader(priv))
	defer os.Remove(keyPath)

	var input bytes.Buffer
	if err := cmdTransferAsset(nil, &input, []string{"-id", "a1"}); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}

	var output bytes.Buffer
	args := []string{
		"-tm", tm.URL,
		"-key", keyPath,
		"-seq", "3",
	}
	if err := cmdSignTransaction(&input, &output, args); err != nil {
		t.Fatalf("cannot sign the transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal signed transaction: %s", err)
	}
	if n := len(tx.Signatures); n != 1 {
		t.Fatalf("want one signature, got %d", n)
	}
	sig := tx.Signatures[0]
	assert.Equal(t, int64(3), sig.Sequence)

	key, err := decodePrivateKey(keyPath)
	if err != nil {
		t.Fatalf("cannot decode private key: %s", err)
	}
	assert.Equal(t, key.PublicKey().Address(), sig.Pubkey.Address())

	signBytes, err := sigs.BuildSignBytesTx(tx, "test-chain-bucket", 3)
	if err != nil {
		t.Fatalf("cannot build sign bytes: %s", err)
	}
	if !sig.Pubkey.Verify(signBytes, sig.Signature) {
		t.Fatal("invalid signature")
	}
}

func TestCmdSignTransactionOffline(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	keyPath := mustCreateFile(t, bytes.NewReader(priv))
	defer os.Remove(keyPath)

	var input bytes.Buffer
	if err := cmdTransferAsset(nil, &input, []string{"-id", "a1"}); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}

	var output bytes.Buffer
	args := []string{
		// Nothing is listening there. Both chain ID and sequence are
		// provided so no request is made.
		"-tm", "http://localhost:1",
		"-key", keyPath,
		"-chain-id", "offline-chain",
		"-seq", "0",
	}
	if err := cmdSignTransaction(&input, &output, args); err != nil {
		t.Fatalf("cannot sign the transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal signed transaction: %s", err)
	}
	signBytes, err := sigs.BuildSignBytesTx(tx, "offline-chain", 0)
	if err != nil {
		t.Fatalf("cannot build sign bytes: %s", err)
	}
	if !tx.Signatures[0].Pubkey.Verify(signBytes, tx.Signatures[0].Signature) {
		t.Fatal("invalid signature")
	}
}

func TestCmdSignTransactionInvalidKey(t *testing.T) {
	keyPath := mustCreateFile(t, bytes.NewReader([]byte("too short")))
	defer os.Remove(keyPath)

	var input bytes.Buffer
	if err := cmdTransferAsset(nil, &input, []string{"-id", "a1"}); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}
	args := []string{"-key", keyPath, "-chain-id", "c", "-seq", "0"}
	if err := cmdSignTransaction(&input, &bytes.Buffer{}, args); err == nil {
		t.Fatal("want invalid key error")
	}
}

func newGenesisServer(t *testing.T, chainID string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "GET" && r.URL.Path == "/genesis" {
			io.WriteString(w, `
				{
					"jsonrpc": "2.0",
					"id": "",
					"result": {
						"genesis": {
							"chain_id": "`+chainID+`",
							"validators": [],
							"app_state": {}
						}
					}
				}
			`)
			return
		}
		http.Error(w, "not implemented", http.StatusNotImplemented)
	}))
}
