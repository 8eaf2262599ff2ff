package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/weave/weavetest/assert"
)

func TestKeygenAndKeyaddr(t *testing.T) {
	dir, err := ioutil.TempDir("", "bucketcli")
	if err != nil {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	defer os.RemoveAll(dir)
	keyPath := filepath.Join(dir, "priv.key")

	if err := cmdKeygen(nil, &bytes.Buffer{}, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot generate a key: %s", err)
	}
	if err := cmdKeygen(nil, &bytes.Buffer{}, []string{"-key", keyPath}); err == nil {
		t.Fatal("existing key file must not be overwritten")
	}

	var output bytes.Buffer
	if err := cmdKeyaddr(nil, &output, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot print key address: %s", err)
	}

	key, err := decodePrivateKey(keyPath)
	if err != nil {
		t.Fatalf("cannot decode private key: %s", err)
	}
	assert.Equal(t, key.PublicKey().Address().String(), strings.TrimSpace(output.String()))
}
