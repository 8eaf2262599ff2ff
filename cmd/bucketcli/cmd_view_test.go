package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCmdTransactionView(t *testing.T) {
	var input bytes.Buffer
	args := []string{
		"-ticker", "APE",
		"-asset", "a1",
		"-holder", "b1ca7e78f74423ae01da3b51e676934d9105f282",
	}
	if err := cmdDeposit(nil, &input, args); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}

	var output bytes.Buffer
	if err := cmdTransactionView(&input, &output, nil); err != nil {
		t.Fatalf("cannot view transaction: %s", err)
	}
	for _, want := range []string{`"ticker": "APE"`, `"asset_id": "a1"`} {
		if !strings.Contains(output.String(), want) {
			t.Errorf("%s not found in %s", want, output.String())
		}
	}
}
