package main

import (
	"bytes"
	"testing"

	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestCmdCreatePoolHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-ticker", "APE",
		"-collection", "apes",
	}
	if err := cmdCreatePool(nil, &output, args); err != nil {
		t.Fatalf("cannot create a pool transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*droplet.CreatePoolMsg)

	assert.Nil(t, msg.Validate())
	assert.Equal(t, "APE", msg.Ticker)
	assert.Equal(t, "apes", msg.Collection.CollectionID)
}

func TestCmdCreateWhitelistPool(t *testing.T) {
	root := "5f16f4c7f149ac4f9510d9cf8cf384038ad348b3bcdc01915f95de12df9d1b02"
	var output bytes.Buffer
	args := []string{
		"-ticker", "WHL",
		"-whitelist-root", root,
	}
	if err := cmdCreatePool(nil, &output, args); err != nil {
		t.Fatalf("cannot create a pool transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	msg := tx.GetDropletCreatePoolMsg()
	assert.Nil(t, msg.Validate())
	assert.Equal(t, fromHex(t, root), msg.Collection.WhitelistRoot)
	assert.Equal(t, "", msg.Collection.CollectionID)
}

func TestCmdDepositHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-ticker", "WHL",
		"-asset", "w1",
		"-holder", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-dst", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-swap",
		"-proof", "0102,0304",
		"-proof", "05",
	}
	if err := cmdDeposit(nil, &output, args); err != nil {
		t.Fatalf("cannot create a deposit transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*droplet.DepositMsg)

	assert.Equal(t, "WHL", msg.Ticker)
	assert.Equal(t, "w1", msg.AssetID)
	assert.Equal(t, true, msg.Swap)
	assert.Equal(t, fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"), []byte(msg.Holder))
	assert.Equal(t, fromHex(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"), []byte(msg.Destination))
	assert.Equal(t, [][]byte{{1, 2}, {3, 4}, {5}}, msg.Proof)
}

func TestCmdRedeemHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-ticker", "APE",
		"-asset", "a1",
		"-holder", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-distributor", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-treasury", "0000000000000000000000000000000000000001",
	}
	if err := cmdRedeem(nil, &output, args); err != nil {
		t.Fatalf("cannot create a redeem transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	msg := tx.GetDropletRedeemMsg()
	assert.Nil(t, msg.Validate())
	assert.Equal(t, "a1", msg.AssetID)
	assert.Equal(t, false, msg.Swap)
	assert.Equal(t, 0, len(msg.Destination))
	assert.Equal(t, fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"), []byte(msg.Recipient()))
	assert.Equal(t, fromHex(t, "0000000000000000000000000000000000000001"), []byte(msg.Treasury))
}

func TestCmdUpdateDropletConfiguration(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-owner", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-admin", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-treasury", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-droplets-per-asset", "1",
		"-redeem-fee", "250",
		"-swap-fee", "100",
		"-distributor-share", "5000",
		"-banned", "x1, x2",
	}
	if err := cmdUpdateDropletConfiguration(nil, &output, args); err != nil {
		t.Fatalf("cannot create a configuration update transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	msg := tx.GetDropletUpdateConfigurationMsg()
	assert.Nil(t, msg.Validate())
	assert.Equal(t, uint32(250), msg.Patch.RedeemFeeBp)
	assert.Equal(t, uint32(100), msg.Patch.SwapFeeBp)
	assert.Equal(t, uint32(5000), msg.Patch.DistributorShareBp)
	assert.Equal(t, []string{"x1", "x2"}, msg.Patch.BannedAssets)
}
