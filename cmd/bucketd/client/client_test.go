package client

import (
	"errors"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
)

type userClient struct {
	Client
	user    *UserResponse
	queries int
}

func (c *userClient) GetUser(addr weave.Address) (*UserResponse, error) {
	c.queries++
	return c.user, nil
}

func TestNonce(t *testing.T) {
	addr := weavetest.NewCondition().Address()

	t.Run("new account", func(t *testing.T) {
		c := &userClient{}
		n := NewNonce(c, addr)

		got, err := n.Next()
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)

		got, err = n.Next()
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)
		assert.Equal(t, 1, c.queries)
	})

	t.Run("existing account", func(t *testing.T) {
		c := &userClient{
			user: &UserResponse{
				Address:  addr,
				UserData: sigs.UserData{Sequence: 5},
			},
		}
		n := NewNonce(c, addr)

		got, err := n.Next()
		require.NoError(t, err)
		assert.Equal(t, int64(5), got)

		got, err = n.Next()
		require.NoError(t, err)
		assert.Equal(t, int64(6), got)

		// query always resets the cache
		got, err = n.Query()
		require.NoError(t, err)
		assert.Equal(t, int64(5), got)
		assert.Equal(t, 2, c.queries)
	})
}

func TestStripPrefix(t *testing.T) {
	cases := map[string]struct {
		key     string
		bucket  string
		want    string
		wantErr bool
	}{
		"pool key":        {key: "pool:APE", bucket: "pool", want: "APE"},
		"empty remainder": {key: "pool:", bucket: "pool", want: ""},
		"other bucket":    {key: "deposit:APE", bucket: "pool", wantErr: true},
		"too short":       {key: "po", bucket: "pool", wantErr: true},
		"no separator":    {key: "poolAPE", bucket: "pool", wantErr: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := stripPrefix([]byte(tc.key), tc.bucket)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestBroadcastTxResponseIsError(t *testing.T) {
	cases := map[string]struct {
		resp    BroadcastTxResponse
		wantErr bool
	}{
		"transport failure": {
			resp:    BroadcastTxResponse{Error: errors.New("connection refused")},
			wantErr: true,
		},
		"check failed": {
			resp: BroadcastTxResponse{Response: &ctypes.ResultBroadcastTxCommit{
				CheckTx: abci.ResponseCheckTx{Code: 2101, Log: "pool not found"},
			}},
			wantErr: true,
		},
		"deliver failed": {
			resp: BroadcastTxResponse{Response: &ctypes.ResultBroadcastTxCommit{
				DeliverTx: abci.ResponseDeliverTx{Code: 13, Log: "insufficient amount"},
			}},
			wantErr: true,
		},
		"committed": {
			resp: BroadcastTxResponse{Response: &ctypes.ResultBroadcastTxCommit{
				Height: 4,
			}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.resp.IsError()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
