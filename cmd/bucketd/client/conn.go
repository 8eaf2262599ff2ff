package client

import (
	"github.com/tendermint/tendermint/rpc/client"
)

// NewHTTPConnection takes a URL and sends all requests to the remote node
func NewHTTPConnection(remote string) client.Client {
	return client.NewHTTP(remote, "/websocket")
}
