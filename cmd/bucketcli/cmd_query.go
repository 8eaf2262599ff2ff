package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dropletswap/bucketd/cmd/bucketd/client"
	"github.com/dropletswap/bucketd/x/asset"
	"github.com/dropletswap/bucketd/x/droplet"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/x/cash"
)

type respDecoder interface {
	Unmarshal([]byte) error
}

type idEncoder func(string) ([]byte, error)

var resultParser = map[string]func() respDecoder{
	"/pools":      func() respDecoder { return &droplet.Pool{} },
	"/deposits":   func() respDecoder { return &droplet.Deposit{} },
	"/swapstates": func() respDecoder { return &droplet.SwapState{} },
	"/assets":     func() respDecoder { return &asset.Asset{} },
	"/wallets":    func() respDecoder { return &cash.Set{} },
}

var idEncoders = map[string]idEncoder{
	"/pools":      rawID,
	"/deposits":   tickerPrefixed(func(ticker, rest string) ([]byte, error) { return droplet.DepositKey(ticker, rest), nil }),
	"/swapstates": tickerPrefixed(swapStateID),
	"/assets":     rawID,
	"/wallets":    addressID,
}

func cmdQuery(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `
Query the bucketd application state and print the result as JSON.

Supported paths are %s.

Data format depends on the path:
  /pools       ticker
  /assets      asset ID
  /deposits    ticker:assetID
  /swapstates  ticker:holder address
  /wallets     address
`, strings.Join(queryPaths(), ", "))
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", env("BUCKETCLI_TM_ADDR", "http://localhost:26657"),
			"Tendermint node address. You can use BUCKETCLI_TM_ADDR environment variable to set it.")
		pathFl        = fl.String("path", "", "Query path.")
		dataFl        = fl.String("data", "", "Query data. Format depends on the path.")
		prefixQueryFl = fl.Bool("prefix-mode", false, "Optional parameter to enable prefix queries.")
	)
	fl.Parse(args)
	if len(*pathFl) == 0 {
		flagDie("non empty path required")
	}

	p, ok := resultParser[*pathFl]
	if !ok {
		return fmt.Errorf("no decoder for path %q", *pathFl)
	}
	var data []byte
	if len(*dataFl) != 0 {
		var err error
		if data, err = idEncoders[*pathFl](*dataFl); err != nil {
			return fmt.Errorf("cannot encode data: %s", err)
		}
	}
	queryPath := *pathFl
	if *prefixQueryFl {
		queryPath += "?" + weave.PrefixQueryMod
	}

	bucketClient := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	resp, err := bucketClient.AbciQuery(queryPath, data)
	if err != nil {
		return fmt.Errorf("failed to run query: %s", err)
	}
	return writeModels(output, resp.Models, p)
}

// writeModels decodes all models using the parser and writes them out as an
// indented JSON list.
func writeModels(output io.Writer, models []weave.Model, p func() respDecoder) error {
	result := make([]interface{}, 0, len(models))
	for i, m := range models {
		obj := p()
		if err := obj.Unmarshal(m.Value); err != nil {
			return fmt.Errorf("failed to unmarshal model %d: %s", i, err)
		}
		result = append(result, obj)
	}
	pretty, err := json.MarshalIndent(result, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = output.Write(pretty)
	return err
}

func queryPaths() []string {
	paths := make([]string, 0, len(resultParser))
	for p := range resultParser {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func rawID(s string) ([]byte, error) {
	return []byte(s), nil
}

func addressID(s string) ([]byte, error) {
	var a flagaddr
	if err := a.Set(s); err != nil {
		return nil, err
	}
	return a, nil
}

// tickerPrefixed returns an encoder for keys built from a "ticker:rest"
// pair.
func tickerPrefixed(build func(ticker, rest string) ([]byte, error)) idEncoder {
	return func(s string) ([]byte, error) {
		chunks := strings.SplitN(s, ":", 2)
		if len(chunks) != 2 || chunks[0] == "" || chunks[1] == "" {
			return nil, fmt.Errorf("invalid format %q, expected <ticker>:<value>", s)
		}
		return build(chunks[0], chunks[1])
	}
}

func swapStateID(ticker, holder string) ([]byte, error) {
	addr, err := addressID(holder)
	if err != nil {
		return nil, fmt.Errorf("holder: %s", err)
	}
	return droplet.SwapStateKey(ticker, addr), nil
}
