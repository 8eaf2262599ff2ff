package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dropletswap/bucketd/x/droplet"
)

func cmdWhitelist(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Compute a whitelist merkle root and membership proofs for a list of asset IDs.
Asset IDs are read from standard input, one per line, unless provided with
the -assets flag.

The root is used when creating a whitelist pool. Each proof is printed in the
format accepted by the deposit command -proof flag.
`)
		fl.PrintDefaults()
	}
	var (
		assetsFl = flStrings(fl, "assets", "Comma separated list of asset IDs.")
	)
	fl.Parse(args)

	ids := *assetsFl
	if len(ids) == 0 {
		s := bufio.NewScanner(input)
		for s.Scan() {
			if id := strings.TrimSpace(s.Text()); id != "" {
				ids = append(ids, id)
			}
		}
		if err := s.Err(); err != nil {
			return fmt.Errorf("cannot read asset IDs: %s", err)
		}
	}
	if len(ids) == 0 {
		return errors.New("no asset IDs")
	}

	seen := make(map[string]struct{}, len(ids))
	leaves := make([][]byte, len(ids))
	for i, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicated asset ID %q", id)
		}
		seen[id] = struct{}{}
		leaves[i] = droplet.WhitelistLeaf(id)
	}

	root, proofs := droplet.WhitelistRoot(leaves)
	result := whitelist{
		Root:   hex.EncodeToString(root),
		Proofs: make(map[string]string, len(ids)),
	}
	for i, id := range ids {
		result.Proofs[id] = flaghexlist(proofs[i]).String()
	}

	pretty, err := json.MarshalIndent(result, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = output.Write(pretty)
	return err
}

type whitelist struct {
	Root   string            `json:"root"`
	Proofs map[string]string `json:"proofs"`
}
