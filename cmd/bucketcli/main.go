package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// commands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is an independent runnable that is taking input and
// output being stdin and stdout. Given args are the command line arguments,
// without the program name and the command name, that should be parsed using
// the flag package. In a special case of an invalid argument a message to
// os.Stderr and os.Exit(2) call are allowed.
//
// Each command provides a single functionality. Use a unix pipe to build a
// pipeline, for example to deposit an asset into a pool:
//
//   $ bucketcli deposit -ticker APE -asset a1 -holder $(bucketcli keyaddr) \
//       | bucketcli with-fee -amount "0.01 DRP" \
//       | bucketcli sign \
//       | bucketcli submit
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"create-pool":                  cmdCreatePool,
	"deposit":                      cmdDeposit,
	"inspect-pool":                 cmdInspectPool,
	"issue-asset":                  cmdIssueAsset,
	"keyaddr":                      cmdKeyaddr,
	"keygen":                       cmdKeygen,
	"query":                        cmdQuery,
	"redeem":                       cmdRedeem,
	"send-tokens":                  cmdSendTokens,
	"sign":                         cmdSignTransaction,
	"submit":                       cmdSubmitTransaction,
	"transfer-asset":               cmdTransferAsset,
	"update-asset-configuration":   cmdUpdateAssetConfiguration,
	"update-droplet-configuration": cmdUpdateDropletConfiguration,
	"version":                      cmdVersion,
	"view":                         cmdTransactionView,
	"whitelist":                    cmdWhitelist,
	"with-fee":                     cmdWithFee,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the bucketd application.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, gitHash)
	return nil
}

// gitHash is set during the compilation time.
var gitHash string = "dev"
