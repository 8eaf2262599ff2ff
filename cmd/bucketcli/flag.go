package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *weave.Address {
	var a flagaddr
	if defaultVal != "" {
		if err := a.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q weave.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return (*weave.Address)(&a)
}

// flagaddr accepts any address format understood by the weave.Address JSON
// decoder, for example "cond:sigs/ed25519/<hex>" or a plain hex value.
type flagaddr weave.Address

func (a flagaddr) String() string {
	if len(a) == 0 {
		return ""
	}
	return weave.Address(a).String()
}

func (a *flagaddr) Set(raw string) error {
	enc, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	var addr weave.Address
	if err := addr.UnmarshalJSON(enc); err != nil {
		return err
	}
	*a = flagaddr(addr)
	return nil
}

// flCoin returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	if defaultVal != "" {
		var err error
		c, err = coin.ParseHumanFormat(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q weave.Coin flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&c, name, usage)
	return &c
}

// flHex returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flHex(fl *flag.FlagSet, name, defaultVal, usage string) *[]byte {
	var b flagbyte
	if defaultVal != "" {
		if err := b.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q hex encoded flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&b, name, usage)
	return (*[]byte)(&b)
}

type flagbyte []byte

func (b flagbyte) String() string {
	return hex.EncodeToString(b)
}

func (b *flagbyte) Set(raw string) error {
	val, err := hex.DecodeString(raw)
	if err != nil {
		return err
	}
	*b = val
	return nil
}

// flHexList returns a list of binary values provided as comma separated hex
// encoded chunks. The flag can be repeated, each occurrence appends to the
// list.
func flHexList(fl *flag.FlagSet, name, usage string) *[][]byte {
	var l flaghexlist
	fl.Var(&l, name, usage)
	return (*[][]byte)(&l)
}

type flaghexlist [][]byte

func (l flaghexlist) String() string {
	chunks := make([]string, len(l))
	for i, b := range l {
		chunks[i] = hex.EncodeToString(b)
	}
	return strings.Join(chunks, ",")
}

func (l *flaghexlist) Set(raw string) error {
	for _, chunk := range strings.Split(raw, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		val, err := hex.DecodeString(chunk)
		if err != nil {
			return fmt.Errorf("%q: %s", chunk, err)
		}
		*l = append(*l, val)
	}
	return nil
}

// flStrings returns a list of comma separated string values.
func flStrings(fl *flag.FlagSet, name, usage string) *[]string {
	var l flagstrings
	fl.Var(&l, name, usage)
	return (*[]string)(&l)
}

type flagstrings []string

func (l flagstrings) String() string {
	return strings.Join(l, ",")
}

func (l *flagstrings) Set(raw string) error {
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*l = append(*l, s)
		}
	}
	return nil
}
