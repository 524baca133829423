// descriptor_checksum prints a descriptor followed by its BIP380 checksum.
//
// Usage:
//
//	go run ./scripts/descriptor_checksum "wpkh(xpub.../0/*)"
//
// Or with stdin, one descriptor per line:
//
//	electrum2descriptors wallet.json | go run ./scripts/descriptor_checksum
//
// A descriptor that already carries a checksum is printed with a fresh one.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AminaBank/electrum2descriptors/descriptor"
)

func main() {
	var descs []string

	if len(os.Args) > 1 {
		descs = os.Args[1:]
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				descs = append(descs, line)
			}
		}
	}

	if len(descs) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: descriptor_checksum \"descriptor\" ...")
		fmt.Fprintln(os.Stderr, "   or: echo \"descriptor\" | descriptor_checksum")
		os.Exit(1)
	}

	for _, desc := range descs {
		if i := strings.LastIndexByte(desc, '#'); i >= 0 {
			desc = desc[:i]
		}
		out, err := descriptor.AppendChecksum(desc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	}
}
