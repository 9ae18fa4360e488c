// Command alicetxt is the command-line front end for the container format:
// compress, decompress, inspect, and query v3 files (spec.md §6.3). It is a
// thin boundary over the alicetxt, container, and query packages — no
// format logic lives here.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "alicetxt:", err)
		os.Exit(1)
	}
}
