// Command seqkit runs the seqkit sequence algorithms from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/seqkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
