// Command rusk is a thin CLI shell over the rusk Bitcask-style key-value
// store rooted at the current working directory.
package main

import (
	"os"

	"github.com/Chandram-Dutta/rusk/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args))
}
