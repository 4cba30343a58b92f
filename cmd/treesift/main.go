// treesift - streaming tree-dump parser
//
// treesift reads the textual output of a recursive directory-listing
// "tree" command and reconstructs full paths, classification, and
// extension statistics in a single pass.
package main

import (
	"os"

	"treesift/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
