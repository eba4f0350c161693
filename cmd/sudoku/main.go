// Command sudoku is the CLI entry point: solving a board file read from
// disk is the default action, with generate and serve as additional
// subcommands the original C++ tool never had.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCommand()
	root.AddCommand(newGenerateCommand())
	root.AddCommand(newServeCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
