// Command orcacore runs, plays, or inspects an orca-core grid. Each
// concern is its own cobra subcommand — run, play, panic, describe —
// rather than one flag-soup binary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "orcacore",
		Short: "Run and inspect orca-core grids",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newPanicCmd())
	root.AddCommand(newDescribeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
