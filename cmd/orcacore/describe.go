package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"orca-core/internal/glyph"
	"orca-core/internal/operator"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <glyph>",
		Short: "Print help text for an operator glyph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := glyph.Glyph(args[0][0])
			name, ok := operator.Name(g)
			if !ok {
				return fmt.Errorf("describe: %q is not an operator glyph", args[0])
			}
			summary, example, _ := operator.Describe(g)
			fmt.Printf("%s (%c)\n\n%s\n\n%s\n", name, g, summary, example)
			return nil
		},
	}
}
