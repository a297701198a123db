package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vecalc",
		Short:         "Exact 2D vector calculator",
		Long:          "vecalc computes exact dot products and related quantities for batches of 2D vectors.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(newCalculateCmd())
	root.AddCommand(newExampleCmd())
	root.AddCommand(newDotCmd())
	return root
}
