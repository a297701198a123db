package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vecalc/vector-calculator/internal/config"
	"github.com/vecalc/vector-calculator/internal/output"
)

func newExampleCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, outputFile); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Printf("Example configuration written to %s\n", outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "vectors.yaml", "destination file")
	return cmd
}
