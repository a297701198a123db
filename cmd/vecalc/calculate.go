package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vecalc/vector-calculator/internal/calculation"
	"github.com/vecalc/vector-calculator/internal/config"
	"github.com/vecalc/vector-calculator/internal/output"
)

func newCalculateCmd() *cobra.Command {
	var (
		configFile string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run every vector pair in a configuration file and emit a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(configFile)
			if err != nil {
				return err
			}

			engine := calculation.NewEngine().WithLogger(newCommandLogger(cmd))
			results, err := engine.RunBatch(cfg)
			if err != nil {
				return err
			}

			return output.GenerateReport(results, format)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "path to the input YAML file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, console-verbose, json, csv)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

// newCommandLogger builds the engine logger from the command's flags.
// Logs go to stderr so report output on stdout stays clean.
func newCommandLogger(cmd *cobra.Command) calculation.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return calculation.NewSlogLogger(slog.New(handler))
}
