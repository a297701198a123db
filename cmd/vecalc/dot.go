package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vecalc/vector-calculator/internal/calculation"
	"github.com/vecalc/vector-calculator/internal/domain"
	"github.com/vecalc/vector-calculator/pkg/vec2"
)

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <x1> <y1> <x2> <y2>",
		Short: "Compute a single dot product from integer components",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			components := make([]int64, 4)
			for i, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid component %q: %w", arg, err)
				}
				components[i] = n
			}

			engine := calculation.NewEngine().WithLogger(newCommandLogger(cmd))
			result := engine.ComputePair(domain.VectorPair{
				Name: "cli",
				A:    vec2.NewFromInt(components[0], components[1]),
				B:    vec2.NewFromInt(components[2], components[3]),
			})
			fmt.Println(result.Expression)
			return nil
		},
	}
}
