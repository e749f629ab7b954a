package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"protoparts/internal/app"
	"protoparts/pkg/numerator"
)

func (c *cli) sequenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "Inspect and move set identifier sequences",
	}

	set := &cobra.Command{
		Use:   "set OUTLET PRODUCT_GROUP EVIDENCE_YEAR VALUE",
		Short: "Move a sequence so the next set receives VALUE+1 (after data imports)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, value, err := parseSequenceArgs(args)
			if err != nil {
				return err
			}
			return c.withApp(cmd.Context(), func(a *app.App) error {
				if err := a.Numbers.SetCurrent(cmd.Context(), cfg, value); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s now at %s\n", cfg.Key, numerator.Format(cfg, value))
				return nil
			})
		},
	}

	cmd.AddCommand(set)
	return cmd
}

func parseSequenceArgs(args []string) (numerator.Config, int64, error) {
	for _, code := range args[:3] {
		if len(code) != 2 {
			return numerator.Config{}, 0, fmt.Errorf("code %q must have two characters", code)
		}
	}
	cfg := numerator.SetIdentifierConfig(args[0], args[1], args[2])

	value, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil || value < 0 || value > cfg.Max {
		return numerator.Config{}, 0, fmt.Errorf("value must be between 0 and %d", cfg.Max)
	}
	return cfg, value, nil
}
