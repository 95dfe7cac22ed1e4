package main

import (
	"fmt"
	"strconv"

	"github.com/alexshd/gammaprime"
	"github.com/spf13/cobra"
)

func newTraceCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace M",
		Short: "Print every step of the recurrence up to M",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := root.setup(cmd)
			if err != nil {
				return err
			}

			m, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			steps := gammaprime.Trajectory(cfg, m)
			logger.Debug("trajectory recorded", "steps", steps.Len())

			report := gammaprime.NewReport(cmd.OutOrStdout(), cfg)
			report.Trace(steps)
			return report.Err()
		},
	}
}

func newTableCommand(root *rootOptions) *cobra.Command {
	opts := gammaprime.DefaultTableConfig()

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print predictions for a range of M",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := root.setup(cmd)
			if err != nil {
				return err
			}

			ps, err := gammaprime.Table(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			logger.Debug("table computed", "from", opts.From, "to", opts.To, "precise", opts.Precise, "rows", len(ps))

			report := gammaprime.NewReport(cmd.OutOrStdout(), cfg)
			report.Table(ps)
			return report.Err()
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.From, "from", opts.From, "First M")
	flags.IntVar(&opts.To, "to", opts.To, "Last M")
	flags.IntVar(&opts.Workers, "workers", opts.Workers, "Concurrent evaluations (0 for no limit)")
	installPreciseFlag(flags, &opts.Precise)

	return cmd
}

func parseIndexArg(s string) (int, error) {
	m, err := strconv.ParseInt(s, 10, 32)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("index %q: %w", s, gammaprime.ErrInvalidInput)
	}
	return int(m), nil
}
