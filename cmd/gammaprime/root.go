package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexshd/gammaprime"
	"github.com/alexshd/gammaprime/configs"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type rootOptions struct {
	configFile string
	logLevel   string
	precise    bool
}

func (o *rootOptions) installFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.configFile, "config", "", "Configuration file overriding the evaluator constants")
	flags.StringVar(&o.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func installPreciseFlag(flags *pflag.FlagSet, precise *bool) {
	flags.BoolVar(precise, "precise", false, "Accumulate in 128-bit decimal arithmetic")
}

// setup resolves the logger and constants shared by every subcommand.
func (o *rootOptions) setup(cmd *cobra.Command) (*slog.Logger, gammaprime.Config, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, gammaprime.Config{}, fmt.Errorf("log level %q: %w", o.logLevel, err)
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	cfg, err := configs.Load(o.configFile)
	if err != nil {
		return nil, gammaprime.Config{}, err
	}
	logger.Debug("config resolved",
		"file", o.configFile,
		"ceiling", cfg.Ceiling,
		"scaler", cfg.Scaler,
		"offset", cfg.Offset,
		"base", cfg.Base)

	return logger, cfg, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "gammaprime",
		Short:         "Predict P_{M+1} from the Gamma decay series",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			return runPredict(cmd.InOrStdin(), cmd.OutOrStdout(), logger, cfg, opts.precise)
		},
	}

	opts.installFlags(cmd.PersistentFlags())
	installPreciseFlag(cmd.Flags(), &opts.precise)
	cmd.AddCommand(newTraceCommand(opts), newTableCommand(opts))

	return cmd
}

func runPredict(in io.Reader, out io.Writer, logger *slog.Logger, cfg gammaprime.Config, precise bool) error {
	report := gammaprime.NewReport(out, cfg)
	report.Banner()
	report.Prompt()
	if err := report.Err(); err != nil {
		return err
	}

	m, err := gammaprime.ReadIndex(in)
	if err != nil {
		logger.Debug("input rejected", "err", err)
		return err
	}

	predict := gammaprime.Predict
	if precise {
		predict = gammaprime.PredictPrecise
	}

	start := time.Now()
	p, err := predict(cfg, m)
	if err != nil {
		return err
	}
	logger.Debug("prediction computed",
		"m", m,
		"value", p.Value,
		"precise", precise,
		"elapsed", time.Since(start))

	report.Result(p)
	return report.Err()
}
