package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"price-impact-report/internal/config"
	"price-impact-report/internal/observability"
	"price-impact-report/internal/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impact-report",
		Short: "Render the latest PriceImpactSimulator run as an HTML dashboard",
		Long: `impact-report reads the book, trades, stats and strategy event logs of a
PriceImpactSimulator run, resamples them into candles, volume buckets, book
imbalance and strategy intervals, and writes report_<run>.html next to the logs.

Without --run the newest run in the log directory is used.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReport,
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString(config.FlagConfig); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger, err := observability.NewLogger(os.Stderr, cfg.LogLevel, term.IsTerminal(int(os.Stderr.Fd())))
	if err != nil {
		return err
	}

	p := pipeline.NewReportPipeline(cfg).WithLogger(logger)
	res, runErr := p.Run(cmd.Context())

	// Metrics are written for failed runs too.
	if cfg.MetricsFile != "" {
		if err := p.Metrics().WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn().Err(err).Msg("metrics not written")
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", res.ReportPath)
	return nil
}
