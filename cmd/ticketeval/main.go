/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements ticketeval, which scores customer-support replies
// with an LLM judge.
//
// With no arguments it reads tickets.csv, evaluates every ticket/reply pair
// and writes tickets_evaluated.csv:
//
//	ticketeval
//	ticketeval --input in.csv --output out.csv --concurrency 4
//
// # Environment Variables
//
//   - OPENAI_API_KEY: API key (required; may come from a .env file)
//   - OPENAI_MODEL: judge model (default: gpt-4o-mini)
//   - OPENAI_BASE_URL: alternate OpenAI-compatible endpoint
//   - TICKETEVAL_TEMPERATURE: sampling temperature (default: 0.3)
//   - TICKETEVAL_ERROR_LOG: append-only error log (default: error.log)
//   - TICKETEVAL_CONCURRENCY: rows evaluated at once (default: 1)
//   - TICKETEVAL_METRICS_FILE: Prometheus textfile written after the run
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chainguard.dev/ticketeval/tickets/batch"
	"chainguard.dev/ticketeval/tickets/evaluator"
	"chainguard.dev/ticketeval/tickets/progress"
	"chainguard.dev/ticketeval/tickets/report"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
)

type options struct {
	input       string
	output      string
	model       string
	concurrency int
	errorLog    string
	metricsFile string
	noProgress  bool
	summary     bool
	verbose     bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := buildRootCmd().ExecuteContext(ctx); err != nil {
		clog.FatalContextf(ctx, "ticketeval: %v", err)
	}
}

func buildRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "ticketeval",
		Short: "Score customer-support replies with an LLM judge",
		Long: `ticketeval reads a CSV with "ticket" and "reply" columns, asks an LLM to
score each reply for content and format (1-5) with short explanations, and
writes the input rows plus content_score, content_explanation, format_score
and format_explanation to the output CSV.

Rows missing a ticket or reply are marked "Missing data". Rows whose
evaluation fails are marked "Error" and the cause is appended to the error
log.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", batch.DefaultInput, "Input CSV with ticket and reply columns")
	flags.StringVarP(&opts.output, "output", "o", batch.DefaultOutput, "Output CSV path")
	flags.StringVar(&opts.model, "model", "", "Judge model (overrides OPENAI_MODEL)")
	flags.IntVar(&opts.concurrency, "concurrency", 0, "Rows evaluated at once (overrides TICKETEVAL_CONCURRENCY)")
	flags.StringVar(&opts.errorLog, "error-log", "", "Append-only error log (overrides TICKETEVAL_ERROR_LOG)")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics here after the run (overrides TICKETEVAL_METRICS_FILE)")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "Disable the progress bar")
	flags.BoolVar(&opts.summary, "summary", true, "Print a score summary after the run")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to the console")

	return cmd
}

// applyFlags overrides cfg with flags set on the command line.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config) {
	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = opts.model
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = opts.concurrency
	}
	if flags.Changed("error-log") {
		cfg.ErrorLog = opts.errorLog
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}
}

func run(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()

	if err := loadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := loadConfig(ctx, envconfig.OsLookuper())
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)

	errorLog, err := openErrorLog(cfg.ErrorLog)
	if err != nil {
		return fmt.Errorf("opening error log: %w", err)
	}
	defer errorLog.Close()
	// Console logs and the progress bar share stderr.
	stderr := progress.NewLine(cmd.ErrOrStderr())
	ctx = clog.WithLogger(ctx, newLogger(stderr, errorLog, opts.verbose))

	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}
	ev, err := evaluator.NewOpenAI(openai.NewClient(clientOpts...), cfg.Model, cfg.Temperature)
	if err != nil {
		return err
	}

	metrics := batch.NewMetrics()
	runOpts := []batch.Option{
		batch.WithConcurrency(cfg.Concurrency),
		batch.WithMetrics(metrics),
	}
	if !opts.noProgress {
		runOpts = append(runOpts, batch.WithProgress(stderr))
	}
	runner, err := batch.New(ev, runOpts...)
	if err != nil {
		return err
	}

	res, err := runner.Run(ctx, opts.input, opts.output)
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			clog.FromContext(ctx).With("error", err).Warn("Failed to write metrics file")
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Evaluation completed and saved in '%s'.\n", res.Path)
	if opts.summary {
		fmt.Fprintln(out)
		if err := report.Summarize(res.Evaluations).Render(out); err != nil {
			return fmt.Errorf("rendering summary: %w", err)
		}
	}
	return nil
}
