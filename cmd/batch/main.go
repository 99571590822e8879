// Command callintel-batch analyzes transcripts from a workbook offline and
// writes the results to an xlsx report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"call-intelligence-go/internal/actionable"
	"call-intelligence-go/internal/aggregator"
	"call-intelligence-go/internal/config"
	"call-intelligence-go/internal/dataset"
	"call-intelligence-go/internal/extractor"
	"call-intelligence-go/internal/logger"
	"call-intelligence-go/internal/processor"
	"call-intelligence-go/internal/types"
	"call-intelligence-go/internal/verifier"
)

var version = "dev"

func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	logger.Configure(cfg.Environment, cfg.LogLevel)

	rootCmd := &cobra.Command{
		Use:     "callintel-batch",
		Short:   "Offline call analysis over transcript workbooks",
		Version: version,
	}

	var (
		input    string
		output   string
		noVerify bool
	)
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze every transcript in --input and write a report to --output",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := verifier.Verifier(verifier.Disabled{Label: cfg.Verifier.Name})
			if !noVerify {
				v = verifier.New(cfg.Verifier)
			}
			analyzer := processor.NewAnalyzer(extractor.New(cfg.MaskPolicy()), v, cfg.VerifyTimeout)
			return runAnalyze(cmd.Context(), analyzer, input, output)
		},
	}
	analyzeCmd.Flags().StringVar(&input, "input", "", "xlsx workbook with a transcript column")
	analyzeCmd.Flags().StringVar(&output, "output", "calls_report.xlsx", "path of the report to write")
	analyzeCmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip the remote verifier even if configured")
	_ = analyzeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(analyzeCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runAnalyze(ctx context.Context, analyzer *processor.Analyzer, input, output string) error {
	log := logger.Component("batch").WithField("input", input)

	rows, err := dataset.LoadTranscripts(input)
	if err != nil {
		return fmt.Errorf("load transcripts: %w", err)
	}
	log.WithField("rows", len(rows)).Info("transcripts loaded")

	records := make([]types.CallRecord, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		records = append(records, analyzer.Analyze(ctx, row.CallID, row.Transcript))
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := dataset.WriteReport(f, records); err != nil {
		_ = f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}

	ins := aggregator.Aggregate(records)
	card := actionable.Generate(ins)
	log.WithField("output", output).
		WithField("total_calls", ins.TotalCalls).
		WithField("high_priority", ins.HighPriority).
		WithField("verifier_overrides", ins.VerifierOverrides).
		Info("report written")
	fmt.Printf("%s\n  -> %s (%s)\n", card.Insight, card.Action, card.Impact)
	return nil
}
