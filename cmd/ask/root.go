package main

import (
	"advisoryboard/internal/app"
	"advisoryboard/internal/config"
	"advisoryboard/internal/logging"
	"advisoryboard/internal/model"
	"advisoryboard/internal/service"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type askOptions struct {
	personasFile string
	timeout      time.Duration
	asJSON       bool
	logLevel     string
}

func newRootCmd() *cobra.Command {
	opts := &askOptions{}
	aiCfg := config.DefaultAIConfig()

	cmd := &cobra.Command{
		Use:   "ask [idea...]",
		Short: "Ask the advisory board to evaluate a business idea",
		Long: `Sends the idea to every persona of the advisory board at once and
prints each persona's score and opinion followed by the average score.

Without GEMINI_API_KEY the offline provider answers instead.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			aiCfg.PersonaTimeout = opts.timeout
			return runAsk(cmd, aiCfg, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.personasFile, "personas", os.Getenv("PERSONAS_FILE"), "YAML file with the persona set")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", aiCfg.PersonaTimeout, "deadline for each persona call")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	return cmd
}

func runAsk(cmd *cobra.Command, aiCfg *config.AIConfig, opts *askOptions, idea string) error {
	logger, err := logging.New(opts.logLevel, "console")
	if err != nil {
		return err
	}
	defer logger.Sync()

	agg, err := app.NewAggregator(cmd.Context(), aiCfg, opts.personasFile, logger)
	if err != nil {
		return err
	}

	report, err := agg.Evaluate(cmd.Context(), idea)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printReport(cmd.OutOrStdout(), report)
	return nil
}

func printReport(w io.Writer, report *model.EvaluationReport) {
	for _, r := range report.Results {
		score := "-"
		if r.Score != nil {
			score = fmt.Sprintf("%d/%d", *r.Score, service.MaxScore)
		}
		fmt.Fprintf(w, "== %s (%s)\n%s\n\n", r.Persona, score, strings.TrimSpace(r.Response))
	}

	if report.AggregateScore == nil {
		fmt.Fprintln(w, "Aggregate score: unavailable")
		return
	}
	fmt.Fprintf(w, "Aggregate score: %.1f\n", *report.AggregateScore)
}
