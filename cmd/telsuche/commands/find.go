package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/telsuche/telsuche/internal/fetcher"
	"github.com/telsuche/telsuche/internal/input"
	"github.com/telsuche/telsuche/internal/logger"
	"github.com/telsuche/telsuche/internal/output"
	"github.com/telsuche/telsuche/internal/runner"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find phone numbers for every company in a roster",
	Long: `Process a roster CSV and write a result table with one phone
number per company.

Each website is fetched over HTTPS first, falling back to HTTP. When
the main page yields no number, up to three contact-like pages
(Kontakt, Impressum, ...) are tried. Progress is checkpointed
periodically, so an interrupted run keeps its partial results.

Examples:
  telsuche find -i companies.csv
  telsuche find -i companies.csv -o results.yaml --format yaml
  telsuche find -i companies.csv --delay 5s --checkpoint-every 10`,
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)

	flags := findCmd.Flags()

	flags.StringP("input", "i", "", "roster CSV with company_name and website columns (required)")
	flags.StringP("output", "o", "phone_collection.csv", "output file")
	flags.String("format", "csv", "output format: csv, json, yaml")

	// Fetch settings
	flags.String("fetch-mode", "static", "fetch mode: static, dynamic")
	flags.Duration("timeout", 10*time.Second, "request timeout")
	flags.Bool("insecure", false, "skip TLS certificate verification")
	flags.String("user-agent", "", "override the User-Agent header")

	// Pacing and persistence
	flags.Duration("delay", 2*time.Second, "delay between companies")
	flags.Duration("page-delay", time.Second, "delay between contact-page fetches")
	flags.Int("checkpoint-every", 20, "persist results after this many companies")
	flags.Int("max-contact-pages", 3, "contact-like pages to try when the main page has no number")
	flags.String("max-content-size", "0", "max page text fed to extraction (e.g. 100KB, 0=unlimited)")

	_ = findCmd.MarkFlagRequired("input")
}

func runFind(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	inputPath, _ := cmd.Flags().GetString("input")
	companies, err := input.ReadCompanies(inputPath)
	if err != nil {
		logError("%v", err)
		return err
	}
	if len(companies) == 0 {
		return fmt.Errorf("roster %s contains no usable rows", inputPath)
	}

	f, err := buildFetcher(cmd)
	if err != nil {
		logError("%v", err)
		return err
	}
	defer func() { _ = f.Close() }()

	cfg, err := buildRunnerConfig(cmd)
	if err != nil {
		logError("%v", err)
		return err
	}

	r, err := runner.New(f, cfg)
	if err != nil {
		logError("%v", err)
		return err
	}

	logInfo("Processing %d companies from %s", len(companies), inputPath)
	logInfo("Results go to %s, progress is saved every %d companies.", cfg.OutputPath, cfg.CheckpointEvery)
	logInfo("Press Ctrl+C to stop at any time.")

	summary, err := r.Run(ctx, companies)
	if errors.Is(err, context.Canceled) {
		logInfo("\nInterrupted after %d/%d companies. Partial results have been saved.", summary.Processed, summary.Total)
		return nil
	}
	if err != nil {
		logError("%v", err)
		return err
	}

	logInfo("\nCompleted! Results saved to %s", cfg.OutputPath)
	logInfo("Companies processed: %d", summary.Processed)
	logInfo("Phone numbers found: %d", summary.Found)
	if summary.Processed > 0 {
		logInfo("Success rate: %.1f%%", float64(summary.Found)/float64(summary.Processed)*100)
	}
	return nil
}

// buildFetcher creates the fetcher selected by --fetch-mode.
func buildFetcher(cmd *cobra.Command) (fetcher.Fetcher, error) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	insecure, _ := cmd.Flags().GetBool("insecure")
	userAgent, _ := cmd.Flags().GetString("user-agent")

	cfg := fetcher.Config{
		UserAgent: userAgent,
		Timeout:   timeout,
		Insecure:  insecure,
	}

	mode, _ := cmd.Flags().GetString("fetch-mode")
	switch mode {
	case "dynamic":
		return fetcher.NewDynamic(cfg)
	case "static", "":
		return fetcher.NewStatic(cfg), nil
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s (use 'static' or 'dynamic')", mode)
	}
}

func buildRunnerConfig(cmd *cobra.Command) (runner.Config, error) {
	cfg := runner.DefaultConfig()

	cfg.OutputPath, _ = cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	cfg.Format = output.Format(format)
	cfg.Delay, _ = cmd.Flags().GetDuration("delay")
	cfg.PageDelay, _ = cmd.Flags().GetDuration("page-delay")
	cfg.CheckpointEvery, _ = cmd.Flags().GetInt("checkpoint-every")
	cfg.MaxContactPages, _ = cmd.Flags().GetInt("max-contact-pages")

	sizeStr, _ := cmd.Flags().GetString("max-content-size")
	if s := strings.TrimSpace(sizeStr); s != "" && s != "0" {
		bytes, err := humanize.ParseBytes(s)
		if err != nil {
			return cfg, fmt.Errorf("invalid max-content-size %q: %w", sizeStr, err)
		}
		cfg.MaxContentSize = int(bytes)
	}

	return cfg, nil
}
