package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/telsuche/telsuche/internal/logger"
	"github.com/telsuche/telsuche/internal/phone"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract phone numbers from one page or text file",
	Long: `Run the extraction pipeline once, without the batch loop.

Reads text from a fetched URL, a file, or stdin, prints every
candidate number and marks the one the selection policy would pick.

Examples:
  telsuche extract -u "https://example.de/kontakt"
  telsuche extract -f seite.txt
  cat seite.txt | telsuche extract`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	flags := extractCmd.Flags()
	flags.StringP("url", "u", "", "URL to fetch and extract from")
	flags.StringP("file", "f", "", "text file to extract from (default: stdin)")
	flags.String("fetch-mode", "static", "fetch mode: static, dynamic")
	flags.Duration("timeout", 0, "request timeout")
	flags.Bool("insecure", false, "skip TLS certificate verification")
	flags.String("user-agent", "", "override the User-Agent header")
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	text, err := extractionInput(cmd)
	if err != nil {
		logError("%v", err)
		return err
	}

	candidates := phone.Extract(text)
	if len(candidates) == 0 {
		logInfo("No phone numbers found.")
		return nil
	}

	best, _ := phone.SelectBest(candidates)
	for _, c := range candidates {
		marker := " "
		if c == best {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, c)
	}
	return nil
}

// extractionInput returns the text to extract from, fetching it when a
// URL is given.
func extractionInput(cmd *cobra.Command) (string, error) {
	url, _ := cmd.Flags().GetString("url")
	file, _ := cmd.Flags().GetString("file")

	switch {
	case url != "":
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		f, err := buildFetcher(cmd)
		if err != nil {
			return "", err
		}
		defer func() { _ = f.Close() }()

		page, err := f.Fetch(ctx, url)
		if err != nil {
			return "", fmt.Errorf("failed to fetch %s: %w", url, err)
		}
		return page.Text, nil
	case file != "":
		data, err := os.ReadFile(file) //#nosec G304 -- CLI tool reads a user-specified file
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
