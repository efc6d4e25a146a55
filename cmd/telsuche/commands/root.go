// Package commands implements the CLI commands for telsuche.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/telsuche/telsuche/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "telsuche",
	Short: "Finds telephone numbers on company websites",
	Long: `Telsuche scans company websites for a representative telephone
number and writes the results to a tabular file.

Give it a roster CSV with company_name and website columns, and it
visits each site (plus a few contact-like pages when needed), extracts
German phone numbers from the page text, and picks one per company.

Examples:
  # Process a roster and write the default CSV output
  telsuche find -i companies.csv -o phone_collection.csv

  # JavaScript-heavy sites via a headless browser
  telsuche find -i companies.csv --fetch-mode dynamic

  # Check what would be extracted from a single page
  telsuche extract -u "https://example.de/kontakt"`,
	Version: version.String(),
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.telsuche.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.SetVersionTemplate(version.Full() + "\n")
}

func initConfig() {
	// A local .env may carry proxy settings and the like
	_ = godotenv.Load()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".telsuche")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("TELSUCHE")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
