// Package commands implements the CLI commands for trumftilbud.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oyvhov/trumftilbud/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "trumftilbud",
	Short:   "Collect current offers from the Trumf partner stores",
	Version: version.String(),
	Long: `Trumftilbud scrapes the current promotional offers from Meny, Spar,
Kiwi, Joker, Norli and Mester Grønn and writes them to a single
timestamped file.

The Meny circular is published as a PDF and goes through text
extraction; the other stores publish HTML pages.

Examples:
  # Collect everything into data/trumf-tilbud-<timestamp>.csv
  trumftilbud run

  # Only two stores, JSON output
  trumftilbud run --store Meny --store Norli --format json`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.trumftilbud.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log-json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".trumftilbud")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("TRUMFTILBUD")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
