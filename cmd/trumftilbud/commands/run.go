package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oyvhov/trumftilbud/internal/logger"
	"github.com/oyvhov/trumftilbud/internal/output"
	"github.com/oyvhov/trumftilbud/pkg/fetch"
	"github.com/oyvhov/trumftilbud/pkg/sources"
)

// runConfig collects the validated settings of one run.
type runConfig struct {
	OutputDir string        `validate:"required"`
	Format    string        `validate:"oneof=csv json yaml"`
	FetchMode string        `validate:"oneof=static dynamic"`
	UserAgent string        `validate:"required"`
	Timeout   time.Duration `validate:"gt=0"`
	Stores    []string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full scrape once and write one output file",
	Long: `Run every store scraper in order and write the collected offers to
a timestamped file in the output directory.

A store that fails is logged as a warning and skipped; the run only
fails for problems outside scraping, such as an unwritable output
directory.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.StringP("output-dir", "o", "data", "directory for the output file")
	flags.String("format", "csv", "output format: csv, json, yaml")
	flags.String("fetch-mode", "static", "fetch mode: static, dynamic")
	flags.String("user-agent", fetch.DefaultConfig().UserAgent, "user agent for page requests")
	flags.Duration("timeout", fetch.DefaultConfig().Timeout, "request timeout")
	flags.StringSlice("store", nil, "only scrape the named store(s) (can be repeated)")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log-json"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := runConfig{}
	cfg.OutputDir, _ = cmd.Flags().GetString("output-dir")
	cfg.Format, _ = cmd.Flags().GetString("format")
	cfg.FetchMode, _ = cmd.Flags().GetString("fetch-mode")
	cfg.UserAgent, _ = cmd.Flags().GetString("user-agent")
	cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	cfg.Stores, _ = cmd.Flags().GetStringSlice("store")

	if err := validator.New().Struct(cfg); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	fetcher, err := fetch.New(fetch.Mode(cfg.FetchMode), fetch.Config{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	})
	if err != nil {
		logger.Error("failed to create fetcher", "error", err)
		return err
	}
	defer func() { _ = fetcher.Close() }()
	logger.Debug("fetcher created", "type", fetcher.Type())

	srcs := sources.Filter(sources.All(fetcher), cfg.Stores)
	if len(srcs) == 0 {
		return fmt.Errorf("no sources match the store filter %v", cfg.Stores)
	}

	result := sources.Collect(ctx, srcs)
	logger.Debug("collection finished",
		"offers", len(result.Offers),
		"warnings", len(result.Warnings))

	outPath, err := writeOffers(result, cfg)
	if err != nil {
		logger.Error("failed to write output", "error", err)
		return err
	}

	fmt.Printf("Lagret %d tilbud i %s\n", len(result.Offers), outPath)
	if n := len(result.Warnings); n > 0 {
		fmt.Printf("%d kilde(r) feilet, se loggen\n", n)
	}
	return nil
}

// writeOffers writes the collected offers to a timestamped file in the
// output directory and returns the file path.
func writeOffers(result sources.Result, cfg runConfig) (string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	outPath := filepath.Join(cfg.OutputDir, "trumf-tilbud-"+timestamp+output.Ext(output.Format(cfg.Format)))

	f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to user-specified directory
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	writer, err := output.NewWriter(f, output.Format(cfg.Format))
	if err != nil {
		return "", err
	}
	if err := writer.WriteAll(result.Offers); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}
	return outPath, nil
}
