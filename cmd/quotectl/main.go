// Command quotectl operates the quote core from a terminal, over the same wiring as the API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"brokerage_crm/internal/app"
	"brokerage_crm/internal/config"
	"brokerage_crm/internal/infrastructure/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "quotectl",
	Short:         "Operate carrier quote submission and automation sessions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (default warn)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withApp wires the application for one command and closes it afterwards, waiting for
// any portal drivers the command started.
func withApp(cmd *cobra.Command, run func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// Keep stdout clean for JSON output unless asked otherwise.
	level := "warn"
	if logLevel != "" {
		level = logLevel
	}
	zl, err := logger.New(level, cfg.AppEnv)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.New(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer a.Close()

	return run(ctx, a)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
