package main

import (
	"context"
	"fmt"

	response "brokerage_crm/internal/adapter/http/dto/response"
	"brokerage_crm/internal/app"
	"brokerage_crm/internal/domain/entities"

	"github.com/spf13/cobra"
)

var automationCmd = &cobra.Command{
	Use:   "automation",
	Short: "Inspect and operate browser automation sessions",
}

var automationStatusCmd = &cobra.Command{
	Use:   "status <session-id>",
	Short: "Show the current state of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			s, err := a.Sessions.CheckStatus(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(response.FromSession(s))
		})
	},
}

var (
	completeStatus string
	completeError  string
	completeLogs   string
)

var automationCompleteCmd = &cobra.Command{
	Use:   "complete <session-id>",
	Short: "Record the result of a session by hand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := entities.AutomationStatus(completeStatus)
		if !status.IsTerminal() {
			return fmt.Errorf("--status must be success or error")
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			s, err := a.Sessions.Complete(ctx, args[0], entities.AutomationResult{
				Status:       status,
				ErrorMessage: completeError,
				Logs:         completeLogs,
			})
			if err != nil {
				return err
			}
			return printJSON(response.FromSession(s))
		})
	},
}

var automationRetryCmd = &cobra.Command{
	Use:   "retry <run-id>",
	Short: "Start a new run with the inputs of an earlier one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			s, err := a.Sessions.Retry(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(response.FromSession(s))
		})
	},
}

var automationRunsCmd = &cobra.Command{
	Use:   "runs <quote-id>",
	Short: "List automation attempts for a quote, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			runs, err := a.Sessions.ListRunsForQuote(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(response.FromAutomationRuns(runs))
		})
	},
}

func init() {
	automationCompleteCmd.Flags().StringVar(&completeStatus, "status", "", "success or error (required)")
	automationCompleteCmd.Flags().StringVar(&completeError, "error", "", "Error message for a failed session")
	automationCompleteCmd.Flags().StringVar(&completeLogs, "logs", "", "Operator notes stored as session logs")
	_ = automationCompleteCmd.MarkFlagRequired("status")

	automationCmd.AddCommand(automationStatusCmd, automationCompleteCmd, automationRetryCmd, automationRunsCmd)
	rootCmd.AddCommand(automationCmd)
}
