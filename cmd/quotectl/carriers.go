package main

import (
	"context"

	response "brokerage_crm/internal/adapter/http/dto/response"
	"brokerage_crm/internal/app"

	"github.com/spf13/cobra"
)

var carriersCmd = &cobra.Command{
	Use:   "carriers",
	Short: "List registered carriers in registration order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(_ context.Context, a *app.App) error {
			return printJSON(response.FromCarriers(a.Submission.ListCarriers()))
		})
	},
}

func init() {
	rootCmd.AddCommand(carriersCmd)
}
