package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"brokerage_crm/internal/app"
	"brokerage_crm/internal/infrastructure/events"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Domain events published over Redis",
}

var eventsWatchCmd = &cobra.Command{
	Use:   "watch [event-type...]",
	Short: "Print events as they are published (default: all quote core events)",
	RunE: func(cmd *cobra.Command, args []string) error {
		types := args
		if len(types) == 0 {
			types = []string{interfaces.EventQuoteIngested, interfaces.EventAutomationCompleted}
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			pub, ok := a.Events.(*events.RedisPublisher)
			if !ok {
				return fmt.Errorf("REDIS_URL is not configured")
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return pub.Subscribe(ctx, func(evt interfaces.Event) {
				_ = printJSON(evt)
			}, types...)
		})
	},
}

func init() {
	eventsCmd.AddCommand(eventsWatchCmd)
	rootCmd.AddCommand(eventsCmd)
}
