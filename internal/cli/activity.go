package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"minddock/internal/pkg/logger"
	"minddock/pkg/events"
	"minddock/pkg/nats"

	"github.com/spf13/cobra"
)

func activityCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Activity stream published by the server",
	}

	var subject string
	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print new activity events until interrupted (needs NATS)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.natsURL == "" {
				return fmt.Errorf("no NATS server configured: pass --nats or set NATS_URL")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sub, err := nats.NewSubscriber(a.natsURL, logger.NewNopLogger())
			if err != nil {
				return err
			}
			defer sub.Close()

			out := cmd.OutOrStdout()
			faint.Fprintf(out, "tailing %s on %s\n", subject, a.natsURL)
			return sub.Subscribe(ctx, subject, func(_ context.Context, e events.Event) error {
				payload := e.Payload()
				fmt.Fprintf(out, "%s  %-24s %v\n",
					faint.Sprint(e.Timestamp().Local().Format("15:04:05")),
					heading.Sprint(e.EventType()),
					payload["id"])
				return nil
			})
		},
	}
	tail.Flags().StringVar(&a.natsURL, "nats", a.natsURL, "NATS server URL")
	tail.Flags().StringVar(&subject, "subject", "events.>", "subject filter")
	cmd.AddCommand(tail)
	return cmd
}
