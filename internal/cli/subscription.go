package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSubscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Manage plan subscriptions",
	}

	cmd.AddCommand(newSubscriptionListCmd())
	cmd.AddCommand(newSubscribeCmd())
	cmd.AddCommand(newUnsubscribeCmd())

	return cmd
}

func newSubscriptionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			subs, err := apiClient.ListSubscriptions(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(subs)
			}

			table := NewTable("PLAN ID", "TITLE", "STATUS", "PURCHASED")
			for _, s := range subs {
				title := "-"
				if s.Plan != nil {
					title = s.Plan.Title
				}
				table.AddRow(
					strconv.FormatInt(s.PlanID, 10),
					title,
					s.Status,
					s.PurchasedAt.Format("2006-01-02"),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newSubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <plan-id>",
		Short: "Subscribe to a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid plan ID: %s", args[0])
			}

			sub, err := apiClient.Subscribe(context.Background(), planID)
			if err != nil {
				return err
			}

			if sub.Plan != nil {
				fmt.Printf("Subscribed to %s\n", sub.Plan.Title)
			} else {
				fmt.Printf("Subscribed to plan %d\n", planID)
			}
			return nil
		},
	}
}

func newUnsubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <plan-id>",
		Short: "Cancel a plan subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid plan ID: %s", args[0])
			}

			if err := apiClient.Unsubscribe(context.Background(), planID); err != nil {
				return err
			}

			fmt.Printf("Unsubscribed from plan %d\n", planID)
			return nil
		},
	}
}
