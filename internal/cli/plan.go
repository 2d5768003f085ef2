package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fitplanhub/fitplanhub/pkg/client"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Browse and manage workout plans",
	}

	cmd.AddCommand(newPlanListCmd())
	cmd.AddCommand(newPlanGetCmd())
	cmd.AddCommand(newPlanCreateCmd())
	cmd.AddCommand(newPlanDeleteCmd())

	return cmd
}

func newPlanListCmd() *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var plans []client.Plan
			var err error
			if mine {
				plans, err = apiClient.MyPlans(ctx)
			} else {
				plans, err = apiClient.ListPlans(ctx)
			}
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(plans)
			}

			table := NewTable("ID", "TITLE", "PRICE", "DURATION", "TRAINER", "SUBSCRIBED")
			for _, p := range plans {
				table.AddRow(
					strconv.FormatInt(p.ID, 10),
					p.Title,
					fmt.Sprintf("%.2f", p.Price),
					formatDuration(p.Duration),
					trainerName(p.Trainer),
					formatSubscribed(p.IsSubscribed),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "list only your own plans (trainers)")

	return cmd
}

func newPlanGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <plan-id>",
		Short: "Show a single plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid plan ID: %s", args[0])
			}

			p, err := apiClient.GetPlan(context.Background(), planID)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(p)
			}

			fmt.Printf("ID:       %d\n", p.ID)
			fmt.Printf("Title:    %s\n", p.Title)
			fmt.Printf("Price:    %.2f\n", p.Price)
			if p.Description != "" {
				fmt.Printf("Details:  %s\n", p.Description)
				fmt.Printf("Duration: %d days\n", p.Duration)
			} else {
				fmt.Println("Details:  (subscribe to unlock)")
			}
			fmt.Printf("Trainer:  %s\n", trainerName(p.Trainer))
			return nil
		},
	}
}

func newPlanCreateCmd() *cobra.Command {
	var title, description string
	var price float64
	var duration int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new plan (trainers)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				title = promptInput("Title: ")
			}
			if description == "" {
				description = promptInput("Description: ")
			}

			p, err := apiClient.CreatePlan(context.Background(), client.CreatePlanRequest{
				Title:       title,
				Description: description,
				Price:       price,
				Duration:    duration,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created plan %d: %s\n", p.ID, p.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "plan title")
	cmd.Flags().StringVar(&description, "description", "", "plan description")
	cmd.Flags().Float64Var(&price, "price", 0, "plan price")
	cmd.Flags().IntVar(&duration, "duration", 0, "plan duration in days")

	return cmd
}

func newPlanDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a plan you own (trainers)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid plan ID: %s", args[0])
			}

			if err := apiClient.DeletePlan(context.Background(), planID); err != nil {
				return err
			}

			fmt.Printf("Deleted plan %d\n", planID)
			return nil
		},
	}
}

func trainerName(t *client.Trainer) string {
	if t == nil {
		return "-"
	}
	return t.Name
}

func formatDuration(days int) string {
	if days == 0 {
		return "-"
	}
	return fmt.Sprintf("%d days", days)
}

func formatSubscribed(subscribed *bool) string {
	if subscribed == nil {
		return "-"
	}
	if *subscribed {
		return "yes"
	}
	return "no"
}
