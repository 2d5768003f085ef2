package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Show plans from trainers you follow",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := apiClient.Feed(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(plans)
			}

			table := NewTable("ID", "TITLE", "PRICE", "DURATION", "TRAINER")
			for _, p := range plans {
				table.AddRow(
					strconv.FormatInt(p.ID, 10),
					p.Title,
					fmt.Sprintf("%.2f", p.Price),
					formatDuration(p.Duration),
					trainerName(p.Trainer),
				)
			}
			table.Render()
			return nil
		},
	}
}
