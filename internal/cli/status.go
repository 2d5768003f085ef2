package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			health, err := apiClient.Health(ctx)
			if err != nil {
				return fmt.Errorf("server unreachable: %w", err)
			}

			ready, err := apiClient.Ready(ctx)
			if err != nil {
				ready = "unavailable"
			}

			if getOutputFormat() != "table" {
				return printOutput(map[string]string{
					"health": health,
					"ready":  ready,
				})
			}

			fmt.Printf("Health: %s\n", health)
			fmt.Printf("Ready:  %s\n", ready)
			return nil
		},
	}
}
