package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTrainerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trainer",
		Short: "View and follow trainers",
	}

	cmd.AddCommand(newTrainerShowCmd())
	cmd.AddCommand(newTrainerFollowCmd())
	cmd.AddCommand(newTrainerUnfollowCmd())
	cmd.AddCommand(newTrainerFollowingCmd())

	return cmd
}

func newTrainerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <trainer-id>",
		Short: "Show a trainer's profile and plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trainerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid trainer ID: %s", args[0])
			}

			profile, err := apiClient.TrainerProfile(context.Background(), trainerID)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(profile)
			}

			fmt.Printf("Trainer: %s <%s>\n", profile.Trainer.Name, profile.Trainer.Email)
			if profile.Trainer.Bio != "" {
				fmt.Printf("Bio:     %s\n", profile.Trainer.Bio)
			}
			fmt.Printf("Following: %v\n\n", profile.IsFollowing)

			table := NewTable("ID", "TITLE", "PRICE", "DURATION")
			for _, p := range profile.Plans {
				table.AddRow(
					strconv.FormatInt(p.ID, 10),
					p.Title,
					fmt.Sprintf("%.2f", p.Price),
					formatDuration(p.Duration),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newTrainerFollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow <trainer-id>",
		Short: "Follow a trainer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trainerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid trainer ID: %s", args[0])
			}

			f, err := apiClient.FollowTrainer(context.Background(), trainerID)
			if err != nil {
				return err
			}

			fmt.Printf("Now following %s\n", trainerName(f.Trainer))
			return nil
		},
	}
}

func newTrainerUnfollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <trainer-id>",
		Short: "Unfollow a trainer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trainerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid trainer ID: %s", args[0])
			}

			if err := apiClient.UnfollowTrainer(context.Background(), trainerID); err != nil {
				return err
			}

			fmt.Printf("Unfollowed trainer %d\n", trainerID)
			return nil
		},
	}
}

func newTrainerFollowingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "following",
		Short: "List trainers you follow",
		RunE: func(cmd *cobra.Command, args []string) error {
			follows, err := apiClient.ListFollows(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(follows)
			}

			table := NewTable("TRAINER ID", "NAME", "FOLLOWED AT")
			for _, f := range follows {
				table.AddRow(
					strconv.FormatInt(f.TrainerID, 10),
					trainerName(f.Trainer),
					f.FollowedAt.Format("2006-01-02"),
				)
			}
			table.Render()
			return nil
		},
	}
}
