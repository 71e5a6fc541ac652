package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/kozaktomas/face-client/internal/faceapi"
	"github.com/kozaktomas/face-client/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage person groups",
}

var groupCreateCmd = &cobra.Command{
	Use:   "create <group-id> <name>",
	Short: "Create a person group",
	Long: `Create a person group with the given id and display name.

The id may contain lower case letters, digits, '-' and '_', up to 64 characters.

Example:
  face-client group create family "Family" --user-data "relatives"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		if err := client.CreatePersonGroup(cmd.Context(), args[0], args[1], mustGetString(cmd, "user-data")); err != nil {
			return fmt.Errorf("could not create person group: %w", err)
		}
		fmt.Printf("Created person group %s\n", args[0])
		return nil
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete <group-id>",
	Short: "Delete a person group with all its persons and faces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		if err := client.DeletePersonGroup(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("could not delete person group: %w", err)
		}
		fmt.Printf("Deleted person group %s\n", args[0])
		return nil
	},
}

var groupGetCmd = &cobra.Command{
	Use:   "get <group-id>",
	Short: "Show a person group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		group, err := client.GetPersonGroup(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("could not get person group: %w", err)
		}
		if jsonOutput {
			return printJSON(group)
		}
		printGroup(*group)
		return nil
	},
}

var groupStatusCmd = &cobra.Command{
	Use:   "status <group-id>",
	Short: "Show the training status of a person group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		status, err := client.GetPersonGroupTrainingStatus(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("could not get training status: %w", err)
		}
		if jsonOutput {
			return printJSON(status)
		}
		printTrainingStatus(args[0], status)
		return nil
	},
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List person groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		groups, err := client.ListPersonGroups(cmd.Context(), listOptionsFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("could not list person groups: %w", err)
		}
		if jsonOutput {
			return printJSON(groups)
		}
		if len(groups) == 0 {
			fmt.Println("No person groups found")
			return nil
		}
		for _, g := range groups {
			printGroup(g)
		}
		return nil
	},
}

var groupTrainCmd = &cobra.Command{
	Use:   "train <group-id>",
	Short: "Queue training of a person group",
	Long: `Queue training of a person group. Training runs asynchronously on the
server; use --wait to poll until it completes.

Example:
  face-client group train family --wait --interval 2s`,
	Args: cobra.ExactArgs(1),
	RunE: runGroupTrain,
}

var groupUpdateCmd = &cobra.Command{
	Use:   "update <group-id>",
	Short: "Update a person group's name and user data",
	Long: `Update a person group's name and user data. Both values are always sent;
an omitted flag clears the field.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		update := faceapi.PersonGroupUpdate{Name: mustGetString(cmd, "name"), UserData: mustGetString(cmd, "user-data")}
		if err := client.UpdatePersonGroup(cmd.Context(), args[0], update); err != nil {
			return fmt.Errorf("could not update person group: %w", err)
		}
		fmt.Printf("Updated person group %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
	groupCmd.AddCommand(groupCreateCmd, groupDeleteCmd, groupGetCmd, groupStatusCmd, groupListCmd, groupTrainCmd, groupUpdateCmd)

	groupCreateCmd.Flags().String("user-data", "", "User data attached to the group (max 16KB)")
	groupUpdateCmd.Flags().String("name", "", "New display name")
	groupUpdateCmd.Flags().String("user-data", "", "New user data")
	addListFlags(groupListCmd)
	addWaitFlags(groupTrainCmd)
}

func addWaitFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("wait", false, "Wait until training completes")
	cmd.Flags().Duration("interval", 5*time.Second, "Polling interval used with --wait")
	cmd.Flags().Duration("timeout", 10*time.Minute, "Maximum time to wait for training")
}

func runGroupTrain(cmd *cobra.Command, args []string) error {
	_, client, logger, err := setup()
	if err != nil {
		return err
	}
	groupID := args[0]

	if err := client.TrainPersonGroup(cmd.Context(), groupID); err != nil {
		return fmt.Errorf("could not start training: %w", err)
	}
	fmt.Printf("Training queued for person group %s\n", groupID)

	if !mustGetBool(cmd, "wait") {
		return nil
	}
	return waitForTraining(cmd, client, logging.WithOperation(logger, "train", groupID), groupID)
}

// waitForTraining polls training status according to the --interval and --timeout flags.
func waitForTraining(cmd *cobra.Command, client *faceapi.Client, logger *zap.Logger, groupID string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), mustGetDuration(cmd, "timeout"))
	defer cancel()

	start := time.Now()
	status, err := client.WaitForTraining(ctx, groupID, mustGetDuration(cmd, "interval"))
	if err != nil {
		logger.Error("training did not complete", zap.Error(err))
		return err
	}
	logger.Info("training completed", zap.Duration("elapsed", time.Since(start)))
	printTrainingStatus(groupID, status)
	return nil
}

func printGroup(g faceapi.PersonGroup) {
	if g.UserData != "" {
		fmt.Printf("%-32s %s (%s)\n", g.PersonGroupID, g.Name, g.UserData)
		return
	}
	fmt.Printf("%-32s %s\n", g.PersonGroupID, g.Name)
}

func printTrainingStatus(groupID string, s *faceapi.TrainingStatus) {
	fmt.Printf("Person group: %s\n", groupID)
	fmt.Printf("  Status:      %s\n", s.Status)
	fmt.Printf("  Created:     %s\n", s.CreatedDateTime)
	if s.LastActionDateTime != "" {
		fmt.Printf("  Last action: %s\n", s.LastActionDateTime)
	}
	if s.Message != "" {
		fmt.Printf("  Message:     %s\n", s.Message)
	}
}
