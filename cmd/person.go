package cmd

import (
	"fmt"
	"strings"

	"github.com/kozaktomas/face-client/internal/faceapi"
	"github.com/spf13/cobra"
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Manage persons and their faces in a person group",
}

var personCreateCmd = &cobra.Command{
	Use:   "create <group-id> <name>",
	Short: "Create a person in a person group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		personID, err := client.CreatePerson(cmd.Context(), args[0], args[1], mustGetString(cmd, "user-data"))
		if err != nil {
			return fmt.Errorf("could not create person: %w", err)
		}
		if jsonOutput {
			return printJSON(map[string]string{"personId": personID})
		}
		fmt.Println(personID)
		return nil
	},
}

var personListCmd = &cobra.Command{
	Use:   "list <group-id>",
	Short: "List persons in a person group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		persons, err := client.ListPersonsInPersonGroup(cmd.Context(), args[0], listOptionsFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("could not list persons: %w", err)
		}
		if jsonOutput {
			return printJSON(persons)
		}
		if len(persons) == 0 {
			fmt.Println("No persons found")
			return nil
		}
		for _, p := range persons {
			printPerson(p)
		}
		return nil
	},
}

var personGetCmd = &cobra.Command{
	Use:   "get <group-id> <person-id>",
	Short: "Show a person",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		person, err := client.GetPerson(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("could not get person: %w", err)
		}
		if jsonOutput {
			return printJSON(person)
		}
		printPerson(*person)
		return nil
	},
}

var personUpdateCmd = &cobra.Command{
	Use:   "update <group-id> <person-id>",
	Short: "Update a person's name and user data",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		update := faceapi.PersonUpdate{Name: mustGetString(cmd, "name"), UserData: mustGetString(cmd, "user-data")}
		if err := client.UpdatePerson(cmd.Context(), args[0], args[1], update); err != nil {
			return fmt.Errorf("could not update person: %w", err)
		}
		fmt.Printf("Updated person %s\n", args[1])
		return nil
	},
}

var personDeleteCmd = &cobra.Command{
	Use:   "delete <group-id> <person-id>",
	Short: "Delete a person and their faces",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		if err := client.DeletePerson(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("could not delete person: %w", err)
		}
		fmt.Printf("Deleted person %s\n", args[1])
		return nil
	},
}

var personAddFaceCmd = &cobra.Command{
	Use:   "add-face <group-id> <person-id> <image-url>",
	Short: "Add a face image to a person",
	Long: `Add a face to a person from an image URL. The image must contain exactly
one face; the returned persisted face id does not expire.

Example:
  face-client person add-face family 25985303-c537-4467-b41d-bdb45cd95ca1 https://example.com/ana.jpg`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		faceID, err := client.AddPersonFace(cmd.Context(), args[0], args[1], mustGetString(cmd, "user-data"), args[2])
		if err != nil {
			return fmt.Errorf("could not add face: %w", err)
		}
		if jsonOutput {
			return printJSON(map[string]string{"persistedFaceId": faceID})
		}
		fmt.Println(faceID)
		return nil
	},
}

var personDeleteFaceCmd = &cobra.Command{
	Use:   "delete-face <group-id> <person-id> <persisted-face-id>",
	Short: "Remove a persisted face from a person",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		if err := client.DeletePersonFace(cmd.Context(), args[0], args[1], args[2]); err != nil {
			return fmt.Errorf("could not delete face: %w", err)
		}
		fmt.Printf("Deleted face %s\n", args[2])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(personCmd)
	personCmd.AddCommand(personCreateCmd, personListCmd, personGetCmd, personUpdateCmd, personDeleteCmd, personAddFaceCmd, personDeleteFaceCmd)

	personCreateCmd.Flags().String("user-data", "", "User data attached to the person (max 16KB)")
	personUpdateCmd.Flags().String("name", "", "New display name")
	personUpdateCmd.Flags().String("user-data", "", "New user data")
	personAddFaceCmd.Flags().String("user-data", "", "User data attached to the face (max 1KB)")
	addListFlags(personListCmd)
}

func printPerson(p faceapi.Person) {
	fmt.Printf("%s  %s  faces: %d\n", p.PersonID, p.Name, len(p.PersistedFaceIDs))
	if len(p.PersistedFaceIDs) > 0 {
		fmt.Printf("    %s\n", strings.Join(p.PersistedFaceIDs, "\n    "))
	}
}
