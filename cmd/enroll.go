package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kozaktomas/face-client/internal/faceapi"
	"github.com/kozaktomas/face-client/internal/logging"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Manifest describes persons and face images to enroll into a person group.
type Manifest struct {
	Name     string           `yaml:"name"`
	UserData string           `yaml:"userData"`
	Persons  []ManifestPerson `yaml:"persons"`
}

type ManifestPerson struct {
	Name     string   `yaml:"name"`
	UserData string   `yaml:"userData"`
	Faces    []string `yaml:"faces"`
}

// faceCount returns the number of face images in the manifest.
func (m *Manifest) faceCount() int {
	n := 0
	for _, p := range m.Persons {
		n += len(p.Faces)
	}
	return n
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("could not parse manifest %s: %w", path, err)
	}
	if len(m.Persons) == 0 {
		return nil, fmt.Errorf("manifest %s lists no persons", path)
	}
	for i, p := range m.Persons {
		if p.Name == "" {
			return nil, fmt.Errorf("manifest %s: person %d has no name", path, i+1)
		}
	}
	return &m, nil
}

var enrollCmd = &cobra.Command{
	Use:   "enroll <group-id> <manifest.yaml>",
	Short: "Enroll persons and their faces from a manifest",
	Long: `Create persons in a person group and add their face images, as listed
in a YAML manifest:

  name: Family          # used with --create
  persons:
    - name: Ana
      userData: aunt
      faces:
        - https://example.com/ana-1.jpg
        - https://example.com/ana-2.jpg

Faces that fail to register are reported and skipped. With --train the
group is trained afterwards.

Example:
  face-client enroll family family.yaml --create --train --wait`,
	Args: cobra.ExactArgs(2),
	RunE: runEnroll,
}

func init() {
	rootCmd.AddCommand(enrollCmd)
	enrollCmd.Flags().Bool("create", false, "Create the person group first")
	enrollCmd.Flags().Bool("train", false, "Train the person group after enrolling")
	addWaitFlags(enrollCmd)
}

type enrollResult struct {
	Persons int
	Faces   int
	Failed  []error
}

func runEnroll(cmd *cobra.Command, args []string) error {
	groupID := args[0]
	manifest, err := loadManifest(args[1])
	if err != nil {
		return err
	}

	_, client, logger, err := setup()
	if err != nil {
		return err
	}
	logger = logging.WithOperation(logger, "enroll", groupID)
	ctx := cmd.Context()

	if mustGetBool(cmd, "create") {
		name := manifest.Name
		if name == "" {
			name = groupID
		}
		if err := client.CreatePersonGroup(ctx, groupID, name, manifest.UserData); err != nil {
			return fmt.Errorf("could not create person group: %w", err)
		}
		fmt.Printf("Created person group %s\n", groupID)
	}

	bar := progressbar.NewOptions(manifest.faceCount(),
		progressbar.OptionSetDescription("Enrolling faces"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("faces"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionFullWidth(),
	)

	result, err := enroll(ctx, client, groupID, manifest, func() { bar.Add(1) })
	bar.Finish()
	fmt.Println()
	if err != nil {
		return err
	}

	fmt.Printf("Enrolled %d persons with %d faces\n", result.Persons, result.Faces)
	for _, e := range result.Failed {
		fmt.Fprintf(os.Stderr, "  failed: %v\n", e)
	}
	logger.Info("enrollment finished",
		zap.Int("persons", result.Persons),
		zap.Int("faces", result.Faces),
		zap.Int("failed", len(result.Failed)),
	)

	if !mustGetBool(cmd, "train") {
		return nil
	}
	if err := client.TrainPersonGroup(ctx, groupID); err != nil {
		return fmt.Errorf("could not start training: %w", err)
	}
	fmt.Printf("Training queued for person group %s\n", groupID)
	if mustGetBool(cmd, "wait") {
		return waitForTraining(cmd, client, logger, groupID)
	}
	return nil
}

// enroll creates every manifest person and adds their faces. A failing
// person creation aborts; failing faces are collected and skipped.
func enroll(ctx context.Context, client *faceapi.Client, groupID string, m *Manifest, progress func()) (*enrollResult, error) {
	result := &enrollResult{}
	for _, p := range m.Persons {
		personID, err := client.CreatePerson(ctx, groupID, p.Name, p.UserData)
		if err != nil {
			return result, fmt.Errorf("could not create person %s: %w", p.Name, err)
		}
		result.Persons++

		for _, face := range p.Faces {
			if _, err := client.AddPersonFace(ctx, groupID, personID, "", face); err != nil {
				if errors.Is(err, context.Canceled) {
					return result, err
				}
				result.Failed = append(result.Failed, fmt.Errorf("%s: %s: %w", p.Name, face, err))
			} else {
				result.Faces++
			}
			progress()
		}
	}
	return result, nil
}
