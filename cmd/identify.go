package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/kozaktomas/face-client/internal/faceapi"
	"github.com/kozaktomas/face-client/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var identifyCmd = &cobra.Command{
	Use:   "identify <group-id> [face-id...]",
	Short: "Identify faces against a trained person group",
	Long: `Identify detected faces against a trained person group. Any number of
face ids may be given; they are sent in batches of 10.

With --detect, faces are first detected in the image at the given URL and
all of them are identified.

Example:
  face-client identify family c5c24a82-6845-4031-9d5d-978df9175426
  face-client identify family --detect https://example.com/party.jpg --threshold 0.6`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
	identifyCmd.Flags().String("detect", "", "Detect faces in this image URL and identify them")
	identifyCmd.Flags().Float64("threshold", -1, "Confidence threshold in [0, 1] (default: service default)")
	identifyCmd.Flags().Int("max-candidates", 0, "Maximum candidates returned per face (default: service default)")
}

// validateFaceIDs checks that every id is a UUID as issued by detection.
func validateFaceIDs(ids []string) error {
	var errs []error
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			errs = append(errs, fmt.Errorf("invalid face id %q: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// identifyOptionsFromFlags maps --threshold and --max-candidates. A negative
// threshold leaves the service default in place.
func identifyOptionsFromFlags(cmd *cobra.Command) (faceapi.IdentifyOptions, error) {
	var opts faceapi.IdentifyOptions
	if t := mustGetFloat64(cmd, "threshold"); t >= 0 {
		if t > 1 {
			return opts, fmt.Errorf("--threshold must be within [0, 1], got %g", t)
		}
		opts.ConfidenceThreshold = faceapi.Threshold(t)
	}
	opts.MaxCandidates = mustGetInt(cmd, "max-candidates")
	return opts, nil
}

func runIdentify(cmd *cobra.Command, args []string) error {
	groupID, faceIDs := args[0], slices.Clone(args[1:])
	imageURL := mustGetString(cmd, "detect")

	opts, err := identifyOptionsFromFlags(cmd)
	if err != nil {
		return err
	}
	if imageURL == "" && len(faceIDs) == 0 {
		return errors.New("give at least one face id or --detect <image-url>")
	}
	if err := validateFaceIDs(faceIDs); err != nil {
		return err
	}

	_, client, logger, err := setup()
	if err != nil {
		return err
	}
	logger = logging.WithOperation(logger, "identify", groupID)

	if imageURL != "" {
		faces, err := client.DetectFace(cmd.Context(), imageURL)
		if err != nil {
			return fmt.Errorf("could not detect faces: %w", err)
		}
		for _, f := range faces {
			faceIDs = append(faceIDs, f.FaceID)
		}
		logger.Debug("detected faces", zap.Int("count", len(faces)))
		if len(faceIDs) == 0 {
			fmt.Println("No faces detected")
			return nil
		}
	}

	results, err := client.IdentifyFace(cmd.Context(), groupID, faceIDs, opts)
	if err != nil {
		return fmt.Errorf("could not identify faces: %w", err)
	}
	if jsonOutput {
		return printJSON(results)
	}

	for _, r := range results {
		if len(r.Candidates) == 0 {
			fmt.Printf("%s  no match\n", r.FaceID)
			continue
		}
		for i, c := range r.Candidates {
			prefix := r.FaceID
			if i > 0 {
				prefix = fmt.Sprintf("%*s", len(r.FaceID), "")
			}
			fmt.Printf("%s  %s  %.3f\n", prefix, c.PersonID, c.Confidence)
		}
	}
	return nil
}
