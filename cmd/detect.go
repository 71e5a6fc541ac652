package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect <image-url>",
	Short: "Detect faces in an image",
	Long: `Detect faces in the image at the given URL and print their transient
face ids and rectangles, largest face first. Face ids can be passed to
identify for a short time after detection.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := setup()
		if err != nil {
			return err
		}
		faces, err := client.DetectFace(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("could not detect faces: %w", err)
		}
		if jsonOutput {
			return printJSON(faces)
		}
		if len(faces) == 0 {
			fmt.Println("No faces detected")
			return nil
		}
		for _, f := range faces {
			r := f.FaceRectangle
			fmt.Printf("%s  left=%d top=%d width=%d height=%d\n", f.FaceID, r.Left, r.Top, r.Width, r.Height)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
