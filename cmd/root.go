package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configFile string
	captureDir string
	logLevel   string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "face-client",
	Short: "A CLI for the Microsoft Cognitive Services Face API",
	Long: `Face Client manages person groups, persons and their faces in the
Microsoft Cognitive Services Face API, and detects and identifies faces
in images against trained person groups.

The subscription key and region are read from FACE_API_KEY and
FACE_API_REGION (WUS, EUS2, WCUS, WE or SA), from a .env file, or from
a YAML profile passed with --config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML profile overriding environment configuration")
	rootCmd.PersistentFlags().StringVar(&captureDir, "capture", "", "Directory to save API responses for testing")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
