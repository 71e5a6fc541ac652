package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/kozaktomas/face-client/internal/config"
	"github.com/kozaktomas/face-client/internal/faceapi"
	"github.com/kozaktomas/face-client/internal/logging"
	"go.uber.org/zap"
)

// loadConfig reads the environment and, if --config is set, the YAML profile.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if configFile != "" {
		var err error
		if cfg, err = config.LoadFile(configFile); err != nil {
			return nil, err
		}
	} else {
		cfg = config.Load()
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger and Face API client.
func setup() (*config.Config, *faceapi.Client, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := newFaceClient(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, client, logger, nil
}

func newFaceClient(cfg *config.Config, logger *zap.Logger) (*faceapi.Client, error) {
	opts := []faceapi.Option{
		faceapi.WithHTTPClient(&http.Client{Timeout: cfg.FaceAPI.Timeout()}),
		faceapi.WithLogger(logger),
	}
	if cfg.FaceAPI.Endpoint != "" {
		opts = append(opts, faceapi.WithBaseURL(cfg.FaceAPI.Endpoint))
	}
	if captureDir != "" {
		opts = append(opts, faceapi.WithCaptureDir(captureDir))
	}

	client, err := faceapi.NewClient(cfg.FaceAPI.Key, cfg.FaceAPI.Region, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create Face API client: %w", err)
	}
	return client, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
