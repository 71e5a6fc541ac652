package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	FaceAPI FaceAPIConfig `yaml:"face_api"`
	Log     LogConfig     `yaml:"log"`
	Web     WebConfig     `yaml:"web"`
}

type FaceAPIConfig struct {
	Key            string `yaml:"key"`
	Region         string `yaml:"region"`          // short region code, defaults to WUS
	Endpoint       string `yaml:"endpoint"`        // optional scheme+host override of the regional endpoint
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP client timeout, defaults to 30
}

// Timeout returns the HTTP client timeout.
func (c *FaceAPIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type LogConfig struct {
	Level string `yaml:"level"` // defaults to info
}

type WebConfig struct {
	Host string `yaml:"host"` // defaults to 0.0.0.0
	Port int    `yaml:"port"` // defaults to 8080
}

// ErrMissingKey is returned by Validate when no subscription key is configured.
var ErrMissingKey = errors.New("FACE_API_KEY is not set")

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable, falling back to defaultVal when unset or empty.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		FaceAPI: FaceAPIConfig{
			Key:            os.Getenv("FACE_API_KEY"),
			Region:         envString("FACE_API_REGION", "WUS"),
			Endpoint:       os.Getenv("FACE_API_ENDPOINT"),
			TimeoutSeconds: envInt("FACE_HTTP_TIMEOUT_SECONDS", 30),
		},
		Log: LogConfig{
			Level: envString("LOG_LEVEL", "info"),
		},
		Web: WebConfig{
			Host: envString("WEB_HOST", "0.0.0.0"),
			Port: envInt("WEB_PORT", 8080),
		},
	}
}

// LoadFile reads the environment configuration and overlays the non-empty
// values of the YAML profile at path.
func LoadFile(path string) (*Config, error) {
	cfg := Load()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var profile Config
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	cfg.merge(&profile)
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.FaceAPI.Key != "" {
		c.FaceAPI.Key = o.FaceAPI.Key
	}
	if o.FaceAPI.Region != "" {
		c.FaceAPI.Region = o.FaceAPI.Region
	}
	if o.FaceAPI.Endpoint != "" {
		c.FaceAPI.Endpoint = o.FaceAPI.Endpoint
	}
	if o.FaceAPI.TimeoutSeconds > 0 {
		c.FaceAPI.TimeoutSeconds = o.FaceAPI.TimeoutSeconds
	}
	if o.Log.Level != "" {
		c.Log.Level = o.Log.Level
	}
	if o.Web.Host != "" {
		c.Web.Host = o.Web.Host
	}
	if o.Web.Port > 0 {
		c.Web.Port = o.Web.Port
	}
}

// Validate reports configuration that makes every API call fail.
func (c *Config) Validate() error {
	if c.FaceAPI.Key == "" {
		return ErrMissingKey
	}
	return nil
}
