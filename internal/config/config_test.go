package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FACE_API_KEY", "")
	t.Setenv("FACE_API_REGION", "")
	t.Setenv("FACE_HTTP_TIMEOUT_SECONDS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("WEB_PORT", "")

	cfg := Load()

	if cfg.FaceAPI.Region != "WUS" {
		t.Errorf("expected default region 'WUS', got '%s'", cfg.FaceAPI.Region)
	}
	if cfg.FaceAPI.Timeout() != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %s", cfg.FaceAPI.Timeout())
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level 'info', got '%s'", cfg.Log.Level)
	}
	if cfg.Web.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Web.Port)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FACE_API_KEY", "secret")
	t.Setenv("FACE_API_REGION", "WE")
	t.Setenv("FACE_HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("WEB_PORT", "9000")

	cfg := Load()

	if cfg.FaceAPI.Key != "secret" {
		t.Errorf("expected key 'secret', got '%s'", cfg.FaceAPI.Key)
	}
	if cfg.FaceAPI.Region != "WE" {
		t.Errorf("expected region 'WE', got '%s'", cfg.FaceAPI.Region)
	}
	if cfg.FaceAPI.TimeoutSeconds != 5 {
		t.Errorf("expected timeout 5, got %d", cfg.FaceAPI.TimeoutSeconds)
	}
	if cfg.Web.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Web.Port)
	}
}

func TestEnvInt_Invalid(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "-3")
	if got := envInt("TEST_ENV_INT", 7); got != 7 {
		t.Errorf("expected default 7 for negative value, got %d", got)
	}
	t.Setenv("TEST_ENV_INT", "abc")
	if got := envInt("TEST_ENV_INT", 7); got != 7 {
		t.Errorf("expected default 7 for invalid value, got %d", got)
	}
}

func TestLoadFile_OverlaysEnv(t *testing.T) {
	t.Setenv("FACE_API_KEY", "from-env")
	t.Setenv("FACE_API_REGION", "WUS")

	path := filepath.Join(t.TempDir(), "face.yaml")
	profile := "face_api:\n  region: SA\n  timeout_seconds: 10\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(profile), 0600); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.FaceAPI.Key != "from-env" {
		t.Errorf("expected key from env to be kept, got '%s'", cfg.FaceAPI.Key)
	}
	if cfg.FaceAPI.Region != "SA" {
		t.Errorf("expected region 'SA' from profile, got '%s'", cfg.FaceAPI.Region)
	}
	if cfg.FaceAPI.TimeoutSeconds != 10 {
		t.Errorf("expected timeout 10 from profile, got %d", cfg.FaceAPI.TimeoutSeconds)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Log.Level)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("face_api: [unclosed"), 0600)
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if !errors.Is(cfg.Validate(), ErrMissingKey) {
		t.Error("expected ErrMissingKey for empty key")
	}
	cfg.FaceAPI.Key = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
