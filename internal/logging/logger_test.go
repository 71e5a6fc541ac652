package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for level, want := range tests {
		logger, err := NewLogger(level)
		if err != nil {
			t.Fatalf("NewLogger(%q) failed: %v", level, err)
		}
		if !logger.Core().Enabled(want) {
			t.Errorf("NewLogger(%q): expected level %s to be enabled", level, want)
		}
		if want > zapcore.DebugLevel && logger.Core().Enabled(want-1) {
			t.Errorf("NewLogger(%q): expected level %s to be disabled", level, want-1)
		}
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger("loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestWithOperation(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := WithOperation(zap.New(core), "identify", "family")

	logger.Info("done")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["operation"] != "identify" {
		t.Errorf("expected operation 'identify', got %v", fields["operation"])
	}
	if fields["person_group_id"] != "family" {
		t.Errorf("expected person_group_id 'family', got %v", fields["person_group_id"])
	}
}

func TestWithOperation_NoGroup(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	WithOperation(zap.New(core), "list-groups", "").Info("done")

	if _, ok := logs.All()[0].ContextMap()["person_group_id"]; ok {
		t.Error("expected no person_group_id field when empty")
	}
}
