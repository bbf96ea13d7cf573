package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tidewater-labs/backoffice/pkg/logging"
)

func TestLevelValidate(t *testing.T) {
	for _, level := range []logging.Level{
		logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError,
	} {
		if err := level.Validate(); err != nil {
			t.Errorf("%s: %v", level, err)
		}
	}

	if err := logging.Level("verbose").Validate(); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	var cfg logging.Config
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if cfg.Level != logging.LevelInfo || cfg.Format != logging.FormatText {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

	logger.Info("request complete", "status", 200)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "request complete" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["status"] != float64(200) {
		t.Errorf("status = %v", entry["status"])
	}
}

func TestNewLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Error("info entry emitted at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn entry missing")
	}
}
