package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  name: sentriguide
redis:
  host: localhost
  port: 6379
helpCenter:
  baseUrl: https://example.com
  requestTimeout: 3s
analysis:
  stagePause: 250ms
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.HelpCenter.RequestTimeout.Std() != 3*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.HelpCenter.RequestTimeout)
	}
	if cfg.Analysis.StagePause.Std() != 250*time.Millisecond {
		t.Fatalf("unexpected stage pause %v", cfg.Analysis.StagePause)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HelpCenter.BaseURL != "https://helpcenter.trendmicro.com" {
		t.Fatalf("missing base URL default: %q", cfg.HelpCenter.BaseURL)
	}
	if cfg.HelpCenter.RequestTimeout.Std() != 10*time.Second {
		t.Fatalf("missing timeout default: %v", cfg.HelpCenter.RequestTimeout)
	}
	if cfg.Analysis.StagePause.Std() != 500*time.Millisecond {
		t.Fatalf("missing stage pause default: %v", cfg.Analysis.StagePause)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
