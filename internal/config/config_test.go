package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/lendctl/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LENDCTL_CONFIG", filepath.Join(t.TempDir(), "nope.yml"))

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir default is empty")
	}
	if cfg.Lookup.APIBase != "https://api.itbook.store/1.0" {
		t.Errorf("APIBase = %q", cfg.Lookup.APIBase)
	}
	if cfg.Lookup.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", cfg.Lookup.TimeoutSeconds)
	}
	if cfg.Lookup.MaxResults != 6 {
		t.Errorf("MaxResults = %d, want 6", cfg.Lookup.MaxResults)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte(`data_dir: /tmp/lendctl-test
lookup:
  api_base: https://example.com/api
  timeout_seconds: 3
  max_results: 2
`)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LENDCTL_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/lendctl-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Lookup.APIBase != "https://example.com/api" {
		t.Errorf("APIBase = %q", cfg.Lookup.APIBase)
	}
	if cfg.Lookup.TimeoutSeconds != 3 {
		t.Errorf("TimeoutSeconds = %d", cfg.Lookup.TimeoutSeconds)
	}
	if cfg.Lookup.MaxResults != 2 {
		t.Errorf("MaxResults = %d", cfg.Lookup.MaxResults)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	got := config.ExpandHome("~/data")
	want := filepath.Join(home, "data")
	if got != want {
		t.Errorf("ExpandHome(~/data) = %q, want %q", got, want)
	}
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome(/abs/path) = %q", got)
	}
}
