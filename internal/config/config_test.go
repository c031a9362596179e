package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"discsub/internal/config"
)

func TestLoadDefaultConfigUsesEnvCredentialsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("REDUMP_USERNAME", "dumper")
	t.Setenv("REDUMP_PASSWORD", "secret")
	t.Chdir(tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if !cfg.HasCredentials() {
		t.Fatalf("expected credentials from env, got %+v", cfg.Redump)
	}
	wantCache := filepath.Join(tempHome, ".cache", "discsub", "matches.db")
	if cfg.MatchCache.Path != wantCache {
		t.Fatalf("unexpected cache path: got %q want %q", cfg.MatchCache.Path, wantCache)
	}
	if cfg.Redump.BaseURL != "http://redump.org" {
		t.Fatalf("unexpected base url: %q", cfg.Redump.BaseURL)
	}
	if !cfg.Submission.NormalizeTitles {
		t.Fatal("expected title normalization enabled by default")
	}
	if cfg.RequestTimeout().Seconds() != 30 {
		t.Fatalf("unexpected request timeout: %v", cfg.RequestTimeout())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "discsub.toml")

	type payload struct {
		Redump struct {
			Username string `toml:"username"`
			Password string `toml:"password"`
			BaseURL  string `toml:"base_url"`
		} `toml:"redump"`
		Submission struct {
			OutputDir        string `toml:"output_dir"`
			IncludeArtifacts bool   `toml:"include_artifacts"`
		} `toml:"submission"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Redump.Username = "user"
	custom.Redump.Password = "pass"
	custom.Redump.BaseURL = "https://example.com/catalog/"
	custom.Submission.OutputDir = filepath.Join(tempDir, "out")
	custom.Submission.IncludeArtifacts = true
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Redump.BaseURL != "https://example.com/catalog" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Redump.BaseURL)
	}
	if !cfg.Submission.IncludeArtifacts {
		t.Fatal("expected include_artifacts from file")
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercased log format, got %q", cfg.Logging.Format)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Submission.OutputDir); err != nil || !info.IsDir() {
		t.Fatalf("expected output dir to exist: %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(configPath, []byte("[redump]\nusernme = \"typo\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"defaults", func(*config.Config) {}, ""},
		{"bad base url", func(c *config.Config) { c.Redump.BaseURL = "redump.org" }, "redump.base_url"},
		{"half credentials", func(c *config.Config) { c.Redump.Username = "only-user" }, "set together"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"negative rate", func(c *config.Config) { c.Redump.RequestsPerSecond = -1 }, "requests_per_second"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("REDUMP_USERNAME", "")
	t.Setenv("REDUMP_PASSWORD", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("sample config should load: exists=%v err=%v", exists, err)
	}
}
