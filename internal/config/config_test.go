// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GitHub.APIEndpoint != "https://api.github.com" {
		t.Errorf("APIEndpoint = %s, want https://api.github.com", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.MediaType != "application/vnd.github.v3+json" {
		t.Errorf("MediaType = %s, want application/vnd.github.v3+json", cfg.GitHub.MediaType)
	}
	if cfg.GitHub.PreviewMediaType != "application/vnd.github.mercy-preview+json" {
		t.Errorf("PreviewMediaType = %s, want application/vnd.github.mercy-preview+json", cfg.GitHub.PreviewMediaType)
	}

	if cfg.Defaults.Count != 100 {
		t.Errorf("Count = %d, want 100", cfg.Defaults.Count)
	}
	if cfg.Defaults.Long {
		t.Error("Long = true, want false")
	}
	if cfg.Defaults.Format != FormatText {
		t.Errorf("Format = %s, want %s", cfg.Defaults.Format, FormatText)
	}
	if cfg.Defaults.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Defaults.Timeout)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestBaseURLs(t *testing.T) {
	g := DefaultConfig().GitHub

	tests := []struct {
		got  string
		want string
	}{
		{g.RepositorySearchURL(), "https://api.github.com/search/repositories?q="},
		{g.TopicSearchURL(), "https://api.github.com/search/topics?q="},
		{g.UserSearchURL(), "https://api.github.com/search/users?q="},
		{g.UserRepositoriesURL(), "https://api.github.com/users/"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("base URL = %s, want %s", tt.got, tt.want)
		}
	}

	g.APIEndpoint = "https://github.example.com/api/v3/"
	if got := g.UserSearchURL(); got != "https://github.example.com/api/v3/search/users?q=" {
		t.Errorf("trailing slash not trimmed: %s", got)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
github:
  api_endpoint: https://github.enterprise.com/api/v3
  user_agent: my-agent

defaults:
  count: 25
  long: true
  format: ndjson
  timeout: 5s
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GitHub.APIEndpoint != "https://github.enterprise.com/api/v3" {
		t.Errorf("APIEndpoint = %s, want https://github.enterprise.com/api/v3", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.UserAgent != "my-agent" {
		t.Errorf("UserAgent = %s, want my-agent", cfg.GitHub.UserAgent)
	}
	// Unset keys keep their defaults.
	if cfg.GitHub.MediaType != "application/vnd.github.v3+json" {
		t.Errorf("MediaType = %s, want default", cfg.GitHub.MediaType)
	}

	if cfg.Defaults.Count != 25 {
		t.Errorf("Count = %d, want 25", cfg.Defaults.Count)
	}
	if !cfg.Defaults.Long {
		t.Error("Long = false, want true")
	}
	if cfg.Defaults.Format != FormatNDJSON {
		t.Errorf("Format = %s, want ndjson", cfg.Defaults.Format)
	}
	if cfg.Defaults.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s", cfg.Defaults.Timeout)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
github:
  api_endpoint: https://from-file.example.com
defaults:
  count: 10
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("GITHUB_API_ENDPOINT", "https://from-env.example.com")
	t.Setenv("GHFIND_COUNT", "42")
	t.Setenv("GHFIND_FORMAT", "NDJSON")
	t.Setenv("GHFIND_TIMEOUT", "2m")
	t.Setenv("GHFIND_LONG", "yes")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GitHub.APIEndpoint != "https://from-env.example.com" {
		t.Errorf("APIEndpoint = %s, want env value", cfg.GitHub.APIEndpoint)
	}
	if cfg.Defaults.Count != 42 {
		t.Errorf("Count = %d, want 42", cfg.Defaults.Count)
	}
	if cfg.Defaults.Format != FormatNDJSON {
		t.Errorf("Format = %s, want ndjson", cfg.Defaults.Format)
	}
	if cfg.Defaults.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %s, want 2m", cfg.Defaults.Timeout)
	}
	if !cfg.Defaults.Long {
		t.Error("Long = false, want true")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmpDir := t.TempDir()

	write := func(name, content string) string {
		p := filepath.Join(tmpDir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    filepath.Join(tmpDir, "missing.yaml"),
			wantErr: "failed to read config file",
		},
		{
			name:    "malformed yaml",
			path:    write("bad.yaml", "github: [unterminated"),
			wantErr: "failed to parse config file",
		},
		{
			name:    "count out of range",
			path:    write("count.yaml", "defaults:\n  count: 500\n"),
			wantErr: "between 1 and 100",
		},
		{
			name:    "unknown format",
			path:    write("format.yaml", "defaults:\n  format: xml\n"),
			wantErr: "unknown output format",
		},
		{
			name:    "relative endpoint",
			path:    write("endpoint.yaml", "github:\n  api_endpoint: api.github.com\n"),
			wantErr: "not an absolute URL",
		},
		{
			name:    "bad env count",
			path:    write("ok.yaml", "defaults:\n  count: 5\n"),
			env:     map[string]string{"GHFIND_COUNT": "lots"},
			wantErr: "invalid GHFIND_COUNT",
		},
		{
			name:    "bad env timeout",
			path:    write("ok2.yaml", "defaults:\n  count: 5\n"),
			env:     map[string]string{"GHFIND_TIMEOUT": "soon"},
			wantErr: "invalid GHFIND_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".gh-find")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("defaults:\n  count: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Defaults.Count != 7 {
		t.Errorf("Count = %d, want 7", cfg.Defaults.Count)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/octocat")
	if got := expandPath("~/cfg.yaml"); got != filepath.Join("/home/octocat", "cfg.yaml") {
		t.Errorf("expandPath(~/cfg.yaml) = %s", got)
	}
	if got := expandPath("/etc/gh-find.yaml"); got != "/etc/gh-find.yaml" {
		t.Errorf("expandPath(/etc/gh-find.yaml) = %s", got)
	}
}
