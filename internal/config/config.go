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

// Package config loads gh-find settings from defaults, an optional YAML
// file and environment variables, in that order of precedence (lowest first).
// Command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from the specified path or default locations.
// If configPath is empty, it searches for config files in standard locations.
// Environment variables override file values.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		for _, path := range defaultPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultPaths() []string {
	paths := []string{
		".gh-find.yaml",
		".gh-find.yml",
	}
	if home := homeDir(); home != "" {
		paths = append(paths,
			filepath.Join(home, ".gh-find", "config.yaml"),
			filepath.Join(home, ".gh-find", "config.yml"),
		)
	}
	return paths
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if endpoint := os.Getenv("GITHUB_API_ENDPOINT"); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}

	if count := os.Getenv("GHFIND_COUNT"); count != "" {
		n, err := parsePositiveInt(count)
		if err != nil {
			return fmt.Errorf("invalid GHFIND_COUNT: %w", err)
		}
		cfg.Defaults.Count = n
	}
	if format := os.Getenv("GHFIND_FORMAT"); format != "" {
		cfg.Defaults.Format = strings.ToLower(strings.TrimSpace(format))
	}
	if timeout := os.Getenv("GHFIND_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid GHFIND_TIMEOUT: %w", err)
		}
		cfg.Defaults.Timeout = d
	}
	if long := os.Getenv("GHFIND_LONG"); long != "" {
		cfg.Defaults.Long = parseBool(long)
	}

	return nil
}

func homeDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE") // Windows
	}
	return home
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir(), path[2:])
	}
	return os.ExpandEnv(path)
}

func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Defaults.Count < 1 || c.Defaults.Count > 100 {
		return fmt.Errorf("default count must be between 1 and 100, got: %d", c.Defaults.Count)
	}
	if c.Defaults.Format != FormatText && c.Defaults.Format != FormatNDJSON {
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Defaults.Format, FormatText, FormatNDJSON)
	}
	if c.Defaults.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative, got: %s", c.Defaults.Timeout)
	}
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("GitHub API endpoint cannot be empty")
	}
	u, err := url.Parse(c.GitHub.APIEndpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("GitHub API endpoint %q is not an absolute URL", c.GitHub.APIEndpoint)
	}
	if c.GitHub.MediaType == "" || c.GitHub.PreviewMediaType == "" {
		return fmt.Errorf("GitHub media types cannot be empty")
	}
	return nil
}
