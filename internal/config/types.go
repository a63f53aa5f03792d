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
	"strings"
	"time"
)

// Config represents the complete configuration for gh-find.
// It is loaded once at start-up and passed by value into the client and
// commands; nothing mutates it afterwards.
type Config struct {
	GitHub   GitHubConfig   `yaml:"github"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// GitHubConfig contains GitHub API-related configuration.
type GitHubConfig struct {
	APIEndpoint string `yaml:"api_endpoint"`
	// MediaType is sent as Accept for every endpoint except topic search.
	MediaType string `yaml:"media_type"`
	// PreviewMediaType is required by the topic search endpoint.
	PreviewMediaType string `yaml:"preview_media_type"`
	UserAgent        string `yaml:"user_agent"`
}

// DefaultsConfig contains default values for command flags.
type DefaultsConfig struct {
	Count   int           `yaml:"count"`
	Long    bool          `yaml:"long"`
	Format  string        `yaml:"format"`
	Timeout time.Duration `yaml:"timeout"`
}

// Output formats.
const (
	FormatText   = "text"
	FormatNDJSON = "ndjson"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint:      "https://api.github.com",
			MediaType:        "application/vnd.github.v3+json",
			PreviewMediaType: "application/vnd.github.mercy-preview+json",
			UserAgent:        "gh-find",
		},
		Defaults: DefaultsConfig{
			Count:   100,
			Long:    false,
			Format:  FormatText,
			Timeout: 30 * time.Second,
		},
	}
}

// RepositorySearchURL is the base URL for repository search; the query is appended to it.
func (g GitHubConfig) RepositorySearchURL() string { return g.api() + "/search/repositories?q=" }

// TopicSearchURL is the base URL for topic search.
func (g GitHubConfig) TopicSearchURL() string { return g.api() + "/search/topics?q=" }

// UserSearchURL is the base URL for user search.
func (g GitHubConfig) UserSearchURL() string { return g.api() + "/search/users?q=" }

// UserRepositoriesURL is the base URL for listing a user's repositories;
// the username and "/repos" are appended to it.
func (g GitHubConfig) UserRepositoriesURL() string { return g.api() + "/users/" }

func (g GitHubConfig) api() string {
	return strings.TrimRight(g.APIEndpoint, "/")
}
