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

package testutil

import (
	"fmt"
	"time"
)

// RepoBuilder helps construct repository objects as GitHub returns them.
type RepoBuilder struct {
	repo map[string]interface{}
}

// NewRepoBuilder creates a builder with realistic defaults for owner/name.
func NewRepoBuilder(owner, name string) *RepoBuilder {
	created := time.Date(2016, 2, 29, 15, 23, 48, 0, time.UTC)
	return &RepoBuilder{
		repo: map[string]interface{}{
			"id":                len(owner)*1000 + len(name),
			"name":              name,
			"full_name":         fmt.Sprintf("%s/%s", owner, name),
			"description":       fmt.Sprintf("Description of %s", name),
			"html_url":          fmt.Sprintf("https://github.com/%s/%s", owner, name),
			"clone_url":         fmt.Sprintf("https://github.com/%s/%s.git", owner, name),
			"language":          "Go",
			"fork":              false,
			"size":              1024,
			"stargazers_count":  0,
			"watchers_count":    0,
			"open_issues_count": 0,
			"forks":             0,
			"created_at":        created.Format(time.RFC3339),
			"updated_at":        created.AddDate(3, 0, 0).Format(time.RFC3339),
			"owner": map[string]interface{}{
				"login": owner,
				"type":  "User",
			},
		},
	}
}

// WithDescription sets the description; nil produces JSON null.
func (b *RepoBuilder) WithDescription(desc interface{}) *RepoBuilder {
	b.repo["description"] = desc
	return b
}

// WithLanguage sets the primary language.
func (b *RepoBuilder) WithLanguage(lang string) *RepoBuilder {
	b.repo["language"] = lang
	return b
}

// WithStars sets stargazers_count and watchers_count.
func (b *RepoBuilder) WithStars(n int) *RepoBuilder {
	b.repo["stargazers_count"] = n
	b.repo["watchers_count"] = n
	return b
}

// WithFork marks the repository as a fork.
func (b *RepoBuilder) WithFork(fork bool) *RepoBuilder {
	b.repo["fork"] = fork
	return b
}

// Without removes fields from the repository.
func (b *RepoBuilder) Without(fields ...string) *RepoBuilder {
	for _, f := range fields {
		delete(b.repo, f)
	}
	return b
}

// Build returns the repository object.
func (b *RepoBuilder) Build() map[string]interface{} {
	return b.repo
}

// SearchResponseBuilder helps construct search envelopes.
type SearchResponseBuilder struct {
	total      int
	incomplete bool
	items      []map[string]interface{}
}

// NewSearchResponseBuilder creates an empty envelope builder.
func NewSearchResponseBuilder() *SearchResponseBuilder {
	return &SearchResponseBuilder{items: []map[string]interface{}{}}
}

// WithTotal sets total_count.
func (b *SearchResponseBuilder) WithTotal(n int) *SearchResponseBuilder {
	b.total = n
	return b
}

// WithIncomplete sets incomplete_results.
func (b *SearchResponseBuilder) WithIncomplete(incomplete bool) *SearchResponseBuilder {
	b.incomplete = incomplete
	return b
}

// WithItems appends items.
func (b *SearchResponseBuilder) WithItems(items ...map[string]interface{}) *SearchResponseBuilder {
	b.items = append(b.items, items...)
	return b
}

// Build returns the envelope.
func (b *SearchResponseBuilder) Build() map[string]interface{} {
	return map[string]interface{}{
		"total_count":        b.total,
		"incomplete_results": b.incomplete,
		"items":              b.items,
	}
}
