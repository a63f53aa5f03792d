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

package metadata

import (
	"time"
)

// SearchMetadata is the record of a single search or list invocation: what
// was asked, what came back and how long it took.
type SearchMetadata struct {
	Version    string        `json:"version"`
	SearchID   string        `json:"search_id"`
	Parameters SearchParams  `json:"parameters"`
	Results    SearchResults `json:"results"`
}

// SearchParams captures the inputs of a search.
type SearchParams struct {
	Endpoint string `json:"endpoint"`
	URL      string `json:"url"`
	Query    string `json:"query"`
	Sort     string `json:"sort,omitempty"`
	Order    string `json:"order,omitempty"`
	PageSize int    `json:"page_size"`
	Long     bool   `json:"long"`
}

// SearchResults holds statistics about the response.
type SearchResults struct {
	Shape        string    `json:"shape"`
	TotalCount   int64     `json:"total_count"`
	Incomplete   bool      `json:"incomplete_results"`
	Items        int       `json:"items"`
	OldestItem   time.Time `json:"oldest_created_at"`
	NewestItem   time.Time `json:"newest_updated_at"`
	Duration     string    `json:"duration"`
	APICallCount int       `json:"api_calls_made"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
}
