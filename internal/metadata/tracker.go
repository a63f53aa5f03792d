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

// Package metadata collects statistics about a search invocation: the URL
// that was requested, the shape and size of the response, the date range of
// the returned items and the request duration. The record is reported in the
// debug log and never written to disk.
package metadata

import (
	"fmt"
	"time"

	"github.com/sirseerhq/gh-find/internal/github"
)

// Tracker collects statistics during a search. Create one right before the
// request is issued so the duration covers the round trip.
type Tracker struct {
	startTime    time.Time
	apiCallCount int
	stats        ItemStats
}

// ItemStats holds the response-level counters and the item date range.
type ItemStats struct {
	Shape      string
	TotalCount int64
	Incomplete bool
	Items      int
	Oldest     time.Time // earliest created_at
	Newest     time.Time // latest updated_at
}

// New creates a new metadata tracker started at the current time.
func New() *Tracker {
	return &Tracker{
		startTime: time.Now(),
	}
}

// IncrementAPICall records that a request was sent.
func (t *Tracker) IncrementAPICall() {
	t.apiCallCount++
}

// RecordResponse updates the statistics from a decoded response.
func (t *Tracker) RecordResponse(resp *github.Response) {
	if resp == nil {
		return
	}
	t.stats.Shape = resp.Shape.String()
	t.stats.TotalCount = resp.TotalCount
	t.stats.Incomplete = resp.IncompleteResults

	for _, item := range resp.Items {
		t.UpdateItemStats(itemTime(item, "created_at"), itemTime(item, "updated_at"))
	}
}

// UpdateItemStats counts one item and widens the date range. Zero times are
// ignored for the range.
func (t *Tracker) UpdateItemStats(createdAt, updatedAt time.Time) {
	t.stats.Items++

	if !createdAt.IsZero() && (t.stats.Oldest.IsZero() || createdAt.Before(t.stats.Oldest)) {
		t.stats.Oldest = createdAt
	}
	if updatedAt.After(t.stats.Newest) {
		t.stats.Newest = updatedAt
	}
}

// Stats returns the statistics collected so far.
func (t *Tracker) Stats() ItemStats {
	return t.stats
}

// GenerateMetadata creates the SearchMetadata record for a completed search.
func (t *Tracker) GenerateMetadata(version string, params SearchParams) *SearchMetadata {
	completedAt := time.Now()
	duration := completedAt.Sub(t.startTime)

	return &SearchMetadata{
		Version:    version,
		SearchID:   fmt.Sprintf("%s-%d", searchType(params.Endpoint), t.startTime.Unix()),
		Parameters: params,
		Results: SearchResults{
			Shape:        t.stats.Shape,
			TotalCount:   t.stats.TotalCount,
			Incomplete:   t.stats.Incomplete,
			Items:        t.stats.Items,
			OldestItem:   t.stats.Oldest,
			NewestItem:   t.stats.Newest,
			Duration:     duration.String(),
			APICallCount: t.apiCallCount,
			StartedAt:    t.startTime,
			CompletedAt:  completedAt,
		},
	}
}

// KeyValues flattens the record into alternating keys and values for a
// structured logger.
func (m *SearchMetadata) KeyValues() []interface{} {
	kv := []interface{}{
		"search_id", m.SearchID,
		"endpoint", m.Parameters.Endpoint,
		"shape", m.Results.Shape,
		"items", m.Results.Items,
		"api_calls", m.Results.APICallCount,
		"duration", m.Results.Duration,
	}
	if m.Results.Shape == github.ShapeEnvelope.String() {
		kv = append(kv, "total_count", m.Results.TotalCount, "incomplete_results", m.Results.Incomplete)
	}
	if !m.Results.OldestItem.IsZero() {
		kv = append(kv, "oldest", m.Results.OldestItem.Format(time.DateOnly))
	}
	if !m.Results.NewestItem.IsZero() {
		kv = append(kv, "newest", m.Results.NewestItem.Format(time.DateOnly))
	}
	return kv
}

func itemTime(item github.Item, field string) time.Time {
	s, ok := item[field].(string)
	if !ok {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func searchType(endpoint string) string {
	if endpoint == github.EndpointUserRepos.String() {
		return "list"
	}
	return "search"
}
