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

// Package testutil provides common test helpers for gh-find
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// RecordedRequest captures what a mock server received.
type RecordedRequest struct {
	Path      string
	RawQuery  string
	Accept    string
	UserAgent string
}

// MockServer provides common mock server configurations for testing
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// Requests returns a copy of every request received so far.
func (m *MockServer) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, or the zero value.
func (m *MockServer) LastRequest() RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return RecordedRequest{}
	}
	return m.requests[len(m.requests)-1]
}

func (m *MockServer) record(r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, RecordedRequest{
		Path:      r.URL.Path,
		RawQuery:  r.URL.RawQuery,
		Accept:    r.Header.Get("Accept"),
		UserAgent: r.Header.Get("User-Agent"),
	})
}

// NewMockServer creates a mock server that records requests and delegates to handler.
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.record(r)
		handler(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// NewGitHubServer creates a mock server that answers the four endpoints gh-find
// uses with generated repositories. Search endpoints return an envelope, the
// user repository list returns a bare array. per_page bounds the item count.
func NewGitHubServer(t *testing.T, total int) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		count := perPage(r.URL.RawQuery, total)

		switch {
		case strings.HasPrefix(r.URL.Path, "/search/"):
			writeJSON(w, http.StatusOK, GenerateSearchResponse(total, count))
		case strings.HasPrefix(r.URL.Path, "/users/") && strings.HasSuffix(r.URL.Path, "/repos"):
			owner := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/users/"), "/repos")
			if owner == "ghost" {
				writeJSON(w, http.StatusNotFound, map[string]interface{}{"message": "Not Found"})
				return
			}
			writeJSON(w, http.StatusOK, GenerateRepos(owner, count))
		default:
			writeJSON(w, http.StatusNotFound, map[string]interface{}{"message": "Not Found"})
		}
	})
}

// NewErrorServer creates a mock server that always returns the specified
// status with a GitHub-style error body.
func NewErrorServer(t *testing.T, statusCode int, message string) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, statusCode, map[string]interface{}{
			"message":           message,
			"documentation_url": "https://docs.github.com/rest",
		})
	})
}

// NewRawServer creates a mock server that always answers 200 with body.
func NewRawServer(t *testing.T, body string) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

// GenerateSearchResponse generates a search envelope reporting total matches
// and carrying count repositories.
func GenerateSearchResponse(total, count int) map[string]interface{} {
	return NewSearchResponseBuilder().
		WithTotal(total).
		WithItems(generateItems("octocat", count)...).
		Build()
}

// GenerateRepos generates a bare repository list for owner.
func GenerateRepos(owner string, count int) []map[string]interface{} {
	return generateItems(owner, count)
}

func generateItems(owner string, count int) []map[string]interface{} {
	items := make([]map[string]interface{}, 0, count)
	for i := 1; i <= count; i++ {
		items = append(items, NewRepoBuilder(owner, "repo-"+strconv.Itoa(i)).
			WithStars(i*10).
			Build())
	}
	return items
}

// perPage reads per_page from a raw query without decoding it, since the
// search text is passed to GitHub unencoded.
func perPage(rawQuery string, max int) int {
	for _, part := range strings.Split(rawQuery, "&") {
		if v, ok := strings.CutPrefix(part, "per_page="); ok {
			if n, err := strconv.Atoi(v); err == nil && n < max {
				return n
			}
		}
	}
	return max
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
