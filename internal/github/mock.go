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

package github

import (
	"context"
	"encoding/json"
	"fmt"

	ghfinderrors "github.com/sirseerhq/gh-find/internal/errors"
)

// MockClient implements Client for testing. Requests are still run through
// BuildURL so invalid requests fail exactly as they would against GitHub.
type MockClient struct {
	// Response to return
	Response *Response

	// Error to return
	Error error

	// Behavior flags
	ShouldFailNetwork  bool
	ShouldFailNotFound bool

	// Track calls for verification
	CallCount   int
	LastRequest SearchRequest
	LastURL     string
}

// NewMockClient creates a mock returning a two-repository search envelope.
func NewMockClient() *MockClient {
	return &MockClient{
		Response: generateTestResponse(),
	}
}

// Search implements Client.
func (m *MockClient) Search(ctx context.Context, req SearchRequest) (*Response, error) {
	m.CallCount++
	m.LastRequest = req

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	u, err := BuildURL("https://api.github.test/", req)
	if err != nil {
		return nil, err
	}
	m.LastURL = u

	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("%w: dial tcp: connection refused", ghfinderrors.ErrNetworkFailure)
	}

	if m.ShouldFailNotFound {
		return nil, &ghfinderrors.HTTPError{StatusCode: 404, Status: "404 Not Found", URL: u, Message: "Not Found"}
	}

	if m.Error != nil {
		return nil, m.Error
	}

	return m.Response, nil
}

func generateTestResponse() *Response {
	return &Response{
		Shape:      ShapeEnvelope,
		TotalCount: 2,
		Items: []Item{
			{
				"name":              "netbox",
				"full_name":         "digitalocean/netbox",
				"description":       "IP address management (IPAM) and data center infrastructure management (DCIM) tool.",
				"html_url":          "https://github.com/digitalocean/netbox",
				"clone_url":         "https://github.com/digitalocean/netbox.git",
				"language":          "Python",
				"fork":              false,
				"size":              json.Number("24866"),
				"stargazers_count":  json.Number("4783"),
				"watchers_count":    json.Number("4783"),
				"open_issues_count": json.Number("186"),
				"forks":             json.Number("1036"),
				"created_at":        "2016-02-29T15:23:48Z",
				"updated_at":        "2019-01-29T20:02:32Z",
			},
			{
				"name":        "tetris",
				"description": nil,
				"html_url":    "https://github.com/octocat/tetris",
				"language":    "Assembly",
				"fork":        true,
				"created_at":  "2012-03-06T23:43:19Z",
				"updated_at":  "2018-11-02T10:15:00Z",
			},
		},
	}
}

// MockClientOption configures a MockClient.
type MockClientOption func(*MockClient)

// WithResponse sets the response the mock returns.
func WithResponse(resp *Response) MockClientOption {
	return func(m *MockClient) {
		m.Response = resp
	}
}

// WithItems makes the mock return a bare list of items.
func WithItems(items []Item) MockClientOption {
	return func(m *MockClient) {
		m.Response = &Response{Shape: ShapeList, Items: items}
	}
}

// WithError sets the error the mock returns.
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithNotFound makes the mock fail with a 404.
func WithNotFound() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailNotFound = true
	}
}

// WithNetworkFailure makes the mock fail as if the connection was refused.
func WithNetworkFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailNetwork = true
	}
}

// NewMockClientWithOptions creates a mock client with the given options.
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
