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

package giterror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	ghfinderrors "github.com/sirseerhq/gh-find/internal/errors"
)

func TestGitHubErrorInspector_IsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "404 not found",
			err:  errors.New("404 Not Found"),
			want: true,
		},
		{
			name: "resource not found",
			err:  errors.New("Resource not found"),
			want: true,
		},
		{
			name: "wrapped not found error",
			err:  fmt.Errorf("failed to search: %w", errors.New("404 Not Found")),
			want: true,
		},
		{
			name: "not a not found error",
			err:  errors.New("internal server error"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "rate limit exceeded",
			err:  errors.New("API rate limit exceeded"),
			want: true,
		},
		{
			name: "429 too many requests",
			err:  errors.New("429 Too Many Requests"),
			want: true,
		},
		{
			name: "secondary rate limit",
			err:  errors.New("You have exceeded a secondary rate limit"),
			want: true,
		},
		{
			name: "not a rate limit error",
			err:  errors.New("timeout occurred"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "connection refused",
			err:  errors.New("dial tcp 127.0.0.1:443: connection refused"),
			want: true,
		},
		{
			name: "no such host",
			err:  errors.New("dial tcp: lookup api.github.com: no such host"),
			want: true,
		},
		{
			name: "timeout",
			err:  errors.New("request timeout after 30s"),
			want: true,
		},
		{
			name: "context deadline",
			err:  fmt.Errorf("get: %w", context.DeadlineExceeded),
			want: true,
		},
		{
			name: "tls handshake error",
			err:  errors.New("tls handshake timeout"),
			want: true,
		},
		{
			name: "not a network error",
			err:  errors.New("invalid json response"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.want)
			}
		})
	}
}

type networkError struct{}

func (networkError) Error() string        { return "custom transport error" }
func (networkError) IsNetworkError() bool { return true }

func TestErrorChainInspector(t *testing.T) {
	chainInspector := NewErrorChainInspector(NewInspector())

	tests := []struct {
		name   string
		err    error
		method string
		want   bool
	}{
		{
			name:   "http error decides not found",
			err:    fmt.Errorf("list failed: %w", &ghfinderrors.HTTPError{StatusCode: 404, Status: "404 Not Found"}),
			method: "notfound",
			want:   true,
		},
		{
			name:   "http error overrides text match",
			err:    &ghfinderrors.HTTPError{StatusCode: 500, Status: "500 Internal Server Error", URL: "https://api.github.com/search/users?q=404"},
			method: "notfound",
			want:   false,
		},
		{
			name:   "http error rate limit",
			err:    &ghfinderrors.HTTPError{StatusCode: 403, Status: "403 Forbidden", Message: "API rate limit exceeded"},
			method: "ratelimit",
			want:   true,
		},
		{
			name:   "custom network error type",
			err:    fmt.Errorf("search failed: %w", networkError{}),
			method: "network",
			want:   true,
		},
		{
			name:   "falls back to string checking",
			err:    errors.New("429 Too Many Requests"),
			method: "ratelimit",
			want:   true,
		},
		{
			name:   "no match in chain or string",
			err:    errors.New("some other error"),
			method: "network",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			switch tt.method {
			case "notfound":
				got = chainInspector.IsNotFoundError(tt.err)
			case "ratelimit":
				got = chainInspector.IsRateLimitError(tt.err)
			case "network":
				got = chainInspector.IsNetworkError(tt.err)
			}
			if got != tt.want {
				t.Errorf("ErrorChainInspector.%s() = %v, want %v", tt.method, got, tt.want)
			}
		})
	}
}

func TestHint(t *testing.T) {
	in := NewErrorChainInspector(NewInspector())

	if got := Hint(in, nil); got != "" {
		t.Errorf("Hint(nil) = %q, want empty", got)
	}
	if got := Hint(in, &ghfinderrors.HTTPError{StatusCode: 429}); got == "" {
		t.Error("expected a hint for rate limited requests")
	}
	if got := Hint(in, &ghfinderrors.HTTPError{StatusCode: 422, Status: "422 Unprocessable Entity"}); got != "" {
		t.Errorf("Hint(422) = %q, want empty", got)
	}
}
