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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRequest indicates a required argument (query or username) is
	// missing or a modifier is out of range.
	// Maps to exit code 2.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrHTTPFailure indicates GitHub answered with a non-success status.
	// Maps to exit code 4.
	ErrHTTPFailure = errors.New("github request failed")

	// ErrUnexpectedResponse indicates the response body could not be decoded.
	// Maps to exit code 1.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// HTTPError describes a non-success HTTP response. It unwraps to ErrHTTPFailure.
type HTTPError struct {
	StatusCode int
	// Status is the status line description, e.g. "404 Not Found".
	Status string
	URL    string
	// Message is the "message" field of GitHub's error body, if any.
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Status, e.Message, e.URL)
	}
	return fmt.Sprintf("%s (%s)", e.Status, e.URL)
}

func (e *HTTPError) Unwrap() error { return ErrHTTPFailure }

// IsNotFoundError reports whether the response was a 404.
func (e *HTTPError) IsNotFoundError() bool { return e.StatusCode == 404 }

// IsRateLimitError reports whether GitHub refused the request for rate limiting.
func (e *HTTPError) IsRateLimitError() bool {
	return e.StatusCode == 429 || (e.StatusCode == 403 && strings.Contains(strings.ToLower(e.Message), "rate limit"))
}

// InvalidRequestf formats a message and wraps ErrInvalidRequest.
func InvalidRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
