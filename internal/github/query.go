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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sirseerhq/gh-find/internal/config"
	ghfinderrors "github.com/sirseerhq/gh-find/internal/errors"
)

// Endpoint identifies one of the GitHub endpoints gh-find talks to.
type Endpoint int

const (
	EndpointRepositories Endpoint = iota
	EndpointTopics
	EndpointUsers
	EndpointUserRepos
)

func (e Endpoint) String() string {
	switch e {
	case EndpointRepositories:
		return "repository search"
	case EndpointTopics:
		return "topic search"
	case EndpointUsers:
		return "user search"
	case EndpointUserRepos:
		return "user repository list"
	default:
		return fmt.Sprintf("endpoint(%d)", int(e))
	}
}

// BaseURL returns the endpoint's base URL under the configured API root.
func (e Endpoint) BaseURL(g config.GitHubConfig) string {
	switch e {
	case EndpointRepositories:
		return g.RepositorySearchURL()
	case EndpointTopics:
		return g.TopicSearchURL()
	case EndpointUsers:
		return g.UserSearchURL()
	case EndpointUserRepos:
		return g.UserRepositoriesURL()
	default:
		return ""
	}
}

// MediaType returns the Accept header value for the endpoint. Topic search
// is only served under the preview media type.
func (e Endpoint) MediaType(g config.GitHubConfig) string {
	if e == EndpointTopics {
		return g.PreviewMediaType
	}
	return g.MediaType
}

// argument names what the endpoint's free-text argument is, for error messages.
func (e Endpoint) argument() string {
	if e == EndpointUserRepos {
		return "username"
	}
	return "query"
}

// SortKey is a result ordering accepted by GitHub. The zero value means
// "not specified" and leaves the choice to GitHub (best match).
type SortKey string

const (
	SortStars            SortKey = "stars"
	SortForks            SortKey = "forks"
	SortHelpWantedIssues SortKey = "help-wanted-issues"
	SortUpdated          SortKey = "updated"
	SortBestMatch        SortKey = "best-match"
)

// SortKeys lists every accepted sort key in help-text order.
var SortKeys = []SortKey{SortStars, SortForks, SortHelpWantedIssues, SortUpdated, SortBestMatch}

func (s SortKey) String() string { return string(s) }

// Set implements pflag.Value.
func (s *SortKey) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, k := range SortKeys {
		if string(k) == v {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", joinValues(SortKeys))
}

// Type implements pflag.Value.
func (s *SortKey) Type() string { return "sort" }

func (s SortKey) valid() bool {
	if s == "" {
		return true
	}
	for _, k := range SortKeys {
		if k == s {
			return true
		}
	}
	return false
}

// Order is a result direction. The zero value means "not specified" (GitHub
// defaults to descending).
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Orders lists every accepted order.
var Orders = []Order{OrderAsc, OrderDesc}

func (o Order) String() string { return string(o) }

// Set implements pflag.Value.
func (o *Order) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, k := range Orders {
		if string(k) == v {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", joinValues(Orders))
}

// Type implements pflag.Value.
func (o *Order) Type() string { return "order" }

func (o Order) valid() bool {
	return o == "" || o == OrderAsc || o == OrderDesc
}

var (
	_ pflag.Value = (*SortKey)(nil)
	_ pflag.Value = (*Order)(nil)
)

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

const (
	// DefaultPageSize is used when SearchRequest.PageSize is zero.
	DefaultPageSize = 100
	// MaxPageSize is GitHub's per_page limit.
	MaxPageSize = 100
)

// SearchRequest describes one search or list call. It is a plain value built
// fresh for each invocation.
type SearchRequest struct {
	Endpoint Endpoint
	// Query is the GitHub search query with '+' separating keywords and
	// qualifiers (e.g. "tetris+language:assembly"). For EndpointUserRepos it
	// holds the username instead.
	Query    string
	Sort     SortKey
	Order    Order
	PageSize int
}

// BuildURL assembles the request URL for req under base.
//
// The query text is appended as given; callers pass it already encoded per
// GitHub's search syntax. per_page is always present exactly once, followed
// by the sort key and then the order when they are set.
func BuildURL(base string, req SearchRequest) (string, error) {
	arg := strings.TrimSpace(req.Query)
	if arg == "" {
		return "", ghfinderrors.InvalidRequestf("a %s is required for %s", req.Endpoint.argument(), req.Endpoint)
	}
	if base == "" {
		return "", ghfinderrors.InvalidRequestf("no base URL for %s", req.Endpoint)
	}

	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return "", ghfinderrors.InvalidRequestf("count must be between 1 and %d, got %d", MaxPageSize, pageSize)
	}
	if !req.Sort.valid() {
		return "", ghfinderrors.InvalidRequestf("unknown sort %q (want one of %s)", req.Sort, joinValues(SortKeys))
	}
	if !req.Order.valid() {
		return "", ghfinderrors.InvalidRequestf("unknown order %q (want one of %s)", req.Order, joinValues(Orders))
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString(arg)
	if req.Endpoint == EndpointUserRepos {
		b.WriteString("/repos?per_page=")
	} else {
		b.WriteString("&per_page=")
	}
	b.WriteString(strconv.Itoa(pageSize))
	if req.Sort != "" {
		b.WriteString("&")
		b.WriteString(string(req.Sort))
	}
	if req.Order != "" {
		b.WriteString("&")
		b.WriteString(string(req.Order))
	}
	return b.String(), nil
}
