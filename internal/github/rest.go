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
	"time"

	"github.com/imroc/req/v3"

	"github.com/sirseerhq/gh-find/internal/config"
	ghfinderrors "github.com/sirseerhq/gh-find/internal/errors"
	"github.com/sirseerhq/gh-find/pkg/version"
)

// Logger is the subset of a leveled logger the REST client reports through.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// RESTClient implements Client against GitHub's v3 REST API.
type RESTClient struct {
	http *req.Client
	cfg  config.GitHubConfig
}

// RESTClientOption configures a RESTClient.
type RESTClientOption func(*RESTClient)

// WithTimeout bounds each request. Zero leaves req's default in place.
func WithTimeout(d time.Duration) RESTClientOption {
	return func(c *RESTClient) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithLogger routes the HTTP client's diagnostics to l at debug level.
func WithLogger(l Logger) RESTClientOption {
	return func(c *RESTClient) {
		if l != nil {
			c.http.SetLogger(l).EnableDebugLog()
		}
	}
}

// NewRESTClient creates a client for the API root configured in cfg.
func NewRESTClient(cfg config.GitHubConfig, opts ...RESTClientOption) *RESTClient {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "gh-find"
	}

	c := &RESTClient{
		http: req.C().
			SetUserAgent(fmt.Sprintf("%s/%s", userAgent, version.Version)).
			SetCommonHeader("Accept", cfg.MediaType),
		cfg: cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the fully qualified URL Search would request for r.
func (c *RESTClient) URL(r SearchRequest) (string, error) {
	return BuildURL(r.Endpoint.BaseURL(c.cfg), r)
}

// Search implements Client.
func (c *RESTClient) Search(ctx context.Context, r SearchRequest) (*Response, error) {
	u, err := c.URL(r)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", r.Endpoint.MediaType(c.cfg)).
		Get(u)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ghfinderrors.ErrNetworkFailure, err)
	}

	if !resp.IsSuccessState() {
		return nil, &ghfinderrors.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        u,
			Message:    errorMessage(resp.Bytes()),
		}
	}

	return DecodeResponse(resp.Bytes())
}

// errorMessage extracts the "message" field GitHub puts in error bodies.
func errorMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Message
}
