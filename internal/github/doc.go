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

// Package github provides a client for GitHub's v3 REST search and list
// endpoints. It builds request URLs, picks the media type each endpoint
// needs, and decodes responses into a shape-aware Response without imposing
// a schema on the returned items.
//
// The package includes:
//   - A Client interface and its REST implementation built on imroc/req
//   - BuildURL, the query builder shared by every endpoint
//   - Sort and order enums usable directly as command-line flag values
//   - A mock client for testing
//
// Basic usage:
//
//	client := github.NewRESTClient(cfg.GitHub, github.WithTimeout(30*time.Second))
//	resp, err := client.Search(ctx, github.SearchRequest{
//	    Endpoint: github.EndpointRepositories,
//	    Query:    "tetris+language:assembly",
//	    Sort:     github.SortStars,
//	    PageSize: 50,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	for _, item := range resp.Items {
//	    // Process item
//	}
package github
