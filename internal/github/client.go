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

import "context"

// Client defines the interface for issuing GitHub search and list requests.
// The interface keeps commands independent of the HTTP implementation.
type Client interface {
	// Search issues a single GET for req and returns the decoded response.
	// Only the first page is requested; req.PageSize bounds its length.
	Search(ctx context.Context, req SearchRequest) (*Response, error)
}
