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

package main

import (
	"github.com/spf13/cobra"

	"github.com/sirseerhq/gh-find/internal/github"
)

const listHeading = "List public repositories for the specified user."

func newListCommand(a *app) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "list <username>",
		Short: "List public repositories for the specified user",
		Long: `List public repositories for the specified user.

At most 100 repositories are returned.`,
		Example: "  gh-find list octocat\n  gh-find list octocat --sort updated --long",
		Args:    singleArg("username"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, github.EndpointUserRepos, listHeading, argOrEmpty(args), opts)
		},
	}

	addSortFlag(cmd, &opts)
	addCommonFlags(cmd, &opts)

	return cmd
}
