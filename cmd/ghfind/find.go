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

	ghfinderrors "github.com/sirseerhq/gh-find/internal/errors"
	"github.com/sirseerhq/gh-find/internal/github"
)

// searchKind describes one of the find subcommands.
type searchKind struct {
	use      string
	aliases  []string
	short    string
	heading  string
	example  string
	endpoint github.Endpoint
}

var searchKinds = []searchKind{
	{
		use:      "repo <query>",
		aliases:  []string{"repos", "repository"},
		short:    "Find repositories",
		heading:  "Find repositories via various criteria (100 results per page max).",
		example:  "  gh-find find repo tetris+language:assembly --sort stars --order desc\n  gh-find find repo GitHub+Octocat+in:readme+user:defunkt --long",
		endpoint: github.EndpointRepositories,
	},
	{
		use:      "topic <query>",
		aliases:  []string{"topics"},
		short:    "Find topics",
		heading:  "Find topics via various criteria (100 results per page max).",
		example:  "  gh-find find topic ruby+is:featured",
		endpoint: github.EndpointTopics,
	},
	{
		use:      "user <query>",
		aliases:  []string{"users"},
		short:    "Find users",
		heading:  "Find users via various criteria (100 results per page max).",
		example:  "  gh-find find user 'tom+repos:>42+followers:>1000' --count 10",
		endpoint: github.EndpointUsers,
	},
}

func newFindCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <repo|topic|user> <query>",
		Short: "Search GitHub repositories, topics or users",
		Long: `Search GitHub repositories, topics or users via various criteria.

The query accepts GitHub search syntax:
  'SEARCH_KEYWORD_1+SEARCH_KEYWORD_N+QUALIFIER_1+QUALIFIER_N'
At most 100 results are returned per search.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ghfinderrors.InvalidRequestf("a search type is required (repo, topic or user)")
			}
			return ghfinderrors.InvalidRequestf("unknown search type %q (want repo, topic or user)", args[0])
		},
	}

	for _, kind := range searchKinds {
		cmd.AddCommand(newSearchCommand(a, kind))
	}

	return cmd
}

func newSearchCommand(a *app, kind searchKind) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:     kind.use,
		Aliases: kind.aliases,
		Short:   kind.short,
		Long:    kind.heading,
		Example: kind.example,
		Args:    singleArg("query"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, kind.endpoint, kind.heading, argOrEmpty(args), opts)
		},
	}

	addSortFlag(cmd, &opts)
	cmd.Flags().VarP(&opts.order, "order", "o", "Order results: desc or asc (default: desc)")
	addCommonFlags(cmd, &opts)

	return cmd
}
