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

// Package main implements the gh-find command-line interface.
// It searches GitHub repositories, topics and users through the v3 REST
// search API, lists a user's public repositories, and prints a projection
// of each result.
//
// Usage:
//
//	gh-find find repo <query> [--sort S] [--order O] [--count N] [--long]
//	gh-find find topic <query> [--sort S] [--order O] [--count N] [--long]
//	gh-find find user <query> [--sort S] [--order O] [--count N] [--long]
//	gh-find list <username> [--sort S] [--count N] [--long]
//
// Example:
//
//	gh-find find repo tetris+language:assembly --sort stars --order desc
//	gh-find list octocat --format ndjson --output repos.ndjson
//
// Exit codes:
//   - 0: Success (including "No result found!")
//   - 1: General error
//   - 2: Invalid request (missing query, bad flag)
//   - 3: Network error
//   - 4: GitHub returned a non-success status
package main
