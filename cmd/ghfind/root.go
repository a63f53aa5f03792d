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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sirseerhq/gh-find/internal/config"
	ghfinderrors "github.com/sirseerhq/gh-find/internal/errors"
	"github.com/sirseerhq/gh-find/internal/github"
	"github.com/sirseerhq/gh-find/pkg/version"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	format     string
	outputFile string

	stdout io.Writer
	stderr io.Writer

	// showSpinner enables the progress spinner on stderr.
	showSpinner bool

	// newClient builds the GitHub client once configuration is loaded.
	newClient func(cfg *config.Config, logger *log.Logger) github.Client

	cfg *config.Config
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:      stdout,
		stderr:      stderr,
		showSpinner: isTerminal(stderr),
		newClient:   newRESTClient,
	}
}

func newRESTClient(cfg *config.Config, logger *log.Logger) github.Client {
	return github.NewRESTClient(cfg.GitHub,
		github.WithTimeout(cfg.Defaults.Timeout),
		github.WithLogger(logger),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "gh-find",
		Short: "Search GitHub repositories, topics and users from the terminal",
		Long: `gh-find queries the GitHub v3 REST API and prints a compact summary of
each result: name, description, URL and timestamps, or with --long the
clone URL, language, size and star, watcher, issue and fork counts.

Queries use GitHub search syntax with '+' between keywords and qualifiers,
for example 'tetris+language:assembly' or 'GitHub+Octocat+in:readme+user:defunkt'.
See https://docs.github.com/rest/search#constructing-a-search-query`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return ghfinderrors.InvalidRequestf("unknown command %q (want find or list)", args[0])
			}
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if a.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(a.stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			cfg, err := config.LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			if a.format != "" {
				format := strings.ToLower(a.format)
				if format != config.FormatText && format != config.FormatNDJSON {
					return ghfinderrors.InvalidRequestf("unknown format %q (want %s or %s)", a.format, config.FormatText, config.FormatNDJSON)
				}
				cfg.Defaults.Format = format
			}
			a.cfg = cfg

			logger.Debug("configuration loaded",
				"endpoint", cfg.GitHub.APIEndpoint,
				"count", cfg.Defaults.Count,
				"format", cfg.Defaults.Format,
				"timeout", cfg.Defaults.Timeout)
			return nil
		},
	}

	root.SetVersionTemplate(version.Template())
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ghfinderrors.ErrInvalidRequest, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file path (default: .gh-find.yaml or ~/.gh-find/config.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&a.format, "format", "", "Output format: text or ndjson (default from config: text)")
	pf.StringVar(&a.outputFile, "output", "", "Output file path (default: stdout)")

	root.AddCommand(newFindCommand(a))
	root.AddCommand(newListCommand(a))

	return root
}
