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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/gh-find/internal/config"
	ghfinderrors "github.com/sirseerhq/gh-find/internal/errors"
	"github.com/sirseerhq/gh-find/internal/github"
	"github.com/sirseerhq/gh-find/internal/metadata"
	"github.com/sirseerhq/gh-find/internal/output"
	"github.com/sirseerhq/gh-find/pkg/version"
)

// searchOptions holds the per-command modifiers.
type searchOptions struct {
	sort  github.SortKey
	order github.Order
	count int
	long  bool
}

func addSortFlag(cmd *cobra.Command, opts *searchOptions) {
	cmd.Flags().VarP(&opts.sort, "sort", "s", "Sort by stars, forks, help-wanted-issues, updated or best-match (default: best-match)")
}

func addCommonFlags(cmd *cobra.Command, opts *searchOptions) {
	cmd.Flags().IntVarP(&opts.count, "count", "c", github.DefaultPageSize, "Number of results per page, 1-100")
	cmd.Flags().BoolVarP(&opts.long, "long", "l", false, "Show the long field set")
}

// singleArg accepts at most one positional argument. A missing argument is
// reported by the query builder so that all invalid requests share one path.
func singleArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return ghfinderrors.InvalidRequestf("expected a single %s, got %d arguments (join terms with '+')", name, len(args))
		}
		return nil
	}
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// runSearch builds the request, issues it and writes the projected result.
func (a *app) runSearch(cmd *cobra.Command, endpoint github.Endpoint, heading, query string, opts searchOptions) error {
	cfg := a.cfg
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	req := github.SearchRequest{
		Endpoint: endpoint,
		Query:    query,
		Sort:     opts.sort,
		Order:    opts.order,
		PageSize: cfg.Defaults.Count,
	}
	if cmd.Flags().Changed("count") {
		req.PageSize = opts.count
		if req.PageSize == 0 {
			return ghfinderrors.InvalidRequestf("count must be between 1 and %d, got 0", github.MaxPageSize)
		}
	}
	long := cfg.Defaults.Long
	if cmd.Flags().Changed("long") {
		long = opts.long
	}
	fs := output.FieldSetFor(long)

	u, err := github.BuildURL(endpoint.BaseURL(cfg.GitHub), req)
	if err != nil {
		return err
	}

	writer, err := a.newResultWriter(cfg.Defaults.Format)
	if err != nil {
		return err
	}
	defer writer.Close()

	if tw, ok := writer.(*output.TextWriter); ok {
		if err := tw.Heading(heading); err != nil {
			return fmt.Errorf("failed to write heading: %w", err)
		}
	}

	logger.Info("Searching", "url", u)

	if cfg.Defaults.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Defaults.Timeout)
		defer cancel()
	}

	tracker := metadata.New()
	client := a.newClient(cfg, logger)

	var spinner *Spinner
	if a.showSpinner {
		spinner = newSpinner(ctx, a.stderr, "Searching GitHub...")
		spinner.Start()
	}
	tracker.IncrementAPICall()
	resp, err := client.Search(ctx, req)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", endpoint, err)
	}
	tracker.RecordResponse(resp)

	if err := writer.WriteResponse(resp, fs); err != nil {
		return err
	}
	if resp.Shape == github.ShapeUnknown && cfg.Defaults.Format == config.FormatNDJSON {
		logger.Warn(output.NoResultMessage)
	}

	md := tracker.GenerateMetadata(version.Version, metadata.SearchParams{
		Endpoint: endpoint.String(),
		URL:      u,
		Query:    req.Query,
		Sort:     req.Sort.String(),
		Order:    req.Order.String(),
		PageSize: req.PageSize,
		Long:     long,
	})
	logger.Debug("search complete", md.KeyValues()...)

	return nil
}

// newResultWriter returns the writer for format, writing to --output when
// given and stdout otherwise.
func (a *app) newResultWriter(format string) (output.ResultWriter, error) {
	if format == config.FormatNDJSON {
		if a.outputFile == "" {
			return output.NewWriter(a.stdout), nil
		}
		w, err := output.NewFileWriter(a.outputFile)
		if err != nil {
			return nil, err
		}
		return w, nil
	}

	if a.outputFile == "" {
		return output.NewTextWriter(a.stdout), nil
	}
	w, err := output.NewTextFileWriter(a.outputFile)
	if err != nil {
		return nil, err
	}
	return w, nil
}
