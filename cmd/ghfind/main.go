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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"

	ghfinderrors "github.com/sirseerhq/gh-find/internal/errors"
	"github.com/sirseerhq/gh-find/internal/giterror"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, newApp(os.Stdout, os.Stderr), os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, a *app, args []string) int {
	root := newRootCommand(a)
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return exitSuccess
	}

	printError(a.stderr, err)
	if errors.Is(err, ghfinderrors.ErrInvalidRequest) && cmd != nil {
		fmt.Fprint(a.stderr, "\n"+cmd.UsageString())
	}
	return mapErrorToExitCode(err)
}

// printError writes the error line, followed by a hint when one applies.
func printError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	errStyle := r.NewStyle().Foreground(lipgloss.Color("167"))
	hintStyle := r.NewStyle().Foreground(lipgloss.Color("245"))

	fmt.Fprintln(w, errStyle.Render("Error: "+err.Error()))
	if hint := giterror.Hint(giterror.NewErrorChainInspector(giterror.NewInspector()), err); hint != "" {
		fmt.Fprintln(w, hintStyle.Render("Hint: "+hint))
	}
}
