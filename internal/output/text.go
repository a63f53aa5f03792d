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

package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/sirseerhq/gh-find/internal/github"
)

var (
	colorCyan = lipgloss.Color("36")
	colorRed  = lipgloss.Color("167")
	colorDim  = lipgloss.Color("240")
)

// TextWriter prints projected lines for a human reader. Colors are only
// emitted when the destination is a terminal.
type TextWriter struct {
	mu        sync.Mutex
	output    io.Writer
	closeFunc func() error
	lines     int

	summary   lipgloss.Style
	separator lipgloss.Style
	field     lipgloss.Style
	noResult  lipgloss.Style
}

// NewTextWriter creates a TextWriter for w.
func NewTextWriter(w io.Writer) *TextWriter {
	r := lipgloss.NewRenderer(w)
	return &TextWriter{
		output:    w,
		summary:   r.NewStyle().Foreground(colorCyan),
		separator: r.NewStyle().Foreground(colorDim),
		field:     r.NewStyle().Foreground(colorCyan),
		noResult:  r.NewStyle().Foreground(colorRed),
	}
}

// NewTextFileWriter creates a TextWriter that writes plain text to filename.
func NewTextFileWriter(filename string) (*TextWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	tw := NewTextWriter(file)
	tw.closeFunc = file.Close
	return tw, nil
}

// WriteResponse projects resp and writes one line per projected line.
func (t *TextWriter) WriteResponse(resp *github.Response, fs FieldSet) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, line := range Project(resp, fs) {
		if _, err := fmt.Fprintln(t.output, t.style(line.Kind).Render(line.String())); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
		t.lines++
	}
	return nil
}

// Heading writes a plain line ahead of the results.
func (t *TextWriter) Heading(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := fmt.Fprintln(t.output, text)
	return err
}

// Lines returns the number of projected lines written.
func (t *TextWriter) Lines() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lines
}

func (t *TextWriter) style(k LineKind) lipgloss.Style {
	switch k {
	case LineSummary:
		return t.summary
	case LineSeparator:
		return t.separator
	case LineNoResult:
		return t.noResult
	default:
		return t.field
	}
}

// Close closes the underlying file, if any.
func (t *TextWriter) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closeFunc != nil {
		return t.closeFunc()
	}
	return nil
}
