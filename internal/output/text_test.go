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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirseerhq/gh-find/internal/github"
)

var (
	_ ResultWriter = (*Writer)(nil)
	_ ResultWriter = (*TextWriter)(nil)
)

func TestTextWriter_WriteResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *github.Response
		want string
	}{
		{
			name: "envelope",
			resp: &github.Response{
				Shape:      github.ShapeEnvelope,
				TotalCount: 1,
				Items:      []github.Item{{"name": "netbox", "description": nil}},
			},
			want: "total => 1\nincomplete_results => False\n====================\nname => netbox\ndescription => None\n",
		},
		{
			name: "list",
			resp: &github.Response{
				Shape: github.ShapeList,
				Items: []github.Item{{"name": "a"}, {"html_url": "https://github.com/o/b"}},
			},
			want: "====================\nname => a\n====================\nhtml_url => https://github.com/o/b\n",
		},
		{
			name: "unknown",
			resp: &github.Response{Shape: github.ShapeUnknown},
			want: "No result found!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewTextWriter(&buf)

			if err := w.WriteResponse(tt.resp, FieldSetShort); err != nil {
				t.Fatalf("WriteResponse() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output =\n%q\nwant\n%q", buf.String(), tt.want)
			}
			if n := strings.Count(tt.want, "\n"); w.Lines() != n {
				t.Errorf("Lines() = %d, want %d", w.Lines(), n)
			}
		})
	}
}

func TestTextWriter_Heading(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	if err := w.Heading("Find users via various criteria (100 results per page max)."); err != nil {
		t.Fatalf("Heading() error = %v", err)
	}
	if err := w.WriteResponse(&github.Response{Shape: github.ShapeUnknown}, FieldSetShort); err != nil {
		t.Fatalf("WriteResponse() error = %v", err)
	}

	want := "Find users via various criteria (100 results per page max).\nNo result found!\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if w.Lines() != 1 {
		t.Errorf("Lines() = %d, want 1 (headings are not counted)", w.Lines())
	}
}

func TestNewTextFileWriter(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.txt")

	w, err := NewTextFileWriter(filename)
	if err != nil {
		t.Fatalf("NewTextFileWriter failed: %v", err)
	}
	resp := &github.Response{Shape: github.ShapeList, Items: []github.Item{{"name": "a"}}}
	if err := w.WriteResponse(resp, FieldSetLong); err != nil {
		t.Fatalf("WriteResponse() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if got := string(data); got != "====================\nname => a\n" {
		t.Errorf("file contents = %q", got)
	}
}

func TestNewTextFileWriter_Error(t *testing.T) {
	if _, err := NewTextFileWriter("/non/existent/path/out.txt"); err == nil {
		t.Error("Expected error for non-existent directory, got nil")
	}
}
