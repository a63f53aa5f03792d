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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirseerhq/gh-find/internal/github"
)

// FieldSet selects which item fields are displayed.
type FieldSet int

const (
	FieldSetShort FieldSet = iota
	FieldSetLong
)

var (
	shortFields = []string{
		"name",
		"description",
		"html_url",
		"created_at",
		"updated_at",
	}

	longFields = []string{
		"name",
		"description",
		"html_url",
		"clone_url",
		"language",
		"fork",
		"size",
		"stargazers_count",
		"watchers_count",
		"open_issues_count",
		"forks",
		"created_at",
		"updated_at",
	}
)

// FieldSetFor returns FieldSetLong when long is set, FieldSetShort otherwise.
func FieldSetFor(long bool) FieldSet {
	if long {
		return FieldSetLong
	}
	return FieldSetShort
}

// Fields returns the member fields in display order. The slice must not be
// modified.
func (fs FieldSet) Fields() []string {
	if fs == FieldSetLong {
		return longFields
	}
	return shortFields
}

func (fs FieldSet) String() string {
	if fs == FieldSetLong {
		return "long"
	}
	return "short"
}

const (
	// Separator precedes every projected item.
	Separator = "===================="

	// NoResultMessage is shown for a response with no recognizable shape.
	NoResultMessage = "No result found!"
)

// LineKind classifies projected lines so writers can style them.
type LineKind int

const (
	LineSummary LineKind = iota
	LineSeparator
	LineField
	LineNoResult
)

// Line is one line of projected output.
type Line struct {
	Kind  LineKind
	Key   string
	Value string
}

func (l Line) String() string {
	switch l.Kind {
	case LineSeparator:
		return Separator
	case LineNoResult:
		return NoResultMessage
	default:
		return l.Key + " => " + l.Value
	}
}

// Project renders resp as display lines. Envelopes start with the total and
// incomplete_results summary; every item is introduced by a separator and
// followed by the fields of fs it carries, in set order. A nil or unknown
// response yields a single NoResultMessage line.
func Project(resp *github.Response, fs FieldSet) []Line {
	if resp == nil {
		return []Line{{Kind: LineNoResult}}
	}

	var lines []Line
	switch resp.Shape {
	case github.ShapeEnvelope:
		lines = append(lines,
			Line{Kind: LineSummary, Key: "total", Value: strconv.FormatInt(resp.TotalCount, 10)},
			Line{Kind: LineSummary, Key: "incomplete_results", Value: FormatValue(resp.IncompleteResults)},
		)
	case github.ShapeList:
	default:
		return []Line{{Kind: LineNoResult}}
	}

	for _, item := range resp.Items {
		lines = append(lines, Line{Kind: LineSeparator})
		for _, field := range fs.Fields() {
			v, ok := item[field]
			if !ok {
				continue
			}
			lines = append(lines, Line{Kind: LineField, Key: field, Value: FormatValue(v)})
		}
	}
	return lines
}

// ProjectItem returns the fields of fs present in item, with their decoded
// values.
func ProjectItem(item github.Item, fs FieldSet) map[string]any {
	record := make(map[string]any, len(fs.Fields()))
	for _, field := range fs.Fields() {
		if v, ok := item[field]; ok {
			record[field] = v
		}
	}
	return record
}

// FormatValue renders a decoded JSON value for display.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case map[string]any, []any, github.Item:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
