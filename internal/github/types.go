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

import (
	"bytes"
	"encoding/json"
	"fmt"

	ghfinderrors "github.com/sirseerhq/gh-find/internal/errors"
)

// Shape tells which of GitHub's response layouts a Response was decoded from.
type Shape int

const (
	// ShapeUnknown is valid JSON that is neither an envelope nor an array.
	ShapeUnknown Shape = iota
	// ShapeEnvelope is a search result: total_count, incomplete_results, items.
	ShapeEnvelope
	// ShapeList is a bare JSON array, as returned by the list endpoints.
	ShapeList
)

func (s Shape) String() string {
	switch s {
	case ShapeEnvelope:
		return "envelope"
	case ShapeList:
		return "list"
	default:
		return "unknown"
	}
}

// Item is a single result object exactly as GitHub returned it. Numbers are
// kept as json.Number so they print without float formatting.
type Item map[string]any

// Response is a decoded search or list response.
type Response struct {
	Shape Shape

	// TotalCount and IncompleteResults are only meaningful for ShapeEnvelope.
	TotalCount        int64
	IncompleteResults bool

	Items []Item
}

// DecodeResponse decodes a response body. Bodies that are not JSON fail with
// ErrUnexpectedResponse; JSON of an unrecognised layout decodes to ShapeUnknown.
func DecodeResponse(data []byte) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: decoding body: %v", ghfinderrors.ErrUnexpectedResponse, err)
	}

	switch v := v.(type) {
	case map[string]any:
		raw, ok := v["items"].([]any)
		if !ok {
			return &Response{Shape: ShapeUnknown}, nil
		}
		resp := &Response{Shape: ShapeEnvelope, Items: toItems(raw)}
		if n, ok := v["total_count"].(json.Number); ok {
			if total, err := n.Int64(); err == nil {
				resp.TotalCount = total
			}
		}
		if b, ok := v["incomplete_results"].(bool); ok {
			resp.IncompleteResults = b
		}
		return resp, nil
	case []any:
		return &Response{Shape: ShapeList, Items: toItems(v)}, nil
	default:
		return &Response{Shape: ShapeUnknown}, nil
	}
}

// toItems converts decoded array elements to items. Elements that are not
// objects become empty items so positions are preserved.
func toItems(raw []any) []Item {
	items := make([]Item, 0, len(raw))
	for _, elem := range raw {
		if m, ok := elem.(map[string]any); ok {
			items = append(items, Item(m))
		} else {
			items = append(items, Item{})
		}
	}
	return items
}
