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

// Package output projects GitHub search results onto a fixed field subset and
// writes them either as styled console text or as NDJSON (Newline Delimited
// JSON).
//
// Project is the core: it turns a decoded github.Response into display lines.
// Envelopes (search results) start with a total and incomplete_results
// summary, then each item is introduced by a separator line followed by
// "field => value" lines for the members of the selected FieldSet that the
// item carries:
//
//	total => 1
//	incomplete_results => False
//	====================
//	name => netbox
//	description => IP address management (IPAM) ...
//
// Responses that are neither an envelope nor an array produce a single
// "No result found!" line.
//
// TextWriter and Writer both implement ResultWriter:
//
//	w, err := output.NewFileWriter("repos.ndjson")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	if err := w.WriteResponse(resp, output.FieldSetLong); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Wrote %d records\n", w.Count())
package output
