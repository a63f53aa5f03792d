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
	"errors"

	ghfinderrors "github.com/sirseerhq/gh-find/internal/errors"
)

const (
	exitSuccess        = 0
	exitGeneral        = 1
	exitInvalidRequest = 2
	exitNetwork        = 3
	exitHTTP           = 4
)

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}

	switch {
	case errors.Is(err, ghfinderrors.ErrInvalidRequest):
		return exitInvalidRequest
	case errors.Is(err, ghfinderrors.ErrNetworkFailure):
		return exitNetwork
	case errors.Is(err, ghfinderrors.ErrHTTPFailure):
		return exitHTTP
	}

	return exitGeneral
}
