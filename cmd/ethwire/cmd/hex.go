// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethwire/internal/ethmsgs"
)

// decodeHexArg strips an optional 0x/0X prefix and decodes the
// remainder as hex, wrapping any failure in the CLI's own error code
// rather than surfacing the stdlib's.
func decodeHexArg(name, s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidCLIHexArg, name, err.Error())
	}
	return b, nil
}

func requireArg(args []string, i int, name string) (string, error) {
	if i >= len(args) {
		return "", i18n.NewError(context.Background(), ethmsgs.MsgMissingCLIArg, name)
	}
	return args[i], nil
}
