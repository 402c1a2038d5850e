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

// Package ethereum exposes the thin, synchronous entry-point surface
// over the codec and crypto primitives in pkg/rlp, pkg/ethtypes,
// pkg/secp256k1, pkg/ethsigner and pkg/trie. Every function here is a
// pure, total-or-error wrapper - no I/O, no shared state.
package ethereum

import (
	"github.com/holiman/uint256"
	"github.com/kaleido-io/ethwire/pkg/ethtypes"
	"golang.org/x/crypto/sha3"
)

// Keccak256 feeds each part, in order, into a single Keccak-256 state
// and returns the 32-byte digest as a U256. A digest is a fixed
// 32-byte quantity, not a canonical minimal RLP encoding, so this
// builds the U256 directly rather than through
// ethtypes.U256FromBytes, which would reject a digest with a leading
// zero byte.
func Keccak256(parts ...[]byte) *ethtypes.U256 {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	digest := h.Sum(nil)
	u := new(uint256.Int).SetBytes(digest)
	return (*ethtypes.U256)(u)
}
