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

package ethsigner

import (
	"math/big"

	"github.com/kaleido-io/ethwire/pkg/ethtypes"
)

// Signature is the recovered (or about-to-be-applied) v/r/s triple for
// a transaction, along with the sender it resolves to and the keccak
// hash of the fully encoded, signed envelope (the transaction hash
// used to look a transaction up on chain - distinct from the signing
// hash, which excludes the signature itself).
type Signature struct {
	V    *big.Int
	R    *big.Int
	S    *big.Int
	From ethtypes.Address
	Hash []byte
}

// Signable is implemented by each transaction variant (Legacy,
// EIP-2930, EIP-1559). SigningPayload is the exact byte string that
// gets keccak256-hashed to produce SigningHash, the digest that gets
// signed; Encode renders the full wire form once V/R/S are populated.
type Signable interface {
	SigningPayload() []byte
	SigningHash() []byte
	Encode() ([]byte, error)
}
