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

package ethtypes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethwire/internal/ethmsgs"
	"github.com/kaleido-io/ethwire/pkg/rlp"
)

// U256 is a fixed-width 256-bit unsigned integer, used for every scalar
// value field in a transaction envelope (nonce, value, gas price, gas
// limit, fee caps). Access-list storage keys use the fixed-width
// StorageKey type instead. Backed by uint256.Int rather than
// math/big.Int, since every field is bounded at 32 bytes and the
// overflow/canonical-length checks are cheaper against a fixed-width
// type.
type U256 uint256.Int

// NewU256FromUint64 builds a U256 from a plain uint64.
func NewU256FromUint64(v uint64) *U256 {
	u := uint256.NewInt(v)
	return (*U256)(u)
}

// U256FromBytes decodes the canonical big-endian minimal encoding used
// on the wire. Rejects inputs over 32 bytes and inputs with a leading
// zero byte (non-canonical - the encoder never emits one).
func U256FromBytes(b []byte) (*U256, error) {
	if len(b) > 32 {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidU256Length, len(b))
	}
	if len(b) > 0 && b[0] == 0x00 {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgNonCanonicalU256)
	}
	u := new(uint256.Int).SetBytes(b)
	return (*U256)(u), nil
}

// Int returns the underlying uint256.Int for arithmetic.
func (u *U256) Int() *uint256.Int {
	return (*uint256.Int)(u)
}

// Bytes returns the canonical minimal big-endian encoding (no leading
// zero bytes; zero encodes to the empty slice).
func (u *U256) Bytes() []byte {
	if u == nil {
		return []byte{}
	}
	full := (*uint256.Int)(u).Bytes32()
	i := 0
	for i < 32 && full[i] == 0 {
		i++
	}
	return full[i:]
}

// RLPItem renders the value as an RLP Raw data item using the canonical
// minimal encoding.
func (u *U256) RLPItem() rlp.Item {
	return rlp.Raw(u.Bytes())
}

// Bytes32 returns the fixed-width 32-byte big-endian encoding, unlike
// Bytes which strips leading zeros for the canonical wire form. Used
// where a digest-shaped fixed-length value is required (e.g. signing
// over a hash result), not an RLP-minimal one.
func (u *U256) Bytes32() [32]byte {
	return (*uint256.Int)(u).Bytes32()
}

// U256FromRLPItem decodes a U256 out of a generic RLP item, applying
// the same canonical-length checks as U256FromBytes.
func U256FromRLPItem(it rlp.Item) (*U256, error) {
	b, err := it.Bytes()
	if err != nil {
		return nil, err
	}
	return U256FromBytes(b)
}

func (u U256) String() string {
	return (*uint256.Int)(&u).Hex()
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, u.String())), nil
}

func (u *U256) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := uint256.FromHex(s)
	if err != nil {
		return i18n.NewError(context.Background(), ethmsgs.MsgInvalidNumberString, s)
	}
	*u = U256(*v)
	return nil
}
