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
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethwire/internal/ethmsgs"
	"github.com/kaleido-io/ethwire/pkg/rlp"
)

// StorageKey is a 32-byte access-list storage slot key. Unlike U256,
// which stores scalar transaction fields in canonical-minimal form
// (no leading zero bytes, shortest possible encoding), a storage key
// is a fixed-width 32-byte value on the wire: real access lists
// routinely carry keys with high zero bytes, and those must round-trip
// byte-for-byte rather than being rejected or re-encoded shorter.
type StorageKey [32]byte

// StorageKeyFromBytes builds a StorageKey from an exactly-32-byte wire
// value.
func StorageKeyFromBytes(b []byte) (StorageKey, error) {
	var k StorageKey
	if len(b) != 32 {
		return k, i18n.NewError(context.Background(), ethmsgs.MsgInvalidStorageKeyLength, len(b))
	}
	copy(k[0:32], b)
	return k, nil
}

func (k *StorageKey) SetString(s string) error {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return i18n.NewError(context.Background(), ethmsgs.MsgInvalidStorageKeyHex, err)
	}
	key, err := StorageKeyFromBytes(b)
	if err != nil {
		return err
	}
	*k = key
	return nil
}

func (k *StorageKey) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return k.SetString(s)
}

func (k StorageKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// String renders the lowercase 0x-prefixed hex form, always the full
// 32 bytes - no leading-zero stripping.
func (k StorageKey) String() string {
	return "0x" + hex.EncodeToString(k[0:32])
}

// Bytes returns the storage key as a 32-byte slice.
func (k StorageKey) Bytes() []byte {
	return k[0:32]
}

// RLPItem renders the storage key as an RLP Raw data item - always all
// 32 bytes, never trimmed to canonical-minimal form.
func (k StorageKey) RLPItem() rlp.Item {
	return rlp.Raw(k[0:32])
}
