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
	"fmt"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethwire/internal/ethmsgs"
	"github.com/kaleido-io/ethwire/pkg/rlp"
	"golang.org/x/crypto/sha3"
)

// Address is the 20-byte account/contract identifier used throughout the
// wire format (transaction "to", access-list entries, signature
// recovery). Display is always plain lowercase hex with a 0x prefix -
// this module never computes an EIP-55 mixed-case checksum.
type Address [20]byte

func NewAddress(s string) (*Address, error) {
	a := new(Address)
	return a, a.SetString(s)
}

func MustNewAddress(s string) *Address {
	a, err := NewAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Address) SetString(s string) error {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return i18n.NewError(context.Background(), ethmsgs.MsgInvalidAddressHex, err)
	}
	if len(b) != 20 {
		return i18n.NewError(context.Background(), ethmsgs.MsgInvalidAddressLength, len(b))
	}
	copy(a[0:20], b)
	return nil
}

func (a *Address) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return a.SetString(s)
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, a.String())), nil
}

// String renders the lowercase 0x-prefixed hex form. No EIP-55
// checksum casing is applied.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[0:20])
}

// Bytes returns the address as a 20-byte slice.
func (a Address) Bytes() []byte {
	return a[0:20]
}

// AddressFromBytes builds an Address from a byte string as decoded off
// the wire, returning an error unless it is exactly 20 bytes long.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != 20 {
		return a, i18n.NewError(context.Background(), ethmsgs.MsgInvalidAddressLength, len(b))
	}
	copy(a[0:20], b)
	return a, nil
}

// RLPItem renders the address as an RLP Raw data item.
func (a Address) RLPItem() rlp.Item {
	return rlp.Raw(a[0:20])
}

// AddressFromPublicKey derives the 20-byte address from an uncompressed
// secp256k1 public key (65 bytes, 0x04 prefix followed by X||Y): hash
// the 64-byte X||Y with Keccak-256 and take the low 20 bytes.
func AddressFromPublicKey(uncompressedPubKey []byte) (Address, error) {
	var a Address
	if len(uncompressedPubKey) != 65 || uncompressedPubKey[0] != 0x04 {
		return a, i18n.NewError(context.Background(), ethmsgs.MsgInvalidPublicKey)
	}
	hash := sha3.NewLegacyKeccak256()
	hash.Write(uncompressedPubKey[1:])
	digest := hash.Sum(nil)
	copy(a[0:20], digest[12:32])
	return a, nil
}
