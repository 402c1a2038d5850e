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
	"github.com/kaleido-io/ethwire/pkg/rlp"
)

// bigIntItem renders a non-negative big.Int as a canonical minimal-byte
// RLP data item. Transaction signature fields (v, r, s) are carried as
// big.Int, since v can briefly exceed a uint64 while the EIP-155
// encoding is applied for a very large chain ID.
func bigIntItem(v *big.Int) rlp.Item {
	if v == nil || v.Sign() == 0 {
		return rlp.EmptyItem()
	}
	return rlp.Raw(v.Bytes())
}

func itemToBigInt(it rlp.Item) (*big.Int, error) {
	b, err := it.Bytes()
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

func addressItem(addr *ethtypes.Address) rlp.Item {
	if addr == nil {
		return rlp.EmptyItem()
	}
	return rlp.Raw(addr[:])
}
