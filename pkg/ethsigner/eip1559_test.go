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
	"testing"

	"github.com/kaleido-io/ethwire/pkg/ethtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEIP1559TransactionSignAndRecover(t *testing.T) {
	kp := newTestKeyPair(t)
	to := ethtypes.MustNewAddress("0x68ee6c0e9cdc73b2aa1e6fa8a7cb95bc8ff1b100")

	tx := &TransactionEIP1559{
		ChainID:              5,
		Nonce:                ethtypes.NewU256FromUint64(2),
		MaxPriorityFeePerGas: ethtypes.NewU256FromUint64(1500000000),
		MaxFeePerGas:         ethtypes.NewU256FromUint64(30000000000),
		GasLimit:             ethtypes.NewU256FromUint64(21000),
		To:                   to,
		Value:                ethtypes.NewU256FromUint64(500),
		Data:                 []byte{},
		AccessList:           ethtypes.AccessList{},
	}

	require.NoError(t, tx.Sign(kp))

	encoded, err := tx.Encode()
	require.NoError(t, err)
	require.Equal(t, byte(EIP1559TypeByte), encoded[0])

	parsed, err := ParseTransaction(encoded)
	require.NoError(t, err)
	require.NotNil(t, parsed.EIP1559)
	assert.Equal(t, uint64(5), parsed.EIP1559.ChainID)
	assert.Equal(t, tx.MaxFeePerGas.Bytes(), parsed.EIP1559.MaxFeePerGas.Bytes())
	assert.Equal(t, tx.MaxPriorityFeePerGas.Bytes(), parsed.EIP1559.MaxPriorityFeePerGas.Bytes())
	require.NotNil(t, parsed.EIP1559.Sign)
	assert.Equal(t, kp.Address, parsed.EIP1559.Sign.From)

	sig, err := parsed.Recover()
	require.NoError(t, err)
	assert.Equal(t, kp.Address, sig.From)
}

func TestEIP1559WrongFieldCount(t *testing.T) {
	_, err := eip1559FromRLP(nil)
	assert.Error(t, err)
}

func TestParseTransactionRejectsUnknownType(t *testing.T) {
	_, err := ParseTransaction([]byte{0x03, 0x00})
	assert.Error(t, err)

	_, err = ParseTransaction(nil)
	assert.Error(t, err)
}
