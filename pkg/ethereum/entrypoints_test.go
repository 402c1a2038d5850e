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

package ethereum

import (
	"testing"

	"github.com/kaleido-io/ethwire/pkg/ethsigner"
	"github.com/kaleido-io/ethwire/pkg/ethtypes"
	"github.com/kaleido-io/ethwire/pkg/rlp"
	"github.com/kaleido-io/ethwire/pkg/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRLPEncodeDecodeRoundTrip(t *testing.T) {
	l := rlp.List{rlp.Text("hello"), rlp.Num(42)}
	encoded := RLPEncode(l)

	decoded, err := RLPDecode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	txt, err := decoded[0].Bytes()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(txt))

	n, err := decoded[1].Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), n)
}

func TestCreateTransactionEntryPointReturnsSigningPayload(t *testing.T) {
	to := ethtypes.MustNewAddress("0x68ee6c0e9cdc73b2aa1e6fa8a7cb95bc8ff1b100")

	legacy := &ethsigner.TransactionLegacy{
		Nonce:    ethtypes.NewU256FromUint64(1),
		GasPrice: ethtypes.NewU256FromUint64(1000000000),
		GasLimit: ethtypes.NewU256FromUint64(21000),
		To:       to,
		Value:    ethtypes.NewU256FromUint64(1),
		Data:     []byte{},
		ChainID:  42,
	}
	tx := &ethsigner.Transaction{Legacy: legacy}

	// CreateTransaction never signs - it only renders the payload an
	// external signer keccak256-hashes and signs over.
	payload, hash, err := CreateTransaction(tx)
	require.NoError(t, err)
	assert.Equal(t, legacy.SigningPayload(), payload)
	digest := legacy.SigningHash()
	hash32 := hash.Bytes32()
	assert.Equal(t, digest, hash32[:])

	// A signature applied with Sign still parses correctly once
	// encoded.
	kp, err := secp256k1.GenerateSecp256k1KeyPair()
	require.NoError(t, err)
	require.NoError(t, legacy.Sign(kp))

	encoded, err := tx.Encode()
	require.NoError(t, err)

	parsed, err := ParseTransaction(encoded)
	require.NoError(t, err)
	require.NotNil(t, parsed.Legacy)
	assert.Equal(t, uint64(42), parsed.Legacy.ChainID)
}

func TestCreateTransactionEntryPointRejectsEmptyVariant(t *testing.T) {
	_, _, err := CreateTransaction(&ethsigner.Transaction{})
	assert.Error(t, err)
}

func TestIsValidPublicAndPubToAddressEntryPoints(t *testing.T) {
	kp, err := secp256k1.GenerateSecp256k1KeyPair()
	require.NoError(t, err)

	assert.True(t, IsValidPublic(kp.PublicKey.SerializeUncompressed()))
	assert.False(t, IsValidPublic(kp.PublicKey.SerializeCompressed()))

	addr, err := PubToAddress(kp.PublicKey.SerializeUncompressed())
	require.NoError(t, err)
	assert.Equal(t, kp.Address, *addr)
}

func TestRecoverPublicKeyEntryPoint(t *testing.T) {
	kp, err := secp256k1.GenerateSecp256k1KeyPair()
	require.NoError(t, err)

	msg := []byte("message to sign")
	digest := Keccak256(msg).Bytes32()
	sig, err := kp.Sign(digest[:])
	require.NoError(t, err)

	sigBytes := make([]byte, 65)
	sig.R.FillBytes(sigBytes[0:32])
	sig.S.FillBytes(sigBytes[32:64])
	sigBytes[64] = byte(sig.V.Int64())

	assert.True(t, IsValidSignature(sigBytes))

	pubKey, err := RecoverPublicKey(sigBytes, msg)
	require.NoError(t, err)

	recoveredAddr, err := PubToAddress(pubKey)
	require.NoError(t, err)
	assert.Equal(t, kp.Address, *recoveredAddr)
}

func TestRecoverPublicKeyEntryPointRejectsWrongLength(t *testing.T) {
	_, err := RecoverPublicKey(make([]byte, 64), []byte("msg"))
	assert.Error(t, err)
}

func TestIsValidSignatureEntryPointRejectsWrongLength(t *testing.T) {
	assert.False(t, IsValidSignature(make([]byte, 64)))
}
