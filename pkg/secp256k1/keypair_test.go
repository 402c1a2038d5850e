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

package secp256k1

import (
	"math/big"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/stretchr/testify/assert"
)

func keccak(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

func TestGeneratedKeyRoundTrip(t *testing.T) {

	keypair, err := GenerateSecp256k1KeyPair()
	assert.NoError(t, err)

	b := keypair.PrivateKeyBytes()
	keypair2, err := NewSecp256k1KeyPair(b)
	assert.NoError(t, err)

	assert.Equal(t, keypair.PrivateKeyBytes(), keypair2.PrivateKeyBytes())
	assert.True(t, keypair.PublicKey.IsEqual(keypair2.PublicKey))

	digest := keccak([]byte("hello world"))
	sig, err := keypair.Sign(digest)
	assert.NoError(t, err)

	// bare 0/1 recovery id, as produced by Sign
	addr, err := sig.RecoverAddress(digest)
	assert.NoError(t, err)
	assert.Equal(t, keypair.Address, *addr)

	// legacy 27/28
	legacy := &SignatureData{V: new(big.Int).Add(sig.V, big.NewInt(27)), R: sig.R, S: sig.S}
	addr, err = legacy.RecoverAddress(digest)
	assert.NoError(t, err)
	assert.Equal(t, keypair.Address, *addr)

	// EIP-155 chain-bound v = chainId*2 + 35 + recId
	chainID := int64(1001)
	eip155V := new(big.Int).Add(
		new(big.Int).Mul(big.NewInt(chainID), big.NewInt(2)),
		big.NewInt(35),
	)
	eip155V = eip155V.Add(eip155V, sig.V)
	eip155 := &SignatureData{V: eip155V, R: sig.R, S: sig.S}
	addr, err = eip155.RecoverAddress(digest)
	assert.NoError(t, err)
	assert.Equal(t, keypair.Address, *addr)
}

func TestIsValidPublic(t *testing.T) {
	keypair, err := GenerateSecp256k1KeyPair()
	assert.NoError(t, err)

	assert.True(t, IsValidPublic(keypair.PublicKey.SerializeUncompressed()))
	assert.False(t, IsValidPublic(keypair.PublicKey.SerializeCompressed()))
	assert.False(t, IsValidPublic(nil))
}

func TestPubToAddress(t *testing.T) {
	keypair, err := GenerateSecp256k1KeyPair()
	assert.NoError(t, err)

	addr, err := PubToAddress(keypair.PublicKey.SerializeUncompressed())
	assert.NoError(t, err)
	assert.Equal(t, keypair.Address, *addr)

	_, err = PubToAddress([]byte{0x01})
	assert.Error(t, err)
}

func TestIsValidSignature(t *testing.T) {
	assert.True(t, IsValidSignature(big.NewInt(1), big.NewInt(1)))
	assert.False(t, IsValidSignature(big.NewInt(0), big.NewInt(1)))
	assert.False(t, IsValidSignature(nil, big.NewInt(1)))
}

func TestRecoverBadSignature(t *testing.T) {
	digest := keccak([]byte("hello world"))
	sigBad := &SignatureData{
		V: big.NewInt(0),
		R: new(big.Int),
		S: new(big.Int),
	}
	_, err := sigBad.Recover(digest)
	assert.Error(t, err)
}
