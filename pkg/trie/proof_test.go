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

package trie

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/kaleido-io/ethwire/pkg/ethtypes"
	"github.com/kaleido-io/ethwire/pkg/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rootFromHash builds a U256 directly from a 32-byte digest, bypassing
// the canonical-minimal-encoding rejection ethtypes.U256FromBytes
// applies - a keccak digest is a fixed-width value, not a minimal RLP
// encoding, and may legitimately have a leading zero byte.
func rootFromHash(hash []byte) *ethtypes.U256 {
	u := new(uint256.Int).SetBytes(hash)
	return (*ethtypes.U256)(u)
}

// encodeHexPrefix packs a nibble slice into compact (hex-prefix) form,
// the inverse of decodeHexPrefix, for constructing synthetic proof
// nodes in tests.
func encodeHexPrefix(nibbles []byte, isLeaf bool) []byte {
	odd := len(nibbles)%2 == 1
	flag := byte(0)
	if isLeaf {
		flag += 2
	}
	if odd {
		flag++
	}
	var out []byte
	if odd {
		out = append(out, flag<<4|nibbles[0])
		nibbles = nibbles[1:]
	} else {
		out = append(out, flag<<4)
	}
	for i := 0; i < len(nibbles); i += 2 {
		out = append(out, nibbles[i]<<4|nibbles[i+1])
	}
	return out
}

// encodeLeaf builds a single Merkle-Patricia leaf node whose path is
// the full 64-nibble (32-byte) hashed key - the trivial one-node trie.
func encodeLeaf(hashedKey, value []byte) []byte {
	pathBytes := encodeHexPrefix(bytesToNibbles(hashedKey), true)
	return rlp.Encode(rlp.List{rlp.Raw(pathBytes), rlp.Raw(value)})
}

func TestVerifyProofSingleLeafInclusion(t *testing.T) {
	key := []byte("account-1")
	value := []byte("some-account-state")

	hashedKey := keccak256(key)
	leaf := encodeLeaf(hashedKey, value)
	root := keccak256(leaf)

	u := rootFromHash(root)

	got, err := VerifyProof(u, key, [][]byte{leaf})
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestVerifyProofBranchThenLeaf(t *testing.T) {
	key := []byte("storage-slot-1")
	value := []byte("slot-value")

	hashedKey := keccak256(key)
	nibbles := bytesToNibbles(hashedKey)

	// Leaf holds every nibble after the first (consumed by the branch).
	leafPath := encodeHexPrefix(nibbles[1:], true)
	leaf := rlp.Encode(rlp.List{rlp.Raw(leafPath), rlp.Raw(value)})
	leafHash := keccak256(leaf)

	branchChildren := make(rlp.List, 17)
	for i := range branchChildren {
		branchChildren[i] = rlp.EmptyItem()
	}
	branchChildren[nibbles[0]] = rlp.Raw(leafHash)
	branch := rlp.Encode(branchChildren)
	root := keccak256(branch)

	u := rootFromHash(root)

	got, err := VerifyProof(u, key, [][]byte{branch, leaf})
	require.NoError(t, err)
	assert.Equal(t, value, got)

	// proof order shouldn't matter - looked up by hash
	got, err = VerifyProof(u, key, [][]byte{leaf, branch})
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestVerifyProofAbsenceEmptyBranchSlot(t *testing.T) {
	key := []byte("missing-key")

	branchChildren := make(rlp.List, 17)
	for i := range branchChildren {
		branchChildren[i] = rlp.EmptyItem()
	}
	// every slot is empty, so any key hashes into an absent branch
	// entry
	branch := rlp.Encode(branchChildren)
	root := keccak256(branch)

	u := rootFromHash(root)

	got, err := VerifyProof(u, key, [][]byte{branch})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestVerifyProofAbsenceDivergentLeaf(t *testing.T) {
	key := []byte("some-key")
	otherKey := []byte("a-totally-different-key")

	hashedOther := keccak256(otherKey)
	value := []byte("irrelevant")
	leaf := encodeLeaf(hashedOther, value)
	root := keccak256(leaf)

	u := rootFromHash(root)

	got, err := VerifyProof(u, key, [][]byte{leaf})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestVerifyProofMissingNodeErrors(t *testing.T) {
	key := []byte("account-1")
	value := []byte("some-account-state")
	hashedKey := keccak256(key)
	leaf := encodeLeaf(hashedKey, value)
	root := keccak256(leaf)

	u := rootFromHash(root)

	_, err := VerifyProof(u, key, nil)
	assert.Error(t, err)
}

func TestVerifyProofMalformedNodeErrors(t *testing.T) {
	malformed := rlp.Encode(rlp.List{rlp.Raw([]byte{0x01})})
	root := keccak256(malformed)
	u := rootFromHash(root)

	_, err := VerifyProof(u, []byte("k"), [][]byte{malformed})
	assert.Error(t, err)
}
