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
	"context"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethwire/internal/ethmsgs"
	"github.com/kaleido-io/ethwire/pkg/ethtypes"
	"github.com/kaleido-io/ethwire/pkg/rlp"
	"golang.org/x/crypto/sha3"
)

func keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

// resolve turns a child/root reference into the node fields it points
// to: a 32-byte reference is looked up by hash in the supplied proof
// set, while a reference short enough to be embedded directly in its
// parent arrives already as a List item. Returns a nil List (no error)
// for an empty reference - an explicit "no child here" marker.
func resolve(ref rlp.Item, byHash map[[32]byte][]byte, depth int) (rlp.List, error) {
	if ref.IsList() {
		return ref.Children(), nil
	}
	b, err := ref.Bytes()
	if err != nil {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidProofNode, depth, err.Error())
	}
	if len(b) == 0 {
		return nil, nil
	}
	if len(b) != 32 {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidProofNode, depth, "child reference must be 32 bytes or an embedded node")
	}
	var h [32]byte
	copy(h[:], b)
	nodeBytes, ok := byHash[h]
	if !ok {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidProofNode, depth, "referenced node not supplied in proof")
	}
	fields, err := rlp.Decode(nodeBytes)
	if err != nil {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidProofNode, depth, err.Error())
	}
	return fields, nil
}

// VerifyProof hashes key with keccak-256 and walks the standard
// Merkle-Patricia proof nodes from root, returning the authenticated
// value bytes on inclusion, or nil if the proof authenticates the
// key's absence. The proof set is keyed by each node's own keccak
// hash, so nodes may be supplied in any order; a node whose encoding
// is short enough to be embedded directly in its parent (under 32
// bytes) is resolved from the parent's RLP list rather than by a
// separate hash lookup.
func VerifyProof(root *ethtypes.U256, key []byte, proof [][]byte) ([]byte, error) {
	byHash := make(map[[32]byte][]byte, len(proof))
	for _, node := range proof {
		var h [32]byte
		copy(h[:], keccak256(node))
		byHash[h] = node
	}

	hashedKey := keccak256(key)
	nibbles := bytesToNibbles(hashedKey)
	pos := 0
	depth := 0

	rootHash := root.Bytes32()
	ref := rlp.Raw(rootHash[:])

	for {
		fields, err := resolve(ref, byHash, depth)
		if err != nil {
			return nil, err
		}
		if fields == nil {
			return nil, nil
		}

		switch len(fields) {
		case 17:
			if pos == len(nibbles) {
				val, err := fields[16].Bytes()
				if err != nil {
					return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidProofNode, depth, err.Error())
				}
				if len(val) == 0 {
					return nil, nil
				}
				return val, nil
			}
			ref = fields[nibbles[pos]]
			pos++
			depth++

		case 2:
			pathBytes, err := fields[0].Bytes()
			if err != nil {
				return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidProofNode, depth, err.Error())
			}
			pathNibbles, isLeaf := decodeHexPrefix(pathBytes)
			remaining := nibbles[pos:]

			if isLeaf {
				if !nibblesEqual(pathNibbles, remaining) {
					return nil, nil
				}
				val, err := fields[1].Bytes()
				if err != nil {
					return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidProofNode, depth, err.Error())
				}
				return val, nil
			}

			if !hasNibblePrefix(remaining, pathNibbles) {
				return nil, nil
			}
			pos += len(pathNibbles)
			depth++
			ref = fields[1]

		default:
			return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidProofNode, depth, "node must have 2 or 17 fields")
		}
	}
}
