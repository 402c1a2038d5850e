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
	"context"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethwire/internal/ethmsgs"
	"github.com/kaleido-io/ethwire/pkg/ethsigner"
	"github.com/kaleido-io/ethwire/pkg/ethtypes"
	"github.com/kaleido-io/ethwire/pkg/rlp"
	"github.com/kaleido-io/ethwire/pkg/secp256k1"
	"github.com/kaleido-io/ethwire/pkg/trie"
)

// RLPEncode renders a value list as canonical RLP bytes.
func RLPEncode(l rlp.List) []byte {
	return rlp.Encode(l)
}

// RLPDecode parses a top-level RLP list out of raw bytes.
func RLPDecode(raw []byte) (rlp.List, error) {
	return rlp.Decode(raw)
}

// ParseTransaction decodes a raw transaction envelope, dispatching on
// its leading byte between Legacy, EIP-2930 and EIP-1559.
func ParseTransaction(raw []byte) (*ethsigner.Transaction, error) {
	return ethsigner.ParseTransaction(raw)
}

// CreateTransaction renders the unsigned signing payload for tx and the
// keccak-256 digest of it - the bytes and hash an external signer needs
// to produce a signature. CreateTransaction does not sign anything itself.
func CreateTransaction(tx *ethsigner.Transaction) ([]byte, *ethtypes.U256, error) {
	payload, err := ethsigner.CreateTransaction(tx)
	if err != nil {
		return nil, nil, err
	}
	return payload, Keccak256(payload), nil
}

// RecoverPublicKey recovers the uncompressed public key that produced
// signature (a 65-byte r(32) || s(32) || v(1) triple) over the
// keccak-256 digest of msg.
func RecoverPublicKey(signature []byte, msg []byte) ([]byte, error) {
	if len(signature) != 65 {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidSignatureBytesLength, len(signature))
	}
	digest := Keccak256(msg).Bytes32()
	sig := &secp256k1.SignatureData{
		R: new(big.Int).SetBytes(signature[0:32]),
		S: new(big.Int).SetBytes(signature[32:64]),
		V: new(big.Int).SetBytes(signature[64:65]),
	}
	pubKey, err := sig.Recover(digest[:])
	if err != nil {
		return nil, err
	}
	return pubKey.SerializeUncompressed(), nil
}

// PubToAddress derives the Ethereum address for an uncompressed
// secp256k1 public key.
func PubToAddress(pubKey []byte) (*ethtypes.Address, error) {
	return secp256k1.PubToAddress(pubKey)
}

// IsValidPublic reports whether b is a well-formed uncompressed
// secp256k1 public key.
func IsValidPublic(b []byte) bool {
	return secp256k1.IsValidPublic(b)
}

// IsValidSignature reports whether signature - a 65-byte r(32) || s(32)
// || v(1) triple - has non-zero r and s within the canonical 32-byte
// bound expected of a wire-format signature; v is not checked. A
// wrong-length input is simply
// not valid, not an error: this is a yes/no structural check.
func IsValidSignature(signature []byte) bool {
	if len(signature) != 65 {
		return false
	}
	r := new(big.Int).SetBytes(signature[0:32])
	s := new(big.Int).SetBytes(signature[32:64])
	return secp256k1.IsValidSignature(r, s)
}

// VerifyProof walks a Merkle-Patricia proof against root for key,
// returning the authenticated value, or nil if the proof authenticates
// the key's absence.
func VerifyProof(root *ethtypes.U256, key []byte, proof [][]byte) ([]byte, error) {
	return trie.VerifyProof(root, key, proof)
}
