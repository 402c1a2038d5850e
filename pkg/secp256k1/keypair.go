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
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/kaleido-io/ethwire/pkg/ethtypes"
	"golang.org/x/crypto/sha3"
)

// KeyPair is a signing keypair used only by this module's own tests to
// produce real, recoverable signatures - it is not an external key
// management surface (no disk persistence, no keystore format).
type KeyPair struct {
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
	Address    ethtypes.Address
}

func (k *KeyPair) PrivateKeyBytes() []byte {
	return k.PrivateKey.Serialize()
}

func GenerateSecp256k1KeyPair() (*KeyPair, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return wrapSecp256k1Key(key), nil
}

func NewSecp256k1KeyPair(b []byte) (*KeyPair, error) {
	key, _ := btcec.PrivKeyFromBytes(b)
	return wrapSecp256k1Key(key), nil
}

func wrapSecp256k1Key(key *btcec.PrivateKey) *KeyPair {
	k := &KeyPair{
		PrivateKey: key,
		PublicKey:  key.PubKey(),
	}

	// Remove the "04" prefix byte when computing the address - it only
	// indicates the key is uncompressed.
	publicKeyBytes := k.PublicKey.SerializeUncompressed()[1:]
	hash := sha3.NewLegacyKeccak256()
	hash.Write(publicKeyBytes)
	// Ethereum addresses only use the lower 20 bytes of the hash
	copy(k.Address[:], hash.Sum(nil)[12:32])

	return k
}
