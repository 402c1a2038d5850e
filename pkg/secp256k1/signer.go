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
	"context"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethwire/internal/ethmsgs"
	"github.com/kaleido-io/ethwire/pkg/ethtypes"
)

// SignatureData is a raw (v, r, s) ECDSA signature triple, in whichever
// v encoding the caller is currently holding (legacy 27/28, EIP-155
// chain-bound, or EIP-2930/1559 bare 0/1 parity).
type SignatureData struct {
	V *big.Int
	R *big.Int
	S *big.Int
}

// recoveryID extracts the 0/1 secp256k1 recovery id from a v value in
// any of the three encodings a transaction can carry: 0/1 directly
// (typed envelopes), 27/28 (legacy pre-EIP-155), and
// chainID*2+35+recId (EIP-155). v&1 alone does NOT work for the
// legacy cases: both fixed offsets (27 and 35) are odd, so v&1 equals
// 1-recId rather than recId for v∈{27,28} or v≥35 - only the bare
// 0/1 typed-envelope case has v&1==recId directly. Since EIP-155's
// 2*chainID term is even, (v-35)'s low bit already isolates recId
// without needing chainID as a separate input, so this stays a
// function of v alone.
func recoveryID(v *big.Int) (byte, error) {
	switch {
	case v.Sign() >= 0 && v.Cmp(big.NewInt(1)) <= 0:
		return byte(v.Int64()), nil
	case v.Cmp(big.NewInt(27)) == 0:
		return 0, nil
	case v.Cmp(big.NewInt(28)) == 0:
		return 1, nil
	case v.Cmp(big.NewInt(35)) >= 0:
		d := new(big.Int).Sub(v, big.NewInt(35))
		return byte(d.Bit(0)), nil
	default:
		return 0, i18n.NewError(context.Background(), ethmsgs.MsgInvalidSignatureV, v.String())
	}
}

// Recover obtains the public key that produced this signature over the
// given 32-byte digest (the caller keccak256-hashes the signing bytes
// before calling this).
func (s *SignatureData) Recover(digest []byte) (*btcec.PublicKey, error) {
	recID, err := recoveryID(s.V)
	if err != nil {
		return nil, err
	}
	compact := make([]byte, 65)
	compact[0] = 27 + recID
	s.R.FillBytes(compact[1:33])
	s.S.FillBytes(compact[33:65])
	pubKey, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgSignatureRecoveryFailed, err)
	}
	return pubKey, nil
}

// RecoverAddress recovers the public key and derives its Ethereum
// address in one call.
func (s *SignatureData) RecoverAddress(digest []byte) (*ethtypes.Address, error) {
	pubKey, err := s.Recover(digest)
	if err != nil {
		return nil, err
	}
	addr, err := ethtypes.AddressFromPublicKey(pubKey.SerializeUncompressed())
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// Sign produces a raw signature over a 32-byte digest, returning v in
// its bare 0/1 recovery-id form. Callers apply whichever v transform
// (legacy 27/28, EIP-155) their envelope format requires.
func (k *KeyPair) Sign(digest []byte) (*SignatureData, error) {
	compact := ecdsa.SignCompact(k.PrivateKey, digest, false)
	return &SignatureData{
		V: big.NewInt(int64(compact[0]) - 27),
		R: new(big.Int).SetBytes(compact[1:33]),
		S: new(big.Int).SetBytes(compact[33:65]),
	}, nil
}

// IsValidPublic reports whether b is a well-formed uncompressed
// secp256k1 public key (65 bytes, 0x04 prefix, point on curve).
func IsValidPublic(b []byte) bool {
	if len(b) != 65 || b[0] != 0x04 {
		return false
	}
	_, err := btcec.ParsePubKey(b)
	return err == nil
}

// PubToAddress derives the Ethereum address for an uncompressed public
// key, returning an error if the key is malformed.
func PubToAddress(pubKey []byte) (*ethtypes.Address, error) {
	addr, err := ethtypes.AddressFromPublicKey(pubKey)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// IsValidSignature reports whether r and s are both non-nil, non-zero
// and within the canonical 32-byte bound expected of a wire-format
// signature (this
// does not check the full low-S / curve-order constraint; it is a
// structural shape check used before attempting recovery).
func IsValidSignature(r, s *big.Int) bool {
	return r != nil && s != nil &&
		len(r.Bytes()) <= 32 && len(s.Bytes()) <= 32 &&
		r.Sign() > 0 && s.Sign() > 0
}
