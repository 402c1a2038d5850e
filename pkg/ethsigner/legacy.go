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
	"context"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethwire/internal/ethmsgs"
	"github.com/kaleido-io/ethwire/pkg/ethtypes"
	"github.com/kaleido-io/ethwire/pkg/rlp"
	"github.com/kaleido-io/ethwire/pkg/secp256k1"
	"golang.org/x/crypto/sha3"
)

// TransactionLegacy is the original Ethereum transaction envelope: a
// flat 6-item RLP list (9 once signed), with no EIP-2718 type byte.
// When ChainID is non-zero the signature follows the EIP-155 replay
// protection rule (v = chainID*2 + 35 + recId); ChainID zero signs the
// bare pre-EIP-155 form (v = 27 + recId).
type TransactionLegacy struct {
	Nonce    *ethtypes.U256
	GasPrice *ethtypes.U256
	GasLimit *ethtypes.U256
	To       *ethtypes.Address
	Value    *ethtypes.U256
	Data     []byte
	ChainID  uint64

	V *big.Int
	R *big.Int
	S *big.Int

	// Sign is populated during decode once V/R/S are present, so a
	// parsed transaction carries its recovered sender and hash without
	// a second call to Recover.
	Sign *Signature
}

func (t *TransactionLegacy) coreFields() rlp.List {
	return rlp.List{
		t.Nonce.RLPItem(),
		t.GasPrice.RLPItem(),
		t.GasLimit.RLPItem(),
		addressItem(t.To),
		t.Value.RLPItem(),
		rlp.Raw(t.Data),
	}
}

// SigningPayload is the RLP encoding that gets keccak256-hashed to
// produce the signing digest. Pre-EIP-155 (ChainID==0) it is over the
// 6 core fields alone; EIP-155 appends [chainID, 0, 0] as placeholder
// signature slots before encoding.
func (t *TransactionLegacy) SigningPayload() []byte {
	fields := t.coreFields()
	if t.ChainID != 0 {
		fields = append(fields,
			rlp.Num(t.ChainID),
			rlp.EmptyItem(),
			rlp.EmptyItem(),
		)
	}
	return rlp.Encode(fields)
}

// SigningHash is the keccak256 digest that gets signed.
func (t *TransactionLegacy) SigningHash() []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(t.SigningPayload())
	return h.Sum(nil)
}

// Encode renders the full signed wire form. V/R/S must already be set
// (by Sign, or by the caller directly).
func (t *TransactionLegacy) Encode() ([]byte, error) {
	fields := t.coreFields()
	fields = append(fields, bigIntItem(t.V), bigIntItem(t.R), bigIntItem(t.S))
	return rlp.Encode(fields), nil
}

// Sign computes the signing hash, signs it with kp, applies the
// appropriate v transform (legacy 27/28, or EIP-155 if t.ChainID!=0)
// and stores v/r/s on the transaction.
func (t *TransactionLegacy) Sign(kp *secp256k1.KeyPair) error {
	digest := t.SigningHash()
	sig, err := kp.Sign(digest)
	if err != nil {
		return err
	}
	if t.ChainID != 0 {
		// v = chainID*2 + 35 + recId
		v := new(big.Int).Mul(big.NewInt(int64(t.ChainID)), big.NewInt(2))
		v.Add(v, big.NewInt(35))
		v.Add(v, sig.V)
		t.V = v
	} else {
		t.V = new(big.Int).Add(sig.V, big.NewInt(27))
	}
	t.R = sig.R
	t.S = sig.S
	return nil
}

// Recover derives the sending address from the populated v/r/s, and
// computes the full transaction hash (keccak256 of the signed
// encoding).
func (t *TransactionLegacy) Recover() (*Signature, error) {
	if t.V == nil || t.R == nil || t.S == nil {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidSignatureV, "missing")
	}
	sigData := &secp256k1.SignatureData{V: t.V, R: t.R, S: t.S}
	from, err := sigData.RecoverAddress(t.SigningHash())
	if err != nil {
		return nil, err
	}
	encoded, err := t.Encode()
	if err != nil {
		return nil, err
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(encoded)
	return &Signature{
		V:    t.V,
		R:    t.R,
		S:    t.S,
		From: *from,
		Hash: h.Sum(nil),
	}, nil
}

// legacyFromRLP decodes a legacy transaction from its field list (the
// full top-level RLP list - there is no leading type byte to strip).
func legacyFromRLP(fields rlp.List) (*TransactionLegacy, error) {
	if len(fields) != 6 && len(fields) != 9 {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgRLPWrongFieldCount, "legacy transaction", []int{6, 9}, len(fields))
	}
	t := &TransactionLegacy{}
	var err error
	if t.Nonce, err = ethtypes.U256FromRLPItem(fields[0]); err != nil {
		return nil, err
	}
	if t.GasPrice, err = ethtypes.U256FromRLPItem(fields[1]); err != nil {
		return nil, err
	}
	if t.GasLimit, err = ethtypes.U256FromRLPItem(fields[2]); err != nil {
		return nil, err
	}
	toBytes, err := fields[3].Bytes()
	if err != nil {
		return nil, err
	}
	if len(toBytes) > 0 {
		addr, err := ethtypes.AddressFromBytes(toBytes)
		if err != nil {
			return nil, err
		}
		t.To = &addr
	}
	if t.Value, err = ethtypes.U256FromRLPItem(fields[4]); err != nil {
		return nil, err
	}
	if t.Data, err = fields[5].Bytes(); err != nil {
		return nil, err
	}

	if len(fields) == 9 {
		if t.V, err = itemToBigInt(fields[6]); err != nil {
			return nil, err
		}
		if t.R, err = itemToBigInt(fields[7]); err != nil {
			return nil, err
		}
		if t.S, err = itemToBigInt(fields[8]); err != nil {
			return nil, err
		}
		// EIP-155: chainID recoverable from v>=35 as (v-35)/2
		if t.V.Cmp(big.NewInt(35)) >= 0 {
			chainID := new(big.Int).Sub(t.V, big.NewInt(35))
			chainID.Rsh(chainID, 1)
			t.ChainID = chainID.Uint64()
		}
		sign, err := t.Recover()
		if err != nil {
			return nil, err
		}
		t.Sign = sign
	}
	return t, nil
}
