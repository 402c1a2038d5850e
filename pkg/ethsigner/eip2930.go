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

// EIP2930TypeByte is the EIP-2718 envelope type prefix for an
// access-list transaction.
const EIP2930TypeByte = 0x01

// TransactionEIP2930 is the access-list transaction envelope
// introduced by EIP-2930: a legacy-shaped transaction carrying an
// explicit chain id and an access list of addresses/storage keys the
// transaction intends to touch, wrapped in a 0x01 typed envelope.
type TransactionEIP2930 struct {
	ChainID    uint64
	Nonce      *ethtypes.U256
	GasPrice   *ethtypes.U256
	GasLimit   *ethtypes.U256
	To         *ethtypes.Address
	Value      *ethtypes.U256
	Data       []byte
	AccessList ethtypes.AccessList

	V *big.Int
	R *big.Int
	S *big.Int

	// Sign is populated during decode once V/R/S are present, so a
	// parsed transaction carries its recovered sender and hash without
	// a second call to Recover.
	Sign *Signature
}

func (t *TransactionEIP2930) coreFields() rlp.List {
	return rlp.List{
		rlp.Num(t.ChainID),
		t.Nonce.RLPItem(),
		t.GasPrice.RLPItem(),
		t.GasLimit.RLPItem(),
		addressItem(t.To),
		t.Value.RLPItem(),
		rlp.Raw(t.Data),
		t.AccessList.RLPItem(),
	}
}

// SigningPayload is 0x01 || rlp(coreFields).
func (t *TransactionEIP2930) SigningPayload() []byte {
	return append([]byte{EIP2930TypeByte}, rlp.Encode(t.coreFields())...)
}

// SigningHash is keccak256(SigningPayload()).
func (t *TransactionEIP2930) SigningHash() []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(t.SigningPayload())
	return h.Sum(nil)
}

// Encode renders the full typed, signed wire form: 0x01 || rlp(fields
// ++ [v, r, s]).
func (t *TransactionEIP2930) Encode() ([]byte, error) {
	fields := t.coreFields()
	fields = append(fields, bigIntItem(t.V), bigIntItem(t.R), bigIntItem(t.S))
	return append([]byte{EIP2930TypeByte}, rlp.Encode(fields)...), nil
}

// Sign signs the transaction and stores the resulting bare 0/1
// recovery-id v (EIP-2930 envelopes never use legacy or EIP-155 v
// encodings - the chain id is already explicit in the payload).
func (t *TransactionEIP2930) Sign(kp *secp256k1.KeyPair) error {
	sig, err := kp.Sign(t.SigningHash())
	if err != nil {
		return err
	}
	t.V = sig.V
	t.R = sig.R
	t.S = sig.S
	return nil
}

// Recover derives the sending address and transaction hash from the
// populated v/r/s.
func (t *TransactionEIP2930) Recover() (*Signature, error) {
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

// eip2930FromRLP decodes an access-list transaction from its field
// list (the payload after the leading 0x01 type byte has been
// stripped and RLP-decoded).
func eip2930FromRLP(fields rlp.List) (*TransactionEIP2930, error) {
	if len(fields) != 8 && len(fields) != 11 {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgRLPWrongFieldCount, "EIP-2930 transaction", []int{8, 11}, len(fields))
	}
	t := &TransactionEIP2930{}
	chainID, err := ethtypes.U256FromRLPItem(fields[0])
	if err != nil {
		return nil, err
	}
	t.ChainID = chainID.Int().Uint64()
	if t.Nonce, err = ethtypes.U256FromRLPItem(fields[1]); err != nil {
		return nil, err
	}
	if t.GasPrice, err = ethtypes.U256FromRLPItem(fields[2]); err != nil {
		return nil, err
	}
	if t.GasLimit, err = ethtypes.U256FromRLPItem(fields[3]); err != nil {
		return nil, err
	}
	toBytes, err := fields[4].Bytes()
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
	if t.Value, err = ethtypes.U256FromRLPItem(fields[5]); err != nil {
		return nil, err
	}
	if t.Data, err = fields[6].Bytes(); err != nil {
		return nil, err
	}
	if t.AccessList, err = ethtypes.AccessListFromRLPItem(fields[7]); err != nil {
		return nil, err
	}

	if len(fields) == 11 {
		if t.V, err = itemToBigInt(fields[8]); err != nil {
			return nil, err
		}
		if t.R, err = itemToBigInt(fields[9]); err != nil {
			return nil, err
		}
		if t.S, err = itemToBigInt(fields[10]); err != nil {
			return nil, err
		}
		sign, err := t.Recover()
		if err != nil {
			return nil, err
		}
		t.Sign = sign
	}
	return t, nil
}
