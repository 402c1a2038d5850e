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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethwire/internal/ethmsgs"
	"github.com/kaleido-io/ethwire/pkg/rlp"
	"github.com/kaleido-io/ethwire/pkg/secp256k1"
)

// Transaction is a tagged union over the three wire envelopes this
// module understands. Exactly one of Legacy/EIP2930/EIP1559 is
// populated, selected by Type.
type Transaction struct {
	Type    byte
	Legacy  *TransactionLegacy
	EIP2930 *TransactionEIP2930
	EIP1559 *TransactionEIP1559
}

// ParseTransaction decodes a raw transaction envelope, dispatching on
// its leading byte: a byte above 0x7f is the first byte of an RLP list
// prefix (a legacy transaction, which carries no type marker), while
// 0x01 and 0x02 identify the EIP-2930 and EIP-1559 typed envelopes
// respectively. Any other leading byte is an unrecognized or reserved
// transaction type.
func ParseTransaction(raw []byte) (*Transaction, error) {
	if len(raw) == 0 {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidTxTypePrefix)
	}
	switch {
	case raw[0] > 0x7f:
		fields, err := rlp.Decode(raw)
		if err != nil {
			return nil, err
		}
		legacy, err := legacyFromRLP(fields)
		if err != nil {
			return nil, err
		}
		return &Transaction{Type: 0, Legacy: legacy}, nil

	case raw[0] == EIP2930TypeByte:
		fields, err := rlp.Decode(raw[1:])
		if err != nil {
			return nil, err
		}
		tx, err := eip2930FromRLP(fields)
		if err != nil {
			return nil, err
		}
		return &Transaction{Type: EIP2930TypeByte, EIP2930: tx}, nil

	case raw[0] == EIP1559TypeByte:
		fields, err := rlp.Decode(raw[1:])
		if err != nil {
			return nil, err
		}
		tx, err := eip1559FromRLP(fields)
		if err != nil {
			return nil, err
		}
		return &Transaction{Type: EIP1559TypeByte, EIP1559: tx}, nil

	default:
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgInvalidTxType, raw[0])
	}
}

// Signable returns the variant-specific signer for this transaction.
func (t *Transaction) Signable() Signable {
	switch t.Type {
	case EIP2930TypeByte:
		return t.EIP2930
	case EIP1559TypeByte:
		return t.EIP1559
	default:
		return t.Legacy
	}
}

// Encode renders the transaction back to its wire bytes.
func (t *Transaction) Encode() ([]byte, error) {
	return t.Signable().Encode()
}

// Sign signs the populated transaction with kp, storing v/r/s on
// whichever variant is active.
func (t *Transaction) Sign(kp *secp256k1.KeyPair) error {
	switch t.Type {
	case EIP2930TypeByte:
		return t.EIP2930.Sign(kp)
	case EIP1559TypeByte:
		return t.EIP1559.Sign(kp)
	default:
		return t.Legacy.Sign(kp)
	}
}

// Recover derives the sender and transaction hash from the populated
// signature fields.
func (t *Transaction) Recover() (*Signature, error) {
	switch t.Type {
	case EIP2930TypeByte:
		return t.EIP2930.Recover()
	case EIP1559TypeByte:
		return t.EIP1559.Recover()
	default:
		return t.Legacy.Recover()
	}
}

// CreateTransaction renders the unsigned signing payload for t - the
// exact bytes a signer keccak256-hashes and signs over. It does not
// produce a signature itself; it only prepares what a signer needs.
func CreateTransaction(t *Transaction) ([]byte, error) {
	switch t.Type {
	case EIP2930TypeByte:
		if t.EIP2930 == nil {
			return nil, i18n.NewError(context.Background(), ethmsgs.MsgEmptyTransaction)
		}
	case EIP1559TypeByte:
		if t.EIP1559 == nil {
			return nil, i18n.NewError(context.Background(), ethmsgs.MsgEmptyTransaction)
		}
	default:
		if t.Legacy == nil {
			return nil, i18n.NewError(context.Background(), ethmsgs.MsgEmptyTransaction)
		}
	}
	return t.Signable().SigningPayload(), nil
}
