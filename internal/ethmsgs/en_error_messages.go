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

package ethmsgs

import "github.com/hyperledger/firefly-common/pkg/i18n"

var ffe = i18n.FFE

//revive:disable
var (
	MsgInvalidNumberString = ffe("FF23001", "Invalid numeric string: %s")

	MsgInvalidAddressLength = ffe("FF23010", "Invalid address - must be 20 bytes (len=%d)")
	MsgInvalidAddressHex    = ffe("FF23011", "Invalid address hex: %s")
	MsgInvalidStorageKeyLength = ffe("FF23012", "Invalid storage key - must be 32 bytes (len=%d)")
	MsgInvalidStorageKeyHex    = ffe("FF23013", "Invalid storage key hex: %s")

	MsgInvalidU256Length   = ffe("FF23020", "Invalid uint256 - must be at most 32 bytes (len=%d)")
	MsgNonCanonicalU256     = ffe("FF23021", "Non-canonical uint256 encoding - leading zero byte")

	MsgRLPExpectedList       = ffe("FF23030", "Expected RLP list, got %s")
	MsgRLPExpectedData       = ffe("FF23031", "Expected RLP data item, got %s")
	MsgRLPWrongFieldCount    = ffe("FF23032", "Wrong number of RLP fields for %s: expected one of %v, got %d")
	MsgRLPTrailingBytes      = ffe("FF23033", "Trailing bytes after RLP decode (consumed=%d total=%d)")

	MsgInvalidTxType          = ffe("FF23040", "Invalid transaction type byte: 0x%02x")
	MsgInvalidTxTypePrefix    = ffe("FF23041", "Empty transaction payload")
	MsgEmptyTransaction       = ffe("FF23042", "Transaction has no populated variant for its declared type")
	MsgSignatureRecoveryFailed = ffe("FF23050", "Signature recovery failed: %s")
	MsgInvalidSignatureV      = ffe("FF23051", "Invalid signature v value: %s")
	MsgInvalidPublicKey       = ffe("FF23052", "Invalid public key")
	MsgInvalidSignatureLength = ffe("FF23053", "Invalid signature - r and s must each be at most 32 bytes")
	MsgInvalidSignatureBytesLength = ffe("FF23054", "Invalid signature - must be 65 bytes (r||s||v), got %d")

	MsgInvalidProofNode   = ffe("FF23060", "Invalid Merkle-Patricia proof node at depth %d: %s")
	MsgProofRootMismatch  = ffe("FF23061", "Proof does not resolve to the expected root")
	MsgProofKeyMismatch   = ffe("FF23062", "Proof key does not match the leaf node's remaining nibbles")

	MsgInvalidCLIHexArg = ffe("FF23070", "Invalid hex argument %s: %s")
	MsgMissingCLIArg    = ffe("FF23071", "Missing required argument: %s")
)
