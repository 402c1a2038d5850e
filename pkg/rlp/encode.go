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

package rlp

// Encode renders a List as canonical RLP: an unbounded list accumulates
// each item's encoding, then gets prefixed with the list's own length.
func Encode(l List) []byte {
	payload := make([]byte, 0, 64)
	for _, it := range l {
		payload = append(payload, encodeItem(it)...)
	}
	return encodeBytes(payload, true)
}

// EncodeItem renders a single Item as canonical RLP.
func EncodeItem(it Item) []byte {
	return encodeItem(it)
}

func encodeItem(it Item) []byte {
	switch it.kind {
	case KindList:
		payload := make([]byte, 0, 64)
		for _, child := range it.list {
			payload = append(payload, encodeItem(child)...)
		}
		return encodeBytes(payload, true)
	case KindEmpty:
		return encodeBytes(nil, false)
	case KindNum:
		return encodeBytes(minimalBytes(it.num), false)
	case KindText:
		return encodeBytes([]byte(it.text), false)
	case KindRaw:
		return encodeBytes(it.raw, false)
	default:
		return encodeBytes(nil, false)
	}
}

// encodeBytes applies the canonical short/long string or list prefix
// rules to a payload that has already been assembled (for lists, the
// concatenation of each child's own encoding).
func encodeBytes(inBytes []byte, isList bool) []byte {
	shortOffset := shortString
	if isList {
		shortOffset = shortList
	}
	if len(inBytes) == 1 &&
		!isList &&
		inBytes[0] <= 0x7f {
		// We don't need the offset, this can be sent as a single byte
		return inBytes
	}
	if len(inBytes) <= 55 {
		// Add the length to same byte as the offset
		outBytes := make([]byte, len(inBytes)+1)
		outBytes[0] = shortOffset + byte(len(inBytes))
		copy(outBytes[1:], inBytes[0:])
		return outBytes
	}
	// The length is too long to fit in a single byte, we have to encode it
	encodedByteLen := int64ToMinimalBytes(int64(len(inBytes)))
	outBytes := make([]byte, 1+len(encodedByteLen)+len(inBytes))
	outBytes[0] = shortOffset + shortToLong + byte(len(encodedByteLen))
	copy(outBytes[1:], encodedByteLen)
	copy(outBytes[1+len(encodedByteLen):], inBytes)
	return outBytes
}

func int64ToMinimalBytes(v int64) []byte {
	vb := int64ToBytes(v)
	for i := 0; i < len(vb); i++ {
		if vb[i] != 0x00 {
			return vb[i:]
		}
	}
	return []byte{}
}

func int64ToBytes(v int64) [8]byte {
	return [8]byte{
		(byte)((v >> 56) & 0xff),
		(byte)((v >> 48) & 0xff),
		(byte)((v >> 40) & 0xff),
		(byte)((v >> 32) & 0xff),
		(byte)((v >> 24) & 0xff),
		(byte)((v >> 16) & 0xff),
		(byte)((v >> 8) & 0xff),
		(byte)(v & 0xff),
	}
}
