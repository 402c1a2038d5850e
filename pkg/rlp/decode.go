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

import "fmt"

const (
	maxUint32 = int64(^uint32(0))
	maxInt32  = int64(int32(maxUint32 >> 1))

	/**
	 * [0x80] If a string is 0-55 bytes long, the RLP encoding consists of a single byte with value
	 * 0x80 plus the length of the string followed by the string. The range of the first byte is
	 * thus [0x80, 0xb7].
	 */
	shortString byte = 0x80

	/**
	 * [0xb7] If a string is more than 55 bytes long, the RLP encoding consists of a single byte
	 * with value 0xb7 plus the length of the length of the string in binary form, followed by the
	 * length of the string, followed by the string. For example, a length-1024 string would be
	 * encoded as \xb9\x04\x00 followed by the string. The range of the first byte is thus [0xb8,
	 * 0xbf].
	 */
	longString byte = 0xb7

	/**
	 * [0xc0] If the total payload of a list (i.e. the combined length of all its items) is 0-55
	 * bytes long, the RLP encoding consists of a single byte with value 0xc0 plus the length of the
	 * list followed by the concatenation of the RLP encodings of the items. The range of the first
	 * byte is thus [0xc0, 0xf7].
	 */
	shortList byte = 0xc0

	/**
	 * [0xf7] If the total payload of a list is more than 55 bytes long, the RLP encoding consists
	 * of a single byte with value 0xf7 plus the length of the length of the list in binary form,
	 * followed by the length of the list, followed by the concatenation of the RLP encodings of the
	 * items. The range of the first byte is thus [0xf8, 0xff].
	 */
	longList byte = 0xf7

	/**
	 * [0x37] == (longList-shortList) == (longString-shortString)
	 * which means we can add it to either short offset, to get the long offset
	 */
	shortToLong byte = 0x37
)

// Decode parses a canonical RLP byte slice. The top-level value must be
// a list (every entry point into this module works in terms of field
// lists: transaction envelopes, access lists, generic RLP values) - a
// top-level data item is rejected with ExpectedList. The entire input
// must be consumed; trailing bytes are an error.
func Decode(rlpData []byte) (List, error) {
	item, pos, err := decodeItem(rlpData, 0)
	if err != nil {
		return nil, err
	}
	if pos != len(rlpData) {
		return nil, fmt.Errorf("rlp: trailing bytes after top-level item (consumed=%d total=%d)", pos, len(rlpData))
	}
	if !item.IsList() {
		return nil, fmt.Errorf("rlp: expected list, got %s", item.Kind())
	}
	return item.Children(), nil
}

// decodeItem classifies and decodes exactly one RLP item starting at
// pos, returning the position immediately following it.
func decodeItem(rlpData []byte, pos int) (Item, int, error) {
	if pos >= len(rlpData) {
		return Item{}, -1, fmt.Errorf("rlp: unexpected end of input at position %d", pos)
	}

	prefix := rlpData[pos] & 0xff

	switch {
	case prefix < shortString:
		// the data is a string if the range of the first byte is
		// [0x00, 0x7f], and the string is the first byte itself.
		return classifyData([]byte{rlpData[pos]}), pos + 1, nil

	case prefix == shortString:
		return classifyData([]byte{}), pos + 1, nil

	case prefix <= longString:
		strLen := int(prefix - shortString)
		pos++
		if strLen > len(rlpData)-pos {
			return Item{}, -1, fmt.Errorf("rlp: length mismatch in short data (pos=%d len=%d)", pos, strLen)
		}
		d := make([]byte, strLen)
		copy(d, rlpData[pos:pos+strLen])
		return classifyData(d), pos + strLen, nil

	case prefix < shortList:
		strLen, newPos, err := extractLongLen(false, prefix, pos, rlpData)
		if err != nil {
			return Item{}, -1, err
		}
		pos = newPos
		d := make([]byte, strLen)
		copy(d, rlpData[pos:pos+strLen])
		return classifyData(d), pos + strLen, nil

	case prefix <= longList:
		listLen := int(prefix - shortList)
		pos++
		if listLen > len(rlpData)-pos {
			return Item{}, -1, fmt.Errorf("rlp: length mismatch in short list (pos=%d len=%d)", pos, listLen)
		}
		children, err := decodeSequence(rlpData[pos : pos+listLen])
		if err != nil {
			return Item{}, -1, err
		}
		return ListOf(children), pos + listLen, nil

	default: // prefix > longList
		listLen, newPos, err := extractLongLen(true, prefix, pos, rlpData)
		if err != nil {
			return Item{}, -1, err
		}
		pos = newPos
		children, err := decodeSequence(rlpData[pos : pos+listLen])
		if err != nil {
			return Item{}, -1, err
		}
		return ListOf(children), pos + listLen, nil
	}
}

// decodeSequence decodes a payload slice (a list body, already
// stripped of its own length prefix) into its child items.
func decodeSequence(payload []byte) (List, error) {
	l := make(List, 0, 4)
	pos := 0
	for pos < len(payload) {
		item, newPos, err := decodeItem(payload, pos)
		if err != nil {
			return nil, err
		}
		l = append(l, item)
		pos = newPos
	}
	return l, nil
}

// classifyData tags a decoded byte string as Num when it looks like a
// canonical minimal-big-endian integer (no leading zero byte, fits in
// a uint64), and as Raw otherwise. The empty string is Num(0), matching
// the canonical encoding of zero.
func classifyData(b []byte) Item {
	if len(b) == 0 {
		return Num(0)
	}
	if len(b) <= 8 && b[0] != 0x00 {
		var v uint64
		for _, c := range b {
			v = v<<8 | uint64(c)
		}
		return Num(v)
	}
	return Raw(b)
}

func extractLongLen(isList bool, prefixByte byte, pos int, rlpData []byte) (dataLen, newPos int, err error) {
	longPrefix := longString
	if isList {
		longPrefix = longList
	}
	lenOfLen := int(prefixByte - longPrefix) // 1..8 for a long-form prefix
	pos++
	if lenOfLen > len(rlpData)-pos {
		return -1, -1, fmt.Errorf("rlp: length mismatch in length bytes (list=%t pos=%d len=%d)", isList, pos, lenOfLen)
	}
	dataLen, err = minimalBytesToInt64(rlpData[pos : pos+lenOfLen])
	if err != nil {
		return -1, -1, err
	}
	pos += lenOfLen
	if dataLen > len(rlpData)-pos {
		return -1, -1, fmt.Errorf("rlp: length mismatch in data bytes (list=%t pos=%d len=%d)", isList, pos, dataLen)
	}
	return dataLen, pos, nil
}

func minimalBytesToInt64(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	pow := len(data) - 1
	var v int64
	for i := 0; i < len(data); i++ {
		v += int64(data[i]) << (8 * pow)
		pow--
	}
	if v < 0 || v > maxInt32 {
		// We refuse to decode more than 2^31-1 bytes of data
		return -1, fmt.Errorf("rlp: too many bytes to decode")
	}
	return int(v), nil
}
