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

package ethtypes

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethwire/internal/ethmsgs"
	"github.com/kaleido-io/ethwire/pkg/rlp"
)

// AccessListEntry is one [address, [storageKey, ...]] pair from an
// EIP-2930/EIP-1559 access list. Unlike a raw-bytes passthrough, this
// module decodes each entry into its structured address and storage
// key fields so callers can inspect an access list without re-parsing
// the RLP themselves.
type AccessListEntry struct {
	Address     Address
	StorageKeys []StorageKey
}

// AccessList is the ordered sequence of access-list entries carried by
// typed transaction envelopes.
type AccessList []AccessListEntry

// RLPItem renders the entry as its 2-item RLP list.
func (e AccessListEntry) RLPItem() rlp.Item {
	keys := make(rlp.List, len(e.StorageKeys))
	for i, k := range e.StorageKeys {
		keys[i] = k.RLPItem()
	}
	return rlp.NewList(e.Address.RLPItem(), rlp.ListOf(keys))
}

// RLPItem renders the whole access list as an RLP list of entries.
func (al AccessList) RLPItem() rlp.Item {
	items := make(rlp.List, len(al))
	for i, e := range al {
		items[i] = e.RLPItem()
	}
	return rlp.ListOf(items)
}

// AccessListFromRLPItem decodes an access list from the corresponding
// RLP list item, validating each entry is a 2-item [address, keys] pair.
func AccessListFromRLPItem(it rlp.Item) (AccessList, error) {
	if !it.IsList() {
		return nil, i18n.NewError(context.Background(), ethmsgs.MsgRLPExpectedList, it.Kind())
	}
	entries := it.Children()
	al := make(AccessList, len(entries))
	for i, entryItem := range entries {
		entry, err := accessListEntryFromRLPItem(entryItem)
		if err != nil {
			return nil, err
		}
		al[i] = entry
	}
	return al, nil
}

func accessListEntryFromRLPItem(it rlp.Item) (AccessListEntry, error) {
	var entry AccessListEntry
	if !it.IsList() {
		return entry, i18n.NewError(context.Background(), ethmsgs.MsgRLPExpectedList, it.Kind())
	}
	fields := it.Children()
	if len(fields) != 2 {
		return entry, i18n.NewError(context.Background(), ethmsgs.MsgRLPWrongFieldCount, "access list entry", []int{2}, len(fields))
	}
	addrBytes, err := fields[0].Bytes()
	if err != nil {
		return entry, err
	}
	addr, err := AddressFromBytes(addrBytes)
	if err != nil {
		return entry, err
	}
	entry.Address = addr

	if !fields[1].IsList() {
		return entry, i18n.NewError(context.Background(), ethmsgs.MsgRLPExpectedList, fields[1].Kind())
	}
	keyItems := fields[1].Children()
	entry.StorageKeys = make([]StorageKey, len(keyItems))
	for i, keyItem := range keyItems {
		keyBytes, err := keyItem.Bytes()
		if err != nil {
			return entry, err
		}
		key, err := StorageKeyFromBytes(keyBytes)
		if err != nil {
			return entry, err
		}
		entry.StorageKeys[i] = key
	}
	return entry, nil
}
