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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestU256RoundTrip(t *testing.T) {
	u := NewU256FromUint64(1024)
	b := u.Bytes()
	assert.Equal(t, []byte{0x04, 0x00}, b)

	back, err := U256FromBytes(b)
	assert.NoError(t, err)
	assert.Equal(t, u.Int().Uint64(), back.Int().Uint64())
}

func TestU256Zero(t *testing.T) {
	u := NewU256FromUint64(0)
	assert.Equal(t, []byte{}, u.Bytes())

	back, err := U256FromBytes([]byte{})
	assert.NoError(t, err)
	assert.True(t, back.Int().IsZero())
}

func TestU256RejectsOverLong(t *testing.T) {
	_, err := U256FromBytes(make([]byte, 33))
	assert.Error(t, err)
}

func TestU256RejectsLeadingZero(t *testing.T) {
	_, err := U256FromBytes([]byte{0x00, 0x01})
	assert.Error(t, err)
}

func TestU256NilBytes(t *testing.T) {
	var u *U256
	assert.Equal(t, []byte{}, u.Bytes())
}

func TestU256RLPItem(t *testing.T) {
	u := NewU256FromUint64(256)
	item := u.RLPItem()
	b, err := item.Bytes()
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00}, b)
}
