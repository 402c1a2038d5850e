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

package ethereum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"
)

func TestKeccak256MatchesDirectHash(t *testing.T) {
	part1 := []byte("hello ")
	part2 := []byte("world")

	h := sha3.NewLegacyKeccak256()
	h.Write(part1)
	h.Write(part2)
	want := h.Sum(nil)

	got := Keccak256(part1, part2)
	assert.Equal(t, want, got.Bytes32()[:])
}

func TestKeccak256Empty(t *testing.T) {
	h := sha3.NewLegacyKeccak256()
	want := h.Sum(nil)

	got := Keccak256()
	assert.Equal(t, want, got.Bytes32()[:])
}
