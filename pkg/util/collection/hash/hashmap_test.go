// Copyright 2026 The tt-kernel Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tt-kernel/kernel/pkg/util/collection/hash"
)

type testKey struct{ v uint }

func (k testKey) Equals(o testKey) bool { return k.v == o.v }

// Hash deliberately folds the key space down so that collisions (and hence
// bucket chaining) are routinely exercised by the tests below.
func (k testKey) Hash() uint64 { return uint64(k.v) % 7 }

func TestHashMapSmall(t *testing.T) {
	checkHashMap(t, []uint{1, 2, 3, 4, 3, 2, 1})
}

func TestHashMapCollisions(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	items := make([]uint, 500)

	for i := range items {
		items[i] = uint(r.Intn(64))
	}

	checkHashMap(t, items)
}

func checkHashMap(t *testing.T, items []uint) {
	t.Helper()

	want := make(map[uint]uint)
	for _, v := range items {
		want[v]++
	}

	hmap := hash.NewMap[testKey, uint](0)
	for k, v := range want {
		hmap.Insert(testKey{k}, v)
	}

	assert.Equal(t, uint(len(want)), hmap.Size())

	for k, v := range want {
		assert.True(t, hmap.ContainsKey(testKey{k}))

		got, ok := hmap.Get(testKey{k})
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}

	assert.False(t, hmap.ContainsKey(testKey{1000}))
}
