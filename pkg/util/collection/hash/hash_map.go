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

// Package hash provides a small hashtable keyed by a user-supplied hash plus
// equality test, rather than Go's built-in comparable constraint. This is
// what the kernel's converter needs for its WHNF caches and the term
// interner: the key is a term, "hash" is its precomputed structural hash,
// and collisions must be resolved with real equality rather than discarded.
package hash

// Hasher is satisfied by anything that can be placed into a Map: it must be
// able to compare itself against another instance and report a hash code
// consistent with that comparison (equal values must hash equally).
type Hasher[T any] interface {
	// Equals checks whether this value is equal to another.
	Equals(T) bool
	// Hash returns a hash code for this value.
	Hash() uint64
}

// Map is a hashtable in which collisions are handled with buckets, rather
// than assumed away. That matters here because the structural hash of a
// term is not a perfect hash.
type Map[K Hasher[K], V any] struct {
	buckets map[uint64]bucket[K, V]
}

// NewMap creates a new empty Map with a hint as to its expected size.
func NewMap[K Hasher[K], V any](sizeHint uint) *Map[K, V] {
	return &Map[K, V]{make(map[uint64]bucket[K, V], sizeHint)}
}

// Size returns the number of unique keys stored in this map.
func (m *Map[K, V]) Size() uint {
	var count uint

	for _, b := range m.buckets {
		count += uint(len(b.keys))
	}

	return count
}

// Insert a key/value pair, overwriting any previous value for an equal key.
// Returns true if the key was already present.
func (m *Map[K, V]) Insert(key K, value V) bool {
	h := key.Hash()
	b := m.buckets[h]
	existed := b.insert(key, value)
	m.buckets[h] = b

	return existed
}

// Get looks up a value by key, returning false if no equal key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var empty V

	if b, ok := m.buckets[key.Hash()]; ok {
		return b.get(key)
	}

	return empty, false
}

// ContainsKey checks whether an equal key is already stored in this map.
func (m *Map[K, V]) ContainsKey(key K) bool {
	b, ok := m.buckets[key.Hash()]
	return ok && b.contains(key)
}

type bucket[K Hasher[K], V any] struct {
	keys   []K
	values []V
}

func (b *bucket[K, V]) insert(key K, value V) bool {
	for i, k := range b.keys {
		if key.Equals(k) {
			b.values[i] = value
			return true
		}
	}

	b.keys = append(b.keys, key)
	b.values = append(b.values, value)

	return false
}

func (b *bucket[K, V]) contains(key K) bool {
	for _, k := range b.keys {
		if key.Equals(k) {
			return true
		}
	}

	return false
}

func (b *bucket[K, V]) get(key K) (V, bool) {
	var empty V

	for i, k := range b.keys {
		if key.Equals(k) {
			return b.values[i], true
		}
	}

	return empty, false
}
