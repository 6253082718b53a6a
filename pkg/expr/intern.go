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
package expr

import (
	"sync"

	"github.com/tt-kernel/kernel/pkg/util/collection/hash"
)

// Table is an optional hash-consing cache: structurally equal expressions
// that pass through Intern come out pointer-identical. The spec treats this
// as a pure optimization (§3.3 — "hash-consing is an optimization, not a
// correctness invariant"), so every other package in this module must keep
// working whether or not terms it sees have been interned.
type Table struct {
	mu sync.Mutex
	m  *hash.Map[internKey, Expr]
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{m: hash.NewMap[internKey, Expr](0)}
}

// Intern returns the canonical representative structurally equal to e,
// recording e as that representative if this is the first time its shape
// has been seen.
func (t *Table) Intern(e Expr) Expr {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := internKey{e}

	if existing, ok := t.m.Get(key); ok {
		return existing
	}

	t.m.Insert(key, e)

	return e
}

// Size reports how many distinct shapes are currently interned.
func (t *Table) Size() uint {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.m.Size()
}

type internKey struct {
	e Expr
}

func (k internKey) Hash() uint64 { return k.e.Hash() }

func (k internKey) Equals(o internKey) bool { return Equals(k.e, o.e) }
