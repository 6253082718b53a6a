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
package convert

import (
	"sync"

	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/util/collection/hash"
)

type exprKey struct{ e expr.Expr }

func (k exprKey) Hash() uint64              { return k.e.Hash() }
func (k exprKey) Equals(o exprKey) bool     { return expr.Equals(k.e, o.e) }

// exprCache is a structural-equality memo table guarded by a mutex: the
// converter is documented as single-threaded per instance, but cache
// insertions must still be idempotent under a racing caller, so a lock
// costs nothing a well-behaved caller would notice.
type exprCache struct {
	mu sync.Mutex
	m  *hash.Map[exprKey, expr.Expr]
}

func newExprCache() *exprCache {
	return &exprCache{m: hash.NewMap[exprKey, expr.Expr](0)}
}

func (c *exprCache) get(e expr.Expr) (expr.Expr, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.m.Get(exprKey{e})
}

// put is idempotent: if a concurrent insert already recorded a structurally
// equal result, it is left in place rather than overwritten.
func (c *exprCache) put(key, value expr.Expr) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.m.Get(exprKey{key}); ok {
		return
	}

	c.m.Insert(exprKey{key}, value)
}
