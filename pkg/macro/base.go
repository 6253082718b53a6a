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
package macro

import "github.com/tt-kernel/kernel/pkg/expr"

// base implements the parts of expr.MacroDefinition that every macro in this
// package shares: name, trust level, hash and ordering. Ordering and hashing
// are keyed on the name alone, following the original kernel's
// macro_definition::operator<. Less does not break ties: of two definitions
// with the same name, neither is less than the other.
type base struct {
	name       string
	trustLevel uint32
}

func (b base) Name() string       { return b.name }
func (b base) TrustLevel() uint32 { return b.trustLevel }
func (b base) Hash() uint64       { return hashString(b.name) }

func (b base) Less(other expr.MacroDefinition) bool {
	return b.name < other.Name()
}

func hashString(s string) uint64 {
	const (
		offset64 uint64 = 14695981039346656037
		prime64  uint64 = 1099511628211
	)

	h := offset64
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}

	return h
}
