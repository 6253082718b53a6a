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

import "github.com/tt-kernel/kernel/pkg/level"

const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// combineHash folds a second hash code into an accumulator, used to build
// each variant's structural hash out of its children's hashes.
func combineHash(acc, h uint64) uint64 {
	acc ^= h
	acc *= fnvPrime64

	return acc
}

func hashString(s string) uint64 {
	h := fnvOffset64
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}

	return h
}

func hashLevels(ls []*level.Level) uint64 {
	h := uint64(23)
	for _, l := range ls {
		h = combineHash(h, l.Hash())
	}

	return h
}

func anyLevelHasMetavariable(ls []*level.Level) bool {
	for _, l := range ls {
		if l.HasMetavariable() {
			return true
		}
	}

	return false
}

func anyLevelHasParameter(ls []*level.Level) bool {
	for _, l := range ls {
		if l.HasParameter() {
			return true
		}
	}

	return false
}
