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

// Equals is structural equality: same variant, structurally equal children.
// Binder info never participates — it is elaboration metadata the converter
// does not see. Two optimizations keep this cheap in practice: identical
// node identity short-circuits to true, and differing cached hashes
// short-circuit to false.
func Equals(a, b Expr) bool {
	if a == b {
		return true
	}

	if a.Hash() != b.Hash() {
		return false
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case KindVar:
		return VarIdx(a) == VarIdx(b)
	case KindSort:
		return SortLevel(a).Equals(SortLevel(b))
	case KindConst:
		return ConstName(a) == ConstName(b) && level.EqualsList(ConstLevelParams(a), ConstLevelParams(b))
	case KindMeta, KindLocal:
		return MLocalName(a) == MLocalName(b) && Equals(MLocalType(a), MLocalType(b))
	case KindApp:
		return Equals(AppFn(a), AppFn(b)) && Equals(AppArg(a), AppArg(b))
	case KindLambda, KindPi:
		return Equals(BinderDomain(a), BinderDomain(b)) && Equals(BinderBody(a), BinderBody(b))
	case KindLet:
		return Equals(LetType(a), LetType(b)) && Equals(LetValue(a), LetValue(b)) && Equals(LetBody(a), LetBody(b))
	case KindMacro:
		return macrosEqual(a, b)
	default:
		panic("unreachable")
	}
}

// macrosEqual compares two Macro nodes: same definition (by the
// definition's own Equals), same arity, pairwise-equal arguments.
func macrosEqual(a, b Expr) bool {
	defA, defB := MacroDef(a), MacroDef(b)
	if !defA.Equals(defB) {
		return false
	}

	argsA, argsB := MacroArgs(a), MacroArgs(b)
	if len(argsA) != len(argsB) {
		return false
	}

	for i := range argsA {
		if !Equals(argsA[i], argsB[i]) {
			return false
		}
	}

	return true
}
