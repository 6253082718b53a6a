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

// copyTag returns fresh with the old node's tag propagated onto it, unless
// the old node carried no tag. Every updater below routes its "children
// actually changed" branch through this so tags survive rewriting passes.
func copyTag(old, fresh Expr) Expr {
	if t := old.Tag(); t != NullTag {
		fresh.SetTag(t)
	}

	return fresh
}

// UpdateApp rebuilds an App only if either child changed by identity;
// otherwise it returns e unchanged, preserving sharing.
func UpdateApp(e Expr, newFn, newArg Expr) Expr {
	if AppFn(e) != newFn || AppArg(e) != newArg {
		return copyTag(e, MkApp(newFn, newArg))
	}

	return e
}

// UpdateRevApp rebuilds an application spine given its arguments in natural
// left-to-right order (as returned by GetAppArgs), keeping e's head and
// short-circuiting to e unchanged if every argument is pointer-identical to
// its replacement. It exists alongside UpdateApp for callers that already
// have the whole flattened argument list in hand and would otherwise rebuild
// one App node at a time.
func UpdateRevApp(e Expr, newArgs []Expr) Expr {
	oldArgs := GetAppArgs(e)

	changed := len(oldArgs) != len(newArgs)
	if !changed {
		for i := range oldArgs {
			if oldArgs[i] != newArgs[i] {
				changed = true
				break
			}
		}
	}

	if changed {
		return copyTag(e, App(GetAppFn(e), newArgs...))
	}

	return e
}

// UpdateBinder rebuilds a Lambda or Pi only if the domain or body changed.
func UpdateBinder(e Expr, newDomain, newBody Expr) Expr {
	if BinderDomain(e) != newDomain || BinderBody(e) != newBody {
		b := mustBinder(e)

		var fresh Expr
		if b.kind == KindLambda {
			fresh = MkLambda(b.name, newDomain, newBody, b.info)
		} else {
			fresh = MkPi(b.name, newDomain, newBody, b.info)
		}

		return copyTag(e, fresh)
	}

	return e
}

// UpdateLet rebuilds a Let only if the type, value, or body changed.
func UpdateLet(e Expr, newType, newValue, newBody Expr) Expr {
	if LetType(e) != newType || LetValue(e) != newValue || LetBody(e) != newBody {
		return copyTag(e, MkLet(LetName(e), newType, newValue, newBody))
	}

	return e
}

// UpdateMLocal rebuilds a Meta or Local only if its type changed.
func UpdateMLocal(e Expr, newType Expr) Expr {
	if MLocalType(e) != newType {
		if IsMetavar(e) {
			return copyTag(e, MkMetavar(MLocalName(e), newType))
		}

		return copyTag(e, MkLocal(MLocalName(e), newType))
	}

	return e
}

// UpdateSort rebuilds a Sort only if the level changed.
func UpdateSort(e Expr, newLevel *level.Level) Expr {
	if !SortLevel(e).Equals(newLevel) {
		return copyTag(e, MkSort(newLevel))
	}

	return e
}

// UpdateConstant rebuilds a Const only if the level arguments changed.
func UpdateConstant(e Expr, newLevels []*level.Level) Expr {
	if !level.EqualsList(ConstLevelParams(e), newLevels) {
		return copyTag(e, MkConst(ConstName(e), newLevels))
	}

	return e
}

// UpdateMacro rebuilds a Macro only if its argument count or any argument
// changed by identity.
func UpdateMacro(e Expr, newArgs []Expr) Expr {
	old := MacroArgs(e)

	changed := len(old) != len(newArgs)
	if !changed {
		for i := range old {
			if old[i] != newArgs[i] {
				changed = true
				break
			}
		}
	}

	if changed {
		return copyTag(e, MkMacro(MacroDef(e), newArgs))
	}

	return e
}
