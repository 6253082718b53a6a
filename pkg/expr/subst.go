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

// Instantiate replaces each free Var(i) for i < len(args) by
// args[len(args)-1-i], lifting each substituent by the number of binders it
// is carried under. It is the workhorse of beta-reduction (entering a
// Lambda/Pi body with known substituents) and of Let-reduction.
func Instantiate(body Expr, args []Expr) Expr {
	if len(args) == 0 {
		return body
	}

	return instantiateRec(body, 0, args)
}

// InstantiateOne is the single-substituent specialization used by Let
// reduction: instantiate(body, value) in the spec's notation.
func InstantiateOne(body Expr, value Expr) Expr {
	return instantiateRec(body, 0, []Expr{value})
}

func instantiateRec(e Expr, offset uint32, args []Expr) Expr {
	if e.FreeVarRange() <= offset {
		return e
	}

	switch e.Kind() {
	case KindVar:
		idx := VarIdx(e)
		if idx < offset {
			return e
		}

		if rel := idx - offset; rel < uint32(len(args)) {
			return liftFreeVars(args[uint32(len(args))-1-rel], offset)
		}

		return e
	case KindSort, KindConst:
		return e
	case KindMeta, KindLocal:
		// The type carried by a metavariable or local constant is not
		// itself under the binders being instantiated here; it is left
		// untouched, matching the original kernel's treatment of these as
		// substitution leaves.
		return e
	case KindApp:
		return UpdateApp(e, instantiateRec(AppFn(e), offset, args), instantiateRec(AppArg(e), offset, args))
	case KindLambda, KindPi:
		newDomain := instantiateRec(BinderDomain(e), offset, args)
		newBody := instantiateRec(BinderBody(e), offset+1, args)

		return UpdateBinder(e, newDomain, newBody)
	case KindLet:
		newType := instantiateRec(LetType(e), offset, args)
		newValue := instantiateRec(LetValue(e), offset, args)
		newBody := instantiateRec(LetBody(e), offset+1, args)

		return UpdateLet(e, newType, newValue, newBody)
	case KindMacro:
		old := MacroArgs(e)
		newArgs := make([]Expr, len(old))

		for i, a := range old {
			newArgs[i] = instantiateRec(a, offset, args)
		}

		return UpdateMacro(e, newArgs)
	default:
		panic("unreachable")
	}
}

// liftFreeVars adds k to every free variable index in e, used to adjust a
// substituent each time Instantiate descends one more binder.
func liftFreeVars(e Expr, k uint32) Expr {
	if k == 0 || e.FreeVarRange() == 0 {
		return e
	}

	return liftRec(e, 0, k)
}

func liftRec(e Expr, offset, k uint32) Expr {
	if e.FreeVarRange() <= offset {
		return e
	}

	switch e.Kind() {
	case KindVar:
		idx := VarIdx(e)
		if idx < offset {
			return e
		}

		return MkVar(idx + k)
	case KindSort, KindConst, KindMeta, KindLocal:
		return e
	case KindApp:
		return UpdateApp(e, liftRec(AppFn(e), offset, k), liftRec(AppArg(e), offset, k))
	case KindLambda, KindPi:
		return UpdateBinder(e, liftRec(BinderDomain(e), offset, k), liftRec(BinderBody(e), offset+1, k))
	case KindLet:
		return UpdateLet(e, liftRec(LetType(e), offset, k), liftRec(LetValue(e), offset, k), liftRec(LetBody(e), offset+1, k))
	case KindMacro:
		old := MacroArgs(e)
		newArgs := make([]Expr, len(old))

		for i, a := range old {
			newArgs[i] = liftRec(a, offset, k)
		}

		return UpdateMacro(e, newArgs)
	default:
		panic("unreachable")
	}
}

// LowerFreeVars subtracts k from every free variable index in e. Its
// precondition is that no free variable would become negative; violating it
// (e.g. calling it without first checking get_free_var_range(e) <= k is
// impossible for the variable in question) panics rather than silently
// wrapping. Used by eta-reduction to drop the binder it just peeled off.
func LowerFreeVars(e Expr, k uint32) Expr {
	if k == 0 || e.FreeVarRange() == 0 {
		return e
	}

	return lowerRec(e, 0, k)
}

func lowerRec(e Expr, offset, k uint32) Expr {
	if e.FreeVarRange() <= offset {
		return e
	}

	switch e.Kind() {
	case KindVar:
		idx := VarIdx(e)
		if idx < offset {
			return e
		}

		if idx-offset < k {
			panic("expr.LowerFreeVars: free variable would become negative")
		}

		return MkVar(idx - k)
	case KindSort, KindConst, KindMeta, KindLocal:
		return e
	case KindApp:
		return UpdateApp(e, lowerRec(AppFn(e), offset, k), lowerRec(AppArg(e), offset, k))
	case KindLambda, KindPi:
		return UpdateBinder(e, lowerRec(BinderDomain(e), offset, k), lowerRec(BinderBody(e), offset+1, k))
	case KindLet:
		return UpdateLet(e, lowerRec(LetType(e), offset, k), lowerRec(LetValue(e), offset, k), lowerRec(LetBody(e), offset+1, k))
	case KindMacro:
		old := MacroArgs(e)
		newArgs := make([]Expr, len(old))

		for i, a := range old {
			newArgs[i] = lowerRec(a, offset, k)
		}

		return UpdateMacro(e, newArgs)
	default:
		panic("unreachable")
	}
}

// HasFreeVar reports whether Var(i) occurs free in e.
func HasFreeVar(e Expr, i uint32) bool {
	return hasFreeVarRec(e, i)
}

func hasFreeVarRec(e Expr, i uint32) bool {
	if e.FreeVarRange() <= i {
		return false
	}

	switch e.Kind() {
	case KindVar:
		return VarIdx(e) == i
	case KindSort, KindConst:
		return false
	case KindMeta, KindLocal:
		return hasFreeVarRec(MLocalType(e), i)
	case KindApp:
		return hasFreeVarRec(AppFn(e), i) || hasFreeVarRec(AppArg(e), i)
	case KindLambda, KindPi:
		return hasFreeVarRec(BinderDomain(e), i) || hasFreeVarRec(BinderBody(e), i+1)
	case KindLet:
		return hasFreeVarRec(LetType(e), i) || hasFreeVarRec(LetValue(e), i) || hasFreeVarRec(LetBody(e), i+1)
	case KindMacro:
		for _, a := range MacroArgs(e) {
			if hasFreeVarRec(a, i) {
				return true
			}
		}

		return false
	default:
		panic("unreachable")
	}
}

// InstantiateParams substitutes universe parameters named params[i] by
// levels[i] throughout e — used when a definition's body is unfolded at a
// Const node's concrete level arguments.
func InstantiateParams(e Expr, params []string, levels []*level.Level) Expr {
	if !e.HasParameterUniverse() {
		return e
	}

	switch e.Kind() {
	case KindVar:
		return e
	case KindSort:
		return UpdateSort(e, level.Instantiate(SortLevel(e), params, levels))
	case KindConst:
		old := ConstLevelParams(e)
		newLevels := make([]*level.Level, len(old))

		for i, l := range old {
			newLevels[i] = level.Instantiate(l, params, levels)
		}

		return UpdateConstant(e, newLevels)
	case KindMeta, KindLocal:
		return UpdateMLocal(e, InstantiateParams(MLocalType(e), params, levels))
	case KindApp:
		return UpdateApp(e, InstantiateParams(AppFn(e), params, levels), InstantiateParams(AppArg(e), params, levels))
	case KindLambda, KindPi:
		newDomain := InstantiateParams(BinderDomain(e), params, levels)
		newBody := InstantiateParams(BinderBody(e), params, levels)

		return UpdateBinder(e, newDomain, newBody)
	case KindLet:
		newType := InstantiateParams(LetType(e), params, levels)
		newValue := InstantiateParams(LetValue(e), params, levels)
		newBody := InstantiateParams(LetBody(e), params, levels)

		return UpdateLet(e, newType, newValue, newBody)
	case KindMacro:
		old := MacroArgs(e)
		newArgs := make([]Expr, len(old))

		for i, a := range old {
			newArgs[i] = InstantiateParams(a, params, levels)
		}

		return UpdateMacro(e, newArgs)
	default:
		panic("unreachable")
	}
}
