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

// App builds the left-associative application spine fn(args[0])(args[1])...
func App(fn Expr, args ...Expr) Expr {
	r := fn
	for _, a := range args {
		r = MkApp(r, a)
	}

	return r
}

// RevApp builds an application spine from args given in reverse application
// order: RevApp(f, []Expr{a2, a1}) == App(f, a1, a2), the order in which
// walking down the function side of a spine visits them (outermost-first).
// The converter's WHNF does not use it: it works with GetAppArgs' natural
// order and App instead.
func RevApp(fn Expr, args []Expr) Expr {
	r := fn

	for i := len(args) - 1; i >= 0; i-- {
		r = MkApp(r, args[i])
	}

	return r
}

// GetAppFn walks to the head of an application spine.
func GetAppFn(e Expr) Expr {
	for IsApp(e) {
		e = AppFn(e)
	}

	return e
}

// GetAppArgs flattens an application spine into its arguments, in the
// natural left-to-right application order.
func GetAppArgs(e Expr) []Expr {
	var args []Expr

	for IsApp(e) {
		args = append(args, AppArg(e))
		e = AppFn(e)
	}

	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}

	return args
}

// MkAppVars builds f applied to n fresh bound variables Var(n-1) ... Var(0),
// used to eta-expand a definition's arity.
func MkAppVars(f Expr, n uint32) Expr {
	r := f

	for n > 0 {
		n--
		r = MkApp(r, MkVar(n))
	}

	return r
}

const defaultBinderName = "a"

// Arrow builds a non-dependent Pi: domain -> codomain.
func Arrow(domain, codomain Expr) Expr {
	return MkPi(defaultBinderName, domain, codomain, BinderInfo{})
}

// Prop and Type0 are the two ground sorts every kernel instance needs before
// it can type anything else: the impredicative bottom sort used by proof
// irrelevance, and the first predicative universe above it.
var (
	Prop  = MkSort(level.MkZero())
	Type0 = MkSort(level.MkSucc(level.MkZero()))
)

// IsProp reports whether e is literally the Prop sort (compared by level
// equivalence, not node identity, since Sort nodes are not interned by
// default).
func IsProp(e Expr) bool {
	return IsSort(e) && level.Equivalent(SortLevel(e), level.MkZero())
}
