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

import "github.com/tt-kernel/kernel/pkg/expr"

// tryEta rewrites lambda x, f x to f when x does not occur free in f,
// recursing first so a nested eta-redex under the binder is collapsed before
// the outer one is considered. If the final shape is not an application of
// the bound variable, e is returned completely unchanged (not even the inner
// recursive rewrite is kept), preserving whatever sharing the caller already
// had.
func tryEta(e expr.Expr) expr.Expr {
	body := expr.BinderBody(e)

	reduced := body
	if expr.IsLambda(reduced) {
		reduced = tryEta(reduced)
	}

	if expr.IsApp(reduced) {
		fn, arg := expr.AppFn(reduced), expr.AppArg(reduced)

		if expr.IsVar(arg) && expr.VarIdx(arg) == 0 && !expr.HasFreeVar(fn, 0) {
			return expr.LowerFreeVars(fn, 1)
		}
	}

	return e
}
