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
	"context"

	"github.com/tt-kernel/kernel/pkg/env"
	"github.com/tt-kernel/kernel/pkg/expr"
)

// whnfCoreNoDelta reduces e to weak head normal form using only beta, let,
// eta (if enabled) and macro expansion — no unfolding of global definitions.
// It is memoized: callers that only need this cheaper form (the lazy delta
// loop in is_def_eq, in particular) never pay for full Whnf's extra
// normalizer-extension pass.
func (c *Converter) whnfCoreNoDelta(e expr.Expr) expr.Expr {
	if c.memoize {
		if cached, ok := c.whnfCoreCache.get(e); ok {
			return cached
		}
	}

	result := c.whnfCoreNoDeltaUncached(e)

	if c.memoize {
		c.whnfCoreCache.put(e, result)
	}

	return result
}

func (c *Converter) whnfCoreNoDeltaUncached(e expr.Expr) expr.Expr {
	switch e.Kind() {
	case expr.KindVar, expr.KindSort, expr.KindConst, expr.KindMeta, expr.KindLocal, expr.KindPi:
		return e
	case expr.KindLambda:
		if c.env.Eta() {
			return tryEta(e)
		}

		return e
	case expr.KindLet:
		return c.whnfCoreNoDelta(expr.InstantiateOne(expr.LetBody(e), expr.LetValue(e)))
	case expr.KindMacro:
		if expanded, ok := expr.MacroDef(e).Expand(expr.MacroArgs(e), c.extensionContext()); ok {
			return c.whnfCoreNoDelta(expanded)
		}

		return e
	case expr.KindApp:
		return c.whnfCoreApp(e)
	default:
		panic("unreachable")
	}
}

// whnfCoreApp reduces an application spine: it whnf-reduces the head (with
// no delta), and if that head is a lambda, beta-reduces as many stacked
// lambdas as there are arguments available before recursing on whatever
// remains.
func (c *Converter) whnfCoreApp(e expr.Expr) expr.Expr {
	head := expr.GetAppFn(e)
	args := expr.GetAppArgs(e)

	newHead := c.whnfCoreNoDelta(head)

	if !expr.IsLambda(newHead) {
		if newHead == head {
			return e
		}

		return expr.App(newHead, args...)
	}

	m := 0
	cur := newHead

	for m < len(args) && expr.IsLambda(cur) {
		cur = expr.BinderBody(cur)
		m++
	}

	newBody := expr.Instantiate(cur, args[:m])

	if m == len(args) {
		return c.whnfCoreNoDelta(newBody)
	}

	return c.whnfCoreNoDelta(expr.App(newBody, args[m:]...))
}

// unfoldNames replaces e's head, if it is a Const resolving to a transparent
// definition whose weight is at least weightFloor, by that definition's
// value instantiated at the Const's level arguments. Reports false if e's
// head did not unfold.
func (c *Converter) unfoldNames(e expr.Expr, weightFloor uint32) (expr.Expr, bool) {
	def, ok := c.isDelta(e)
	if !ok || def.GetWeight() < weightFloor {
		return e, false
	}

	head := expr.GetAppFn(e)
	value := expr.InstantiateParams(def.GetValue(), def.GetParams(), expr.ConstLevelParams(head))
	args := expr.GetAppArgs(e)

	if len(args) == 0 {
		return value, true
	}

	return expr.App(value, args...), true
}

// isDelta reports the definition e's spine head would unfold to, if any:
// the head must be a Const naming a transparent (non-opaque) definition.
func (c *Converter) isDelta(e expr.Expr) (env.Definition, bool) {
	head := expr.GetAppFn(e)
	if !expr.IsConst(head) {
		return nil, false
	}

	def, ok := c.env.Find(expr.ConstName(head))
	if !ok || c.isOpaque(def) {
		return nil, false
	}

	return def, true
}

// whnfCoreDelta alternates whnfCoreNoDelta and unfoldNames until neither
// makes progress — full core WHNF including delta, but still without
// consulting normalizer extensions.
func (c *Converter) whnfCoreDelta(e expr.Expr, weightFloor uint32) expr.Expr {
	cur := e

	for {
		next := c.whnfCoreNoDelta(cur)

		unfolded, did := c.unfoldNames(next, weightFloor)
		if !did {
			return next
		}

		cur = unfolded
	}
}

// Whnf reduces e to weak head normal form, alternating core reduction
// (beta/delta/let/eta/macro) with the environment's normalizer extension
// until neither rewrites further. Results are cached separately from
// whnfCoreNoDelta's cache, since this form can be strictly more reduced.
func (c *Converter) Whnf(ctx context.Context, e expr.Expr) (expr.Expr, error) {
	if err := checkCancel(ctx); err != nil {
		return nil, err
	}

	if c.memoize {
		if cached, ok := c.whnfCache.get(e); ok {
			return cached, nil
		}
	}

	cur := e

	for {
		core := c.whnfCoreDelta(cur, 0)

		rewritten, did := c.env.NormExt().Normalize(core, c.extensionContext())
		if !did {
			if c.memoize {
				c.whnfCache.put(e, core)
			}

			return core, nil
		}

		cur = rewritten
	}
}
