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

	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/level"
)

// bufferedSink buffers constraints instead of forwarding them immediately,
// so a speculative equality attempt (the arguments-equal shortcut) can be
// retracted wholesale on failure instead of leaking partial constraints to
// the caller's real sink.
type bufferedSink struct{ items []expr.Constraint }

func (b *bufferedSink) AddConstraint(c expr.Constraint) { b.items = append(b.items, c) }

func (b *bufferedSink) flushTo(dst ConstraintSink) {
	if dst == nil {
		return
	}

	for _, c := range b.items {
		dst.AddConstraint(c)
	}
}

func (c *Converter) emitConstraint(ct expr.Constraint) {
	if c.currentSink != nil {
		c.currentSink.AddConstraint(ct)
	}
}

// IsDefEq decides whether t and s are definitionally equal, emitting any
// constraints it chooses to defer (unresolved metavariables, universe
// inequalities the level algebra can't settle outright) to sink instead of
// deciding them itself. sink may be nil, in which case deferred constraints
// are simply dropped and the corresponding phases report success anyway —
// appropriate only when the caller already knows there are no live
// metavariables in t or s.
func (c *Converter) IsDefEq(ctx context.Context, t, s expr.Expr, sink ConstraintSink) (bool, error) {
	prev := c.currentSink
	c.currentSink = sink
	defer func() { c.currentSink = prev }()

	return c.isDefEqCore(ctx, t, s)
}

// isDefEqCore runs the six phases of the decision procedure in order,
// returning as soon as one of them decides. Each phase helper reports
// (result, decided, error); "not decided" means fall through to the next
// phase with whatever normal form that phase produced.
func (c *Converter) isDefEqCore(ctx context.Context, t, s expr.Expr) (bool, error) {
	if err := checkCancel(ctx); err != nil {
		return false, err
	}

	// Phase 1: quick structural/congruence check.
	if eq, decided, err := c.quickIsDefEq(ctx, t, s); decided || err != nil {
		return eq, err
	}

	// Phase 2: reduce both sides to core WHNF (no delta) and retry the quick
	// check cheaply before paying for delta unfolding.
	tn, sn := c.whnfCoreNoDelta(t), c.whnfCoreNoDelta(s)
	if tn != t || sn != s {
		if eq, decided, err := c.quickIsDefEq(ctx, tn, sn); decided || err != nil {
			return eq, err
		}
	}
	t, s = tn, sn

	// Phase 3: lazy delta unfolding, cheapest side first, with the
	// arguments-equal shortcut when both sides name the same definition.
	eq, decided, t2, s2, err := c.lazyDelta(ctx, t, s)
	if decided || err != nil {
		return eq, err
	}
	t, s = t2, s2

	// Phase 4: let the environment's normalizer extension have a turn.
	if eq, decided, err := c.tryNormExt(ctx, t, s); decided || err != nil {
		return eq, err
	}

	// Phase 5: applicative congruence over equal-length spines.
	if eq, decided, err := c.tryCongruence(ctx, t, s); decided || err != nil {
		return eq, err
	}

	// Phase 6: proof irrelevance.
	if eq, decided, err := c.tryProofIrrelevance(ctx, t, s); decided || err != nil {
		return eq, err
	}

	return false, nil
}

// quickIsDefEq handles the cases that never require reduction: syntactic
// equality, metavariable heads (deferred as a constraint), lambda/Pi
// congruence (opening both bodies with one shared fresh local), and sort
// comparison via the level algebra.
func (c *Converter) quickIsDefEq(ctx context.Context, t, s expr.Expr) (result, decided bool, err error) {
	if expr.Equals(t, s) {
		return true, true, nil
	}

	if expr.IsMeta(t) || expr.IsMeta(s) {
		c.emitConstraint(expr.TermConstraint(t, s, nil))
		return true, true, nil
	}

	if (expr.IsLambda(t) && expr.IsLambda(s)) || (expr.IsPi(t) && expr.IsPi(s)) {
		domEq, err := c.isDefEqCore(ctx, expr.BinderDomain(t), expr.BinderDomain(s))
		if err != nil || !domEq {
			return false, true, err
		}

		local := expr.MkLocal(c.freshName(expr.BinderName(t)), expr.BinderDomain(t))
		tb := expr.InstantiateOne(expr.BinderBody(t), local)
		sb := expr.InstantiateOne(expr.BinderBody(s), local)

		bodyEq, err := c.isDefEqCore(ctx, tb, sb)
		return bodyEq, true, err
	}

	if expr.IsSort(t) && expr.IsSort(s) {
		tl, sl := expr.SortLevel(t), expr.SortLevel(s)
		if level.Equivalent(tl, sl) {
			return true, true, nil
		}

		if tl.HasMetavariable() || sl.HasMetavariable() {
			c.emitConstraint(expr.LevelConstraint(tl, sl, nil))
			return true, true, nil
		}

		return false, true, nil
	}

	return false, false, nil
}

// deltaStep unfolds e's spine head once (it must already be known delta-
// eligible) and re-normalizes the result to core WHNF.
func (c *Converter) deltaStep(e expr.Expr) expr.Expr {
	unfolded, _ := c.unfoldNames(e, 0)
	return c.whnfCoreNoDelta(unfolded)
}

// lazyDelta repeatedly unfolds whichever side is "less fundamental" (higher
// definition weight) until neither side's spine head is delta-eligible, at
// which point it reports not-decided along with the (possibly reduced)
// terms for later phases to continue from. When both sides unfold the same
// equally-weighted definition, it first tries the arguments-equal shortcut
// before falling back to unfolding both.
func (c *Converter) lazyDelta(ctx context.Context, t, s expr.Expr) (result, decided bool, outT, outS expr.Expr, err error) {
	for {
		if err := checkCancel(ctx); err != nil {
			return false, true, t, s, err
		}

		if expr.Equals(t, s) {
			return true, true, t, s, nil
		}

		td, tok := c.isDelta(t)
		sd, sok := c.isDelta(s)

		switch {
		case !tok && !sok:
			return false, false, t, s, nil
		case tok && !sok:
			t = c.deltaStep(t)
		case !tok && sok:
			s = c.deltaStep(s)
		default:
			switch {
			case td.GetWeight() > sd.GetWeight():
				// t names the less fundamental (more recently defined)
				// definition: unfold it towards s's level.
				t = c.deltaStep(t)
			case sd.GetWeight() > td.GetWeight():
				s = c.deltaStep(s)
			default:
				if eq, attempted, err := c.tryArgsEqualShortcut(ctx, t, s); attempted {
					if err != nil {
						return false, true, t, s, err
					}

					if eq {
						return true, true, t, s, nil
					}
				}

				t = c.deltaStep(t)
				s = c.deltaStep(s)
			}
		}
	}
}

// tryArgsEqualShortcut applies when t and s are both metavariable-free
// applications of the same UseConvOpt definition at the same level
// arguments with the same number of arguments: instead of unfolding, it
// speculatively checks the arguments pairwise, buffering any constraints
// that would be emitted along the way. If every argument is defeq the
// buffered constraints are flushed and the shortcut succeeds; otherwise
// they are discarded entirely (the speculative attempt is retracted) and
// the caller falls back to unfolding. The metavariable-free precondition
// means a successful pass never actually has constraints to flush — it
// exists so the optimization never has to backtrack a constraint once
// emitted to the real sink.
func (c *Converter) tryArgsEqualShortcut(ctx context.Context, t, s expr.Expr) (eq, attempted bool, err error) {
	if !expr.IsApp(t) || !expr.IsApp(s) {
		return false, false, nil
	}

	th, sh := expr.GetAppFn(t), expr.GetAppFn(s)
	if !expr.IsConst(th) || !expr.IsConst(sh) || expr.ConstName(th) != expr.ConstName(sh) {
		return false, false, nil
	}

	if !level.EqualsList(expr.ConstLevelParams(th), expr.ConstLevelParams(sh)) {
		return false, false, nil
	}

	def, ok := c.env.Find(expr.ConstName(th))
	if !ok || !def.UseConvOpt() {
		return false, false, nil
	}

	if t.HasMetavariable() || s.HasMetavariable() {
		return false, false, nil
	}

	targs, sargs := expr.GetAppArgs(t), expr.GetAppArgs(s)
	if len(targs) != len(sargs) {
		return false, false, nil
	}

	saved := c.currentSink
	buf := &bufferedSink{}
	c.currentSink = buf

	allEq := true
	for i := range targs {
		ok, err := c.isDefEqCore(ctx, targs[i], sargs[i])
		if err != nil {
			c.currentSink = saved
			return false, true, err
		}

		if !ok {
			allEq = false
			break
		}
	}

	c.currentSink = saved

	if !allEq {
		return false, true, nil
	}

	buf.flushTo(saved)

	return true, true, nil
}

// tryNormExt gives the environment's normalizer extension a chance to
// rewrite either side (e.g. iota-reduction, which is not expressible as a
// Const unfolding); if either side rewrites, equality restarts from the top
// on the results.
func (c *Converter) tryNormExt(ctx context.Context, t, s expr.Expr) (eq, decided bool, err error) {
	rewritten := false

	if r, ok := c.env.NormExt().Normalize(t, c.extensionContext()); ok {
		t = c.whnfCoreNoDelta(r)
		rewritten = true
	}

	if r, ok := c.env.NormExt().Normalize(s, c.extensionContext()); ok {
		s = c.whnfCoreNoDelta(r)
		rewritten = true
	}

	if !rewritten {
		return false, false, nil
	}

	eq, err = c.isDefEqCore(ctx, t, s)
	return eq, true, err
}

// tryCongruence handles the case neither earlier phase covers: two stuck
// applications (e.g. of distinct local constants, or of metavariable-free
// but non-unfoldable heads) with equal-length spines, compared head and
// argument-wise.
func (c *Converter) tryCongruence(ctx context.Context, t, s expr.Expr) (eq, decided bool, err error) {
	if !expr.IsApp(t) || !expr.IsApp(s) {
		return false, false, nil
	}

	targs, sargs := expr.GetAppArgs(t), expr.GetAppArgs(s)
	if len(targs) != len(sargs) {
		return false, false, nil
	}

	fnEq, err := c.isDefEqCore(ctx, expr.GetAppFn(t), expr.GetAppFn(s))
	if err != nil || !fnEq {
		return false, true, err
	}

	for i := range targs {
		argEq, err := c.isDefEqCore(ctx, targs[i], sargs[i])
		if err != nil || !argEq {
			return false, true, err
		}
	}

	return true, true, nil
}

// tryProofIrrelevance treats t and s as equal, regardless of their own
// shape, when proof irrelevance is enabled and they share a common type
// whose weak head normal form is Prop. It requires a TypeInferer; without
// one it declines rather than erroring, since the absence of type inference
// just means this phase cannot contribute, not that equality has failed.
func (c *Converter) tryProofIrrelevance(ctx context.Context, t, s expr.Expr) (eq, decided bool, err error) {
	if !c.env.ProofIrrel() || c.typeInferer == nil {
		return false, false, nil
	}

	tt, err := c.typeInferer(t)
	if err != nil {
		return false, false, nil
	}

	st, err := c.typeInferer(s)
	if err != nil {
		return false, false, nil
	}

	ttWhnf, err := c.Whnf(ctx, tt)
	if err != nil {
		return false, true, err
	}

	if !expr.IsProp(ttWhnf) {
		return false, false, nil
	}

	typesEq, err := c.isDefEqCore(ctx, tt, st)
	if err != nil {
		return false, true, err
	}

	if !typesEq {
		return false, false, nil
	}

	return true, true, nil
}
