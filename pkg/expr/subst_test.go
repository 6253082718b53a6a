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
package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/level"
)

func TestInstantiateIdentityOnEmptyArgs(t *testing.T) {
	e := expr.App(expr.MkConst("f", nil), expr.MkVar(0))
	assert.Same(t, e, expr.Instantiate(e, nil))
}

func TestInstantiateBeta(t *testing.T) {
	// (lambda x. f x) a  ~>  instantiate(f (Var 0), [a])  ==  f a
	arg := expr.MkConst("a", nil)
	body := expr.App(expr.MkConst("f", nil), expr.MkVar(0))

	got := expr.Instantiate(body, []expr.Expr{arg})
	want := expr.App(expr.MkConst("f", nil), arg)

	assert.True(t, expr.Equals(got, want))
}

func TestInstantiateLiftsAcrossBinders(t *testing.T) {
	// instantiate (lambda y. Var(1)) with [a]  ==  lambda y. a (lifted by 1, but a has no free vars)
	body := expr.MkLambda("y", expr.Type0, expr.MkVar(1), expr.BinderInfo{})
	arg := expr.MkConst("a", nil)

	got := expr.Instantiate(body, []expr.Expr{arg})
	want := expr.MkLambda("y", expr.Type0, expr.MkConst("a", nil), expr.BinderInfo{})

	assert.True(t, expr.Equals(got, want))
}

func TestInstantiateLeavesOuterVarsAlone(t *testing.T) {
	// Var(1) with only one substituent at index 0 stays Var(1).
	got := expr.Instantiate(expr.MkVar(1), []expr.Expr{expr.MkConst("a", nil)})
	assert.True(t, expr.Equals(got, expr.MkVar(1)))
}

func TestHasFreeVar(t *testing.T) {
	e := expr.MkLambda("x", expr.Type0, expr.MkVar(1), expr.BinderInfo{})
	assert.True(t, expr.HasFreeVar(e, 0))
	assert.False(t, expr.HasFreeVar(e, 1))
}

func TestLowerFreeVars(t *testing.T) {
	e := expr.App(expr.MkVar(1), expr.MkVar(2))
	got := expr.LowerFreeVars(e, 1)
	want := expr.App(expr.MkVar(0), expr.MkVar(1))
	assert.True(t, expr.Equals(got, want))
}

func TestLowerFreeVarsPanicsOnNegative(t *testing.T) {
	e := expr.MkVar(0)
	assert.Panics(t, func() { expr.LowerFreeVars(e, 1) })
}

func TestInstantiateParams(t *testing.T) {
	u := level.MkParam("u")
	body := expr.MkSort(level.MkSucc(u))

	got := expr.InstantiateParams(body, []string{"u"}, []*level.Level{level.MkZero()})
	want := expr.MkSort(level.MkSucc(level.MkZero()))

	assert.True(t, expr.Equals(got, want))
}

func TestInstantiateParamsShortCircuits(t *testing.T) {
	e := expr.MkConst("f", nil) // no level params at all
	assert.Same(t, e, expr.InstantiateParams(e, []string{"u"}, []*level.Level{level.MkZero()}))
}
