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
	"github.com/stretchr/testify/require"

	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/level"
)

func TestHashAgreement(t *testing.T) {
	a := expr.App(expr.MkConst("f", nil), expr.MkVar(0))
	b := expr.App(expr.MkConst("f", nil), expr.MkVar(0))

	require.True(t, expr.Equals(a, b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestFlagMonotonicity(t *testing.T) {
	mv := expr.MkMetavar("?m", expr.Type0)
	app := expr.MkApp(expr.MkConst("f", nil), mv)

	assert.True(t, app.HasMetavariable())

	loc := expr.MkLocal("x", expr.Type0)
	lam := expr.MkLambda("x", expr.Type0, loc, expr.BinderInfo{})
	assert.True(t, lam.HasLocal())
}

func TestFreeVarRangeSoundness(t *testing.T) {
	body := expr.App(expr.MkVar(0), expr.MkVar(2))
	assert.Equal(t, uint32(3), body.FreeVarRange())

	lam := expr.MkLambda("x", expr.Type0, body, expr.BinderInfo{})
	// one binder crossed: range drops from 3 to 2
	assert.Equal(t, uint32(2), lam.FreeVarRange())
}

func TestIsArrowMemoizes(t *testing.T) {
	arrow := expr.Arrow(expr.Type0, expr.Type0)
	assert.True(t, expr.IsArrow(arrow))
	assert.True(t, expr.IsArrow(arrow)) // second call exercises the cached path

	dependent := expr.MkPi("x", expr.Type0, expr.MkVar(0), expr.BinderInfo{})
	assert.False(t, expr.IsArrow(dependent))
}

func TestIsMetaWalksSpine(t *testing.T) {
	mv := expr.MkMetavar("?m", expr.Type0)
	app := expr.MkApp(mv, expr.MkConst("a", nil))
	assert.True(t, expr.IsMeta(app))
	assert.False(t, expr.IsMeta(expr.MkConst("a", nil)))
}

func TestUpdateSharingAndTagPropagation(t *testing.T) {
	fn := expr.MkConst("f", nil)
	arg := expr.MkVar(0)
	app := expr.MkApp(fn, arg)
	app.SetTag(7)

	same := expr.UpdateApp(app, fn, arg)
	assert.Same(t, app, same)

	rebuilt := expr.UpdateApp(app, fn, expr.MkVar(1))
	assert.NotSame(t, app, rebuilt)
	assert.Equal(t, uint32(7), rebuilt.Tag())
}

func TestConstLevelArgsParticipateInEquality(t *testing.T) {
	u := level.MkParam("u")
	a := expr.MkConst("foo", []*level.Level{u})
	b := expr.MkConst("foo", []*level.Level{level.MkParam("u")})
	c := expr.MkConst("foo", []*level.Level{level.MkParam("v")})

	assert.True(t, expr.Equals(a, b))
	assert.False(t, expr.Equals(a, c))
}

func TestShallowCopyPreservesShape(t *testing.T) {
	orig := expr.MkLambda("x", expr.Type0, expr.MkVar(0), expr.BinderInfo{Implicit: true})
	cp := expr.ShallowCopy(orig)

	assert.NotSame(t, orig, cp)
	assert.True(t, expr.Equals(orig, cp))
	assert.Equal(t, expr.BinderInfoOf(orig), expr.BinderInfoOf(cp))
}

func TestAppSpineBuildersRoundTrip(t *testing.T) {
	f := expr.MkConst("f", nil)
	a1, a2, a3 := expr.MkVar(0), expr.MkVar(1), expr.MkVar(2)

	spine := expr.App(f, a1, a2, a3)
	args := expr.GetAppArgs(spine)

	require.Len(t, args, 3)
	assert.Same(t, a1, args[0])
	assert.Same(t, a2, args[1])
	assert.Same(t, a3, args[2])
	assert.Same(t, f, expr.GetAppFn(spine))
}
