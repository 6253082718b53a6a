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
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tt-kernel/kernel/pkg/env"
	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/sexp"
)

func read(t *testing.T, text string) expr.Expr {
	t.Helper()

	s, err := sexp.Parse(text)
	require.NoError(t, err)

	term, err := readTerm(s, nil)
	require.NoError(t, err)

	return term
}

func TestReadAtoms(t *testing.T) {
	assert.True(t, expr.Equals(read(t, "Type"), expr.Type0))
	assert.True(t, expr.Equals(read(t, "Prop"), expr.Prop))
	assert.True(t, expr.Equals(read(t, "foo"), expr.MkConst("foo", nil)))
}

func TestReadSort(t *testing.T) {
	assert.True(t, expr.Equals(read(t, "(sort 0)"), expr.Prop))
	assert.True(t, expr.Equals(read(t, "(sort 1)"), expr.Type0))
}

func TestReadLambdaBindsVariable(t *testing.T) {
	got := read(t, "(lambda (x Type) x)")
	want := expr.MkLambda("x", expr.Type0, expr.MkVar(0), expr.BinderInfo{})
	assert.True(t, expr.Equals(got, want))
}

func TestReadImplicitBinder(t *testing.T) {
	got := read(t, "(pi (x Type implicit) x)")
	assert.True(t, expr.BinderInfoOf(got).Implicit)
}

func TestReadLetAndApp(t *testing.T) {
	got := read(t, "(let (x Type Type) (f x x))")
	want := expr.MkLet("x", expr.Type0, expr.Type0,
		expr.App(expr.MkConst("f", nil), expr.MkVar(0), expr.MkVar(0)))
	assert.True(t, expr.Equals(got, want))
}

func TestReadUnknownBinderShapeErrors(t *testing.T) {
	s, err := sexp.Parse("(lambda x x)")
	require.NoError(t, err)

	_, err = readTerm(s, nil)
	assert.Error(t, err)
}

func TestPrintTermRoundTripsThroughReader(t *testing.T) {
	term := expr.MkLambda("x", expr.Type0, expr.MkVar(0), expr.BinderInfo{})

	printed := PrintTerm(term)

	reparsed := read(t, printed)
	assert.True(t, expr.Equals(reparsed, term))
}

func TestLoadFormRegistersDefinition(t *testing.T) {
	store := env.NewStore(true, false, nil)
	moduleIdx := store.RegisterModule("main")

	form, err := sexp.Parse("(def id (lambda (x Type) x))")
	require.NoError(t, err)

	require.NoError(t, loadForm(store, moduleIdx, form))

	def, ok := store.Find("id")
	require.True(t, ok)
	assert.False(t, def.IsOpaque())
	assert.False(t, def.IsTheorem())
}

func TestLoadFormRegistersOpaqueTheorem(t *testing.T) {
	store := env.NewStore(true, false, nil)
	moduleIdx := store.RegisterModule("main")

	form, err := sexp.Parse("(theorem thm Type)")
	require.NoError(t, err)
	require.NoError(t, loadForm(store, moduleIdx, form))

	def, ok := store.Find("thm")
	require.True(t, ok)
	assert.True(t, def.IsTheorem())
}

func TestLoadFormWithUniverseParams(t *testing.T) {
	store := env.NewStore(true, false, nil)
	moduleIdx := store.RegisterModule("main")

	form, err := sexp.Parse("(def poly (params u) Type)")
	require.NoError(t, err)
	require.NoError(t, loadForm(store, moduleIdx, form))

	def, ok := store.Find("poly")
	require.True(t, ok)
	assert.Equal(t, []string{"u"}, def.GetParams())
}
