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
package serialize_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/level"
	"github.com/tt-kernel/kernel/pkg/macro"
	"github.com/tt-kernel/kernel/pkg/serialize"
)

func roundTrip(t *testing.T, e expr.Expr) expr.Expr {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, serialize.NewWriter(&buf).WriteExpr(e))

	got, err := serialize.NewReader(&buf).ReadExpr()
	require.NoError(t, err)

	return got
}

func TestRoundTripAtomicVariants(t *testing.T) {
	for _, e := range []expr.Expr{
		expr.MkVar(3),
		expr.Type0,
		expr.MkConst("foo", []*level.Level{level.MkParam("u")}),
		expr.MkMetavar("?m", expr.Type0),
		expr.MkLocal("x", expr.Type0),
	} {
		assert.True(t, expr.Equals(roundTrip(t, e), e))
	}
}

func TestRoundTripCompoundVariants(t *testing.T) {
	app := expr.App(expr.MkLocal("f", expr.Arrow(expr.Type0, expr.Type0)), expr.Type0)
	lam := expr.MkLambda("x", expr.Type0, expr.MkVar(0), expr.BinderInfo{Implicit: true})
	pi := expr.MkPi("x", expr.Type0, expr.MkVar(0), expr.BinderInfo{})
	let := expr.MkLet("x", expr.Type0, expr.Type0, expr.MkVar(0))

	for _, e := range []expr.Expr{app, lam, pi, let} {
		assert.True(t, expr.Equals(roundTrip(t, e), e))
	}
}

func TestRoundTripMacro(t *testing.T) {
	inner := expr.MkConst("a", nil)
	m := expr.MkMacro(macro.NewAnnotation("from-tactic"), []expr.Expr{inner})

	got := roundTrip(t, m)
	assert.True(t, expr.Equals(got, m))
}

func TestWriterSharesStructurallyEqualSubterms(t *testing.T) {
	shared := expr.Type0
	e := expr.MkApp(shared, shared)

	var buf bytes.Buffer
	w := serialize.NewWriter(&buf)
	require.NoError(t, w.WriteExpr(e))

	withSharing := buf.Len()

	var flatBuf bytes.Buffer
	flatW := serialize.NewWriter(&flatBuf)
	require.NoError(t, flatW.WriteExpr(expr.MkApp(expr.Type0, expr.MkSort(level.MkSucc(level.MkSucc(level.MkZero()))))))

	// The shared-subterm encoding of App(Type0, Type0) must be smaller than
	// encoding two structurally distinct sorts, since the second occurrence
	// of Type0 costs only a tag byte and a small varint instead of a full
	// Sort payload.
	assert.Less(t, withSharing, flatBuf.Len())
}

func TestDebugJSONProducesValidTree(t *testing.T) {
	e := expr.App(expr.MkLocal("f", expr.Arrow(expr.Type0, expr.Type0)), expr.Type0)

	out, err := serialize.DebugJSON(e)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"kind": "app"`)
}

func TestReadExprRejectsUnknownBackReference(t *testing.T) {
	var buf bytes.Buffer
	// A back-reference tag (0) followed by an id with nothing ever written.
	buf.WriteByte(0)
	buf.WriteByte(5)

	_, err := serialize.NewReader(&buf).ReadExpr()
	assert.Error(t, err)
}
