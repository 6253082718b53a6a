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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tt-kernel/kernel/pkg/env"
	"github.com/tt-kernel/kernel/pkg/expr"
)

func TestQuickIsDefEqDetectsMetavariableHeadedApplication(t *testing.T) {
	c := New(Config{Env: env.NewStore(false, false, nil)})

	mv := expr.MkMetavar("?m", expr.Type0)
	headed := expr.App(mv, expr.MkConst("a", nil))

	sink := &constraintCollector{}

	eq, decided, err := c.quickIsDefEq(context.Background(), headed, expr.MkConst("b", nil))
	require.NoError(t, err)
	assert.True(t, decided)
	assert.True(t, eq)

	_, err = c.IsDefEq(context.Background(), headed, expr.MkConst("b", nil), sink)
	require.NoError(t, err)
	require.Len(t, sink.got, 1)
	assert.Equal(t, expr.TermConstraintKind, sink.got[0].Kind)
}

func TestArgsEqualShortcutDeclinesWhenEitherSideHasMetavariable(t *testing.T) {
	store := env.NewStore(false, false, nil)
	m := store.RegisterModule("M")
	store.Add(env.DefinitionConfig{
		Name:       "f",
		ModuleIdx:  m,
		Value:      expr.MkLambda("x", expr.Type0, expr.MkVar(0), expr.BinderInfo{}),
		UseConvOpt: true,
	})

	c := New(Config{Env: store})

	lhs := expr.App(expr.MkConst("f", nil), expr.MkMetavar("?m", expr.Type0))
	rhs := expr.App(expr.MkConst("f", nil), expr.MkConst("a", nil))

	_, attempted, err := c.tryArgsEqualShortcut(context.Background(), lhs, rhs)
	require.NoError(t, err)
	assert.False(t, attempted, "shortcut must decline when either side has a metavariable")
}

type constraintCollector struct{ got []expr.Constraint }

func (c *constraintCollector) AddConstraint(ct expr.Constraint) { c.got = append(c.got, ct) }
