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
package macro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/macro"
)

func TestAnnotationExpandsToItsArgument(t *testing.T) {
	inner := expr.MkConst("a", nil)
	m := expr.MkMacro(macro.NewAnnotation("from-tactic"), []expr.Expr{inner})

	got, ok := expr.MacroDef(m).Expand(expr.MacroArgs(m), nil)
	require.True(t, ok)
	assert.True(t, expr.Equals(got, inner))
}

func TestOpaqueNeverExpands(t *testing.T) {
	typ := expr.Type0
	m := expr.MkMacro(macro.NewOpaque(typ), []expr.Expr{typ})

	_, ok := expr.MacroDef(m).Expand(expr.MacroArgs(m), nil)
	assert.False(t, ok)

	got, err := expr.MacroDef(m).GetType(nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, expr.Equals(got, typ))
}

func TestRegistryLookup(t *testing.T) {
	reader, ok := macro.Lookup("annotation")
	require.True(t, ok)
	assert.NotNil(t, reader)

	_, ok = macro.Lookup("no-such-macro")
	assert.False(t, ok)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		macro.Register("annotation", func(macro.Decoder, []expr.Expr) (expr.MacroDefinition, error) {
			return nil, nil
		})
	})
}
