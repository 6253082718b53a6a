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
package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tt-kernel/kernel/pkg/env"
	"github.com/tt-kernel/kernel/pkg/expr"
)

func TestStoreFindAndOpacity(t *testing.T) {
	store := env.NewStore(true, true, nil)
	m := store.RegisterModule("M")

	store.Add(env.DefinitionConfig{Name: "id", ModuleIdx: m, Value: expr.MkLambda("x", expr.Type0, expr.MkVar(0), expr.BinderInfo{})})
	store.Add(env.DefinitionConfig{Name: "secret", ModuleIdx: m, Value: expr.Type0, IsOpaque: true})

	def, ok := store.Find("id")
	require.True(t, ok)
	assert.False(t, def.IsOpaque())
	assert.True(t, def.IsDefinition())

	secret, ok := store.Find("secret")
	require.True(t, ok)
	assert.True(t, secret.IsOpaque())

	_, ok = store.Find("nope")
	assert.False(t, ok)
}

func TestWeightsIncreaseWithRegistrationOrder(t *testing.T) {
	store := env.NewStore(false, false, nil)
	m := store.RegisterModule("M")

	store.Add(env.DefinitionConfig{Name: "a", ModuleIdx: m, Value: expr.Type0})
	store.Add(env.DefinitionConfig{Name: "b", ModuleIdx: m, Value: expr.Type0})

	a, _ := store.Find("a")
	b, _ := store.Find("b")
	assert.Less(t, a.GetWeight(), b.GetWeight())
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	store := env.NewStore(false, false, nil)
	m := store.RegisterModule("M")
	store.Add(env.DefinitionConfig{Name: "a", ModuleIdx: m, Value: expr.Type0})

	assert.Panics(t, func() {
		store.Add(env.DefinitionConfig{Name: "a", ModuleIdx: m, Value: expr.Type0})
	})

	assert.Panics(t, func() { store.RegisterModule("M") })
}

func TestIDLookup(t *testing.T) {
	store := env.NewStore(false, false, nil)
	m := store.RegisterModule("M")
	store.Add(env.DefinitionConfig{Name: "a", ModuleIdx: m, Value: expr.Type0})

	id, ok := store.ID("a")
	require.True(t, ok)
	assert.Zero(t, id)

	_, ok = store.ID("missing")
	assert.False(t, ok)
}
