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
package level_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tt-kernel/kernel/pkg/level"
)

func TestMaxWithZeroIsIdentity(t *testing.T) {
	u := level.MkParam("u")
	assert.True(t, level.Equivalent(level.MkMax(level.MkZero(), u), u))
	assert.True(t, level.Equivalent(level.MkMax(u, level.MkZero()), u))
}

func TestMaxIdempotent(t *testing.T) {
	u := level.MkParam("u")
	assert.True(t, level.Equivalent(level.MkMax(u, u), u))
}

func TestIMaxZeroCodomainCollapses(t *testing.T) {
	u := level.MkParam("u")
	assert.True(t, level.Equivalent(level.MkIMax(u, level.MkZero()), level.MkZero()))
}

func TestIMaxSuccCodomainBecomesMax(t *testing.T) {
	u := level.MkParam("u")
	v := level.MkSucc(level.MkParam("v"))
	assert.True(t, level.Equivalent(level.MkIMax(u, v), level.MkMax(u, v)))
}

func TestSuccDistributesOverMax(t *testing.T) {
	u, v := level.MkParam("u"), level.MkParam("v")
	lhs := level.MkMax(level.MkSucc(u), level.MkSucc(v))
	rhs := level.MkSucc(level.MkMax(u, v))
	assert.True(t, level.Equivalent(lhs, rhs))
}

func TestDistinctParamsNotEquivalent(t *testing.T) {
	assert.False(t, level.Equivalent(level.MkParam("u"), level.MkParam("v")))
}

func TestInstantiate(t *testing.T) {
	body := level.MkSucc(level.MkParam("u"))
	got := level.Instantiate(body, []string{"u"}, []*level.Level{level.MkZero()})
	assert.True(t, level.Equivalent(got, level.MkSucc(level.MkZero())))
}

func TestHashAgreesWithEquals(t *testing.T) {
	a := level.MkMax(level.MkParam("u"), level.MkSucc(level.MkParam("v")))
	b := level.MkMax(level.MkParam("u"), level.MkSucc(level.MkParam("v")))
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
}
