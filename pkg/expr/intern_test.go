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
)

func TestTableInternsStructurallyEqualNodes(t *testing.T) {
	table := expr.NewTable()

	a := expr.App(expr.MkConst("f", nil), expr.MkVar(0))
	b := expr.App(expr.MkConst("f", nil), expr.MkVar(0))
	assert.False(t, a == b) // distinct allocations going in

	ia := table.Intern(a)
	ib := table.Intern(b)

	assert.Same(t, ia, ib)
	assert.EqualValues(t, 1, table.Size())
}

func TestTableDistinguishesDifferentShapes(t *testing.T) {
	table := expr.NewTable()

	table.Intern(expr.MkVar(0))
	table.Intern(expr.MkVar(1))

	assert.EqualValues(t, 2, table.Size())
}
