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
package sexp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tt-kernel/kernel/pkg/sexp"
)

func TestPrintWidthFitsOnOneLine(t *testing.T) {
	term, err := sexp.Parse("(f a b)")
	require.NoError(t, err)

	assert.Equal(t, "(f a b)", sexp.PrintWidth(term, 80))
}

func TestPrintWidthWrapsWhenTooWide(t *testing.T) {
	term, err := sexp.Parse("(f aaaaaaaaaa bbbbbbbbbb cccccccccc)")
	require.NoError(t, err)

	out := sexp.PrintWidth(term, 10)

	assert.True(t, strings.Contains(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "(f"))
}
