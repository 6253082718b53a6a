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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tt-kernel/kernel/pkg/sexp"
)

func TestParseAtom(t *testing.T) {
	term, err := sexp.Parse("hello")
	require.NoError(t, err)

	sym := term.AsSymbol()
	require.NotNil(t, sym)
	assert.Equal(t, "hello", sym.Value)
}

func TestParseList(t *testing.T) {
	term, err := sexp.Parse("(lambda (x T) (f x))")
	require.NoError(t, err)

	list := term.AsList()
	require.NotNil(t, list)
	assert.Equal(t, 3, list.Len())
	assert.True(t, list.MatchSymbols(1, "lambda"))
}

func TestParseUnbalanced(t *testing.T) {
	_, err := sexp.Parse("(f x")
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	const text = "(+ a (* b c))"

	term, err := sexp.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, text, term.String(false))
}
