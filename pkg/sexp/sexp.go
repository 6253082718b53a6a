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

// Package sexp provides the S-expression data model used to print kernel
// terms and to parse the small surface syntax accepted by cmd/ttkernel.
package sexp

import (
	"fmt"
	"strings"
	"unicode"
)

// SExp is an S-expression: either a List of zero or more S-expressions, or a
// terminal Symbol.
type SExp interface {
	// AsList checks whether this S-expression is a list and, if so, returns
	// it. Otherwise, it returns nil.
	AsList() *List
	// AsSymbol checks whether this S-expression is a symbol and, if so,
	// returns it. Otherwise, it returns nil.
	AsSymbol() *Symbol
	// String generates a string representation which may (or may not) be
	// quoted. Quoting is used to manage symbol names which contain
	// whitespace characters and parentheses.
	String(quote bool) string
}

// ===================================================================
// List
// ===================================================================

// List represents a list of zero or more S-expressions.
type List struct {
	Elements []SExp
}

var _ SExp = (*List)(nil)

// NewList creates a new list from a given array of S-expressions.
func NewList(elements ...SExp) *List {
	return &List{elements}
}

// AsList returns the given list.
func (l *List) AsList() *List { return l }

// AsSymbol returns nil for a list.
func (l *List) AsSymbol() *Symbol { return nil }

// Len returns the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Get returns the ith element of this list.
func (l *List) Get(i int) SExp { return l.Elements[i] }

// MatchSymbols checks a list begins with at least n elements, of which the
// first len(symbols) are symbols matching the given strings in order.
func (l *List) MatchSymbols(n int, symbols ...string) bool {
	if len(l.Elements) < n || len(symbols) > n {
		return false
	}

	for i, sym := range symbols {
		s, ok := l.Elements[i].(*Symbol)
		if !ok || s.Value != sym {
			return false
		}
	}

	return true
}

func (l *List) String(quote bool) string {
	var sb strings.Builder

	sb.WriteByte('(')

	for i, e := range l.Elements {
		if i != 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(e.String(quote))
	}

	sb.WriteByte(')')

	return sb.String()
}

// ===================================================================
// Symbol
// ===================================================================

// Symbol represents a terminating atom: an identifier or a literal.
type Symbol struct {
	Value string
}

var _ SExp = (*Symbol)(nil)

// NewSymbol creates a new symbol from a given string.
func NewSymbol(value string) *Symbol {
	return &Symbol{value}
}

// AsList returns nil for a symbol.
func (s *Symbol) AsList() *List { return nil }

// AsSymbol returns the given symbol.
func (s *Symbol) AsSymbol() *Symbol { return s }

func (s *Symbol) String(quote bool) string {
	if quote {
		needsQuote := false

		for _, r := range s.Value {
			if !isSymbolLetter(r) {
				needsQuote = true
				break
			}
		}

		if needsQuote {
			return fmt.Sprintf("%q", s.Value)
		}
	}

	return s.Value
}

func isSymbolLetter(r rune) bool {
	return r != '(' && r != ')' && !unicode.IsSpace(r)
}
