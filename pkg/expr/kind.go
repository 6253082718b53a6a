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

// Package expr implements the term algebra: a hash-consable, maximally-shared
// expression DAG with de Bruijn indices, precomputed structural metadata, and
// a pluggable macro extension point. Everything downstream (substitution,
// the converter, serialization) is built on the Expr interface defined here.
package expr

// Kind identifies which of the ten expression variants a node is.
type Kind uint8

const (
	KindVar Kind = iota
	KindSort
	KindConst
	KindMeta
	KindLocal
	KindApp
	KindLambda
	KindPi
	KindLet
	KindMacro
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "Var"
	case KindSort:
		return "Sort"
	case KindConst:
		return "Const"
	case KindMeta:
		return "Meta"
	case KindLocal:
		return "Local"
	case KindApp:
		return "App"
	case KindLambda:
		return "Lambda"
	case KindPi:
		return "Pi"
	case KindLet:
		return "Let"
	case KindMacro:
		return "Macro"
	default:
		return "<invalid-kind>"
	}
}
