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

// Package serialize implements a DAG-preserving binary codec for kernel
// terms: structurally equal subterms are written once and referenced by a
// back-reference afterward, the same "maximal sharing" pass the original
// kernel's expr_serializer performs before emitting bytes. A segmentio/
// encoding-backed JSON mirror is provided alongside for debugging, where
// human readability matters more than wire size or sharing.
package serialize

import "github.com/tt-kernel/kernel/pkg/expr"

// wireTag identifies what follows in the stream: either a back-reference to
// an already-written node, or one of the Expr variants.
type wireTag byte

const (
	tagBackRef wireTag = iota
	tagVar
	tagSort
	tagConst
	tagMeta
	tagLocal
	tagApp
	tagLambda
	tagPi
	tagLet
	tagMacro
)

func kindTag(k expr.Kind) wireTag {
	switch k {
	case expr.KindVar:
		return tagVar
	case expr.KindSort:
		return tagSort
	case expr.KindConst:
		return tagConst
	case expr.KindMeta:
		return tagMeta
	case expr.KindLocal:
		return tagLocal
	case expr.KindApp:
		return tagApp
	case expr.KindLambda:
		return tagLambda
	case expr.KindPi:
		return tagPi
	case expr.KindLet:
		return tagLet
	case expr.KindMacro:
		return tagMacro
	default:
		panic("serialize: unreachable expr kind")
	}
}

// levelTag mirrors wireTag but for the separate universe-level sub-language;
// levels are small enough in practice that they are not worth sharing across
// back-references the way terms are.
type levelTag byte

const (
	levelZero levelTag = iota
	levelSucc
	levelMax
	levelIMax
	levelParam
	levelMeta
)
