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
package serialize

import (
	"github.com/segmentio/encoding/json"

	"github.com/tt-kernel/kernel/pkg/expr"
)

// jsonNode is a plain tree mirror of an Expr, used only for debug output: it
// does not preserve sharing (a term DAG's shared subterm is simply printed
// twice) and it is one-way — there is no JSON reader for it, unlike the
// binary Writer/Reader pair.
type jsonNode struct {
	Kind     string      `json:"kind"`
	Idx      *uint32     `json:"idx,omitempty"`
	Level    string      `json:"level,omitempty"`
	Name     string      `json:"name,omitempty"`
	Levels   []string    `json:"levels,omitempty"`
	Type     *jsonNode   `json:"type,omitempty"`
	Fn       *jsonNode   `json:"fn,omitempty"`
	Arg      *jsonNode   `json:"arg,omitempty"`
	Domain   *jsonNode   `json:"domain,omitempty"`
	Body     *jsonNode   `json:"body,omitempty"`
	Implicit bool        `json:"implicit,omitempty"`
	Value    *jsonNode   `json:"value,omitempty"`
	Macro    string      `json:"macro,omitempty"`
	Args     []*jsonNode `json:"args,omitempty"`
}

func toJSONNode(e expr.Expr) *jsonNode {
	switch e.Kind() {
	case expr.KindVar:
		idx := expr.VarIdx(e)
		return &jsonNode{Kind: "var", Idx: &idx}

	case expr.KindSort:
		return &jsonNode{Kind: "sort", Level: expr.SortLevel(e).String()}

	case expr.KindConst:
		levels := expr.ConstLevelParams(e)
		strs := make([]string, len(levels))

		for i, l := range levels {
			strs[i] = l.String()
		}

		return &jsonNode{Kind: "const", Name: expr.ConstName(e), Levels: strs}

	case expr.KindMeta:
		return &jsonNode{Kind: "meta", Name: expr.MLocalName(e), Type: toJSONNode(expr.MLocalType(e))}

	case expr.KindLocal:
		return &jsonNode{Kind: "local", Name: expr.MLocalName(e), Type: toJSONNode(expr.MLocalType(e))}

	case expr.KindApp:
		return &jsonNode{Kind: "app", Fn: toJSONNode(expr.AppFn(e)), Arg: toJSONNode(expr.AppArg(e))}

	case expr.KindLambda, expr.KindPi:
		kind := "lambda"
		if e.Kind() == expr.KindPi {
			kind = "pi"
		}

		return &jsonNode{
			Kind: kind, Name: expr.BinderName(e),
			Implicit: expr.BinderInfoOf(e).Implicit,
			Domain:   toJSONNode(expr.BinderDomain(e)),
			Body:     toJSONNode(expr.BinderBody(e)),
		}

	case expr.KindLet:
		return &jsonNode{
			Kind: "let", Name: expr.LetName(e),
			Type:  toJSONNode(expr.LetType(e)),
			Value: toJSONNode(expr.LetValue(e)),
			Body:  toJSONNode(expr.LetBody(e)),
		}

	case expr.KindMacro:
		args := expr.MacroArgs(e)
		jargs := make([]*jsonNode, len(args))

		for i, a := range args {
			jargs[i] = toJSONNode(a)
		}

		return &jsonNode{Kind: "macro", Macro: expr.MacroDef(e).Name(), Args: jargs}

	default:
		panic("serialize: unreachable expr kind")
	}
}

// DebugJSON renders e as indented JSON for human inspection (error reports,
// test failure output, "what did the elaborator actually build" logging). It
// is not a serialization format meant to be read back in: use Writer/Reader
// for anything that needs to round-trip.
func DebugJSON(e expr.Expr) ([]byte, error) {
	return json.MarshalIndent(toJSONNode(e), "", "  ")
}
