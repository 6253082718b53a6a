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
package macro

import "github.com/tt-kernel/kernel/pkg/expr"

const opaqueKey = "opaque"

// Opaque is a single-argument macro (the argument is its declared type) that
// never expands: it stands for an
// incomplete proof ("sorry") or an axiom introduced mid-elaboration without
// a backing environment entry. WHNF treats it as a stuck head constant.
// Because admitting one breaks soundness, it carries the highest trust
// level so environments can refuse to accept any definition that mentions
// it.
type Opaque struct {
	base
	declaredType expr.Expr
}

// NewOpaque constructs an Opaque macro standing in for a term of type typ.
// Callers apply it as expr.MkMacro(NewOpaque(typ), []expr.Expr{typ}) — the
// type is carried as the macro's sole argument so it serializes and
// compares structurally along with everything else, and the definition
// caches it only so GetType need not be threaded a separate argTypes slot
// for a macro with no real arguments to type-check.
func NewOpaque(typ expr.Expr) *Opaque {
	return &Opaque{base: base{name: opaqueKey, trustLevel: ^uint32(0)}, declaredType: typ}
}

func (o *Opaque) Expand([]expr.Expr, expr.ExtensionContext) (expr.Expr, bool) {
	return nil, false
}

func (o *Opaque) Expand1(args []expr.Expr, ctx expr.ExtensionContext) (expr.Expr, bool) {
	return o.Expand(args, ctx)
}

func (o *Opaque) GetType([]expr.Expr, []expr.Expr, expr.ExtensionContext) (expr.Expr, error) {
	return o.declaredType, nil
}

func (o *Opaque) Equals(other expr.MacroDefinition) bool {
	oo, ok := other.(*Opaque)
	return ok && expr.Equals(o.declaredType, oo.declaredType)
}

// WritePayload is a no-op: Opaque carries no data beyond its sole argument,
// which the term serializer already writes generically.
func (o *Opaque) WritePayload(Encoder) error { return nil }

func init() {
	Register(opaqueKey, func(dec Decoder, args []expr.Expr) (expr.MacroDefinition, error) {
		if len(args) != 1 {
			panic("macro.Opaque: expects the declared type encoded as its sole argument")
		}

		return NewOpaque(args[0]), nil
	})
}
