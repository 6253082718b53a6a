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

import (
	"fmt"

	"github.com/tt-kernel/kernel/pkg/expr"
)

const annotationKey = "annotation"

// Annotation is a transparent, single-argument macro: WHNF always expands it
// to its argument unchanged. Frontends use it to attach a label (e.g. "this
// subterm came from a `show` tactic") without the label ever affecting
// convertibility, since an unconditional Expand means the converter never
// sees the wrapper survive past one WHNF step.
type Annotation struct {
	base
	// Label is opaque frontend data; the core never inspects it.
	Label string
}

// NewAnnotation constructs an Annotation macro definition tagged with label.
func NewAnnotation(label string) *Annotation {
	return &Annotation{base: base{name: annotationKey, trustLevel: 0}, Label: label}
}

func (a *Annotation) Expand(args []expr.Expr, _ expr.ExtensionContext) (expr.Expr, bool) {
	if len(args) != 1 {
		panic("macro.Annotation: expects exactly one argument")
	}

	return args[0], true
}

func (a *Annotation) Expand1(args []expr.Expr, ctx expr.ExtensionContext) (expr.Expr, bool) {
	return a.Expand(args, ctx)
}

func (a *Annotation) GetType(_ []expr.Expr, argTypes []expr.Expr, _ expr.ExtensionContext) (expr.Expr, error) {
	if len(argTypes) != 1 {
		return nil, fmt.Errorf("macro.Annotation: expects exactly one argument type")
	}

	return argTypes[0], nil
}

func (a *Annotation) Equals(other expr.MacroDefinition) bool {
	o, ok := other.(*Annotation)
	return ok && a.Label == o.Label
}

func (a *Annotation) WritePayload(enc Encoder) error {
	return enc.WriteString(a.Label)
}

func init() {
	Register(annotationKey, func(dec Decoder, args []expr.Expr) (expr.MacroDefinition, error) {
		label, err := dec.ReadString()
		if err != nil {
			return nil, err
		}

		if len(args) != 1 {
			return nil, fmt.Errorf("macro.Annotation: expects exactly one argument, got %d", len(args))
		}

		return NewAnnotation(label), nil
	})
}
