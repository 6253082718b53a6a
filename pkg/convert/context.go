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
package convert

import (
	"context"
	"errors"

	"github.com/tt-kernel/kernel/pkg/expr"
)

// extContext adapts a Converter to expr.ExtensionContext, the surface passed
// to MacroDefinition.Expand/GetType and to NormalizerExtension.Normalize.
// Those hooks predate context.Context plumbing (the kernel proper calls them
// from deep inside already-cancellation-checked reduction loops), so Whnf
// here runs uncancellably; a macro that loops forever is a bug in the macro,
// not something this adapter can defend against.
type extContext struct{ c *Converter }

func (x extContext) Whnf(e expr.Expr) (expr.Expr, error) {
	return x.c.Whnf(context.Background(), e)
}

func (x extContext) InferType(e expr.Expr) (expr.Expr, error) {
	if x.c.typeInferer == nil {
		return nil, errors.New("convert: no type inferer configured")
	}

	return x.c.typeInferer(e)
}

func (x extContext) FreshName(hint string) string {
	return x.c.freshName(hint)
}

func (x extContext) AddConstraint(c expr.Constraint) {
	if x.c.currentSink != nil {
		x.c.currentSink.AddConstraint(c)
	}
}

func (x extContext) GetDefinitionValue(name string) (expr.Expr, bool) {
	d, ok := x.c.env.Find(name)
	if !ok || x.c.isOpaque(d) {
		return nil, false
	}

	return d.GetValue(), true
}

// checkCancel reports ctx's cancellation error, if any — the original
// kernel's check_system counterpart. Whnf calls it on entry, isDefEqCore on
// every call (including its recursive ones), and lazyDelta at the top of
// every iteration.
func checkCancel(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
