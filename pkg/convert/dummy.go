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

	"github.com/tt-kernel/kernel/pkg/expr"
)

// Engine is the surface a type checker drives to decide definitional
// equality. Converter is the real implementation; Dummy satisfies it too,
// for callers (typically tests of code built on top of this package) that
// want to exercise their own logic without paying for actual reduction.
type Engine interface {
	Whnf(ctx context.Context, e expr.Expr) (expr.Expr, error)
	IsDefEq(ctx context.Context, t, s expr.Expr, sink ConstraintSink) (bool, error)
}

// Dummy is a no-op Engine: Whnf returns its input unchanged and IsDefEq
// always reports true without looking at either term. It exists purely as a
// seam for testing code that depends on an Engine without exercising real
// reduction.
type Dummy struct{}

func (Dummy) Whnf(_ context.Context, e expr.Expr) (expr.Expr, error) { return e, nil }

func (Dummy) IsDefEq(_ context.Context, _, _ expr.Expr, _ ConstraintSink) (bool, error) {
	return true, nil
}

var (
	_ Engine = (*Converter)(nil)
	_ Engine = Dummy{}
)
