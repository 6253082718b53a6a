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

// Package env declares the read-only contracts the converter consumes to
// resolve names to definitions, and provides one concrete, in-memory
// implementation of them. The converter (pkg/convert) depends only on the
// interfaces in this file; it never assumes this particular Store backs
// them.
package env

import "github.com/tt-kernel/kernel/pkg/expr"

// Definition is everything the converter needs to know about a name bound
// in the environment.
type Definition interface {
	GetName() string
	IsDefinition() bool
	IsTheorem() bool
	IsOpaque() bool
	// GetWeight is a monotone "how fundamental" measure: lower weight means
	// more fundamental, and the lazy delta loop unfolds the higher-weight
	// side first.
	GetWeight() uint32
	GetModuleIdx() uint32
	// GetParams lists the universe parameter names bound by this
	// definition, in the order InstantiateParams expects its levels.
	GetParams() []string
	GetValue() expr.Expr
	// UseConvOpt enables the arguments-equal shortcut for applications of
	// this definition.
	UseConvOpt() bool
}

// NormalizerExtension is the environment's pluggable reduction rule set
// (e.g. iota-reduction for inductive eliminators). It sits outside the core
// term algebra entirely: the converter calls it and treats "no rewrite" and
// "rewrote to e'" as the only two outcomes.
type NormalizerExtension interface {
	Normalize(e expr.Expr, ctx expr.ExtensionContext) (expr.Expr, bool)
}

// View is the read-only facade the converter is constructed against.
type View interface {
	Find(name string) (Definition, bool)
	// Eta reports whether eta-conversion is active.
	Eta() bool
	// ProofIrrel reports whether propositions are proof-irrelevant.
	ProofIrrel() bool
	NormExt() NormalizerExtension
}

// NoopExtension is a NormalizerExtension that never rewrites; environments
// without primitive reduction rules use it so the converter can always call
// NormExt() unconditionally.
type NoopExtension struct{}

func (NoopExtension) Normalize(expr.Expr, expr.ExtensionContext) (expr.Expr, bool) {
	return nil, false
}
