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
package expr

import "github.com/tt-kernel/kernel/pkg/level"

// MacroDefinition is a polymorphic value attached to every Macro node. It is
// defined here, rather than in the pkg/macro package that implements it,
// because the Macro variant itself needs the type; pkg/macro depends on
// pkg/expr, not the other way around.
type MacroDefinition interface {
	// Name is the macro's stable identifier, also used as its deserializer
	// registry key.
	Name() string
	// Expand rewrites a macro application, or reports false to leave it
	// stuck in WHNF.
	Expand(args []Expr, ctx ExtensionContext) (Expr, bool)
	// Expand1 is the single-step variant the elaborator uses when it wants
	// to observe one unfolding instead of the fully expanded form.
	Expand1(args []Expr, ctx ExtensionContext) (Expr, bool)
	// GetType synthesizes the type of a macro application given the already
	// inferred types of its arguments.
	GetType(args, argTypes []Expr, ctx ExtensionContext) (Expr, error)
	// TrustLevel is consulted by the environment to decide whether to
	// accept a definition that mentions this macro.
	TrustLevel() uint32
	Hash() uint64
	Equals(MacroDefinition) bool
	Less(MacroDefinition) bool
}

// ExtensionContext is the minimal surface a macro's Expand/GetType hooks are
// given: enough to reduce and type-check without this package importing the
// environment or converter packages that build it.
type ExtensionContext interface {
	Whnf(Expr) (Expr, error)
	InferType(Expr) (Expr, error)
	FreshName(hint string) string
	AddConstraint(Constraint)
	// GetDefinitionValue looks up a global definition's unfolded value. It
	// is the narrow slice of the environment view a macro is allowed to see
	// directly, instead of the full env.Definition contract.
	GetDefinitionValue(name string) (Expr, bool)
}

// ConstraintKind distinguishes the two things a converter can ask the
// elaborator to solve.
type ConstraintKind uint8

const (
	TermConstraintKind ConstraintKind = iota
	LevelConstraintKind
)

// Constraint is emitted to an ExtensionContext (or, during is_def_eq, to
// whatever sink the converter was configured with) when the decision
// procedure defers to the elaborator instead of deciding outright.
type Constraint struct {
	Kind ConstraintKind

	// Populated when Kind == TermConstraintKind.
	LHS, RHS Expr

	// Populated when Kind == LevelConstraintKind.
	LHSLevel, RHSLevel *level.Level

	Justification Justification
}

// Justification is an opaque handle the elaborator uses to explain a
// constraint or a failure; the core never inspects its contents.
type Justification interface {
	Reason() string
}

// DelayedJustification lazily produces a Justification only once a
// constraint is actually materialized, so equalities decided by the fast
// path never pay for building one.
type DelayedJustification interface {
	Materialize() Justification
}

// TermConstraint builds a term-equality constraint with its justification
// materialized immediately; used directly by callers that already hold a
// concrete Justification rather than a delayed one.
func TermConstraint(lhs, rhs Expr, j Justification) Constraint {
	return Constraint{Kind: TermConstraintKind, LHS: lhs, RHS: rhs, Justification: j}
}

// LevelConstraint builds a universe-level equality constraint.
func LevelConstraint(lhs, rhs *level.Level, j Justification) Constraint {
	return Constraint{Kind: LevelConstraintKind, LHSLevel: lhs, RHSLevel: rhs, Justification: j}
}
