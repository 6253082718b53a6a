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

// Package convert implements the kernel's definitional equality decision
// procedure: weak head normal form reduction and is_def_eq, parameterized
// over an env.View so the same algorithm runs against any environment
// implementation.
package convert

import (
	"fmt"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
	"github.com/sirupsen/logrus"

	"github.com/tt-kernel/kernel/pkg/env"
	"github.com/tt-kernel/kernel/pkg/expr"
)

// TypeInferer is the hook a caller supplies so macros can ask the converter
// (via ExtensionContext) to infer a subterm's type. The converter has no
// built-in type inference of its own — that lives with the elaborator — so
// this is nil-able, and InferType reports an error when it is unset.
type TypeInferer func(expr.Expr) (expr.Expr, error)

// ConstraintSink receives the constraints is_def_eq defers to the caller
// instead of deciding outright (unresolved metavariables on either side, or a
// universe inequality the level algebra cannot normalize away).
type ConstraintSink interface {
	AddConstraint(expr.Constraint)
}

// sinkFunc adapts a function literal to ConstraintSink.
type sinkFunc func(expr.Constraint)

func (f sinkFunc) AddConstraint(c expr.Constraint) { f(c) }

// Config bundles everything a Converter needs beyond the environment itself.
type Config struct {
	Env env.View

	// HomeModule, when set, is the module index whose own (non-theorem,
	// non-extra-opaque) definitions are treated as transparent even if they
	// are flagged opaque — the "checking a module against itself" case.
	HomeModule *uint32

	// Memoize toggles the WHNF and WHNF-core caches. Disabling it is mostly
	// useful for isolating a cache-invalidation bug.
	Memoize bool

	// ExtraOpaque names definitions that must never unfold regardless of
	// their own opacity flag, e.g. names an elaboration pass has frozen for
	// the duration of a proof search.
	ExtraOpaque []string

	TypeInferer TypeInferer
	Logger      *logrus.Logger
}

// indexableEnv is the optional capability env.Store exposes: a dense integer
// id per name, which lets the extra-opaque set live in a bitset instead of a
// map[string]struct{}.
type indexableEnv interface {
	ID(name string) (uint32, bool)
}

// Converter carries out reduction and equality checking against one
// environment snapshot. A Converter is not safe for concurrent use by
// multiple goroutines; the kernel's own elaboration loop drives it from a
// single goroutine per proof state.
type Converter struct {
	env        env.View
	homeModule *uint32
	memoize    bool

	extraOpaqueNames map[string]struct{}
	extraOpaqueIDs   *bitset.BitSet
	indexable        bool

	typeInferer TypeInferer
	log         *logrus.Logger

	whnfCoreCache *exprCache
	whnfCache     *exprCache

	freshCounter atomic.Uint64

	// currentSink is set for the duration of one top-level IsDefEq call so
	// the ExtensionContext adapter handed to macros and normalizer
	// extensions can forward to it without threading a sink parameter
	// through every mutually-recursive helper.
	currentSink ConstraintSink
}

// New constructs a Converter. Env must not be nil.
func New(cfg Config) *Converter {
	if cfg.Env == nil {
		panic("convert.New: Config.Env must not be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	c := &Converter{
		env:         cfg.Env,
		homeModule:  cfg.HomeModule,
		memoize:     cfg.Memoize,
		typeInferer: cfg.TypeInferer,
		log:         log,
	}

	if c.memoize {
		c.whnfCoreCache = newExprCache()
		c.whnfCache = newExprCache()
	}

	if idx, ok := cfg.Env.(indexableEnv); ok {
		c.indexable = true
		c.extraOpaqueIDs = bitset.New(uint(len(cfg.ExtraOpaque)))

		for _, name := range cfg.ExtraOpaque {
			if id, ok := idx.ID(name); ok {
				c.extraOpaqueIDs.Set(uint(id))
			} else {
				c.log.WithField("name", name).Warn("convert: extra-opaque name not found in environment")
			}
		}
	} else {
		c.extraOpaqueNames = make(map[string]struct{}, len(cfg.ExtraOpaque))
		for _, name := range cfg.ExtraOpaque {
			c.extraOpaqueNames[name] = struct{}{}
		}
	}

	return c
}

func (c *Converter) isExtraOpaque(name string) bool {
	if c.indexable {
		idx := c.env.(indexableEnv)
		id, ok := idx.ID(name)
		return ok && c.extraOpaqueIDs.Test(uint(id))
	}

	_, ok := c.extraOpaqueNames[name]
	return ok
}

// isOpaque decides whether a definition should be treated as stuck (never
// unfolded), applying the rules in order: theorems are always opaque; names
// frozen by the caller are always opaque; a definition not flagged opaque is
// always transparent; a flagged-opaque definition is nonetheless transparent
// when it lives in the converter's own home module; otherwise it is opaque.
func (c *Converter) isOpaque(d env.Definition) bool {
	if d.IsTheorem() {
		return true
	}

	if c.isExtraOpaque(d.GetName()) {
		return true
	}

	if !d.IsOpaque() {
		return false
	}

	if c.homeModule != nil && d.GetModuleIdx() == *c.homeModule {
		return false
	}

	return true
}

func (c *Converter) freshName(hint string) string {
	n := c.freshCounter.Add(1)
	return fmt.Sprintf("%s.%d", hint, n)
}

// extensionContext returns this converter viewed as an expr.ExtensionContext,
// the narrow surface macros and normalizer extensions are allowed to call
// back into.
func (c *Converter) extensionContext() expr.ExtensionContext {
	return extContext{c}
}
