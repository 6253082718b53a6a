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

import (
	"math"
	"sync/atomic"
)

// NullTag is the tag value meaning "no tag set". Updaters never propagate it.
const NullTag uint32 = math.MaxUint32

// is_arrow cache states, matching the 2-bit field of the original kernel's
// atomic flags byte.
const (
	arrowUnknown int32 = 0
	arrowYes     int32 = 1
	arrowNo      int32 = 2
)

var allocCounter atomic.Uint64

func nextAllocHash() uint64 {
	return allocCounter.Add(1)
}

// node carries the metadata every expression variant shares: the precomputed
// structural hash, an allocation-order hash for pointer-map diversity, the
// three monotone content flags, depth, free-variable range, and the two
// fields that are mutated after construction (tag and the is-arrow cache).
//
// All fields except tag and isArrow are fixed at construction and never
// change afterward, matching the immutable-except-opportunistic-atomics
// lifecycle of the term algebra.
type node struct {
	kind         Kind
	hash         uint64
	allocHash    uint64
	hasMeta      bool
	hasLocal     bool
	hasParamUniv bool
	depth        uint32
	freeVarRange uint32

	tag     atomic.Uint32
	isArrow atomic.Int32
}

func newNode(kind Kind, hash uint64, hasMeta, hasLocal, hasParamUniv bool, depth, freeVarRange uint32) node {
	n := node{
		kind:         kind,
		hash:         hash,
		allocHash:    nextAllocHash(),
		hasMeta:      hasMeta,
		hasLocal:     hasLocal,
		hasParamUniv: hasParamUniv,
		depth:        depth,
		freeVarRange: freeVarRange,
	}
	n.tag.Store(NullTag)

	return n
}

func (n *node) Kind() Kind                   { return n.kind }
func (n *node) Hash() uint64                 { return n.hash }
func (n *node) AllocHash() uint64            { return n.allocHash }
func (n *node) HasMetavariable() bool        { return n.hasMeta }
func (n *node) HasLocal() bool               { return n.hasLocal }
func (n *node) HasParameterUniverse() bool   { return n.hasParamUniv }
func (n *node) Depth() uint32                { return n.depth }
func (n *node) FreeVarRange() uint32         { return n.freeVarRange }
func (n *node) Tag() uint32                  { return n.tag.Load() }
func (n *node) SetTag(t uint32)              { n.tag.Store(t) }
func (n *node) exprNode() *node              { return n }

// BinderInfo carries frontend hints attached to a Lambda or Pi binder. The
// core propagates it through updaters but never inspects it: it does not
// participate in structural equality or hashing.
type BinderInfo struct {
	Implicit   bool
	CastTarget bool
}
