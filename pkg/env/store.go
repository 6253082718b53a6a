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
package env

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/tt-kernel/kernel/pkg/expr"
)

// record is the Store's concrete Definition.
type record struct {
	name       string
	id         uint32
	moduleIdx  uint32
	weight     uint32
	params     []string
	value      expr.Expr
	isTheorem  bool
	useConvOpt bool
}

func (r *record) GetName() string      { return r.name }
func (r *record) IsDefinition() bool   { return !r.isTheorem }
func (r *record) IsTheorem() bool      { return r.isTheorem }
func (r *record) GetWeight() uint32    { return r.weight }
func (r *record) GetModuleIdx() uint32 { return r.moduleIdx }
func (r *record) GetParams() []string  { return r.params }
func (r *record) GetValue() expr.Expr  { return r.value }
func (r *record) UseConvOpt() bool     { return r.useConvOpt }

// IsOpaque is read off the Store's opaque bitset rather than a field on
// record, so flipping a definition's opacity later would never need to find
// and mutate the record itself.
func (r *record) isOpaqueIn(s *Store) bool { return s.opaque.Test(uint(r.id)) }

// Store is a concrete, in-memory, append-only environment. Modules are
// registered by name and definitions are added within a module, both
// panicking on a duplicate name the same way the reference kernel's own
// environment tables do.
type Store struct {
	modules map[string]uint32
	byName  map[string]*record
	records []*record

	opaque *bitset.BitSet

	eta        bool
	proofIrrel bool
	normExt    NormalizerExtension
}

// NewStore constructs an empty environment. eta and proofIrrel configure the
// two global behaviors the converter consults; normExt may be nil, in which
// case NoopExtension is used.
func NewStore(eta, proofIrrel bool, normExt NormalizerExtension) *Store {
	if normExt == nil {
		normExt = NoopExtension{}
	}

	return &Store{
		modules: make(map[string]uint32),
		byName:  make(map[string]*record),
		opaque:  bitset.New(64),
		eta:     eta, proofIrrel: proofIrrel, normExt: normExt,
	}
}

func (s *Store) Eta() bool                    { return s.eta }
func (s *Store) ProofIrrel() bool             { return s.proofIrrel }
func (s *Store) NormExt() NormalizerExtension { return s.normExt }

// RegisterModule allocates a fresh module index, panicking if module was
// already registered.
func (s *Store) RegisterModule(module string) uint32 {
	if _, exists := s.modules[module]; exists {
		panic(fmt.Sprintf("env: module %q already registered", module))
	}

	idx := uint32(len(s.modules))
	s.modules[module] = idx

	return idx
}

// DefinitionConfig bundles the arguments needed to add one definition or
// theorem to the store.
type DefinitionConfig struct {
	Name       string
	ModuleIdx  uint32
	Params     []string
	Value      expr.Expr
	IsTheorem  bool
	IsOpaque   bool
	UseConvOpt bool
}

// Add installs a new definition. Its weight is assigned as the number of
// definitions already present: earlier-registered names are "more
// fundamental", so later-registered names unfold first during lazy delta,
// matching the monotone weight measure the converter's lazy delta loop
// relies on.
func (s *Store) Add(cfg DefinitionConfig) Definition {
	if _, exists := s.byName[cfg.Name]; exists {
		panic(fmt.Sprintf("env: definition %q already registered", cfg.Name))
	}

	id := uint32(len(s.records))
	r := &record{
		name:       cfg.Name,
		id:         id,
		moduleIdx:  cfg.ModuleIdx,
		weight:     id,
		params:     cfg.Params,
		value:      cfg.Value,
		isTheorem:  cfg.IsTheorem,
		useConvOpt: cfg.UseConvOpt,
	}

	if cfg.IsOpaque {
		// Set grows the underlying bitset automatically if id is past its
		// current length.
		s.opaque.Set(uint(id))
	}

	s.byName[cfg.Name] = r
	s.records = append(s.records, r)

	return &opaqueDefinition{record: r, store: s}
}

// Find looks up a definition by name.
func (s *Store) Find(name string) (Definition, bool) {
	r, ok := s.byName[name]
	if !ok {
		return nil, false
	}

	return &opaqueDefinition{record: r, store: s}, true
}

// ID returns the dense integer identifier assigned to name, if any. Callers
// that want to test opacity-like properties across many names in a hot loop
// (the converter's extra-opaque set, in particular) can use this to index a
// bitset instead of hashing strings repeatedly.
func (s *Store) ID(name string) (uint32, bool) {
	r, ok := s.byName[name]
	if !ok {
		return 0, false
	}

	return r.id, true
}

// opaqueDefinition adapts a record plus its owning Store into the
// Definition interface, so IsOpaque can be served from the Store's bitset.
type opaqueDefinition struct {
	*record
	store *Store
}

func (d *opaqueDefinition) IsOpaque() bool { return d.record.isOpaqueIn(d.store) }
