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

// Package macro provides concrete MacroDefinition implementations and the
// string-keyed registry that lets pkg/serialize reconstruct a macro node
// without knowing its concrete Go type up front.
package macro

import (
	"fmt"
	"sync"

	"github.com/tt-kernel/kernel/pkg/expr"
)

// Decoder is the minimal primitive-reading surface a macro deserializer
// needs; pkg/serialize's binary reader implements it. Kept here, rather than
// importing pkg/serialize, to avoid a cycle (pkg/serialize needs to import
// pkg/macro to dispatch on these readers).
type Decoder interface {
	ReadString() (string, error)
	ReadUint32() (uint32, error)
	ReadBool() (bool, error)
}

// Encoder is the matching primitive-writing surface, implemented by the same
// writer that calls WritePayload on a macro definition that is Serializable.
type Encoder interface {
	WriteString(string) error
	WriteUint32(uint32) error
	WriteBool(bool) error
}

// Serializable is implemented by macro definitions that can round-trip
// through the term serializer; it is deliberately separate from
// expr.MacroDefinition so a macro that only makes sense at elaboration time
// (never persisted) need not implement it.
type Serializable interface {
	expr.MacroDefinition
	WritePayload(enc Encoder) error
}

// Reader reconstructs a macro definition from its serialized payload and the
// already-deserialized argument expressions.
type Reader func(dec Decoder, args []expr.Expr) (expr.MacroDefinition, error)

var (
	registryMu sync.Mutex
	readers    = map[string]Reader{}
)

// Register installs the deserializer for macros named key. It panics on a
// duplicate registration, matching the original kernel's assertion that a
// macro name is registered at most once.
func Register(key string, reader Reader) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := readers[key]; exists {
		panic(fmt.Sprintf("macro: duplicate deserializer registration for %q", key))
	}

	readers[key] = reader
}

// Lookup finds the deserializer registered under key, if any.
func Lookup(key string) (Reader, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()

	r, ok := readers[key]

	return r, ok
}
