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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tt-kernel/kernel/pkg/env"
	"github.com/tt-kernel/kernel/pkg/sexp"
)

// loadEnv builds an env.Store from the --env flag (if set) plus the root
// command's --eta/--proof-irrel flags, and returns the module index named by
// --home-module, if any.
//
// The definitions file is zero or more forms:
//
//	(def name value)
//	(def name (params u v) value)
//	(theorem name value)
//	(opaque name value)
//
// Every definition is registered in a single module named "main".
func loadEnv(cmd *cobra.Command) (*env.Store, *uint32, error) {
	store := env.NewStore(GetFlag(cmd, "eta"), GetFlag(cmd, "proof-irrel"), nil)
	moduleIdx := store.RegisterModule("main")

	path := GetString(cmd, "env")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}

		forms, err := sexp.ParseAll(string(data))
		if err != nil {
			return nil, nil, fmt.Errorf("ttkernel: %s: %w", path, err)
		}

		for _, form := range forms {
			if err := loadForm(store, moduleIdx, form); err != nil {
				return nil, nil, fmt.Errorf("ttkernel: %s: %w", path, err)
			}
		}
	}

	var homeModule *uint32

	if GetString(cmd, "home-module") != "" {
		// Only "main" is ever registered, so any non-empty --home-module
		// value names it.
		homeModule = &moduleIdx
	}

	return store, homeModule, nil
}

func loadForm(store *env.Store, moduleIdx uint32, form sexp.SExp) error {
	list := form.AsList()
	if list == nil || list.Len() < 3 {
		return fmt.Errorf("malformed definition: %s", form.String(true))
	}

	kw := list.Get(0).AsSymbol()
	if kw == nil {
		return fmt.Errorf("malformed definition: %s", form.String(true))
	}

	switch kw.Value {
	case "def", "theorem", "opaque":
	default:
		return fmt.Errorf("unknown top-level form %q", kw.Value)
	}

	nameSym := list.Get(1).AsSymbol()
	if nameSym == nil {
		return fmt.Errorf("definition name must be a symbol: %s", form.String(true))
	}

	var (
		params   []string
		valueIdx = 2
	)

	if paramList := list.Get(2).AsList(); paramList != nil && paramList.Len() > 0 &&
		paramList.Get(0).AsSymbol() != nil && paramList.Get(0).AsSymbol().Value == "params" {
		for i := 1; i < paramList.Len(); i++ {
			sym := paramList.Get(i).AsSymbol()
			if sym == nil {
				return fmt.Errorf("universe parameter must be a symbol: %s", form.String(true))
			}

			params = append(params, sym.Value)
		}

		valueIdx = 3
	}

	if list.Len() != valueIdx+1 {
		return fmt.Errorf("malformed definition: %s", form.String(true))
	}

	value, err := readTerm(list.Get(valueIdx), nil)
	if err != nil {
		return err
	}

	store.Add(env.DefinitionConfig{
		Name:       nameSym.Value,
		ModuleIdx:  moduleIdx,
		Params:     params,
		Value:      value,
		IsTheorem:  kw.Value == "theorem",
		IsOpaque:   kw.Value == "opaque",
		UseConvOpt: true,
	})

	return nil
}
