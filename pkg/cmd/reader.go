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
	"strconv"

	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/level"
	"github.com/tt-kernel/kernel/pkg/sexp"
)

// scope is the stack of binder names in lexical scope, innermost last. A
// symbol that matches an entry resolves to a de Bruijn Var counting back
// from the end; anything else is read as a Const with no level arguments -
// this reader has no notion of universe-polymorphic instantiation.
type scope []string

func (s scope) resolve(name string) (expr.Expr, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == name {
			return expr.MkVar(uint32(len(s) - 1 - i)), true
		}
	}

	return nil, false
}

// readTerm elaborates a parsed S-expression into a term under scope.
func readTerm(s sexp.SExp, sc scope) (expr.Expr, error) {
	if sym := s.AsSymbol(); sym != nil {
		return readSymbol(sym.Value, sc)
	}

	list := s.AsList()
	if list.Len() == 0 {
		return nil, fmt.Errorf("ttkernel: empty list is not a term")
	}

	head := list.Get(0).AsSymbol()
	if head != nil {
		switch head.Value {
		case "sort":
			return readSort(list)
		case "lambda", "fun":
			return readBinder(list, sc, false)
		case "pi", "forall":
			return readBinder(list, sc, true)
		case "let":
			return readLet(list, sc)
		}
	}

	return readApp(list, sc)
}

func readSymbol(name string, sc scope) (expr.Expr, error) {
	switch name {
	case "Type":
		return expr.Type0, nil
	case "Prop":
		return expr.Prop, nil
	}

	if v, ok := sc.resolve(name); ok {
		return v, nil
	}

	return expr.MkConst(name, nil), nil
}

// readSort reads "(sort N)", the Nth universe above Prop: N=0 is Prop, N=1 is
// Type, N=2 is the universe above Type, and so on.
func readSort(list *sexp.List) (expr.Expr, error) {
	if list.Len() != 2 {
		return nil, fmt.Errorf("ttkernel: (sort N) takes exactly one argument")
	}

	sym := list.Get(1).AsSymbol()
	if sym == nil {
		return nil, fmt.Errorf("ttkernel: (sort N) expects N to be a number")
	}

	n, err := strconv.Atoi(sym.Value)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("ttkernel: invalid sort level %q", sym.Value)
	}

	lvl := level.MkZero()
	for i := 0; i < n; i++ {
		lvl = level.MkSucc(lvl)
	}

	return expr.MkSort(lvl), nil
}

// readBinder reads "(lambda (name type) body)" or "(pi (name type) body)",
// optionally "(lambda (name type implicit) body)" to mark the binder
// implicit.
func readBinder(list *sexp.List, sc scope, isPi bool) (expr.Expr, error) {
	if list.Len() != 3 {
		return nil, fmt.Errorf("ttkernel: binder form takes a (name type) pair and a body")
	}

	binder := list.Get(1).AsList()
	if binder == nil || (binder.Len() != 2 && binder.Len() != 3) {
		return nil, fmt.Errorf("ttkernel: expected (name type) or (name type implicit)")
	}

	nameSym := binder.Get(0).AsSymbol()
	if nameSym == nil {
		return nil, fmt.Errorf("ttkernel: binder name must be a symbol")
	}

	domain, err := readTerm(binder.Get(1), sc)
	if err != nil {
		return nil, err
	}

	info := expr.BinderInfo{}

	if binder.Len() == 3 {
		flag := binder.Get(2).AsSymbol()
		if flag == nil || flag.Value != "implicit" {
			return nil, fmt.Errorf("ttkernel: third binder element must be the symbol \"implicit\"")
		}

		info.Implicit = true
	}

	body, err := readTerm(list.Get(2), append(sc, nameSym.Value))
	if err != nil {
		return nil, err
	}

	if isPi {
		return expr.MkPi(nameSym.Value, domain, body, info), nil
	}

	return expr.MkLambda(nameSym.Value, domain, body, info), nil
}

// readLet reads "(let (name type value) body)".
func readLet(list *sexp.List, sc scope) (expr.Expr, error) {
	if list.Len() != 3 {
		return nil, fmt.Errorf("ttkernel: let takes a (name type value) triple and a body")
	}

	binder := list.Get(1).AsList()
	if binder == nil || binder.Len() != 3 {
		return nil, fmt.Errorf("ttkernel: expected (name type value)")
	}

	nameSym := binder.Get(0).AsSymbol()
	if nameSym == nil {
		return nil, fmt.Errorf("ttkernel: let-bound name must be a symbol")
	}

	typ, err := readTerm(binder.Get(1), sc)
	if err != nil {
		return nil, err
	}

	value, err := readTerm(binder.Get(2), sc)
	if err != nil {
		return nil, err
	}

	body, err := readTerm(list.Get(2), append(sc, nameSym.Value))
	if err != nil {
		return nil, err
	}

	return expr.MkLet(nameSym.Value, typ, value, body), nil
}

// readApp reads a plain list "(f a1 a2 ...)" as a left-associative
// application spine.
func readApp(list *sexp.List, sc scope) (expr.Expr, error) {
	fn, err := readTerm(list.Get(0), sc)
	if err != nil {
		return nil, err
	}

	args := make([]expr.Expr, 0, list.Len()-1)

	for i := 1; i < list.Len(); i++ {
		arg, err := readTerm(list.Get(i), sc)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	return expr.App(fn, args...), nil
}
