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

	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/level"
	"github.com/tt-kernel/kernel/pkg/sexp"
)

// PrintTerm renders e in the reader's surface syntax, wrapping it across
// multiple indented lines if it would otherwise overflow the terminal.
func PrintTerm(e expr.Expr) string {
	return sexp.Print(toSExp(e, nil))
}

func toSExp(e expr.Expr, sc scope) sexp.SExp {
	switch e.Kind() {
	case expr.KindVar:
		idx := int(expr.VarIdx(e))
		if idx < len(sc) {
			return sexp.NewSymbol(sc[len(sc)-1-idx])
		}

		return sexp.NewSymbol(fmt.Sprintf("#%d", idx))

	case expr.KindSort:
		lvl := expr.SortLevel(e)

		if level.Equivalent(lvl, level.MkZero()) {
			return sexp.NewSymbol("Prop")
		}

		if level.Equivalent(lvl, level.MkSucc(level.MkZero())) {
			return sexp.NewSymbol("Type")
		}

		return sexp.NewList(sexp.NewSymbol("sort"), levelToSExp(lvl))

	case expr.KindConst:
		name := expr.ConstName(e)

		levels := expr.ConstLevelParams(e)
		if len(levels) == 0 {
			return sexp.NewSymbol(name)
		}

		elements := make([]sexp.SExp, 0, len(levels)+2)
		elements = append(elements, sexp.NewSymbol(name), sexp.NewSymbol("@"))

		for _, l := range levels {
			elements = append(elements, levelToSExp(l))
		}

		return sexp.NewList(elements...)

	case expr.KindMeta:
		return sexp.NewSymbol("?" + expr.MLocalName(e))

	case expr.KindLocal:
		return sexp.NewSymbol(expr.MLocalName(e))

	case expr.KindApp:
		fn := expr.GetAppFn(e)
		args := expr.GetAppArgs(e)

		elements := make([]sexp.SExp, 0, len(args)+1)
		elements = append(elements, toSExp(fn, sc))

		for _, a := range args {
			elements = append(elements, toSExp(a, sc))
		}

		return sexp.NewList(elements...)

	case expr.KindLambda, expr.KindPi:
		kw := "lambda"
		if e.Kind() == expr.KindPi {
			kw = "pi"
		}

		name := expr.BinderName(e)

		binder := []sexp.SExp{sexp.NewSymbol(name), toSExp(expr.BinderDomain(e), sc)}
		if expr.BinderInfoOf(e).Implicit {
			binder = append(binder, sexp.NewSymbol("implicit"))
		}

		body := toSExp(expr.BinderBody(e), append(sc, name))

		return sexp.NewList(sexp.NewSymbol(kw), sexp.NewList(binder...), body)

	case expr.KindLet:
		name := expr.LetName(e)
		binder := sexp.NewList(
			sexp.NewSymbol(name),
			toSExp(expr.LetType(e), sc),
			toSExp(expr.LetValue(e), sc),
		)
		body := toSExp(expr.LetBody(e), append(sc, name))

		return sexp.NewList(sexp.NewSymbol("let"), binder, body)

	case expr.KindMacro:
		args := expr.MacroArgs(e)
		elements := make([]sexp.SExp, 0, len(args)+1)
		elements = append(elements, sexp.NewSymbol(expr.MacroDef(e).Name()))

		for _, a := range args {
			elements = append(elements, toSExp(a, sc))
		}

		return sexp.NewList(elements...)

	default:
		panic("cmd: unreachable expr kind")
	}
}

func levelToSExp(l *level.Level) sexp.SExp {
	switch l.Kind() {
	case level.Zero:
		return sexp.NewSymbol("z")
	case level.Succ:
		return sexp.NewList(sexp.NewSymbol("succ"), levelToSExp(l.Arg()))
	case level.Max, level.IMax:
		kw := "max"
		if l.Kind() == level.IMax {
			kw = "imax"
		}

		lhs, rhs := l.Operands()

		return sexp.NewList(sexp.NewSymbol(kw), levelToSExp(lhs), levelToSExp(rhs))
	case level.Param:
		return sexp.NewSymbol(l.Name())
	case level.Meta:
		return sexp.NewSymbol("?" + l.Name())
	default:
		panic("cmd: unreachable level kind")
	}
}
