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
	"fmt"
	"math"

	"github.com/tt-kernel/kernel/pkg/level"
)

// Expr is a node in the expression DAG. It is sealed to this package: the
// only way to produce one is through the Mk* smart constructors below.
type Expr interface {
	Kind() Kind
	Hash() uint64
	AllocHash() uint64
	HasMetavariable() bool
	HasLocal() bool
	HasParameterUniverse() bool
	Depth() uint32
	FreeVarRange() uint32
	Tag() uint32
	SetTag(uint32)

	exprNode() *node
}

type varExpr struct {
	node
	idx uint32
}

type sortExpr struct {
	node
	level *level.Level
}

type constExpr struct {
	node
	name   string
	levels []*level.Level
}

// mlocalExpr backs both Meta and Local: the two variants differ only in
// their Kind and in how the has_local/has_metavariable flags are seeded, the
// same way the original kernel shares one expr_mlocal cell for both.
type mlocalExpr struct {
	node
	name string
	typ  Expr
}

type appExpr struct {
	node
	fn, arg Expr
}

type binderExpr struct {
	node
	name           string
	domain, body   Expr
	info           BinderInfo
}

type letExpr struct {
	node
	name               string
	typ, value, body   Expr
}

type macroExpr struct {
	node
	def  MacroDefinition
	args []Expr
}

// MkVar constructs a bound variable referenced by de Bruijn index idx (0 is
// the innermost binder). Panics if idx cannot be represented, mirroring the
// original kernel's "too-large de Bruijn index" fatal error.
func MkVar(idx uint32) Expr {
	if idx == math.MaxUint32 {
		panic("expr.MkVar: de Bruijn index does not fit representation")
	}

	return &varExpr{
		node: newNode(KindVar, uint64(idx), false, false, false, 1, idx+1),
		idx:  idx,
	}
}

// MkSort constructs a universe, carrying an expression of the (external)
// universe level algebra.
func MkSort(l *level.Level) Expr {
	return &sortExpr{
		node:  newNode(KindSort, l.Hash(), l.HasMetavariable(), false, l.HasParameter(), 1, 0),
		level: l,
	}
}

// MkConst constructs a reference to an environment name, instantiated at the
// given universe level arguments.
func MkConst(name string, levels []*level.Level) Expr {
	h := combineHash(hashString(name), hashLevels(levels))

	return &constExpr{
		node:   newNode(KindConst, h, anyLevelHasMetavariable(levels), false, anyLevelHasParameter(levels), 1, 0),
		name:   name,
		levels: levels,
	}
}

// MkMetavar constructs a metavariable placeholder carrying its expected type.
func MkMetavar(name string, typ Expr) Expr {
	return mkMLocal(true, name, typ)
}

// MkLocal constructs a free local constant, used to traverse under a binder
// with a concrete representative of the bound variable.
func MkLocal(name string, typ Expr) Expr {
	return mkMLocal(false, name, typ)
}

func mkMLocal(isMeta bool, name string, typ Expr) Expr {
	kind := KindLocal
	if isMeta {
		kind = KindMeta
	}

	hasMeta := isMeta || typ.HasMetavariable()
	hasLocal := !isMeta || typ.HasLocal()

	return &mlocalExpr{
		node: newNode(kind, hashString(name), hasMeta, hasLocal, typ.HasParameterUniverse(), 1, typ.FreeVarRange()),
		name: name,
		typ:  typ,
	}
}

// MkApp constructs a single application node; App builds an N-ary spine.
func MkApp(fn, arg Expr) Expr {
	h := combineHash(fn.Hash(), arg.Hash())
	depth := maxu32(fn.Depth(), arg.Depth()) + 1
	fvRange := maxu32(fn.FreeVarRange(), arg.FreeVarRange())

	return &appExpr{
		node: newNode(KindApp, h, fn.HasMetavariable() || arg.HasMetavariable(),
			fn.HasLocal() || arg.HasLocal(), fn.HasParameterUniverse() || arg.HasParameterUniverse(), depth, fvRange),
		fn:  fn,
		arg: arg,
	}
}

// MkLambda constructs a function abstraction.
func MkLambda(name string, domain, body Expr, info BinderInfo) Expr {
	return mkBinder(KindLambda, name, domain, body, info)
}

// MkPi constructs a dependent product.
func MkPi(name string, domain, body Expr, info BinderInfo) Expr {
	return mkBinder(KindPi, name, domain, body, info)
}

func mkBinder(kind Kind, name string, domain, body Expr, info BinderInfo) Expr {
	h := combineHash(domain.Hash(), body.Hash())
	depth := maxu32(domain.Depth(), body.Depth()) + 1
	fvRange := maxu32(domain.FreeVarRange(), decu32(body.FreeVarRange()))

	return &binderExpr{
		node: newNode(kind, h, domain.HasMetavariable() || body.HasMetavariable(),
			domain.HasLocal() || body.HasLocal(), domain.HasParameterUniverse() || body.HasParameterUniverse(), depth, fvRange),
		name:   name,
		domain: domain,
		body:   body,
		info:   info,
	}
}

// MkLet constructs a local definition. Note that, matching the original
// kernel, the declared type does not participate in the structural hash
// (only the value and the body do) even though it does participate in the
// content flags and free-variable range. Only the body is under the let
// binder; the type and value are in the enclosing scope.
func MkLet(name string, typ, value, body Expr) Expr {
	h := combineHash(value.Hash(), body.Hash())
	depth := maxu32(typ.Depth(), maxu32(value.Depth(), body.Depth())) + 1
	fvRange := maxu32(typ.FreeVarRange(), maxu32(value.FreeVarRange(), decu32(body.FreeVarRange())))

	return &letExpr{
		node: newNode(KindLet, h,
			typ.HasMetavariable() || value.HasMetavariable() || body.HasMetavariable(),
			typ.HasLocal() || value.HasLocal() || body.HasLocal(),
			typ.HasParameterUniverse() || value.HasParameterUniverse() || body.HasParameterUniverse(),
			depth, fvRange),
		name:  name,
		typ:   typ,
		value: value,
		body:  body,
	}
}

// MkMacro constructs a macro application over a polymorphic definition.
func MkMacro(def MacroDefinition, args []Expr) Expr {
	h := def.Hash()
	depth, fvRange := uint32(0), uint32(0)
	hasMeta, hasLocal, hasParamUniv := false, false, false

	for _, a := range args {
		h = combineHash(h, a.Hash())
		depth = maxu32(depth, a.Depth())
		fvRange = maxu32(fvRange, a.FreeVarRange())
		hasMeta = hasMeta || a.HasMetavariable()
		hasLocal = hasLocal || a.HasLocal()
		hasParamUniv = hasParamUniv || a.HasParameterUniverse()
	}

	argsCopy := make([]Expr, len(args))
	copy(argsCopy, args)

	return &macroExpr{
		node: newNode(KindMacro, h, hasMeta, hasLocal, hasParamUniv, depth+1, fvRange),
		def:  def,
		args: argsCopy,
	}
}

func maxu32(a, b uint32) uint32 {
	if a > b {
		return a
	}

	return b
}

func decu32(k uint32) uint32 {
	if k == 0 {
		return 0
	}

	return k - 1
}

// ---- variant predicates ----

func IsVar(e Expr) bool    { return e.Kind() == KindVar }
func IsSort(e Expr) bool   { return e.Kind() == KindSort }
func IsConst(e Expr) bool  { return e.Kind() == KindConst }
func IsMetavar(e Expr) bool { return e.Kind() == KindMeta }
func IsLocal(e Expr) bool  { return e.Kind() == KindLocal }
func IsMLocal(e Expr) bool { return e.Kind() == KindMeta || e.Kind() == KindLocal }
func IsApp(e Expr) bool    { return e.Kind() == KindApp }
func IsLambda(e Expr) bool { return e.Kind() == KindLambda }
func IsPi(e Expr) bool     { return e.Kind() == KindPi }
func IsBinder(e Expr) bool { return e.Kind() == KindLambda || e.Kind() == KindPi }
func IsLet(e Expr) bool    { return e.Kind() == KindLet }
func IsMacro(e Expr) bool  { return e.Kind() == KindMacro }

// IsMeta reports whether the head of e's application spine is a
// metavariable — distinct from IsMetavar, which only checks e itself.
func IsMeta(e Expr) bool {
	for IsApp(e) {
		e = AppFn(e)
	}

	return IsMetavar(e)
}

// IsAtomic reports whether e has no proper subterms worth descending into:
// Var, Sort, Const, and a zero-argument Macro.
func IsAtomic(e Expr) bool {
	switch e.Kind() {
	case KindVar, KindSort, KindConst:
		return true
	case KindMacro:
		return len(e.(*macroExpr).args) == 0
	default:
		return false
	}
}

// ---- accessors ----
//
// Each accessor asserts the expected variant and panics with a descriptive
// message otherwise: calling an accessor on the wrong variant is a
// programmer error, never a recoverable one.

func VarIdx(e Expr) uint32 {
	return mustVariant[*varExpr](e, KindVar).idx
}

func SortLevel(e Expr) *level.Level {
	return mustVariant[*sortExpr](e, KindSort).level
}

func ConstName(e Expr) string {
	return mustVariant[*constExpr](e, KindConst).name
}

func ConstLevelParams(e Expr) []*level.Level {
	return mustVariant[*constExpr](e, KindConst).levels
}

func MLocalName(e Expr) string {
	return mustMLocal(e).name
}

func MLocalType(e Expr) Expr {
	return mustMLocal(e).typ
}

func mustMLocal(e Expr) *mlocalExpr {
	m, ok := e.(*mlocalExpr)
	if !ok {
		panic(fmt.Sprintf("expr: expected Meta/Local, got %s", e.Kind()))
	}

	return m
}

func AppFn(e Expr) Expr {
	return mustVariant[*appExpr](e, KindApp).fn
}

func AppArg(e Expr) Expr {
	return mustVariant[*appExpr](e, KindApp).arg
}

func BinderName(e Expr) string {
	return mustBinder(e).name
}

func BinderDomain(e Expr) Expr {
	return mustBinder(e).domain
}

func BinderBody(e Expr) Expr {
	return mustBinder(e).body
}

func BinderInfoOf(e Expr) BinderInfo {
	return mustBinder(e).info
}

func mustBinder(e Expr) *binderExpr {
	b, ok := e.(*binderExpr)
	if !ok {
		panic(fmt.Sprintf("expr: expected Lambda/Pi, got %s", e.Kind()))
	}

	return b
}

func LetName(e Expr) string {
	return mustVariant[*letExpr](e, KindLet).name
}

func LetType(e Expr) Expr {
	return mustVariant[*letExpr](e, KindLet).typ
}

func LetValue(e Expr) Expr {
	return mustVariant[*letExpr](e, KindLet).value
}

func LetBody(e Expr) Expr {
	return mustVariant[*letExpr](e, KindLet).body
}

func MacroDef(e Expr) MacroDefinition {
	return mustVariant[*macroExpr](e, KindMacro).def
}

func MacroNumArgs(e Expr) int {
	return len(mustVariant[*macroExpr](e, KindMacro).args)
}

func MacroArg(e Expr, i int) Expr {
	return mustVariant[*macroExpr](e, KindMacro).args[i]
}

func MacroArgs(e Expr) []Expr {
	return mustVariant[*macroExpr](e, KindMacro).args
}

func mustVariant[T Expr](e Expr, want Kind) T {
	t, ok := e.(T)
	if !ok {
		panic(fmt.Sprintf("expr: expected %s, got %s", want, e.Kind()))
	}

	return t
}

// IsArrow reports whether e is a Pi whose body does not mention the bound
// variable, memoizing the answer in a three-valued atomic slot so the
// underlying free-variable check is paid at most once per node.
func IsArrow(e Expr) bool {
	b, ok := e.(*binderExpr)
	if !ok || b.kind != KindPi {
		return false
	}

	switch b.isArrow.Load() {
	case arrowYes:
		return true
	case arrowNo:
		return false
	}

	res := !HasFreeVar(b.body, 0)
	if res {
		b.isArrow.Store(arrowYes)
	} else {
		b.isArrow.Store(arrowNo)
	}

	return res
}

// ShallowCopy rebuilds e as a fresh node with the same (shared) children.
func ShallowCopy(e Expr) Expr {
	switch e.Kind() {
	case KindVar:
		return MkVar(VarIdx(e))
	case KindSort:
		return MkSort(SortLevel(e))
	case KindConst:
		return MkConst(ConstName(e), ConstLevelParams(e))
	case KindMeta:
		return MkMetavar(MLocalName(e), MLocalType(e))
	case KindLocal:
		return MkLocal(MLocalName(e), MLocalType(e))
	case KindApp:
		return MkApp(AppFn(e), AppArg(e))
	case KindLambda:
		return MkLambda(BinderName(e), BinderDomain(e), BinderBody(e), BinderInfoOf(e))
	case KindPi:
		return MkPi(BinderName(e), BinderDomain(e), BinderBody(e), BinderInfoOf(e))
	case KindLet:
		return MkLet(LetName(e), LetType(e), LetValue(e), LetBody(e))
	case KindMacro:
		return MkMacro(MacroDef(e), MacroArgs(e))
	default:
		panic("unreachable")
	}
}
