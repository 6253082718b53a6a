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
package serialize

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/level"
	"github.com/tt-kernel/kernel/pkg/macro"
	"github.com/tt-kernel/kernel/pkg/util/collection/hash"
)

type exprKey struct{ e expr.Expr }

func (k exprKey) Hash() uint64          { return k.e.Hash() }
func (k exprKey) Equals(o exprKey) bool { return expr.Equals(k.e, o.e) }

// Writer encodes terms to a binary stream, assigning each structurally
// distinct subterm an id the first time it is written and emitting only a
// back-reference on every later occurrence — the maximal-sharing pass the
// original kernel's expr_serializer performs, expressed as an incremental
// dedup table instead of a separate up-front traversal.
type Writer struct {
	dst  io.Writer
	seen *hash.Map[exprKey, uint32]
	next uint32
}

// NewWriter constructs a Writer over dst. One Writer should serialize one
// self-contained batch of terms: its dedup table is never reset, so sharing
// is tracked across every WriteExpr call made on it.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst, seen: hash.NewMap[exprKey, uint32](0)}
}

func (w *Writer) writeByte(b byte) error {
	_, err := w.dst.Write([]byte{b})
	return err
}

func (w *Writer) writeUvarint(v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.dst.Write(buf[:n])

	return err
}

// WriteString implements macro.Encoder.
func (w *Writer) WriteString(s string) error {
	if err := w.writeUvarint(uint64(len(s))); err != nil {
		return err
	}

	_, err := io.WriteString(w.dst, s)

	return err
}

// WriteUint32 implements macro.Encoder.
func (w *Writer) WriteUint32(v uint32) error {
	return w.writeUvarint(uint64(v))
}

// WriteBool implements macro.Encoder.
func (w *Writer) WriteBool(b bool) error {
	if b {
		return w.writeByte(1)
	}

	return w.writeByte(0)
}

func (w *Writer) writeLevel(l *level.Level) error {
	switch l.Kind() {
	case level.Zero:
		return w.writeByte(byte(levelZero))
	case level.Succ:
		if err := w.writeByte(byte(levelSucc)); err != nil {
			return err
		}

		return w.writeLevel(l.Arg())
	case level.Max, level.IMax:
		tag := levelMax
		if l.Kind() == level.IMax {
			tag = levelIMax
		}

		if err := w.writeByte(byte(tag)); err != nil {
			return err
		}

		lhs, rhs := l.Operands()
		if err := w.writeLevel(lhs); err != nil {
			return err
		}

		return w.writeLevel(rhs)
	case level.Param, level.Meta:
		tag := levelParam
		if l.Kind() == level.Meta {
			tag = levelMeta
		}

		if err := w.writeByte(byte(tag)); err != nil {
			return err
		}

		return w.WriteString(l.Name())
	default:
		panic("serialize: unreachable level kind")
	}
}

// WriteExpr writes e, emitting a back-reference instead of a second copy if
// e (by structural equality) has already been written through this Writer.
func (w *Writer) WriteExpr(e expr.Expr) error {
	if id, ok := w.seen.Get(exprKey{e}); ok {
		if err := w.writeByte(byte(tagBackRef)); err != nil {
			return err
		}

		return w.writeUvarint(uint64(id))
	}

	id := w.next
	w.next++
	w.seen.Insert(exprKey{e}, id)

	switch e.Kind() {
	case expr.KindVar:
		if err := w.writeByte(byte(tagVar)); err != nil {
			return err
		}

		return w.WriteUint32(expr.VarIdx(e))

	case expr.KindSort:
		if err := w.writeByte(byte(tagSort)); err != nil {
			return err
		}

		return w.writeLevel(expr.SortLevel(e))

	case expr.KindConst:
		if err := w.writeByte(byte(tagConst)); err != nil {
			return err
		}

		if err := w.WriteString(expr.ConstName(e)); err != nil {
			return err
		}

		levels := expr.ConstLevelParams(e)
		if err := w.writeUvarint(uint64(len(levels))); err != nil {
			return err
		}

		for _, l := range levels {
			if err := w.writeLevel(l); err != nil {
				return err
			}
		}

		return nil

	case expr.KindMeta, expr.KindLocal:
		if err := w.writeByte(byte(kindTag(e.Kind()))); err != nil {
			return err
		}

		if err := w.WriteString(expr.MLocalName(e)); err != nil {
			return err
		}

		return w.WriteExpr(expr.MLocalType(e))

	case expr.KindApp:
		if err := w.writeByte(byte(tagApp)); err != nil {
			return err
		}

		if err := w.WriteExpr(expr.AppFn(e)); err != nil {
			return err
		}

		return w.WriteExpr(expr.AppArg(e))

	case expr.KindLambda, expr.KindPi:
		if err := w.writeByte(byte(kindTag(e.Kind()))); err != nil {
			return err
		}

		if err := w.WriteString(expr.BinderName(e)); err != nil {
			return err
		}

		info := expr.BinderInfoOf(e)
		if err := w.WriteBool(info.Implicit); err != nil {
			return err
		}

		if err := w.WriteBool(info.CastTarget); err != nil {
			return err
		}

		if err := w.WriteExpr(expr.BinderDomain(e)); err != nil {
			return err
		}

		return w.WriteExpr(expr.BinderBody(e))

	case expr.KindLet:
		if err := w.writeByte(byte(tagLet)); err != nil {
			return err
		}

		if err := w.WriteString(expr.LetName(e)); err != nil {
			return err
		}

		if err := w.WriteExpr(expr.LetType(e)); err != nil {
			return err
		}

		if err := w.WriteExpr(expr.LetValue(e)); err != nil {
			return err
		}

		return w.WriteExpr(expr.LetBody(e))

	case expr.KindMacro:
		if err := w.writeByte(byte(tagMacro)); err != nil {
			return err
		}

		def := expr.MacroDef(e)

		s, ok := def.(macro.Serializable)
		if !ok {
			return fmt.Errorf("serialize: macro %q does not implement macro.Serializable", def.Name())
		}

		if err := w.WriteString(def.Name()); err != nil {
			return err
		}

		args := expr.MacroArgs(e)
		if err := w.writeUvarint(uint64(len(args))); err != nil {
			return err
		}

		for _, a := range args {
			if err := w.WriteExpr(a); err != nil {
				return err
			}
		}
		// The payload is written last, after the arguments, so a reader can
		// decode the arguments up front and hand them to macro.Reader
		// together with a Decoder positioned right at the payload.
		return s.WritePayload(w)

	default:
		panic("serialize: unreachable expr kind")
	}
}
