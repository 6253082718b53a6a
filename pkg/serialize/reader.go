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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/level"
	"github.com/tt-kernel/kernel/pkg/macro"
)

// Reader decodes terms written by a Writer, resolving back-references
// against the nodes it has already reconstructed in this stream.
type Reader struct {
	r     *bufio.Reader
	nodes []expr.Expr
}

// NewReader constructs a Reader over src.
func NewReader(src io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(src)}
}

func (r *Reader) readUvarint() (uint64, error) {
	return binary.ReadUvarint(r.r)
}

// ReadString implements macro.Decoder.
func (r *Reader) ReadString() (string, error) {
	n, err := r.readUvarint()
	if err != nil {
		return "", err
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

// ReadUint32 implements macro.Decoder.
func (r *Reader) ReadUint32() (uint32, error) {
	v, err := r.readUvarint()
	return uint32(v), err
}

// ReadBool implements macro.Decoder.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.r.ReadByte()
	return b != 0, err
}

func (r *Reader) readLevel() (*level.Level, error) {
	tagByte, err := r.r.ReadByte()
	if err != nil {
		return nil, err
	}

	switch levelTag(tagByte) {
	case levelZero:
		return level.MkZero(), nil
	case levelSucc:
		arg, err := r.readLevel()
		if err != nil {
			return nil, err
		}

		return level.MkSucc(arg), nil
	case levelMax, levelIMax:
		lhs, err := r.readLevel()
		if err != nil {
			return nil, err
		}

		rhs, err := r.readLevel()
		if err != nil {
			return nil, err
		}

		if levelTag(tagByte) == levelMax {
			return level.MkMax(lhs, rhs), nil
		}

		return level.MkIMax(lhs, rhs), nil
	case levelParam, levelMeta:
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}

		if levelTag(tagByte) == levelParam {
			return level.MkParam(name), nil
		}

		return level.MkMeta(name), nil
	default:
		return nil, fmt.Errorf("serialize: unknown level tag %d", tagByte)
	}
}

// ReadExpr decodes one term, recursively resolving its children and any
// back-references among them.
func (r *Reader) ReadExpr() (expr.Expr, error) {
	tagByte, err := r.r.ReadByte()
	if err != nil {
		return nil, err
	}

	tag := wireTag(tagByte)

	if tag == tagBackRef {
		id, err := r.readUvarint()
		if err != nil {
			return nil, err
		}

		if id >= uint64(len(r.nodes)) || r.nodes[id] == nil {
			return nil, fmt.Errorf("serialize: back-reference %d out of range", id)
		}

		return r.nodes[id], nil
	}

	// Reserve this node's slot before decoding its children, so id matches
	// the Writer's pre-order assignment (a node's id is fixed before its
	// children are written) instead of a post-order one.
	id := len(r.nodes)
	r.nodes = append(r.nodes, nil)

	result, err := r.readNodeBody(tag)
	if err != nil {
		return nil, err
	}

	r.nodes[id] = result

	return result, nil
}

func (r *Reader) readNodeBody(tag wireTag) (expr.Expr, error) {
	switch tag {
	case tagVar:
		idx, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}

		return expr.MkVar(idx), nil

	case tagSort:
		lvl, err := r.readLevel()
		if err != nil {
			return nil, err
		}

		return expr.MkSort(lvl), nil

	case tagConst:
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}

		n, err := r.readUvarint()
		if err != nil {
			return nil, err
		}

		levels := make([]*level.Level, n)
		for i := range levels {
			levels[i], err = r.readLevel()
			if err != nil {
				return nil, err
			}
		}

		return expr.MkConst(name, levels), nil

	case tagMeta, tagLocal:
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}

		typ, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}

		if tag == tagMeta {
			return expr.MkMetavar(name, typ), nil
		}

		return expr.MkLocal(name, typ), nil

	case tagApp:
		fn, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}

		arg, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}

		return expr.MkApp(fn, arg), nil

	case tagLambda, tagPi:
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}

		implicit, err := r.ReadBool()
		if err != nil {
			return nil, err
		}

		castTarget, err := r.ReadBool()
		if err != nil {
			return nil, err
		}

		domain, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}

		body, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}

		info := expr.BinderInfo{Implicit: implicit, CastTarget: castTarget}

		if tag == tagLambda {
			return expr.MkLambda(name, domain, body, info), nil
		}

		return expr.MkPi(name, domain, body, info), nil

	case tagLet:
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}

		typ, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}

		value, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}

		body, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}

		return expr.MkLet(name, typ, value, body), nil

	case tagMacro:
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}

		n, err := r.readUvarint()
		if err != nil {
			return nil, err
		}

		args := make([]expr.Expr, n)
		for i := range args {
			args[i], err = r.ReadExpr()
			if err != nil {
				return nil, err
			}
		}

		reader, ok := macro.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("serialize: no macro deserializer registered for %q", name)
		}

		def, err := reader(r, args)
		if err != nil {
			return nil, err
		}

		return expr.MkMacro(def, args), nil

	default:
		return nil, fmt.Errorf("serialize: unknown expr tag %d", tag)
	}
}
