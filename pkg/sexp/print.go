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
package sexp

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Print renders s flat if it fits the terminal's width, or else breaks each
// list that does not fit onto indented lines: its head stays on the opening
// line and every other child goes on a line of its own, while sub-lists that
// fit stay flat. Width is detected from stdout (80 when stdout is not a
// terminal); callers writing elsewhere should use PrintWidth directly.
func Print(s SExp) string {
	return PrintWidth(s, terminalWidth())
}

// PrintWidth renders s flat if it fits within width, wrapping otherwise.
func PrintWidth(s SExp, width int) string {
	flat := s.String(true)
	if len(flat) <= width {
		return flat
	}

	return printIndented(s, width, 0)
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 80
	}

	return w
}

func printIndented(s SExp, width, indent int) string {
	list := s.AsList()
	if list == nil {
		return s.String(true)
	}

	flat := s.String(true)
	if len(flat)+indent <= width {
		return flat
	}

	pad := strings.Repeat("  ", indent+1)

	var sb strings.Builder

	sb.WriteByte('(')

	for i := 0; i < list.Len(); i++ {
		if i == 0 {
			sb.WriteString(list.Get(i).String(true))
			continue
		}

		sb.WriteByte('\n')
		sb.WriteString(pad)
		sb.WriteString(printIndented(list.Get(i), width, indent+1))
	}

	sb.WriteByte(')')

	return sb.String()
}
