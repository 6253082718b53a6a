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

	"github.com/tt-kernel/kernel/pkg/sexp"
	"github.com/tt-kernel/kernel/pkg/serialize"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <term>",
	Short: "Parse a term and print its structure as debug JSON.",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		parsed, err := sexp.Parse(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		term, err := readTerm(parsed, nil)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		out, err := serialize.DebugJSON(term)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		os.Stdout.Write(out)
		os.Stdout.WriteString("\n")
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
