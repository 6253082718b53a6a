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
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tt-kernel/kernel/pkg/convert"
	"github.com/tt-kernel/kernel/pkg/expr"
	"github.com/tt-kernel/kernel/pkg/sexp"
)

var isDefEqCmd = &cobra.Command{
	Use:   "is-def-eq <term1> <term2>",
	Short: "Check two terms for definitional equality.",
	Long: `Check two terms for definitional equality.
	Exits 0 if they are definitionally equal, 1 if they are not, 2 on error.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, homeModule, err := loadEnv(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		terms := make([]expr.Expr, 2)

		for i, raw := range args {
			parsed, err := sexp.Parse(raw)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}

			terms[i], err = readTerm(parsed, nil)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}

		conv := convert.New(convert.Config{
			Env:         store,
			HomeModule:  homeModule,
			Memoize:     true,
			ExtraOpaque: GetStringArray(cmd, "extra-opaque"),
			Logger:      log.StandardLogger(),
		})

		eq, err := conv.IsDefEq(context.Background(), terms[0], terms[1], nil)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		fmt.Println(eq)

		if !eq {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(isDefEqCmd)
}
