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
	"github.com/tt-kernel/kernel/pkg/sexp"
)

var whnfCmd = &cobra.Command{
	Use:   "whnf <term>",
	Short: "Reduce a term to weak head normal form.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, homeModule, err := loadEnv(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

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

		conv := convert.New(convert.Config{
			Env:         store,
			HomeModule:  homeModule,
			Memoize:     true,
			ExtraOpaque: GetStringArray(cmd, "extra-opaque"),
			Logger:      log.StandardLogger(),
		})

		result, err := conv.Whnf(context.Background(), term)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Println(PrintTerm(result))
	},
}

func init() {
	rootCmd.AddCommand(whnfCmd)
}
