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
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via
// "go install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "ttkernel",
	Short: "A dependent type theory kernel.",
	Long:  "A dependent type theory kernel: term reduction and definitional equality checking.",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		if GetFlag(cmd, "version") {
			os.Stdout.WriteString("ttkernel ")

			if Version != "" {
				os.Stdout.WriteString(Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				os.Stdout.WriteString(info.Main.Version)
			} else {
				os.Stdout.WriteString("(unknown version)")
			}

			os.Stdout.WriteString("\n")
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("eta", true, "enable eta-conversion")
	rootCmd.PersistentFlags().Bool("proof-irrel", false, "treat propositions as proof-irrelevant")
	rootCmd.PersistentFlags().String("env", "", "path to a file of definitions to load before evaluating terms")
	rootCmd.PersistentFlags().String("home-module", "", "treat this module's opaque definitions as transparent")
	rootCmd.PersistentFlags().StringArrayP("extra-opaque", "O", []string{}, "never unfold this definition, regardless of its own opacity")
}
