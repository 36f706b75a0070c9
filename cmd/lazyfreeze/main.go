/*
   Copyright 2025 The lazy-freeze Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// lazyfreeze runs the guard demonstrations and probes guard configurations.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set by ldflags at build time.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "lazyfreeze",
	Short:         "Freeze values once their hash has been taken",
	Long:          `lazyfreeze demonstrates guarded types that become immutable after their first hash computation.`,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		mode, _ := cmd.Flags().GetString("color")
		return setupColor(mode, os.Stdout)
	},
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(inspectCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
