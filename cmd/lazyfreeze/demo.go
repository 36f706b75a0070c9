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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UriyaHarpeness/lazy-freeze/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:   "demo [scenario...]",
	Short: "Run guard demonstrations",
	Long:  "Run the named scenarios, or all of them when none are given. Use --list to see the names.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, s := range demo.Scenarios() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", s.Name, s.Title)
			}
			return nil
		}
		scenarios, err := selectScenarios(args)
		if err != nil {
			return err
		}
		failed := 0
		for _, s := range scenarios {
			failed += printScenario(cmd.OutOrStdout(), s)
		}
		if failed > 0 {
			return fmt.Errorf("%d step(s) did not behave as expected", failed)
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().Bool("list", false, "list scenario names")
}

func selectScenarios(names []string) ([]demo.Scenario, error) {
	if len(names) == 0 {
		return demo.Scenarios(), nil
	}
	out := make([]demo.Scenario, 0, len(names))
	for _, n := range names {
		s, ok := demo.Find(n)
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", n)
		}
		out = append(out, s)
	}
	return out, nil
}

// printScenario runs s and prints its steps. It returns the number of
// steps that did not behave as expected.
func printScenario(w io.Writer, s demo.Scenario) int {
	titleColor.Fprintf(w, "\n=== %s ===\n", s.Title)
	failed := 0
	for _, st := range s.Run() {
		switch {
		case st.Note:
			noteColor.Fprintf(w, "  · %s\n", indent(st.Action))
		case st.OK():
			okColor.Fprint(w, "  ✓ ")
			fmt.Fprintln(w, describe(st))
		default:
			failed++
			failColor.Fprint(w, "  ✗ ")
			fmt.Fprintln(w, describe(st))
		}
	}
	return failed
}

func describe(st demo.Step) string {
	if st.Err == nil {
		return st.Action
	}
	return st.Action + ": " + firstLine(st.Err.Error())
}

func firstLine(s string) string {
	head, _, _ := strings.Cut(s, "\n")
	return head
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n    ")
}
