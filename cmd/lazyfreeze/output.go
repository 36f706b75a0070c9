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
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	failColor  = color.New(color.FgRed, color.Bold)
	noteColor  = color.New(color.Faint)
	titleColor = color.New(color.FgCyan, color.Bold)
)

// setupColor applies the --color mode.
func setupColor(mode string, out *os.File) error {
	switch mode {
	case "auto":
		color.NoColor = !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd())
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q (want auto|always|never)", mode)
	}
	return nil
}
