// Copyright Consensys Software Inc.
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
package termio

import "fmt"

// TERM_RED represents red
const TERM_RED = uint(1)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal.  Escapes are built up by chaining attributes, for example
// BoldAnsiEscape().FgColour(TERM_RED).Build().
type AnsiEscape struct {
	escape string
}

// ResetAnsiEscape constructs a reset term.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[0"}
}

// BoldAnsiEscape constructs a bold term.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[1"}
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return AnsiEscape{fmt.Sprintf("%s;%d", p.escape, col+30)}
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("%sm", p.escape)
}

// Colour wraps a given string with an escape, followed by a reset.  When
// escapes are disabled the string is returned as is.
func Colour(enabled bool, escape AnsiEscape, text string) string {
	if !enabled {
		return text
	}
	//
	return escape.Build() + text + ResetAnsiEscape().Build()
}
