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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-unipoly/pkg/poly"
	"github.com/consensys/go-unipoly/pkg/util/source"
	"github.com/consensys/go-unipoly/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Configure the log level based on the verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Parse each argument into a polynomial, or report syntax errors and exit.
func parseArgs(cmd *cobra.Command, args []string) []poly.Polynomial {
	var (
		polys = make([]poly.Polynomial, len(args))
		ansi  = !GetFlag(cmd, "no-color") && termio.IsTerminal(os.Stdout)
		errs  []source.SyntaxError
	)
	//
	for i, arg := range args {
		srcfile := source.NewSourceFile(fmt.Sprintf("arg%d", i+1), arg)
		// Parse the argument
		if polys[i], errs = poly.ParseSource(srcfile); len(errs) > 0 {
			for _, err := range errs {
				printSyntaxError(os.Stdout, &err, ansi)
			}
			//
			os.Exit(1)
		}
		//
		log.Debugf("parsed %s as %s", arg, polys[i])
	}
	//
	return polys
}

// Print a syntax error with the enclosing line and the offending span
// highlighted.
func printSyntaxError(w io.Writer, err *source.SyntaxError, ansi bool) {
	var (
		line, marker = err.Highlight()
		enclosing    = err.SourceFile().EnclosingLine(err.Span())
		red          = termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	)
	// Print error + line number
	fmt.Fprintf(w, "%s:%d: %s\n", err.SourceFile().Filename(), enclosing.Number(), termio.Colour(ansi, red, err.Message()))
	// Print line
	fmt.Fprintln(w, line)
	// Print highlight
	fmt.Fprintln(w, termio.Colour(ansi, red, marker))
}
